package constants

// NATS subjects
const (
	// Ride events
	SubjectRideCreated  = "ride.created"
	SubjectRideAccepted = "ride.accepted"
	SubjectRideDeleted  = "ride.deleted"
)

// NSQ topics and channels
const (
	TopicPushNotifications   = "push_notifications"
	ChannelPushDispatcher    = "dispatcher"
	NotifyRideQueueGroup     = "notify-ride-events"
	NotifyAcceptedQueueGroup = "notify-ride-accepted"
)
