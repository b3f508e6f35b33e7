package constants

// Redis key formats
const (
	// Users service
	KeyUserDevices = "user:devices:%s" // Format: user:devices:{user_id}, set of push tokens

	// Rides service
	KeyRideGeoCell = "rides:geo:cell:%s" // Format: rides:geo:cell:{geohash}, set of "ride_id|lat|lng"
	KeyRideGeoRide = "rides:geo:ride:%s" // Format: rides:geo:ride:{ride_id}, "geohash|ride_id|lat|lng"
)
