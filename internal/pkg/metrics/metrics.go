package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ridesCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rides_created_total",
			Help: "Total number of rides created",
		},
	)

	bookingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ride_bookings_total",
			Help: "Total number of booking operations by outcome",
		},
		[]string{"outcome"},
	)

	bookingConflictsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ride_booking_conflicts_total",
			Help: "Total number of booking writes lost to a concurrent update",
		},
	)

	migrationRunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ride_migration_runs_total",
			Help: "Total number of lifecycle migration runs",
		},
	)

	migrationRidesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ride_migration_rides_total",
			Help: "Total number of rides processed by the lifecycle migrator by result",
		},
		[]string{"result"},
	)
)

// Register registers all application metrics with the provided registry
func Register(reg *prometheus.Registry) {
	reg.MustRegister(
		ridesCreatedTotal,
		bookingsTotal,
		bookingConflictsTotal,
		migrationRunsTotal,
		migrationRidesTotal,
	)
}

// IncRideCreated increments the created rides counter
func IncRideCreated() {
	ridesCreatedTotal.Inc()
}

// IncBooking increments the booking counter for the given outcome
// (requested, accepted or rejected)
func IncBooking(outcome string) {
	bookingsTotal.WithLabelValues(outcome).Inc()
}

// IncBookingConflict increments the optimistic concurrency conflict counter
func IncBookingConflict() {
	bookingConflictsTotal.Inc()
}

// IncMigrationRun increments the migration run counter
func IncMigrationRun() {
	migrationRunsTotal.Inc()
}

// IncRideMigrated records a ride moved to the inactive store
func IncRideMigrated() {
	migrationRidesTotal.WithLabelValues("migrated").Inc()
}

// IncMigrationFailure records a ride that failed to migrate
func IncMigrationFailure() {
	migrationRidesTotal.WithLabelValues("failed").Inc()
}
