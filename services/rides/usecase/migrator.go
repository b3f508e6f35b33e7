package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/logger"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/metrics"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/rides"
)

// Migrator moves rides whose departure has passed from the active store
// to the inactive store. Each ride is copied first and deleted last, so
// a crash between the two steps leaves the ride active and a re-run
// simply migrates it again.
type Migrator struct {
	cfg  *models.Config
	repo rides.RideRepo
	refs rides.UserRefRepo
	geo  rides.GeoIndex
}

// NewMigrator creates a new lifecycle migrator
func NewMigrator(cfg *models.Config, repo rides.RideRepo, refs rides.UserRefRepo, geo rides.GeoIndex) *Migrator {
	return &Migrator{
		cfg:  cfg,
		repo: repo,
		refs: refs,
		geo:  geo,
	}
}

// Run migrates every expired ride in batches. A failing ride is logged
// and skipped; it stays in the active store for the next run.
func (m *Migrator) Run(ctx context.Context) error {
	metrics.IncMigrationRun()

	cutoff := time.Now().UTC()
	batchSize := m.cfg.Migrator.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	migrated, failed := 0, 0
	for {
		expired, err := m.repo.ListExpired(ctx, cutoff, batchSize)
		if err != nil {
			return fmt.Errorf("failed to list expired rides: %w", err)
		}
		if len(expired) == 0 {
			break
		}

		progressed := false
		for _, ride := range expired {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := m.migrateRide(ctx, ride, cutoff); err != nil {
				failed++
				metrics.IncMigrationFailure()
				logger.ErrorCtx(ctx, "Failed to migrate ride",
					logger.String("ride_id", ride.ID.String()),
					logger.Err(err))
				continue
			}
			progressed = true
			migrated++
			metrics.IncRideMigrated()
		}

		// Every ride in the batch failed; stop rather than spin on the
		// same rides until the next scheduled run.
		if !progressed {
			break
		}
	}

	logger.InfoCtx(ctx, "Ride migration run finished",
		logger.Int("migrated", migrated),
		logger.Int("failed", failed))

	return nil
}

// migrateRide copies one ride into the inactive store, flips every
// back-reference to its inactive relation and only then deletes the
// active row. Each step is idempotent, so a partial failure is repaired
// by running the ride through again.
func (m *Migrator) migrateRide(ctx context.Context, ride *models.Ride, migratedAt time.Time) error {
	if err := m.repo.CopyToInactive(ctx, ride, migratedAt); err != nil {
		return fmt.Errorf("failed to snapshot ride: %w", err)
	}

	if err := m.refs.MarkInactive(ctx, ride.OwnerID, ride.ID); err != nil {
		return fmt.Errorf("failed to mark owner reference inactive: %w", err)
	}
	for _, p := range ride.Passengers {
		if p.Status == models.PassengerStatusAccepted {
			if err := m.refs.MarkInactive(ctx, p.UserID, ride.ID); err != nil {
				return fmt.Errorf("failed to mark passenger reference inactive: %w", err)
			}
			continue
		}
		// Pending requesters never got a joined reference, so the
		// inactive one is written directly; the upsert keeps re-runs
		// no-ops.
		if err := m.refs.AddRef(ctx, p.UserID, ride.ID, models.RelationJoinedInactive); err != nil {
			return fmt.Errorf("failed to archive pending request reference: %w", err)
		}
	}

	if err := m.geo.RemoveRide(ctx, ride.ID); err != nil {
		logger.WarnCtx(ctx, "Failed to remove migrated ride from geo index",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}

	if err := m.repo.DeleteRide(ctx, ride.ID); err != nil {
		return fmt.Errorf("failed to delete active ride: %w", err)
	}

	return nil
}
