package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

const defaultDistanceWorkers = 8

type BikeSyncService struct {
	bikeRepo      ports.BikeRepository
	componentRepo ports.ComponentRepository
	activityRepo  ports.ActivityRepository
	syncRepo      ports.SyncStatusRepository
	cache         ports.CachePort
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
	strategy      domain.DistanceStrategy
	workers       int
	now           func() time.Time
}

func NewBikeSyncService(
	bikeRepo ports.BikeRepository,
	componentRepo ports.ComponentRepository,
	activityRepo ports.ActivityRepository,
	syncRepo ports.SyncStatusRepository,
	cache ports.CachePort,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	strategy domain.DistanceStrategy,
	workers int,
) *BikeSyncService {
	if strategy == "" {
		strategy = domain.GearDelta
	}
	if workers <= 0 {
		workers = defaultDistanceWorkers
	}
	return &BikeSyncService{
		bikeRepo:      bikeRepo,
		componentRepo: componentRepo,
		activityRepo:  activityRepo,
		syncRepo:      syncRepo,
		cache:         cache,
		logger:        logger,
		metrics:       metrics,
		strategy:      strategy,
		workers:       workers,
		now:           time.Now,
	}
}

// SyncBikes upserts every bike on the athlete profile, recomputes the
// distance of its active components and backfills missing defaults. A
// failing bike is recorded in the result and the rest are still processed.
func (s *BikeSyncService) SyncBikes(ctx context.Context, userID uuid.UUID, source ports.ActivitySource) *domain.BikeSyncResult {
	start := s.now()
	result := &domain.BikeSyncResult{}

	athlete, err := source.GetAthlete(ctx)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to fetch athlete: %v", err))
	} else {
		for _, summary := range athlete.Bikes {
			created, err := s.syncBike(ctx, userID, source, summary, result)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Error syncing bike %s: %v", summary.Name, err))
				continue
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
			result.Synced++
		}
	}

	s.recordStatus(ctx, userID, result)

	outcome := "ok"
	if len(result.Errors) > 0 {
		outcome = "partial"
	}
	s.metrics.RecordSync("bikes", outcome, s.now().Sub(start))

	s.logger.Info("Bike sync finished", map[string]interface{}{
		"user_id": userID.String(),
		"synced":  result.Synced,
		"created": result.Created,
		"updated": result.Updated,
		"errors":  len(result.Errors),
	})

	return result
}

func (s *BikeSyncService) syncBike(
	ctx context.Context,
	userID uuid.UUID,
	source ports.ActivitySource,
	summary domain.GearSummary,
	result *domain.BikeSyncResult,
) (bool, error) {
	gear, err := source.GetGear(ctx, summary.ID)
	if err != nil {
		return false, err
	}

	existing, err := s.bikeRepo.GetBikeByExternalID(ctx, userID, summary.ID)
	if err != nil {
		return false, err
	}

	if existing == nil {
		return true, s.createBike(ctx, userID, gear)
	}
	return false, s.updateBike(ctx, existing, gear, result)
}

func applyGear(bike *domain.Bike, gear *domain.Gear) {
	bike.BikeName = gear.Name
	bike.BrandName = gear.BrandName
	bike.ModelName = gear.ModelName
	bike.FrameType = gear.FrameType
	bike.Description = gear.Description
	bike.TotalDistance = int64(math.Round(gear.Distance))
	bike.IsPrimary = gear.Primary
}

func (s *BikeSyncService) createBike(ctx context.Context, userID uuid.UUID, gear *domain.Gear) error {
	bike := &domain.Bike{
		UserID:     userID,
		BikeID:     uuid.New(),
		ExternalID: gear.ID,
	}
	applyGear(bike, gear)

	created, err := s.bikeRepo.CreateBike(ctx, bike)
	if err != nil {
		return err
	}

	components := domain.ComponentsFor(created.BikeID, created.TotalDistance, created.Config(), s.now())
	if err := s.componentRepo.CreateComponents(ctx, components); err != nil {
		return fmt.Errorf("create default components: %w", err)
	}

	s.logger.Info("Bike created from sync", map[string]interface{}{
		"bike_id":    created.BikeID.String(),
		"gear_id":    gear.ID,
		"distance":   domain.FormatDistance(created.TotalDistance),
		"components": len(components),
	})
	return nil
}

func (s *BikeSyncService) updateBike(ctx context.Context, bike *domain.Bike, gear *domain.Gear, result *domain.BikeSyncResult) error {
	applyGear(bike, gear)

	updated, err := s.bikeRepo.UpdateBike(ctx, bike)
	if err != nil {
		return err
	}

	components, err := s.componentRepo.GetComponentsByBikeID(ctx, updated.BikeID)
	if err != nil {
		return err
	}
	active := make([]*domain.Component, 0, len(components))
	for _, c := range components {
		if c.Active() {
			active = append(active, c)
		}
	}

	result.Errors = append(result.Errors, s.recomputeDistances(ctx, updated, active)...)

	missing := domain.MissingDefaults(updated, active, s.now())
	if len(missing) > 0 {
		if err := s.componentRepo.CreateComponents(ctx, missing); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to backfill components for bike %s: %v", updated.BikeName, err))
		} else {
			s.logger.Info("Backfilled default components", map[string]interface{}{
				"bike_id": updated.BikeID.String(),
				"count":   len(missing),
			})
		}
	}

	if err := s.cache.Delete(bikeCacheKey(updated.BikeID)); err != nil {
		s.logger.Warn("Failed to invalidate bike cache", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": updated.BikeID.String(),
		})
	}
	return nil
}

// recomputeDistances writes the derived distance of every active
// non-custom component whose stored value differs. Row failures are
// returned as messages and do not stop the other rows.
func (s *BikeSyncService) recomputeDistances(ctx context.Context, bike *domain.Bike, components []*domain.Component) []string {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	var (
		mu   sync.Mutex
		errs []string
	)

	for _, c := range components {
		if !c.Active() || c.IsCustom() {
			continue
		}

		g.Go(func() error {
			distance, err := s.distanceFor(gctx, bike, c)
			if err == nil && distance != c.CurrentDistance {
				err = s.componentRepo.UpdateCurrentDistance(gctx, c.ID, distance)
				if err == nil {
					c.CurrentDistance = distance
				}
			}
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Sprintf("Failed to update distance of %s on bike %s: %v", c.Type.DisplayName(), bike.BikeName, err))
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()
	return errs
}

func (s *BikeSyncService) distanceFor(ctx context.Context, bike *domain.Bike, c *domain.Component) (int64, error) {
	gearDelta := c.CurrentMileage(bike.TotalDistance)
	if s.strategy != domain.MaxEstimate {
		return gearDelta, nil
	}

	ridden, err := s.activityRepo.SumDistanceSince(ctx, bike.BikeID, c.InstalledAt)
	if err != nil {
		return 0, err
	}
	return max(gearDelta, ridden), nil
}

func (s *BikeSyncService) recordStatus(ctx context.Context, userID uuid.UUID, result *domain.BikeSyncResult) {
	var summary *string
	if len(result.Errors) > 0 {
		joined := strings.Join(result.Errors, "; ")
		summary = &joined
	}

	if err := s.syncRepo.RecordBikeSync(ctx, userID, s.now(), summary); err != nil {
		s.logger.Error("Failed to record bike sync status", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
	}
}
