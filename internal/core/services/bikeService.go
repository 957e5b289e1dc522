package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

const (
	bikeCacheTTL  = 15 * time.Minute
	statsCacheTTL = 5 * time.Minute
)

type BikeService struct {
	bikeRepo      ports.BikeRepository
	componentRepo ports.ComponentRepository
	activityRepo  ports.ActivityRepository
	syncRepo      ports.SyncStatusRepository
	logger        ports.LoggerPort
	validate      *validator.Validate
	cache         ports.CachePort
	now           func() time.Time
}

func NewBikeService(
	bikeRepo ports.BikeRepository,
	componentRepo ports.ComponentRepository,
	activityRepo ports.ActivityRepository,
	syncRepo ports.SyncStatusRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *BikeService {
	return &BikeService{
		bikeRepo:      bikeRepo,
		componentRepo: componentRepo,
		activityRepo:  activityRepo,
		syncRepo:      syncRepo,
		logger:        logger,
		validate:      validate,
		cache:         cache,
		now:           time.Now,
	}
}

func (s *BikeService) GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return nil, err
	}

	cacheKey := bikeCacheKey(bikeUUID)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cachedBike domain.Bike
		if err := json.Unmarshal(cachedData, &cachedBike); err == nil {
			s.logger.Debug("Bike found in cache", map[string]interface{}{
				"bike_id": bikeID,
			})
			return &cachedBike, nil
		}
	}

	bike, err := s.bikeRepo.GetBikeByID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.cacheJSON(cacheKey, bike, bikeCacheTTL)

	return bike, nil
}

// GetBikesByUserID lists the user's bikes that are not retired.
func (s *BikeService) GetBikesByUserID(ctx context.Context, userID string) ([]*domain.Bike, error) {
	userUUID, err := parseID("user", userID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	bikes, err := s.activeBikes(ctx, userUUID)
	if err != nil {
		s.logger.Error("Failed to get bikes", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}

	s.logger.Info("Retrieved bikes for user", map[string]interface{}{
		"user_id":     userID,
		"bikes_count": len(bikes),
	})

	return bikes, nil
}

func (s *BikeService) activeBikes(ctx context.Context, userID uuid.UUID) ([]*domain.Bike, error) {
	all, err := s.bikeRepo.GetBikesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	bikes := make([]*domain.Bike, 0, len(all))
	for _, b := range all {
		if !b.Retired {
			bikes = append(bikes, b)
		}
	}
	return bikes, nil
}

// GetBikeWithComponents returns the bike with its active components and the
// visible ones grouped for display.
func (s *BikeService) GetBikeWithComponents(ctx context.Context, bikeID string) (*domain.BikeDetail, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return nil, err
	}

	bike, err := s.bikeRepo.GetBikeByID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	components, err := s.componentRepo.GetComponentsByBikeID(ctx, bikeUUID)
	if err != nil {
		s.logger.Warn("Failed to get components", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		components = []*domain.Component{}
	}

	active := make([]*domain.Component, 0, len(components))
	for _, c := range components {
		if c.Active() {
			active = append(active, c)
		}
	}
	bike.Components = active

	s.logger.Info("Retrieved bike with components", map[string]interface{}{
		"bike_id":          bikeID,
		"components_count": len(active),
	})

	return &domain.BikeDetail{
		Bike:   bike,
		Groups: domain.GroupComponents(active, bike.Config()),
	}, nil
}

// SaveConfig stores the configuration and adds the default components it
// implies that are missing and were not deleted by the user.
func (s *BikeService) SaveConfig(ctx context.Context, bikeID string, cfg *domain.BikeConfig) (*domain.Bike, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is required", domain.ErrInvalidInput)
	}
	if err := s.validate.Struct(cfg); err != nil {
		s.logger.Error("Bike config validation failed", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, fmt.Errorf("%w: validation error: %v", domain.ErrInvalidInput, err)
	}

	bike, err := s.bikeRepo.SaveConfig(ctx, bikeUUID, cfg)
	if err != nil {
		s.logger.Error("Failed to save bike config", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	components, err := s.componentRepo.GetComponentsByBikeID(ctx, bikeUUID)
	if err != nil {
		return nil, err
	}
	missing := domain.MissingDefaults(bike, components, s.now())
	if len(missing) > 0 {
		if err := s.componentRepo.CreateComponents(ctx, missing); err != nil {
			s.logger.Error("Failed to add configured components", map[string]interface{}{
				"error":   err.Error(),
				"bike_id": bikeID,
			})
			return nil, err
		}
	}

	s.invalidate(bike)

	s.logger.Info("Bike config saved", map[string]interface{}{
		"bike_id":        bikeID,
		"brake_type":     cfg.BrakeType,
		"shifting_type":  cfg.ShiftingType,
		"tire_system":    cfg.TireSystem,
		"added_defaults": len(missing),
	})

	return bike, nil
}

func (s *BikeService) SetRetired(ctx context.Context, bikeID string, retired bool) (*domain.Bike, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return nil, err
	}

	bike, err := s.bikeRepo.SetRetired(ctx, bikeUUID, retired)
	if err != nil {
		s.logger.Error("Failed to update bike retired flag", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.invalidate(bike)

	s.logger.Info("Bike retired flag updated", map[string]interface{}{
		"bike_id": bikeID,
		"retired": retired,
	})

	return bike, nil
}

// DashboardStats aggregates the user's bikes that are not retired.
func (s *BikeService) DashboardStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error) {
	cacheKey := statsCacheKey(userID)
	if data, err := s.cache.Get(cacheKey); err == nil {
		var cached domain.DashboardStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	bikes, err := s.activeBikes(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{TotalBikes: len(bikes)}
	bikeIDs := make([]uuid.UUID, 0, len(bikes))
	for _, b := range bikes {
		stats.TotalDistance += b.TotalDistance
		bikeIDs = append(bikeIDs, b.BikeID)
	}

	if len(bikeIDs) > 0 {
		components, err := s.componentRepo.GetActiveComponentsByBikeIDs(ctx, bikeIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range components {
			if domain.NeedsAttention(c.CurrentDistance, c.RecommendedDistance) {
				stats.ComponentsNeedingAttention++
			}
		}
	}

	status, err := s.syncRepo.GetSyncStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.LastSync = status.LastSync()

	s.cacheJSON(cacheKey, stats, statsCacheTTL)

	return stats, nil
}

// ActivityStats reports all-time and 30-day activity totals.
func (s *BikeService) ActivityStats(ctx context.Context, userID uuid.UUID) (*domain.ActivityStats, error) {
	stats, err := s.activityRepo.GetActivityStats(ctx, userID, s.now().AddDate(0, 0, -30))
	if err != nil {
		s.logger.Error("Failed to get activity stats", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
		return nil, err
	}
	return stats, nil
}

func (s *BikeService) cacheJSON(key string, v interface{}, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("Failed to marshal value for cache", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
		return
	}
	if err := s.cache.Set(key, data, ttl); err != nil {
		s.logger.Warn("Failed to write cache", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
	}
}

func (s *BikeService) invalidate(bike *domain.Bike) {
	invalidate(s.cache, s.logger, bike)
}

// invalidate drops the cached bike and its owner's dashboard stats.
func invalidate(cache ports.CachePort, logger ports.LoggerPort, bike *domain.Bike) {
	for _, key := range []string{bikeCacheKey(bike.BikeID), statsCacheKey(bike.UserID)} {
		if err := cache.Delete(key); err != nil {
			logger.Warn("Failed to invalidate cache", map[string]interface{}{
				"error": err.Error(),
				"key":   key,
			})
		}
	}
}
