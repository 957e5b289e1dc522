package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type dashboardStatsSource interface {
	DashboardStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error)
}

// SyncService runs a combined sync for one user: activities first, then
// bikes, then fresh dashboard aggregates.
type SyncService struct {
	tokens     ports.TokenProvider
	sources    ports.ActivitySourceFactory
	activities ports.ActivitySyncer
	bikes      ports.BikeSyncer
	stats      dashboardStatsSource
	syncRepo   ports.SyncStatusRepository
	cache      ports.CachePort
	logger     ports.LoggerPort
}

func NewSyncService(
	tokens ports.TokenProvider,
	sources ports.ActivitySourceFactory,
	activities ports.ActivitySyncer,
	bikes ports.BikeSyncer,
	stats dashboardStatsSource,
	syncRepo ports.SyncStatusRepository,
	cache ports.CachePort,
	logger ports.LoggerPort,
) *SyncService {
	return &SyncService{
		tokens:     tokens,
		sources:    sources,
		activities: activities,
		bikes:      bikes,
		stats:      stats,
		syncRepo:   syncRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (s *SyncService) Sync(ctx context.Context, userID uuid.UUID, fullSync bool) *domain.SyncResult {
	token, err := s.tokens.AccessToken(ctx, userID)
	if err != nil {
		s.logger.Error("Sync aborted, no access token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
		return &domain.SyncResult{
			Success: false,
			Errors:  []string{"Sync failed: " + err.Error()},
		}
	}
	source := s.sources.ForToken(token)

	// component distances are derived from data the activity pass refreshes
	activityResult := s.activities.SyncActivities(ctx, userID, source, fullSync)
	bikeResult := s.bikes.SyncBikes(ctx, userID, source)

	var errs []string
	errs = append(errs, activityResult.Errors...)
	errs = append(errs, bikeResult.Errors...)

	if err := s.cache.Delete(statsCacheKey(userID)); err != nil {
		s.logger.Warn("Failed to invalidate stats cache", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
	}

	stats, err := s.stats.DashboardStats(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to compute dashboard stats after sync", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
		stats = nil
	}

	result := &domain.SyncResult{
		Success: len(errs) == 0,
		Bikes: &domain.BikeCounts{
			Synced:  bikeResult.Synced,
			Created: bikeResult.Created,
			Updated: bikeResult.Updated,
		},
		Activities: &domain.ActivityCounts{
			Synced:  activityResult.Synced,
			Skipped: activityResult.Skipped,
		},
		Errors: errs,
		Stats:  stats,
	}

	s.logger.Info("Sync completed", map[string]interface{}{
		"user_id":   userID.String(),
		"full_sync": activityResult.FullSync,
		"success":   result.Success,
		"errors":    len(errs),
	})

	return result
}

// GetStatus returns an empty status for users that never synced.
func (s *SyncService) GetStatus(ctx context.Context, userID uuid.UUID) (*domain.SyncStatus, error) {
	status, err := s.syncRepo.GetSyncStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return &domain.SyncStatus{UserID: userID}, nil
	}
	return status, nil
}
