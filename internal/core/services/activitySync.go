package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

const (
	// ActivityBatchSize is the number of rows per insert.
	ActivityBatchSize = 100
	// FullSyncMaxPages bounds a full resync.
	FullSyncMaxPages = 200
	// IncrementalMaxPages bounds an incremental sync.
	IncrementalMaxPages = 10
)

type ActivitySyncService struct {
	activityRepo     ports.ActivityRepository
	bikeRepo         ports.BikeRepository
	syncRepo         ports.SyncStatusRepository
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
	incrementalPages int
	now              func() time.Time
}

func NewActivitySyncService(
	activityRepo ports.ActivityRepository,
	bikeRepo ports.BikeRepository,
	syncRepo ports.SyncStatusRepository,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	incrementalPages int,
) *ActivitySyncService {
	if incrementalPages <= 0 {
		incrementalPages = IncrementalMaxPages
	}
	return &ActivitySyncService{
		activityRepo:     activityRepo,
		bikeRepo:         bikeRepo,
		syncRepo:         syncRepo,
		logger:           logger,
		metrics:          metrics,
		incrementalPages: incrementalPages,
		now:              time.Now,
	}
}

// SyncActivities ingests cycling activities for userID. A full sync drops
// the stored activities first and reads from the beginning; otherwise only
// activities after the last completed sync are read. Pages read before a
// fetch error are still stored.
func (s *ActivitySyncService) SyncActivities(ctx context.Context, userID uuid.UUID, source ports.ActivitySource, fullSync bool) *domain.ActivitySyncResult {
	start := s.now()
	result := &domain.ActivitySyncResult{Phase: domain.PhaseIdle}
	log := map[string]interface{}{"user_id": userID.String()}

	status, err := s.syncRepo.GetSyncStatus(ctx, userID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read sync status: %v", err))
		result.Phase = domain.PhasePartialFailure
		s.finish(ctx, userID, result, false, start)
		return result
	}

	since := time.Unix(0, 0)
	if !fullSync && (status == nil || status.LastActivitySync == nil) {
		fullSync = true
	}
	if !fullSync {
		since = *status.LastActivitySync
	}
	result.FullSync = fullSync

	maxPages := s.incrementalPages
	if fullSync {
		maxPages = FullSyncMaxPages
		deleted, err := s.activityRepo.DeleteActivitiesByUserID(ctx, userID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to clear activities: %v", err))
			result.Phase = domain.PhasePartialFailure
			s.finish(ctx, userID, result, false, start)
			return result
		}
		log["deleted"] = deleted

		// stored history is gone until a full fetch completes
		if err := s.syncRepo.ResetActivitySync(ctx, userID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to reset sync status: %v", err))
		}
	}

	// fetching
	result.Phase = domain.PhaseFetching
	var fetched []domain.ExternalActivity
	complete := true
	for page, err := range source.ActivitiesSince(ctx, since, maxPages) {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to fetch activities: %v", err))
			complete = false
			break
		}
		fetched = append(fetched, page...)
	}

	// diffing
	result.Phase = domain.PhaseDiffing
	pending, skipped, err := s.diff(ctx, fetched)
	result.Skipped = skipped
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to check stored activities: %v", err))
		result.Phase = domain.PhasePartialFailure
		s.finish(ctx, userID, result, false, start)
		return result
	}

	bikeIDs, err := s.bikeIndex(ctx, userID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to load bikes: %v", err))
	}

	// persisting
	result.Phase = domain.PhasePersisting
	rows := make([]*domain.Activity, 0, len(pending))
	for _, a := range pending {
		rows = append(rows, toActivity(userID, a, bikeIDs))
	}
	for batchStart := 0; batchStart < len(rows); batchStart += ActivityBatchSize {
		batch := rows[batchStart:min(batchStart+ActivityBatchSize, len(rows))]
		if err := s.activityRepo.InsertActivities(ctx, batch); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to insert activities batch: %v", err))
			// rows of this batch must be read again next time
			complete = false
			continue
		}
		result.Synced += len(batch)
	}

	if len(result.Errors) > 0 {
		result.Phase = domain.PhasePartialFailure
	} else {
		result.Phase = domain.PhaseDone
	}

	s.finish(ctx, userID, result, complete, start)

	log["full_sync"] = fullSync
	log["fetched"] = len(fetched)
	log["synced"] = result.Synced
	log["skipped"] = result.Skipped
	log["phase"] = result.Phase
	s.logger.Info("Activity sync finished", log)

	return result
}

// diff drops non-cycling activities, duplicates within the fetched set and
// activities already stored. Dropped entries count as skipped.
func (s *ActivitySyncService) diff(ctx context.Context, fetched []domain.ExternalActivity) ([]domain.ExternalActivity, int, error) {
	skipped := 0
	seen := make(map[int64]struct{}, len(fetched))
	cycling := make([]domain.ExternalActivity, 0, len(fetched))
	ids := make([]int64, 0, len(fetched))

	for _, a := range fetched {
		if !domain.IsCyclingActivity(a.ActivityType()) {
			skipped++
			continue
		}
		if _, dup := seen[a.ID]; dup {
			skipped++
			continue
		}
		seen[a.ID] = struct{}{}
		cycling = append(cycling, a)
		ids = append(ids, a.ID)
	}

	if len(ids) == 0 {
		return nil, skipped, nil
	}

	existing, err := s.activityRepo.ExistingExternalIDs(ctx, ids)
	if err != nil {
		return nil, skipped, err
	}

	pending := make([]domain.ExternalActivity, 0, len(cycling))
	for _, a := range cycling {
		if _, ok := existing[a.ID]; ok {
			skipped++
			continue
		}
		pending = append(pending, a)
	}
	return pending, skipped, nil
}

func (s *ActivitySyncService) bikeIndex(ctx context.Context, userID uuid.UUID) (map[string]uuid.UUID, error) {
	bikes, err := s.bikeRepo.GetBikesByUserID(ctx, userID)
	if err != nil {
		return map[string]uuid.UUID{}, err
	}
	index := make(map[string]uuid.UUID, len(bikes))
	for _, b := range bikes {
		if b.ExternalID != "" {
			index[b.ExternalID] = b.BikeID
		}
	}
	return index, nil
}

func toActivity(userID uuid.UUID, a domain.ExternalActivity, bikeIDs map[string]uuid.UUID) *domain.Activity {
	out := &domain.Activity{
		ID:           uuid.New(),
		UserID:       userID,
		ExternalID:   a.ID,
		Name:         a.Name,
		Distance:     int64(math.Round(a.Distance)),
		MovingTime:   a.MovingTime,
		StartDate:    a.StartDate,
		ActivityType: a.ActivityType(),
	}
	if a.GearID != nil {
		if bikeID, ok := bikeIDs[*a.GearID]; ok {
			out.BikeID = &bikeID
		}
	}
	return out
}

// finish records the error summary and, when every fetched page was stored, the new
// last-sync timestamp.
func (s *ActivitySyncService) finish(ctx context.Context, userID uuid.UUID, result *domain.ActivitySyncResult, complete bool, start time.Time) {
	var at *time.Time
	if complete {
		now := s.now()
		at = &now
	}

	var summary *string
	if len(result.Errors) > 0 {
		joined := strings.Join(result.Errors, "; ")
		summary = &joined
	}

	if err := s.syncRepo.RecordActivitySync(ctx, userID, at, summary); err != nil {
		s.logger.Error("Failed to record activity sync status", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
	}

	outcome := "ok"
	switch {
	case result.Phase == domain.PhasePartialFailure && result.Synced == 0:
		outcome = "failed"
	case result.Phase == domain.PhasePartialFailure:
		outcome = "partial"
	}
	s.metrics.RecordSync("activities", outcome, s.now().Sub(start))
}
