package domain

import (
	"time"

	"github.com/google/uuid"
)

type SyncStatus struct {
	UserID           uuid.UUID  `json:"user_id"`
	LastActivitySync *time.Time `json:"last_activity_sync,omitempty"`
	LastBikeSync     *time.Time `json:"last_bike_sync,omitempty"`
	LastSyncError    *string    `json:"last_sync_error,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// LastSync prefers the bike sync time over the activity sync time.
func (s *SyncStatus) LastSync() *time.Time {
	if s == nil {
		return nil
	}
	if s.LastBikeSync != nil {
		return s.LastBikeSync
	}
	return s.LastActivitySync
}

// SyncPhase tracks one sync invocation.
type SyncPhase string

const (
	PhaseIdle           SyncPhase = "idle"
	PhaseFetching       SyncPhase = "fetching"
	PhaseDiffing        SyncPhase = "diffing"
	PhasePersisting     SyncPhase = "persisting"
	PhaseDone           SyncPhase = "done"
	PhasePartialFailure SyncPhase = "partial_failure"
)

type BikeSyncResult struct {
	Synced  int      `json:"synced"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors,omitempty"`
}

type ActivitySyncResult struct {
	Synced   int       `json:"synced"`
	Skipped  int       `json:"skipped"`
	FullSync bool      `json:"full_sync"`
	Phase    SyncPhase `json:"phase"`
	Errors   []string  `json:"errors,omitempty"`
}

type BikeCounts struct {
	Synced  int `json:"synced"`
	Created int `json:"created"`
	Updated int `json:"updated"`
}

type ActivityCounts struct {
	Synced  int `json:"synced"`
	Skipped int `json:"skipped"`
}

// SyncResult is what a combined sync reports to the caller.
type SyncResult struct {
	Success    bool            `json:"success"`
	Bikes      *BikeCounts     `json:"bikes,omitempty"`
	Activities *ActivityCounts `json:"activities,omitempty"`
	Errors     []string        `json:"errors,omitempty"`
	Stats      *DashboardStats `json:"stats,omitempty"`
}

type DashboardStats struct {
	TotalBikes                 int        `json:"totalBikes"`
	TotalDistance              int64      `json:"totalDistance"`
	ComponentsNeedingAttention int        `json:"componentsNeedingAttention"`
	LastSync                   *time.Time `json:"lastSync"`
}

// DistanceStrategy selects how a component's distance is derived during sync.
type DistanceStrategy string

const (
	// GearDelta uses bike.total_distance - bike_distance_at_install.
	GearDelta DistanceStrategy = "gear_delta"
	// MaxEstimate takes the larger of GearDelta and the summed ride distance
	// recorded on the bike since the component was installed.
	MaxEstimate DistanceStrategy = "max_estimate"
)
