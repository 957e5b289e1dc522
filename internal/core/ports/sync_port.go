package ports

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

// ActivitySource reads athlete, gear and activity records for one
// authenticated user.
type ActivitySource interface {
	GetAthlete(ctx context.Context) (*domain.Athlete, error)
	GetGear(ctx context.Context, gearID string) (*domain.Gear, error)
	GetActivities(ctx context.Context, q domain.ActivityQuery) ([]domain.ExternalActivity, error)
	ActivitiesSince(ctx context.Context, since time.Time, maxPages int) iter.Seq2[[]domain.ExternalActivity, error]
}

type ActivitySourceFactory interface {
	ForToken(accessToken string) ActivitySource
}

type TokenProvider interface {
	AccessToken(ctx context.Context, userID uuid.UUID) (string, error)
}

type TokenRepository interface {
	GetToken(ctx context.Context, userID uuid.UUID) (*domain.StravaToken, error)
	SaveToken(ctx context.Context, token *domain.StravaToken) error
}

type SyncStatusRepository interface {
	// GetSyncStatus returns (nil, nil) when the user never synced.
	GetSyncStatus(ctx context.Context, userID uuid.UUID) (*domain.SyncStatus, error)
	// RecordActivitySync stores syncErr and, when at is non-nil, advances
	// last_activity_sync.
	RecordActivitySync(ctx context.Context, userID uuid.UUID, at *time.Time, syncErr *string) error
	// ResetActivitySync clears last_activity_sync so the next sync is full.
	ResetActivitySync(ctx context.Context, userID uuid.UUID) error
	RecordBikeSync(ctx context.Context, userID uuid.UUID, at time.Time, syncErr *string) error
}

type BikeSyncer interface {
	SyncBikes(ctx context.Context, userID uuid.UUID, source ActivitySource) *domain.BikeSyncResult
}

type ActivitySyncer interface {
	SyncActivities(ctx context.Context, userID uuid.UUID, source ActivitySource, fullSync bool) *domain.ActivitySyncResult
}

type SyncService interface {
	Sync(ctx context.Context, userID uuid.UUID, fullSync bool) *domain.SyncResult
	GetStatus(ctx context.Context, userID uuid.UUID) (*domain.SyncStatus, error)
}
