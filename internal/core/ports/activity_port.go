package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type ActivityRepository interface {
	DeleteActivitiesByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	// ExistingExternalIDs returns the subset of ids already stored.
	ExistingExternalIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)
	InsertActivities(ctx context.Context, activities []*domain.Activity) error
	SumDistanceSince(ctx context.Context, bikeID uuid.UUID, since time.Time) (int64, error)
	GetActivityStats(ctx context.Context, userID uuid.UUID, since time.Time) (*domain.ActivityStats, error)
}
