package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type BikeRepository interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error)
	// GetBikeByExternalID returns (nil, nil) when the user has no bike with that gear id.
	GetBikeByExternalID(ctx context.Context, userID uuid.UUID, externalID string) (*domain.Bike, error)
	GetBikesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	SaveConfig(ctx context.Context, bikeID uuid.UUID, cfg *domain.BikeConfig) (*domain.Bike, error)
	SetRetired(ctx context.Context, bikeID uuid.UUID, retired bool) (*domain.Bike, error)
	AddDeletedDefault(ctx context.Context, bikeID uuid.UUID, t domain.ComponentType) error
}

type BikeService interface {
	GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error)
	GetBikesByUserID(ctx context.Context, userID string) ([]*domain.Bike, error)
	GetBikeWithComponents(ctx context.Context, bikeID string) (*domain.BikeDetail, error)
	SaveConfig(ctx context.Context, bikeID string, cfg *domain.BikeConfig) (*domain.Bike, error)
	SetRetired(ctx context.Context, bikeID string, retired bool) (*domain.Bike, error)
	DashboardStats(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error)
	ActivityStats(ctx context.Context, userID uuid.UUID) (*domain.ActivityStats, error)
}
