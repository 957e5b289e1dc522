package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type ComponentRepository interface {
	CreateComponent(ctx context.Context, component *domain.Component) (*domain.Component, error)
	CreateComponents(ctx context.Context, components []*domain.Component) error
	GetComponentByID(ctx context.Context, componentID uuid.UUID) (*domain.Component, error)
	GetComponentsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.Component, error)
	GetActiveComponentsByBikeIDs(ctx context.Context, bikeIDs []uuid.UUID) ([]*domain.Component, error)
	GetComponentHistory(ctx context.Context, bikeID uuid.UUID, t domain.ComponentType) ([]*domain.Component, error)
	UpdateComponent(ctx context.Context, component *domain.Component) (*domain.Component, error)
	UpdateCurrentDistance(ctx context.Context, componentID uuid.UUID, distance int64) error
	// ReplaceComponent retires componentID at replacedAt and inserts successor
	// in the same transaction.
	ReplaceComponent(ctx context.Context, componentID uuid.UUID, replacedAt time.Time, notes *string, successor *domain.Component) (*domain.Component, error)
	DeleteComponent(ctx context.Context, componentID uuid.UUID) error
}

type ComponentService interface {
	AddCustom(ctx context.Context, bikeID string, in domain.CustomComponentInput) (*domain.Component, error)
	GetComponentByID(ctx context.Context, componentID string) (*domain.Component, error)
	UpdateComponent(ctx context.Context, componentID string, upd domain.ComponentUpdate) (*domain.Component, error)
	DeleteComponent(ctx context.Context, componentID string) error
	ReplaceComponent(ctx context.Context, componentID string, replacedAt time.Time, notes *string) (*domain.Component, error)
	History(ctx context.Context, bikeID string, t domain.ComponentType) ([]*domain.Component, error)
}
