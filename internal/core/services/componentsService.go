package services

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type ComponentService struct {
	componentRepo ports.ComponentRepository
	bikeRepo      ports.BikeRepository
	logger        ports.LoggerPort
	validate      *validator.Validate
	cache         ports.CachePort
	now           func() time.Time
}

func NewComponentService(
	componentRepo ports.ComponentRepository,
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *ComponentService {
	return &ComponentService{
		componentRepo: componentRepo,
		bikeRepo:      bikeRepo,
		logger:        logger,
		validate:      validate,
		cache:         cache,
		now:           time.Now,
	}
}

// AddCustom installs a user-defined component starting at zero distance
// from the bike's current total.
func (s *ComponentService) AddCustom(ctx context.Context, bikeID string, in domain.CustomComponentInput) (*domain.Component, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if in.RecommendedKm <= 0 {
		return nil, fmt.Errorf("%w: distance must be greater than 0", domain.ErrInvalidInput)
	}
	if in.Icon != nil && !slices.Contains(domain.CustomIconKeys, *in.Icon) {
		return nil, fmt.Errorf("%w: unknown icon %q", domain.ErrInvalidInput, *in.Icon)
	}

	bike, err := s.bikeRepo.GetBikeByID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	component := &domain.Component{
		BikeID:                bike.BikeID,
		Type:                  domain.Custom,
		Name:                  name,
		Icon:                  in.Icon,
		RecommendedDistance:   int64(math.Round(in.RecommendedKm * 1000)),
		CurrentDistance:       0,
		BikeDistanceAtInstall: bike.TotalDistance,
		InstalledAt:           s.now(),
	}
	if err := s.validate.Struct(component); err != nil {
		s.logger.Error("Component validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: validation error: %v", domain.ErrInvalidInput, err)
	}

	createdComponent, err := s.componentRepo.CreateComponent(ctx, component)
	if err != nil {
		s.logger.Error("Failed to create component", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	invalidate(s.cache, s.logger, bike)

	s.logger.Info("Custom component created", map[string]interface{}{
		"component_id": createdComponent.ID,
		"bike_id":      createdComponent.BikeID,
		"name":         createdComponent.Name,
	})

	return createdComponent, nil
}

func (s *ComponentService) GetComponentByID(ctx context.Context, componentID string) (*domain.Component, error) {
	componentUUID, err := parseID("component", componentID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"component_id": componentID,
			"error":        err.Error(),
		})
		return nil, err
	}

	component, err := s.componentRepo.GetComponentByID(ctx, componentUUID)
	if err != nil {
		s.logger.Error("Failed to get component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": componentID,
		})
		return nil, err
	}

	return component, nil
}

// UpdateComponent edits the user-owned fields. The distance of a custom
// component may be set by hand; other types derive it from the bike.
func (s *ComponentService) UpdateComponent(ctx context.Context, componentID string, upd domain.ComponentUpdate) (*domain.Component, error) {
	component, err := s.GetComponentByID(ctx, componentID)
	if err != nil {
		return nil, err
	}
	if upd.CurrentDistance != nil && !component.IsCustom() {
		return nil, fmt.Errorf("%w: current distance of %s is derived from the bike", domain.ErrInvalidInput, component.Type)
	}

	component.Apply(upd)
	if err := s.validate.Struct(component); err != nil {
		s.logger.Error("Component validation failed", map[string]interface{}{
			"error":        err.Error(),
			"component_id": componentID,
		})
		return nil, fmt.Errorf("%w: validation error: %v", domain.ErrInvalidInput, err)
	}

	updatedComponent, err := s.componentRepo.UpdateComponent(ctx, component)
	if err != nil {
		s.logger.Error("Failed to update component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": component.ID,
		})
		return nil, err
	}

	s.invalidateBike(ctx, component)

	s.logger.Info("Component updated successfully", map[string]interface{}{
		"component_id": component.ID,
	})

	return updatedComponent, nil
}

// DeleteComponent removes the row. Deleting a generated type records it in
// the bike's deleted_defaults first so sync does not bring it back.
func (s *ComponentService) DeleteComponent(ctx context.Context, componentID string) error {
	component, err := s.GetComponentByID(ctx, componentID)
	if err != nil {
		return err
	}

	if !component.IsCustom() {
		if err := s.bikeRepo.AddDeletedDefault(ctx, component.BikeID, component.Type); err != nil {
			s.logger.Error("Failed to record deleted default", map[string]interface{}{
				"error":   err.Error(),
				"bike_id": component.BikeID,
				"type":    component.Type,
			})
			return err
		}
	}

	if err := s.componentRepo.DeleteComponent(ctx, component.ID); err != nil {
		s.logger.Error("Failed to delete component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": componentID,
		})
		return err
	}

	s.invalidateBike(ctx, component)

	s.logger.Info("Component deleted successfully", map[string]interface{}{
		"component_id": componentID,
		"type":         component.Type,
	})

	return nil
}

// ReplaceComponent retires the component at replacedAt (now when zero) and
// installs a successor that starts at zero from the bike's current total.
func (s *ComponentService) ReplaceComponent(ctx context.Context, componentID string, replacedAt time.Time, notes *string) (*domain.Component, error) {
	now := s.now()
	if replacedAt.IsZero() {
		replacedAt = now
	}
	if replacedAt.After(now) {
		return nil, fmt.Errorf("%w: replacement date is in the future", domain.ErrInvalidInput)
	}

	component, err := s.GetComponentByID(ctx, componentID)
	if err != nil {
		return nil, err
	}
	if !component.Active() {
		return nil, fmt.Errorf("component %s: %w", componentID, domain.ErrAlreadyReplaced)
	}

	bike, err := s.bikeRepo.GetBikeByID(ctx, component.BikeID)
	if err != nil {
		return nil, err
	}

	successor, err := s.componentRepo.ReplaceComponent(ctx, component.ID, replacedAt, notes, component.Successor(bike.TotalDistance, replacedAt))
	if err != nil {
		s.logger.Error("Failed to replace component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": componentID,
		})
		return nil, err
	}

	invalidate(s.cache, s.logger, bike)

	s.logger.Info("Component replaced", map[string]interface{}{
		"component_id":  componentID,
		"successor_id":  successor.ID,
		"bike_distance": domain.FormatDistance(bike.TotalDistance),
		"replaced_at":   replacedAt,
	})

	return successor, nil
}

// History lists every instance of one type on a bike, newest first.
func (s *ComponentService) History(ctx context.Context, bikeID string, t domain.ComponentType) ([]*domain.Component, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return nil, err
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown component type %q", domain.ErrInvalidInput, t)
	}

	components, err := s.componentRepo.GetComponentHistory(ctx, bikeUUID, t)
	if err != nil {
		s.logger.Error("Failed to get component history", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
			"type":    t,
		})
		return nil, err
	}
	return components, nil
}

func (s *ComponentService) invalidateBike(ctx context.Context, component *domain.Component) {
	bike, err := s.bikeRepo.GetBikeByID(ctx, component.BikeID)
	if err != nil {
		s.logger.Warn("Failed to load bike for cache invalidation", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": component.BikeID,
		})
		return
	}
	invalidate(s.cache, s.logger, bike)
}
