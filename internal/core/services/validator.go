package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

// NewValidator returns a validator that also understands the
// component_type tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("component_type", func(fl validator.FieldLevel) bool {
		return domain.ComponentType(fl.Field().String()).Valid()
	})
	return v
}

func parseID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s ID: %v", domain.ErrInvalidInput, kind, err)
	}
	return parsed, nil
}

func bikeCacheKey(bikeID uuid.UUID) string {
	return fmt.Sprintf("bike:%s", bikeID.String())
}

func statsCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("stats:%s", userID.String())
}
