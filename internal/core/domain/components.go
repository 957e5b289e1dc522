package domain

import (
	"time"

	"github.com/google/uuid"
)

type Component struct {
	ID                    uuid.UUID     `json:"id"`
	BikeID                uuid.UUID     `json:"bike_id" validate:"required"`
	Type                  ComponentType `json:"type" validate:"required,component_type"`
	Name                  string        `json:"name" validate:"required,max=100"`
	Icon                  *string       `json:"icon,omitempty"`
	Brand                 string        `json:"brand,omitempty" validate:"max=100"`
	Model                 string        `json:"model,omitempty" validate:"max=100"`
	Notes                 string        `json:"notes,omitempty" validate:"max=1000"`
	RecommendedDistance   int64         `json:"recommended_distance" validate:"required,min=1"`
	CurrentDistance       int64         `json:"current_distance" validate:"min=0"`
	BikeDistanceAtInstall int64         `json:"bike_distance_at_install" validate:"min=0"`
	InstalledAt           time.Time     `json:"installed_at"`
	ReplacedAt            *time.Time    `json:"replaced_at,omitempty"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

func (c *Component) Active() bool {
	return c.ReplacedAt == nil
}

func (c *Component) IsCustom() bool {
	return c.Type == Custom
}

// CurrentMileage is the distance this instance has covered on a bike that
// has ridden bikeDistance meters in total.
func (c *Component) CurrentMileage(bikeDistance int64) int64 {
	d := bikeDistance - c.BikeDistanceAtInstall
	if d < 0 {
		return 0
	}
	return d
}

func (c *Component) NeedsReplacement() bool {
	return c.CurrentDistance >= c.RecommendedDistance
}

func (c *Component) Wear() WearInfo {
	return Wear(c.CurrentDistance, c.RecommendedDistance)
}

// IconKey returns the custom icon if set, else the icon of the type.
func (c *Component) IconKey() string {
	if c.Icon != nil && *c.Icon != "" {
		return *c.Icon
	}
	return c.Type.Icon()
}

// CustomComponentInput describes a user-defined component. Distances are
// entered in kilometers.
type CustomComponentInput struct {
	Name          string
	RecommendedKm float64
	Icon          *string
}

// ComponentUpdate holds the user-editable fields. Nil fields are left as is.
type ComponentUpdate struct {
	Name                *string
	Brand               *string
	Model               *string
	Notes               *string
	RecommendedDistance *int64
	CurrentDistance     *int64
}

func (c *Component) Apply(u ComponentUpdate) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Brand != nil {
		c.Brand = *u.Brand
	}
	if u.Model != nil {
		c.Model = *u.Model
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
	if u.RecommendedDistance != nil {
		c.RecommendedDistance = *u.RecommendedDistance
	}
	if u.CurrentDistance != nil {
		c.CurrentDistance = *u.CurrentDistance
	}
}

// Successor is the fresh instance that takes over when c is replaced on a
// bike that has ridden bikeDistance meters.
func (c *Component) Successor(bikeDistance int64, installedAt time.Time) *Component {
	return &Component{
		ID:                    uuid.New(),
		BikeID:                c.BikeID,
		Type:                  c.Type,
		Name:                  c.Name,
		Icon:                  c.Icon,
		RecommendedDistance:   c.RecommendedDistance,
		CurrentDistance:       0,
		BikeDistanceAtInstall: bikeDistance,
		InstalledAt:           installedAt,
	}
}
