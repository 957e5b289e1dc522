package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type BikeResponse struct {
	BikeID          uuid.UUID              `json:"bike_id"`
	UserID          uuid.UUID              `json:"user_id"`
	ExternalID      string                 `json:"external_id" example:"b12345678"`
	BikeName        string                 `json:"bike_name" example:"Road bike"`
	BrandName       *string                `json:"brand_name,omitempty" example:"Canyon"`
	ModelName       *string                `json:"model_name,omitempty" example:"Endurace"`
	FrameType       *int                   `json:"frame_type,omitempty" example:"3"`
	Description     *string                `json:"description,omitempty"`
	TotalDistance   int64                  `json:"total_distance" example:"12000000"`
	DistanceLabel   string                 `json:"distance_label" example:"12.0k km"`
	IsPrimary       bool                   `json:"is_primary"`
	Retired         bool                   `json:"retired"`
	Config          *domain.BikeConfig     `json:"config,omitempty"`
	ConfigComplete  bool                   `json:"config_complete"`
	DeletedDefaults []domain.ComponentType `json:"deleted_defaults"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type GetMyBikesResponse struct {
	Bikes []BikeResponse `json:"bikes"`
	Count int            `json:"count"`
}

type ComponentResponse struct {
	ID                    uuid.UUID            `json:"id"`
	BikeID                uuid.UUID            `json:"bike_id"`
	Type                  domain.ComponentType `json:"type" example:"chain"`
	TypeName              string               `json:"type_name" example:"Chain"`
	Name                  string               `json:"name" example:"Chain"`
	Icon                  string               `json:"icon" example:"link"`
	Brand                 string               `json:"brand,omitempty" example:"Shimano"`
	Model                 string               `json:"model,omitempty" example:"CN-HG701"`
	Notes                 string               `json:"notes,omitempty"`
	RecommendedDistance   int64                `json:"recommended_distance" example:"3000000"`
	CurrentDistance       int64                `json:"current_distance" example:"1250000"`
	DistanceLabel         string               `json:"distance_label" example:"1.3k km"`
	BikeDistanceAtInstall int64                `json:"bike_distance_at_install"`
	Wear                  domain.WearInfo      `json:"wear"`
	InstalledAt           time.Time            `json:"installed_at"`
	ReplacedAt            *time.Time           `json:"replaced_at,omitempty"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
}

type GroupEntryResponse struct {
	Label string             `json:"label,omitempty" example:"Tires"`
	Front *ComponentResponse `json:"front,omitempty"`
	Rear  *ComponentResponse `json:"rear,omitempty"`
	Solo  *ComponentResponse `json:"solo,omitempty"`
}

type ComponentGroupResponse struct {
	Category domain.Category      `json:"category" example:"Drivetrain"`
	Entries  []GroupEntryResponse `json:"entries"`
}

type BikeWithComponentsResponse struct {
	BikeResponse
	Components []ComponentResponse      `json:"components"`
	Groups     []ComponentGroupResponse `json:"groups"`
}

type ComponentHistoryResponse struct {
	Type       domain.ComponentType `json:"type" example:"chain"`
	Components []ComponentResponse  `json:"components"`
	Count      int                  `json:"count"`
}

func newBikeResponse(b *domain.Bike) BikeResponse {
	deleted := b.DeletedDefaults
	if deleted == nil {
		deleted = []domain.ComponentType{}
	}
	return BikeResponse{
		BikeID:          b.BikeID,
		UserID:          b.UserID,
		ExternalID:      b.ExternalID,
		BikeName:        b.BikeName,
		BrandName:       b.BrandName,
		ModelName:       b.ModelName,
		FrameType:       b.FrameType,
		Description:     b.Description,
		TotalDistance:   b.TotalDistance,
		DistanceLabel:   domain.FormatDistance(b.TotalDistance),
		IsPrimary:       b.IsPrimary,
		Retired:         b.Retired,
		Config:          b.Config(),
		ConfigComplete:  b.ConfigComplete,
		DeletedDefaults: deleted,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func newComponentResponse(c *domain.Component) ComponentResponse {
	return ComponentResponse{
		ID:                    c.ID,
		BikeID:                c.BikeID,
		Type:                  c.Type,
		TypeName:              c.Type.DisplayName(),
		Name:                  c.Name,
		Icon:                  c.IconKey(),
		Brand:                 c.Brand,
		Model:                 c.Model,
		Notes:                 c.Notes,
		RecommendedDistance:   c.RecommendedDistance,
		CurrentDistance:       c.CurrentDistance,
		DistanceLabel:         domain.FormatDistance(c.CurrentDistance),
		BikeDistanceAtInstall: c.BikeDistanceAtInstall,
		Wear:                  c.Wear(),
		InstalledAt:           c.InstalledAt,
		ReplacedAt:            c.ReplacedAt,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func newComponentResponses(components []*domain.Component) []ComponentResponse {
	out := make([]ComponentResponse, len(components))
	for i, c := range components {
		out[i] = newComponentResponse(c)
	}
	return out
}

func optionalComponent(c *domain.Component) *ComponentResponse {
	if c == nil {
		return nil
	}
	r := newComponentResponse(c)
	return &r
}

func newGroupResponses(groups []domain.ComponentGroup) []ComponentGroupResponse {
	out := make([]ComponentGroupResponse, len(groups))
	for i, g := range groups {
		entries := make([]GroupEntryResponse, len(g.Entries))
		for j, e := range g.Entries {
			entry := GroupEntryResponse{
				Front: optionalComponent(e.Front),
				Rear:  optionalComponent(e.Rear),
				Solo:  optionalComponent(e.Solo),
			}
			if e.Paired() {
				entry.Label = e.Family.Label
			}
			entries[j] = entry
		}
		out[i] = ComponentGroupResponse{Category: g.Category, Entries: entries}
	}
	return out
}
