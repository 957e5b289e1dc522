package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type Bike struct {
	UserID          uuid.UUID       `json:"user_id"`
	BikeID          uuid.UUID       `json:"bike_id"`
	ExternalID      string          `json:"external_id"` // strava gear id
	BikeName        string          `json:"bike_name"`
	BrandName       *string         `json:"brand_name,omitempty"`
	ModelName       *string         `json:"model_name,omitempty"`
	FrameType       *int            `json:"frame_type,omitempty"`
	Description     *string         `json:"description,omitempty"`
	TotalDistance   int64           `json:"total_distance"` // meters
	IsPrimary       bool            `json:"is_primary"`
	Retired         bool            `json:"retired"`
	ShiftingType    *ShiftingType   `json:"shifting_type,omitempty"`
	BrakeType       *BrakeType      `json:"brake_type,omitempty"`
	DrivetrainSpeed *int            `json:"drivetrain_speed,omitempty"`
	TireSystem      *TireSystem     `json:"tire_system,omitempty"`
	ConfigComplete  bool            `json:"config_complete"`
	DeletedDefaults []ComponentType `json:"deleted_defaults"`
	Components      []*Component    `json:"components,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ShiftingType string

const (
	Mechanical ShiftingType = "mechanical"
	Electronic ShiftingType = "electronic"
)

type BrakeType string

const (
	Disc BrakeType = "disc"
	Rim  BrakeType = "rim"
)

type TireSystem string

const (
	Tubeless TireSystem = "tubeless"
	Clincher TireSystem = "clincher"
	Tubular  TireSystem = "tubular"
)

// BikeConfig describes the parts of a bike that decide which components exist.
type BikeConfig struct {
	ShiftingType    ShiftingType `json:"shifting_type" validate:"required,oneof=mechanical electronic"`
	BrakeType       BrakeType    `json:"brake_type" validate:"required,oneof=disc rim"`
	DrivetrainSpeed int          `json:"drivetrain_speed" validate:"required,min=8,max=13"`
	TireSystem      TireSystem   `json:"tire_system" validate:"required,oneof=tubeless clincher tubular"`
}

// Config returns the bike configuration, or nil while the bike is unconfigured.
func (b *Bike) Config() *BikeConfig {
	if !b.ConfigComplete || b.ShiftingType == nil || b.BrakeType == nil ||
		b.DrivetrainSpeed == nil || b.TireSystem == nil {
		return nil
	}
	return &BikeConfig{
		ShiftingType:    *b.ShiftingType,
		BrakeType:       *b.BrakeType,
		DrivetrainSpeed: *b.DrivetrainSpeed,
		TireSystem:      *b.TireSystem,
	}
}

// ApplyConfig copies cfg onto the bike and marks the configuration complete.
func (b *Bike) ApplyConfig(cfg BikeConfig) {
	b.ShiftingType = &cfg.ShiftingType
	b.BrakeType = &cfg.BrakeType
	b.DrivetrainSpeed = &cfg.DrivetrainSpeed
	b.TireSystem = &cfg.TireSystem
	b.ConfigComplete = true
}

func (b *Bike) IsDeletedDefault(t ComponentType) bool {
	return slices.Contains(b.DeletedDefaults, t)
}

// BikeDetail is a bike with its visible active components grouped for display.
type BikeDetail struct {
	Bike   *Bike
	Groups []ComponentGroup
}
