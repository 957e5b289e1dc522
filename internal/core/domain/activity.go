package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Activity is a stored ride. Rows are never updated, only inserted or
// discarded wholesale on a full resync.
type Activity struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	BikeID       *uuid.UUID `json:"bike_id,omitempty"`
	ExternalID   int64      `json:"external_id"`
	Name         string     `json:"name"`
	Distance     int64      `json:"distance"`    // meters
	MovingTime   int        `json:"moving_time"` // seconds
	StartDate    time.Time  `json:"start_date"`
	ActivityType string     `json:"activity_type"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CyclingActivityTypes are the activity types that count toward bike wear.
var CyclingActivityTypes = []string{"Ride", "VirtualRide", "EBikeRide", "Handcycle", "Velomobile"}

func IsCyclingActivity(activityType string) bool {
	return slices.Contains(CyclingActivityTypes, activityType)
}

type ActivityStats struct {
	TotalActivities int64         `json:"total_activities"`
	TotalDistance   int64         `json:"total_distance"`
	Last30Days      ActivityTotal `json:"last_30_days"`
}

type ActivityTotal struct {
	Activities int64 `json:"activities"`
	Distance   int64 `json:"distance"`
}
