package domain

import "time"

// Records read from the external activity service.

type Athlete struct {
	ID        int64         `json:"id"`
	Username  string        `json:"username,omitempty"`
	Firstname string        `json:"firstname"`
	Lastname  string        `json:"lastname"`
	City      string        `json:"city,omitempty"`
	State     string        `json:"state,omitempty"`
	Country   string        `json:"country,omitempty"`
	Profile   string        `json:"profile"`
	Bikes     []GearSummary `json:"bikes"`
}

type GearSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Primary  bool    `json:"primary"`
	Distance float64 `json:"distance"`
}

type Gear struct {
	ID          string
	Name        string
	Primary     bool
	Distance    float64 // meters
	BrandName   *string
	ModelName   *string
	FrameType   *int
	Description *string
}

type ExternalActivity struct {
	ID         int64
	Name       string
	Distance   float64 // meters
	MovingTime int
	StartDate  time.Time
	Type       string
	SportType  string
	GearID     *string
}

// ActivityType falls back to the sport type for activities without a type.
func (a ExternalActivity) ActivityType() string {
	if a.Type == "" {
		return a.SportType
	}
	return a.Type
}

type ActivityQuery struct {
	After   *time.Time
	Before  *time.Time
	Page    int
	PerPage int
}
