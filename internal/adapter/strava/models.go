package strava

import (
	"strconv"
	"time"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

// SummaryGear is a bike listed on the athlete profile.
type SummaryGear struct {
	ID       *string  `json:"id"`
	Name     string   `json:"name,omitempty"`
	Primary  bool     `json:"primary,omitempty"`
	Distance *float64 `json:"distance"`
}

func (m *SummaryGear) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}
	if err := validateDistance("distance", m.Distance); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// DetailedAthlete is the response of GET /athlete.
type DetailedAthlete struct {
	ID        *int64         `json:"id"`
	Username  *string        `json:"username,omitempty"`
	Firstname string         `json:"firstname,omitempty"`
	Lastname  string         `json:"lastname,omitempty"`
	City      *string        `json:"city,omitempty"`
	State     *string        `json:"state,omitempty"`
	Country   *string        `json:"country,omitempty"`
	Profile   string         `json:"profile,omitempty"`
	Bikes     []*SummaryGear `json:"bikes"`
}

func (m *DetailedAthlete) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}
	for i, b := range m.Bikes {
		if b == nil {
			continue
		}
		if err := b.Validate(formats); err != nil {
			if ve, ok := err.(*errors.Validation); ok {
				res = append(res, ve.ValidateName("bikes"+"."+strconv.Itoa(i)))
			} else if ce, ok := err.(*errors.CompositeError); ok {
				res = append(res, ce.ValidateName("bikes"+"."+strconv.Itoa(i)))
			} else {
				res = append(res, err)
			}
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *DetailedAthlete) toDomain() *domain.Athlete {
	a := &domain.Athlete{
		ID:        swag.Int64Value(m.ID),
		Username:  swag.StringValue(m.Username),
		Firstname: m.Firstname,
		Lastname:  m.Lastname,
		City:      swag.StringValue(m.City),
		State:     swag.StringValue(m.State),
		Country:   swag.StringValue(m.Country),
		Profile:   m.Profile,
		Bikes:     make([]domain.GearSummary, 0, len(m.Bikes)),
	}
	for _, b := range m.Bikes {
		if b == nil {
			continue
		}
		a.Bikes = append(a.Bikes, domain.GearSummary{
			ID:       swag.StringValue(b.ID),
			Name:     b.Name,
			Primary:  b.Primary,
			Distance: swag.Float64Value(b.Distance),
		})
	}
	return a
}

// DetailedGear is the response of GET /gear/{id}.
type DetailedGear struct {
	ID          *string  `json:"id"`
	Name        string   `json:"name,omitempty"`
	Primary     bool     `json:"primary,omitempty"`
	Distance    *float64 `json:"distance"`
	BrandName   *string  `json:"brand_name,omitempty"`
	ModelName   *string  `json:"model_name,omitempty"`
	FrameType   *int64   `json:"frame_type,omitempty"`
	Description *string  `json:"description,omitempty"`
}

func (m *DetailedGear) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}
	if err := validateDistance("distance", m.Distance); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *DetailedGear) toDomain() *domain.Gear {
	g := &domain.Gear{
		ID:          swag.StringValue(m.ID),
		Name:        m.Name,
		Primary:     m.Primary,
		Distance:    swag.Float64Value(m.Distance),
		BrandName:   m.BrandName,
		ModelName:   m.ModelName,
		Description: m.Description,
	}
	if m.FrameType != nil {
		ft := int(*m.FrameType)
		g.FrameType = &ft
	}
	return g
}

// SummaryActivity is one entry of GET /athlete/activities.
type SummaryActivity struct {
	ID         *int64           `json:"id"`
	Name       string           `json:"name,omitempty"`
	Distance   *float64         `json:"distance"`
	MovingTime int64            `json:"moving_time,omitempty"`
	StartDate  *strfmt.DateTime `json:"start_date"`
	Type       string           `json:"type,omitempty"`
	SportType  string           `json:"sport_type,omitempty"`
	GearID     *string          `json:"gear_id,omitempty"`
}

func (m *SummaryActivity) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}
	if err := validateDistance("distance", m.Distance); err != nil {
		res = append(res, err)
	}
	if err := validate.MinimumInt("moving_time", "body", m.MovingTime, 0, false); err != nil {
		res = append(res, err)
	}
	if err := validate.Required("start_date", "body", m.StartDate); err != nil {
		res = append(res, err)
	} else if err := validate.FormatOf("start_date", "body", "date-time", m.StartDate.String(), formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *SummaryActivity) toDomain() domain.ExternalActivity {
	var start time.Time
	if m.StartDate != nil {
		start = time.Time(*m.StartDate)
	}
	return domain.ExternalActivity{
		ID:         swag.Int64Value(m.ID),
		Name:       m.Name,
		Distance:   swag.Float64Value(m.Distance),
		MovingTime: int(m.MovingTime),
		StartDate:  start,
		Type:       m.Type,
		SportType:  m.SportType,
		GearID:     m.GearID,
	}
}

func validateDistance(path string, d *float64) error {
	if err := validate.Required(path, "body", d); err != nil {
		return err
	}
	if err := validate.Minimum(path, "body", *d, 0, false); err != nil {
		return err
	}
	return nil
}
