package domain

import (
	"time"

	"github.com/google/uuid"
)

const km = 1_000

// Recommended replacement distances, in meters.
const (
	ChainDistance           int64 = 3_000 * km
	CassetteDistance        int64 = 10_000 * km
	ChainringsDistance      int64 = 20_000 * km
	BottomBracketDistance   int64 = 15_000 * km
	PulleyWheelsDistance    int64 = 10_000 * km
	TireFrontDistance       int64 = 5_000 * km
	TireRearDistance        int64 = 4_000 * km
	InnerTubeDistance       int64 = 5_000 * km
	DiscBrakePadsDistance   int64 = 1_500 * km
	RimBrakePadsDistance    int64 = 3_000 * km
	BrakeRotorDistance      int64 = 20_000 * km
	CableDistance           int64 = 10_000 * km
	LegacyBrakePadsDistance int64 = 2_000 * km
)

// DefaultComponent is one entry of a generated component set.
type DefaultComponent struct {
	Type                ComponentType
	RecommendedDistance int64
}

var universalComponents = []DefaultComponent{
	{Chain, ChainDistance},
	{Cassette, CassetteDistance},
	{Chainrings, ChainringsDistance},
	{BottomBracket, BottomBracketDistance},
	{PulleyWheels, PulleyWheelsDistance},
	{TireFront, TireFrontDistance},
	{TireRear, TireRearDistance},
}

// Bikes created before configuration existed carry this set. Historical rows
// depend on it, so it stays selectable for unconfigured bikes.
var legacyComponents = []DefaultComponent{
	{Chain, ChainDistance},
	{Cassette, CassetteDistance},
	{Chainrings, ChainringsDistance},
	{BottomBracket, BottomBracketDistance},
	{TireFront, TireFrontDistance},
	{TireRear, TireRearDistance},
	{BrakePadsFront, LegacyBrakePadsDistance},
	{BrakePadsRear, LegacyBrakePadsDistance},
	{Cables, CableDistance},
}

// DefaultSet lists the component types that should exist for cfg.
// A nil cfg selects the legacy set.
func DefaultSet(cfg *BikeConfig) []DefaultComponent {
	if cfg == nil {
		return append([]DefaultComponent(nil), legacyComponents...)
	}

	set := append([]DefaultComponent(nil), universalComponents...)

	padDistance := RimBrakePadsDistance
	if cfg.BrakeType == Disc {
		padDistance = DiscBrakePadsDistance
	}
	set = append(set,
		DefaultComponent{BrakePadsFront, padDistance},
		DefaultComponent{BrakePadsRear, padDistance},
	)

	switch cfg.BrakeType {
	case Disc:
		set = append(set,
			DefaultComponent{BrakeRotorFront, BrakeRotorDistance},
			DefaultComponent{BrakeRotorRear, BrakeRotorDistance},
		)
	case Rim:
		set = append(set, DefaultComponent{BrakeCables, CableDistance})
	}

	if cfg.ShiftingType == Mechanical {
		set = append(set, DefaultComponent{ShiftCables, CableDistance})
	}

	if cfg.TireSystem != Tubeless {
		set = append(set,
			DefaultComponent{InnerTubeFront, InnerTubeDistance},
			DefaultComponent{InnerTubeRear, InnerTubeDistance},
		)
	}

	return set
}

// ComponentsFor builds the component rows a bike should start with. Every
// default is assumed to have been on the bike since the start of recorded
// history.
func ComponentsFor(bikeID uuid.UUID, bikeDistance int64, cfg *BikeConfig, now time.Time) []*Component {
	set := DefaultSet(cfg)
	components := make([]*Component, 0, len(set))
	for _, d := range set {
		components = append(components, &Component{
			ID:                    uuid.New(),
			BikeID:                bikeID,
			Type:                  d.Type,
			Name:                  d.Type.DisplayName(),
			RecommendedDistance:   d.RecommendedDistance,
			CurrentDistance:       bikeDistance,
			BikeDistanceAtInstall: 0,
			InstalledAt:           now,
		})
	}
	return components
}

// MissingDefaults returns the defaults of bike that are neither among the
// active types nor recorded as deleted by the user.
func MissingDefaults(bike *Bike, active []*Component, now time.Time) []*Component {
	present := make(map[ComponentType]struct{}, len(active))
	for _, c := range active {
		if c.Active() {
			present[c.Type] = struct{}{}
		}
	}

	var missing []*Component
	for _, c := range ComponentsFor(bike.BikeID, bike.TotalDistance, bike.Config(), now) {
		if _, ok := present[c.Type]; ok {
			continue
		}
		if bike.IsDeletedDefault(c.Type) {
			continue
		}
		missing = append(missing, c)
	}
	return missing
}
