package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typesOf(set []DefaultComponent) []ComponentType {
	out := make([]ComponentType, 0, len(set))
	for _, d := range set {
		out = append(out, d.Type)
	}
	return out
}

func distanceOf(set []DefaultComponent, t ComponentType) int64 {
	for _, d := range set {
		if d.Type == t {
			return d.RecommendedDistance
		}
	}
	return -1
}

func TestDefaultSet_Legacy(t *testing.T) {
	set := DefaultSet(nil)

	assert.Equal(t, []ComponentType{
		Chain, Cassette, Chainrings, BottomBracket, TireFront, TireRear,
		BrakePadsFront, BrakePadsRear, Cables,
	}, typesOf(set))
	assert.Equal(t, LegacyBrakePadsDistance, distanceOf(set, BrakePadsFront))
	assert.Equal(t, CableDistance, distanceOf(set, Cables))
}

func TestDefaultSet_RimTubelessMechanical(t *testing.T) {
	set := DefaultSet(&BikeConfig{
		ShiftingType:    Mechanical,
		BrakeType:       Rim,
		DrivetrainSpeed: 11,
		TireSystem:      Tubeless,
	})
	types := typesOf(set)

	assert.Contains(t, types, BrakePadsFront)
	assert.Contains(t, types, BrakePadsRear)
	assert.Equal(t, RimBrakePadsDistance, distanceOf(set, BrakePadsFront))
	assert.Contains(t, types, BrakeCables)
	assert.Contains(t, types, ShiftCables)
	assert.NotContains(t, types, BrakeRotorFront)
	assert.NotContains(t, types, BrakeRotorRear)
	assert.NotContains(t, types, InnerTubeFront)
	assert.NotContains(t, types, InnerTubeRear)
	assert.NotContains(t, types, Cables)
}

func TestDefaultSet_DiscClincherElectronic(t *testing.T) {
	set := DefaultSet(&BikeConfig{
		ShiftingType:    Electronic,
		BrakeType:       Disc,
		DrivetrainSpeed: 12,
		TireSystem:      Clincher,
	})
	types := typesOf(set)

	assert.Equal(t, DiscBrakePadsDistance, distanceOf(set, BrakePadsRear))
	assert.Contains(t, types, BrakeRotorFront)
	assert.Contains(t, types, BrakeRotorRear)
	assert.Contains(t, types, InnerTubeFront)
	assert.Contains(t, types, InnerTubeRear)
	assert.NotContains(t, types, ShiftCables)
	assert.NotContains(t, types, BrakeCables)
}

func TestDefaultSet_OnlyVisibleTypes(t *testing.T) {
	for _, shifting := range []ShiftingType{Mechanical, Electronic} {
		for _, brake := range []BrakeType{Disc, Rim} {
			for _, tires := range []TireSystem{Tubeless, Clincher, Tubular} {
				cfg := &BikeConfig{ShiftingType: shifting, BrakeType: brake, DrivetrainSpeed: 11, TireSystem: tires}
				for _, d := range DefaultSet(cfg) {
					assert.True(t, IsVisible(d.Type, cfg), "%s hidden for %+v", d.Type, *cfg)
					assert.Positive(t, d.RecommendedDistance)
				}
			}
		}
	}
}

func TestComponentsFor(t *testing.T) {
	bikeID := uuid.New()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	components := ComponentsFor(bikeID, 12_000_000, nil, now)
	require.Len(t, components, len(legacyComponents))

	for _, c := range components {
		assert.Equal(t, bikeID, c.BikeID)
		assert.Equal(t, int64(12_000_000), c.CurrentDistance)
		assert.Zero(t, c.BikeDistanceAtInstall)
		assert.Equal(t, c.Type.DisplayName(), c.Name)
		assert.Equal(t, now, c.InstalledAt)
		assert.True(t, c.Active())
		assert.Equal(t, c.CurrentDistance, c.CurrentMileage(12_000_000))
	}

	chain := components[0]
	require.Equal(t, Chain, chain.Type)
	w := chain.Wear()
	assert.Equal(t, 400.0, w.Percentage)
	assert.Equal(t, Critical, w.Status)
	assert.True(t, w.IsOverdue)
}

func TestMissingDefaults(t *testing.T) {
	now := time.Now()
	bike := &Bike{
		BikeID:          uuid.New(),
		TotalDistance:   500_000,
		DeletedDefaults: []ComponentType{Cassette},
	}
	active := []*Component{
		{Type: Chain},
		{Type: Custom},
	}
	replaced := now.Add(-time.Hour)
	active = append(active, &Component{Type: TireFront, ReplacedAt: &replaced})

	missing := MissingDefaults(bike, active, now)
	types := make([]ComponentType, 0, len(missing))
	for _, c := range missing {
		types = append(types, c.Type)
	}

	assert.NotContains(t, types, Chain)
	assert.NotContains(t, types, Cassette)
	assert.Contains(t, types, TireFront)
	assert.Contains(t, types, Cables)
	assert.Len(t, types, len(legacyComponents)-2)
}
