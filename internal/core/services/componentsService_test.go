package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedBike stores a bike with its default components.
func (f *fixture) seedBike(t *testing.T, distance int64, cfg *domain.BikeConfig) *domain.Bike {
	t.Helper()
	bike := &domain.Bike{UserID: f.userID, BikeID: uuid.New(), BikeName: "Road", TotalDistance: distance}
	if cfg != nil {
		bike.ApplyConfig(*cfg)
	}
	created, err := f.bikes.CreateBike(context.Background(), bike)
	require.NoError(t, err)
	require.NoError(t, f.components.CreateComponents(context.Background(),
		domain.ComponentsFor(created.BikeID, distance, created.Config(), f.now.Add(-time.Hour))))
	return created
}

func TestReplaceComponent(t *testing.T) {
	f := newFixture()
	bike := f.seedBike(t, 4_000_000, nil)
	chain := f.activeOf(t, bike.BikeID, domain.Chain)
	svc := f.componentService()
	f.cache.data[bikeCacheKey(bike.BikeID)] = []byte(`{}`)

	notes := "stretched 0.75"
	replacedAt := f.now.Add(-30 * time.Minute)
	successor, err := svc.ReplaceComponent(context.Background(), chain.ID.String(), replacedAt, &notes)
	require.NoError(t, err)

	assert.NotEqual(t, chain.ID, successor.ID)
	assert.Equal(t, domain.Chain, successor.Type)
	assert.Zero(t, successor.CurrentDistance)
	assert.Equal(t, int64(4_000_000), successor.BikeDistanceAtInstall)
	assert.Equal(t, chain.RecommendedDistance, successor.RecommendedDistance)
	assert.Equal(t, replacedAt, successor.InstalledAt)
	assert.NotContains(t, f.cache.data, bikeCacheKey(bike.BikeID))

	history, err := svc.History(context.Background(), bike.BikeID.String(), domain.Chain)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, successor.ID, history[0].ID)
	assert.True(t, history[0].Active())
	assert.Equal(t, chain.ID, history[1].ID)
	require.NotNil(t, history[1].ReplacedAt)
	assert.Equal(t, replacedAt, *history[1].ReplacedAt)
	assert.Equal(t, notes, history[1].Notes)
	assert.Equal(t, int64(4_000_000), history[1].CurrentDistance)
}

func TestReplaceComponent_Rejections(t *testing.T) {
	f := newFixture()
	bike := f.seedBike(t, 1_000_000, nil)
	chain := f.activeOf(t, bike.BikeID, domain.Chain)
	svc := f.componentService()

	_, err := svc.ReplaceComponent(context.Background(), chain.ID.String(), f.now.Add(time.Hour), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ReplaceComponent(context.Background(), "not-a-uuid", time.Time{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ReplaceComponent(context.Background(), uuid.NewString(), time.Time{}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ReplaceComponent(context.Background(), chain.ID.String(), time.Time{}, nil)
	require.NoError(t, err)
	_, err = svc.ReplaceComponent(context.Background(), chain.ID.String(), time.Time{}, nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyReplaced)

	assert.Len(t, f.components.active(bike.BikeID, domain.Chain), 1)
}

func TestDeleteComponent_RecordsDeletedDefaultOnce(t *testing.T) {
	f := newFixture()
	bike := f.seedBike(t, 1_000_000, nil)
	svc := f.componentService()

	first := f.activeOf(t, bike.BikeID, domain.Chain)
	require.NoError(t, svc.DeleteComponent(context.Background(), first.ID.String()))

	// a chain added back by hand and deleted again
	again := &domain.Component{BikeID: bike.BikeID, Type: domain.Chain, Name: "Chain", RecommendedDistance: domain.ChainDistance}
	_, err := f.components.CreateComponent(context.Background(), again)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteComponent(context.Background(), again.ID.String()))

	stored, err := f.bikes.GetBikeByID(context.Background(), bike.BikeID)
	require.NoError(t, err)
	assert.Equal(t, []domain.ComponentType{domain.Chain}, stored.DeletedDefaults)
	assert.Empty(t, f.components.active(bike.BikeID, domain.Chain))
}

func TestDeleteComponent_CustomLeavesDefaultsAlone(t *testing.T) {
	f := newFixture()
	bike := f.seedBike(t, 1_000_000, nil)
	svc := f.componentService()

	custom, err := svc.AddCustom(context.Background(), bike.BikeID.String(), domain.CustomComponentInput{Name: "Bar tape", RecommendedKm: 3000})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteComponent(context.Background(), custom.ID.String()))

	stored, err := f.bikes.GetBikeByID(context.Background(), bike.BikeID)
	require.NoError(t, err)
	assert.Empty(t, stored.DeletedDefaults)

	_, err = svc.GetComponentByID(context.Background(), custom.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddCustom(t *testing.T) {
	f := newFixture()
	bike := f.seedBike(t, 2_500_000, nil)
	svc := f.componentService()
	icon := "lightbulb"

	created, err := svc.AddCustom(context.Background(), bike.BikeID.String(), domain.CustomComponentInput{
		Name:          "  Front light  ",
		RecommendedKm: 12.3456,
		Icon:          &icon,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Custom, created.Type)
	assert.Equal(t, "Front light", created.Name)
	assert.Equal(t, int64(12_346), created.RecommendedDistance)
	assert.Equal(t, int64(2_500_000), created.BikeDistanceAtInstall)
	assert.Zero(t, created.CurrentDistance)
	assert.Equal(t, "lightbulb", created.IconKey())

	second, err := svc.AddCustom(context.Background(), bike.BikeID.String(), domain.CustomComponentInput{Name: "Rear light", RecommendedKm: 100})
	require.NoError(t, err)
	assert.Equal(t, domain.Custom.Icon(), second.IconKey())
}

func TestAddCustom_Validation(t *testing.T) {
	f := newFixture()
	bike := f.seedBike(t, 0, nil)
	svc := f.componentService()
	badIcon := "unicorn"

	tests := []struct {
		name   string
		bikeID string
		input  domain.CustomComponentInput
		want   error
	}{
		{"blank name", bike.BikeID.String(), domain.CustomComponentInput{Name: "   ", RecommendedKm: 10}, domain.ErrInvalidInput},
		{"zero distance", bike.BikeID.String(), domain.CustomComponentInput{Name: "Light", RecommendedKm: 0}, domain.ErrInvalidInput},
		{"negative distance", bike.BikeID.String(), domain.CustomComponentInput{Name: "Light", RecommendedKm: -5}, domain.ErrInvalidInput},
		{"unknown icon", bike.BikeID.String(), domain.CustomComponentInput{Name: "Light", RecommendedKm: 10, Icon: &badIcon}, domain.ErrInvalidInput},
		{"bad bike id", "nope", domain.CustomComponentInput{Name: "Light", RecommendedKm: 10}, domain.ErrInvalidInput},
		{"missing bike", uuid.NewString(), domain.CustomComponentInput{Name: "Light", RecommendedKm: 10}, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddCustom(context.Background(), tt.bikeID, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateComponent(t *testing.T) {
	f := newFixture()
	bike := f.seedBike(t, 1_000_000, nil)
	svc := f.componentService()
	chain := f.activeOf(t, bike.BikeID, domain.Chain)

	brand := "Shimano"
	recommended := int64(4_000_000)
	updated, err := svc.UpdateComponent(context.Background(), chain.ID.String(), domain.ComponentUpdate{
		Brand:               &brand,
		RecommendedDistance: &recommended,
	})
	require.NoError(t, err)
	assert.Equal(t, "Shimano", updated.Brand)
	assert.Equal(t, recommended, updated.RecommendedDistance)
	assert.Equal(t, chain.CurrentDistance, updated.CurrentDistance)

	current := int64(5)
	_, err = svc.UpdateComponent(context.Background(), chain.ID.String(), domain.ComponentUpdate{CurrentDistance: &current})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	zero := int64(0)
	_, err = svc.UpdateComponent(context.Background(), chain.ID.String(), domain.ComponentUpdate{RecommendedDistance: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	custom, err := svc.AddCustom(context.Background(), bike.BikeID.String(), domain.CustomComponentInput{Name: "Grips", RecommendedKm: 8000})
	require.NoError(t, err)
	manual := int64(750_000)
	updated, err = svc.UpdateComponent(context.Background(), custom.ID.String(), domain.ComponentUpdate{CurrentDistance: &manual})
	require.NoError(t, err)
	assert.Equal(t, manual, updated.CurrentDistance)
}

func TestHistory_UnknownType(t *testing.T) {
	f := newFixture()
	_, err := f.componentService().History(context.Background(), uuid.NewString(), domain.ComponentType("saddle"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
