package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rides(from, to int64) []domain.ExternalActivity {
	out := make([]domain.ExternalActivity, 0, to-from+1)
	for id := from; id <= to; id++ {
		out = append(out, ride(id, "Ride", 1000, ""))
	}
	return out
}

func TestSyncActivities_FirstSyncIsFull(t *testing.T) {
	f := newFixture()
	source := &fakeSource{pages: [][]domain.ExternalActivity{{
		ride(1, "Ride", 10_000, ""),
		ride(2, "Run", 5_000, ""),
		ride(3, "VirtualRide", 20_000, ""),
	}}}

	result := f.activitySync().SyncActivities(context.Background(), f.userID, source, false)

	assert.True(t, result.FullSync)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, domain.PhaseDone, result.Phase)
	assert.Empty(t, result.Errors)

	require.Len(t, source.sinceCalls, 1)
	assert.True(t, source.sinceCalls[0].Equal(time.Unix(0, 0)))
	assert.Equal(t, []int{FullSyncMaxPages}, source.maxPages)

	status, _ := f.status.GetSyncStatus(context.Background(), f.userID)
	require.NotNil(t, status.LastActivitySync)
	assert.Equal(t, f.now, *status.LastActivitySync)
	assert.Nil(t, status.LastSyncError)
}

func TestSyncActivities_RerunSkipsStored(t *testing.T) {
	f := newFixture()
	source := &fakeSource{pages: [][]domain.ExternalActivity{rides(1, 3)}}
	svc := f.activitySync()

	svc.SyncActivities(context.Background(), f.userID, source, false)
	result := svc.SyncActivities(context.Background(), f.userID, source, false)

	assert.False(t, result.FullSync)
	assert.Zero(t, result.Synced)
	assert.Equal(t, 3, result.Skipped)
	assert.Len(t, f.activities.activities, 3)

	require.Len(t, source.sinceCalls, 2)
	assert.Equal(t, f.now, source.sinceCalls[1])
	assert.Equal(t, []int{FullSyncMaxPages, IncrementalMaxPages}, source.maxPages)
}

func TestSyncActivities_DuplicatesWithinFetch(t *testing.T) {
	f := newFixture()
	source := &fakeSource{pages: [][]domain.ExternalActivity{
		{ride(1, "Ride", 1000, ""), ride(2, "Ride", 1000, "")},
		{ride(2, "Ride", 1000, "")},
	}}

	result := f.activitySync().SyncActivities(context.Background(), f.userID, source, true)

	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 1, result.Skipped)
}

func TestSyncActivities_FullSyncReplacesStored(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.activities.InsertActivities(context.Background(), []*domain.Activity{
		{UserID: f.userID, ExternalID: 1, Distance: 1},
		{UserID: f.userID, ExternalID: 99, Distance: 1},
	}))
	require.NoError(t, f.status.RecordActivitySync(context.Background(), f.userID, &f.now, nil))

	source := &fakeSource{pages: [][]domain.ExternalActivity{rides(1, 2)}}
	result := f.activitySync().SyncActivities(context.Background(), f.userID, source, true)

	assert.True(t, result.FullSync)
	assert.Equal(t, 2, result.Synced)
	assert.Zero(t, result.Skipped)
	assert.Len(t, f.activities.activities, 2)
	assert.NotContains(t, f.activities.activities, int64(99))
	assert.True(t, source.sinceCalls[0].Equal(time.Unix(0, 0)))
}

func TestSyncActivities_FallsBackToSportType(t *testing.T) {
	f := newFixture()
	gravel := ride(1, "", 30_000, "")
	gravel.SportType = "GravelRide"
	ebike := ride(2, "", 15_000, "")
	ebike.SportType = "EBikeRide"
	source := &fakeSource{pages: [][]domain.ExternalActivity{{gravel, ebike}}}

	result := f.activitySync().SyncActivities(context.Background(), f.userID, source, true)

	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Skipped)
	require.Contains(t, f.activities.activities, int64(2))
	assert.Equal(t, "EBikeRide", f.activities.activities[2].ActivityType)
}

func TestSyncActivities_FailedFullSyncStaysFull(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.activities.InsertActivities(context.Background(), []*domain.Activity{
		{UserID: f.userID, ExternalID: 1, Distance: 1},
	}))
	previous := f.now.Add(-48 * time.Hour)
	require.NoError(t, f.status.RecordActivitySync(context.Background(), f.userID, &previous, nil))

	failing := &fakeSource{pageErr: domain.ErrRateLimited}
	result := f.activitySync().SyncActivities(context.Background(), f.userID, failing, true)

	assert.Equal(t, domain.PhasePartialFailure, result.Phase)
	assert.Empty(t, f.activities.activities)
	status, _ := f.status.GetSyncStatus(context.Background(), f.userID)
	assert.Nil(t, status.LastActivitySync)

	retry := &fakeSource{pages: [][]domain.ExternalActivity{rides(1, 2)}}
	result = f.activitySync().SyncActivities(context.Background(), f.userID, retry, false)

	assert.True(t, result.FullSync)
	assert.Equal(t, 2, result.Synced)
	assert.True(t, retry.sinceCalls[0].Equal(time.Unix(0, 0)))
}

func TestSyncActivities_FetchErrorKeepsFetchedPages(t *testing.T) {
	f := newFixture()
	previous := f.now.Add(-48 * time.Hour)
	require.NoError(t, f.status.RecordActivitySync(context.Background(), f.userID, &previous, nil))

	source := &fakeSource{
		pages:   [][]domain.ExternalActivity{rides(1, 2)},
		pageErr: domain.ErrRateLimited,
	}

	result := f.activitySync().SyncActivities(context.Background(), f.userID, source, false)

	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, domain.PhasePartialFailure, result.Phase)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Failed to fetch activities")
	assert.Len(t, f.activities.activities, 2)

	status, _ := f.status.GetSyncStatus(context.Background(), f.userID)
	assert.Equal(t, previous, *status.LastActivitySync)
	require.NotNil(t, status.LastSyncError)
	assert.Contains(t, *status.LastSyncError, "rate limit")
}

func TestSyncActivities_BatchFailureContinues(t *testing.T) {
	f := newFixture()
	f.activities.failBatch[2] = errors.New("disk full")
	source := &fakeSource{pages: [][]domain.ExternalActivity{rides(1, 250)}}

	result := f.activitySync().SyncActivities(context.Background(), f.userID, source, false)

	assert.Equal(t, 150, result.Synced)
	assert.Equal(t, []string{"Failed to insert activities batch: disk full"}, result.Errors)
	assert.Equal(t, domain.PhasePartialFailure, result.Phase)
	assert.Equal(t, 3, f.activities.inserts)
	assert.Len(t, f.activities.activities, 150)

	status, _ := f.status.GetSyncStatus(context.Background(), f.userID)
	assert.Nil(t, status.LastActivitySync)
	assert.NotNil(t, status.LastSyncError)
}

func TestSyncActivities_MapsGearToBike(t *testing.T) {
	f := newFixture()
	retired, err := f.bikes.CreateBike(context.Background(), &domain.Bike{
		UserID: f.userID, ExternalID: "b1", BikeName: "Old", Retired: true,
	})
	require.NoError(t, err)
	_, err = f.bikes.CreateBike(context.Background(), &domain.Bike{UserID: uuid.New(), ExternalID: "b2"})
	require.NoError(t, err)

	source := &fakeSource{pages: [][]domain.ExternalActivity{{
		ride(1, "Ride", 1000, "b1"),
		ride(2, "Ride", 1000, "b2"),
		ride(3, "Ride", 1000, ""),
	}}}

	f.activitySync().SyncActivities(context.Background(), f.userID, source, false)

	stored := f.activities.activities
	require.NotNil(t, stored[1].BikeID)
	assert.Equal(t, retired.BikeID, *stored[1].BikeID)
	assert.Nil(t, stored[2].BikeID)
	assert.Nil(t, stored[3].BikeID)
	assert.Equal(t, f.userID, stored[1].UserID)
	assert.Equal(t, "Ride", stored[1].ActivityType)
}

func TestSyncActivities_CustomIncrementalPages(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.status.RecordActivitySync(context.Background(), f.userID, &f.now, nil))
	svc := NewActivitySyncService(f.activities, f.bikes, f.status, nopLogger{}, nopMetrics{}, 3)

	source := &fakeSource{}
	result := svc.SyncActivities(context.Background(), f.userID, source, false)

	assert.Equal(t, []int{3}, source.maxPages)
	assert.Equal(t, domain.PhaseDone, result.Phase)
	assert.Zero(t, result.Synced)
}
