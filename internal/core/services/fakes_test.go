package services

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type nopMetrics struct{}

func (nopMetrics) RecordMetrics(*gin.Context, time.Time)    {}
func (nopMetrics) RecordSync(string, string, time.Duration) {}

var errCacheMiss = errors.New("miss")

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, errCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

type fakeBikeRepo struct {
	mu    sync.Mutex
	bikes map[uuid.UUID]*domain.Bike
}

func newFakeBikeRepo() *fakeBikeRepo {
	return &fakeBikeRepo{bikes: map[uuid.UUID]*domain.Bike{}}
}

func cloneBike(b *domain.Bike) *domain.Bike {
	c := *b
	c.DeletedDefaults = slices.Clone(b.DeletedDefaults)
	return &c
}

func (r *fakeBikeRepo) CreateBike(_ context.Context, bike *domain.Bike) (*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if bike.BikeID == uuid.Nil {
		bike.BikeID = uuid.New()
	}
	r.bikes[bike.BikeID] = cloneBike(bike)
	return cloneBike(bike), nil
}

func (r *fakeBikeRepo) GetBikeByID(_ context.Context, id uuid.UUID) (*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bikes[id]
	if !ok {
		return nil, domain.NotFoundError("bike")
	}
	return cloneBike(b), nil
}

func (r *fakeBikeRepo) GetBikeByExternalID(_ context.Context, userID uuid.UUID, externalID string) (*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bikes {
		if b.UserID == userID && b.ExternalID == externalID {
			return cloneBike(b), nil
		}
	}
	return nil, nil
}

func (r *fakeBikeRepo) GetBikesByUserID(_ context.Context, userID uuid.UUID) ([]*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Bike
	for _, b := range r.bikes {
		if b.UserID == userID {
			out = append(out, cloneBike(b))
		}
	}
	return out, nil
}

func (r *fakeBikeRepo) UpdateBike(_ context.Context, bike *domain.Bike) (*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bikes[bike.BikeID]; !ok {
		return nil, domain.NotFoundError("bike")
	}
	r.bikes[bike.BikeID] = cloneBike(bike)
	return cloneBike(bike), nil
}

func (r *fakeBikeRepo) SaveConfig(_ context.Context, id uuid.UUID, cfg *domain.BikeConfig) (*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bikes[id]
	if !ok {
		return nil, domain.NotFoundError("bike")
	}
	b.ApplyConfig(*cfg)
	return cloneBike(b), nil
}

func (r *fakeBikeRepo) SetRetired(_ context.Context, id uuid.UUID, retired bool) (*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bikes[id]
	if !ok {
		return nil, domain.NotFoundError("bike")
	}
	b.Retired = retired
	return cloneBike(b), nil
}

func (r *fakeBikeRepo) AddDeletedDefault(_ context.Context, id uuid.UUID, t domain.ComponentType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bikes[id]
	if !ok {
		return domain.NotFoundError("bike")
	}
	if !slices.Contains(b.DeletedDefaults, t) {
		b.DeletedDefaults = append(b.DeletedDefaults, t)
	}
	return nil
}

type fakeComponentRepo struct {
	mu              sync.Mutex
	components      map[uuid.UUID]*domain.Component
	distanceUpdates int
	failDistance    map[uuid.UUID]error
}

func newFakeComponentRepo() *fakeComponentRepo {
	return &fakeComponentRepo{
		components:   map[uuid.UUID]*domain.Component{},
		failDistance: map[uuid.UUID]error{},
	}
}

func (r *fakeComponentRepo) insertLocked(c *domain.Component) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Active() && !c.IsCustom() {
		for _, other := range r.components {
			if other.BikeID == c.BikeID && other.Type == c.Type && other.Active() {
				return &domain.PersistenceError{Op: "insert component", Err: errors.New("duplicate active type")}
			}
		}
	}
	copied := *c
	r.components[c.ID] = &copied
	return nil
}

func (r *fakeComponentRepo) CreateComponent(_ context.Context, c *domain.Component) (*domain.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.insertLocked(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *fakeComponentRepo) CreateComponents(_ context.Context, cs []*domain.Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range cs {
		if err := r.insertLocked(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeComponentRepo) GetComponentByID(_ context.Context, id uuid.UUID) (*domain.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.components[id]
	if !ok {
		return nil, domain.NotFoundError("component")
	}
	copied := *c
	return &copied, nil
}

func (r *fakeComponentRepo) list(match func(*domain.Component) bool) []*domain.Component {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Component
	for _, c := range r.components {
		if match(c) {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].InstalledAt.Equal(out[j].InstalledAt) {
			return out[i].InstalledAt.After(out[j].InstalledAt)
		}
		return out[i].Type < out[j].Type
	})
	return out
}

func (r *fakeComponentRepo) GetComponentsByBikeID(_ context.Context, bikeID uuid.UUID) ([]*domain.Component, error) {
	return r.list(func(c *domain.Component) bool { return c.BikeID == bikeID }), nil
}

func (r *fakeComponentRepo) GetActiveComponentsByBikeIDs(_ context.Context, bikeIDs []uuid.UUID) ([]*domain.Component, error) {
	return r.list(func(c *domain.Component) bool {
		return c.Active() && slices.Contains(bikeIDs, c.BikeID)
	}), nil
}

func (r *fakeComponentRepo) GetComponentHistory(_ context.Context, bikeID uuid.UUID, t domain.ComponentType) ([]*domain.Component, error) {
	return r.list(func(c *domain.Component) bool { return c.BikeID == bikeID && c.Type == t }), nil
}

func (r *fakeComponentRepo) UpdateComponent(_ context.Context, c *domain.Component) (*domain.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.components[c.ID]; !ok {
		return nil, domain.NotFoundError("component")
	}
	copied := *c
	r.components[c.ID] = &copied
	return c, nil
}

func (r *fakeComponentRepo) UpdateCurrentDistance(_ context.Context, id uuid.UUID, distance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failDistance[id]; err != nil {
		return err
	}
	c, ok := r.components[id]
	if !ok {
		return domain.NotFoundError("component")
	}
	c.CurrentDistance = distance
	r.distanceUpdates++
	return nil
}

func (r *fakeComponentRepo) ReplaceComponent(_ context.Context, id uuid.UUID, replacedAt time.Time, notes *string, successor *domain.Component) (*domain.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.components[id]
	if !ok {
		return nil, domain.NotFoundError("component")
	}
	if !c.Active() {
		return nil, domain.ErrAlreadyReplaced
	}
	c.ReplacedAt = &replacedAt
	if notes != nil {
		c.Notes = *notes
	}
	if err := r.insertLocked(successor); err != nil {
		c.ReplacedAt = nil
		return nil, err
	}
	return successor, nil
}

func (r *fakeComponentRepo) DeleteComponent(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.components[id]; !ok {
		return domain.NotFoundError("component")
	}
	delete(r.components, id)
	return nil
}

func (r *fakeComponentRepo) active(bikeID uuid.UUID, t domain.ComponentType) []*domain.Component {
	return r.list(func(c *domain.Component) bool {
		return c.BikeID == bikeID && c.Type == t && c.Active()
	})
}

type fakeActivityRepo struct {
	mu         sync.Mutex
	activities map[int64]*domain.Activity
	failBatch  map[int]error // by insert call number, starting at 1
	inserts    int
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: map[int64]*domain.Activity{}, failBatch: map[int]error{}}
}

func (r *fakeActivityRepo) DeleteActivitiesByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, a := range r.activities {
		if a.UserID == userID {
			delete(r.activities, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeActivityRepo) ExistingExternalIDs(_ context.Context, ids []int64) (map[int64]struct{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[int64]struct{}{}
	for _, id := range ids {
		if _, ok := r.activities[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) InsertActivities(_ context.Context, activities []*domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserts++
	if err := r.failBatch[r.inserts]; err != nil {
		return err
	}
	for _, a := range activities {
		copied := *a
		r.activities[a.ExternalID] = &copied
	}
	return nil
}

func (r *fakeActivityRepo) SumDistanceSince(_ context.Context, bikeID uuid.UUID, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum int64
	for _, a := range r.activities {
		if a.BikeID != nil && *a.BikeID == bikeID && !a.StartDate.Before(since) {
			sum += a.Distance
		}
	}
	return sum, nil
}

func (r *fakeActivityRepo) GetActivityStats(_ context.Context, userID uuid.UUID, since time.Time) (*domain.ActivityStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &domain.ActivityStats{}
	for _, a := range r.activities {
		if a.UserID != userID {
			continue
		}
		stats.TotalActivities++
		stats.TotalDistance += a.Distance
		if !a.StartDate.Before(since) {
			stats.Last30Days.Activities++
			stats.Last30Days.Distance += a.Distance
		}
	}
	return stats, nil
}

type fakeSyncRepo struct {
	mu     sync.Mutex
	status map[uuid.UUID]*domain.SyncStatus
}

func newFakeSyncRepo() *fakeSyncRepo {
	return &fakeSyncRepo{status: map[uuid.UUID]*domain.SyncStatus{}}
}

func (r *fakeSyncRepo) rowLocked(userID uuid.UUID) *domain.SyncStatus {
	s, ok := r.status[userID]
	if !ok {
		s = &domain.SyncStatus{UserID: userID}
		r.status[userID] = s
	}
	return s
}

func (r *fakeSyncRepo) GetSyncStatus(_ context.Context, userID uuid.UUID) (*domain.SyncStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.status[userID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSyncRepo) RecordActivitySync(_ context.Context, userID uuid.UUID, at *time.Time, syncErr *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.rowLocked(userID)
	if at != nil {
		s.LastActivitySync = at
	}
	s.LastSyncError = syncErr
	return nil
}

func (r *fakeSyncRepo) ResetActivitySync(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.status[userID]; ok {
		s.LastActivitySync = nil
	}
	return nil
}

func (r *fakeSyncRepo) RecordBikeSync(_ context.Context, userID uuid.UUID, at time.Time, syncErr *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.rowLocked(userID)
	s.LastBikeSync = &at
	s.LastSyncError = syncErr
	return nil
}

// fakeSource serves a fixed athlete, gear set and activity pages.
type fakeSource struct {
	mu         sync.Mutex
	athlete    *domain.Athlete
	athleteErr error
	gears      map[string]*domain.Gear
	gearErr    map[string]error
	pages      [][]domain.ExternalActivity
	pageErr    error // yielded after all pages
	sinceCalls []time.Time
	maxPages   []int
	calls      []string
}

func (s *fakeSource) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *fakeSource) GetAthlete(context.Context) (*domain.Athlete, error) {
	s.record("athlete")
	if s.athleteErr != nil {
		return nil, s.athleteErr
	}
	return s.athlete, nil
}

func (s *fakeSource) GetGear(_ context.Context, id string) (*domain.Gear, error) {
	s.record("gear:" + id)
	if err := s.gearErr[id]; err != nil {
		return nil, err
	}
	g, ok := s.gears[id]
	if !ok {
		return nil, &testRequestError{status: 404}
	}
	copied := *g
	return &copied, nil
}

func (s *fakeSource) GetActivities(context.Context, domain.ActivityQuery) ([]domain.ExternalActivity, error) {
	return nil, errors.New("not used")
}

func (s *fakeSource) ActivitiesSince(_ context.Context, since time.Time, maxPages int) iter.Seq2[[]domain.ExternalActivity, error] {
	s.record("activities")
	s.mu.Lock()
	s.sinceCalls = append(s.sinceCalls, since)
	s.maxPages = append(s.maxPages, maxPages)
	s.mu.Unlock()

	return func(yield func([]domain.ExternalActivity, error) bool) {
		for _, p := range s.pages {
			if !yield(p, nil) {
				return
			}
		}
		if s.pageErr != nil {
			yield(nil, s.pageErr)
		}
	}
}

type testRequestError struct{ status int }

func (e *testRequestError) Error() string { return "request failed" }
func (e *testRequestError) Unwrap() error { return domain.ErrRequestFailed }

type fakeFactory struct {
	source *fakeSource
	tokens []string
}

func (f *fakeFactory) ForToken(token string) ports.ActivitySource {
	f.tokens = append(f.tokens, token)
	return f.source
}

type fakeTokens struct {
	token string
	err   error
}

func (f fakeTokens) AccessToken(context.Context, uuid.UUID) (string, error) {
	return f.token, f.err
}

func gear(id, name string, distance float64) *domain.Gear {
	return &domain.Gear{ID: id, Name: name, Distance: distance}
}

func ride(id int64, activityType string, distance float64, gearID string) domain.ExternalActivity {
	a := domain.ExternalActivity{
		ID:        id,
		Name:      "Ride",
		Distance:  distance,
		StartDate: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute),
		Type:      activityType,
	}
	if gearID != "" {
		a.GearID = &gearID
	}
	return a
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
