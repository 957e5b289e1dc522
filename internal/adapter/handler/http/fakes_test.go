package http

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type countingMetrics struct {
	mu       sync.Mutex
	requests int
}

func (m *countingMetrics) RecordMetrics(*gin.Context, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
}

func (m *countingMetrics) RecordSync(string, string, time.Duration) {}

func parseTestID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s ID", domain.ErrInvalidInput, kind)
	}
	return parsed, nil
}

type fakeBikeService struct {
	bikes      map[uuid.UUID]*domain.Bike
	components map[uuid.UUID][]*domain.Component
	stats      *domain.DashboardStats
	activity   *domain.ActivityStats

	savedConfig *domain.BikeConfig
	retired     *bool
}

func newFakeBikeService() *fakeBikeService {
	return &fakeBikeService{
		bikes:      map[uuid.UUID]*domain.Bike{},
		components: map[uuid.UUID][]*domain.Component{},
	}
}

func (s *fakeBikeService) add(b *domain.Bike) *domain.Bike {
	s.bikes[b.BikeID] = b
	return b
}

func (s *fakeBikeService) GetBikeByID(_ context.Context, bikeID string) (*domain.Bike, error) {
	id, err := parseTestID("bike", bikeID)
	if err != nil {
		return nil, err
	}
	b, ok := s.bikes[id]
	if !ok {
		return nil, domain.NotFoundError("bike")
	}
	return b, nil
}

func (s *fakeBikeService) GetBikesByUserID(_ context.Context, userID string) ([]*domain.Bike, error) {
	var out []*domain.Bike
	for _, b := range s.bikes {
		if b.UserID.String() == userID && !b.Retired {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeBikeService) GetBikeWithComponents(ctx context.Context, bikeID string) (*domain.BikeDetail, error) {
	b, err := s.GetBikeByID(ctx, bikeID)
	if err != nil {
		return nil, err
	}
	withComponents := *b
	withComponents.Components = s.components[b.BikeID]
	return &domain.BikeDetail{
		Bike:   &withComponents,
		Groups: domain.GroupComponents(withComponents.Components, b.Config()),
	}, nil
}

func (s *fakeBikeService) SaveConfig(ctx context.Context, bikeID string, cfg *domain.BikeConfig) (*domain.Bike, error) {
	b, err := s.GetBikeByID(ctx, bikeID)
	if err != nil {
		return nil, err
	}
	s.savedConfig = cfg
	b.ApplyConfig(*cfg)
	return b, nil
}

func (s *fakeBikeService) SetRetired(ctx context.Context, bikeID string, retired bool) (*domain.Bike, error) {
	b, err := s.GetBikeByID(ctx, bikeID)
	if err != nil {
		return nil, err
	}
	s.retired = &retired
	b.Retired = retired
	return b, nil
}

func (s *fakeBikeService) DashboardStats(context.Context, uuid.UUID) (*domain.DashboardStats, error) {
	return s.stats, nil
}

func (s *fakeBikeService) ActivityStats(context.Context, uuid.UUID) (*domain.ActivityStats, error) {
	return s.activity, nil
}

type replaceCall struct {
	id         string
	replacedAt time.Time
	notes      *string
}

type fakeComponentService struct {
	components map[uuid.UUID]*domain.Component
	replaceErr error

	custom   *domain.CustomComponentInput
	replaced *replaceCall
	deleted  []string
}

func newFakeComponentService() *fakeComponentService {
	return &fakeComponentService{components: map[uuid.UUID]*domain.Component{}}
}

func (s *fakeComponentService) add(c *domain.Component) *domain.Component {
	s.components[c.ID] = c
	return c
}

func (s *fakeComponentService) AddCustom(_ context.Context, bikeID string, in domain.CustomComponentInput) (*domain.Component, error) {
	id, err := parseTestID("bike", bikeID)
	if err != nil {
		return nil, err
	}
	s.custom = &in
	return &domain.Component{
		ID:                  uuid.New(),
		BikeID:              id,
		Type:                domain.Custom,
		Name:                in.Name,
		Icon:                in.Icon,
		RecommendedDistance: int64(in.RecommendedKm * 1000),
	}, nil
}

func (s *fakeComponentService) GetComponentByID(_ context.Context, componentID string) (*domain.Component, error) {
	id, err := parseTestID("component", componentID)
	if err != nil {
		return nil, err
	}
	c, ok := s.components[id]
	if !ok {
		return nil, domain.NotFoundError("component")
	}
	return c, nil
}

func (s *fakeComponentService) UpdateComponent(ctx context.Context, componentID string, upd domain.ComponentUpdate) (*domain.Component, error) {
	c, err := s.GetComponentByID(ctx, componentID)
	if err != nil {
		return nil, err
	}
	c.Apply(upd)
	return c, nil
}

func (s *fakeComponentService) DeleteComponent(_ context.Context, componentID string) error {
	s.deleted = append(s.deleted, componentID)
	return nil
}

func (s *fakeComponentService) ReplaceComponent(ctx context.Context, componentID string, replacedAt time.Time, notes *string) (*domain.Component, error) {
	if s.replaceErr != nil {
		return nil, s.replaceErr
	}
	c, err := s.GetComponentByID(ctx, componentID)
	if err != nil {
		return nil, err
	}
	s.replaced = &replaceCall{id: componentID, replacedAt: replacedAt, notes: notes}
	return c.Successor(5_000_000, replacedAt), nil
}

func (s *fakeComponentService) History(_ context.Context, bikeID string, t domain.ComponentType) ([]*domain.Component, error) {
	id, err := parseTestID("bike", bikeID)
	if err != nil {
		return nil, err
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown component type %q", domain.ErrInvalidInput, t)
	}
	var out []*domain.Component
	for _, c := range s.components {
		if c.BikeID == id && c.Type == t {
			out = append(out, c)
		}
	}
	return out, nil
}

type syncCall struct {
	userID   uuid.UUID
	fullSync bool
	ctxErr   error
}

type fakeSyncService struct {
	calls  []syncCall
	result *domain.SyncResult
	status *domain.SyncStatus
}

func (s *fakeSyncService) Sync(ctx context.Context, userID uuid.UUID, fullSync bool) *domain.SyncResult {
	s.calls = append(s.calls, syncCall{userID: userID, fullSync: fullSync, ctxErr: ctx.Err()})
	return s.result
}

func (s *fakeSyncService) GetStatus(_ context.Context, userID uuid.UUID) (*domain.SyncStatus, error) {
	if s.status == nil {
		return &domain.SyncStatus{UserID: userID}, nil
	}
	return s.status, nil
}
