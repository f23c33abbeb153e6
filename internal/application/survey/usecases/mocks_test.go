package usecases

import (
	"context"
	"strings"
	"sync"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/domain/survey"
)

type mockResponseRepository struct {
	CreateFunc        func(ctx context.Context, r *survey.Response) error
	UpdateFunc        func(ctx context.Context, r *survey.Response) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*survey.Response, error)
	ListWithItemsFunc func(ctx context.Context, filter survey.ListFilter) ([]*survey.Response, error)
	ListLocationsFunc func(ctx context.Context) ([]string, error)

	createCalls int
	calls       int
}

func (m *mockResponseRepository) Create(ctx context.Context, r *survey.Response) error {
	m.calls++
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return r.SetID(uint(m.createCalls))
}

func (m *mockResponseRepository) Update(ctx context.Context, r *survey.Response) error {
	m.calls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockResponseRepository) Delete(ctx context.Context, id uint) error {
	m.calls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockResponseRepository) GetByID(ctx context.Context, id uint) (*survey.Response, error) {
	m.calls++
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, survey.ErrResponseNotFound
}

func (m *mockResponseRepository) ListWithItems(ctx context.Context, filter survey.ListFilter) ([]*survey.Response, error) {
	m.calls++
	if m.ListWithItemsFunc != nil {
		return m.ListWithItemsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockResponseRepository) ListLocations(ctx context.Context) ([]string, error) {
	m.calls++
	if m.ListLocationsFunc != nil {
		return m.ListLocationsFunc(ctx)
	}
	return nil, nil
}

type mockItemRepository struct {
	CreateBatchFunc func(ctx context.Context, items []*survey.ItemMention) error
	ListNamesFunc   func(ctx context.Context, filter survey.ListFilter) ([]string, error)

	batches [][]*survey.ItemMention
}

func (m *mockItemRepository) CreateBatch(ctx context.Context, items []*survey.ItemMention) error {
	m.batches = append(m.batches, items)
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, items)
	}
	return nil
}

func (m *mockItemRepository) ListNames(ctx context.Context, filter survey.ListFilter) ([]string, error) {
	if m.ListNamesFunc != nil {
		return m.ListNamesFunc(ctx, filter)
	}
	return nil, nil
}

type mockLocationRepository struct {
	ListFunc func(ctx context.Context) ([]*location.Location, error)
}

func (m *mockLocationRepository) Create(ctx context.Context, loc *location.Location) error {
	return nil
}

func (m *mockLocationRepository) Update(ctx context.Context, loc *location.Location) error {
	return nil
}

func (m *mockLocationRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockLocationRepository) GetByID(ctx context.Context, id uint) (*location.Location, error) {
	return nil, location.ErrNotFound
}

func (m *mockLocationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func (m *mockLocationRepository) List(ctx context.Context) ([]*location.Location, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// memoryDraftStore keeps drafts in a map, rebuilding them on read so that
// callers never share a pointer with the store.
type memoryDraftStore struct {
	mu      sync.Mutex
	drafts  map[string]*survey.Draft
	SaveErr error
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{drafts: make(map[string]*survey.Draft)}
}

func (s *memoryDraftStore) Save(ctx context.Context, d *survey.Draft) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.ID()] = d
	return nil
}

func (s *memoryDraftStore) Get(ctx context.Context, id string) (*survey.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, survey.ErrDraftNotFound
	}
	return survey.ReconstructDraft(d.ID(), d.Name(), d.Mobile(), d.Role(), d.Selection(), d.Slots(), d.ConfirmedUntil(), d.UpdatedAt())
}

type tagStripper struct{}

func (tagStripper) Sanitize(s string) string {
	s = strings.ReplaceAll(s, "<b>", "")
	return strings.ReplaceAll(s, "</b>", "")
}

type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}
