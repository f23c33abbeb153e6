package usecases

import (
	"context"

	"demandsurvey/internal/domain/location"
)

type mockLocationRepository struct {
	CreateFunc       func(ctx context.Context, loc *location.Location) error
	UpdateFunc       func(ctx context.Context, loc *location.Location) error
	DeleteFunc       func(ctx context.Context, id uint) error
	GetByIDFunc      func(ctx context.Context, id uint) (*location.Location, error)
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
	ListFunc         func(ctx context.Context) ([]*location.Location, error)

	calls int
}

func (m *mockLocationRepository) Create(ctx context.Context, loc *location.Location) error {
	m.calls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, loc)
	}
	return nil
}

func (m *mockLocationRepository) Update(ctx context.Context, loc *location.Location) error {
	m.calls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, loc)
	}
	return nil
}

func (m *mockLocationRepository) Delete(ctx context.Context, id uint) error {
	m.calls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockLocationRepository) GetByID(ctx context.Context, id uint) (*location.Location, error) {
	m.calls++
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, location.ErrNotFound
}

func (m *mockLocationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	m.calls++
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

func (m *mockLocationRepository) List(ctx context.Context) ([]*location.Location, error) {
	m.calls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}
