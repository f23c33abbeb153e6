package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/shared/authorization"
	apperrors "demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
)

var (
	admin  = authorization.Admin("admin@test")
	denied = authorization.Denied("viewer@test")
)

func existingLocation(t *testing.T, id uint, name string, count int) *location.Location {
	t.Helper()
	now := time.Now().Add(-time.Hour)
	loc, err := location.ReconstructLocation(id, name, count, now, now)
	require.NoError(t, err)
	return loc
}

func TestCreateLocationUseCase_Success(t *testing.T) {
	var saved *location.Location
	repo := &mockLocationRepository{
		CreateFunc: func(ctx context.Context, loc *location.Location) error {
			saved = loc
			return loc.SetID(4)
		},
	}

	uc := NewCreateLocationUseCase(repo, logger.Nop())
	result, err := uc.Execute(context.Background(), CreateLocationCommand{
		Caller: admin, Name: " Kottayam ", SubRegionCount: 12,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint(4), result.ID)
	assert.Equal(t, "Kottayam", result.Name)
	assert.Equal(t, 12, result.SubRegionCount)
}

func TestCreateLocationUseCase_DuplicateName(t *testing.T) {
	created := false
	repo := &mockLocationRepository{
		ExistsByNameFunc: func(ctx context.Context, name string) (bool, error) {
			return name == "Kottayam", nil
		},
		CreateFunc: func(ctx context.Context, loc *location.Location) error {
			created = true
			return nil
		},
	}

	uc := NewCreateLocationUseCase(repo, logger.Nop())
	_, err := uc.Execute(context.Background(), CreateLocationCommand{
		Caller: admin, Name: "Kottayam", SubRegionCount: 3,
	})

	assert.True(t, apperrors.IsConflictError(err))
	assert.False(t, created)

	_, err = uc.Execute(context.Background(), CreateLocationCommand{
		Caller: admin, Name: "kottayam", SubRegionCount: 3,
	})
	assert.NoError(t, err, "names differing only in case are distinct")
}

func TestCreateLocationUseCase_StoreUniqueViolation(t *testing.T) {
	repo := &mockLocationRepository{
		CreateFunc: func(ctx context.Context, loc *location.Location) error {
			return location.ErrDuplicateName
		},
	}

	uc := NewCreateLocationUseCase(repo, logger.Nop())
	_, err := uc.Execute(context.Background(), CreateLocationCommand{
		Caller: admin, Name: "Aluva", SubRegionCount: 3,
	})

	assert.True(t, apperrors.IsConflictError(err))
}

func TestCreateLocationUseCase_InvalidCount(t *testing.T) {
	repo := &mockLocationRepository{}
	uc := NewCreateLocationUseCase(repo, logger.Nop())

	_, err := uc.Execute(context.Background(), CreateLocationCommand{
		Caller: admin, Name: "Aluva", SubRegionCount: 0,
	})

	require.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, apperrors.GetAppError(err).Fields, "sub_region_count")
	assert.Zero(t, repo.calls)
}

func TestLocationMutations_DeniedCapabilityTouchesNoStore(t *testing.T) {
	repo := &mockLocationRepository{}
	ctx := context.Background()

	_, err := NewCreateLocationUseCase(repo, logger.Nop()).Execute(ctx, CreateLocationCommand{Caller: denied, Name: "A", SubRegionCount: 1})
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = NewUpdateLocationUseCase(repo, logger.Nop()).Execute(ctx, UpdateLocationCommand{Caller: denied, ID: 1, Name: "A", SubRegionCount: 1})
	assert.True(t, apperrors.IsForbiddenError(err))

	err = NewDeleteLocationUseCase(repo, logger.Nop()).Execute(ctx, DeleteLocationCommand{Caller: denied, ID: 1})
	assert.True(t, apperrors.IsForbiddenError(err))

	assert.Zero(t, repo.calls)
}

func TestUpdateLocationUseCase(t *testing.T) {
	t.Run("renames and resizes", func(t *testing.T) {
		loc := existingLocation(t, 2, "Aluva", 4)
		var updated *location.Location
		repo := &mockLocationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*location.Location, error) { return loc, nil },
			UpdateFunc: func(ctx context.Context, l *location.Location) error {
				updated = l
				return nil
			},
		}

		result, err := NewUpdateLocationUseCase(repo, logger.Nop()).Execute(context.Background(),
			UpdateLocationCommand{Caller: admin, ID: 2, Name: "Aluva East", SubRegionCount: 2})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Aluva East", result.Name)
		assert.Equal(t, 2, result.SubRegionCount)
	})

	t.Run("rename onto existing name conflicts", func(t *testing.T) {
		repo := &mockLocationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*location.Location, error) {
				return existingLocation(t, 2, "Aluva", 4), nil
			},
			ExistsByNameFunc: func(ctx context.Context, name string) (bool, error) { return true, nil },
		}

		_, err := NewUpdateLocationUseCase(repo, logger.Nop()).Execute(context.Background(),
			UpdateLocationCommand{Caller: admin, ID: 2, Name: "Kottayam", SubRegionCount: 4})

		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("keeping the name skips the existence check", func(t *testing.T) {
		repo := &mockLocationRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*location.Location, error) {
				return existingLocation(t, 2, "Aluva", 4), nil
			},
			ExistsByNameFunc: func(ctx context.Context, name string) (bool, error) { return true, nil },
		}

		_, err := NewUpdateLocationUseCase(repo, logger.Nop()).Execute(context.Background(),
			UpdateLocationCommand{Caller: admin, ID: 2, Name: "Aluva", SubRegionCount: 9})

		assert.NoError(t, err)
	})

	t.Run("missing location", func(t *testing.T) {
		repo := &mockLocationRepository{}
		_, err := NewUpdateLocationUseCase(repo, logger.Nop()).Execute(context.Background(),
			UpdateLocationCommand{Caller: admin, ID: 99, Name: "X", SubRegionCount: 1})

		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestDeleteLocationUseCase(t *testing.T) {
	var deletedID uint
	repo := &mockLocationRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}

	err := NewDeleteLocationUseCase(repo, logger.Nop()).Execute(context.Background(), DeleteLocationCommand{Caller: admin, ID: 3})
	require.NoError(t, err)
	assert.Equal(t, uint(3), deletedID)

	repo.DeleteFunc = func(ctx context.Context, id uint) error { return errors.New("db down") }
	err = NewDeleteLocationUseCase(repo, logger.Nop()).Execute(context.Background(), DeleteLocationCommand{Caller: admin, ID: 3})
	assert.Error(t, err)
	assert.False(t, apperrors.IsAppError(err))
}

func TestListLocationsUseCase(t *testing.T) {
	t.Run("sorted by name", func(t *testing.T) {
		repo := &mockLocationRepository{
			ListFunc: func(ctx context.Context) ([]*location.Location, error) {
				return []*location.Location{
					existingLocation(t, 1, "Thrissur", 20),
					existingLocation(t, 2, "Aluva", 4),
				}, nil
			},
		}

		result, err := NewListLocationsUseCase(repo, logger.Nop()).Execute(context.Background())
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Aluva", result[0].Name)
	})

	t.Run("empty catalog", func(t *testing.T) {
		result, err := NewListLocationsUseCase(&mockLocationRepository{}, logger.Nop()).Execute(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("load failure is a fetch error", func(t *testing.T) {
		repo := &mockLocationRepository{
			ListFunc: func(ctx context.Context) ([]*location.Location, error) { return nil, errors.New("timeout") },
		}
		_, err := NewListLocationsUseCase(repo, logger.Nop()).Execute(context.Background())
		assert.True(t, apperrors.IsFetchError(err))
	})
}
