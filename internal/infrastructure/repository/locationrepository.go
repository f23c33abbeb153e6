package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/infrastructure/persistence/mappers"
	"demandsurvey/internal/infrastructure/persistence/models"
	"demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
)

// LocationRepositoryImpl implements the location.Repository interface.
type LocationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LocationMapper
	logger logger.Interface
}

// NewLocationRepository creates a new location repository instance.
func NewLocationRepository(db *gorm.DB, logger logger.Interface) location.Repository {
	return &LocationRepositoryImpl{
		db:     db,
		mapper: mappers.NewLocationMapper(),
		logger: logger,
	}
}

// Create inserts a catalog entry. The unique index on name backs the
// duplicate check done by callers.
func (r *LocationRepositoryImpl) Create(ctx context.Context, loc *location.Location) error {
	model := r.mapper.ToModel(loc)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return location.ErrDuplicateName
		}
		r.logger.Errorw("failed to create location in database", "error", err, "name", model.Name)
		return fmt.Errorf("failed to create location: %w", err)
	}

	if err := loc.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set location ID", "error", err)
		return fmt.Errorf("failed to set location ID: %w", err)
	}

	r.logger.Infow("location created successfully", "id", model.ID, "name", model.Name)
	return nil
}

// Update updates an existing catalog entry.
func (r *LocationRepositoryImpl) Update(ctx context.Context, loc *location.Location) error {
	model := r.mapper.ToModel(loc)

	result := r.db.WithContext(ctx).Model(&models.LocationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":             model.Name,
			"sub_region_count": model.SubRegionCount,
			"updated_at":       model.UpdatedAt,
		})

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return location.ErrDuplicateName
		}
		r.logger.Errorw("failed to update location", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update location: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		found, err := rowExists(r.db.WithContext(ctx), &models.LocationModel{}, model.ID)
		if err != nil {
			r.logger.Errorw("failed to check location after update", "id", model.ID, "error", err)
			return fmt.Errorf("failed to update location: %w", err)
		}
		if !found {
			return location.ErrNotFound
		}
	}

	r.logger.Infow("location updated successfully", "id", model.ID, "name", model.Name)
	return nil
}

// Delete removes a catalog entry by ID.
func (r *LocationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.LocationModel{}, id)

	if result.Error != nil {
		r.logger.Errorw("failed to delete location", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete location: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return location.ErrNotFound
	}

	r.logger.Infow("location deleted successfully", "id", id)
	return nil
}

// GetByID retrieves a catalog entry by its ID.
func (r *LocationRepositoryImpl) GetByID(ctx context.Context, id uint) (*location.Location, error) {
	var model models.LocationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, location.ErrNotFound
		}
		r.logger.Errorw("failed to get location by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ExistsByName checks for an exact, case-sensitive name match. The MySQL
// schema gives the name column a binary collation.
func (r *LocationRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.LocationModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check location name existence", "name", name, "error", err)
		return false, fmt.Errorf("failed to check location name: %w", err)
	}

	return count > 0, nil
}

// List returns every catalog entry ordered by name.
func (r *LocationRepositoryImpl) List(ctx context.Context) ([]*location.Location, error) {
	var modelList []*models.LocationModel

	if err := r.db.WithContext(ctx).Order("name ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list locations", "error", err)
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
