package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/infrastructure/persistence/mappers"
	"demandsurvey/internal/infrastructure/persistence/models"
	"demandsurvey/internal/shared/db"
	"demandsurvey/internal/shared/errors"
	"demandsurvey/internal/shared/logger"
)

// SurveyResponseRepositoryImpl implements the survey.ResponseRepository interface.
type SurveyResponseRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SurveyResponseMapper
	logger logger.Interface
}

// NewSurveyResponseRepository creates a new survey response repository instance.
func NewSurveyResponseRepository(gdb *gorm.DB, logger logger.Interface) survey.ResponseRepository {
	return &SurveyResponseRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewSurveyResponseMapper(),
		logger: logger,
	}
}

func preloadItems(tx *gorm.DB) *gorm.DB {
	return tx.Order("id ASC")
}

// Create inserts the respondent row only.
func (r *SurveyResponseRepositoryImpl) Create(ctx context.Context, response *survey.Response) error {
	model := r.mapper.ToModel(response)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("survey response already exists")
		}
		r.logger.Errorw("failed to create survey response in database", "error", err)
		return fmt.Errorf("failed to create survey response: %w", err)
	}

	if err := response.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set survey response ID", "error", err)
		return fmt.Errorf("failed to set survey response ID: %w", err)
	}

	r.logger.Debugw("survey response created", "id", model.ID, "location", model.Location)
	return nil
}

// Update persists the respondent fields of an existing response.
func (r *SurveyResponseRepositoryImpl) Update(ctx context.Context, response *survey.Response) error {
	model := r.mapper.ToModel(response)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.SurveyResponseModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"respondent_name": model.RespondentName,
			"mobile_number":   model.MobileNumber,
			"location":        model.Location,
			"sub_region":      model.SubRegion,
			"role":            model.Role,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update survey response", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update survey response: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		found, err := rowExists(db.GetTxFromContext(ctx, r.db), &models.SurveyResponseModel{}, model.ID)
		if err != nil {
			r.logger.Errorw("failed to check survey response after update", "id", model.ID, "error", err)
			return fmt.Errorf("failed to update survey response: %w", err)
		}
		if !found {
			return survey.ErrResponseNotFound
		}
	}

	r.logger.Infow("survey response updated successfully", "id", model.ID)
	return nil
}

// Delete removes the response and its item mentions. Items are deleted
// explicitly so the cascade holds even where foreign keys are not enforced.
func (r *SurveyResponseRepositoryImpl) Delete(ctx context.Context, id uint) error {
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_response_id = ?", id).Delete(&models.SurveyItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete survey items: %w", err)
		}

		result := tx.Delete(&models.SurveyResponseModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete survey response: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return survey.ErrResponseNotFound
		}
		return nil
	})
	if err != nil {
		if err != survey.ErrResponseNotFound {
			r.logger.Errorw("failed to delete survey response", "id", id, "error", err)
		}
		return err
	}

	r.logger.Infow("survey response deleted successfully", "id", id)
	return nil
}

// GetByID retrieves a response with its items.
func (r *SurveyResponseRepositoryImpl) GetByID(ctx context.Context, id uint) (*survey.Response, error) {
	var model models.SurveyResponseModel

	if err := db.GetTxFromContext(ctx, r.db).Preload("Items", preloadItems).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, survey.ErrResponseNotFound
		}
		r.logger.Errorw("failed to get survey response by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get survey response: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListWithItems returns responses with items, newest first.
func (r *SurveyResponseRepositoryImpl) ListWithItems(ctx context.Context, filter survey.ListFilter) ([]*survey.Response, error) {
	var modelList []*models.SurveyResponseModel

	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.LocationEquals("", filter.Location)).
		Preload("Items", preloadItems).
		Order("created_at DESC, id DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list survey responses", "location", filter.Location, "error", err)
		return nil, fmt.Errorf("failed to list survey responses: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// ListLocations returns the distinct stored location values, sorted.
func (r *SurveyResponseRepositoryImpl) ListLocations(ctx context.Context) ([]string, error) {
	var locations []string

	err := db.GetTxFromContext(ctx, r.db).Model(&models.SurveyResponseModel{}).
		Distinct("location").
		Order("location ASC").
		Pluck("location", &locations).Error
	if err != nil {
		r.logger.Errorw("failed to list response locations", "error", err)
		return nil, fmt.Errorf("failed to list response locations: %w", err)
	}

	return locations, nil
}
