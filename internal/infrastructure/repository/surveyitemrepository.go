package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/infrastructure/persistence/mappers"
	"demandsurvey/internal/shared/constants"
	"demandsurvey/internal/shared/db"
	"demandsurvey/internal/shared/logger"
)

// SurveyItemRepositoryImpl implements the survey.ItemRepository interface.
type SurveyItemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SurveyResponseMapper
	logger logger.Interface
}

// NewSurveyItemRepository creates a new survey item repository instance.
func NewSurveyItemRepository(gdb *gorm.DB, logger logger.Interface) survey.ItemRepository {
	return &SurveyItemRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewSurveyResponseMapper(),
		logger: logger,
	}
}

// CreateBatch inserts all mentions with a single statement.
func (r *SurveyItemRepositoryImpl) CreateBatch(ctx context.Context, items []*survey.ItemMention) error {
	if len(items) == 0 {
		return nil
	}

	modelList := r.mapper.ToItemModels(items)
	if err := db.GetTxFromContext(ctx, r.db).Create(&modelList).Error; err != nil {
		r.logger.Errorw("failed to insert survey items",
			"error", err,
			"response_id", items[0].ResponseID(),
			"count", len(items),
		)
		return fmt.Errorf("failed to insert survey items: %w", err)
	}

	for i, m := range modelList {
		items[i].SetID(m.ID)
	}
	return nil
}

// ListNames returns item names in insertion order. A location filter keeps
// only items whose response was stored under exactly that location.
func (r *SurveyItemRepositoryImpl) ListNames(ctx context.Context, filter survey.ListFilter) ([]string, error) {
	var names []string

	query := db.GetTxFromContext(ctx, r.db).Table(constants.TableSurveyItems + " AS i")
	if filter.Location != "" {
		query = query.
			Joins("JOIN " + constants.TableSurveyResponses + " AS r ON r.id = i.survey_response_id").
			Scopes(db.LocationEquals("r", filter.Location))
	}

	if err := query.Order("i.id ASC").Pluck("i.item_name", &names).Error; err != nil {
		r.logger.Errorw("failed to list item names", "location", filter.Location, "error", err)
		return nil, fmt.Errorf("failed to list item names: %w", err)
	}

	return names, nil
}
