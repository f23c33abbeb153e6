package mappers

import (
	"fmt"

	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/infrastructure/persistence/models"
	"demandsurvey/internal/shared/mapper"
)

// SurveyResponseMapper handles the conversion between survey responses and
// their persistence models, items included.
type SurveyResponseMapper interface {
	// ToEntity converts a persistence model (with preloaded items) to a domain entity.
	ToEntity(model *models.SurveyResponseModel) (*survey.Response, error)

	// ToModel converts the respondent fields of an entity. Items are written separately.
	ToModel(entity *survey.Response) *models.SurveyResponseModel

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.SurveyResponseModel) ([]*survey.Response, error)

	// ToItemModels converts item mentions for a batch insert.
	ToItemModels(items []*survey.ItemMention) []*models.SurveyItemModel
}

type SurveyResponseMapperImpl struct{}

// NewSurveyResponseMapper creates a new survey response mapper.
func NewSurveyResponseMapper() SurveyResponseMapper {
	return &SurveyResponseMapperImpl{}
}

func (m *SurveyResponseMapperImpl) ToEntity(model *models.SurveyResponseModel) (*survey.Response, error) {
	if model == nil {
		return nil, nil
	}

	items := make([]*survey.ItemMention, 0, len(model.Items))
	for _, it := range model.Items {
		items = append(items, survey.ReconstructItemMention(it.ID, it.SurveyResponseID, it.ItemName, it.ItemType))
	}

	entity, err := survey.ReconstructResponse(
		model.ID,
		survey.Respondent{
			Name:      model.RespondentName,
			Mobile:    model.MobileNumber,
			Location:  model.Location,
			SubRegion: model.SubRegion,
			Role:      survey.Role(model.Role),
		},
		items,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct survey response entity: %w", err)
	}
	return entity, nil
}

func (m *SurveyResponseMapperImpl) ToModel(entity *survey.Response) *models.SurveyResponseModel {
	if entity == nil {
		return nil
	}

	r := entity.Respondent()
	return &models.SurveyResponseModel{
		ID:             entity.ID(),
		RespondentName: r.Name,
		MobileNumber:   r.Mobile,
		Location:       r.Location,
		SubRegion:      r.SubRegion,
		Role:           r.Role.String(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *SurveyResponseMapperImpl) ToEntities(modelList []*models.SurveyResponseModel) ([]*survey.Response, error) {
	return mapper.ReconstructAll(modelList, m.ToEntity, func(model *models.SurveyResponseModel) uint { return model.ID })
}

func (m *SurveyResponseMapperImpl) ToItemModels(items []*survey.ItemMention) []*models.SurveyItemModel {
	return mapper.MapSlice(items, func(it *survey.ItemMention) *models.SurveyItemModel {
		return &models.SurveyItemModel{
			ID:               it.ID(),
			SurveyResponseID: it.ResponseID(),
			ItemName:         it.ItemName(),
			ItemType:         it.ItemType(),
		}
	})
}
