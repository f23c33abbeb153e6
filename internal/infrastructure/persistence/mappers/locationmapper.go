package mappers

import (
	"fmt"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/infrastructure/persistence/models"
	"demandsurvey/internal/shared/mapper"
)

// LocationMapper handles the conversion between location entities and persistence models.
type LocationMapper interface {
	ToEntity(model *models.LocationModel) (*location.Location, error)
	ToModel(entity *location.Location) *models.LocationModel
	ToEntities(models []*models.LocationModel) ([]*location.Location, error)
}

type LocationMapperImpl struct{}

// NewLocationMapper creates a new location mapper.
func NewLocationMapper() LocationMapper {
	return &LocationMapperImpl{}
}

func (m *LocationMapperImpl) ToEntity(model *models.LocationModel) (*location.Location, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := location.ReconstructLocation(model.ID, model.Name, model.SubRegionCount, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct location entity: %w", err)
	}
	return entity, nil
}

func (m *LocationMapperImpl) ToModel(entity *location.Location) *models.LocationModel {
	if entity == nil {
		return nil
	}

	return &models.LocationModel{
		ID:             entity.ID(),
		Name:           entity.Name(),
		SubRegionCount: entity.SubRegionCount(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *LocationMapperImpl) ToEntities(modelList []*models.LocationModel) ([]*location.Location, error) {
	return mapper.ReconstructAll(modelList, m.ToEntity, func(model *models.LocationModel) uint { return model.ID })
}
