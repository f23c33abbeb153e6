package migration

import (
	"demandsurvey/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models created by the gorm strategy, parents first.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.LocationModel{},
		&models.SurveyResponseModel{},
		&models.SurveyItemModel{},
	}
}
