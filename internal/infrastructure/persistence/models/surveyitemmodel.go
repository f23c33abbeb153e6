package models

import (
	"demandsurvey/internal/shared/constants"
)

// SurveyItemModel is one item mention owned by a survey response.
type SurveyItemModel struct {
	ID               uint   `gorm:"primarykey"`
	SurveyResponseID uint   `gorm:"not null;index:idx_survey_item_response_id"`
	ItemName         string `gorm:"not null;size:200"`
	ItemType         string `gorm:"not null;size:20;default:product"`
}

// TableName specifies the table name for GORM.
func (SurveyItemModel) TableName() string {
	return constants.TableSurveyItems
}
