package models

import (
	"time"

	"demandsurvey/internal/shared/constants"
)

// SurveyResponseModel represents the database persistence model for survey responses.
type SurveyResponseModel struct {
	ID             uint              `gorm:"primarykey"`
	RespondentName string            `gorm:"not null;size:100"`
	MobileNumber   string            `gorm:"not null;size:10"`
	Location       string            `gorm:"not null;size:100;index:idx_survey_response_location"`
	SubRegion      int               `gorm:"not null"`
	Role           string            `gorm:"not null;size:20"`
	CreatedAt      time.Time         `gorm:"index:idx_survey_response_created_at"`
	UpdatedAt      time.Time
	Items          []SurveyItemModel `gorm:"foreignKey:SurveyResponseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (SurveyResponseModel) TableName() string {
	return constants.TableSurveyResponses
}
