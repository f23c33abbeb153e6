package models

import (
	"time"

	"demandsurvey/internal/shared/constants"
)

// LocationModel represents the database persistence model for catalog entries.
type LocationModel struct {
	ID             uint   `gorm:"primarykey"`
	Name           string `gorm:"not null;size:100;uniqueIndex:idx_location_name"`
	SubRegionCount int    `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM.
func (LocationModel) TableName() string {
	return constants.TableLocations
}
