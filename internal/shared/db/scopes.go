package db

import (
	"gorm.io/gorm"
)

// LocationEquals is a GORM scope restricting rows to an exact location value.
// An empty location leaves the query unscoped.
//
// Example usage:
//
//	db.Model(&SurveyResponseModel{}).Scopes(db.LocationEquals("r", loc)).Find(&rows)
func LocationEquals(alias, location string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if location == "" {
			return db
		}
		column := "location"
		if alias != "" {
			column = alias + ".location"
		}
		return db.Where(column+" = ?", location)
	}
}
