package repository

import (
	"gorm.io/gorm"
)

// rowExists reports whether a row with the given primary key is present.
// MySQL counts changed rows on UPDATE, so an update that writes identical
// values affects zero rows even though the row matched.
func rowExists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
