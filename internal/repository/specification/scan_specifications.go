package specification

import "gorm.io/gorm"

type ByCropType struct {
	CropType string
}

func (s ByCropType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("crop_type = ?", s.CropType)
}

// NewestFirst orders by creation time descending, the canonical ordering
// for scan history.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
