package specification

import "gorm.io/gorm"

// RatingDesc orders shops by rating descending with unrated shops last.
type RatingDesc struct{}

func (s RatingDesc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("rating DESC NULLS LAST")
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// StocksProduct matches shops carrying the product in either the pesticide
// or the organic stock list (jsonb containment).
type StocksProduct struct {
	Product string
}

func (s StocksProduct) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pesticide_stock_list @> ? OR organic_products @> ?",
		`["`+s.Product+`"]`, `["`+s.Product+`"]`)
}
