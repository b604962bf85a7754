package entity

import (
	"time"

	"github.com/google/uuid"

	"agri-solve-be/pkg/geo"
)

// Shop is an agricultural supply retailer. Shop records are read-only from
// this service's perspective; they are maintained by the seeder/admin tooling.
type Shop struct {
	Id                 uuid.UUID
	Name               string
	Address            *string
	Latitude           float64
	Longitude          float64
	Phone              *string
	PesticideStockList []string
	OrganicProducts    []string
	Rating             *float64
	CreatedAt          time.Time
}

// Location implements geo.Locatable for proximity ranking.
func (s *Shop) Location() geo.Point {
	return geo.Point{Latitude: s.Latitude, Longitude: s.Longitude}
}
