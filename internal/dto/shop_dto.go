package dto

import (
	"github.com/google/uuid"
)

type ShopResponse struct {
	Id                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Address            string    `json:"address,omitempty"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Phone              string    `json:"phone,omitempty"`
	PesticideStockList []string  `json:"pesticide_stock_list"`
	OrganicProducts    []string  `json:"organic_products"`
	Rating             *float64  `json:"rating,omitempty"`
	DistanceKm         *float64  `json:"distance_km,omitempty"`
}

type ShopListResponse struct {
	Shops []ShopResponse `json:"shops"`
	Total int            `json:"total"`
}
