package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Shop struct {
	Id                 uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string                      `gorm:"type:varchar(255);not null"`
	Address            *string                     `gorm:"type:text"`
	Latitude           float64                     `gorm:"type:numeric(9,6);not null"`
	Longitude          float64                     `gorm:"type:numeric(9,6);not null"`
	Phone              *string                     `gorm:"type:varchar(20)"`
	PesticideStockList datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	OrganicProducts    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Rating             *float64                    `gorm:"type:numeric(2,1)"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime"`
}

func (Shop) TableName() string {
	return "shops"
}
