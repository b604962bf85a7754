package model

import (
	"time"

	"github.com/google/uuid"
)

type Scan struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               uuid.UUID `gorm:"type:uuid;not null;index"`
	CropType             string    `gorm:"type:varchar(50);not null"`
	Diagnosis            string    `gorm:"type:text"`
	Cause                string    `gorm:"type:text"`
	OrganicCure          string    `gorm:"type:text"`
	ChemicalCure         string    `gorm:"type:text"`
	Confidence           float64   `gorm:"type:numeric(5,1)"`
	ImageURL             string    `gorm:"type:text"`
	HealthyComparisonURL string    `gorm:"type:text"`
	CreatedAt            time.Time `gorm:"autoCreateTime;index"`
}

func (Scan) TableName() string {
	return "scans"
}
