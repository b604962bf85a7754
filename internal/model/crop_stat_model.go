package model

import (
	"time"

	"github.com/google/uuid"
)

type CropDiseaseStat struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CropType   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_crop_diagnosis"`
	Diagnosis  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_crop_diagnosis"`
	ScanCount  int64     `gorm:"not null;default:0"`
	LastSeenAt time.Time `gorm:"not null"`
}

func (CropDiseaseStat) TableName() string {
	return "crop_disease_stats"
}
