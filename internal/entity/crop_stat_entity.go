package entity

import (
	"time"

	"github.com/google/uuid"
)

// CropDiseaseStat aggregates how often a diagnosis has been recorded per
// crop type, maintained asynchronously by the scan event consumer.
type CropDiseaseStat struct {
	Id         uuid.UUID
	CropType   string
	Diagnosis  string
	ScanCount  int64
	LastSeenAt time.Time
}
