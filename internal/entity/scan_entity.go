package entity

import (
	"time"

	"github.com/google/uuid"
)

// Scan is one completed crop-image diagnosis owned by a user. Scans are
// append-only: created when a signed-in user finishes an analysis, never
// updated afterwards.
type Scan struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	CropType             string
	Diagnosis            string
	Cause                string
	OrganicCure          string
	ChemicalCure         string
	Confidence           float64
	ImageURL             string
	HealthyComparisonURL string
	CreatedAt            time.Time
}
