package dto

import (
	"time"

	"github.com/google/uuid"
)

// Save status values reported alongside an analysis result. The analysis
// itself succeeds independently of whether the scan could be persisted.
const (
	SaveStatusSaved       = "saved"
	SaveStatusNotSignedIn = "not_signed_in"
	SaveStatusWriteFailed = "write_failed"
)

type AnalyzeScanRequest struct {
	// ImageData is a base64 data URL (data:image/...;base64,...).
	ImageData string `json:"image_data" validate:"required"`
	CropType  string `json:"crop_type" validate:"required,oneof=rice wheat cotton tomato potato maize sugarcane other"`
}

type DiagnosisDTO struct {
	Diagnosis      string  `json:"diagnosis"`
	Confidence     float64 `json:"confidence"`
	IsHealthy      bool    `json:"is_healthy"`
	Cause          string  `json:"cause"`
	OrganicCure    string  `json:"organic_cure"`
	ChemicalCure   string  `json:"chemical_cure"`
	PreventionTips string  `json:"prevention_tips,omitempty"`
}

type AnalyzeScanResponse struct {
	ScanId               *uuid.UUID   `json:"scan_id,omitempty"`
	Result               DiagnosisDTO `json:"result"`
	ImageURL             string       `json:"image_url,omitempty"`
	HealthyComparisonURL string       `json:"healthy_comparison_url"`
	SaveStatus           string       `json:"save_status"`
}

type ScanResponse struct {
	Id                   uuid.UUID `json:"id"`
	CropType             string    `json:"crop_type"`
	Diagnosis            string    `json:"diagnosis"`
	Cause                string    `json:"cause"`
	OrganicCure          string    `json:"organic_cure"`
	ChemicalCure         string    `json:"chemical_cure"`
	Confidence           float64   `json:"confidence"`
	ImageURL             string    `json:"image_url,omitempty"`
	HealthyComparisonURL string    `json:"healthy_comparison_url,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

type ScanListResponse struct {
	Scans []ScanResponse `json:"scans"`
	Total int            `json:"total"`
}

// ScanRecordedMessage is the bus payload handed to the stats consumer after
// a scan is persisted.
type ScanRecordedMessage struct {
	ScanId    uuid.UUID `json:"scan_id"`
	CropType  string    `json:"crop_type"`
	Diagnosis string    `json:"diagnosis"`
	SeenAt    time.Time `json:"seen_at"`
}
