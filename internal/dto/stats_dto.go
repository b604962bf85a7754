package dto

import "time"

type CropStatResponse struct {
	CropType   string    `json:"crop_type"`
	Diagnosis  string    `json:"diagnosis"`
	ScanCount  int64     `json:"scan_count"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

type CropStatListResponse struct {
	Stats []CropStatResponse `json:"stats"`
	Total int                `json:"total"`
}
