package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	FullName          string    `json:"full_name"`
	Role              string    `json:"role"`
	Status            string    `json:"status"`
	AvatarURL         string    `json:"avatar_url,omitempty"`
	PreferredLanguage string    `json:"preferred_language"`
	FieldModeEnabled  bool      `json:"field_mode_enabled"`
	CreatedAt         time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type UpdatePreferencesRequest struct {
	PreferredLanguage *string `json:"preferred_language" validate:"omitempty,oneof=en hi ta te"`
	FieldModeEnabled  *bool   `json:"field_mode_enabled"`
}

type UploadAvatarRequest struct {
	ImageData string `json:"image_data" validate:"required"`
}

// UpdateLocationRequest reports a one-shot geolocation attempt. Either a
// coordinate pair or an error message, never both.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Error     string   `json:"error"`
}
