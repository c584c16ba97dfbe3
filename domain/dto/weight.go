package dto

import "github.com/google/uuid"

type WeightLogRequest struct {
	MeasuredAt string  `json:"measured_at" validate:"required"`
	WeightKg   float64 `json:"weight_kg" validate:"required"`
	Method     string  `json:"method" validate:"max=24"`
}

type WeightLogResponse struct {
	ID         uuid.UUID `json:"id"`
	Cattle     uuid.UUID `json:"cattle"`
	MeasuredAt string    `json:"measured_at"`
	WeightKg   float64   `json:"weight_kg"`
	Method     string    `json:"method"`
}
