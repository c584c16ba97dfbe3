package services

import (
	"context"

	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
)

type WeightLogService interface {
	List(ctx context.Context, cattleID uuid.UUID) ([]dto.WeightLogResponse, error)
	Create(ctx context.Context, cattleID uuid.UUID, req *dto.WeightLogRequest) (*dto.WeightLogResponse, error)
	Delete(ctx context.Context, cattleID, id uuid.UUID) error
}
