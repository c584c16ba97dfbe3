package services

import (
	"context"

	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
)

type PhotoService interface {
	// Upload validates the image, extracts metadata, writes the original and
	// its two derivatives and persists the record.
	Upload(ctx context.Context, userID uuid.UUID, upload *dto.PhotoUpload, baseURL string) (*dto.PhotoUploadResponse, error)

	List(ctx context.Context, filter dto.PhotoListFilter, page, pageSize int, baseURL string) ([]dto.PhotoResponse, int64, error)
	Get(ctx context.Context, id uuid.UUID, baseURL string) (*dto.PhotoResponse, error)

	// Delete removes the record (tags cascade) and the stored files.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceTags swaps the photo's tag set for the given cattle ids
	// atomically; every id must be an existing active animal.
	ReplaceTags(ctx context.Context, photoID uuid.UUID, cattleIDs []uuid.UUID, baseURL string) (*dto.PhotoResponse, error)
}
