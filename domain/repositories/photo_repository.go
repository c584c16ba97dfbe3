package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/models"
)

// PhotoFilter narrows photo listings. Dates compare against the capture
// time's date component.
type PhotoFilter struct {
	CaptureDate    *time.Time
	CaptureDateGte *time.Time
	CaptureDateLte *time.Time
	HasCattle      *bool
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error

	// GetByID resolves the uploader and tagged cattle.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error)

	List(ctx context.Context, filter PhotoFilter, offset, limit int) ([]models.Photo, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceTags atomically swaps the photo's tag set: existing join rows are
	// deleted and the given set recreated inside one transaction.
	ReplaceTags(ctx context.Context, photoID uuid.UUID, cattleIDs []uuid.UUID) error
}
