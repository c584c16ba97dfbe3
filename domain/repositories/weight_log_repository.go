package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/models"
)

type WeightLogRepository interface {
	Create(ctx context.Context, log *models.WeightLog) error

	// ListByCattle returns all samples for one animal ordered by measured_at
	// ascending.
	ListByCattle(ctx context.Context, cattleID uuid.UUID) ([]models.WeightLog, error)

	// GetLatest returns the most recent sample by measured_at, or ErrNotFound
	// when the animal has none.
	GetLatest(ctx context.Context, cattleID uuid.UUID) (*models.WeightLog, error)

	GetByID(ctx context.Context, cattleID, id uuid.UUID) (*models.WeightLog, error)
	ExistsForDate(ctx context.Context, cattleID uuid.UUID, date time.Time) (bool, error)
	ListByCattleIDs(ctx context.Context, cattleIDs []uuid.UUID) ([]models.WeightLog, error)
	Delete(ctx context.Context, cattleID, id uuid.UUID) error
}
