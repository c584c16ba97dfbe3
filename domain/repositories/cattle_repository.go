package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/models"
)

// CattleFilter narrows List results. Zero values mean "no filter".
type CattleFilter struct {
	Sex    string
	Status string
	Color  string // case-insensitive substring match
	DOBGte *time.Time
	DOBLte *time.Time
	Search string // tag_number, name, color, breed
}

// ValueCount is one row of a grouped count (color/breed distributions).
type ValueCount struct {
	Value string
	Count int64
}

type CattleRepository interface {
	Create(ctx context.Context, cattle *models.Cattle) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Cattle, error)
	GetByTag(ctx context.Context, tagNumber string) (*models.Cattle, error)

	// GetWithLineage fetches the animal with sire and dam resolved two levels
	// up (Sire.Sire, Sire.Dam, Dam.Sire, Dam.Dam) in a single query plan.
	GetWithLineage(ctx context.Context, id uuid.UUID) (*models.Cattle, error)

	// ListSiblings returns animals sharing the given sire OR dam, excluding
	// excludeID, deduplicated. Callers must not pass two nil parents.
	ListSiblings(ctx context.Context, sireID, damID *uuid.UUID, excludeID uuid.UUID) ([]models.Cattle, error)

	ListOffspringBySire(ctx context.Context, sireID uuid.UUID) ([]models.Cattle, error)
	ListOffspringByDam(ctx context.Context, damID uuid.UUID) ([]models.Cattle, error)

	List(ctx context.Context, filter CattleFilter, offset, limit int) ([]models.Cattle, int64, error)
	Update(ctx context.Context, cattle *models.Cattle) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Stats scans.
	CountByStatus(ctx context.Context) (map[models.CattleStatus]int64, error)
	CountActiveBySex(ctx context.Context) (map[models.CattleSex]int64, error)
	CountActiveByColor(ctx context.Context) ([]ValueCount, error)
	CountActiveByBreed(ctx context.Context) ([]ValueCount, error)
	ListActiveWithDOB(ctx context.Context) ([]models.Cattle, error)
	ListBornInYear(ctx context.Context, year int) ([]models.Cattle, error)

	// FilterActiveIDs returns the subset of ids that exist with status active.
	FilterActiveIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}
