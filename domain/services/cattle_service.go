package services

import (
	"context"

	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
)

type CattleService interface {
	Create(ctx context.Context, req *dto.CattleRequest) (*dto.CattleResponse, error)
	List(ctx context.Context, filter dto.CattleListFilter, page, pageSize int) ([]dto.CattleResponse, int64, error)

	// Get returns the detail view (normalized field names, parent details,
	// latest weight).
	Get(ctx context.Context, id uuid.UUID) (*dto.CattleDetailView, error)

	Update(ctx context.Context, id uuid.UUID, req *dto.CattleUpdateRequest) (*dto.CattleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Archive sets status to archived. Idempotent.
	Archive(ctx context.Context, id uuid.UUID) error

	// Lineage resolves the family tree: parents, grandparents, siblings and
	// offspring. Fails with ErrNotFound only when the root animal is missing.
	Lineage(ctx context.Context, id uuid.UUID) (*dto.LineageResponse, error)
}
