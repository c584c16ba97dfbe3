package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/models"
)

type WeightLogRepository struct {
	mu   sync.RWMutex
	logs map[uuid.UUID]*models.WeightLog
}

func NewWeightLogRepository() *WeightLogRepository {
	return &WeightLogRepository{logs: make(map[uuid.UUID]*models.WeightLog)}
}

func (r *WeightLogRepository) Create(_ context.Context, log *models.WeightLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = time.Now()

	stored := *log
	r.logs[log.ID] = &stored
	return nil
}

func (r *WeightLogRepository) ListByCattle(_ context.Context, cattleID uuid.UUID) ([]models.WeightLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var logs []models.WeightLog
	for _, l := range r.logs {
		if l.CattleID == cattleID {
			logs = append(logs, *l)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].MeasuredAt.Before(logs[j].MeasuredAt)
	})
	return logs, nil
}

func (r *WeightLogRepository) GetLatest(ctx context.Context, cattleID uuid.UUID) (*models.WeightLog, error) {
	logs, _ := r.ListByCattle(ctx, cattleID)
	if len(logs) == 0 {
		return nil, models.ErrNotFound
	}
	latest := logs[len(logs)-1]
	return &latest, nil
}

func (r *WeightLogRepository) GetByID(_ context.Context, cattleID, id uuid.UUID) (*models.WeightLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.logs[id]
	if !ok || l.CattleID != cattleID {
		return nil, models.ErrNotFound
	}
	clone := *l
	return &clone, nil
}

func (r *WeightLogRepository) ExistsForDate(_ context.Context, cattleID uuid.UUID, date time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.logs {
		if l.CattleID == cattleID && sameDate(l.MeasuredAt, date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *WeightLogRepository) ListByCattleIDs(_ context.Context, cattleIDs []uuid.UUID) ([]models.WeightLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[uuid.UUID]bool, len(cattleIDs))
	for _, id := range cattleIDs {
		wanted[id] = true
	}

	var logs []models.WeightLog
	for _, l := range r.logs {
		if wanted[l.CattleID] {
			logs = append(logs, *l)
		}
	}
	return logs, nil
}

func (r *WeightLogRepository) Delete(_ context.Context, cattleID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.logs[id]
	if !ok || l.CattleID != cattleID {
		return models.ErrNotFound
	}
	delete(r.logs, id)
	return nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
