// Package memory provides in-memory repository implementations used by
// service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/models"
	"cattle-tracker/domain/repositories"
)

type CattleRepository struct {
	mu     sync.RWMutex
	cattle map[uuid.UUID]*models.Cattle
}

func NewCattleRepository() *CattleRepository {
	return &CattleRepository{cattle: make(map[uuid.UUID]*models.Cattle)}
}

func (r *CattleRepository) Create(_ context.Context, cattle *models.Cattle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cattle.ID == uuid.Nil {
		cattle.ID = uuid.New()
	}
	now := time.Now()
	cattle.CreatedAt = now
	cattle.UpdatedAt = now

	stored := *cattle
	r.cattle[cattle.ID] = &stored
	return nil
}

func (r *CattleRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Cattle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveParents(id, 1)
}

func (r *CattleRepository) GetByTag(_ context.Context, tagNumber string) (*models.Cattle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.cattle {
		if c.TagNumber == tagNumber {
			clone := *c
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *CattleRepository) GetWithLineage(_ context.Context, id uuid.UUID) (*models.Cattle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveParents(id, 2)
}

// resolveParents clones the animal with parents attached depth levels up.
func (r *CattleRepository) resolveParents(id uuid.UUID, depth int) (*models.Cattle, error) {
	c, ok := r.cattle[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	clone := *c
	if depth > 0 {
		if c.SireID != nil {
			if sire, err := r.resolveParents(*c.SireID, depth-1); err == nil {
				clone.Sire = sire
			}
		}
		if c.DamID != nil {
			if dam, err := r.resolveParents(*c.DamID, depth-1); err == nil {
				clone.Dam = dam
			}
		}
	}
	return &clone, nil
}

func (r *CattleRepository) ListSiblings(_ context.Context, sireID, damID *uuid.UUID, excludeID uuid.UUID) ([]models.Cattle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sireID == nil && damID == nil {
		return nil, nil
	}

	var siblings []models.Cattle
	for _, c := range r.cattle {
		if c.ID == excludeID {
			continue
		}
		shareSire := sireID != nil && c.SireID != nil && *c.SireID == *sireID
		shareDam := damID != nil && c.DamID != nil && *c.DamID == *damID
		if shareSire || shareDam {
			siblings = append(siblings, *c)
		}
	}
	sortByTag(siblings)
	return siblings, nil
}

func (r *CattleRepository) ListOffspringBySire(_ context.Context, sireID uuid.UUID) ([]models.Cattle, error) {
	return r.listByParent(func(c *models.Cattle) bool {
		return c.SireID != nil && *c.SireID == sireID
	})
}

func (r *CattleRepository) ListOffspringByDam(_ context.Context, damID uuid.UUID) ([]models.Cattle, error) {
	return r.listByParent(func(c *models.Cattle) bool {
		return c.DamID != nil && *c.DamID == damID
	})
}

func (r *CattleRepository) listByParent(match func(*models.Cattle) bool) ([]models.Cattle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var offspring []models.Cattle
	for _, c := range r.cattle {
		if match(c) {
			offspring = append(offspring, *c)
		}
	}
	sortByTag(offspring)
	return offspring, nil
}

func (r *CattleRepository) List(_ context.Context, filter repositories.CattleFilter, offset, limit int) ([]models.Cattle, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Cattle
	for _, c := range r.cattle {
		if !matchesFilter(c, filter) {
			continue
		}
		matched = append(matched, *c)
	}
	sortByTag(matched)

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func matchesFilter(c *models.Cattle, filter repositories.CattleFilter) bool {
	if filter.Sex != "" && string(c.Sex) != filter.Sex {
		return false
	}
	if filter.Status != "" && string(c.Status) != filter.Status {
		return false
	}
	if filter.Color != "" && !strings.Contains(strings.ToLower(c.Color), strings.ToLower(filter.Color)) {
		return false
	}
	if filter.DOBGte != nil && (c.DOB == nil || c.DOB.Before(*filter.DOBGte)) {
		return false
	}
	if filter.DOBLte != nil && (c.DOB == nil || c.DOB.After(*filter.DOBLte)) {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystack := strings.ToLower(c.TagNumber + " " + c.Name + " " + c.Color + " " + c.Breed)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func (r *CattleRepository) Update(_ context.Context, cattle *models.Cattle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cattle[cattle.ID]; !ok {
		return models.ErrNotFound
	}
	cattle.UpdatedAt = time.Now()

	stored := *cattle
	stored.Sire = nil
	stored.Dam = nil
	r.cattle[cattle.ID] = &stored
	return nil
}

func (r *CattleRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cattle[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.cattle, id)

	// Mirror the ON DELETE SET NULL parent constraint.
	for _, c := range r.cattle {
		if c.SireID != nil && *c.SireID == id {
			c.SireID = nil
		}
		if c.DamID != nil && *c.DamID == id {
			c.DamID = nil
		}
	}
	return nil
}

func (r *CattleRepository) CountByStatus(_ context.Context) (map[models.CattleStatus]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.CattleStatus]int64)
	for _, c := range r.cattle {
		counts[c.Status]++
	}
	return counts, nil
}

func (r *CattleRepository) CountActiveBySex(_ context.Context) (map[models.CattleSex]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.CattleSex]int64)
	for _, c := range r.cattle {
		if c.Status == models.StatusActive {
			counts[c.Sex]++
		}
	}
	return counts, nil
}

func (r *CattleRepository) CountActiveByColor(_ context.Context) ([]repositories.ValueCount, error) {
	return r.countActiveGrouped(func(c *models.Cattle) string { return c.Color })
}

func (r *CattleRepository) CountActiveByBreed(_ context.Context) ([]repositories.ValueCount, error) {
	return r.countActiveGrouped(func(c *models.Cattle) string { return c.Breed })
}

func (r *CattleRepository) countActiveGrouped(key func(*models.Cattle) string) ([]repositories.ValueCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64)
	for _, c := range r.cattle {
		if c.Status == models.StatusActive {
			counts[key(c)]++
		}
	}

	rows := make([]repositories.ValueCount, 0, len(counts))
	for value, count := range counts {
		rows = append(rows, repositories.ValueCount{Value: value, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Value < rows[j].Value
	})
	return rows, nil
}

func (r *CattleRepository) ListActiveWithDOB(_ context.Context) ([]models.Cattle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var cattle []models.Cattle
	for _, c := range r.cattle {
		if c.Status == models.StatusActive && c.DOB != nil {
			cattle = append(cattle, *c)
		}
	}
	return cattle, nil
}

func (r *CattleRepository) ListBornInYear(_ context.Context, year int) ([]models.Cattle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var cattle []models.Cattle
	for _, c := range r.cattle {
		if c.DOB != nil && c.DOB.Year() == year {
			cattle = append(cattle, *c)
		}
	}
	return cattle, nil
}

func (r *CattleRepository) FilterActiveIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if c, ok := r.cattle[id]; ok && c.Status == models.StatusActive {
			active[id] = true
		}
	}
	return active, nil
}

func sortByTag(cattle []models.Cattle) {
	sort.Slice(cattle, func(i, j int) bool {
		return cattle[i].TagNumber < cattle[j].TagNumber
	})
}
