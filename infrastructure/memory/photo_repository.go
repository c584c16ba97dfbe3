package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/models"
	"cattle-tracker/domain/repositories"
)

// PhotoRepository keeps photos and their tag rows in memory. Cattle and users
// referenced by tags are resolved from the sibling repositories when set.
type PhotoRepository struct {
	mu     sync.RWMutex
	photos map[uuid.UUID]*models.Photo
	tags   map[uuid.UUID][]uuid.UUID // photo id -> tagged cattle ids

	Cattle *CattleRepository
	Users  *UserRepository
}

func NewPhotoRepository(cattle *CattleRepository, users *UserRepository) *PhotoRepository {
	return &PhotoRepository{
		photos: make(map[uuid.UUID]*models.Photo),
		tags:   make(map[uuid.UUID][]uuid.UUID),
		Cattle: cattle,
		Users:  users,
	}
}

func (r *PhotoRepository) Create(_ context.Context, photo *models.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if photo.ID == uuid.Nil {
		photo.ID = uuid.New()
	}
	if photo.UploadedAt.IsZero() {
		photo.UploadedAt = time.Now()
	}

	stored := *photo
	stored.Tags = nil
	r.photos[photo.ID] = &stored
	return nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	r.mu.RLock()
	p, ok := r.photos[id]
	if !ok {
		r.mu.RUnlock()
		return nil, models.ErrNotFound
	}
	clone := *p
	tagIDs := append([]uuid.UUID(nil), r.tags[id]...)
	r.mu.RUnlock()

	return r.resolve(ctx, &clone, tagIDs), nil
}

func (r *PhotoRepository) resolve(ctx context.Context, photo *models.Photo, tagIDs []uuid.UUID) *models.Photo {
	photo.Tags = []models.PhotoCattle{}
	for _, cattleID := range tagIDs {
		tag := models.PhotoCattle{PhotoID: photo.ID, CattleID: cattleID}
		if r.Cattle != nil {
			if c, err := r.Cattle.GetByID(ctx, cattleID); err == nil {
				tag.Cattle = *c
			}
		}
		photo.Tags = append(photo.Tags, tag)
	}
	if r.Users != nil {
		if u, err := r.Users.GetByID(ctx, photo.UploadedByID); err == nil {
			photo.UploadedBy = *u
		}
	}
	return photo
}

func (r *PhotoRepository) List(ctx context.Context, filter repositories.PhotoFilter, offset, limit int) ([]models.Photo, int64, error) {
	r.mu.RLock()
	var matched []*models.Photo
	for _, p := range r.photos {
		if r.matches(p, filter) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].UploadedAt.After(matched[j].UploadedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		r.mu.RUnlock()
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	type pageEntry struct {
		photo  models.Photo
		tagIDs []uuid.UUID
	}
	page := make([]pageEntry, 0, end-offset)
	for _, p := range matched[offset:end] {
		page = append(page, pageEntry{photo: *p, tagIDs: append([]uuid.UUID(nil), r.tags[p.ID]...)})
	}
	r.mu.RUnlock()

	photos := make([]models.Photo, 0, len(page))
	for i := range page {
		photos = append(photos, *r.resolve(ctx, &page[i].photo, page[i].tagIDs))
	}
	return photos, total, nil
}

func (r *PhotoRepository) matches(p *models.Photo, filter repositories.PhotoFilter) bool {
	if filter.CaptureDate != nil {
		if p.CaptureTime == nil || !sameDate(*p.CaptureTime, *filter.CaptureDate) {
			return false
		}
	}
	if filter.CaptureDateGte != nil {
		if p.CaptureTime == nil || dateOf(*p.CaptureTime).Before(dateOf(*filter.CaptureDateGte)) {
			return false
		}
	}
	if filter.CaptureDateLte != nil {
		if p.CaptureTime == nil || dateOf(*p.CaptureTime).After(dateOf(*filter.CaptureDateLte)) {
			return false
		}
	}
	if filter.HasCattle != nil {
		tagged := len(r.tags[p.ID]) > 0
		if tagged != *filter.HasCattle {
			return false
		}
	}
	return true
}

func (r *PhotoRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.photos[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.photos, id)
	delete(r.tags, id)
	return nil
}

func (r *PhotoRepository) ReplaceTags(_ context.Context, photoID uuid.UUID, cattleIDs []uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.photos[photoID]; !ok {
		return models.ErrNotFound
	}
	r.tags[photoID] = append([]uuid.UUID(nil), cattleIDs...)
	return nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
