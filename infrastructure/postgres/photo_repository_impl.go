package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cattle-tracker/domain/models"
	"cattle-tracker/domain/repositories"
)

type PhotoRepositoryImpl struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) repositories.PhotoRepository {
	return &PhotoRepositoryImpl{db: db}
}

func (r *PhotoRepositoryImpl) Create(ctx context.Context, photo *models.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *PhotoRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).
		Preload("UploadedBy").
		Preload("Tags").
		Preload("Tags.Cattle").
		Where("id = ?", id).
		First(&photo).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) List(ctx context.Context, filter repositories.PhotoFilter, offset, limit int) ([]models.Photo, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Photo{})

	if filter.CaptureDate != nil {
		query = query.Where("DATE(capture_time) = DATE(?)", *filter.CaptureDate)
	}
	if filter.CaptureDateGte != nil {
		query = query.Where("DATE(capture_time) >= DATE(?)", *filter.CaptureDateGte)
	}
	if filter.CaptureDateLte != nil {
		query = query.Where("DATE(capture_time) <= DATE(?)", *filter.CaptureDateLte)
	}
	if filter.HasCattle != nil {
		sub := r.db.Model(&models.PhotoCattle{}).
			Select("1").
			Where("photo_cattle.photo_id = photos.id")
		if *filter.HasCattle {
			query = query.Where("EXISTS (?)", sub)
		} else {
			query = query.Where("NOT EXISTS (?)", sub)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var photos []models.Photo
	err := query.
		Preload("UploadedBy").
		Preload("Tags").
		Preload("Tags.Cattle").
		Order("uploaded_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&photos).Error

	return photos, total, err
}

func (r *PhotoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Photo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *PhotoRepositoryImpl) ReplaceTags(ctx context.Context, photoID uuid.UUID, cattleIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", photoID).Delete(&models.PhotoCattle{}).Error; err != nil {
			return err
		}

		if len(cattleIDs) == 0 {
			return nil
		}

		tags := make([]models.PhotoCattle, 0, len(cattleIDs))
		for _, cattleID := range cattleIDs {
			tags = append(tags, models.PhotoCattle{PhotoID: photoID, CattleID: cattleID})
		}
		return tx.Create(&tags).Error
	})
}
