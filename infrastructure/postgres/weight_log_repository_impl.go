package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cattle-tracker/domain/models"
	"cattle-tracker/domain/repositories"
)

type WeightLogRepositoryImpl struct {
	db *gorm.DB
}

func NewWeightLogRepository(db *gorm.DB) repositories.WeightLogRepository {
	return &WeightLogRepositoryImpl{db: db}
}

func (r *WeightLogRepositoryImpl) Create(ctx context.Context, log *models.WeightLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *WeightLogRepositoryImpl) ListByCattle(ctx context.Context, cattleID uuid.UUID) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := r.db.WithContext(ctx).
		Where("cattle_id = ?", cattleID).
		Order("measured_at ASC").
		Find(&logs).Error
	return logs, err
}

func (r *WeightLogRepositoryImpl) GetLatest(ctx context.Context, cattleID uuid.UUID) (*models.WeightLog, error) {
	var log models.WeightLog
	err := r.db.WithContext(ctx).
		Where("cattle_id = ?", cattleID).
		Order("measured_at DESC").
		First(&log).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &log, nil
}

func (r *WeightLogRepositoryImpl) GetByID(ctx context.Context, cattleID, id uuid.UUID) (*models.WeightLog, error) {
	var log models.WeightLog
	err := r.db.WithContext(ctx).
		Where("id = ? AND cattle_id = ?", id, cattleID).
		First(&log).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &log, nil
}

func (r *WeightLogRepositoryImpl) ExistsForDate(ctx context.Context, cattleID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WeightLog{}).
		Where("cattle_id = ? AND measured_at = ?", cattleID, date).
		Count(&count).Error
	return count > 0, err
}

func (r *WeightLogRepositoryImpl) ListByCattleIDs(ctx context.Context, cattleIDs []uuid.UUID) ([]models.WeightLog, error) {
	if len(cattleIDs) == 0 {
		return nil, nil
	}

	var logs []models.WeightLog
	err := r.db.WithContext(ctx).
		Where("cattle_id IN ?", cattleIDs).
		Find(&logs).Error
	return logs, err
}

func (r *WeightLogRepositoryImpl) Delete(ctx context.Context, cattleID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND cattle_id = ?", id, cattleID).
		Delete(&models.WeightLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
