package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cattle-tracker/domain/models"
	"cattle-tracker/domain/repositories"
)

type CattleRepositoryImpl struct {
	db *gorm.DB
}

func NewCattleRepository(db *gorm.DB) repositories.CattleRepository {
	return &CattleRepositoryImpl{db: db}
}

func (r *CattleRepositoryImpl) Create(ctx context.Context, cattle *models.Cattle) error {
	return r.db.WithContext(ctx).Create(cattle).Error
}

func (r *CattleRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Cattle, error) {
	var cattle models.Cattle
	err := r.db.WithContext(ctx).
		Preload("Sire").
		Preload("Dam").
		Where("id = ?", id).
		First(&cattle).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &cattle, nil
}

func (r *CattleRepositoryImpl) GetByTag(ctx context.Context, tagNumber string) (*models.Cattle, error) {
	var cattle models.Cattle
	err := r.db.WithContext(ctx).Where("tag_number = ?", tagNumber).First(&cattle).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &cattle, nil
}

func (r *CattleRepositoryImpl) GetWithLineage(ctx context.Context, id uuid.UUID) (*models.Cattle, error) {
	var cattle models.Cattle
	err := r.db.WithContext(ctx).
		Preload("Sire").
		Preload("Sire.Sire").
		Preload("Sire.Dam").
		Preload("Dam").
		Preload("Dam.Sire").
		Preload("Dam.Dam").
		Where("id = ?", id).
		First(&cattle).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &cattle, nil
}

func (r *CattleRepositoryImpl) ListSiblings(ctx context.Context, sireID, damID *uuid.UUID, excludeID uuid.UUID) ([]models.Cattle, error) {
	query := r.db.WithContext(ctx).Where("id <> ?", excludeID)

	switch {
	case sireID != nil && damID != nil:
		query = query.Where("sire_id = ? OR dam_id = ?", *sireID, *damID)
	case sireID != nil:
		query = query.Where("sire_id = ?", *sireID)
	case damID != nil:
		query = query.Where("dam_id = ?", *damID)
	default:
		return nil, nil
	}

	var siblings []models.Cattle
	err := query.Order("tag_number ASC").Find(&siblings).Error
	return siblings, err
}

func (r *CattleRepositoryImpl) ListOffspringBySire(ctx context.Context, sireID uuid.UUID) ([]models.Cattle, error) {
	var offspring []models.Cattle
	err := r.db.WithContext(ctx).
		Where("sire_id = ?", sireID).
		Order("tag_number ASC").
		Find(&offspring).Error
	return offspring, err
}

func (r *CattleRepositoryImpl) ListOffspringByDam(ctx context.Context, damID uuid.UUID) ([]models.Cattle, error) {
	var offspring []models.Cattle
	err := r.db.WithContext(ctx).
		Where("dam_id = ?", damID).
		Order("tag_number ASC").
		Find(&offspring).Error
	return offspring, err
}

func (r *CattleRepositoryImpl) List(ctx context.Context, filter repositories.CattleFilter, offset, limit int) ([]models.Cattle, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Cattle{})

	if filter.Sex != "" {
		query = query.Where("sex = ?", filter.Sex)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Color != "" {
		query = query.Where("color ILIKE ?", "%"+filter.Color+"%")
	}
	if filter.DOBGte != nil {
		query = query.Where("dob >= ?", *filter.DOBGte)
	}
	if filter.DOBLte != nil {
		query = query.Where("dob <= ?", *filter.DOBLte)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"tag_number ILIKE ? OR name ILIKE ? OR color ILIKE ? OR breed ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cattle []models.Cattle
	err := query.
		Preload("Sire").
		Preload("Dam").
		Order("tag_number ASC").
		Offset(offset).
		Limit(limit).
		Find(&cattle).Error

	return cattle, total, err
}

func (r *CattleRepositoryImpl) Update(ctx context.Context, cattle *models.Cattle) error {
	// Save writes all columns so cleared parents (nil SireID/DamID) persist.
	return r.db.WithContext(ctx).Save(cattle).Error
}

func (r *CattleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Cattle{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CattleRepositoryImpl) CountByStatus(ctx context.Context) (map[models.CattleStatus]int64, error) {
	var rows []struct {
		Status models.CattleStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Cattle{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.CattleStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *CattleRepositoryImpl) CountActiveBySex(ctx context.Context) (map[models.CattleSex]int64, error) {
	var rows []struct {
		Sex   models.CattleSex
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Cattle{}).
		Select("sex, COUNT(*) AS count").
		Where("status = ?", models.StatusActive).
		Group("sex").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.CattleSex]int64, len(rows))
	for _, row := range rows {
		counts[row.Sex] = row.Count
	}
	return counts, nil
}

func (r *CattleRepositoryImpl) CountActiveByColor(ctx context.Context) ([]repositories.ValueCount, error) {
	return r.countActiveGrouped(ctx, "color")
}

func (r *CattleRepositoryImpl) CountActiveByBreed(ctx context.Context) ([]repositories.ValueCount, error) {
	return r.countActiveGrouped(ctx, "breed")
}

func (r *CattleRepositoryImpl) countActiveGrouped(ctx context.Context, column string) ([]repositories.ValueCount, error) {
	var rows []repositories.ValueCount
	err := r.db.WithContext(ctx).
		Model(&models.Cattle{}).
		Select(column+" AS value, COUNT(*) AS count").
		Where("status = ?", models.StatusActive).
		Group(column).
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *CattleRepositoryImpl) ListActiveWithDOB(ctx context.Context) ([]models.Cattle, error) {
	var cattle []models.Cattle
	err := r.db.WithContext(ctx).
		Where("status = ? AND dob IS NOT NULL", models.StatusActive).
		Find(&cattle).Error
	return cattle, err
}

func (r *CattleRepositoryImpl) ListBornInYear(ctx context.Context, year int) ([]models.Cattle, error) {
	var cattle []models.Cattle
	err := r.db.WithContext(ctx).
		Where("EXTRACT(YEAR FROM dob) = ?", year).
		Find(&cattle).Error
	return cattle, err
}

func (r *CattleRepositoryImpl) FilterActiveIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]bool{}, nil
	}

	var found []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.Cattle{}).
		Where("id IN ? AND status = ?", ids, models.StatusActive).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	active := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		active[id] = true
	}
	return active, nil
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}
