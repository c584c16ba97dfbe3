package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
	"cattle-tracker/domain/models"
	"cattle-tracker/domain/repositories"
	"cattle-tracker/domain/services"
	"cattle-tracker/pkg/logger"
	"cattle-tracker/pkg/utils"
)

type WeightLogServiceImpl struct {
	cattleRepo repositories.CattleRepository
	weightRepo repositories.WeightLogRepository
	now        func() time.Time
}

func NewWeightLogService(
	cattleRepo repositories.CattleRepository,
	weightRepo repositories.WeightLogRepository,
) services.WeightLogService {
	return &WeightLogServiceImpl{
		cattleRepo: cattleRepo,
		weightRepo: weightRepo,
		now:        time.Now,
	}
}

func (s *WeightLogServiceImpl) List(ctx context.Context, cattleID uuid.UUID) ([]dto.WeightLogResponse, error) {
	if _, err := s.cattleRepo.GetByID(ctx, cattleID); err != nil {
		return nil, err
	}

	logs, err := s.weightRepo.ListByCattle(ctx, cattleID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WeightLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *dto.WeightLogToResponse(&logs[i]))
	}
	return responses, nil
}

func (s *WeightLogServiceImpl) Create(ctx context.Context, cattleID uuid.UUID, req *dto.WeightLogRequest) (*dto.WeightLogResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &models.ValidationError{Fields: fields}
	}

	if _, err := s.cattleRepo.GetByID(ctx, cattleID); err != nil {
		return nil, err
	}

	measuredAt, err := time.Parse(dateLayout, req.MeasuredAt)
	if err != nil {
		return nil, models.NewValidationError("measured_at", "must be a valid YYYY-MM-DD date")
	}

	if req.WeightKg <= 0 {
		return nil, models.NewValidationError("weight_kg", "must be greater than zero")
	}

	// Compare date components only so "today" is always accepted.
	today := s.now()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if measuredAt.After(todayDate) {
		return nil, models.NewValidationError("measured_at", "cannot be in the future")
	}

	exists, err := s.weightRepo.ExistsForDate(ctx, cattleID, measuredAt)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &models.ConflictError{Message: fmt.Sprintf("a weight sample for %s already exists", req.MeasuredAt)}
	}

	log := &models.WeightLog{
		CattleID:   cattleID,
		MeasuredAt: measuredAt,
		WeightKg:   req.WeightKg,
		Method:     req.Method,
	}
	if err := s.weightRepo.Create(ctx, log); err != nil {
		logger.HerdError("weight_create", "failed to record weight", err, map[string]interface{}{"cattle_id": cattleID.String()})
		return nil, err
	}
	logger.Herd("weight_create", "weight recorded", map[string]interface{}{
		"cattle_id":   cattleID.String(),
		"measured_at": req.MeasuredAt,
		"weight_kg":   req.WeightKg,
	})

	return dto.WeightLogToResponse(log), nil
}

func (s *WeightLogServiceImpl) Delete(ctx context.Context, cattleID, id uuid.UUID) error {
	if _, err := s.cattleRepo.GetByID(ctx, cattleID); err != nil {
		return err
	}
	if err := s.weightRepo.Delete(ctx, cattleID, id); err != nil {
		return err
	}
	logger.Herd("weight_delete", "weight sample deleted", map[string]interface{}{
		"cattle_id": cattleID.String(),
		"id":        id.String(),
	})
	return nil
}
