package serviceimpl

import (
	"context"
	"errors"
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

const dateLayout = "2006-01-02"

type CattleServiceImpl struct {
	cattleRepo repositories.CattleRepository
	weightRepo repositories.WeightLogRepository
	now        func() time.Time
}

func NewCattleService(
	cattleRepo repositories.CattleRepository,
	weightRepo repositories.WeightLogRepository,
) services.CattleService {
	return &CattleServiceImpl{
		cattleRepo: cattleRepo,
		weightRepo: weightRepo,
		now:        time.Now,
	}
}

func (s *CattleServiceImpl) Create(ctx context.Context, req *dto.CattleRequest) (*dto.CattleResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &models.ValidationError{Fields: fields}
	}

	sex := models.CattleSex(req.Sex)
	if !sex.Valid() {
		return nil, models.NewValidationError("sex", "must be one of: cow, bull, steer, heifer, calf")
	}

	status := models.StatusActive
	if req.Status != "" {
		status = models.CattleStatus(req.Status)
		if !status.Valid() {
			return nil, models.NewValidationError("status", "must be active or archived")
		}
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		return nil, models.NewValidationError("dob", "must be a valid YYYY-MM-DD date")
	}

	if _, err := s.cattleRepo.GetByTag(ctx, req.TagNumber); err == nil {
		return nil, &models.ConflictError{Message: fmt.Sprintf("tag number %s already exists", req.TagNumber)}
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	if err := s.validateParents(ctx, req.Sire, req.Dam, uuid.Nil); err != nil {
		return nil, err
	}

	cattle := &models.Cattle{
		TagNumber:  req.TagNumber,
		Name:       req.Name,
		Sex:        sex,
		DOB:        dob,
		Color:      req.Color,
		Breed:      req.Breed,
		HornStatus: req.HornStatus,
		Status:     status,
		SireID:     req.Sire,
		DamID:      req.Dam,
	}

	if err := s.cattleRepo.Create(ctx, cattle); err != nil {
		logger.HerdError("create", "failed to create cattle record", err, map[string]interface{}{"tag_number": req.TagNumber})
		return nil, err
	}
	logger.Herd("create", "cattle record created", map[string]interface{}{"id": cattle.ID.String(), "tag_number": cattle.TagNumber})

	created, err := s.cattleRepo.GetByID(ctx, cattle.ID)
	if err != nil {
		return nil, err
	}
	return dto.CattleToResponse(created), nil
}

func (s *CattleServiceImpl) List(ctx context.Context, filter dto.CattleListFilter, page, pageSize int) ([]dto.CattleResponse, int64, error) {
	repoFilter := repositories.CattleFilter{
		Sex:    filter.Sex,
		Status: filter.Status,
		Color:  filter.Color,
		DOBGte: filter.DOBGte,
		DOBLte: filter.DOBLte,
		Search: filter.Search,
	}

	offset := (page - 1) * pageSize
	cattle, total, err := s.cattleRepo.List(ctx, repoFilter, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.CattleResponse, 0, len(cattle))
	for i := range cattle {
		responses = append(responses, *dto.CattleToResponse(&cattle[i]))
	}
	return responses, total, nil
}

func (s *CattleServiceImpl) Get(ctx context.Context, id uuid.UUID) (*dto.CattleDetailView, error) {
	cattle, err := s.cattleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	latest, err := s.weightRepo.GetLatest(ctx, id)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	return dto.CattleToDetailView(cattle, latest, s.now()), nil
}

func (s *CattleServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.CattleUpdateRequest) (*dto.CattleResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &models.ValidationError{Fields: fields}
	}

	cattle, err := s.cattleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TagNumber != nil && *req.TagNumber != cattle.TagNumber {
		existing, err := s.cattleRepo.GetByTag(ctx, *req.TagNumber)
		if err == nil && existing.ID != id {
			return nil, &models.ConflictError{Message: fmt.Sprintf("tag number %s already exists", *req.TagNumber)}
		}
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		cattle.TagNumber = *req.TagNumber
	}
	if req.Name != nil {
		cattle.Name = *req.Name
	}
	if req.Sex != nil {
		sex := models.CattleSex(*req.Sex)
		if !sex.Valid() {
			return nil, models.NewValidationError("sex", "must be one of: cow, bull, steer, heifer, calf")
		}
		cattle.Sex = sex
	}
	if req.DOB != nil {
		if *req.DOB == "" {
			cattle.DOB = nil
		} else {
			dob, err := parseDate(req.DOB)
			if err != nil {
				return nil, models.NewValidationError("dob", "must be a valid YYYY-MM-DD date")
			}
			cattle.DOB = dob
		}
	}
	if req.Color != nil {
		cattle.Color = *req.Color
	}
	if req.Breed != nil {
		cattle.Breed = *req.Breed
	}
	if req.HornStatus != nil {
		cattle.HornStatus = *req.HornStatus
	}
	if req.Status != nil {
		status := models.CattleStatus(*req.Status)
		if !status.Valid() {
			return nil, models.NewValidationError("status", "must be active or archived")
		}
		cattle.Status = status
	}
	if req.Sire != nil || req.Dam != nil {
		sire := cattle.SireID
		dam := cattle.DamID
		if req.Sire != nil {
			sire = req.Sire
		}
		if req.Dam != nil {
			dam = req.Dam
		}
		if err := s.validateParents(ctx, sire, dam, id); err != nil {
			return nil, err
		}
		cattle.SireID = sire
		cattle.DamID = dam
	}

	// Drop preloaded associations so Save only writes this row.
	cattle.Sire = nil
	cattle.Dam = nil

	if err := s.cattleRepo.Update(ctx, cattle); err != nil {
		logger.HerdError("update", "failed to update cattle record", err, map[string]interface{}{"id": id.String()})
		return nil, err
	}
	logger.Herd("update", "cattle record updated", map[string]interface{}{"id": id.String()})

	updated, err := s.cattleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.CattleToResponse(updated), nil
}

func (s *CattleServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.cattleRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Herd("delete", "cattle record deleted", map[string]interface{}{"id": id.String()})
	return nil
}

func (s *CattleServiceImpl) Archive(ctx context.Context, id uuid.UUID) error {
	cattle, err := s.cattleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cattle.Status == models.StatusArchived {
		return nil
	}

	cattle.Status = models.StatusArchived
	cattle.Sire = nil
	cattle.Dam = nil
	if err := s.cattleRepo.Update(ctx, cattle); err != nil {
		return err
	}
	logger.Herd("archive", "cattle record archived", map[string]interface{}{"id": id.String()})
	return nil
}

func (s *CattleServiceImpl) Lineage(ctx context.Context, id uuid.UUID) (*dto.LineageResponse, error) {
	cattle, err := s.cattleRepo.GetWithLineage(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()

	latest, err := s.weightRepo.GetLatest(ctx, id)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	resp := &dto.LineageResponse{
		Current:   dto.CattleToDetailView(cattle, latest, now),
		Siblings:  []dto.CattleBasicView{},
		Offspring: []dto.CattleBasicView{},
	}

	if cattle.Sire != nil {
		resp.Parents.Father = dto.CattleToBasicView(cattle.Sire, now)
		resp.Grandparents.PaternalGrandfather = dto.CattleToBasicView(cattle.Sire.Sire, now)
		resp.Grandparents.PaternalGrandmother = dto.CattleToBasicView(cattle.Sire.Dam, now)
	}
	if cattle.Dam != nil {
		resp.Parents.Mother = dto.CattleToBasicView(cattle.Dam, now)
		resp.Grandparents.MaternalGrandfather = dto.CattleToBasicView(cattle.Dam.Sire, now)
		resp.Grandparents.MaternalGrandmother = dto.CattleToBasicView(cattle.Dam.Dam, now)
	}

	// An animal with no recorded parents has no resolvable siblings.
	if cattle.SireID != nil || cattle.DamID != nil {
		siblings, err := s.cattleRepo.ListSiblings(ctx, cattle.SireID, cattle.DamID, id)
		if err != nil {
			return nil, err
		}
		for i := range siblings {
			resp.Siblings = append(resp.Siblings, *dto.CattleToBasicView(&siblings[i], now))
		}
	}

	var offspring []models.Cattle
	switch {
	case cattle.Sex.CanSire():
		offspring, err = s.cattleRepo.ListOffspringBySire(ctx, id)
	case cattle.Sex.CanCalve():
		offspring, err = s.cattleRepo.ListOffspringByDam(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	for i := range offspring {
		resp.Offspring = append(resp.Offspring, *dto.CattleToBasicView(&offspring[i], now))
	}

	return resp, nil
}

// validateParents checks that referenced parents exist, are not the animal
// itself, and can fill the breeding role.
func (s *CattleServiceImpl) validateParents(ctx context.Context, sireID, damID *uuid.UUID, selfID uuid.UUID) error {
	if sireID != nil {
		if *sireID == selfID {
			return models.NewValidationError("sire", "an animal cannot be its own sire")
		}
		sire, err := s.cattleRepo.GetByID(ctx, *sireID)
		if errors.Is(err, models.ErrNotFound) {
			return models.NewValidationError("sire", "referenced animal does not exist")
		}
		if err != nil {
			return err
		}
		if !sire.Sex.CanSire() {
			return models.NewValidationError("sire", "must be a bull or steer")
		}
	}
	if damID != nil {
		if *damID == selfID {
			return models.NewValidationError("dam", "an animal cannot be its own dam")
		}
		dam, err := s.cattleRepo.GetByID(ctx, *damID)
		if errors.Is(err, models.ErrNotFound) {
			return models.NewValidationError("dam", "referenced animal does not exist")
		}
		if err != nil {
			return err
		}
		if !dam.Sex.CanCalve() {
			return models.NewValidationError("dam", "must be a cow or heifer")
		}
	}
	return nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
