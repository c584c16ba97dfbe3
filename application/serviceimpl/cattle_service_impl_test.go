package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
	"cattle-tracker/domain/models"
	"cattle-tracker/infrastructure/memory"
)

func newCattleService(t *testing.T) (*CattleServiceImpl, *memory.CattleRepository, *memory.WeightLogRepository) {
	t.Helper()
	cattleRepo := memory.NewCattleRepository()
	weightRepo := memory.NewWeightLogRepository()
	svc := &CattleServiceImpl{
		cattleRepo: cattleRepo,
		weightRepo: weightRepo,
		now:        func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) },
	}
	return svc, cattleRepo, weightRepo
}

func seedCattle(t *testing.T, repo *memory.CattleRepository, tag string, sex models.CattleSex, dob *time.Time, sireID, damID *uuid.UUID) *models.Cattle {
	t.Helper()
	c := &models.Cattle{
		TagNumber: tag,
		Sex:       sex,
		DOB:       dob,
		Status:    models.StatusActive,
		SireID:    sireID,
		DamID:     damID,
	}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("seed %s: %v", tag, err)
	}
	return c
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestCreateCattle(t *testing.T) {
	svc, _, _ := newCattleService(t)
	ctx := context.Background()

	dob := "2023-03-10"
	resp, err := svc.Create(ctx, &dto.CattleRequest{
		TagNumber: "T001",
		Name:      "Daisy",
		Sex:       "cow",
		DOB:       &dob,
		Color:     "brown",
		Breed:     "Brahman",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.TagNumber != "T001" || resp.Status != "active" {
		t.Errorf("unexpected response: tag=%s status=%s", resp.TagNumber, resp.Status)
	}
	if resp.DOB == nil || *resp.DOB != "2023-03-10" {
		t.Errorf("dob not preserved: %v", resp.DOB)
	}
}

func TestCreateCattleDuplicateTag(t *testing.T) {
	svc, repo, _ := newCattleService(t)
	ctx := context.Background()
	seedCattle(t, repo, "T001", models.SexCow, nil, nil, nil)

	_, err := svc.Create(ctx, &dto.CattleRequest{TagNumber: "T001", Sex: "bull"})
	if !errors.Is(err, models.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateCattleInvalidSex(t *testing.T) {
	svc, _, _ := newCattleService(t)

	_, err := svc.Create(context.Background(), &dto.CattleRequest{TagNumber: "T002", Sex: "ox"})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["sex"]; !ok {
		t.Errorf("expected sex field error, got %v", verr.Fields)
	}
}

func TestCreateCattleParentRoles(t *testing.T) {
	svc, repo, _ := newCattleService(t)
	ctx := context.Background()

	cow := seedCattle(t, repo, "D001", models.SexCow, nil, nil, nil)

	// A cow cannot be a sire.
	_, err := svc.Create(ctx, &dto.CattleRequest{TagNumber: "C001", Sex: "calf", Sire: &cow.ID})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["sire"]; !ok {
		t.Errorf("expected sire field error, got %v", verr.Fields)
	}

	// Unknown parent id.
	missing := uuid.New()
	_, err = svc.Create(ctx, &dto.CattleRequest{TagNumber: "C002", Sex: "calf", Dam: &missing})
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetWithLatestWeight(t *testing.T) {
	svc, repo, weightRepo := newCattleService(t)
	ctx := context.Background()

	c := seedCattle(t, repo, "T001", models.SexHeifer, datePtr(2023, time.January, 1), nil, nil)

	for _, w := range []struct {
		date   time.Time
		weight float64
	}{
		{time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 210.5},
		{time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), 265.0},
		{time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 240.0},
	} {
		err := weightRepo.Create(ctx, &models.WeightLog{CattleID: c.ID, MeasuredAt: w.date, WeightKg: w.weight})
		if err != nil {
			t.Fatalf("seed weight: %v", err)
		}
	}

	view, err := svc.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.LatestWeight == nil || *view.LatestWeight != 265.0 {
		t.Errorf("latest weight = %v, want 265.0", view.LatestWeight)
	}
	if view.Sex != "F" {
		t.Errorf("sex code = %s, want F", view.Sex)
	}
	// 2023-01-01 to 2024-06-15 is 17 whole months.
	if view.AgeInMonths != 17 {
		t.Errorf("age = %d months, want 17", view.AgeInMonths)
	}
}

func TestGetNotFound(t *testing.T) {
	svc, _, _ := newCattleService(t)
	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestArchiveIsIdempotent(t *testing.T) {
	svc, repo, _ := newCattleService(t)
	ctx := context.Background()
	c := seedCattle(t, repo, "T001", models.SexSteer, nil, nil, nil)

	for i := 0; i < 2; i++ {
		if err := svc.Archive(ctx, c.ID); err != nil {
			t.Fatalf("Archive attempt %d: %v", i+1, err)
		}
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.StatusArchived {
		t.Errorf("status = %s, want archived", got.Status)
	}
}

func TestUpdateCattle(t *testing.T) {
	svc, repo, _ := newCattleService(t)
	ctx := context.Background()
	c := seedCattle(t, repo, "T001", models.SexCalf, nil, nil, nil)

	name := "Bruno"
	sex := "bull"
	resp, err := svc.Update(ctx, c.ID, &dto.CattleUpdateRequest{Name: &name, Sex: &sex})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.Name != "Bruno" || resp.Sex != "bull" {
		t.Errorf("update not applied: %+v", resp)
	}

	// Tag collision with another animal is rejected.
	seedCattle(t, repo, "T002", models.SexCow, nil, nil, nil)
	dupTag := "T002"
	_, err = svc.Update(ctx, c.ID, &dto.CattleUpdateRequest{TagNumber: &dupTag})
	if !errors.Is(err, models.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLineageFullTree(t *testing.T) {
	svc, repo, _ := newCattleService(t)
	ctx := context.Background()

	pgf := seedCattle(t, repo, "PGF", models.SexBull, nil, nil, nil)
	pgm := seedCattle(t, repo, "PGM", models.SexCow, nil, nil, nil)
	mgf := seedCattle(t, repo, "MGF", models.SexBull, nil, nil, nil)
	mgm := seedCattle(t, repo, "MGM", models.SexCow, nil, nil, nil)

	sire := seedCattle(t, repo, "S001", models.SexBull, nil, &pgf.ID, &pgm.ID)
	dam := seedCattle(t, repo, "D001", models.SexCow, nil, &mgf.ID, &mgm.ID)

	calf := seedCattle(t, repo, "C001", models.SexCalf, datePtr(2024, time.January, 5), &sire.ID, &dam.ID)

	// Full sibling plus a half sibling through the sire only.
	fullSib := seedCattle(t, repo, "C002", models.SexCalf, nil, &sire.ID, &dam.ID)
	halfSib := seedCattle(t, repo, "C003", models.SexHeifer, nil, &sire.ID, nil)

	lineage, err := svc.Lineage(ctx, calf.ID)
	if err != nil {
		t.Fatalf("Lineage: %v", err)
	}

	if lineage.Current == nil || lineage.Current.EarTag != "C001" {
		t.Fatalf("wrong current animal: %+v", lineage.Current)
	}
	if lineage.Parents.Father == nil || lineage.Parents.Father.EarTag != "S001" {
		t.Errorf("father = %+v, want S001", lineage.Parents.Father)
	}
	if lineage.Parents.Mother == nil || lineage.Parents.Mother.EarTag != "D001" {
		t.Errorf("mother = %+v, want D001", lineage.Parents.Mother)
	}
	if lineage.Grandparents.PaternalGrandfather == nil || lineage.Grandparents.PaternalGrandfather.EarTag != "PGF" {
		t.Errorf("paternal grandfather missing")
	}
	if lineage.Grandparents.MaternalGrandmother == nil || lineage.Grandparents.MaternalGrandmother.EarTag != "MGM" {
		t.Errorf("maternal grandmother missing")
	}

	// Both siblings appear exactly once, even though the full sibling shares
	// sire AND dam.
	if len(lineage.Siblings) != 2 {
		t.Fatalf("siblings = %d, want 2", len(lineage.Siblings))
	}
	seen := map[string]bool{}
	for _, s := range lineage.Siblings {
		if seen[s.EarTag] {
			t.Errorf("duplicate sibling %s", s.EarTag)
		}
		seen[s.EarTag] = true
	}
	if !seen[fullSib.TagNumber] || !seen[halfSib.TagNumber] {
		t.Errorf("sibling set = %v", seen)
	}

	// A calf has no breeding role, so no offspring.
	if len(lineage.Offspring) != 0 {
		t.Errorf("calf offspring = %d, want 0", len(lineage.Offspring))
	}
}

func TestLineageOffspringFollowBreedingRole(t *testing.T) {
	svc, repo, _ := newCattleService(t)
	ctx := context.Background()

	sire := seedCattle(t, repo, "S001", models.SexBull, nil, nil, nil)
	dam := seedCattle(t, repo, "D001", models.SexCow, nil, nil, nil)
	seedCattle(t, repo, "C001", models.SexCalf, nil, &sire.ID, &dam.ID)
	seedCattle(t, repo, "C002", models.SexCalf, nil, &sire.ID, nil)

	sireLineage, err := svc.Lineage(ctx, sire.ID)
	if err != nil {
		t.Fatalf("Lineage(sire): %v", err)
	}
	if len(sireLineage.Offspring) != 2 {
		t.Errorf("sire offspring = %d, want 2", len(sireLineage.Offspring))
	}

	damLineage, err := svc.Lineage(ctx, dam.ID)
	if err != nil {
		t.Fatalf("Lineage(dam): %v", err)
	}
	if len(damLineage.Offspring) != 1 {
		t.Errorf("dam offspring = %d, want 1", len(damLineage.Offspring))
	}
}

func TestLineageNoParentsMeansNoSiblings(t *testing.T) {
	svc, repo, _ := newCattleService(t)
	ctx := context.Background()

	orphan := seedCattle(t, repo, "T001", models.SexCow, nil, nil, nil)
	// Another parentless animal must NOT show up as a sibling.
	seedCattle(t, repo, "T002", models.SexCow, nil, nil, nil)

	lineage, err := svc.Lineage(ctx, orphan.ID)
	if err != nil {
		t.Fatalf("Lineage: %v", err)
	}
	if len(lineage.Siblings) != 0 {
		t.Errorf("siblings = %d, want 0", len(lineage.Siblings))
	}
	if lineage.Parents.Father != nil || lineage.Parents.Mother != nil {
		t.Errorf("unexpected parents: %+v", lineage.Parents)
	}
}

func TestListFilters(t *testing.T) {
	svc, repo, _ := newCattleService(t)
	ctx := context.Background()

	seedCattle(t, repo, "T001", models.SexCow, datePtr(2022, time.March, 1), nil, nil)
	seedCattle(t, repo, "T002", models.SexBull, datePtr(2023, time.March, 1), nil, nil)
	archived := seedCattle(t, repo, "T003", models.SexCow, nil, nil, nil)
	archived.Status = models.StatusArchived
	if err := repo.Update(ctx, archived); err != nil {
		t.Fatalf("archive seed: %v", err)
	}

	got, total, err := svc.List(ctx, dto.CattleListFilter{Status: "active"}, 1, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Errorf("active list: total=%d len=%d, want 2/2", total, len(got))
	}

	got, total, err = svc.List(ctx, dto.CattleListFilter{Sex: "bull"}, 1, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || got[0].TagNumber != "T002" {
		t.Errorf("bull filter: total=%d got=%v", total, got)
	}

	gte := datePtr(2023, time.January, 1)
	got, total, err = svc.List(ctx, dto.CattleListFilter{DOBGte: gte}, 1, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || got[0].TagNumber != "T002" {
		t.Errorf("dob filter: total=%d got=%v", total, got)
	}
}
