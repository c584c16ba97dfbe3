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

func newWeightService(t *testing.T) (*WeightLogServiceImpl, *memory.CattleRepository) {
	t.Helper()
	cattleRepo := memory.NewCattleRepository()
	svc := &WeightLogServiceImpl{
		cattleRepo: cattleRepo,
		weightRepo: memory.NewWeightLogRepository(),
		now:        func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) },
	}
	return svc, cattleRepo
}

func TestWeightCreateAndList(t *testing.T) {
	svc, repo := newWeightService(t)
	ctx := context.Background()
	c := seedCattle(t, repo, "T001", models.SexCow, nil, nil, nil)

	for _, date := range []string{"2024-03-01", "2024-01-01", "2024-05-01"} {
		_, err := svc.Create(ctx, c.ID, &dto.WeightLogRequest{MeasuredAt: date, WeightKg: 250, Method: "scale"})
		if err != nil {
			t.Fatalf("Create %s: %v", date, err)
		}
	}

	logs, err := svc.List(ctx, c.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("len = %d, want 3", len(logs))
	}
	// Oldest first.
	want := []string{"2024-01-01", "2024-03-01", "2024-05-01"}
	for i, w := range want {
		if logs[i].MeasuredAt != w {
			t.Errorf("logs[%d].MeasuredAt = %s, want %s", i, logs[i].MeasuredAt, w)
		}
	}
}

func TestWeightCreateRejectsNonPositive(t *testing.T) {
	svc, repo := newWeightService(t)
	ctx := context.Background()
	c := seedCattle(t, repo, "T001", models.SexCow, nil, nil, nil)

	_, err := svc.Create(ctx, c.ID, &dto.WeightLogRequest{MeasuredAt: "2024-01-01", WeightKg: -5})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["weight_kg"]; !ok {
		t.Errorf("expected weight_kg field error, got %v", verr.Fields)
	}
}

func TestWeightCreateRejectsFutureDate(t *testing.T) {
	svc, repo := newWeightService(t)
	ctx := context.Background()
	c := seedCattle(t, repo, "T001", models.SexCow, nil, nil, nil)

	// The clock is pinned to 2024-06-15; same-day samples are allowed.
	if _, err := svc.Create(ctx, c.ID, &dto.WeightLogRequest{MeasuredAt: "2024-06-15", WeightKg: 300}); err != nil {
		t.Fatalf("same-day sample rejected: %v", err)
	}

	_, err := svc.Create(ctx, c.ID, &dto.WeightLogRequest{MeasuredAt: "2024-06-16", WeightKg: 300})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestWeightCreateRejectsDuplicateDate(t *testing.T) {
	svc, repo := newWeightService(t)
	ctx := context.Background()
	c := seedCattle(t, repo, "T001", models.SexCow, nil, nil, nil)

	if _, err := svc.Create(ctx, c.ID, &dto.WeightLogRequest{MeasuredAt: "2024-02-01", WeightKg: 260}); err != nil {
		t.Fatalf("first sample: %v", err)
	}
	_, err := svc.Create(ctx, c.ID, &dto.WeightLogRequest{MeasuredAt: "2024-02-01", WeightKg: 261})
	if !errors.Is(err, models.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestWeightCreateUnknownCattle(t *testing.T) {
	svc, _ := newWeightService(t)
	_, err := svc.Create(context.Background(), uuid.New(), &dto.WeightLogRequest{MeasuredAt: "2024-02-01", WeightKg: 260})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWeightDelete(t *testing.T) {
	svc, repo := newWeightService(t)
	ctx := context.Background()
	c := seedCattle(t, repo, "T001", models.SexCow, nil, nil, nil)

	created, err := svc.Create(ctx, c.ID, &dto.WeightLogRequest{MeasuredAt: "2024-02-01", WeightKg: 260})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, c.ID, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, c.ID, created.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
