package serviceimpl

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"cattle-tracker/domain/models"
	"cattle-tracker/infrastructure/memory"
)

func newStatsService(t *testing.T) (*StatsServiceImpl, *memory.CattleRepository, *memory.WeightLogRepository) {
	t.Helper()
	cattleRepo := memory.NewCattleRepository()
	weightRepo := memory.NewWeightLogRepository()
	svc := &StatsServiceImpl{
		cattleRepo: cattleRepo,
		weightRepo: weightRepo,
		now:        func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) },
	}
	return svc, cattleRepo, weightRepo
}

func TestSummaryCountsAndAverageAge(t *testing.T) {
	svc, repo, _ := newStatsService(t)
	ctx := context.Background()

	// One and two full years old at the pinned clock.
	seedCattle(t, repo, "T001", models.SexCow, datePtr(2023, time.June, 15), nil, nil)
	seedCattle(t, repo, "T002", models.SexBull, datePtr(2022, time.June, 15), nil, nil)

	archived := seedCattle(t, repo, "T003", models.SexCow, datePtr(2010, time.January, 1), nil, nil)
	archived.Status = models.StatusArchived
	if err := repo.Update(ctx, archived); err != nil {
		t.Fatalf("archive seed: %v", err)
	}

	stats, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if stats.Totals.Total != 3 || stats.Totals.Active != 2 || stats.Totals.Archived != 1 {
		t.Errorf("totals = %+v", stats.Totals)
	}
	// Archived animals are excluded from the sex breakdown.
	if stats.BySex.Cow != 1 || stats.BySex.Bull != 1 {
		t.Errorf("bySex = %+v", stats.BySex)
	}
	// (366 + 731) days / 2 / 365.25 rounds to 1.5 years.
	if stats.AvgAge != 1.5 {
		t.Errorf("avgAge = %v, want 1.5", stats.AvgAge)
	}
}

func TestSummaryEmptyHerd(t *testing.T) {
	svc, _, _ := newStatsService(t)

	stats, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if stats.Totals.Total != 0 || stats.AvgAge != 0 {
		t.Errorf("empty herd stats = %+v", stats)
	}
}

func TestColorDistribution(t *testing.T) {
	svc, repo, _ := newStatsService(t)
	ctx := context.Background()

	for i, color := range []string{"brown", "brown", "black"} {
		c := seedCattle(t, repo, "T00"+string(rune('1'+i)), models.SexCow, nil, nil, nil)
		c.Color = color
		if err := repo.Update(ctx, c); err != nil {
			t.Fatalf("seed color: %v", err)
		}
	}
	archived := seedCattle(t, repo, "T009", models.SexCow, nil, nil, nil)
	archived.Color = "white"
	archived.Status = models.StatusArchived
	if err := repo.Update(ctx, archived); err != nil {
		t.Fatalf("archive seed: %v", err)
	}

	dist, err := svc.ColorDistribution(ctx)
	if err != nil {
		t.Fatalf("ColorDistribution: %v", err)
	}

	if dist.Total != 3 {
		t.Errorf("total = %d, want 3 (archived excluded)", dist.Total)
	}
	if len(dist.Distribution) != 2 {
		t.Fatalf("groups = %d, want 2", len(dist.Distribution))
	}
	// Sorted by count descending.
	if dist.Distribution[0].Color != "brown" || dist.Distribution[0].Count != 2 {
		t.Errorf("top group = %+v", dist.Distribution[0])
	}

	var sum float64
	for _, row := range dist.Distribution {
		sum += row.Percentage
	}
	if math.Abs(sum-100) > 0.2 {
		t.Errorf("percentages sum to %v", sum)
	}
}

func TestGrowthBuckets(t *testing.T) {
	svc, repo, weightRepo := newStatsService(t)
	ctx := context.Background()

	a := seedCattle(t, repo, "T001", models.SexCalf, datePtr(2023, time.January, 1), nil, nil)
	b := seedCattle(t, repo, "T002", models.SexCalf, datePtr(2023, time.July, 1), nil, nil)
	// Born outside the cohort year; must not contribute.
	other := seedCattle(t, repo, "T003", models.SexCalf, datePtr(2022, time.July, 1), nil, nil)

	samples := []struct {
		cattle *models.Cattle
		date   time.Time
		weight float64
	}{
		{a, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), 40},   // 14 days, bucket 0
		{a, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), 50},    // 31 days, bucket 1
		{b, time.Date(2023, 8, 5, 0, 0, 0, 0, time.UTC), 60},    // 35 days, bucket 1
		{a, time.Date(2022, 12, 15, 0, 0, 0, 0, time.UTC), 999}, // before dob, ignored
		{other, time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC), 70},
	}
	for _, s := range samples {
		err := weightRepo.Create(ctx, &models.WeightLog{CattleID: s.cattle.ID, MeasuredAt: s.date, WeightKg: s.weight})
		if err != nil {
			t.Fatalf("seed weight: %v", err)
		}
	}

	stats, err := svc.Growth(ctx, 2023)
	if err != nil {
		t.Fatalf("Growth: %v", err)
	}

	if stats.Year != 2023 || stats.CattleCount != 2 {
		t.Errorf("year=%d cattleCount=%d", stats.Year, stats.CattleCount)
	}
	if len(stats.GrowthData) != 2 {
		t.Fatalf("buckets = %d, want 2: %+v", len(stats.GrowthData), stats.GrowthData)
	}

	bucket0 := stats.GrowthData[0]
	if bucket0.AgeMonths != 0 || bucket0.AvgWeight != 40 || bucket0.Count != 1 {
		t.Errorf("bucket 0 = %+v", bucket0)
	}

	bucket1 := stats.GrowthData[1]
	if bucket1.AgeMonths != 1 || bucket1.AvgWeight != 55 || bucket1.Count != 2 {
		t.Errorf("bucket 1 = %+v", bucket1)
	}
}

func TestGrowthYearValidation(t *testing.T) {
	svc, _, _ := newStatsService(t)
	ctx := context.Background()

	for _, year := range []int{1899, 2025} {
		_, err := svc.Growth(ctx, year)
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Growth(%d): expected validation error, got %v", year, err)
		}
	}

	// Empty cohort within range is fine.
	stats, err := svc.Growth(ctx, 1950)
	if err != nil {
		t.Fatalf("Growth(1950): %v", err)
	}
	if stats.CattleCount != 0 || len(stats.GrowthData) != 0 {
		t.Errorf("empty cohort stats = %+v", stats)
	}
}
