package serviceimpl

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
	"cattle-tracker/domain/models"
	"cattle-tracker/domain/repositories"
	"cattle-tracker/domain/services"
	"cattle-tracker/pkg/logger"
)

const (
	daysPerYear  = 365.25
	daysPerMonth = 30.44
)

type StatsServiceImpl struct {
	cattleRepo repositories.CattleRepository
	weightRepo repositories.WeightLogRepository
	now        func() time.Time
}

func NewStatsService(
	cattleRepo repositories.CattleRepository,
	weightRepo repositories.WeightLogRepository,
) services.StatsService {
	return &StatsServiceImpl{
		cattleRepo: cattleRepo,
		weightRepo: weightRepo,
		now:        time.Now,
	}
}

func (s *StatsServiceImpl) Summary(ctx context.Context) (*dto.SummaryStats, error) {
	statusCounts, err := s.cattleRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	sexCounts, err := s.cattleRepo.CountActiveBySex(ctx)
	if err != nil {
		return nil, err
	}

	active := statusCounts[models.StatusActive]
	archived := statusCounts[models.StatusArchived]

	stats := &dto.SummaryStats{
		Totals: dto.SummaryTotals{
			Total:    active + archived,
			Active:   active,
			Archived: archived,
		},
		BySex: dto.SummaryBySex{
			Cow:    sexCounts[models.SexCow],
			Bull:   sexCounts[models.SexBull],
			Steer:  sexCounts[models.SexSteer],
			Heifer: sexCounts[models.SexHeifer],
			Calf:   sexCounts[models.SexCalf],
		},
	}

	avgAge, err := s.averageAgeYears(ctx)
	if err != nil {
		return nil, err
	}
	stats.AvgAge = avgAge

	logger.Stats("summary", "herd summary computed", map[string]interface{}{"total": stats.Totals.Total})
	return stats, nil
}

// averageAgeYears is the mean age of active animals with a known DOB,
// expressed in years.
func (s *StatsServiceImpl) averageAgeYears(ctx context.Context) (float64, error) {
	cattle, err := s.cattleRepo.ListActiveWithDOB(ctx)
	if err != nil {
		return 0, err
	}
	if len(cattle) == 0 {
		return 0, nil
	}

	now := s.now()
	var totalDays float64
	for i := range cattle {
		totalDays += now.Sub(*cattle[i].DOB).Hours() / 24
	}
	avgYears := totalDays / float64(len(cattle)) / daysPerYear
	return round(avgYears, 2), nil
}

func (s *StatsServiceImpl) ColorDistribution(ctx context.Context) (*dto.ColorDistribution, error) {
	rows, err := s.cattleRepo.CountActiveByColor(ctx)
	if err != nil {
		return nil, err
	}

	total := sumCounts(rows)
	dist := &dto.ColorDistribution{
		Total:        total,
		Distribution: make([]dto.ColorCount, 0, len(rows)),
	}
	for _, row := range rows {
		dist.Distribution = append(dist.Distribution, dto.ColorCount{
			Color:      row.Value,
			Count:      row.Count,
			Percentage: percentage(row.Count, total),
		})
	}
	return dist, nil
}

func (s *StatsServiceImpl) BreedDistribution(ctx context.Context) (*dto.BreedDistribution, error) {
	rows, err := s.cattleRepo.CountActiveByBreed(ctx)
	if err != nil {
		return nil, err
	}

	total := sumCounts(rows)
	dist := &dto.BreedDistribution{
		Total:        total,
		Distribution: make([]dto.BreedCount, 0, len(rows)),
	}
	for _, row := range rows {
		dist.Distribution = append(dist.Distribution, dto.BreedCount{
			Breed:      row.Value,
			Count:      row.Count,
			Percentage: percentage(row.Count, total),
		})
	}
	return dist, nil
}

func (s *StatsServiceImpl) Growth(ctx context.Context, year int) (*dto.GrowthStats, error) {
	if year < 1900 || year > s.now().Year() {
		return nil, models.NewValidationError("year", "must be between 1900 and the current year")
	}

	cohort, err := s.cattleRepo.ListBornInYear(ctx, year)
	if err != nil {
		return nil, err
	}

	stats := &dto.GrowthStats{
		Year:        year,
		CattleCount: int64(len(cohort)),
		GrowthData:  []dto.GrowthPoint{},
	}
	if len(cohort) == 0 {
		return stats, nil
	}

	dobByID := make(map[uuid.UUID]time.Time, len(cohort))
	ids := make([]uuid.UUID, 0, len(cohort))
	for i := range cohort {
		if cohort[i].DOB == nil {
			continue
		}
		dobByID[cohort[i].ID] = *cohort[i].DOB
		ids = append(ids, cohort[i].ID)
	}

	logs, err := s.weightRepo.ListByCattleIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[int]*bucket)
	for i := range logs {
		dob, ok := dobByID[logs[i].CattleID]
		if !ok {
			continue
		}
		ageDays := logs[i].MeasuredAt.Sub(dob).Hours() / 24
		if ageDays < 0 {
			// Sample predates the recorded birth date; skip it.
			continue
		}
		month := int(math.Floor(ageDays / daysPerMonth))
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		b.sum += logs[i].WeightKg
		b.count++
	}

	months := make([]int, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Ints(months)

	for _, month := range months {
		b := buckets[month]
		stats.GrowthData = append(stats.GrowthData, dto.GrowthPoint{
			AgeMonths: month,
			AvgWeight: round(b.sum/float64(b.count), 1),
			Count:     b.count,
		})
	}

	logger.Stats("growth", "growth curve computed", map[string]interface{}{
		"year":    year,
		"cohort":  len(cohort),
		"buckets": len(months),
	})
	return stats, nil
}

func sumCounts(rows []repositories.ValueCount) int64 {
	var total int64
	for _, row := range rows {
		total += row.Count
	}
	return total
}

func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round(float64(count)/float64(total)*100, 1)
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
