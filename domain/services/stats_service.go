package services

import (
	"context"

	"cattle-tracker/domain/dto"
)

type StatsService interface {
	Summary(ctx context.Context) (*dto.SummaryStats, error)
	ColorDistribution(ctx context.Context) (*dto.ColorDistribution, error)
	BreedDistribution(ctx context.Context) (*dto.BreedDistribution, error)

	// Growth aggregates weight samples of animals born in the given year into
	// age-in-month buckets. Year must lie in [1900, current year].
	Growth(ctx context.Context, year int) (*dto.GrowthStats, error)
}
