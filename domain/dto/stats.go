package dto

type SummaryTotals struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Archived int64 `json:"archived"`
}

type SummaryBySex struct {
	Cow    int64 `json:"cow"`
	Bull   int64 `json:"bull"`
	Steer  int64 `json:"steer"`
	Heifer int64 `json:"heifer"`
	Calf   int64 `json:"calf"`
}

// SummaryStats aggregates herd-wide counts; bySex covers active animals only
// and avgAge is the mean age in years of active animals with a known DOB.
type SummaryStats struct {
	Totals SummaryTotals `json:"totals"`
	BySex  SummaryBySex  `json:"bySex"`
	AvgAge float64       `json:"avgAge"`
}

type ColorCount struct {
	Color      string  `json:"color"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ColorDistribution struct {
	Total        int64        `json:"total"`
	Distribution []ColorCount `json:"distribution"`
}

type BreedCount struct {
	Breed      string  `json:"breed"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type BreedDistribution struct {
	Total        int64        `json:"total"`
	Distribution []BreedCount `json:"distribution"`
}

type GrowthPoint struct {
	AgeMonths int     `json:"age_months"`
	AvgWeight float64 `json:"avg_weight"`
	Count     int     `json:"count"`
}

type GrowthStats struct {
	Year        int           `json:"year"`
	CattleCount int64         `json:"cattleCount"`
	GrowthData  []GrowthPoint `json:"growthData"`
}
