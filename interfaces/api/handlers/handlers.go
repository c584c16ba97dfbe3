package handlers

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cattle-tracker/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService      services.AuthService
	CattleService    services.CattleService
	WeightLogService services.WeightLogService
	PhotoService     services.PhotoService
	StatsService     services.StatsService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth   *AuthHandler
	Cattle *CattleHandler
	Weight *WeightHandler
	Photo  *PhotoHandler
	Stats  *StatsHandler
	Health *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services, db *gorm.DB, redisClient *goredis.Client) *Handlers {
	return &Handlers{
		Auth:   NewAuthHandler(services.AuthService),
		Cattle: NewCattleHandler(services.CattleService),
		Weight: NewWeightHandler(services.WeightLogService),
		Photo:  NewPhotoHandler(services.PhotoService),
		Stats:  NewStatsHandler(services.StatsService),
		Health: NewHealthHandler(db, redisClient),
	}
}
