package di

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cattle-tracker/application/serviceimpl"
	"cattle-tracker/domain/repositories"
	"cattle-tracker/domain/services"
	"cattle-tracker/infrastructure/imaging"
	"cattle-tracker/infrastructure/postgres"
	"cattle-tracker/infrastructure/redis"
	"cattle-tracker/infrastructure/storage"
	"cattle-tracker/interfaces/api/handlers"
	"cattle-tracker/pkg/config"
	"cattle-tracker/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *goredis.Client
	MediaStore  *storage.LocalStorage
	Processor   *imaging.Processor

	// Repositories
	UserRepository      repositories.UserRepository
	CattleRepository    repositories.CattleRepository
	WeightLogRepository repositories.WeightLogRepository
	PhotoRepository     repositories.PhotoRepository
	TokenBlacklist      repositories.TokenBlacklist

	// Services
	AuthService      services.AuthService
	CattleService    services.CattleService
	WeightLogService services.WeightLogService
	PhotoService     services.PhotoService
	StatsService     services.StatsService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}
	if err := c.initInfrastructure(); err != nil {
		return err
	}
	if err := c.initRepositories(); err != nil {
		return err
	}
	if err := c.initServices(); err != nil {
		return err
	}
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", nil)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Startup("db_connected", "Database connected", nil)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Startup("db_migrated", "Database migrated", nil)

	redisClient, err := redis.NewClient(redis.Config{
		Host:     c.Config.Redis.Host,
		Port:     c.Config.Redis.Port,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if err != nil {
		return err
	}
	c.RedisClient = redisClient
	logger.Startup("redis_connected", "Redis connected", nil)

	media, err := storage.NewLocalStorage(c.Config.Media.Root)
	if err != nil {
		return err
	}
	c.MediaStore = media
	c.Processor = imaging.NewProcessor()
	logger.Startup("media_initialized", "Media storage initialized", map[string]interface{}{"root": c.Config.Media.Root})

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.CattleRepository = postgres.NewCattleRepository(c.DB)
	c.WeightLogRepository = postgres.NewWeightLogRepository(c.DB)
	c.PhotoRepository = postgres.NewPhotoRepository(c.DB)
	c.TokenBlacklist = redis.NewTokenBlacklist(c.RedisClient)
	logger.Startup("repositories_initialized", "Repositories initialized", nil)
	return nil
}

func (c *Container) initServices() error {
	accessTTL := time.Duration(c.Config.JWT.AccessTTLMinutes) * time.Minute
	refreshTTL := time.Duration(c.Config.JWT.RefreshTTLHours) * time.Hour

	c.AuthService = serviceimpl.NewAuthService(c.UserRepository, c.TokenBlacklist, c.Config.JWT.Secret, accessTTL, refreshTTL)
	c.CattleService = serviceimpl.NewCattleService(c.CattleRepository, c.WeightLogRepository)
	c.WeightLogService = serviceimpl.NewWeightLogService(c.CattleRepository, c.WeightLogRepository)
	c.PhotoService = serviceimpl.NewPhotoService(c.PhotoRepository, c.CattleRepository, c.Processor, c.MediaStore, c.Config.Media.MaxUploadSizeMB)
	c.StatsService = serviceimpl.NewStatsService(c.CattleRepository, c.WeightLogRepository)
	logger.Startup("services_initialized", "Services initialized", nil)
	return nil
}

func (c *Container) Cleanup() error {
	logger.Startup("cleanup_started", "Starting cleanup...", nil)

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.StartupWarn("redis_close_failed", "Failed to close Redis connection", map[string]interface{}{"error": err.Error()})
		} else {
			logger.Startup("redis_closed", "Redis connection closed", nil)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.StartupWarn("db_close_failed", "Failed to close database connection", map[string]interface{}{"error": err.Error()})
			} else {
				logger.Startup("db_closed", "Database connection closed", nil)
			}
		}
	}

	logger.Startup("cleanup_completed", "Cleanup completed", nil)
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:      c.AuthService,
		CattleService:    c.CattleService,
		WeightLogService: c.WeightLogService,
		PhotoService:     c.PhotoService,
		StatsService:     c.StatsService,
	}
}
