// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"log"
	"os"
	"time"

	"lpaflow/internal/config"
	"lpaflow/internal/models"
	"lpaflow/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB
var CacheService *cache.CacheService

// DBConfig holds database connection pool configuration
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var dbConfig = DBConfig{
	MaxIdleConns:    10,
	MaxOpenConns:    100,
	ConnMaxLifetime: time.Hour,
	ConnMaxIdleTime: time.Minute * 30,
}

// InitDB initializes the database connection.
// It sets up the connection pool, performs migrations,
// and configures the database with proper settings.
func InitDB() error {
	initPostgres()

	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	redisClient := cache.NewRedisClient(redisCfg)
	CacheService = cache.NewCacheService(redisClient, 24*time.Hour)

	return DB.AutoMigrate(
		&models.Lead{},
		&models.Application{},
		&models.Donor{},
		&models.LpaDocument{},
		&models.Attorney{},
		&models.LpaDocumentAttorney{},
		&models.LpaDocumentApplicant{},
		&models.PersonToNotify{},
		&models.CertificateProvider{},
		&models.BenefitsAssessment{},
		&models.Payment{},
	)
}

func initPostgres() {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "lpaflow") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}

	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(dbConfig.ConnMaxIdleTime)

	// Configure GORM logger to ignore "record not found" errors. Production
	// only logs slow queries and errors; development logs every statement.
	logLevel := logger.Info
	if config.IsProduction() {
		logLevel = logger.Warn
	}
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !config.IsProduction(),
		},
	)
	db.Logger = newLogger

	log.Println("PostgreSQL connected & migrations applied")
}
