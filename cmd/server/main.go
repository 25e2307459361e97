// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"time"

	"lpaflow/internal/config"
	"lpaflow/internal/repositories"
	"lpaflow/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	// Initialize databases (PostgreSQL + Redis)
	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	maxIdleConns := config.GetIntEnv("DB_MAX_IDLE_CONNS", 10)
	maxOpenConns := config.GetIntEnv("DB_MAX_OPEN_CONNS", 100)
	connMaxLifetime, _ := time.ParseDuration(config.GetEnv("DB_CONN_MAX_LIFETIME", "1h"))
	connMaxIdleTime, _ := time.ParseDuration(config.GetEnv("DB_CONN_MAX_IDLE_TIME", "30m"))

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database with connection pooling")

	// Stale quotes from a previous run are worthless, start clean.
	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("Failed to flush Redis cache: %v", err)
		}
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Stripe-Signature",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/register", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, repositories.DB, cfg)

	log.Fatal(app.Listen(":" + cfg.Port))
}
