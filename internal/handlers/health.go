package handlers

import (
	"lpaflow/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports service liveness plus cache reachability.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	cacheStatus := "ok"
	if repositories.CacheService == nil || repositories.CacheService.HealthCheck(c.Context()) != nil {
		cacheStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"cache":  cacheStatus,
	})
}
