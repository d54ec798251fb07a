package handler

import (
	"mentormatch/internal/database"
	"mentormatch/internal/infrastructure/cache"
	"mentormatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

// Health reports per-dependency status. The service is considered up as long
// as the database answers; the cache is optional.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	dbStatus := "ok"
	status := fiber.StatusOK
	if h.db == nil || h.db.Ping(c.Context()) != nil {
		dbStatus = "down"
		status = fiber.StatusServiceUnavailable
	}

	cacheStatus := "ok"
	if h.redis == nil || h.redis.Ping(c.Context()) != nil {
		cacheStatus = "down"
	}

	data := fiber.Map{
		"database": dbStatus,
		"cache":    cacheStatus,
	}
	if status != fiber.StatusOK {
		return response.Error(c, status, "service degraded", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
