package handler

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/arben-grepi/Clutch3-sub000/internal/middleware"
	"github.com/arben-grepi/Clutch3-sub000/internal/service"
)

type StatsHandler struct {
	svc   *service.UserService
	cache *service.CacheService
}

func NewStatsHandler(svc *service.UserService, cache *service.CacheService) *StatsHandler {
	return &StatsHandler{svc: svc, cache: cache}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	if h.cache != nil {
		if data, err := h.cache.GetGlobalStats(c.Context()); err == nil && data != nil {
			Metrics.CacheHits.Inc()
			c.Set("Content-Type", "application/json")
			return c.Send(data)
		}
		Metrics.CacheMisses.Inc()
	}

	stats, err := h.svc.GetStats(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch statistics")
	}

	if h.cache != nil {
		if err := h.cache.SetGlobalStats(c.Context(), stats); err != nil {
			log.Printf("cache: set stats error: %v", err)
		}
	}

	return c.JSON(stats)
}
