package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/arben-grepi/Clutch3-sub000/internal/middleware"
	"github.com/arben-grepi/Clutch3-sub000/internal/service"
)

type UserHandler struct {
	svc   *service.UserService
	cache *service.CacheService
}

func NewUserHandler(svc *service.UserService, cache *service.CacheService) *UserHandler {
	return &UserHandler{svc: svc, cache: cache}
}

// GetByUserID handles GET /api/users/:userId
func (h *UserHandler) GetByUserID(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateUserID(c.Params("userId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if h.cache != nil {
		if data, err := h.cache.GetUser(c.Context(), userID); err == nil && data != nil {
			Metrics.CacheHits.Inc()
			c.Set("Content-Type", "application/json")
			return c.Send(data)
		}
		Metrics.CacheMisses.Inc()
	}

	user, err := h.svc.Lookup(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to lookup user")
	}

	if h.cache != nil {
		if err := h.cache.SetUser(c.Context(), userID, user); err != nil {
			log.Printf("cache: set user error: %v", err)
		}
	}

	return c.JSON(user)
}
