package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/arben-grepi/Clutch3-sub000/internal/middleware"
	"github.com/arben-grepi/Clutch3-sub000/internal/model"
	"github.com/arben-grepi/Clutch3-sub000/internal/repository"
	"github.com/arben-grepi/Clutch3-sub000/internal/service"
)

// DisputeHandler serves the admin arbitration surface.
type DisputeHandler struct {
	disputes    *repository.DisputeRepo
	arbitration *service.ArbitrationService
	cache       *service.CacheService
}

func NewDisputeHandler(disputes *repository.DisputeRepo, arbitration *service.ArbitrationService, cache *service.CacheService) *DisputeHandler {
	return &DisputeHandler{disputes: disputes, arbitration: arbitration, cache: cache}
}

// List handles GET /api/disputes
func (h *DisputeHandler) List(c fiber.Ctx) error {
	disputes, err := h.disputes.ListOpen(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list disputes")
	}
	if disputes == nil {
		disputes = []model.Dispute{}
	}
	return c.JSON(disputes)
}

// Get handles GET /api/disputes/:videoId
func (h *DisputeHandler) Get(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	dispute, err := h.disputes.FindByVideoID(c.Context(), videoID)
	if err != nil {
		if errors.Is(err, model.ErrVideoNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Dispute not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to lookup dispute")
	}

	return c.JSON(dispute)
}

// Arbitrate handles POST /api/disputes/:videoId/arbitrate
func (h *DisputeHandler) Arbitrate(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.ArbitrateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if errMsg := middleware.ValidateShots(req.AdminShots); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	result, err := h.arbitration.Arbitrate(c.Context(), videoID, req.AdminShots)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrVideoNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Dispute not found")
		case errors.Is(err, model.ErrArbitrationInconsistency):
			return middleware.ErrorResponse(c, fiber.StatusConflict, "INVALID_STATE",
				"Video is no longer in a disputable state")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to arbitrate dispute")
	}

	if result.Discarded {
		Metrics.ArbitrationsTotal.WithLabelValues("discard").Inc()
	} else {
		Metrics.ArbitrationsTotal.WithLabelValues("count").Inc()
	}

	// Counters moved for up to two users; drop their cached responses.
	if h.cache != nil {
		_ = h.cache.InvalidateUser(c.Context(), result.OwnerID)
		_ = h.cache.InvalidateUser(c.Context(), result.ReviewerID)
		_ = h.cache.InvalidateGlobalStats(c.Context())
	}

	return c.JSON(result)
}
