package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/arben-grepi/Clutch3-sub000/internal/middleware"
	"github.com/arben-grepi/Clutch3-sub000/internal/model"
	"github.com/arben-grepi/Clutch3-sub000/internal/service"
)

type ReviewHandler struct {
	reviews  *service.ReviewService
	outcomes *service.OutcomeService
}

func NewReviewHandler(reviews *service.ReviewService, outcomes *service.OutcomeService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, outcomes: outcomes}
}

// Next handles GET /api/reviews/next?country=XX&userId=YY
func (h *ReviewHandler) Next(c fiber.Ctx) error {
	country, errMsg := middleware.ValidateCountry(fiber.Query[string](c, "country"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	userID, errMsg := middleware.ValidateUserID(fiber.Query[string](c, "userId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	candidate, err := h.reviews.FindCandidate(c.Context(), country, userID)
	if err != nil {
		if errors.Is(err, model.ErrNoCandidate) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NO_CANDIDATE", "No reviews available")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to find review candidate")
	}

	return c.JSON(candidate)
}

// Claim handles POST /api/reviews/claim
func (h *ReviewHandler) Claim(c fiber.Ctx) error {
	var req model.ClaimRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	videoID, errMsg := middleware.ValidateVideoID(req.VideoID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	userID, errMsg := middleware.ValidateUserID(req.UserID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	err := h.reviews.Claim(c.Context(), videoID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrClaimConflict):
			Metrics.ClaimConflictsTotal.Inc()
			return middleware.ErrorResponse(c, fiber.StatusConflict, "CLAIM_CONFLICT",
				"Review already claimed by another user")
		case errors.Is(err, model.ErrSelfReview):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "SELF_REVIEW",
				"Cannot review your own video")
		case errors.Is(err, model.ErrVideoNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Pending review not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to claim review")
	}

	Metrics.ClaimsTotal.Inc()
	return c.JSON(fiber.Map{"success": true, "videoId": videoID})
}

// Release handles POST /api/reviews/release
func (h *ReviewHandler) Release(c fiber.Ctx) error {
	var req model.ReleaseRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	videoID, errMsg := middleware.ValidateVideoID(req.VideoID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	userID, errMsg := middleware.ValidateUserID(req.UserID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	// Idempotent: releasing a claim we no longer hold is not an error.
	released, err := h.reviews.Release(c.Context(), videoID, userID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to release review")
	}

	return c.JSON(fiber.Map{"success": true, "released": released})
}

// Outcome handles POST /api/reviews/outcome
func (h *ReviewHandler) Outcome(c fiber.Ctx) error {
	var req model.OutcomeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	videoID, errMsg := middleware.ValidateVideoID(req.VideoID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.VideoID = videoID

	userID, errMsg := middleware.ValidateUserID(req.UserID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.UserID = userID

	if errMsg := middleware.ValidateShots(req.ReviewerShots); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Reason = middleware.ValidateReason(req.Reason)

	// A nil count asserts a rule violation and needs a stated reason.
	if req.ReviewerShots == nil && req.Reason == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS",
			"reason is required when reviewerShots is omitted")
	}

	result, err := h.outcomes.Submit(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrVideoNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		case errors.Is(err, model.ErrNotClaimant):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "NOT_CLAIMANT",
				"Review is not claimed by this user")
		case errors.Is(err, model.ErrSelfReview):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "SELF_REVIEW",
				"Cannot review your own video")
		case errors.Is(err, model.ErrInvalidState):
			return middleware.ErrorResponse(c, fiber.StatusConflict, "INVALID_STATE",
				"Video is not pending review")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit outcome")
	}

	if result.Disputed {
		Metrics.OutcomesTotal.WithLabelValues("disputed").Inc()
	} else {
		Metrics.OutcomesTotal.WithLabelValues("verified").Inc()
	}

	return c.JSON(result)
}
