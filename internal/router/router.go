package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/arben-grepi/Clutch3-sub000/internal/handler"
	"github.com/arben-grepi/Clutch3-sub000/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Video   *handler.VideoHandler
	Review  *handler.ReviewHandler
	Dispute *handler.DisputeHandler
	User    *handler.UserHandler
	Stats   *handler.StatsHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins, adminToken string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Upload pipeline
	upload := middleware.NewUploadRateLimiter().Handler()
	api.Post("/videos", h.Video.Create, upload)
	api.Post("/videos/:videoId/upload", h.Video.StartUpload, upload)
	api.Post("/videos/:videoId/complete", h.Video.Complete, upload)
	api.Post("/videos/:videoId/error", h.Video.MarkErrored, upload)
	api.Get("/videos/:videoId", h.Video.Get)

	// Peer review
	api.Get("/reviews/next", h.Review.Next, middleware.NewCandidateRateLimiter().Handler())
	claim := middleware.NewClaimRateLimiter().Handler()
	api.Post("/reviews/claim", h.Review.Claim, claim)
	api.Post("/reviews/release", h.Review.Release, claim)
	api.Post("/reviews/outcome", h.Review.Outcome, middleware.NewOutcomeRateLimiter().Handler())

	// Users and platform stats
	api.Get("/users/:userId", h.User.GetByUserID)
	api.Get("/stats", h.Stats.GetStats, middleware.NewStatsRateLimiter().Handler())

	// Admin arbitration surface
	admin := api.Group("/disputes",
		middleware.NewAdminGate(adminToken),
		middleware.NewAdminRateLimiter().Handler())
	admin.Get("/", h.Dispute.List)
	admin.Get("/:videoId", h.Dispute.Get)
	admin.Post("/:videoId/arbitrate", h.Dispute.Arbitrate)
}
