package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/arben-grepi/Clutch3-sub000/internal/config"
	"github.com/arben-grepi/Clutch3-sub000/internal/db"
	"github.com/arben-grepi/Clutch3-sub000/internal/handler"
	"github.com/arben-grepi/Clutch3-sub000/internal/middleware"
	"github.com/arben-grepi/Clutch3-sub000/internal/repository"
	"github.com/arben-grepi/Clutch3-sub000/internal/router"
	"github.com/arben-grepi/Clutch3-sub000/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "clutch3-review")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(pool)

	videoRepo := repository.NewVideoRepo(pool)
	reviewRepo := repository.NewReviewRepo(pool)
	disputeRepo := repository.NewDisputeRepo(pool)
	userRepo := repository.NewUserRepo(pool)

	statsSvc := service.NewStatsService(pool)
	videoSvc := service.NewVideoService(videoRepo, cache)
	reviewSvc := service.NewReviewService(reviewRepo, userRepo, cfg.ClaimLeaseTTL)
	outcomeSvc := service.NewOutcomeService(reviewRepo, cache)
	arbitrationSvc := service.NewArbitrationService(pool, statsSvc)
	userSvc := service.NewUserService(userRepo)

	// Background workers: async rolling-stat recompute and the expired
	// claim sweep that keeps abandoned reviews from blocking the pool.
	statsWorker := service.NewStatsWorker(pool, statsSvc, cache)
	go statsWorker.Start(ctx)

	leaseInterval := min(cfg.ClaimLeaseTTL/4, time.Hour)
	leaseWorker := service.NewLeaseWorker(reviewRepo, cfg.ClaimLeaseTTL, leaseInterval)
	go leaseWorker.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "Clutch3 Review API",
		ServerHeader: "Clutch3",
	})

	router.Setup(app, &router.Handlers{
		Video:   handler.NewVideoHandler(videoSvc),
		Review:  handler.NewReviewHandler(reviewSvc, outcomeSvc),
		Dispute: handler.NewDisputeHandler(disputeRepo, arbitrationSvc, cache),
		User:    handler.NewUserHandler(userSvc, cache),
		Stats:   handler.NewStatsHandler(userSvc, cache),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins, cfg.AdminToken)

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("Clutch3 review backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
