package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/influencer-hub/backend/internal/config"
	"github.com/influencer-hub/backend/internal/db"
	"github.com/influencer-hub/backend/internal/events"
	apphttp "github.com/influencer-hub/backend/internal/http"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/http/handlers"
	"github.com/influencer-hub/backend/internal/repositories"
	"github.com/influencer-hub/backend/internal/services"
	"github.com/influencer-hub/backend/internal/sessions"
	"github.com/influencer-hub/backend/migrations"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	influencerRepo := repositories.NewInfluencerRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	requestRepo := repositories.NewCampaignRequestRepo(pool)
	messageRepo := repositories.NewMessageRepo(pool)
	ticketRepo := repositories.NewSupportTicketRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)
	notificationCache := repositories.NewNotificationCache(rdb, cfg.NotificationPollInterval)
	sessionStore := sessions.NewRedisStore(rdb, cfg.SessionTTL)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	policy := services.Policy{PermissiveStatusUpdates: cfg.PermissiveStatusUpdates}
	authService := services.NewAuthService(userRepo, sessionStore, cfg.IsAdmin, log)
	influencerService := services.NewInfluencerService(influencerRepo, log)
	campaignService := services.NewCampaignService(campaignRepo, auditRepo, log)
	requestService := services.NewCampaignRequestService(requestRepo, campaignRepo, userRepo, auditRepo, publisher, policy, log)
	messageService := services.NewMessageService(messageRepo, auditRepo, policy, log)
	supportService := services.NewSupportService(ticketRepo, log)
	notificationService := services.NewNotificationService(requestRepo, notificationCache, cfg.NotificationPreviewLimit, log)

	// Cached summaries are dropped when their requests change
	if err := notificationService.Start(ctx, subscriber); err != nil {
		log.Fatal("failed to subscribe to campaign request events", zap.Error(err))
	}

	// Handlers
	validate := dto.NewValidator()
	h := apphttp.Handlers{
		Auth:            handlers.NewAuthHandler(authService, validate, cfg, log),
		Influencer:      handlers.NewInfluencerHandler(influencerService, validate, log),
		Campaign:        handlers.NewCampaignHandler(campaignService, validate, log),
		CampaignRequest: handlers.NewCampaignRequestHandler(requestService, validate, log),
		Message:         handlers.NewMessageHandler(messageService, validate, log),
		Support:         handlers.NewSupportHandler(supportService, validate, log),
		Notification:    handlers.NewNotificationHandler(notificationService, log),
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "influencer-hub",
		BodyLimit:    1 << 20,
		ErrorHandler: apphttp.ErrorHandler(log),
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authService, h)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server",
		zap.String("addr", addr),
		zap.Bool("permissive_status_updates", cfg.PermissiveStatusUpdates),
	)
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
