package http

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/influencer-hub/backend/internal/config"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/http/handlers"
	"github.com/influencer-hub/backend/internal/middleware"
	"github.com/influencer-hub/backend/internal/rbac"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth            *handlers.AuthHandler
	Influencer      *handlers.InfluencerHandler
	Campaign        *handlers.CampaignHandler
	CampaignRequest *handlers.CampaignRequestHandler
	Message         *handlers.MessageHandler
	Support         *handlers.SupportHandler
	Notification    *handlers.NotificationHandler
}

// ErrorHandler renders errors that escape handlers (unknown routes, body
// limits, panics turned into errors) as {error} bodies.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
		}
		log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
}

// SetupRouter mounts the REST API under /api. rdb may be nil, which turns
// rate limiting off.
func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authn middleware.Authenticator,
	h Handlers,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	requireSession := middleware.SessionMiddleware(authn, cfg.SessionCookieName, true, log)
	optionalSession := middleware.SessionMiddleware(authn, cfg.SessionCookieName, false, log)
	rateLimit := middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute)

	api := app.Group("/api")

	// Auth
	api.Post("/auth/register", rateLimit, h.Auth.Register)
	api.Post("/auth/login", rateLimit, h.Auth.Login)
	api.Post("/auth/logout", h.Auth.Logout)
	api.Get("/auth/me", requireSession, h.Auth.Me)

	// Meta (public)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/categories", metaHandler.GetCategories)
	api.Get("/meta/platforms", metaHandler.GetPlatforms)

	// Influencers
	api.Get("/influencers", h.Influencer.ListInfluencers)
	api.Get("/influencers/:userId", h.Influencer.GetInfluencer)
	api.Post("/influencers", requireSession,
		middleware.RequirePermission(rbac.PermCreateInfluencerProfile), h.Influencer.CreateInfluencer)

	// Campaigns
	api.Post("/campaigns", requireSession,
		middleware.RequirePermission(rbac.PermCreateCampaign), h.Campaign.CreateCampaign)
	api.Get("/campaigns/brand/:brandId", h.Campaign.ListByBrand)
	api.Get("/campaigns/:id", h.Campaign.GetCampaign)
	api.Patch("/campaigns/:id/status", requireSession, h.Campaign.UpdateStatus)

	// Campaign requests
	api.Post("/campaign-requests", requireSession,
		middleware.RequirePermission(rbac.PermSendCampaignRequest), h.CampaignRequest.CreateRequest)
	api.Get("/campaign-requests/influencer/:influencerId", h.CampaignRequest.ListByInfluencer)
	api.Get("/campaign-requests/campaign/:campaignId", h.CampaignRequest.ListByCampaign)
	api.Patch("/campaign-requests/:id/status", requireSession, h.CampaignRequest.UpdateStatus)
	api.Get("/campaign-requests/:id/history", requireSession, h.CampaignRequest.History)

	// Messages (admin inbox)
	api.Post("/messages", requireSession,
		middleware.RequirePermission(rbac.PermContactAdmin), h.Message.CreateMessage)
	api.Get("/messages", h.Message.ListMessages)
	api.Get("/messages/me", requireSession, h.Message.MyMessages)
	api.Get("/messages/user/:senderId", h.Message.ListBySender)
	api.Patch("/messages/:id/status", requireSession, h.Message.UpdateStatus)

	// Support tickets
	api.Post("/support-tickets", optionalSession, h.Support.CreateTicket)
	api.Get("/support-tickets", h.Support.ListTickets)

	// Notifications
	api.Get("/notifications", requireSession,
		middleware.RequirePermission(rbac.PermViewNotifications), h.Notification.GetSummary)

	api.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	})

	// Single page app
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
		index := filepath.Join(cfg.StaticDir, "index.html")
		app.Get("/*", func(c *fiber.Ctx) error {
			if strings.HasPrefix(c.Path(), "/api/") {
				return fiber.ErrNotFound
			}
			return c.SendFile(index)
		})
	}
}
