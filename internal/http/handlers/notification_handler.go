package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/influencer-hub/backend/internal/middleware"
	"github.com/influencer-hub/backend/internal/services"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
	log                 *zap.Logger
}

func NewNotificationHandler(notificationService *services.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, log: log}
}

func (h *NotificationHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.notificationService.Summary(c.Context(), middleware.GetActor(c).UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}
