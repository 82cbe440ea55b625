package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/middleware"
	"github.com/influencer-hub/backend/internal/services"
	"go.uber.org/zap"
)

type MessageHandler struct {
	messageService *services.MessageService
	validate       *validator.Validate
	log            *zap.Logger
}

func NewMessageHandler(messageService *services.MessageService, validate *validator.Validate, log *zap.Logger) *MessageHandler {
	return &MessageHandler{messageService: messageService, validate: validate, log: log}
}

func (h *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}
	m, err := h.messageService.Send(c.Context(), *middleware.GetActor(c), req.Subject, req.Content)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(m)
}

func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	list, err := h.messageService.List(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

func (h *MessageHandler) ListBySender(c *fiber.Ctx) error {
	senderID, ok, err := uuidParam(c, "senderId")
	if !ok {
		return err
	}
	list, err := h.messageService.ListBySender(c.Context(), senderID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// MyMessages is the signed-in user's own inbox thread.
func (h *MessageHandler) MyMessages(c *fiber.Ctx) error {
	list, err := h.messageService.ListBySender(c.Context(), middleware.GetActor(c).UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

func (h *MessageHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	var req dto.UpdateStatusRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}
	m, err := h.messageService.UpdateStatus(c.Context(), *middleware.GetActor(c), id, req.Status)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(m)
}
