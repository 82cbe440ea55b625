package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/middleware"
	"github.com/influencer-hub/backend/internal/services"
	"go.uber.org/zap"
)

type SupportHandler struct {
	supportService *services.SupportService
	validate       *validator.Validate
	log            *zap.Logger
}

func NewSupportHandler(supportService *services.SupportService, validate *validator.Validate, log *zap.Logger) *SupportHandler {
	return &SupportHandler{supportService: supportService, validate: validate, log: log}
}

// CreateTicket accepts anonymous submissions; a session, when present,
// links the ticket to its user.
func (h *SupportHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateSupportTicketRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}
	ticket, err := h.supportService.Create(c.Context(), middleware.GetActor(c), services.CreateTicketInput{
		Email:       req.Email,
		IssueType:   req.IssueType,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(ticket)
}

func (h *SupportHandler) ListTickets(c *fiber.Ctx) error {
	list, err := h.supportService.List(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}
