package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/middleware"
	"github.com/influencer-hub/backend/internal/services"
	"go.uber.org/zap"
)

type CampaignRequestHandler struct {
	requestService *services.CampaignRequestService
	validate       *validator.Validate
	log            *zap.Logger
}

func NewCampaignRequestHandler(requestService *services.CampaignRequestService, validate *validator.Validate, log *zap.Logger) *CampaignRequestHandler {
	return &CampaignRequestHandler{requestService: requestService, validate: validate, log: log}
}

func (h *CampaignRequestHandler) CreateRequest(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequestRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	cr, err := h.requestService.Create(c.Context(), *middleware.GetActor(c), services.CreateRequestInput{
		CampaignID:   uuid.MustParse(req.CampaignID),
		InfluencerID: uuid.MustParse(req.InfluencerID),
		Budget:       req.Budget,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(cr)
}

func (h *CampaignRequestHandler) ListByInfluencer(c *fiber.Ctx) error {
	influencerID, ok, err := uuidParam(c, "influencerId")
	if !ok {
		return err
	}
	list, err := h.requestService.ListByInfluencer(c.Context(), influencerID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

func (h *CampaignRequestHandler) ListByCampaign(c *fiber.Ctx) error {
	campaignID, ok, err := uuidParam(c, "campaignId")
	if !ok {
		return err
	}
	list, err := h.requestService.ListByCampaign(c.Context(), campaignID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

func (h *CampaignRequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	var req dto.UpdateStatusRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	cr, err := h.requestService.UpdateStatus(c.Context(), *middleware.GetActor(c), id, req.Status)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(cr)
}

func (h *CampaignRequestHandler) History(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	entries, err := h.requestService.History(c.Context(), *middleware.GetActor(c), id,
		c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(entries)
}
