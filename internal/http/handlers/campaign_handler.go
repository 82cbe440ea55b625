package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/middleware"
	"github.com/influencer-hub/backend/internal/services"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	validate        *validator.Validate
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, validate *validator.Validate, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, validate: validate, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	campaign, err := h.campaignService.Create(c.Context(), *middleware.GetActor(c), services.CreateCampaignInput{
		ProductName:    req.ProductName,
		ProductDesc:    req.ProductDesc,
		TargetAudience: req.TargetAudience,
		Platform:       req.Platform,
		Status:         req.Status,
		Budget:         req.Budget,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(campaign)
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	campaign, err := h.campaignService.Get(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(campaign)
}

func (h *CampaignHandler) ListByBrand(c *fiber.Ctx) error {
	brandID, ok, err := uuidParam(c, "brandId")
	if !ok {
		return err
	}
	campaigns, err := h.campaignService.ListByBrand(c.Context(), brandID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(campaigns)
}

func (h *CampaignHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	var req dto.UpdateStatusRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	campaign, err := h.campaignService.UpdateStatus(c.Context(), *middleware.GetActor(c), id, req.Status)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(campaign)
}
