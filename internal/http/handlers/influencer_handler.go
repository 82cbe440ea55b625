package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/middleware"
	"github.com/influencer-hub/backend/internal/repositories"
	"github.com/influencer-hub/backend/internal/services"
	"github.com/influencer-hub/backend/internal/textparse"
	"go.uber.org/zap"
)

type InfluencerHandler struct {
	influencerService *services.InfluencerService
	validate          *validator.Validate
	log               *zap.Logger
}

func NewInfluencerHandler(influencerService *services.InfluencerService, validate *validator.Validate, log *zap.Logger) *InfluencerHandler {
	return &InfluencerHandler{influencerService: influencerService, validate: validate, log: log}
}

// ListInfluencers supports ?category=&q=&platform=&minFollowers=&limit=&offset=.
// minFollowers accepts the same shorthand as profiles ("10K").
func (h *InfluencerHandler) ListInfluencers(c *fiber.Ctx) error {
	f := repositories.InfluencerFilter{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}
	if v := c.Query("category"); v != "" {
		f.Category = &v
	}
	if v := c.Query("q"); v != "" {
		f.Query = &v
	}
	if v := c.Query("platform"); v != "" {
		f.Platform = &v
	}
	if v := c.Query("minFollowers"); v != "" {
		n := textparse.ParseCount(v)
		f.MinFollowers = &n
	}

	list, err := h.influencerService.List(c.Context(), f)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

func (h *InfluencerHandler) GetInfluencer(c *fiber.Ctx) error {
	userID, ok, err := uuidParam(c, "userId")
	if !ok {
		return err
	}
	p, err := h.influencerService.Get(c.Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(p)
}

func (h *InfluencerHandler) CreateInfluencer(c *fiber.Ctx) error {
	var req dto.CreateInfluencerRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	inf, err := h.influencerService.Create(c.Context(), *middleware.GetActor(c), services.CreateInfluencerInput{
		Category:  req.Category,
		Followers: req.Followers,
		Bio:       req.Bio,
		Platforms: req.Platforms,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(inf)
}
