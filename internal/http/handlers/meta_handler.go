package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/influencer-hub/backend/internal/http/dto"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Categories offered on the influencer registration form. Profiles may still
// carry any free-text category.
var predefinedCategories = []dto.Option{
	{ID: "fashion", Label: "Fashion"},
	{ID: "beauty", Label: "Beauty"},
	{ID: "tech", Label: "Technology"},
	{ID: "gaming", Label: "Gaming"},
	{ID: "fitness", Label: "Health & Fitness"},
	{ID: "food", Label: "Food & Cooking"},
	{ID: "travel", Label: "Travel"},
	{ID: "lifestyle", Label: "Lifestyle"},
	{ID: "music", Label: "Music"},
	{ID: "education", Label: "Education"},
	{ID: "finance", Label: "Finance"},
	{ID: "entertainment", Label: "Entertainment"},
	{ID: "sports", Label: "Sports"},
	{ID: "art", Label: "Art & Design"},
	{ID: "other", Label: "Other"},
}

var predefinedPlatforms = []dto.Option{
	{ID: "instagram", Label: "Instagram"},
	{ID: "youtube", Label: "YouTube"},
	{ID: "tiktok", Label: "TikTok"},
	{ID: "twitter", Label: "X (Twitter)"},
	{ID: "twitch", Label: "Twitch"},
	{ID: "facebook", Label: "Facebook"},
	{ID: "linkedin", Label: "LinkedIn"},
	{ID: "telegram", Label: "Telegram"},
	{ID: "blog", Label: "Blog"},
	{ID: "other", Label: "Other"},
}

func (h *MetaHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(predefinedCategories)
}

func (h *MetaHandler) GetPlatforms(c *fiber.Ctx) error {
	return c.JSON(predefinedPlatforms)
}
