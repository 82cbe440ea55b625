package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/influencer-hub/backend/internal/config"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/middleware"
	"github.com/influencer-hub/backend/internal/services"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthHandler(authService *services.AuthService, validate *validator.Validate, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, validate: validate, cfg: cfg, log: log}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HTTPOnly: true,
		Secure:   h.cfg.SessionCookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	user, token, err := h.authService.Register(c.Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		Category: req.Category,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}

	h.setSessionCookie(c, token)
	return c.JSON(user.Summary())
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	user, token, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}

	h.setSessionCookie(c, token)
	return c.JSON(user.Summary())
}

// Logout always clears the cookie, even when the session is already gone.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Context(), c.Cookies(h.cfg.SessionCookieName)); err != nil {
		return respondError(c, h.log, err)
	}
	c.ClearCookie(h.cfg.SessionCookieName)
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor := middleware.GetActor(c)
	user, err := h.authService.Me(c.Context(), actor.UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(user.Summary())
}
