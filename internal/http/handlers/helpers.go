package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/middleware"
	"github.com/influencer-hub/backend/internal/services"
	"go.uber.org/zap"
)

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// respondError maps service errors to HTTP statuses. Anything that is not a
// known kind is logged and hidden behind a generic 500.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var status int
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrConflict):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	default:
		reqID, _ := c.Locals(middleware.CtxRequestID).(string)
		log.Error("request failed",
			zap.String("request_id", reqID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return errorJSON(c, fiber.StatusInternalServerError, "internal server error")
	}
	return errorJSON(c, status, err.Error())
}

// bind parses the JSON body into req and validates it. On failure the 400
// response has already been written and the returned error is what the
// handler should return.
func bind(c *fiber.Ctx, v *validator.Validate, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := v.Struct(req); err != nil {
		return false, errorJSON(c, fiber.StatusBadRequest, dto.ValidationMessage(err))
	}
	return true, nil
}

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, false, errorJSON(c, fiber.StatusBadRequest, "invalid "+name)
	}
	return id, true, nil
}
