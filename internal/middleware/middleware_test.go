package middleware

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/influencer-hub/backend/internal/rbac"
	"github.com/influencer-hub/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthenticator map[string]*services.Actor

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*services.Actor, error) {
	if token == "boom" {
		return nil, errors.New("redis down")
	}
	if a, ok := s[token]; ok {
		return a, nil
	}
	return nil, services.ErrUnauthorized
}

func newTestApp(authn Authenticator, required bool, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Use(SessionMiddleware(authn, "sid", required, zap.NewNop()))
	for _, h := range extra {
		app.Use(h)
	}
	app.Get("/", func(c *fiber.Ctx) error {
		if a := GetActor(c); a != nil {
			return c.SendString(a.Role)
		}
		return c.SendString("anonymous")
	})
	return app
}

func get(t *testing.T, app *fiber.App, cookie string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	if cookie != "" {
		req.Header.Set("Cookie", "sid="+cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestSessionMiddleware(t *testing.T) {
	authn := stubAuthenticator{
		"brand": {UserID: uuid.New(), Role: models.RoleCustomer},
	}

	tests := []struct {
		name     string
		required bool
		cookie   string
		status   int
		body     string
	}{
		{"required with session", true, "brand", 200, models.RoleCustomer},
		{"required without cookie", true, "", 401, `{"error":"Not authenticated"}`},
		{"required with stale cookie", true, "expired", 401, `{"error":"Not authenticated"}`},
		{"optional without cookie", false, "", 200, "anonymous"},
		{"optional with stale cookie", false, "expired", 200, "anonymous"},
		{"optional with session", false, "brand", 200, models.RoleCustomer},
		{"store failure", true, "boom", 500, `{"error":"internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, newTestApp(authn, tt.required), tt.cookie)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	authn := stubAuthenticator{
		"brand":      {UserID: uuid.New(), Role: models.RoleCustomer},
		"influencer": {UserID: uuid.New(), Role: models.RoleInfluencer},
	}
	app := newTestApp(authn, true, RequirePermission(rbac.PermCreateCampaign))

	status, _ := get(t, app, "brand")
	assert.Equal(t, 200, status)

	status, _ = get(t, app, "influencer")
	assert.Equal(t, 403, status)
}

func TestRequestIDIsEchoed(t *testing.T) {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(204) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Header.Get("X-Request-ID"))

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	_, err = uuid.Parse(resp.Header.Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimitMiddleware(nil, 1, 0))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(204) })

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
	}
}
