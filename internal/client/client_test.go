package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAPI answers a handful of endpoints with a session cookie check.
type fakeAPI struct {
	mu        sync.Mutex
	user      models.UserSummary
	requests  []models.CampaignRequestWithCampaign
	campaigns []dto.CreateCampaignRequest
	polls     int
	loggedOut bool
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) signedIn(w http.ResponseWriter, r *http.Request) bool {
	if c, err := r.Cookie("sid"); err != nil || c.Value != "tok" {
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Not authenticated"})
		return false
	}
	return true
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret1" {
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "tok", Path: "/"})
		writeJSON(w, http.StatusOK, f.user)
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.loggedOut = true
		f.mu.Unlock()
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if f.signedIn(w, r) {
			writeJSON(w, http.StatusOK, f.user)
		}
	})
	mux.HandleFunc("POST /api/campaigns", func(w http.ResponseWriter, r *http.Request) {
		if !f.signedIn(w, r) {
			return
		}
		var req dto.CreateCampaignRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.campaigns = append(f.campaigns, req)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, models.Campaign{ID: uuid.New(), BrandID: f.user.ID, ProductName: req.ProductName, Status: req.Status})
	})
	mux.HandleFunc("GET /api/campaign-requests/influencer/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.polls++
		list := f.requests
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, list)
	})
	mux.HandleFunc("GET /api/influencers", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("category") != "Gaming" || r.URL.Query().Get("minFollowers") != "10K" {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "unexpected query " + r.URL.RawQuery})
			return
		}
		writeJSON(w, http.StatusOK, []models.InfluencerProfile{{Name: "Alex", Category: "Gaming"}})
	})
	return mux
}

func newFake(t *testing.T, role string) (*fakeAPI, *App) {
	t.Helper()
	f := &fakeAPI{user: models.UserSummary{ID: uuid.New(), Email: "u@example.com", Name: "U", Role: role}}
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	api, err := New(srv.URL+"/", zap.NewNop())
	require.NoError(t, err)
	return f, NewApp(api, NewStore(), zap.NewNop())
}

func TestLoginKeepsSessionCookie(t *testing.T) {
	ctx := context.Background()
	_, app := newFake(t, models.RoleCustomer)

	_, err := app.API.Me(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Not authenticated", apiErr.Message)

	u, err := app.Login(ctx, "u@example.com", "secret1")
	require.NoError(t, err)
	stored, ok := app.Store.User()
	require.True(t, ok)
	assert.Equal(t, *u, stored)

	me, err := app.API.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, me.ID)
}

func TestLoginFailureLeavesStoreEmpty(t *testing.T) {
	_, app := newFake(t, models.RoleCustomer)

	_, err := app.Login(context.Background(), "u@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	_, ok := app.Store.User()
	assert.False(t, ok)
}

func TestLogoutClearsStore(t *testing.T) {
	ctx := context.Background()
	f, app := newFake(t, models.RoleCustomer)
	_, err := app.Login(ctx, "u@example.com", "secret1")
	require.NoError(t, err)
	app.Store.UpdateDraft(func(d *CampaignDraft) { d.ProductName = "Drink" })

	require.NoError(t, app.Logout(ctx))
	f.mu.Lock()
	assert.True(t, f.loggedOut)
	f.mu.Unlock()
	_, ok := app.Store.User()
	assert.False(t, ok)
	assert.True(t, app.Store.Draft().IsEmpty())

	_, err = app.API.Me(ctx)
	assert.Error(t, err)
}

func TestSubmitDraft(t *testing.T) {
	ctx := context.Background()
	f, app := newFake(t, models.RoleCustomer)

	_, err := app.SubmitDraft(ctx, "draft")
	assert.ErrorIs(t, err, ErrNotSignedIn)

	_, err = app.Login(ctx, "u@example.com", "secret1")
	require.NoError(t, err)

	_, err = app.SubmitDraft(ctx, "draft")
	assert.ErrorIs(t, err, ErrEmptyProduct)

	app.Store.UpdateDraft(func(d *CampaignDraft) {
		d.ProductName = "Drink"
		d.Platform = "Instagram"
	})
	campaign, err := app.SubmitDraft(ctx, "active")
	require.NoError(t, err)
	assert.Equal(t, "Drink", campaign.ProductName)
	assert.True(t, app.Store.Draft().IsEmpty())

	f.mu.Lock()
	defer f.mu.Unlock()
	require.Len(t, f.campaigns, 1)
	assert.Equal(t, "Instagram", *f.campaigns[0].Platform)
	assert.Nil(t, f.campaigns[0].ProductDesc)
}

func TestSubmitDraftRequiresBrand(t *testing.T) {
	ctx := context.Background()
	_, app := newFake(t, models.RoleInfluencer)
	_, err := app.Login(ctx, "u@example.com", "secret1")
	require.NoError(t, err)
	app.Store.UpdateDraft(func(d *CampaignDraft) { d.ProductName = "Drink" })

	_, err = app.SubmitDraft(ctx, "draft")
	assert.ErrorIs(t, err, ErrNotBrand)
	assert.False(t, app.Store.Draft().IsEmpty())
}

func TestListInfluencersQuery(t *testing.T) {
	_, app := newFake(t, models.RoleCustomer)
	list, err := app.API.ListInfluencers(context.Background(), InfluencerQuery{Category: "Gaming", MinFollowers: "10K"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alex", list[0].Name)
}

func TestPollerRunsUntilCancelled(t *testing.T) {
	f, app := newFake(t, models.RoleInfluencer)
	id := f.user.ID
	for i := 0; i < 4; i++ {
		f.requests = append(f.requests, models.CampaignRequestWithCampaign{
			CampaignRequest: models.CampaignRequest{ID: uuid.New(), InfluencerID: id, Status: models.RequestStatusPending},
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan models.NotificationSummary, 10)
	done := make(chan struct{})
	go func() {
		NewPoller(app.API, 10*time.Millisecond, zap.NewNop()).Run(ctx, id, func(s models.NotificationSummary) {
			select {
			case updates <- s:
			default:
			}
		})
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case s := <-updates:
			assert.Equal(t, 4, s.PendingCount)
			assert.Len(t, s.Previews, 3)
		case <-time.After(2 * time.Second):
			t.Fatal("poller did not deliver an update")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}
	f.mu.Lock()
	assert.GreaterOrEqual(t, f.polls, 2)
	f.mu.Unlock()
}

func TestAPIErrorFallsBackToBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	api, err := New(srv.URL, zap.NewNop())
	require.NoError(t, err)
	_, err = api.Categories(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}
