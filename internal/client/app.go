package client

import (
	"context"
	"errors"

	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/models"
	"go.uber.org/zap"
)

var (
	ErrNotSignedIn  = errors.New("not signed in")
	ErrNotBrand     = errors.New("only brands can create campaigns")
	ErrEmptyProduct = errors.New("campaign draft has no product name")
)

// App ties the API client to the client state. Every state change goes
// through it, so the Store has a single writer.
type App struct {
	API   *Client
	Store *Store
	log   *zap.Logger
}

func NewApp(api *Client, store *Store, log *zap.Logger) *App {
	return &App{API: api, Store: store, log: log}
}

func (a *App) Login(ctx context.Context, email, password string) (*models.UserSummary, error) {
	u, err := a.API.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	a.Store.SetUser(*u)
	return u, nil
}

func (a *App) Register(ctx context.Context, req dto.RegisterRequest) (*models.UserSummary, error) {
	u, err := a.API.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	a.Store.SetUser(*u)
	return u, nil
}

// Restore reloads the current user from an existing session.
func (a *App) Restore(ctx context.Context) (*models.UserSummary, error) {
	u, err := a.API.Me(ctx)
	if err != nil {
		return nil, err
	}
	a.Store.SetUser(*u)
	return u, nil
}

// Logout clears local state even when the server call fails.
func (a *App) Logout(ctx context.Context) error {
	err := a.API.Logout(ctx)
	a.Store.Clear()
	if err != nil {
		a.log.Warn("logout request failed", zap.Error(err))
	}
	return err
}

// SubmitDraft creates a campaign from the stored draft and resets the draft
// once the server accepted it.
func (a *App) SubmitDraft(ctx context.Context, status string) (*models.Campaign, error) {
	u, ok := a.Store.User()
	if !ok {
		return nil, ErrNotSignedIn
	}
	if u.Role != models.RoleCustomer {
		return nil, ErrNotBrand
	}
	d := a.Store.Draft()
	if d.ProductName == "" {
		return nil, ErrEmptyProduct
	}

	campaign, err := a.API.CreateCampaign(ctx, dto.CreateCampaignRequest{
		ProductName:    d.ProductName,
		ProductDesc:    optional(d.ProductDesc),
		TargetAudience: optional(d.TargetAudience),
		Platform:       optional(d.Platform),
		Status:         status,
		Budget:         d.Budget,
	})
	if err != nil {
		return nil, err
	}
	a.Store.ResetDraft()
	return campaign, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
