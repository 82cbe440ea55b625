// Package client is a typed REST client for the marketplace API together
// with the client-side application state it needs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/http/dto"
	"github.com/influencer-hub/backend/internal/models"
	"go.uber.org/zap"
)

// APIError is a non-2xx answer carrying the server's {error} message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client keeps the session cookie in its jar, so one Client is one signed-in
// user.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func New(baseURL string, log *zap.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
		log: log,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		var e dto.ErrorResponse
		if json.Unmarshal(data, &e) != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(data))
		}
		c.log.Debug("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Auth

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*models.UserSummary, error) {
	var u models.UserSummary
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.UserSummary, error) {
	var u models.UserSummary
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: password}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (*models.UserSummary, error) {
	var u models.UserSummary
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Influencers

type InfluencerQuery struct {
	Category     string
	Query        string
	Platform     string
	MinFollowers string
	Limit        int
	Offset       int
}

func (q InfluencerQuery) encode() string {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Query != "" {
		v.Set("q", q.Query)
	}
	if q.Platform != "" {
		v.Set("platform", q.Platform)
	}
	if q.MinFollowers != "" {
		v.Set("minFollowers", q.MinFollowers)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) ListInfluencers(ctx context.Context, q InfluencerQuery) ([]models.InfluencerProfile, error) {
	var list []models.InfluencerProfile
	err := c.do(ctx, http.MethodGet, "/api/influencers"+q.encode(), nil, &list)
	return list, err
}

func (c *Client) GetInfluencer(ctx context.Context, userID uuid.UUID) (*models.InfluencerProfile, error) {
	var p models.InfluencerProfile
	if err := c.do(ctx, http.MethodGet, "/api/influencers/"+userID.String(), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateInfluencer(ctx context.Context, req dto.CreateInfluencerRequest) (*models.Influencer, error) {
	var inf models.Influencer
	if err := c.do(ctx, http.MethodPost, "/api/influencers", req, &inf); err != nil {
		return nil, err
	}
	return &inf, nil
}

// Campaigns

func (c *Client) CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := c.do(ctx, http.MethodPost, "/api/campaigns", req, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (c *Client) GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := c.do(ctx, http.MethodGet, "/api/campaigns/"+id.String(), nil, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (c *Client) ListCampaignsByBrand(ctx context.Context, brandID uuid.UUID) ([]models.Campaign, error) {
	var list []models.Campaign
	err := c.do(ctx, http.MethodGet, "/api/campaigns/brand/"+brandID.String(), nil, &list)
	return list, err
}

func (c *Client) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status string) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := c.do(ctx, http.MethodPatch, "/api/campaigns/"+id.String()+"/status", dto.UpdateStatusRequest{Status: status}, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Campaign requests

func (c *Client) CreateCampaignRequest(ctx context.Context, campaignID, influencerID uuid.UUID, budget *int) (*models.CampaignRequest, error) {
	var cr models.CampaignRequest
	req := dto.CreateCampaignRequestRequest{
		CampaignID:   campaignID.String(),
		InfluencerID: influencerID.String(),
		Budget:       budget,
	}
	if err := c.do(ctx, http.MethodPost, "/api/campaign-requests", req, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

func (c *Client) ListRequestsByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.CampaignRequestWithCampaign, error) {
	var list []models.CampaignRequestWithCampaign
	err := c.do(ctx, http.MethodGet, "/api/campaign-requests/influencer/"+influencerID.String(), nil, &list)
	return list, err
}

func (c *Client) ListRequestsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.CampaignRequestWithInfluencer, error) {
	var list []models.CampaignRequestWithInfluencer
	err := c.do(ctx, http.MethodGet, "/api/campaign-requests/campaign/"+campaignID.String(), nil, &list)
	return list, err
}

func (c *Client) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status string) (*models.CampaignRequest, error) {
	var cr models.CampaignRequest
	if err := c.do(ctx, http.MethodPatch, "/api/campaign-requests/"+id.String()+"/status", dto.UpdateStatusRequest{Status: status}, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

func (c *Client) RequestHistory(ctx context.Context, id uuid.UUID) ([]models.AuditLog, error) {
	var list []models.AuditLog
	err := c.do(ctx, http.MethodGet, "/api/campaign-requests/"+id.String()+"/history", nil, &list)
	return list, err
}

// Messages

func (c *Client) SendMessage(ctx context.Context, subject, content string) (*models.Message, error) {
	var m models.Message
	if err := c.do(ctx, http.MethodPost, "/api/messages", dto.CreateMessageRequest{Subject: subject, Content: content}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) ListMessages(ctx context.Context) ([]models.Message, error) {
	var list []models.Message
	err := c.do(ctx, http.MethodGet, "/api/messages", nil, &list)
	return list, err
}

func (c *Client) ListMessagesBySender(ctx context.Context, senderID uuid.UUID) ([]models.Message, error) {
	var list []models.Message
	err := c.do(ctx, http.MethodGet, "/api/messages/user/"+senderID.String(), nil, &list)
	return list, err
}

func (c *Client) MyMessages(ctx context.Context) ([]models.Message, error) {
	var list []models.Message
	err := c.do(ctx, http.MethodGet, "/api/messages/me", nil, &list)
	return list, err
}

func (c *Client) UpdateMessageStatus(ctx context.Context, id uuid.UUID, status string) (*models.Message, error) {
	var m models.Message
	if err := c.do(ctx, http.MethodPatch, "/api/messages/"+id.String()+"/status", dto.UpdateStatusRequest{Status: status}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Support tickets

func (c *Client) CreateSupportTicket(ctx context.Context, req dto.CreateSupportTicketRequest) (*models.SupportTicket, error) {
	var t models.SupportTicket
	if err := c.do(ctx, http.MethodPost, "/api/support-tickets", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) ListSupportTickets(ctx context.Context) ([]models.SupportTicket, error) {
	var list []models.SupportTicket
	err := c.do(ctx, http.MethodGet, "/api/support-tickets", nil, &list)
	return list, err
}

// Notifications and meta

func (c *Client) Notifications(ctx context.Context) (*models.NotificationSummary, error) {
	var s models.NotificationSummary
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Categories(ctx context.Context) ([]dto.Option, error) {
	var list []dto.Option
	err := c.do(ctx, http.MethodGet, "/api/meta/categories", nil, &list)
	return list, err
}

func (c *Client) Platforms(ctx context.Context) ([]dto.Option, error) {
	var list []dto.Option
	err := c.do(ctx, http.MethodGet, "/api/meta/platforms", nil, &list)
	return list, err
}
