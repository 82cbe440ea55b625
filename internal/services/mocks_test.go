package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/events"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/influencer-hub/backend/internal/repositories"
	"github.com/influencer-hub/backend/internal/sessions"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateWithProfile(ctx context.Context, u *models.User, inf *models.Influencer) error {
	return m.Called(ctx, u, inf).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type mockInfluencerRepo struct{ mock.Mock }

func (m *mockInfluencerRepo) Create(ctx context.Context, inf *models.Influencer) error {
	return m.Called(ctx, inf).Error(0)
}

func (m *mockInfluencerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.InfluencerProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*models.InfluencerProfile)
	return p, args.Error(1)
}

func (m *mockInfluencerRepo) List(ctx context.Context, f repositories.InfluencerFilter) ([]models.InfluencerProfile, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]models.InfluencerProfile)
	return list, args.Error(1)
}

type mockCampaignRepo struct{ mock.Mock }

func (m *mockCampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Campaign)
	return c, args.Error(1)
}

func (m *mockCampaignRepo) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]models.Campaign, error) {
	args := m.Called(ctx, brandID)
	list, _ := args.Get(0).([]models.Campaign)
	return list, args.Error(1)
}

func (m *mockCampaignRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (*models.Campaign, error) {
	args := m.Called(ctx, id, from, to)
	c, _ := args.Get(0).(*models.Campaign)
	return c, args.Error(1)
}

type mockRequestRepo struct{ mock.Mock }

func (m *mockRequestRepo) Create(ctx context.Context, cr *models.CampaignRequest) error {
	return m.Called(ctx, cr).Error(0)
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CampaignRequest, error) {
	args := m.Called(ctx, id)
	cr, _ := args.Get(0).(*models.CampaignRequest)
	return cr, args.Error(1)
}

func (m *mockRequestRepo) ListByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.CampaignRequestWithCampaign, error) {
	args := m.Called(ctx, influencerID)
	list, _ := args.Get(0).([]models.CampaignRequestWithCampaign)
	return list, args.Error(1)
}

func (m *mockRequestRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.CampaignRequestWithInfluencer, error) {
	args := m.Called(ctx, campaignID)
	list, _ := args.Get(0).([]models.CampaignRequestWithInfluencer)
	return list, args.Error(1)
}

func (m *mockRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (*models.CampaignRequest, error) {
	args := m.Called(ctx, id, from, to)
	cr, _ := args.Get(0).(*models.CampaignRequest)
	return cr, args.Error(1)
}

type mockMessageRepo struct{ mock.Mock }

func (m *mockMessageRepo) Create(ctx context.Context, msg *models.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	args := m.Called(ctx, id)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

func (m *mockMessageRepo) List(ctx context.Context) ([]models.Message, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Message)
	return list, args.Error(1)
}

func (m *mockMessageRepo) ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.Message, error) {
	args := m.Called(ctx, senderID)
	list, _ := args.Get(0).([]models.Message)
	return list, args.Error(1)
}

func (m *mockMessageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Message, error) {
	args := m.Called(ctx, id, status)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

type mockTicketRepo struct{ mock.Mock }

func (m *mockTicketRepo) Create(ctx context.Context, t *models.SupportTicket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTicketRepo) List(ctx context.Context) ([]models.SupportTicket, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.SupportTicket)
	return list, args.Error(1)
}

type mockAuditRepo struct{ mock.Mock }

func (m *mockAuditRepo) Log(ctx context.Context, entry models.AuditLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockAuditRepo) GetByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, error) {
	args := m.Called(ctx, entityType, entityID, limit, offset)
	list, _ := args.Get(0).([]models.AuditLog)
	return list, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, influencerID uuid.UUID) (*models.NotificationSummary, error) {
	args := m.Called(ctx, influencerID)
	s, _ := args.Get(0).(*models.NotificationSummary)
	return s, args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, influencerID uuid.UUID, s *models.NotificationSummary) error {
	return m.Called(ctx, influencerID, s).Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context, influencerID uuid.UUID) error {
	return m.Called(ctx, influencerID).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, stream string, e events.Event) error {
	return m.Called(ctx, stream, e).Error(0)
}

type mockSessions struct{ mock.Mock }

func (m *mockSessions) Create(ctx context.Context, s sessions.Session) (string, error) {
	args := m.Called(ctx, s)
	return args.String(0), args.Error(1)
}

func (m *mockSessions) Get(ctx context.Context, token string) (*sessions.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*sessions.Session)
	return s, args.Error(1)
}

func (m *mockSessions) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
