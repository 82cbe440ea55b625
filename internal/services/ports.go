package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/influencer-hub/backend/internal/repositories"
)

// Repository ports. The postgres implementations live in internal/repositories.

type UserRepository interface {
	CreateWithProfile(ctx context.Context, u *models.User, inf *models.Influencer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type InfluencerRepository interface {
	Create(ctx context.Context, inf *models.Influencer) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.InfluencerProfile, error)
	List(ctx context.Context, f repositories.InfluencerFilter) ([]models.InfluencerProfile, error)
}

type CampaignRepository interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	ListByBrand(ctx context.Context, brandID uuid.UUID) ([]models.Campaign, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (*models.Campaign, error)
}

type CampaignRequestRepository interface {
	Create(ctx context.Context, cr *models.CampaignRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CampaignRequest, error)
	ListByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.CampaignRequestWithCampaign, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.CampaignRequestWithInfluencer, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (*models.CampaignRequest, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	List(ctx context.Context) ([]models.Message, error)
	ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.Message, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Message, error)
}

type SupportTicketRepository interface {
	Create(ctx context.Context, t *models.SupportTicket) error
	List(ctx context.Context) ([]models.SupportTicket, error)
}

type AuditRepository interface {
	Log(ctx context.Context, entry models.AuditLog) error
	GetByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, error)
}

type NotificationCache interface {
	Get(ctx context.Context, influencerID uuid.UUID) (*models.NotificationSummary, error)
	Set(ctx context.Context, influencerID uuid.UUID, s *models.NotificationSummary) error
	Invalidate(ctx context.Context, influencerID uuid.UUID) error
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID
	Role   string
	Admin  bool
}

// Policy switches status endpoints between ownership-checked transitions
// (default) and unrestricted writes of any valid status.
type Policy struct {
	PermissiveStatusUpdates bool
}

// Audit entity types
const (
	entityCampaign        = "campaign"
	entityCampaignRequest = "campaign_request"
	entityMessage         = "message"
)
