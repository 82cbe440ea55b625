package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/influencer-hub/backend/internal/repositories"
	"github.com/influencer-hub/backend/internal/textparse"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo CampaignRepository
	audit        auditor
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo CampaignRepository,
	auditRepo AuditRepository,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		audit:        auditor{auditRepo: auditRepo, log: log},
		log:          log,
	}
}

type CreateCampaignInput struct {
	ProductName    string
	ProductDesc    *string
	TargetAudience *string
	Platform       *string
	Status         string
	Budget         *int
}

func (s *CampaignService) Create(ctx context.Context, actor Actor, in CreateCampaignInput) (*models.Campaign, error) {
	if actor.Role != models.RoleCustomer {
		return nil, forbidden("only brands can create campaigns")
	}

	name, err := label("productName", in.ProductName)
	if err != nil {
		return nil, err
	}
	platform, err := label("platform", deref(in.Platform))
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, invalid("productName is required")
	}
	status := in.Status
	if status == "" {
		status = models.CampaignStatusDraft
	}
	if status != models.CampaignStatusDraft && status != models.CampaignStatusActive {
		return nil, invalid("status must be one of: draft, active")
	}
	if in.Budget != nil && *in.Budget < 0 {
		return nil, invalid("budget must not be negative")
	}

	c := &models.Campaign{
		BrandID:        actor.UserID,
		ProductName:    name,
		ProductDesc:    textparse.Optional(in.ProductDesc),
		TargetAudience: textparse.Optional(in.TargetAudience),
		Platform:       textparse.Optional(&platform),
		Status:         status,
		Budget:         in.Budget,
	}
	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.audit.record(ctx, actor, "campaign_created", entityCampaign, c.ID, map[string]any{
		"status": c.Status,
	})
	return c, nil
}

func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound(MsgCampaignNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]models.Campaign, error) {
	return s.campaignRepo.ListByBrand(ctx, brandID)
}

// UpdateStatus moves a campaign along draft -> active -> completed. Only the
// owning brand may do so; repeating the current status is a no-op.
func (s *CampaignService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status string) (*models.Campaign, error) {
	if !models.IsValidCampaignStatus(status) {
		return nil, invalid("status must be one of: draft, active, completed")
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.BrandID != actor.UserID {
		return nil, forbidden("only the campaign's brand can change its status")
	}
	if c.Status == status {
		return c, nil
	}
	if !models.IsValidCampaignTransition(c.Status, status) {
		return nil, invalidTransition(c.Status, status)
	}

	oldStatus := c.Status
	updated, err := s.campaignRepo.UpdateStatus(ctx, id, oldStatus, status)
	if err != nil {
		if !repositories.IsNotFound(err) {
			return nil, err
		}
		// Gone, or moved by a concurrent update since it was read.
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status == status {
			return current, nil
		}
		return nil, invalidTransition(current.Status, status)
	}

	s.audit.record(ctx, actor, "campaign_status_changed", entityCampaign, id, map[string]any{
		"old_status": oldStatus,
		"new_status": status,
	})
	return updated, nil
}
