package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/events"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/influencer-hub/backend/internal/repositories"
	"go.uber.org/zap"
)

type CampaignRequestService struct {
	requestRepo  CampaignRequestRepository
	campaignRepo CampaignRepository
	userRepo     UserRepository
	auditRepo    AuditRepository
	audit        auditor
	policy       Policy
	log          *zap.Logger
}

func NewCampaignRequestService(
	requestRepo CampaignRequestRepository,
	campaignRepo CampaignRepository,
	userRepo UserRepository,
	auditRepo AuditRepository,
	publisher events.Publisher,
	policy Policy,
	log *zap.Logger,
) *CampaignRequestService {
	return &CampaignRequestService{
		requestRepo:  requestRepo,
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		audit:        auditor{auditRepo: auditRepo, publisher: publisher, log: log},
		policy:       policy,
		log:          log,
	}
}

type CreateRequestInput struct {
	CampaignID   uuid.UUID
	InfluencerID uuid.UUID
	Budget       *int
}

func (s *CampaignRequestService) Create(ctx context.Context, actor Actor, in CreateRequestInput) (*models.CampaignRequest, error) {
	if in.Budget != nil && *in.Budget < 0 {
		return nil, invalid("budget must not be negative")
	}

	campaign, err := s.campaignRepo.GetByID(ctx, in.CampaignID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound(MsgCampaignNotFound)
		}
		return nil, err
	}
	if !s.policy.PermissiveStatusUpdates && campaign.BrandID != actor.UserID {
		return nil, forbidden("only the campaign's brand can send requests for it")
	}

	influencer, err := s.userRepo.GetByID(ctx, in.InfluencerID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound(MsgInfluencerNotFound)
		}
		return nil, err
	}
	if influencer.Role != models.RoleInfluencer {
		return nil, invalid("influencerId must reference an influencer")
	}

	cr := &models.CampaignRequest{
		CampaignID:   campaign.ID,
		InfluencerID: influencer.ID,
		Status:       models.RequestStatusPending,
		Budget:       in.Budget,
	}
	if err := s.requestRepo.Create(ctx, cr); err != nil {
		return nil, err
	}

	s.audit.record(ctx, actor, "campaign_request_created", entityCampaignRequest, cr.ID, map[string]any{
		"campaign_id":   cr.CampaignID.String(),
		"influencer_id": cr.InfluencerID.String(),
	})
	s.audit.publish(ctx, events.StreamCampaignRequests, events.Event{
		Type: events.EventCampaignRequestCreated,
		Payload: map[string]any{
			"request_id":    cr.ID.String(),
			"campaign_id":   cr.CampaignID.String(),
			"influencer_id": cr.InfluencerID.String(),
			"status":        cr.Status,
		},
	})
	return cr, nil
}

func (s *CampaignRequestService) ListByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.CampaignRequestWithCampaign, error) {
	return s.requestRepo.ListByInfluencer(ctx, influencerID)
}

func (s *CampaignRequestService) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.CampaignRequestWithInfluencer, error) {
	return s.requestRepo.ListByCampaign(ctx, campaignID)
}

func (s *CampaignRequestService) get(ctx context.Context, id uuid.UUID) (*models.CampaignRequest, error) {
	cr, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound(MsgRequestNotFound)
		}
		return nil, err
	}
	return cr, nil
}

// side reports whether actor is the request's influencer and whether it is
// the brand that owns the request's campaign.
func (s *CampaignRequestService) side(ctx context.Context, actor Actor, cr *models.CampaignRequest) (isInfluencer, isBrand bool, err error) {
	isInfluencer = cr.InfluencerID == actor.UserID
	campaign, err := s.campaignRepo.GetByID(ctx, cr.CampaignID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return isInfluencer, false, nil
		}
		return false, false, err
	}
	return isInfluencer, campaign.BrandID == actor.UserID, nil
}

// UpdateStatus applies a status change. In strict mode the actor must be on
// one side of the request, the move must follow the transition table and
// only the influencer may accept or reject. Repeating the current status
// returns the request unchanged.
func (s *CampaignRequestService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status string) (*models.CampaignRequest, error) {
	if !models.IsValidRequestStatus(status) {
		return nil, invalid("status must be one of: pending, accepted, rejected, completed")
	}

	cr, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.policy.PermissiveStatusUpdates {
		isInfluencer, isBrand, err := s.side(ctx, actor, cr)
		if err != nil {
			return nil, err
		}
		if !isInfluencer && !isBrand {
			return nil, forbidden("you are not a party to this request")
		}
		if cr.Status == status {
			return cr, nil
		}
		if !models.IsValidRequestTransition(cr.Status, status) {
			return nil, invalidTransition(cr.Status, status)
		}
		if (status == models.RequestStatusAccepted || status == models.RequestStatusRejected) && !isInfluencer {
			return nil, forbidden("only the influencer can accept or reject a request")
		}
	} else if cr.Status == status {
		return cr, nil
	}

	oldStatus := cr.Status
	updated, err := s.requestRepo.UpdateStatus(ctx, id, oldStatus, status)
	if err != nil {
		if !repositories.IsNotFound(err) {
			return nil, err
		}
		// Gone, or moved by a concurrent update since it was read.
		current, err := s.get(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status == status {
			return current, nil
		}
		return nil, invalidTransition(current.Status, status)
	}

	s.log.Info("campaign request status changed",
		zap.String("request_id", id.String()),
		zap.String("old_status", oldStatus),
		zap.String("new_status", status),
	)
	s.audit.record(ctx, actor, "campaign_request_status_changed", entityCampaignRequest, id, map[string]any{
		"old_status": oldStatus,
		"new_status": status,
	})
	s.audit.publish(ctx, events.StreamCampaignRequests, events.Event{
		Type: events.EventCampaignRequestStatusChanged,
		Payload: map[string]any{
			"request_id":    id.String(),
			"campaign_id":   updated.CampaignID.String(),
			"influencer_id": updated.InfluencerID.String(),
			"old_status":    oldStatus,
			"new_status":    status,
		},
	})
	return updated, nil
}

// History returns the audit trail of a request, newest first.
func (s *CampaignRequestService) History(ctx context.Context, actor Actor, id uuid.UUID, limit, offset int) ([]models.AuditLog, error) {
	cr, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.PermissiveStatusUpdates && !actor.Admin {
		isInfluencer, isBrand, err := s.side(ctx, actor, cr)
		if err != nil {
			return nil, err
		}
		if !isInfluencer && !isBrand {
			return nil, forbidden("you are not a party to this request")
		}
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.auditRepo.GetByEntity(ctx, entityCampaignRequest, id, limit, offset)
}
