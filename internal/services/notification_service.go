package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/events"
	"github.com/influencer-hub/backend/internal/models"
	"go.uber.org/zap"
)

// NotificationService computes the influencer navigation badge: pending
// request count plus a few previews. Summaries are cached and dropped when a
// request event for the influencer arrives.
type NotificationService struct {
	requestRepo  CampaignRequestRepository
	cache        NotificationCache
	previewLimit int
	log          *zap.Logger
}

func NewNotificationService(requestRepo CampaignRequestRepository, cache NotificationCache, previewLimit int, log *zap.Logger) *NotificationService {
	if previewLimit <= 0 {
		previewLimit = 3
	}
	return &NotificationService{
		requestRepo:  requestRepo,
		cache:        cache,
		previewLimit: previewLimit,
		log:          log,
	}
}

func (s *NotificationService) Summary(ctx context.Context, influencerID uuid.UUID) (*models.NotificationSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, influencerID)
		if err != nil {
			s.log.Warn("notification cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	requests, err := s.requestRepo.ListByInfluencer(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	summary := models.NewNotificationSummary(requests, s.previewLimit)

	if s.cache != nil {
		if err := s.cache.Set(ctx, influencerID, &summary); err != nil {
			s.log.Warn("notification cache write failed", zap.Error(err))
		}
	}
	return &summary, nil
}

// Start subscribes to campaign request events and invalidates the affected
// influencer's cached summary. It returns once the subscription is live.
func (s *NotificationService) Start(ctx context.Context, sub events.Subscriber) error {
	if s.cache == nil {
		return nil
	}
	return sub.Subscribe(ctx, events.StreamCampaignRequests, func(e events.Event) {
		s.handleEvent(ctx, e)
	})
}

func (s *NotificationService) handleEvent(ctx context.Context, e events.Event) {
	raw, _ := e.Payload["influencer_id"].(string)
	influencerID, err := uuid.Parse(raw)
	if err != nil {
		s.log.Warn("campaign request event without influencer id", zap.String("type", e.Type))
		return
	}
	if err := s.cache.Invalidate(ctx, influencerID); err != nil {
		s.log.Warn("notification cache invalidation failed",
			zap.String("influencer_id", raw),
			zap.Error(err),
		)
	}
}
