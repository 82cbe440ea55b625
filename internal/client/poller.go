package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 30 * time.Second
	DefaultPreviewLimit = 3
)

// Poller refreshes an influencer's notification summary on a fixed
// interval. Each tick refetches the full request list; failures are logged
// and the next tick tries again.
type Poller struct {
	api          *Client
	interval     time.Duration
	previewLimit int
	log          *zap.Logger
}

func NewPoller(api *Client, interval time.Duration, log *zap.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{api: api, interval: interval, previewLimit: DefaultPreviewLimit, log: log}
}

func (p *Poller) Poll(ctx context.Context, influencerID uuid.UUID) (models.NotificationSummary, error) {
	requests, err := p.api.ListRequestsByInfluencer(ctx, influencerID)
	if err != nil {
		return models.NotificationSummary{}, err
	}
	return models.NewNotificationSummary(requests, p.previewLimit), nil
}

// Run polls immediately and then every interval until ctx is done.
func (p *Poller) Run(ctx context.Context, influencerID uuid.UUID, onUpdate func(models.NotificationSummary)) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		summary, err := p.Poll(ctx, influencerID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.log.Warn("notification poll failed", zap.Error(err))
		} else {
			onUpdate(summary)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
