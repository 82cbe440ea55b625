package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/events"
	"github.com/influencer-hub/backend/internal/models"
	"go.uber.org/zap"
)

// auditor writes audit entries and publishes events. Both are best effort:
// the state change already happened, so failures are only logged.
type auditor struct {
	auditRepo AuditRepository
	publisher events.Publisher
	log       *zap.Logger
}

func (a auditor) record(ctx context.Context, actor Actor, action, entityType string, entityID uuid.UUID, meta map[string]any) {
	if a.auditRepo == nil {
		return
	}
	actorType := models.ActorTypeUser
	if actor.Admin {
		actorType = models.ActorTypeAdmin
	}
	actorID := actor.UserID
	err := a.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   actorType,
		Action:      action,
		EntityType:  entityType,
		EntityID:    &entityID,
		Meta:        meta,
	})
	if err != nil {
		a.log.Warn("failed to write audit log",
			zap.String("action", action),
			zap.String("entity_id", entityID.String()),
			zap.Error(err),
		)
	}
}

func (a auditor) publish(ctx context.Context, stream string, e events.Event) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.Publish(ctx, stream, e); err != nil {
		a.log.Warn("failed to publish event", zap.String("type", e.Type), zap.Error(err))
	}
}
