package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actor types
const (
	ActorTypeUser   = "user"
	ActorTypeAdmin  = "admin"
	ActorTypeSystem = "system"
)

type AuditLog struct {
	ID          uuid.UUID  `json:"id"`
	ActorUserID *uuid.UUID `json:"actorUserId,omitempty"`
	ActorType   string     `json:"actorType"`
	Action      string     `json:"action"`
	EntityType  string     `json:"entityType"`
	EntityID    *uuid.UUID `json:"entityId,omitempty"`
	Meta        any        `json:"meta,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
