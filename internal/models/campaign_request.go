package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign request statuses
const (
	RequestStatusPending   = "pending"
	RequestStatusAccepted  = "accepted"
	RequestStatusRejected  = "rejected"
	RequestStatusCompleted = "completed"
)

// Valid state transitions: from -> []to
var ValidRequestTransitions = map[string][]string{
	RequestStatusPending:   {RequestStatusAccepted, RequestStatusRejected},
	RequestStatusAccepted:  {RequestStatusCompleted},
	RequestStatusRejected:  {},
	RequestStatusCompleted: {},
}

func IsValidRequestStatus(status string) bool {
	_, ok := ValidRequestTransitions[status]
	return ok
}

func IsValidRequestTransition(from, to string) bool {
	return allowed(ValidRequestTransitions, from, to)
}

type CampaignRequest struct {
	ID           uuid.UUID `json:"id"`
	CampaignID   uuid.UUID `json:"campaignId"`
	InfluencerID uuid.UUID `json:"influencerId"`
	Status       string    `json:"status"`
	Budget       *int      `json:"budget,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CampaignRequestWithCampaign embeds the request and adds its campaign to avoid N+1 queries.
type CampaignRequestWithCampaign struct {
	CampaignRequest
	Campaign Campaign `json:"campaign"`
}

// CampaignRequestWithInfluencer carries the influencer profile, nil when the
// influencer user has no profile row.
type CampaignRequestWithInfluencer struct {
	CampaignRequest
	Influencer *InfluencerProfile `json:"influencer"`
}
