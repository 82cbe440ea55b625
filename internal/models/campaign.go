package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
)

var ValidCampaignTransitions = map[string][]string{
	CampaignStatusDraft:     {CampaignStatusActive, CampaignStatusCompleted},
	CampaignStatusActive:    {CampaignStatusCompleted},
	CampaignStatusCompleted: {},
}

func IsValidCampaignStatus(status string) bool {
	_, ok := ValidCampaignTransitions[status]
	return ok
}

func IsValidCampaignTransition(from, to string) bool {
	return allowed(ValidCampaignTransitions, from, to)
}

type Campaign struct {
	ID             uuid.UUID `json:"id"`
	BrandID        uuid.UUID `json:"brandId"`
	ProductName    string    `json:"productName"`
	ProductDesc    *string   `json:"productDesc,omitempty"`
	TargetAudience *string   `json:"targetAudience,omitempty"`
	Platform       *string   `json:"platform,omitempty"`
	Status         string    `json:"status"`
	Budget         *int      `json:"budget,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func allowed(table map[string][]string, from, to string) bool {
	next, ok := table[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
