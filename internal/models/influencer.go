package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultInfluencerRating = "4.9"

type Influencer struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Category       string    `json:"category"`
	Followers      *string   `json:"followers,omitempty"` // as entered, e.g. "1.2M"
	FollowersCount int64     `json:"followersCount"`
	Rating         string    `json:"rating"`
	Bio            *string   `json:"bio,omitempty"`
	Platforms      []string  `json:"platforms"`
	CreatedAt      time.Time `json:"createdAt"`
}

// InfluencerProfile is an influencer row joined with its user.
type InfluencerProfile struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Category       string    `json:"category"`
	Followers      *string   `json:"followers,omitempty"`
	FollowersCount int64     `json:"followersCount"`
	Rating         string    `json:"rating"`
	Bio            *string   `json:"bio,omitempty"`
	Platforms      []string  `json:"platforms"`
	Avatar         *string   `json:"avatar,omitempty"`
}
