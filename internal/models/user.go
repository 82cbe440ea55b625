package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. A role is fixed at registration.
const (
	RoleCustomer   = "customer"
	RoleInfluencer = "influencer"
)

func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleInfluencer
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Avatar       *string   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserSummary is the public view of a user returned by the auth endpoints.
type UserSummary struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
	Avatar *string   `json:"avatar,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}
