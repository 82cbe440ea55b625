package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationMessage(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  any
		want string
	}{
		{"missing email", &LoginRequest{Password: "x"}, "email is required"},
		{"bad email", &LoginRequest{Email: "nope", Password: "x"}, "email must be a valid email address"},
		{"short password", &RegisterRequest{Email: "a@b.co", Password: "123", Name: "A", Role: "customer"}, "password must be at least 6 characters"},
		{"unknown role", &RegisterRequest{Email: "a@b.co", Password: "123456", Name: "A", Role: "admin"}, "role must be one of: customer, influencer"},
		{"bad campaign id", &CreateCampaignRequestRequest{CampaignID: "1", InfluencerID: "2"}, "campaignId must be a valid id"},
		{"issue type", &CreateSupportTicketRequest{Email: "a@b.co", IssueType: "rant", Subject: "s", Description: "d"}, "issueType must be one of: feedback, bug_report, other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, ValidationMessage(err))
		})
	}
}

func TestValidRequestsPass(t *testing.T) {
	v := NewValidator()
	budget := 0

	assert.NoError(t, v.Struct(&RegisterRequest{Email: "a@b.co", Password: "123456", Name: "A", Role: "influencer"}))
	assert.NoError(t, v.Struct(&CreateCampaignRequest{ProductName: "Drink", Budget: &budget}))
	assert.NoError(t, v.Struct(&CreateInfluencerRequest{Category: "Gaming"}))
}
