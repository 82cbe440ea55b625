package dto

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"name" validate:"required,max=120"`
	Role     string  `json:"role" validate:"required,oneof=customer influencer"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=80"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateInfluencerRequest struct {
	Category  string   `json:"category" validate:"required,max=80"`
	Followers *string  `json:"followers,omitempty" validate:"omitempty,max=40"`
	Bio       *string  `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Platforms []string `json:"platforms,omitempty" validate:"max=20,dive,max=300"` // names or profile links
}

type CreateCampaignRequest struct {
	ProductName    string  `json:"productName" validate:"required,max=200"`
	ProductDesc    *string `json:"productDesc,omitempty" validate:"omitempty,max=5000"`
	TargetAudience *string `json:"targetAudience,omitempty" validate:"omitempty,max=1000"`
	Platform       *string `json:"platform,omitempty" validate:"omitempty,max=80"`
	Status         string  `json:"status,omitempty" validate:"omitempty,oneof=draft active"`
	Budget         *int    `json:"budget,omitempty" validate:"omitempty,min=0"`
}

type CreateCampaignRequestRequest struct {
	CampaignID   string `json:"campaignId" validate:"required,uuid"`
	InfluencerID string `json:"influencerId" validate:"required,uuid"`
	Budget       *int   `json:"budget,omitempty" validate:"omitempty,min=0"`
}

// UpdateStatusRequest is shared by every status endpoint; the allowed values
// are checked by the service owning the entity.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateMessageRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Content string `json:"content" validate:"required,max=10000"`
}

type CreateSupportTicketRequest struct {
	Email       string `json:"email" validate:"required,email"`
	IssueType   string `json:"issueType" validate:"required,oneof=feedback bug_report other"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=10000"`
}
