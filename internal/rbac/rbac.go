package rbac

import "github.com/influencer-hub/backend/internal/models"

// Role constants. Customer and influencer are user roles; admin is granted
// by configuration on top of either.
const (
	RoleCustomer   = models.RoleCustomer
	RoleInfluencer = models.RoleInfluencer
	RoleAdmin      = "admin"
)

// Permission constants
const (
	PermCreateCampaign          = "create_campaign"
	PermSendCampaignRequest     = "send_campaign_request"
	PermCreateInfluencerProfile = "create_influencer_profile"
	PermViewNotifications       = "view_notifications"
	PermContactAdmin            = "contact_admin"
	PermReviewMessages          = "review_messages"
)

// RolePermissions defines what each role can do.
var RolePermissions = map[string][]string{
	RoleCustomer: {
		PermCreateCampaign, PermSendCampaignRequest, PermContactAdmin,
	},
	RoleInfluencer: {
		PermCreateInfluencerProfile, PermViewNotifications, PermContactAdmin,
	},
	RoleAdmin: {
		PermReviewMessages,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}

// Allowed checks the user role first, then the admin grant.
func Allowed(role string, admin bool, permission string) bool {
	if HasPermission(role, permission) {
		return true
	}
	return admin && HasPermission(RoleAdmin, permission)
}
