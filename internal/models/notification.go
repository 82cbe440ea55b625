package models

// NotificationSummary is what the influencer navigation shows: how many
// requests await an answer and a few of the newest ones.
type NotificationSummary struct {
	PendingCount int                           `json:"pendingCount"`
	Previews     []CampaignRequestWithCampaign `json:"previews"`
}

// NewNotificationSummary expects requests ordered newest first.
func NewNotificationSummary(requests []CampaignRequestWithCampaign, previewLimit int) NotificationSummary {
	s := NotificationSummary{Previews: []CampaignRequestWithCampaign{}}
	for _, r := range requests {
		if r.Status != RequestStatusPending {
			continue
		}
		s.PendingCount++
		if len(s.Previews) < previewLimit {
			s.Previews = append(s.Previews, r)
		}
	}
	return s
}
