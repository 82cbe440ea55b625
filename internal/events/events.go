package events

import "context"

// Streams
const StreamCampaignRequests = "events:campaign_request"

// Event types
const (
	EventCampaignRequestCreated       = "campaign_request_created"
	EventCampaignRequestStatusChanged = "campaign_request_status_changed"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
