package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageStatusUnread = "unread"
	MessageStatusRead   = "read"
)

func IsValidMessageStatus(status string) bool {
	return status == MessageStatusUnread || status == MessageStatusRead
}

// Message is a note sent to the admin inbox.
type Message struct {
	ID        uuid.UUID `json:"id"`
	SenderID  uuid.UUID `json:"senderId"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
