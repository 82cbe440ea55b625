package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	IssueTypeFeedback  = "feedback"
	IssueTypeBugReport = "bug_report"
	IssueTypeOther     = "other"
)

func IsValidIssueType(t string) bool {
	switch t {
	case IssueTypeFeedback, IssueTypeBugReport, IssueTypeOther:
		return true
	}
	return false
}

type SupportTicket struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"userId"` // nil for anonymous submissions
	Email       string     `json:"email"`
	IssueType   string     `json:"issueType"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
}
