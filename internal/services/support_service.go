package services

import (
	"context"
	"strings"

	"github.com/influencer-hub/backend/internal/models"
	"go.uber.org/zap"
)

type SupportService struct {
	ticketRepo SupportTicketRepository
	log        *zap.Logger
}

func NewSupportService(ticketRepo SupportTicketRepository, log *zap.Logger) *SupportService {
	return &SupportService{ticketRepo: ticketRepo, log: log}
}

type CreateTicketInput struct {
	Email       string
	IssueType   string
	Subject     string
	Description string
}

// Create stores a ticket. actor is nil for anonymous submissions and the
// ticket then has no user.
func (s *SupportService) Create(ctx context.Context, actor *Actor, in CreateTicketInput) (*models.SupportTicket, error) {
	if !models.IsValidIssueType(in.IssueType) {
		return nil, invalid("issueType must be one of: feedback, bug_report, other")
	}
	t := &models.SupportTicket{
		Email:       normalizeEmail(in.Email),
		IssueType:   in.IssueType,
		Subject:     strings.TrimSpace(in.Subject),
		Description: strings.TrimSpace(in.Description),
	}
	if t.Email == "" || t.Subject == "" || t.Description == "" {
		return nil, invalid("email, subject and description are required")
	}
	if actor != nil {
		id := actor.UserID
		t.UserID = &id
	}

	if err := s.ticketRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info("support ticket created",
		zap.String("ticket_id", t.ID.String()),
		zap.String("issue_type", t.IssueType),
		zap.Bool("anonymous", t.UserID == nil),
	)
	return t, nil
}

func (s *SupportService) List(ctx context.Context) ([]models.SupportTicket, error) {
	return s.ticketRepo.List(ctx)
}
