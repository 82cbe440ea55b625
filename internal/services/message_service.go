package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/influencer-hub/backend/internal/repositories"
	"go.uber.org/zap"
)

// MessageService backs the "contact admin" inbox. Every message is addressed
// to the admins listed in configuration.
type MessageService struct {
	messageRepo MessageRepository
	audit       auditor
	policy      Policy
	log         *zap.Logger
}

func NewMessageService(messageRepo MessageRepository, auditRepo AuditRepository, policy Policy, log *zap.Logger) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		audit:       auditor{auditRepo: auditRepo, log: log},
		policy:      policy,
		log:         log,
	}
}

func (s *MessageService) Send(ctx context.Context, actor Actor, subject, content string) (*models.Message, error) {
	subject = strings.TrimSpace(subject)
	content = strings.TrimSpace(content)
	if subject == "" || content == "" {
		return nil, invalid("subject and content are required")
	}

	m := &models.Message{
		SenderID: actor.UserID,
		Subject:  subject,
		Content:  content,
		Status:   models.MessageStatusUnread,
	}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, unauthorized(MsgNotAuthenticated)
		}
		return nil, err
	}

	s.log.Info("message sent to admin", zap.String("sender_id", actor.UserID.String()))
	return m, nil
}

func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	return s.messageRepo.List(ctx)
}

func (s *MessageService) ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.Message, error) {
	return s.messageRepo.ListBySender(ctx, senderID)
}

// UpdateStatus marks a message read or unread. In strict mode only its
// sender or an admin may do so.
func (s *MessageService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status string) (*models.Message, error) {
	if !models.IsValidMessageStatus(status) {
		return nil, invalid("status must be one of: unread, read")
	}

	m, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound(MsgMessageNotFound)
		}
		return nil, err
	}
	if !s.policy.PermissiveStatusUpdates && !actor.Admin && m.SenderID != actor.UserID {
		return nil, forbidden("only the sender or an admin can change this message")
	}
	if m.Status == status {
		return m, nil
	}

	updated, err := s.messageRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound(MsgMessageNotFound)
		}
		return nil, err
	}

	s.audit.record(ctx, actor, "message_status_changed", entityMessage, id, map[string]any{
		"old_status": m.Status,
		"new_status": status,
	})
	return updated, nil
}
