package repositories

import (
	"context"

	"github.com/influencer-hub/backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SupportTicketRepo struct {
	pool *pgxpool.Pool
}

func NewSupportTicketRepo(pool *pgxpool.Pool) *SupportTicketRepo {
	return &SupportTicketRepo{pool: pool}
}

func (r *SupportTicketRepo) Create(ctx context.Context, t *models.SupportTicket) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO support_tickets (user_id, email, issue_type, subject, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, t.UserID, t.Email, t.IssueType, t.Subject, t.Description).Scan(&t.ID, &t.CreatedAt)
}

func (r *SupportTicketRepo) List(ctx context.Context) ([]models.SupportTicket, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, email, issue_type, subject, description, created_at
		FROM support_tickets ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := []models.SupportTicket{}
	for rows.Next() {
		var t models.SupportTicket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Email, &t.IssueType, &t.Subject, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
