package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

const messageColumns = `id, sender_id, subject, content, status, created_at`

func scanMessage(row pgx.Row) (*models.Message, error) {
	var m models.Message
	if err := row.Scan(&m.ID, &m.SenderID, &m.Subject, &m.Content, &m.Status, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepo) Create(ctx context.Context, m *models.Message) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO messages (sender_id, subject, content, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, m.SenderID, m.Subject, m.Content, m.Status).Scan(&m.ID, &m.CreatedAt)
}

func (r *MessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	return scanMessage(r.pool.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
}

func (r *MessageRepo) List(ctx context.Context) ([]models.Message, error) {
	return r.list(ctx, `SELECT `+messageColumns+` FROM messages ORDER BY created_at DESC`)
}

func (r *MessageRepo) ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.Message, error) {
	return r.list(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE sender_id = $1 ORDER BY created_at DESC
	`, senderID)
}

func (r *MessageRepo) list(ctx context.Context, query string, args ...any) ([]models.Message, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *m)
	}
	return messages, rows.Err()
}

// UpdateStatus returns pgx.ErrNoRows when the message does not exist.
func (r *MessageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Message, error) {
	return scanMessage(r.pool.QueryRow(ctx, `
		UPDATE messages SET status = $1 WHERE id = $2
		RETURNING `+messageColumns, status, id))
}
