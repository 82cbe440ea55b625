package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InfluencerRepo struct {
	pool *pgxpool.Pool
}

func NewInfluencerRepo(pool *pgxpool.Pool) *InfluencerRepo {
	return &InfluencerRepo{pool: pool}
}

func (r *InfluencerRepo) Create(ctx context.Context, inf *models.Influencer) error {
	return insertInfluencer(ctx, r.pool, inf)
}

func insertInfluencer(ctx context.Context, q querier, inf *models.Influencer) error {
	if inf.Platforms == nil {
		inf.Platforms = []string{}
	}
	if inf.Rating == "" {
		inf.Rating = models.DefaultInfluencerRating
	}
	platforms, err := json.Marshal(inf.Platforms)
	if err != nil {
		return err
	}

	return q.QueryRow(ctx, `
		INSERT INTO influencers (user_id, category, followers, followers_count, rating, bio, platforms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, inf.UserID, inf.Category, inf.Followers, inf.FollowersCount, inf.Rating, inf.Bio, platforms,
	).Scan(&inf.ID, &inf.CreatedAt)
}

const profileColumns = `
	i.id, i.user_id, u.name, u.email, i.category, i.followers, i.followers_count,
	i.rating, i.bio, i.platforms, u.avatar`

func scanProfile(row pgx.Row) (*models.InfluencerProfile, error) {
	var p models.InfluencerProfile
	var platforms []byte
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Email, &p.Category, &p.Followers,
		&p.FollowersCount, &p.Rating, &p.Bio, &platforms, &p.Avatar); err != nil {
		return nil, err
	}
	p.Platforms = []string{}
	if len(platforms) > 0 {
		if err := json.Unmarshal(platforms, &p.Platforms); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// GetByUserID returns the oldest profile of the user.
func (r *InfluencerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.InfluencerProfile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM influencers i JOIN users u ON u.id = i.user_id
		WHERE i.user_id = $1
		ORDER BY i.created_at
		LIMIT 1
	`, userID)
	return scanProfile(row)
}

// MaxInfluencerPage caps an explicit limit. Without one the whole list is
// returned.
const MaxInfluencerPage = 100

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

type InfluencerFilter struct {
	Category     *string
	Query        *string
	Platform     *string
	MinFollowers *int64
	Limit        int
	Offset       int
}

func (r *InfluencerRepo) List(ctx context.Context, f InfluencerFilter) ([]models.InfluencerProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM influencers i JOIN users u ON u.id = i.user_id`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.Category != nil {
		where = append(where, fmt.Sprintf("lower(i.category) = lower($%d)", argIdx))
		args = append(args, *f.Category)
		argIdx++
	}
	if f.Query != nil {
		where = append(where, fmt.Sprintf(`(u.name ILIKE $%d ESCAPE '\' OR i.bio ILIKE $%d ESCAPE '\')`, argIdx, argIdx))
		args = append(args, containsPattern(*f.Query))
		argIdx++
	}
	if f.Platform != nil {
		where = append(where, fmt.Sprintf("i.platforms ? $%d", argIdx))
		args = append(args, *f.Platform)
		argIdx++
	}
	if f.MinFollowers != nil {
		where = append(where, fmt.Sprintf("i.followers_count >= $%d", argIdx))
		args = append(args, *f.MinFollowers)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY i.followers_count DESC, u.name"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, min(f.Limit, MaxInfluencerPage))
		argIdx++
	}
	if f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, f.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []models.InfluencerProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}
