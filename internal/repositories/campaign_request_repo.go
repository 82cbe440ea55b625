package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRequestRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRequestRepo(pool *pgxpool.Pool) *CampaignRequestRepo {
	return &CampaignRequestRepo{pool: pool}
}

const requestColumns = `id, campaign_id, influencer_id, status, budget, created_at, updated_at`

func scanRequest(row pgx.Row) (*models.CampaignRequest, error) {
	var cr models.CampaignRequest
	err := row.Scan(&cr.ID, &cr.CampaignID, &cr.InfluencerID, &cr.Status, &cr.Budget, &cr.CreatedAt, &cr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *CampaignRequestRepo) Create(ctx context.Context, cr *models.CampaignRequest) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaign_requests (campaign_id, influencer_id, status, budget)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, cr.CampaignID, cr.InfluencerID, cr.Status, cr.Budget).Scan(&cr.ID, &cr.CreatedAt, &cr.UpdatedAt)
}

func (r *CampaignRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CampaignRequest, error) {
	return scanRequest(r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM campaign_requests WHERE id = $1`, id))
}

// ListByInfluencer returns the influencer's requests joined with their campaign, newest first.
func (r *CampaignRequestRepo) ListByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]models.CampaignRequestWithCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cr.id, cr.campaign_id, cr.influencer_id, cr.status, cr.budget, cr.created_at, cr.updated_at,
		       c.id, c.brand_id, c.product_name, c.product_desc, c.target_audience, c.platform,
		       c.status, c.budget, c.created_at, c.updated_at
		FROM campaign_requests cr
		JOIN campaigns c ON c.id = cr.campaign_id
		WHERE cr.influencer_id = $1
		ORDER BY cr.created_at DESC
	`, influencerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.CampaignRequestWithCampaign{}
	for rows.Next() {
		var item models.CampaignRequestWithCampaign
		cr, c := &item.CampaignRequest, &item.Campaign
		if err := rows.Scan(
			&cr.ID, &cr.CampaignID, &cr.InfluencerID, &cr.Status, &cr.Budget, &cr.CreatedAt, &cr.UpdatedAt,
			&c.ID, &c.BrandID, &c.ProductName, &c.ProductDesc, &c.TargetAudience, &c.Platform,
			&c.Status, &c.Budget, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// ListByCampaign returns the campaign's requests with the influencer profile
// when one exists.
func (r *CampaignRequestRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.CampaignRequestWithInfluencer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cr.id, cr.campaign_id, cr.influencer_id, cr.status, cr.budget, cr.created_at, cr.updated_at,
		       p.id, u.name, u.email, p.category, p.followers, p.followers_count,
		       p.rating, p.bio, p.platforms, u.avatar
		FROM campaign_requests cr
		JOIN users u ON u.id = cr.influencer_id
		LEFT JOIN LATERAL (
			SELECT * FROM influencers i WHERE i.user_id = cr.influencer_id ORDER BY i.created_at LIMIT 1
		) p ON true
		WHERE cr.campaign_id = $1
		ORDER BY cr.created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []models.CampaignRequestWithInfluencer{}
	for rows.Next() {
		var (
			item           models.CampaignRequestWithInfluencer
			profileID      *uuid.UUID
			name, email    string
			category       *string
			followers      *string
			followersCount *int64
			rating         *string
			bio            *string
			platforms      []byte
			avatar         *string
		)
		cr := &item.CampaignRequest
		if err := rows.Scan(
			&cr.ID, &cr.CampaignID, &cr.InfluencerID, &cr.Status, &cr.Budget, &cr.CreatedAt, &cr.UpdatedAt,
			&profileID, &name, &email, &category, &followers, &followersCount,
			&rating, &bio, &platforms, &avatar,
		); err != nil {
			return nil, err
		}

		if profileID != nil {
			p := &models.InfluencerProfile{
				ID:        *profileID,
				UserID:    cr.InfluencerID,
				Name:      name,
				Email:     email,
				Followers: followers,
				Bio:       bio,
				Avatar:    avatar,
				Platforms: []string{},
			}
			if category != nil {
				p.Category = *category
			}
			if followersCount != nil {
				p.FollowersCount = *followersCount
			}
			if rating != nil {
				p.Rating = *rating
			}
			if len(platforms) > 0 {
				if err := json.Unmarshal(platforms, &p.Platforms); err != nil {
					return nil, err
				}
			}
			item.Influencer = p
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// UpdateStatus moves the request from one status to another. It returns
// pgx.ErrNoRows when the request does not exist or is no longer in from.
func (r *CampaignRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (*models.CampaignRequest, error) {
	return scanRequest(r.pool.QueryRow(ctx, `
		UPDATE campaign_requests SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
		RETURNING `+requestColumns, to, id, from))
}
