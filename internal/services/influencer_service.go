package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/influencer-hub/backend/internal/repositories"
	"github.com/influencer-hub/backend/internal/textparse"
	"go.uber.org/zap"
)

type InfluencerService struct {
	influencerRepo InfluencerRepository
	log            *zap.Logger
}

func NewInfluencerService(influencerRepo InfluencerRepository, log *zap.Logger) *InfluencerService {
	return &InfluencerService{influencerRepo: influencerRepo, log: log}
}

type CreateInfluencerInput struct {
	Category  string
	Followers *string
	Bio       *string
	Platforms []string
}

func (s *InfluencerService) Create(ctx context.Context, actor Actor, in CreateInfluencerInput) (*models.Influencer, error) {
	if actor.Role != models.RoleInfluencer {
		return nil, forbidden("only influencers can create a profile")
	}

	category, err := label("category", in.Category)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return nil, invalid("category is required")
	}
	platforms, err := normalizePlatforms(in.Platforms)
	if err != nil {
		return nil, err
	}

	if _, err := s.influencerRepo.GetByUserID(ctx, actor.UserID); err == nil {
		return nil, invalid("Influencer profile already exists")
	} else if !repositories.IsNotFound(err) {
		return nil, err
	}

	inf := &models.Influencer{
		UserID:    actor.UserID,
		Category:  category,
		Followers: textparse.Optional(in.Followers),
		Bio:       textparse.Optional(in.Bio),
		Platforms: platforms,
	}
	if inf.Followers != nil {
		inf.FollowersCount = textparse.ParseCount(*inf.Followers)
	}

	if err := s.influencerRepo.Create(ctx, inf); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, unauthorized(MsgNotAuthenticated)
		}
		return nil, err
	}

	s.log.Info("influencer profile created",
		zap.String("user_id", actor.UserID.String()),
		zap.String("category", category),
	)
	return inf, nil
}

func (s *InfluencerService) Get(ctx context.Context, userID uuid.UUID) (*models.InfluencerProfile, error) {
	p, err := s.influencerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, notFound(MsgInfluencerNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (s *InfluencerService) List(ctx context.Context, f repositories.InfluencerFilter) ([]models.InfluencerProfile, error) {
	if f.Limit < 0 || f.Offset < 0 {
		return nil, invalid("limit and offset must not be negative")
	}
	return s.influencerRepo.List(ctx, f)
}

// normalizePlatforms trims, drops empties and removes case-insensitive
// duplicates, keeping the first spelling.
func normalizePlatforms(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, p := range in {
		p, err := label("platforms", p)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(p)
		if p == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out, nil
}
