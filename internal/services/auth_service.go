package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/auth"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/influencer-hub/backend/internal/repositories"
	"github.com/influencer-hub/backend/internal/sessions"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo UserRepository
	sessions sessions.Store
	isAdmin  func(email string) bool
	log      *zap.Logger
}

func NewAuthService(userRepo UserRepository, store sessions.Store, isAdmin func(string) bool, log *zap.Logger) *AuthService {
	if isAdmin == nil {
		isAdmin = func(string) bool { return false }
	}
	return &AuthService{
		userRepo: userRepo,
		sessions: store,
		isAdmin:  isAdmin,
		log:      log,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	Category *string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the user, its influencer profile when the role asks for
// one, and a session. It returns the new user and the session token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	email := normalizeEmail(in.Email)
	name, err := label("name", in.Name)
	if err != nil {
		return nil, "", err
	}
	if email == "" || name == "" {
		return nil, "", invalid("email and name are required")
	}
	if len(in.Password) < 6 {
		return nil, "", invalid("password must be at least 6 characters")
	}
	if !models.IsValidRole(in.Role) {
		return nil, "", invalid("role must be one of: customer, influencer")
	}

	var profile *models.Influencer
	if in.Role == models.RoleInfluencer {
		category, err := label("category", deref(in.Category))
		if err != nil {
			return nil, "", err
		}
		if category == "" {
			return nil, "", invalid("category is required for influencers")
		}
		profile = &models.Influencer{Category: category, Platforms: []string{}}
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailInUse
	} else if !repositories.IsNotFound(err) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         in.Role,
	}
	if err := s.userRepo.CreateWithProfile(ctx, u, profile); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, "", ErrEmailInUse
		}
		return nil, "", err
	}

	s.log.Info("user registered", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))

	token, err := s.startSession(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login never tells an unknown email apart from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.startSession(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Me loads the session's user. A session that outlived its user is treated
// as unauthenticated.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, unauthorized(MsgNotAuthenticated)
		}
		return nil, err
	}
	return u, nil
}

// Authenticate resolves a session token into the acting user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Actor, error) {
	if token == "" {
		return nil, unauthorized(MsgNotAuthenticated)
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return nil, unauthorized(MsgNotAuthenticated)
		}
		return nil, err
	}
	return &Actor{UserID: sess.UserID, Role: sess.UserRole, Admin: sess.Admin}, nil
}

func (s *AuthService) startSession(ctx context.Context, u *models.User) (string, error) {
	return s.sessions.Create(ctx, sessions.Session{
		UserID:    u.ID,
		UserRole:  u.Role,
		Admin:     s.isAdmin(u.Email),
		CreatedAt: time.Now().UTC(),
	})
}
