package http

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/influencer-hub/backend/internal/auth"
	"github.com/influencer-hub/backend/internal/models"
	"github.com/influencer-hub/backend/internal/repositories"
	"github.com/influencer-hub/backend/internal/sessions"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memDB is an in-memory stand-in for postgres and redis. Slices keep
// insertion order so "newest first" is simply reverse order.
type memDB struct {
	mu          sync.Mutex
	users       []models.User
	influencers []models.Influencer
	campaigns   []models.Campaign
	requests    []models.CampaignRequest
	messages    []models.Message
	tickets     []models.SupportTicket
	audit       []models.AuditLog
	sessions    map[string]sessions.Session
	clock       time.Time
}

func newMemDB() *memDB {
	return &memDB{
		sessions: map[string]sessions.Session{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (db *memDB) now() time.Time {
	db.clock = db.clock.Add(time.Second)
	return db.clock
}

type memUsers struct{ db *memDB }

func (r memUsers) CreateWithProfile(_ context.Context, u *models.User, inf *models.Influencer) error {
	db := r.db
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, existing := range db.users {
		if existing.Email == u.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = db.now()
	db.users = append(db.users, *u)
	if inf != nil {
		inf.ID = uuid.New()
		inf.UserID = u.ID
		inf.Rating = models.DefaultInfluencerRating
		inf.CreatedAt = db.now()
		db.influencers = append(db.influencers, *inf)
	}
	return nil
}

func (r memUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memInfluencers struct{ db *memDB }

func (r memInfluencers) Create(_ context.Context, inf *models.Influencer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	inf.ID = uuid.New()
	inf.Rating = models.DefaultInfluencerRating
	inf.CreatedAt = r.db.now()
	r.db.influencers = append(r.db.influencers, *inf)
	return nil
}

func (r memInfluencers) profile(inf models.Influencer) models.InfluencerProfile {
	p := models.InfluencerProfile{
		ID: inf.ID, UserID: inf.UserID, Category: inf.Category, Followers: inf.Followers,
		FollowersCount: inf.FollowersCount, Rating: inf.Rating, Bio: inf.Bio, Platforms: inf.Platforms,
	}
	for _, u := range r.db.users {
		if u.ID == inf.UserID {
			p.Name, p.Email, p.Avatar = u.Name, u.Email, u.Avatar
		}
	}
	return p
}

func (r memInfluencers) GetByUserID(_ context.Context, userID uuid.UUID) (*models.InfluencerProfile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, inf := range r.db.influencers {
		if inf.UserID == userID {
			p := r.profile(inf)
			return &p, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r memInfluencers) List(_ context.Context, f repositories.InfluencerFilter) ([]models.InfluencerProfile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.InfluencerProfile{}
	for _, inf := range r.db.influencers {
		if f.Category != nil && !strings.EqualFold(inf.Category, *f.Category) {
			continue
		}
		if f.MinFollowers != nil && inf.FollowersCount < *f.MinFollowers {
			continue
		}
		out = append(out, r.profile(inf))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FollowersCount > out[j].FollowersCount })
	return out, nil
}

type memCampaigns struct{ db *memDB }

func (r memCampaigns) Create(_ context.Context, c *models.Campaign) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = r.db.now()
	c.UpdatedAt = c.CreatedAt
	r.db.campaigns = append(r.db.campaigns, *c)
	return nil
}

func (r memCampaigns) find(id uuid.UUID) *models.Campaign {
	for i := range r.db.campaigns {
		if r.db.campaigns[i].ID == id {
			return &r.db.campaigns[i]
		}
	}
	return nil
}

func (r memCampaigns) GetByID(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if c := r.find(id); c != nil {
		cp := *c
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (r memCampaigns) ListByBrand(_ context.Context, brandID uuid.UUID) ([]models.Campaign, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.Campaign{}
	for i := len(r.db.campaigns) - 1; i >= 0; i-- {
		if r.db.campaigns[i].BrandID == brandID {
			out = append(out, r.db.campaigns[i])
		}
	}
	return out, nil
}

func (r memCampaigns) UpdateStatus(_ context.Context, id uuid.UUID, from, to string) (*models.Campaign, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c := r.find(id)
	if c == nil || c.Status != from {
		return nil, pgx.ErrNoRows
	}
	c.Status = to
	c.UpdatedAt = r.db.now()
	cp := *c
	return &cp, nil
}

type memRequests struct{ db *memDB }

func (r memRequests) Create(_ context.Context, cr *models.CampaignRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cr.ID = uuid.New()
	cr.CreatedAt = r.db.now()
	cr.UpdatedAt = cr.CreatedAt
	r.db.requests = append(r.db.requests, *cr)
	return nil
}

func (r memRequests) find(id uuid.UUID) *models.CampaignRequest {
	for i := range r.db.requests {
		if r.db.requests[i].ID == id {
			return &r.db.requests[i]
		}
	}
	return nil
}

func (r memRequests) GetByID(_ context.Context, id uuid.UUID) (*models.CampaignRequest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if cr := r.find(id); cr != nil {
		cp := *cr
		return &cp, nil
	}
	return nil, pgx.ErrNoRows
}

func (r memRequests) ListByInfluencer(_ context.Context, influencerID uuid.UUID) ([]models.CampaignRequestWithCampaign, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.CampaignRequestWithCampaign{}
	for i := len(r.db.requests) - 1; i >= 0; i-- {
		cr := r.db.requests[i]
		if cr.InfluencerID != influencerID {
			continue
		}
		item := models.CampaignRequestWithCampaign{CampaignRequest: cr}
		if c := (memCampaigns{r.db}).find(cr.CampaignID); c != nil {
			item.Campaign = *c
		}
		out = append(out, item)
	}
	return out, nil
}

func (r memRequests) ListByCampaign(_ context.Context, campaignID uuid.UUID) ([]models.CampaignRequestWithInfluencer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.CampaignRequestWithInfluencer{}
	for i := len(r.db.requests) - 1; i >= 0; i-- {
		cr := r.db.requests[i]
		if cr.CampaignID != campaignID {
			continue
		}
		item := models.CampaignRequestWithInfluencer{CampaignRequest: cr}
		for _, inf := range r.db.influencers {
			if inf.UserID == cr.InfluencerID {
				p := (memInfluencers{r.db}).profile(inf)
				item.Influencer = &p
				break
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (r memRequests) UpdateStatus(_ context.Context, id uuid.UUID, from, to string) (*models.CampaignRequest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cr := r.find(id)
	if cr == nil || cr.Status != from {
		return nil, pgx.ErrNoRows
	}
	cr.Status = to
	cr.UpdatedAt = r.db.now()
	cp := *cr
	return &cp, nil
}

type memMessages struct{ db *memDB }

func (r memMessages) Create(_ context.Context, m *models.Message) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	m.ID = uuid.New()
	m.CreatedAt = r.db.now()
	r.db.messages = append(r.db.messages, *m)
	return nil
}

func (r memMessages) GetByID(_ context.Context, id uuid.UUID) (*models.Message, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, m := range r.db.messages {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r memMessages) list(keep func(models.Message) bool) []models.Message {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.Message{}
	for i := len(r.db.messages) - 1; i >= 0; i-- {
		if keep(r.db.messages[i]) {
			out = append(out, r.db.messages[i])
		}
	}
	return out
}

func (r memMessages) List(_ context.Context) ([]models.Message, error) {
	return r.list(func(models.Message) bool { return true }), nil
}

func (r memMessages) ListBySender(_ context.Context, senderID uuid.UUID) ([]models.Message, error) {
	return r.list(func(m models.Message) bool { return m.SenderID == senderID }), nil
}

func (r memMessages) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*models.Message, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.messages {
		if r.db.messages[i].ID == id {
			r.db.messages[i].Status = status
			m := r.db.messages[i]
			return &m, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memTickets struct{ db *memDB }

func (r memTickets) Create(_ context.Context, t *models.SupportTicket) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t.ID = uuid.New()
	t.CreatedAt = r.db.now()
	r.db.tickets = append(r.db.tickets, *t)
	return nil
}

func (r memTickets) List(_ context.Context) ([]models.SupportTicket, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.SupportTicket{}
	for i := len(r.db.tickets) - 1; i >= 0; i-- {
		out = append(out, r.db.tickets[i])
	}
	return out, nil
}

type memAudit struct{ db *memDB }

func (r memAudit) Log(_ context.Context, entry models.AuditLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	entry.ID = uuid.New()
	entry.CreatedAt = r.db.now()
	r.db.audit = append(r.db.audit, entry)
	return nil
}

func (r memAudit) GetByEntity(_ context.Context, entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.AuditLog{}
	for i := len(r.db.audit) - 1; i >= 0; i-- {
		e := r.db.audit[i]
		if e.EntityType == entityType && e.EntityID != nil && *e.EntityID == entityID {
			out = append(out, e)
		}
	}
	if offset >= len(out) {
		return []models.AuditLog{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memSessions struct{ db *memDB }

func (s memSessions) Create(_ context.Context, sess sessions.Session) (string, error) {
	token, err := auth.NewSessionToken()
	if err != nil {
		return "", err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.sessions[token] = sess
	return token, nil
}

func (s memSessions) Get(_ context.Context, token string) (*sessions.Session, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	sess, ok := s.db.sessions[token]
	if !ok {
		return nil, sessions.ErrNotFound
	}
	return &sess, nil
}

func (s memSessions) Delete(_ context.Context, token string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	delete(s.db.sessions, token)
	return nil
}
