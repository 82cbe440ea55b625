package client

import (
	"sync"

	"github.com/influencer-hub/backend/internal/models"
)

// CampaignDraft is the campaign creation form as the user fills it in over
// several steps.
type CampaignDraft struct {
	ProductName    string
	ProductDesc    string
	TargetAudience string
	Platform       string
	Budget         *int
}

func (d CampaignDraft) IsEmpty() bool {
	return d.ProductName == "" && d.ProductDesc == "" && d.TargetAudience == "" &&
		d.Platform == "" && d.Budget == nil
}

// Store holds client state: the signed-in user and the in-progress campaign
// draft. Create one per application run with NewStore and Clear it on logout.
type Store struct {
	mu    sync.RWMutex
	user  *models.UserSummary
	draft CampaignDraft
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SetUser(u models.UserSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// User returns a copy of the current user.
func (s *Store) User() (models.UserSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.UserSummary{}, false
	}
	return *s.user, true
}

func (s *Store) Draft() CampaignDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

func (s *Store) UpdateDraft(fn func(d *CampaignDraft)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.draft)
}

func (s *Store) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = CampaignDraft{}
}

// Clear drops both the user and the draft.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.draft = CampaignDraft{}
}
