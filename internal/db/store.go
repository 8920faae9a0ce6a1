package db

import (
	"context"
	"sync"
	"time"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/models"
)

// Store defines the interface for preference persistence
type Store interface {
	// GetPreference returns nil, nil when the client has no stored preference
	GetPreference(ctx context.Context, clientID string) (*models.Preference, error)
	SavePreference(ctx context.Context, pref *models.Preference) error
	Close() error
}

// MemoryStore keeps preferences for the life of the process
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int
	prefs  map[string]models.Preference
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]models.Preference)}
}

func (s *MemoryStore) GetPreference(ctx context.Context, clientID string) (*models.Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pref, ok := s.prefs[clientID]
	if !ok {
		return nil, nil
	}
	return &pref, nil
}

func (s *MemoryStore) SavePreference(ctx context.Context, pref *models.Preference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.prefs[pref.ClientID]; ok {
		pref.ID = existing.ID
		pref.CreatedAt = existing.CreatedAt
	} else {
		s.nextID++
		pref.ID = s.nextID
		pref.CreatedAt = now
	}
	pref.UpdatedAt = now
	s.prefs[pref.ClientID] = *pref
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
