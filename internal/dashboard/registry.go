package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/analytics"
	apperrors "github.com/Kamar-Folarin/portfolio-analytics/internal/errors"
)

// Registry keeps one dashboard per viewer session.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Dashboard
	data     *analytics.Dataset
	opts     Options
	logger   *logrus.Logger
}

// NewRegistry creates an empty registry over data.
func NewRegistry(data *analytics.Dataset, opts Options, logger *logrus.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Dashboard),
		data:     data,
		opts:     opts,
		logger:   logger,
	}
}

// Data returns the shared dataset.
func (r *Registry) Data() *analytics.Dataset {
	return r.data
}

// Create starts a new session.
func (r *Registry) Create() *Dashboard {
	d := New(uuid.NewString(), r.data, r.opts)
	r.mu.Lock()
	r.sessions[d.ID] = d
	r.mu.Unlock()
	r.logger.WithField("session", d.ID).Debug("Created dashboard session")
	return d
}

// Preview returns an unregistered dashboard in its initial state.
func (r *Registry) Preview() *Dashboard {
	return New("", r.data, r.opts)
}

// Get returns the session with id.
func (r *Registry) Get(id string) (*Dashboard, error) {
	r.mu.RLock()
	d, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("session", id)
	}
	return d, nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Prune drops sessions idle since before cutoff and returns how many.
func (r *Registry) Prune(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, d := range r.sessions {
		if d.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor prunes sessions idle for longer than ttl every interval
// until ctx is cancelled.
func (r *Registry) StartJanitor(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := r.Prune(time.Now().Add(-ttl)); n > 0 {
				r.logger.WithField("removed", n).Info("Pruned idle dashboard sessions")
			}
		case <-ctx.Done():
			r.logger.Info("Stopping session janitor")
			return
		}
	}
}
