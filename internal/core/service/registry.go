package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clubebrotos/consultant-portal/internal/core/domain"
	"github.com/clubebrotos/consultant-portal/internal/core/ports"
	"github.com/clubebrotos/consultant-portal/internal/pkg/metrics"
)

const defaultIdleTTL = 30 * time.Minute

type registryEntry struct {
	ctrl     ports.SessionController
	lastSeen time.Time
}

// Registry keeps one SessionController per connected client, keyed by a
// random client id. Controllers live in memory only.
type Registry struct {
	factory func() ports.SessionController
	idleTTL time.Duration
	now     func() time.Time
	log     zerolog.Logger

	mu      sync.Mutex
	clients map[string]*registryEntry
}

// NewRegistry creates a Registry building controllers with factory. Clients
// idle for longer than idleTTL are dropped by Sweep.
func NewRegistry(factory func() ports.SessionController, idleTTL time.Duration, log zerolog.Logger) *Registry {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &Registry{
		factory: factory,
		idleTTL: idleTTL,
		now:     time.Now,
		log:     log,
		clients: make(map[string]*registryEntry),
	}
}

// Create registers a fresh controller under a new client id.
func (r *Registry) Create() (string, ports.SessionController) {
	id := uuid.NewString()
	ctrl := r.factory()

	r.mu.Lock()
	r.clients[id] = &registryEntry{ctrl: ctrl, lastSeen: r.now()}
	r.mu.Unlock()

	metrics.ActiveClients.Inc()
	return id, ctrl
}

// Get returns the controller for clientID and marks it as recently used.
func (r *Registry) Get(clientID string) (ports.SessionController, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.clients[clientID]
	if !ok {
		return nil, domain.ErrUnknownClient
	}
	e.lastSeen = r.now()
	return e.ctrl, nil
}

// Remove forgets clientID. Unknown ids are ignored.
func (r *Registry) Remove(clientID string) {
	r.mu.Lock()
	_, ok := r.clients[clientID]
	delete(r.clients, clientID)
	r.mu.Unlock()

	if ok {
		metrics.ActiveClients.Dec()
	}
}

// Len returns the number of registered clients.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Sweep drops clients idle for longer than the idle TTL and returns how many
// were removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	removed := 0
	for id, e := range r.clients {
		if e.lastSeen.Before(cutoff) {
			delete(r.clients, id)
			removed++
		}
	}
	r.mu.Unlock()

	if removed > 0 {
		metrics.ActiveClients.Sub(float64(removed))
		r.log.Debug().Int("removed", removed).Msg("idle portal clients swept")
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Sweep()
		}
	}
}
