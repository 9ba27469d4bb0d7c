package reservations

import (
	"sirsak-service/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry holds one Builder per user for the lifetime of the process.
type Registry struct {
	mu       sync.Mutex
	builders map[string]*Builder
	factory  func() *Builder
	Log      *zap.Logger
}

func NewRegistry(factory func() *Builder, logger *zap.Logger) *Registry {
	return &Registry{
		builders: make(map[string]*Builder),
		factory:  factory,
		Log:      logger,
	}
}

// Get returns the user's builder, creating it on first use.
func (r *Registry) Get(userID string) *Builder {
	r.mu.Lock()
	defer r.mu.Unlock()

	builder, ok := r.builders[userID]
	if !ok {
		builder = r.factory()
		r.builders[userID] = builder
	}
	return builder
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.builders)
}

// Sweep drops builders untouched for longer than idleTTL and returns how
// many were dropped.
func (r *Registry) Sweep(now time.Time, idleTTL time.Duration) int {
	cutoff := now.Add(-idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for userID, builder := range r.builders {
		if builder.IdleSince(cutoff) {
			delete(r.builders, userID)
			removed++
		}
	}
	if removed > 0 {
		r.Log.Info("builderRegistry.Sweep removed idle builders",
			zap.Int(constvars.LoggingItemCountKey, removed),
		)
	}
	return removed
}
