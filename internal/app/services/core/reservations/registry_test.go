package reservations

import (
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/core/timegrid"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRegistry(t *testing.T) {
	var probes int32
	factory := func() *Builder {
		return NewBuilder(staticProber(&probes), okGate(new([]models.ReservationDraft)), timegrid.Default(), zap.NewNop())
	}

	t.Run("One builder per user", func(t *testing.T) {
		registry := NewRegistry(factory, zap.NewNop())

		first := registry.Get("7")
		assert.Same(t, first, registry.Get("7"))
		assert.NotSame(t, first, registry.Get("8"))
		assert.Equal(t, 2, registry.Len())
	})

	t.Run("Sweep drops idle builders only", func(t *testing.T) {
		registry := NewRegistry(factory, zap.NewNop())
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		idle := registry.Get("idle")
		idle.now = func() time.Time { return now.Add(-2 * time.Hour) }
		idle.UpdateDetails("old", 1)

		active := registry.Get("active")
		active.now = func() time.Time { return now.Add(-time.Minute) }
		active.UpdateDetails("new", 1)

		removed := registry.Sweep(now, 30*time.Minute)

		assert.Equal(t, 1, removed)
		assert.Equal(t, 1, registry.Len())
		assert.Same(t, active, registry.Get("active"))
	})
}
