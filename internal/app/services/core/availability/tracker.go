package availability

import (
	"sirsak-service/internal/app/models"
	"sync"
)

// Ticket identifies one probe request. It stays current until the selection
// changes again.
type Ticket struct {
	Generation uint64
	Selection  models.Selection
}

// Tracker implements last-request-wins for probes: every new selection bumps
// the generation, and only a result carrying the latest ticket may be applied.
type Tracker struct {
	mu         sync.Mutex
	generation uint64
	selection  models.Selection
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Begin(selection models.Selection) Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	t.selection = selection
	return Ticket{Generation: t.generation, Selection: selection}
}

// Invalidate drops the current selection so that no outstanding probe result
// can be applied.
func (t *Tracker) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	t.selection = models.Selection{}
}

func (t *Tracker) IsCurrent(ticket Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ticket.Generation == t.generation && ticket.Selection == t.selection
}

func (t *Tracker) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}
