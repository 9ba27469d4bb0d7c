package reservations

import (
	"context"
	"errors"
	"fmt"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/core/availability"
	"sirsak-service/internal/app/services/core/slotrange"
	"sirsak-service/internal/app/services/core/timegrid"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/responses"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type State string

const (
	StateSelectingRoom State = "SELECTING_ROOM"
	StateSelectingSlot State = "SELECTING_SLOT"
	StateSlotChosen    State = "SLOT_CHOSEN"
	StateSubmitting    State = "SUBMITTING"
	StateSubmitted     State = "SUBMITTED"
	StateRejected      State = "REJECTED"
	StateFailed        State = "FAILED"
)

func (s State) String() string {
	return string(s)
}

// canChooseSlot lists the states a slot may be (re)chosen from. REJECTED and
// FAILED loop back into slot selection.
func (s State) canChooseSlot() bool {
	switch s {
	case StateSelectingSlot, StateSlotChosen, StateRejected, StateFailed:
		return true
	}
	return false
}

func (s State) canSubmit() bool {
	return s == StateSlotChosen || s == StateFailed
}

// Builder is one user's reservation flow. Every exported method is safe for
// concurrent use; network calls run without holding the lock, and a probe
// result is applied only while its ticket is still current.
type Builder struct {
	mu      sync.Mutex
	prober  contracts.AvailabilityProber
	gate    contracts.SubmissionGate
	grid    *timegrid.Grid
	tracker *availability.Tracker

	state        State
	selection    models.Selection
	availability *models.AvailabilityMap
	start        models.TimeSlot
	end          models.TimeSlot
	purpose      string
	capacity     int
	message      string
	reservation  *models.Reservation
	lastActive   time.Time

	now func() time.Time
	Log *zap.Logger
}

func NewBuilder(prober contracts.AvailabilityProber, gate contracts.SubmissionGate, grid *timegrid.Grid, logger *zap.Logger) *Builder {
	return &Builder{
		prober:     prober,
		gate:       gate,
		grid:       grid,
		tracker:    availability.NewTracker(),
		state:      StateSelectingRoom,
		now:        time.Now,
		lastActive: time.Now(),
		Log:        logger,
	}
}

func (b *Builder) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Builder) Snapshot() *responses.ReservationBuilder {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// SelectRoomAndDate discards everything derived from the previous selection
// and probes the new one. If another selection arrives while the probe is in
// flight, this probe's result is dropped.
func (b *Builder) SelectRoomAndDate(ctx context.Context, selection models.Selection) (*responses.ReservationBuilder, error) {
	b.mu.Lock()
	if b.state == StateSubmitting {
		defer b.mu.Unlock()
		return b.snapshotLocked(), exceptions.ErrInvalidBuilderTransition(nil, b.state.String())
	}
	ticket := b.tracker.Begin(selection)
	b.selection = selection
	b.state = StateSelectingSlot
	b.availability = nil
	b.start, b.end = "", ""
	b.message = ""
	b.reservation = nil
	b.touchLocked()
	b.mu.Unlock()

	return b.probe(ctx, ticket)
}

// ChooseSlot sets the start and, when end is non-empty, the end of the range.
func (b *Builder) ChooseSlot(start, end models.TimeSlot) (*responses.ReservationBuilder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.touchLocked()

	if !b.state.canChooseSlot() {
		return b.snapshotLocked(), exceptions.ErrInvalidBuilderTransition(nil, b.state.String())
	}
	if b.availability == nil {
		return b.snapshotLocked(), exceptions.ErrAvailabilityNotLoaded(nil)
	}

	unavailable := b.availability.Unavailable
	if !slotrange.IsStartSelectable(b.grid, unavailable, start) {
		return b.snapshotLocked(), exceptions.ErrSlotNotSelectable(startError(b.grid, unavailable, start))
	}

	if end == "" {
		b.start, b.end = start, ""
		b.state = StateSelectingSlot
		b.message = ""
		return b.snapshotLocked(), nil
	}

	if err := slotrange.ValidateRange(b.grid, unavailable, start, end); err != nil {
		return b.snapshotLocked(), exceptions.ErrSlotNotSelectable(err)
	}
	b.start, b.end = start, end
	b.state = StateSlotChosen
	b.message = ""
	return b.snapshotLocked(), nil
}

func (b *Builder) UpdateDetails(purpose string, requestedCapacity int) (*responses.ReservationBuilder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.touchLocked()

	if b.state == StateSubmitting || b.state == StateSubmitted {
		return b.snapshotLocked(), exceptions.ErrInvalidBuilderTransition(nil, b.state.String())
	}
	b.purpose = purpose
	b.capacity = requestedCapacity
	return b.snapshotLocked(), nil
}

// Submit runs the draft through the gate. A slot taken since probing returns
// the builder to SELECTING_SLOT and a server conflict to REJECTED; both clear
// the chosen range and refresh availability.
func (b *Builder) Submit(ctx context.Context) (*responses.ReservationBuilder, error) {
	requestID := utils.GetRequestID(ctx)

	b.mu.Lock()
	b.touchLocked()
	if !b.state.canSubmit() {
		defer b.mu.Unlock()
		return b.snapshotLocked(), exceptions.ErrInvalidBuilderTransition(nil, b.state.String())
	}
	draft := b.draftLocked()
	if err := utils.ValidateStruct(draft); err != nil {
		defer b.mu.Unlock()
		return b.snapshotLocked(), exceptions.ErrInputValidation(err)
	}
	previous := b.state
	b.state = StateSubmitting
	b.message = ""
	b.mu.Unlock()

	var reservation *models.Reservation
	err := utils.LogOperation(b.Log, "reservationBuilder.Submit", requestID, func() error {
		var submitErr error
		reservation, submitErr = b.gate.Submit(ctx, draft)
		return submitErr
	})

	b.mu.Lock()
	reprobe := false
	switch {
	case err == nil:
		b.state = StateSubmitted
		b.reservation = reservation
	case errors.Is(err, ErrSlotTaken):
		b.state = StateSelectingSlot
		b.start, b.end = "", ""
		b.message = clientMessage(err)
		reprobe = true
	case errors.Is(err, ErrReservationRejected):
		b.state = StateRejected
		b.start, b.end = "", ""
		b.message = clientMessage(err)
		reprobe = true
	case errors.Is(err, ErrSubmitLockHeld), errors.Is(err, ErrSubmitThrottled):
		b.state = previous
		b.message = clientMessage(err)
	default:
		b.state = StateFailed
		b.message = clientMessage(err)
	}
	b.Log.Info("reservationBuilder.Submit finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoomIDKey, draft.RoomID),
		zap.String(constvars.LoggingBuilderStateKey, b.state.String()),
		zap.Error(err),
	)

	if !reprobe {
		defer b.mu.Unlock()
		return b.snapshotLocked(), err
	}
	ticket := b.tracker.Begin(b.selection)
	b.availability = nil
	b.mu.Unlock()

	// refreshed availability is best effort; the gate outcome is what we report
	snapshot, _ := b.probe(ctx, ticket)
	return snapshot, err
}

// Reset returns the builder to SELECTING_ROOM with an empty draft.
func (b *Builder) Reset() (*responses.ReservationBuilder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateSubmitting {
		return b.snapshotLocked(), exceptions.ErrInvalidBuilderTransition(nil, b.state.String())
	}
	b.tracker.Invalidate()
	b.state = StateSelectingRoom
	b.selection = models.Selection{}
	b.availability = nil
	b.start, b.end = "", ""
	b.purpose, b.capacity = "", 0
	b.message = ""
	b.reservation = nil
	b.touchLocked()
	return b.snapshotLocked(), nil
}

// IdleSince reports whether the builder has been untouched since cutoff. A
// builder mid-submission is never idle.
func (b *Builder) IdleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state != StateSubmitting && b.lastActive.Before(cutoff)
}

func (b *Builder) probe(ctx context.Context, ticket availability.Ticket) (*responses.ReservationBuilder, error) {
	var result *models.AvailabilityMap
	err := utils.LogOperation(b.Log, "reservationBuilder.probe", utils.GetRequestID(ctx), func() error {
		var probeErr error
		result, probeErr = b.prober.Probe(ctx, ticket.Selection)
		return probeErr
	})

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.tracker.IsCurrent(ticket) {
		b.Log.Debug("reservationBuilder.probe discarding superseded result",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRoomIDKey, ticket.Selection.RoomID),
			zap.String(constvars.LoggingDateKey, ticket.Selection.Date),
			zap.Uint64(constvars.LoggingGenerationKey, ticket.Generation),
		)
		return b.snapshotLocked(), nil
	}
	if err != nil {
		return b.snapshotLocked(), err
	}

	result.Generation = ticket.Generation
	b.availability = result
	return b.snapshotLocked(), nil
}

func (b *Builder) draftLocked() models.ReservationDraft {
	return models.ReservationDraft{
		RoomID:            b.selection.RoomID,
		Purpose:           b.purpose,
		RequestedCapacity: b.capacity,
		Date:              b.selection.Date,
		Start:             b.start,
		End:               b.end,
	}
}

func (b *Builder) touchLocked() {
	b.lastActive = b.now()
}

func (b *Builder) snapshotLocked() *responses.ReservationBuilder {
	snapshot := &responses.ReservationBuilder{
		State:             b.state.String(),
		RoomID:            b.selection.RoomID,
		Date:              b.selection.Date,
		Generation:        b.tracker.Generation(),
		Unavailable:       []models.TimeSlot{},
		SelectableStarts:  []models.TimeSlot{},
		SelectableEnds:    []models.TimeSlot{},
		Start:             b.start,
		End:               b.end,
		Purpose:           b.purpose,
		RequestedCapacity: b.capacity,
		Message:           b.message,
		Reservation:       b.reservation,
	}
	if b.availability == nil {
		return snapshot
	}

	unavailable := b.availability.Unavailable
	snapshot.AvailabilityLoaded = true
	snapshot.Unavailable = unavailable.Sorted()
	if b.state.canChooseSlot() {
		snapshot.SelectableStarts = slotrange.SelectableStarts(b.grid, unavailable)
		if b.start != "" {
			snapshot.SelectableEnds = slotrange.SelectableEnds(b.grid, unavailable, b.start)
		}
	}
	return snapshot
}

func startError(grid *timegrid.Grid, unavailable models.SlotSet, start models.TimeSlot) error {
	i, ok := grid.Index(start)
	switch {
	case !ok:
		return fmt.Errorf("start %q: %w", start, slotrange.ErrOffGrid)
	case i == grid.Len()-1:
		return fmt.Errorf("start %s: %w", start, slotrange.ErrNoEndAfterStart)
	case unavailable.Contains(start):
		return fmt.Errorf("start %s: %w", start, slotrange.ErrStartUnavailable)
	}
	return nil
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}
