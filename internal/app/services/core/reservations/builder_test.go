package reservations

import (
	"context"
	"errors"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/core/timegrid"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/exceptions"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// staticProber reports the same unavailable slots for every selection and
// counts how often it ran.
func staticProber(calls *int32, unavailable ...models.TimeSlot) proberFunc {
	return func(ctx context.Context, selection models.Selection) (*models.AvailabilityMap, error) {
		atomic.AddInt32(calls, 1)
		return &models.AvailabilityMap{
			RoomID:      selection.RoomID,
			Date:        selection.Date,
			Unavailable: models.NewSlotSet(unavailable...),
		}, nil
	}
}

func okGate(drafts *[]models.ReservationDraft) gateFunc {
	return func(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
		*drafts = append(*drafts, draft)
		return &models.Reservation{ID: 55, Status: "PENDING"}, nil
	}
}

func readyBuilder(t *testing.T, gate gateFunc, probes *int32) *Builder {
	t.Helper()
	builder := NewBuilder(staticProber(probes, "09:00"), gate, timegrid.Default(), zap.NewNop())
	_, err := builder.SelectRoomAndDate(context.Background(), models.Selection{RoomID: "12", Date: "2024-03-01"})
	require.NoError(t, err)
	_, err = builder.UpdateDetails("Sprint review", 8)
	require.NoError(t, err)
	_, err = builder.ChooseSlot("10:00", "11:00")
	require.NoError(t, err)
	require.Equal(t, StateSlotChosen, builder.State())
	return builder
}

func TestBuilderSelection(t *testing.T) {
	var probes int32
	builder := NewBuilder(staticProber(&probes, "09:00"), okGate(new([]models.ReservationDraft)), timegrid.Default(), zap.NewNop())

	initial := builder.Snapshot()
	assert.Equal(t, StateSelectingRoom.String(), initial.State)
	assert.False(t, initial.AvailabilityLoaded)
	assert.Empty(t, initial.SelectableStarts)

	_, err := builder.ChooseSlot("10:00", "")
	assert.Equal(t, constvars.StatusConflict, statusOf(t, err), "no slot before a room is chosen")

	snapshot, err := builder.SelectRoomAndDate(context.Background(), models.Selection{RoomID: "12", Date: "2024-03-01"})
	require.NoError(t, err)

	assert.Equal(t, StateSelectingSlot.String(), snapshot.State)
	assert.True(t, snapshot.AvailabilityLoaded)
	assert.Equal(t, []models.TimeSlot{"09:00"}, snapshot.Unavailable)
	assert.Len(t, snapshot.SelectableStarts, 23)
	assert.NotContains(t, snapshot.SelectableStarts, models.TimeSlot("09:00"))
	assert.NotContains(t, snapshot.SelectableStarts, models.TimeSlot("19:00"))
	assert.Empty(t, snapshot.SelectableEnds, "no end is selectable before a start")
	assert.Equal(t, int32(1), probes)
}

func TestBuilderChooseSlot(t *testing.T) {
	var probes int32
	builder := NewBuilder(staticProber(&probes, "09:00"), okGate(new([]models.ReservationDraft)), timegrid.Default(), zap.NewNop())
	_, err := builder.SelectRoomAndDate(context.Background(), models.Selection{RoomID: "12", Date: "2024-03-01"})
	require.NoError(t, err)

	t.Run("Start only lists the reachable ends", func(t *testing.T) {
		snapshot, err := builder.ChooseSlot("08:00", "")

		require.NoError(t, err)
		assert.Equal(t, StateSelectingSlot.String(), snapshot.State)
		assert.Equal(t, []models.TimeSlot{"08:30", "09:00"}, snapshot.SelectableEnds)
	})

	t.Run("Unavailable start is refused", func(t *testing.T) {
		_, err := builder.ChooseSlot("09:00", "")
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusOf(t, err))
	})

	t.Run("Last slot can never start", func(t *testing.T) {
		_, err := builder.ChooseSlot("19:00", "")
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusOf(t, err))
	})

	t.Run("Range over an unavailable slot is refused", func(t *testing.T) {
		_, err := builder.ChooseSlot("08:00", "09:30")
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusOf(t, err))
	})

	t.Run("Range ending at an unavailable slot is allowed", func(t *testing.T) {
		snapshot, err := builder.ChooseSlot("08:00", "09:00")

		require.NoError(t, err)
		assert.Equal(t, StateSlotChosen.String(), snapshot.State)
		assert.Equal(t, models.TimeSlot("08:00"), snapshot.Start)
		assert.Equal(t, models.TimeSlot("09:00"), snapshot.End)
	})

	t.Run("Changing the date clears the chosen range", func(t *testing.T) {
		snapshot, err := builder.SelectRoomAndDate(context.Background(), models.Selection{RoomID: "12", Date: "2024-03-02"})

		require.NoError(t, err)
		assert.Equal(t, StateSelectingSlot.String(), snapshot.State)
		assert.Empty(t, snapshot.Start)
		assert.Empty(t, snapshot.End)
	})
}

func TestBuilderSubmit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var drafts []models.ReservationDraft
		var probes int32
		builder := readyBuilder(t, okGate(&drafts), &probes)

		snapshot, err := builder.Submit(context.Background())

		require.NoError(t, err)
		assert.Equal(t, StateSubmitted.String(), snapshot.State)
		require.NotNil(t, snapshot.Reservation)
		assert.Equal(t, int64(55), snapshot.Reservation.ID)
		require.Len(t, drafts, 1)
		assert.Equal(t, models.ReservationDraft{
			RoomID:            "12",
			Purpose:           "Sprint review",
			RequestedCapacity: 8,
			Date:              "2024-03-01",
			Start:             "10:00",
			End:               "11:00",
		}, drafts[0])

		_, err = builder.Submit(context.Background())
		assert.Error(t, err, "a submitted draft cannot be sent twice")
	})

	t.Run("Missing details keep the slot", func(t *testing.T) {
		var probes int32
		var drafts []models.ReservationDraft
		builder := NewBuilder(staticProber(&probes), okGate(&drafts), timegrid.Default(), zap.NewNop())
		_, err := builder.SelectRoomAndDate(context.Background(), models.Selection{RoomID: "12", Date: "2024-03-01"})
		require.NoError(t, err)
		_, err = builder.ChooseSlot("10:00", "11:00")
		require.NoError(t, err)

		snapshot, err := builder.Submit(context.Background())

		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		assert.Equal(t, StateSlotChosen.String(), snapshot.State)
		assert.Empty(t, drafts)
	})

	t.Run("Slot taken returns to slot selection with fresh availability", func(t *testing.T) {
		var probes int32
		gate := gateFunc(func(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
			return nil, exceptions.ErrSlotNoLongerAvailable(ErrSlotTaken)
		})
		builder := readyBuilder(t, gate, &probes)

		snapshot, err := builder.Submit(context.Background())

		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.Equal(t, StateSelectingSlot.String(), snapshot.State)
		assert.Empty(t, snapshot.Start)
		assert.Empty(t, snapshot.End)
		assert.Equal(t, constvars.ErrClientSlotNoLongerAvailable, snapshot.Message)
		assert.True(t, snapshot.AvailabilityLoaded)
		assert.Equal(t, int32(2), probes, "availability is re-probed")

		_, err = builder.ChooseSlot("11:00", "12:00")
		assert.NoError(t, err)
	})

	t.Run("Server conflict rejects and allows a new slot", func(t *testing.T) {
		var probes int32
		gate := gateFunc(func(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
			return nil, exceptions.ErrReservationConflict(errors.Join(ErrReservationRejected,
				&exceptions.RemoteAPIError{StatusCode: 409, Detail: "Room is already booked."}))
		})
		builder := readyBuilder(t, gate, &probes)

		snapshot, err := builder.Submit(context.Background())

		assert.ErrorIs(t, err, ErrReservationRejected)
		assert.Equal(t, StateRejected.String(), snapshot.State)
		assert.Equal(t, "Room is already booked.", snapshot.Message)
		assert.NotEmpty(t, snapshot.SelectableStarts)

		chosen, err := builder.ChooseSlot("13:00", "14:00")
		require.NoError(t, err)
		assert.Equal(t, StateSlotChosen.String(), chosen.State)
	})

	t.Run("Other failures allow an explicit resubmit", func(t *testing.T) {
		var probes int32
		var attempts int32
		gate := gateFunc(func(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return nil, exceptions.ErrRemoteAPIResponse(&exceptions.RemoteAPIError{StatusCode: 500, Detail: "database unavailable"})
			}
			return &models.Reservation{ID: 56}, nil
		})
		builder := readyBuilder(t, gate, &probes)

		snapshot, err := builder.Submit(context.Background())
		require.Error(t, err)
		assert.Equal(t, StateFailed.String(), snapshot.State)
		assert.Equal(t, "database unavailable", snapshot.Message)
		assert.Equal(t, models.TimeSlot("10:00"), snapshot.Start, "draft survives a failure")

		snapshot, err = builder.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, StateSubmitted.String(), snapshot.State)
		assert.Equal(t, int32(2), attempts)
	})

	t.Run("A concurrent submission elsewhere keeps the draft", func(t *testing.T) {
		var probes int32
		gate := gateFunc(func(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
			return nil, exceptions.ErrSubmissionInProgress(ErrSubmitLockHeld)
		})
		builder := readyBuilder(t, gate, &probes)

		snapshot, err := builder.Submit(context.Background())

		assert.ErrorIs(t, err, ErrSubmitLockHeld)
		assert.Equal(t, StateSlotChosen.String(), snapshot.State)
	})
}

func TestBuilderWhileSubmitting(t *testing.T) {
	var probes int32
	entered := make(chan struct{})
	release := make(chan struct{})
	gate := gateFunc(func(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
		close(entered)
		<-release
		return &models.Reservation{ID: 1}, nil
	})
	builder := readyBuilder(t, gate, &probes)

	done := make(chan error, 1)
	go func() {
		_, err := builder.Submit(context.Background())
		done <- err
	}()
	<-entered

	assert.Equal(t, StateSubmitting, builder.State())
	_, err := builder.Reset()
	assert.Error(t, err)
	_, err = builder.SelectRoomAndDate(context.Background(), models.Selection{RoomID: "13", Date: "2024-03-01"})
	assert.Error(t, err)
	_, err = builder.ChooseSlot("12:00", "13:00")
	assert.Error(t, err)
	_, err = builder.Submit(context.Background())
	assert.Error(t, err, "no double submission")
	assert.False(t, builder.IdleSince(time.Now().Add(time.Hour)))

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateSubmitted, builder.State())
}

func TestBuilderDiscardsSupersededProbe(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	prober := proberFunc(func(ctx context.Context, selection models.Selection) (*models.AvailabilityMap, error) {
		if selection.RoomID == "1" {
			close(started)
			<-release
			return &models.AvailabilityMap{RoomID: "1", Date: selection.Date, Unavailable: models.NewSlotSet("07:00", "07:30")}, nil
		}
		return &models.AvailabilityMap{RoomID: "2", Date: selection.Date, Unavailable: models.NewSlotSet("15:00")}, nil
	})
	builder := NewBuilder(prober, okGate(new([]models.ReservationDraft)), timegrid.Default(), zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := builder.SelectRoomAndDate(context.Background(), models.Selection{RoomID: "1", Date: "2024-03-01"})
		assert.NoError(t, err)
	}()
	<-started

	latest, err := builder.SelectRoomAndDate(context.Background(), models.Selection{RoomID: "2", Date: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, []models.TimeSlot{"15:00"}, latest.Unavailable)

	close(release)
	wg.Wait()

	final := builder.Snapshot()
	assert.Equal(t, "2", final.RoomID)
	assert.Equal(t, []models.TimeSlot{"15:00"}, final.Unavailable, "the older probe must not overwrite the newer one")
	assert.Equal(t, latest.Generation, final.Generation)
}

func TestBuilderProbeFailure(t *testing.T) {
	prober := proberFunc(func(ctx context.Context, selection models.Selection) (*models.AvailabilityMap, error) {
		return nil, exceptions.ErrServerDeadlineExceeded(context.DeadlineExceeded)
	})
	builder := NewBuilder(prober, okGate(new([]models.ReservationDraft)), timegrid.Default(), zap.NewNop())

	snapshot, err := builder.SelectRoomAndDate(context.Background(), models.Selection{RoomID: "12", Date: "2024-03-01"})

	assert.Equal(t, constvars.StatusGatewayTimeout, statusOf(t, err))
	assert.Equal(t, StateSelectingSlot.String(), snapshot.State)
	assert.False(t, snapshot.AvailabilityLoaded)

	_, err = builder.ChooseSlot("10:00", "11:00")
	assert.Equal(t, constvars.StatusConflict, statusOf(t, err), "slots need availability first")
}

func TestBuilderReset(t *testing.T) {
	var probes int32
	builder := readyBuilder(t, okGate(new([]models.ReservationDraft)), &probes)

	snapshot, err := builder.Reset()

	require.NoError(t, err)
	assert.Equal(t, StateSelectingRoom.String(), snapshot.State)
	assert.Empty(t, snapshot.RoomID)
	assert.Empty(t, snapshot.Purpose)
	assert.False(t, snapshot.AvailabilityLoaded)
}
