package availability

import (
	"context"
	"errors"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/core/timegrid"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrRoomRequired = errors.New("room is required")

// Prober checks every grid interval of a room and date against the
// reservation API. Checks run concurrently and fail closed: an interval whose
// check errors or times out is treated as unavailable.
type Prober struct {
	checker      contracts.RoomAvailabilityChecker
	grid         *timegrid.Grid
	location     *time.Location
	probeTimeout time.Duration
	concurrency  int
	Log          *zap.Logger
}

func NewProber(checker contracts.RoomAvailabilityChecker, grid *timegrid.Grid, location *time.Location, probeTimeout time.Duration, concurrency int, logger *zap.Logger) *Prober {
	if concurrency <= 0 {
		concurrency = 1
	}
	if location == nil {
		location = time.Local
	}
	return &Prober{
		checker:      checker,
		grid:         grid,
		location:     location,
		probeTimeout: probeTimeout,
		concurrency:  concurrency,
		Log:          logger,
	}
}

func (p *Prober) Probe(ctx context.Context, selection models.Selection) (*models.AvailabilityMap, error) {
	requestID := utils.GetRequestID(ctx)
	if selection.RoomID == "" {
		return nil, exceptions.ErrInputValidation(ErrRoomRequired)
	}
	if _, err := utils.ParseDate(selection.Date); err != nil {
		return nil, exceptions.ErrInvalidDate(err)
	}

	intervals := p.grid.Intervals()
	unavailable := make([]bool, len(intervals))
	failed := make([]bool, len(intervals))

	var group errgroup.Group
	group.SetLimit(p.concurrency)
	for i, interval := range intervals {
		i, interval := i, interval
		group.Go(func() error {
			available, err := p.checkInterval(ctx, selection, interval)
			if err != nil {
				failed[i] = true
				unavailable[i] = true
				p.Log.Warn("availabilityProber.Probe interval check failed, marking unavailable",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRoomIDKey, selection.RoomID),
					zap.String(constvars.LoggingDateKey, selection.Date),
					zap.String(constvars.LoggingSlotStartKey, interval.Start.String()),
					zap.Error(err),
				)
				return nil
			}
			unavailable[i] = !available
			return nil
		})
	}
	group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, exceptions.ErrServerDeadlineExceeded(err)
	}

	result := &models.AvailabilityMap{
		RoomID:      selection.RoomID,
		Date:        selection.Date,
		Unavailable: models.NewSlotSet(),
		CheckedAt:   time.Now(),
	}
	for i, interval := range intervals {
		if unavailable[i] {
			result.Unavailable.Add(interval.Start)
		}
		if failed[i] {
			result.FailedProbes++
		}
	}

	p.Log.Info("availabilityProber.Probe completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoomIDKey, selection.RoomID),
		zap.String(constvars.LoggingDateKey, selection.Date),
		zap.Int(constvars.LoggingUnavailableCountKey, result.Unavailable.Len()),
		zap.Int(constvars.LoggingFailedProbeCountKey, result.FailedProbes),
	)
	return result, nil
}

func (p *Prober) checkInterval(ctx context.Context, selection models.Selection, interval timegrid.Interval) (bool, error) {
	start, end, err := IntervalInstants(selection.Date, interval.Start, interval.End, p.location)
	if err != nil {
		return false, err
	}

	probeCtx := ctx
	if p.probeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, p.probeTimeout)
		defer cancel()
	}
	return p.checker.CheckAvailability(probeCtx, selection.RoomID, start, end)
}

// IntervalInstants converts a date and two grid slots, read as wall-clock
// times in location, to absolute UTC instants.
func IntervalInstants(date string, start, end models.TimeSlot, location *time.Location) (time.Time, time.Time, error) {
	startInstant, err := utils.SlotInstant(date, start.String(), location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endInstant, err := utils.SlotInstant(date, end.String(), location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startInstant, endInstant, nil
}
