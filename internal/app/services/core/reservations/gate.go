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
	"sirsak-service/internal/app/services/shared/ratelimiter"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrSlotTaken means the final check found the range no longer free.
	ErrSlotTaken = errors.New("slot taken since availability was probed")
	// ErrReservationRejected means the API refused the create call as a conflict.
	ErrReservationRejected = errors.New("reservation rejected by the reservation API")
	ErrSubmitLockHeld      = errors.New("submission already in flight")
	ErrSubmitThrottled     = errors.New("submission quota exceeded")
)

const submitLimiterGroup = "reservation-submit"

type submissionLimiter interface {
	ApplyResourceLimiter(ctx context.Context, in *ratelimiter.ApplyResourceLimiterInput) (*ratelimiter.ApplyResourceLimiterOutput, error)
}

// Gate re-checks the exact chosen range right before creating the
// reservation. The create call is made once and never retried.
type Gate struct {
	checker      contracts.RoomAvailabilityChecker
	reservations contracts.ReservationClient
	grid         *timegrid.Grid
	location     *time.Location

	locker  contracts.LockerService
	lockTTL time.Duration

	limiter     submissionLimiter
	limitQuota  int
	limitWindow int

	publisher contracts.EventPublisher
	now       func() time.Time
	Log       *zap.Logger
}

type GateOption func(*Gate)

// WithGrid replaces the default reservation grid drafts are checked against.
func WithGrid(grid *timegrid.Grid) GateOption {
	return func(g *Gate) {
		g.grid = grid
	}
}

// WithSubmitLock serializes submissions of the same draft across instances.
func WithSubmitLock(locker contracts.LockerService, ttl time.Duration) GateOption {
	return func(g *Gate) {
		g.locker = locker
		g.lockTTL = ttl
	}
}

func WithSubmitLimiter(limiter submissionLimiter, quota, windowSec int) GateOption {
	return func(g *Gate) {
		g.limiter = limiter
		g.limitQuota = quota
		g.limitWindow = windowSec
	}
}

func WithEventPublisher(publisher contracts.EventPublisher) GateOption {
	return func(g *Gate) {
		g.publisher = publisher
	}
}

func NewGate(checker contracts.RoomAvailabilityChecker, reservationClient contracts.ReservationClient, location *time.Location, logger *zap.Logger, opts ...GateOption) *Gate {
	if location == nil {
		location = time.Local
	}
	gate := &Gate{
		checker:      checker,
		reservations: reservationClient,
		grid:         timegrid.Default(),
		location:     location,
		now:          time.Now,
		Log:          logger,
	}
	for _, opt := range opts {
		opt(gate)
	}
	return gate
}

func (g *Gate) Submit(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	requestID := utils.GetRequestID(ctx)
	userID := sessionUserID(ctx)

	if err := utils.ValidateStruct(draft); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	roomID, err := strconv.ParseInt(draft.RoomID, 10, 64)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	// Availability is re-checked below, so only the grid rules apply here.
	if err := slotrange.ValidateRange(g.grid, nil, draft.Start, draft.End); err != nil {
		return nil, exceptions.ErrSlotNotSelectable(err)
	}
	start, end, err := availability.IntervalInstants(draft.Date, draft.Start, draft.End, g.location)
	if err != nil {
		return nil, exceptions.ErrInvalidDate(err)
	}

	if err := g.throttle(ctx, userID); err != nil {
		return nil, err
	}

	release, err := g.lock(ctx, userID, draft)
	if err != nil {
		return nil, err
	}
	defer release()

	available, err := g.checker.CheckAvailability(ctx, draft.RoomID, start, end)
	if err != nil {
		g.Log.Warn("submissionGate.Submit final availability check failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoomIDKey, draft.RoomID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSlotGateCheckFailed(err)
	}
	if !available {
		g.Log.Info("submissionGate.Submit slot taken since probe",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoomIDKey, draft.RoomID),
			zap.String(constvars.LoggingDateKey, draft.Date),
			zap.String(constvars.LoggingSlotStartKey, draft.Start.String()),
			zap.String(constvars.LoggingSlotEndKey, draft.End.String()),
		)
		return nil, exceptions.ErrSlotNoLongerAvailable(ErrSlotTaken)
	}

	payload := &models.ReservationPayload{
		Room:              roomID,
		Purpose:           draft.Purpose,
		RequestedCapacity: draft.RequestedCapacity,
		Status:            constvars.ReservationStatusPending,
		Start:             utils.FormatInstant(start),
		End:               utils.FormatInstant(end),
	}
	reservation, err := g.reservations.CreateReservation(ctx, payload)
	if err != nil {
		var remoteErr *exceptions.RemoteAPIError
		if errors.As(err, &remoteErr) && remoteErr.IsConflict() {
			return nil, exceptions.ErrReservationConflict(fmt.Errorf("%w: %w", ErrReservationRejected, remoteErr))
		}
		return nil, err
	}

	g.Log.Info("submissionGate.Submit reservation created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.Int64(constvars.LoggingReservationIDKey, reservation.ID),
	)
	g.publish(ctx, userID, reservation)
	return reservation, nil
}

func (g *Gate) throttle(ctx context.Context, userID string) error {
	if g.limiter == nil || userID == "" {
		return nil
	}
	out, err := g.limiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      userID,
		LimiterGroupName:  submitLimiterGroup,
		WindowDurationSec: g.limitWindow,
		MaxQuota:          g.limitQuota,
		NowUTC:            g.now().UTC(),
	})
	if err != nil {
		g.Log.Warn("submissionGate.throttle limiter unavailable, continuing",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil
	}
	if !out.Allowed {
		return exceptions.ErrSubmissionRateLimited(ErrSubmitThrottled, out.RetryAfterSecs)
	}
	return nil
}

// lock returns a release func that is always safe to call.
func (g *Gate) lock(ctx context.Context, userID string, draft models.ReservationDraft) (func(), error) {
	noop := func() {}
	if g.locker == nil {
		return noop, nil
	}

	key := SubmitLockKey(userID, draft)
	acquired, token, err := g.locker.TryLock(ctx, key, g.lockTTL)
	if err != nil {
		g.Log.Warn("submissionGate.lock redis unavailable, continuing without lock",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return noop, nil
	}
	if !acquired {
		return noop, exceptions.ErrSubmissionInProgress(ErrSubmitLockHeld)
	}

	return func() {
		if err := g.locker.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
			g.Log.Warn("submissionGate.lock failed to release submit lock",
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}, nil
}

func (g *Gate) publish(ctx context.Context, userID string, reservation *models.Reservation) {
	if g.publisher == nil {
		return
	}
	event := &models.ReservationSubmittedEvent{
		ID:            uuid.NewString(),
		ReservationID: reservation.ID,
		RoomID:        reservation.Room,
		UserID:        userID,
		Start:         reservation.Start,
		End:           reservation.End,
		Status:        reservation.Status,
		SubmittedAt:   g.now().UTC(),
	}
	if err := g.publisher.PublishReservationSubmitted(ctx, event); err != nil {
		g.Log.Warn("submissionGate.publish failed to publish reservation event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int64(constvars.LoggingReservationIDKey, reservation.ID),
			zap.Error(err),
		)
	}
}

func SubmitLockKey(userID string, draft models.ReservationDraft) string {
	if userID == "" {
		userID = "anonymous"
	}
	return fmt.Sprintf("reservation:submit:%s:%s:%s:%s-%s", userID, draft.RoomID, draft.Date, draft.Start, draft.End)
}

func sessionUserID(ctx context.Context) string {
	if session, ok := models.SessionFromContext(ctx); ok {
		return session.UserID
	}
	return ""
}
