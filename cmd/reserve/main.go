// reserve checks a room's availability for one day and, unless --dry-run is
// given, books the chosen range through the same gate the HTTP service uses.
//
//	reserve --api-url http://localhost:8000/api --token $TOKEN \
//	    --room 12 --date 2024-03-01 --start 09:00 --end 10:30 \
//	    --purpose "Rapat koordinasi" --capacity 20
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/core/availability"
	"sirsak-service/internal/app/services/core/reservations"
	"sirsak-service/internal/app/services/core/timegrid"
	"sirsak-service/internal/app/services/sirsak_api"
	reservationapi "sirsak-service/internal/app/services/sirsak_api/reservations"
	"sirsak-service/internal/app/services/sirsak_api/rooms"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/dto/requests"
	"sirsak-service/internal/pkg/dto/responses"
	"sirsak-service/internal/pkg/utils"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type options struct {
	apiURL      string
	token       string
	room        string
	date        string
	start       string
	end         string
	purpose     string
	capacity    int
	timezone    string
	timeout     time.Duration
	concurrency int
	dryRun      bool
	verbose     bool
}

var errMissingFlag = errors.New("missing required flag")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseOptions(args []string, output io.Writer) (*options, error) {
	opts := &options{}

	flagSet := pflag.NewFlagSet("reserve", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.StringVar(&opts.apiURL, "api-url", utils.GetEnvString("SIRSAK_API_BASE_URL", "http://localhost:8000/api"), "reservation API base URL")
	flagSet.StringVar(&opts.token, "token", utils.GetEnvString("SIRSAK_API_TOKEN", ""), "bearer token forwarded to the reservation API")
	flagSet.StringVar(&opts.room, "room", "", "room id")
	flagSet.StringVar(&opts.date, "date", "", "reservation date (YYYY-MM-DD)")
	flagSet.StringVar(&opts.start, "start", "", "first slot of the range (HH:MM)")
	flagSet.StringVar(&opts.end, "end", "", "slot the range ends at (HH:MM)")
	flagSet.StringVar(&opts.purpose, "purpose", "", "reservation purpose")
	flagSet.IntVar(&opts.capacity, "capacity", 0, "requested capacity")
	flagSet.StringVar(&opts.timezone, "timezone", utils.GetEnvString("APP_TIMEZONE", constvars.DefaultAppTimezone), "timezone the slots are read in")
	flagSet.DurationVar(&opts.timeout, "probe-timeout", 5*time.Second, "timeout of a single availability check")
	flagSet.IntVar(&opts.concurrency, "concurrency", 8, "availability checks in flight")
	flagSet.BoolVar(&opts.dryRun, "dry-run", false, "only print availability and validate the range")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	var missing []string
	if opts.room == "" {
		missing = append(missing, "--room")
	}
	if opts.date == "" {
		missing = append(missing, "--date")
	}
	if !opts.dryRun {
		if opts.start == "" {
			missing = append(missing, "--start")
		}
		if opts.end == "" {
			missing = append(missing, "--end")
		}
		if opts.purpose == "" {
			missing = append(missing, "--purpose")
		}
		if opts.capacity <= 0 {
			missing = append(missing, "--capacity")
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", errMissingFlag, strings.Join(missing, ", "))
	}
	if opts.concurrency <= 0 {
		opts.concurrency = 1
	}
	return opts, nil
}

func run(ctx context.Context, opts *options, out io.Writer) error {
	location, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	logger := zap.NewNop()
	if opts.verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	ctx = models.ContextWithSession(ctx, &models.Session{UserID: "cli", Role: constvars.SirsakRoleUser, Token: opts.token})
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())

	apiClient := sirsak_api.NewClient(opts.apiURL, opts.timeout, logger)
	roomClient := rooms.NewRoomClient(apiClient, logger)
	reservationClient := reservationapi.NewReservationClient(apiClient, logger)

	grid := timegrid.Default()
	prober := availability.NewProber(roomClient, grid, location, opts.timeout, opts.concurrency, logger)
	gate := reservations.NewGate(roomClient, reservationClient, location, logger, reservations.WithGrid(grid))
	builder := reservations.NewBuilder(prober, gate, grid, logger)

	selection := &requests.SelectRoomAndDate{RoomID: opts.room, Date: opts.date}
	if err := utils.ValidateStruct(selection); err != nil {
		return err
	}
	snapshot, err := builder.SelectRoomAndDate(ctx, models.Selection{RoomID: selection.RoomID, Date: selection.Date})
	if err != nil {
		return err
	}
	printAvailability(out, grid, snapshot)

	if opts.start == "" {
		return nil
	}
	snapshot, err = builder.ChooseSlot(models.TimeSlot(opts.start), models.TimeSlot(opts.end))
	if err != nil {
		return err
	}
	if opts.end == "" {
		fmt.Fprintf(out, "ends selectable from %s: %s\n", opts.start, joinSlots(snapshot.SelectableEnds))
		return nil
	}
	fmt.Fprintf(out, "range %s-%s on %s is selectable\n", opts.start, opts.end, opts.date)
	if opts.dryRun {
		return nil
	}

	details := &requests.ReservationDetails{Purpose: opts.purpose, RequestedCapacity: opts.capacity}
	if err := utils.ValidateStruct(details); err != nil {
		return err
	}
	if _, err := builder.UpdateDetails(details.Purpose, details.RequestedCapacity); err != nil {
		return err
	}

	snapshot, err = builder.Submit(ctx)
	if err != nil {
		if snapshot != nil && snapshot.Message != "" {
			return fmt.Errorf("%s: %w", snapshot.Message, err)
		}
		return err
	}
	fmt.Fprintf(out, "reservation %d created with status %s\n", snapshot.Reservation.ID, snapshot.Reservation.Status)
	return nil
}

func printAvailability(out io.Writer, grid *timegrid.Grid, snapshot *responses.ReservationBuilder) {
	unavailable := models.NewSlotSet(snapshot.Unavailable...)
	fmt.Fprintf(out, "room %s on %s\n", snapshot.RoomID, snapshot.Date)
	for _, slot := range grid.Slots() {
		if slot == grid.Last() {
			continue
		}
		status := "free"
		if unavailable.Contains(slot) {
			status = "taken"
		}
		fmt.Fprintf(out, "  %s  %s\n", slot, status)
	}
	fmt.Fprintf(out, "selectable starts: %s\n", joinSlots(snapshot.SelectableStarts))
}

func joinSlots(slots []models.TimeSlot) string {
	if len(slots) == 0 {
		return "none"
	}
	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = slot.String()
	}
	return strings.Join(parts, " ")
}
