package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Run("Dry run needs only room and date", func(t *testing.T) {
		opts, err := parseOptions([]string{"--room", "12", "--date", "2024-03-01", "--dry-run"}, io.Discard)

		require.NoError(t, err)
		assert.Equal(t, "12", opts.room)
		assert.True(t, opts.dryRun)
	})

	t.Run("Booking needs the full draft", func(t *testing.T) {
		_, err := parseOptions([]string{"--room", "12", "--date", "2024-03-01", "--start", "09:00"}, io.Discard)

		require.ErrorIs(t, err, errMissingFlag)
		assert.Contains(t, err.Error(), "--end")
		assert.Contains(t, err.Error(), "--purpose")
		assert.Contains(t, err.Error(), "--capacity")
		assert.NotContains(t, err.Error(), "--start")
	})

	t.Run("Missing flags are listed in a stable order", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			_, err := parseOptions(nil, io.Discard)

			require.ErrorIs(t, err, errMissingFlag)
			assert.Equal(t, errMissingFlag.Error()+": --room, --date, --start, --end, --purpose, --capacity", err.Error())
		}
	})

	t.Run("Help", func(t *testing.T) {
		_, err := parseOptions([]string{"--help"}, io.Discard)

		assert.ErrorIs(t, err, pflag.ErrHelp)
	})
}

// fakeAPI answers availability checks, reporting the interval that starts at
// takenStart (UTC) as taken, and records reservation creates.
func fakeAPI(t *testing.T, takenStart string, creates *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/availability"):
			available := r.URL.Query().Get("start") != takenStart
			fmt.Fprintf(w, `{"available": %t}`, available)
		case r.Method == http.MethodPost && r.URL.Path == "/reservations/":
			atomic.AddInt32(creates, 1)
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": 77, "room": 12, "status": "PENDING", "purpose": "Rapat", "requested_capacity": 10, "start": "2024-03-01T02:00:00Z", "end": "2024-03-01T03:00:00Z"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestRun(t *testing.T) {
	// 09:00 in Asia/Jakarta
	const takenStart = "2024-03-01T02:00:00Z"

	t.Run("Dry run prints availability without booking", func(t *testing.T) {
		var creates int32
		server := fakeAPI(t, takenStart, &creates)
		defer server.Close()

		opts, err := parseOptions([]string{
			"--api-url", server.URL, "--room", "12", "--date", "2024-03-01",
			"--start", "08:00", "--end", "09:00", "--timezone", "Asia/Jakarta", "--dry-run",
		}, io.Discard)
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, run(context.Background(), opts, &out))

		assert.Contains(t, out.String(), "09:00  taken")
		assert.Contains(t, out.String(), "08:30  free")
		assert.Contains(t, out.String(), "range 08:00-09:00 on 2024-03-01 is selectable")
		assert.NotContains(t, out.String(), "19:00")
		assert.Equal(t, int32(0), atomic.LoadInt32(&creates))
	})

	t.Run("Range over a taken slot is refused", func(t *testing.T) {
		var creates int32
		server := fakeAPI(t, takenStart, &creates)
		defer server.Close()

		opts, err := parseOptions([]string{
			"--api-url", server.URL, "--room", "12", "--date", "2024-03-01",
			"--start", "08:30", "--end", "09:30", "--timezone", "Asia/Jakarta",
			"--purpose", "Rapat", "--capacity", "10",
		}, io.Discard)
		require.NoError(t, err)

		err = run(context.Background(), opts, io.Discard)

		require.Error(t, err)
		assert.Equal(t, int32(0), atomic.LoadInt32(&creates))
	})

	t.Run("Books a free range", func(t *testing.T) {
		var creates int32
		server := fakeAPI(t, "", &creates)
		defer server.Close()

		opts, err := parseOptions([]string{
			"--api-url", server.URL, "--room", "12", "--date", "2024-03-01",
			"--start", "09:00", "--end", "10:00", "--timezone", "Asia/Jakarta",
			"--purpose", "Rapat", "--capacity", "10",
		}, io.Discard)
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, run(context.Background(), opts, &out))

		assert.Contains(t, out.String(), "reservation 77 created with status PENDING")
		assert.Equal(t, int32(1), atomic.LoadInt32(&creates))
	})
}
