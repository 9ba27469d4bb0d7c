package sirsak_api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/exceptions"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDrainAll(t *testing.T) {
	t.Run("Follows next links until the last page", func(t *testing.T) {
		var calls int32
		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			switch r.URL.Query().Get("page") {
			case "":
				assert.Equal(t, "PENDING", r.URL.Query().Get("status"), "first request carries the filter")
				fmt.Fprintf(w, `{"count": 3, "next": "%s/locations/?page=2&status=PENDING", "previous": null, "results": [{"id": 1, "name": "A"}, {"id": 2, "name": "B"}]}`, server.URL)
			case "2":
				fmt.Fprint(w, `{"count": 3, "next": null, "previous": "x", "results": [{"id": 3, "name": "C"}]}`)
			default:
				t.Errorf("unexpected page %s", r.URL.Query().Get("page"))
			}
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second, zap.NewNop())
		locations, err := DrainAll[models.Location](context.Background(), client, "/locations/", url.Values{"status": {"PENDING"}})

		require.NoError(t, err)
		require.Len(t, locations, 3)
		assert.Equal(t, "A", locations[0].Name)
		assert.Equal(t, "C", locations[2].Name)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("Accepts unpaginated list responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id": 1, "name": "A"}]`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second, zap.NewNop())
		locations, err := DrainAll[models.Location](context.Background(), client, "/locations/", nil)

		require.NoError(t, err)
		assert.Len(t, locations, 1)
	})

	t.Run("Returns an empty slice for an empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"count": 0, "next": null, "results": []}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second, zap.NewNop())
		locations, err := DrainAll[models.Location](context.Background(), client, "/locations/", nil)

		require.NoError(t, err)
		assert.NotNil(t, locations)
		assert.Empty(t, locations)
	})

	t.Run("Stops on a page error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"detail": "nope"}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second, zap.NewNop())
		_, err := DrainAll[models.Location](context.Background(), client, "/locations/", nil)

		var remoteErr *exceptions.RemoteAPIError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, http.StatusForbidden, remoteErr.StatusCode)
	})
}

func TestDrainPages(t *testing.T) {
	t.Run("Detects a next link loop", func(t *testing.T) {
		next := "http://api.local/rooms/?page=2"
		fetch := func(ctx context.Context, pageURL string, query url.Values) (*models.Page[int], error) {
			return &models.Page[int]{Next: &next, Results: []int{1}}, nil
		}

		_, err := DrainPages[int](context.Background(), fetch, "/rooms/", nil)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.DevMessage, "pagination loop")
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		fetch := func(ctx context.Context, pageURL string, query url.Values) (*models.Page[int], error) {
			t.Fatal("fetch should not be called")
			return nil, nil
		}

		_, err := DrainPages[int](ctx, fetch, "/rooms/", nil)

		assert.Error(t, err)
	})
}
