package locations

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sirsak-service/internal/app/services/sirsak_api"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocationClientFindAllLocations(t *testing.T) {
	t.Run("Follows next links until the last page", func(t *testing.T) {
		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/locations/", r.URL.Path)
			switch r.URL.Query().Get("page") {
			case "":
				fmt.Fprintf(w, `{"count": 3, "next": "%s/locations/?page=2", "previous": null, "results": [{"id": 1, "name": "Gedung A"}, {"id": 2, "name": "Gedung B"}]}`, server.URL)
			case "2":
				fmt.Fprint(w, `{"count": 3, "next": null, "previous": null, "results": [{"id": 3, "name": "Gedung C"}]}`)
			default:
				t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
			}
		}))
		defer server.Close()

		client := NewLocationClient(sirsak_api.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		locations, err := client.FindAllLocations(context.Background())

		require.NoError(t, err)
		require.Len(t, locations, 3)
		assert.Equal(t, "Gedung C", locations[2].Name)
	})

	t.Run("Surfaces remote failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"detail": "Authentication credentials were not provided."}`)
		}))
		defer server.Close()

		client := NewLocationClient(sirsak_api.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		_, err := client.FindAllLocations(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}
