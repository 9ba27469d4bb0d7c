package sirsak_api

import (
	"bytes"
	"context"
	"net/url"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// PageFetcher loads a single page. pageURL is a resource path on the first
// call and the server's absolute next link afterwards.
type PageFetcher[T any] func(ctx context.Context, pageURL string, query url.Values) (*models.Page[T], error)

// GetPage fetches one page of a list endpoint. Endpoints that answer with a
// bare JSON array are treated as a single, final page.
func GetPage[T any](ctx context.Context, c *Client, pageURL string, query url.Values) (*models.Page[T], error) {
	var raw json.RawMessage
	err := c.Do(ctx, constvars.MethodGet, pageURL, query, nil, &raw)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		err = json.Unmarshal(trimmed, &items)
		if err != nil {
			return nil, exceptions.ErrDecodeResponse(err, pageURL)
		}
		return &models.Page[T]{Count: len(items), Results: items}, nil
	}

	page := new(models.Page[T])
	if len(trimmed) == 0 {
		return page, nil
	}
	err = json.Unmarshal(trimmed, page)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, pageURL)
	}
	return page, nil
}

// DrainPages follows next links from firstURL until the last page and
// returns every result in server order. query only applies to the first
// request because next links already carry it.
func DrainPages[T any](ctx context.Context, fetch PageFetcher[T], firstURL string, query url.Values) ([]T, error) {
	items := make([]T, 0)
	visited := make(map[string]struct{})

	pageURL := firstURL
	for pages := 0; pageURL != ""; pages++ {
		if pages >= constvars.DrainPagesMaxPages {
			return nil, exceptions.ErrDrainPagesLimit(constvars.DrainPagesMaxPages)
		}
		if err := ctx.Err(); err != nil {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}

		visitKey := pageURL + "?" + query.Encode()
		if _, seen := visited[visitKey]; seen {
			return nil, exceptions.ErrDrainPagesLoop(pageURL)
		}
		visited[visitKey] = struct{}{}

		page, err := fetch(ctx, pageURL, query)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Results...)

		pageURL = page.NextURL()
		query = nil
	}

	return items, nil
}

// DrainAll is DrainPages over GetPage for a plain list resource.
func DrainAll[T any](ctx context.Context, c *Client, resource string, query url.Values) ([]T, error) {
	fetch := func(ctx context.Context, pageURL string, query url.Values) (*models.Page[T], error) {
		return GetPage[T](ctx, c, pageURL, query)
	}
	return DrainPages[T](ctx, fetch, resource, query)
}
