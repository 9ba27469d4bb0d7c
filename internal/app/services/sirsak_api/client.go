package sirsak_api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client is the shared transport for every call to the reservation API. It
// paces outgoing requests, forwards the caller's bearer token and turns
// non-2xx responses into *exceptions.CustomError values that wrap an
// *exceptions.RemoteAPIError.
type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.HTTPClient = httpClient
	}
}

// WithRateLimit paces outgoing requests. A non-positive perSecond disables pacing.
func WithRateLimit(perSecond, burst int) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			c.Limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.Limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func NewClient(baseUrl string, timeout time.Duration, log *zap.Logger, opts ...ClientOption) *Client {
	client := &Client{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        log,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// ResolveURL joins a resource path onto the base URL. Absolute URLs, such as
// the next links of paginated responses, are used as they are.
func (c *Client) ResolveURL(path string, query url.Values) string {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		target = c.BaseUrl + path
	}
	if len(query) == 0 {
		return target
	}
	separator := "?"
	if strings.Contains(target, "?") {
		separator = "&"
	}
	return target + separator + query.Encode()
}

// Do sends one request and decodes a 2xx body into out when out is not nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	return c.do(ctx, method, path, query, body, out, true)
}

// DoUnpaced is Do without waiting on the client-wide limiter. Availability
// probes use it: they run under the prober's own concurrency bound and a
// short timeout, and a limiter wait that outlives that timeout would mark
// free slots as taken.
func (c *Client) DoUnpaced(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	return c.do(ctx, method, path, query, body, out, false)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}, paced bool) error {
	requestID := utils.GetRequestID(ctx)
	target := c.ResolveURL(path, query)

	if paced && c.Limiter != nil {
		err := c.Limiter.Wait(ctx)
		if err != nil {
			return exceptions.ErrRateLimiterWait(err)
		}
	}

	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if session, ok := models.SessionFromContext(ctx); ok && session.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+session.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Warn("sirsakAPIClient.Do error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingUpstreamURLKey, target),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		remoteErr := &exceptions.RemoteAPIError{
			StatusCode: resp.StatusCode,
			Detail:     ExtractErrorDetail(bodyBytes),
		}
		c.Log.Warn("sirsakAPIClient.Do non-success response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingUpstreamURLKey, target),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorMessageKey, remoteErr.Detail),
		)
		return exceptions.ErrRemoteAPIResponse(remoteErr)
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	err = json.Unmarshal(bodyBytes, out)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, path)
	}
	return nil
}
