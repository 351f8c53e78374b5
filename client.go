package onekit

import (
	"context"
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"yoth.dev/onekit-go/internal"
	"yoth.dev/onekit-go/wire"
)

// Client calls a remote formatting service, see internal/server. It is
// safe for concurrent use.
type Client struct {
	http *internal.HttpInstance
}

// ClientOption configures a Client.
type ClientOption = Option[Client]

// NewClient returns a client for http://127.0.0.1:8080, then applies
// options in order.
func NewClient(options ...ClientOption) *Client {
	c := &Client{http: internal.NewHttpInstance(internal.WithBaseEndpointPath("/v1"))}
	Apply(c, options...)
	return c
}

// WithHTTPClient sends requests through client, e.g. one with a custom Dial.
func WithHTTPClient(client *fasthttp.Client) ClientOption {
	return forward(internal.WithHttpClient(client))
}

// WithBaseURL sets the scheme and host of the service.
func WithBaseURL(baseURL string) ClientOption {
	return forward(internal.WithBaseURL(baseURL))
}

// WithWorkerPoolSize bounds the number of requests in flight.
func WithWorkerPoolSize(size int) ClientOption {
	return forward(internal.WithWorkerPoolSize(size))
}

func forward(option internal.Option[internal.HttpInstance]) ClientOption {
	return internal.OptionFunc[Client](func(c *Client) {
		internal.ApplyOptions(c.http, option)
	})
}

// APIError is a non-2xx reply from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("onekit: status %d: %s", e.StatusCode, e.Message)
}

func (c *Client) FormatDate(ctx context.Context, req wire.DateRequest) (wire.TextResponse, error) {
	return call[wire.DateRequest, wire.TextResponse](ctx, c, "date", req)
}

func (c *Client) FormatDuration(ctx context.Context, req wire.DurationRequest) (wire.TextResponse, error) {
	return call[wire.DurationRequest, wire.TextResponse](ctx, c, "duration", req)
}

func (c *Client) FormatRelative(ctx context.Context, req wire.RelativeRequest) (wire.TextResponse, error) {
	return call[wire.RelativeRequest, wire.TextResponse](ctx, c, "relative", req)
}

func (c *Client) FormatColor(ctx context.Context, req wire.ColorRequest) (wire.ColorResponse, error) {
	return call[wire.ColorRequest, wire.ColorResponse](ctx, c, "color", req)
}

// Batch sends items in one request. Results keep the item order; a failed
// item carries its error in BatchResult.Error.
func (c *Client) Batch(ctx context.Context, items []wire.BatchItem) ([]wire.BatchResult, error) {
	resp, err := call[wire.BatchRequest, wire.BatchResponse](ctx, c, "batch", wire.BatchRequest{Items: items})
	return resp.Results, err
}

// Health reports the service worker pool state.
func (c *Client) Health(ctx context.Context) (wire.HealthResponse, error) {
	response := c.http.MakeRequest(ctx, internal.RequestConfig{
		Method:  internal.GET,
		URL:     strings.TrimSuffix(c.http.GetBaseURL(), "/") + "/healthz",
		Headers: map[string]string{"Accept": "application/json"},
	})
	typed := internal.ConvertJSONResponse[wire.HealthResponse](response)
	return typed.Data, apiError(typed.Error)
}

// ClientStats is a snapshot of the client's request counters.
type ClientStats struct {
	Requests    int64
	InFlight    int64
	MaxInFlight int
	// Saturated is set while every request slot is taken, so the next
	// call waits.
	Saturated bool
}

// Stats reports how many requests the client has made and how many are in
// flight.
func (c *Client) Stats() ClientStats {
	pool := c.http.GetWorkerPoolStats()
	return ClientStats{
		Requests:    c.http.GetRequestCount(),
		InFlight:    pool.ActiveWorkers,
		MaxInFlight: pool.MaxWorkers,
		Saturated:   !c.http.IsHealthy(),
	}
}

// Close waits for in-flight requests and releases connections.
func (c *Client) Close() error {
	return c.http.Close()
}

func call[Req, Resp any](ctx context.Context, c *Client, endpoint string, req Req) (Resp, error) {
	typed := internal.MakeJSONRequest[Req, Resp](ctx, c.http, internal.POST, endpoint, req, nil)
	return typed.Data, apiError(typed.Error)
}

// apiError turns a status error into an APIError carrying the service's
// message.
func apiError(err error) error {
	statusErr, ok := err.(*internal.StatusError)
	if !ok {
		return err
	}

	message := string(statusErr.Body)
	if decoded, decodeErr := internal.UnmarshalFromJSON[wire.ErrorResponse](statusErr.Body); decodeErr == nil && decoded.Error != "" {
		message = decoded.Error
	}
	return &APIError{StatusCode: statusErr.StatusCode, Message: message}
}
