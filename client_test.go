package onekit

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"yoth.dev/onekit-go/internal/server"
	"yoth.dev/onekit-go/locale"
	"yoth.dev/onekit-go/wire"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	s := server.New(
		server.WithWorkers(4),
		server.WithEnv(wire.Env{Locale: locale.EnUS, Location: time.UTC, Clock: func() time.Time { return noon }}),
	)

	ln := fasthttputil.NewInmemoryListener()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	c := NewClient(
		WithBaseURL("http://onekit"),
		WithWorkerPoolSize(8),
		WithHTTPClient(&fasthttp.Client{
			Dial: func(string) (net.Conn, error) { return ln.Dial() },
		}),
	)

	t.Cleanup(func() {
		require.NoError(t, c.Close())
		cancel()
		require.NoError(t, <-done)
	})
	return c
}

func TestClientFormatDate(t *testing.T) {
	c := newTestClient(t)

	date := time.Date(2020, time.June, 20, 21, 5, 9, 0, time.UTC)
	resp, err := c.FormatDate(context.Background(), wire.DateRequest{
		Date:    &date,
		Options: wire.DateOptions{Format: "yyyy/MM/dd HH:mm"},
	})
	require.NoError(t, err)
	assert.Equal(t, "2020/06/20 21:05", resp.Text)
}

func TestClientFormatDuration(t *testing.T) {
	c := newTestClient(t)

	seconds := float64(273600)
	resp, err := c.FormatDuration(context.Background(), wire.DurationRequest{
		Seconds: &seconds,
		Options: wire.DurationOptions{Style: "full", MaxUnits: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "3 days, 4 hours", resp.Text)
}

func TestClientFormatRelative(t *testing.T) {
	c := newTestClient(t)

	date := noon.AddDate(0, 0, -1)
	resp, err := c.FormatRelative(context.Background(), wire.RelativeRequest{
		Date:    &date,
		Options: wire.RelativeOptions{Named: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "yesterday", resp.Text)
}

func TestClientFormatColor(t *testing.T) {
	c := newTestClient(t)

	resp, err := c.FormatColor(context.Background(), wire.ColorRequest{Hex: "#E57"})
	require.NoError(t, err)
	assert.Equal(t, "#EE5577", resp.Hex)
	assert.Equal(t, 1.0, resp.Alpha)
}

func TestClientBatch(t *testing.T) {
	c := newTestClient(t)

	seconds := float64(90)
	results, err := c.Batch(context.Background(), []wire.BatchItem{
		{Duration: &wire.DurationRequest{Seconds: &seconds, Options: wire.DurationOptions{Style: "abbreviated"}}},
		{Color: &wire.ColorRequest{Hex: "nope"}},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "1m 30s", results[0].Text)
	assert.NotEmpty(t, results[1].Error)
}

func TestClientHealth(t *testing.T) {
	c := newTestClient(t)

	health, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 4, health.MaxWorkers)
}

func TestClientAPIError(t *testing.T) {
	c := newTestClient(t)

	_, err := c.FormatColor(context.Background(), wire.ColorRequest{Hex: "E57"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, fasthttp.StatusBadRequest, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
	assert.NotContains(t, apiErr.Message, `"error"`)
}

func TestClientCancelledContext(t *testing.T) {
	c := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FormatColor(ctx, wire.ColorRequest{Hex: "#fff"})
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClientStats(t *testing.T) {
	c := newTestClient(t)

	stats := c.Stats()
	assert.Zero(t, stats.Requests)
	assert.Zero(t, stats.InFlight)
	assert.Equal(t, 8, stats.MaxInFlight)
	assert.False(t, stats.Saturated)

	seconds := 90.0
	_, err := c.FormatDuration(context.Background(), wire.DurationRequest{Seconds: &seconds})
	require.NoError(t, err)
	_, err = c.Health(context.Background())
	require.NoError(t, err)

	stats = c.Stats()
	assert.Equal(t, int64(2), stats.Requests)
}
