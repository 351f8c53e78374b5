package server

import (
	"bytes"
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"yoth.dev/onekit-go/internal/logger"
	"yoth.dev/onekit-go/locale"
	"yoth.dev/onekit-go/wire"
)

var noon = time.Date(2020, time.June, 20, 12, 0, 0, 0, time.UTC)

type harness struct {
	client *fasthttp.Client
	logs   *syncBuffer
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func start(t *testing.T, options ...Option) *harness {
	t.Helper()

	logs := &syncBuffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: logs})
	require.NoError(t, err)

	base := []Option{
		WithWorkers(4),
		WithLogger(log),
		WithEnv(wire.Env{Locale: locale.EnUS, Location: time.UTC, Clock: func() time.Time { return noon }}),
	}
	s := New(append(base, options...)...)

	ln := fasthttputil.NewInmemoryListener()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	return &harness{
		client: &fasthttp.Client{
			Dial: func(string) (net.Conn, error) { return ln.Dial() },
		},
		logs: logs,
	}
}

func (h *harness) do(t *testing.T, method, path, body string) (int, string) {
	t.Helper()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("http://onekit" + path)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.SetBodyString(body)

	require.NoError(t, h.client.DoTimeout(req, resp, 5*time.Second))
	return resp.StatusCode(), string(resp.Body())
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.UnmarshalString(body, &v))
	return v
}

func TestEndpoints(t *testing.T) {
	h := start(t)

	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{"date", "/v1/date", `{"date":"2020-06-20T00:00:00Z","options":{"format":"yyyy/MM/dd"}}`, "2020/06/20"},
		{"date styles", "/v1/date", `{"date":"2020-06-20T21:05:09Z","options":{"locale":"en_GB","date_style":"long"}}`, "20 June 2020"},
		{"duration", "/v1/duration", `{"seconds":273600,"options":{"style":"full","max_units":2}}`, "3 days, 4 hours"},
		{"relative", "/v1/relative", `{"date":"2020-06-22T12:00:00Z"}`, "in 2 days"},
		{"relative named", "/v1/relative", `{"seconds":-86400,"options":{"named":true}}`, "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := h.do(t, fasthttp.MethodPost, tt.path, tt.body)
			require.Equal(t, fasthttp.StatusOK, status, body)
			assert.Equal(t, tt.want, decode[wire.TextResponse](t, body).Text)
		})
	}
}

func TestColorEndpoint(t *testing.T) {
	h := start(t)

	status, body := h.do(t, fasthttp.MethodPost, "/v1/color", `{"hex":"#E57","alpha":0.5}`)
	require.Equal(t, fasthttp.StatusOK, status, body)

	color := decode[wire.ColorResponse](t, body)
	assert.Equal(t, "#EE5577", color.Hex)
	assert.Equal(t, 238, color.Red)
	assert.Equal(t, 0.5, color.Alpha)
}

func TestBatchKeepsOrder(t *testing.T) {
	h := start(t)

	seconds := []string{"1", "12", "123", "1234"}
	want := []string{"1s", "12s", "123s", "1,234s"}

	items := make([]string, 0, 21)
	for i := 0; i < 20; i++ {
		items = append(items, `{"duration":{"seconds":`+seconds[i%4]+`,"options":{"style":"abbreviated","units":["second"]}}}`)
	}
	items = append(items, `{"color":{"hex":"bad"}}`)

	status, body := h.do(t, fasthttp.MethodPost, "/v1/batch", `{"items":[`+strings.Join(items, ",")+`]}`)
	require.Equal(t, fasthttp.StatusOK, status, body)

	resp := decode[wire.BatchResponse](t, body)
	require.Len(t, resp.Results, 21)
	for i := 0; i < 20; i++ {
		assert.Equal(t, want[i%4], resp.Results[i].Text, "item %d", i)
	}
	assert.NotEmpty(t, resp.Results[20].Error)
}

func TestBatchTooLarge(t *testing.T) {
	h := start(t)

	items := strings.Repeat(`{"color":{"hex":"#fff"}},`, MaxBatchItems+1)
	status, body := h.do(t, fasthttp.MethodPost, "/v1/batch", `{"items":[`+strings.TrimSuffix(items, ",")+`]}`)
	assert.Equal(t, fasthttp.StatusBadRequest, status)
	assert.Contains(t, body, "at most")
}

func TestErrorStatuses(t *testing.T) {
	h := start(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"malformed json", fasthttp.MethodPost, "/v1/date", `{"date":`, fasthttp.StatusBadRequest},
		{"empty body", fasthttp.MethodPost, "/v1/color", ``, fasthttp.StatusBadRequest},
		{"unknown style", fasthttp.MethodPost, "/v1/duration", `{"seconds":1,"options":{"style":"tiny"}}`, fasthttp.StatusBadRequest},
		{"bad hex", fasthttp.MethodPost, "/v1/color", `{"hex":"E57"}`, fasthttp.StatusBadRequest},
		{"no result", fasthttp.MethodPost, "/v1/duration", `{"seconds":1,"options":{"max_units":-1}}`, fasthttp.StatusUnprocessableEntity},
		{"unknown route", fasthttp.MethodPost, "/v1/nope", `{}`, fasthttp.StatusNotFound},
		{"wrong method", fasthttp.MethodGet, "/v1/date", ``, fasthttp.StatusMethodNotAllowed},
		{"health by post", fasthttp.MethodPost, "/healthz", ``, fasthttp.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := h.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, decode[wire.ErrorResponse](t, body).Error)
		})
	}
}

func TestHealth(t *testing.T) {
	h := start(t)

	status, body := h.do(t, fasthttp.MethodGet, "/healthz", "")
	require.Equal(t, fasthttp.StatusOK, status)

	health := decode[wire.HealthResponse](t, body)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 4, health.MaxWorkers)
}

func TestRequestsAreLogged(t *testing.T) {
	h := start(t)

	h.do(t, fasthttp.MethodPost, "/v1/color", `{"hex":"nope"}`)
	assert.Contains(t, h.logs.String(), `"path":"/v1/color"`)
	assert.Contains(t, h.logs.String(), `"status":400`)
}

func TestOptions(t *testing.T) {
	s := New(WithAddr("127.0.0.1:0"), WithTimeouts(time.Second, 2*time.Second), WithMaxBodySize(64), WithWorkers(3), WithLogger(nil))

	assert.Equal(t, "127.0.0.1:0", s.Addr())
	assert.Equal(t, time.Second, s.srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, s.srv.WriteTimeout)
	assert.Equal(t, 64, s.srv.MaxRequestBodySize)
	assert.Equal(t, 3, s.pool.Stats().MaxWorkers)
	assert.NotNil(t, s.log)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := New(WithAddr("127.0.0.1:0"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
