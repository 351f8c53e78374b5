package internal

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/valyala/fasthttp"
)

// RequestMethod represents HTTP methods
type RequestMethod string

const (
	GET  RequestMethod = "GET"
	POST RequestMethod = "POST"
)

const (
	defaultBaseURL      = "http://127.0.0.1:8080"
	defaultEndpointPath = "/v1"
	defaultTimeout      = 30 * time.Second
)

// RequestConfig holds configuration for HTTP requests
type RequestConfig struct {
	Method  RequestMethod
	URL     string
	Headers map[string]string
	Body    []byte
	Timeout time.Duration
}

// Response is a detached copy of an HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
	Error      error
}

// TypedResponse carries a decoded body next to the raw one.
type TypedResponse[T any] struct {
	StatusCode int
	Data       T
	RawBody    []byte
	Headers    map[string]string
	Error      error
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, bytes.TrimSpace(e.Body))
}

// HttpInstance sends requests to the formatting service over a shared
// fasthttp client. Requests run on a bounded worker pool and reuse pooled
// request, response and body buffers.
type HttpInstance struct {
	HttpClient *fasthttp.Client

	workerPool *WorkerPool
	buffers    *BufferPool

	requestPool  sync.Pool
	responsePool sync.Pool

	mutex sync.RWMutex

	requestCounter int64

	baseURL          string
	baseEndpointPath string
}

// NewHttpInstance creates an HttpInstance with default settings, then
// applies options in order.
func NewHttpInstance(options ...Option[HttpInstance]) *HttpInstance {
	instance := HttpInstance{
		HttpClient: createDefaultHttpClient(),
		workerPool: NewWorkerPool(WorkerPoolConfig{MaxWorkers: 100}),
		buffers:    NewBufferPool(2048),

		baseURL:          defaultBaseURL,
		baseEndpointPath: defaultEndpointPath,

		requestPool: sync.Pool{
			New: func() any { return &fasthttp.Request{} },
		},
		responsePool: sync.Pool{
			New: func() any { return &fasthttp.Response{} },
		},
	}

	ApplyOptions(&instance, options...)

	return &instance
}

// MakeRequest performs a request on the worker pool and waits for it. The
// context bounds the wait for a free worker.
func (h *HttpInstance) MakeRequest(ctx context.Context, config RequestConfig) *Response {
	atomic.AddInt64(&h.requestCounter, 1)

	responseChan := make(chan *Response, 1)

	err := h.workerPool.SubmitWithContext(ctx, func(context.Context) {
		responseChan <- h.do(config)
	})
	if err != nil {
		return &Response{Error: err}
	}

	return <-responseChan
}

func (h *HttpInstance) do(config RequestConfig) *Response {
	req := h.requestPool.Get().(*fasthttp.Request)
	resp := h.responsePool.Get().(*fasthttp.Response)

	defer func() {
		req.Reset()
		h.requestPool.Put(req)
		resp.Reset()
		h.responsePool.Put(resp)
	}()

	req.SetRequestURI(h.buildFullURL(config.URL))
	req.Header.SetMethod(string(config.Method))

	for key, value := range config.Headers {
		req.Header.Set(key, value)
	}

	if len(config.Body) > 0 {
		req.SetBody(config.Body)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	response := &Response{
		Error: h.HttpClient.DoTimeout(req, resp, timeout),
	}
	if response.Error != nil {
		return response
	}

	response.StatusCode = resp.StatusCode()
	response.Body = append([]byte(nil), resp.Body()...)

	response.Headers = make(map[string]string)
	resp.Header.VisitAll(func(key, value []byte) {
		response.Headers[string(key)] = string(value)
	})

	return response
}

// MakeJSONRequest encodes payload as JSON, sends it and decodes the response
// into Resp. A non-2xx status is reported as *StatusError.
func MakeJSONRequest[Req, Resp any](ctx context.Context, h *HttpInstance, method RequestMethod, endpoint string, payload Req, headers map[string]string) *TypedResponse[Resp] {
	config := TypedRequest[Req]{
		Method: method,
		URL:    endpoint,
		Data:   payload,
		Headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
	for key, value := range headers {
		config.Headers[key] = value
	}

	return MakeTypedRequest(ctx, h, config, JSONRequestEncoder[Req]{Buffers: h.buffers}, JSONResponseDecoder[Resp]{})
}

// MakeTypedRequest sends config.Data through encoder and decodes the reply
// through decoder.
func MakeTypedRequest[Req, Resp any](ctx context.Context, h *HttpInstance, config TypedRequest[Req], encoder RequestEncoder[Req], decoder ResponseDecoder[Resp]) *TypedResponse[Resp] {
	body, err := encoder.Encode(config.Data)
	if err != nil {
		return &TypedResponse[Resp]{Error: err}
	}

	response := h.MakeRequest(ctx, RequestConfig{
		Method:  config.Method,
		URL:     config.URL,
		Headers: config.Headers,
		Body:    body,
		Timeout: config.Timeout,
	})

	return convertResponse(response, decoder)
}

// TypedRequest is a RequestConfig whose body is still a value.
type TypedRequest[T any] struct {
	Method  RequestMethod
	URL     string
	Headers map[string]string
	Data    T
	Timeout time.Duration
}

// ConvertJSONResponse decodes a plain response body as JSON.
func ConvertJSONResponse[T any](response *Response) *TypedResponse[T] {
	return convertResponse[T](response, JSONResponseDecoder[T]{})
}

func convertResponse[T any](response *Response, decoder ResponseDecoder[T]) *TypedResponse[T] {
	typed := &TypedResponse[T]{
		StatusCode: response.StatusCode,
		RawBody:    response.Body,
		Headers:    response.Headers,
		Error:      response.Error,
	}
	if typed.Error != nil {
		return typed
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		typed.Error = &StatusError{StatusCode: response.StatusCode, Body: response.Body}
		return typed
	}

	typed.Data, typed.Error = decoder.Decode(response.Body)
	return typed
}

// buildFullURL joins the base URL, the base endpoint path and endpoint.
// Absolute URLs pass through.
func (h *HttpInstance) buildFullURL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return strings.TrimSuffix(h.baseURL, "/") + path.Join("/", h.baseEndpointPath, endpoint)
}

// GetRequestCount returns the number of requests made so far.
func (h *HttpInstance) GetRequestCount() int64 {
	return atomic.LoadInt64(&h.requestCounter)
}

func (h *HttpInstance) GetBaseURL() string {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.baseURL
}

// GetBaseEndpointPath returns the path prefix added to relative endpoints.
func (h *HttpInstance) GetBaseEndpointPath() string {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.baseEndpointPath
}

// GetWorkerPoolStats returns current worker pool counters.
func (h *HttpInstance) GetWorkerPoolStats() WorkerPoolStats {
	return h.workerPool.Stats()
}

// IsHealthy reports whether a request could start without waiting.
func (h *HttpInstance) IsHealthy() bool {
	return !h.workerPool.IsOverloaded()
}

// Close waits for in-flight requests and releases idle connections.
func (h *HttpInstance) Close() error {
	err := h.workerPool.Close()
	h.HttpClient.CloseIdleConnections()
	return err
}

func createDefaultHttpClient() *fasthttp.Client {
	return &fasthttp.Client{
		Name: "onekit-go",

		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Second,

		MaxIdleConnDuration: 90 * time.Second,
		MaxConnDuration:     300 * time.Second,
		MaxConnsPerHost:     10,

		ReadBufferSize:      4096,
		WriteBufferSize:     4096,
		MaxResponseBodySize: 4 << 20,
	}
}
