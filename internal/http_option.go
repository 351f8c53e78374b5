package internal

import "github.com/valyala/fasthttp"

// WithHttpClient replaces the fasthttp client. A nil client is ignored.
func WithHttpClient(client *fasthttp.Client) Option[HttpInstance] {
	return OptionFunc[HttpInstance](func(h *HttpInstance) {
		if client != nil {
			h.HttpClient = client
		}
	})
}

// WithWorkerPoolSize bounds the number of concurrent requests.
func WithWorkerPoolSize(size int) Option[HttpInstance] {
	return OptionFunc[HttpInstance](func(h *HttpInstance) {
		h.workerPool.Resize(size)
	})
}

// WithBaseURL sets the scheme and host relative endpoints are sent to, e.g.
// "http://127.0.0.1:8080".
func WithBaseURL(baseURL string) Option[HttpInstance] {
	return OptionFunc[HttpInstance](func(h *HttpInstance) {
		h.baseURL = baseURL
	})
}

// WithBaseEndpointPath sets the path prefix for relative endpoints.
func WithBaseEndpointPath(basePath string) Option[HttpInstance] {
	return OptionFunc[HttpInstance](func(h *HttpInstance) {
		h.baseEndpointPath = basePath
	})
}
