package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"yoth.dev/onekit-go/internal"
	"yoth.dev/onekit-go/wire"
)

// Handler routes requests to the formatting endpoints.
func (s *Server) Handler() fasthttp.RequestHandler {
	routes := map[string]fasthttp.RequestHandler{
		"/v1/date": func(ctx *fasthttp.RequestCtx) {
			serveJSON(s, ctx, func(req wire.DateRequest) (wire.TextResponse, error) {
				return wire.FormatDate(req, s.env)
			})
		},
		"/v1/duration": func(ctx *fasthttp.RequestCtx) {
			serveJSON(s, ctx, func(req wire.DurationRequest) (wire.TextResponse, error) {
				return wire.FormatDuration(req, s.env)
			})
		},
		"/v1/relative": func(ctx *fasthttp.RequestCtx) {
			serveJSON(s, ctx, func(req wire.RelativeRequest) (wire.TextResponse, error) {
				return wire.FormatRelative(req, s.env)
			})
		},
		"/v1/color": func(ctx *fasthttp.RequestCtx) {
			serveJSON(s, ctx, wire.FormatColor)
		},
		"/v1/batch": func(ctx *fasthttp.RequestCtx) {
			serveJSON(s, ctx, func(req wire.BatchRequest) (wire.BatchResponse, error) {
				return s.batch(ctx, req)
			})
		},
	}

	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		path := string(ctx.Path())

		if path == "/healthz" {
			if ctx.IsGet() || ctx.IsHead() {
				s.health(ctx)
			} else {
				s.writeError(ctx, fasthttp.StatusMethodNotAllowed, errors.New("method not allowed"))
			}
		} else if handle, ok := routes[path]; !ok {
			s.writeError(ctx, fasthttp.StatusNotFound, fmt.Errorf("no route for %s", path))
		} else if !ctx.IsPost() {
			ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodPost)
			s.writeError(ctx, fasthttp.StatusMethodNotAllowed, errors.New("method not allowed"))
		} else {
			handle(ctx)
		}

		s.log.Request(string(ctx.Method()), path, ctx.Response.StatusCode(), time.Since(start))
	}
}

// serveJSON decodes the body into Req, runs fn and writes its result.
func serveJSON[Req, Resp any](s *Server, ctx *fasthttp.RequestCtx, fn func(Req) (Resp, error)) {
	req, err := internal.UnmarshalFromJSON[Req](ctx.PostBody())
	if err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, err)
		return
	}

	resp, err := fn(req)
	if err != nil {
		s.writeError(ctx, statusOf(err), err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, resp)
}

func statusOf(err error) int {
	switch {
	case wire.IsClientError(err):
		return fasthttp.StatusBadRequest
	case errors.Is(err, wire.ErrNoResult):
		return fasthttp.StatusUnprocessableEntity
	case errors.Is(err, internal.ErrPoolClosed):
		return fasthttp.StatusServiceUnavailable
	}
	return fasthttp.StatusInternalServerError
}

// batch runs every item on the worker pool. Results keep the item order.
func (s *Server) batch(ctx *fasthttp.RequestCtx, req wire.BatchRequest) (wire.BatchResponse, error) {
	if len(req.Items) > MaxBatchItems {
		return wire.BatchResponse{}, fmt.Errorf("%w: at most %d items per batch", wire.ErrInvalidRequest, MaxBatchItems)
	}

	results := make([]wire.BatchResult, len(req.Items))
	err := s.pool.Each(ctx, len(req.Items), func(_ context.Context, i int) {
		results[i] = req.Items[i].Execute(s.env)
	})
	if err != nil {
		return wire.BatchResponse{}, err
	}

	return wire.BatchResponse{Results: results}, nil
}

func (s *Server) health(ctx *fasthttp.RequestCtx) {
	stats := s.pool.Stats()
	resp := wire.HealthResponse{
		Status:        "ok",
		ActiveWorkers: stats.ActiveWorkers,
		MaxWorkers:    stats.MaxWorkers,
	}

	status := fasthttp.StatusOK
	if s.pool.IsOverloaded() {
		resp.Status = "busy"
		status = fasthttp.StatusServiceUnavailable
	}
	s.writeJSON(ctx, status, resp)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, err error) {
	if status >= fasthttp.StatusInternalServerError {
		s.log.Error(err, "request failed")
	}
	s.writeJSON(ctx, status, wire.ErrorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := s.buffers.GetBytes(func(buf *bytes.Buffer) error {
		return internal.EncodeJSONTo(buf, v)
	})
	if err != nil {
		s.log.Error(err, "encode response")
		ctx.Error(`{"error":"internal error"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
