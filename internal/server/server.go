// Package server exposes the formatters over HTTP. Every request builds its
// own formatter from the option spec it carries.
package server

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/valyala/fasthttp"

	"yoth.dev/onekit-go/internal"
	"yoth.dev/onekit-go/internal/logger"
	"yoth.dev/onekit-go/wire"
)

// MaxBatchItems bounds a single /v1/batch request.
const MaxBatchItems = 256

// Server is the formatting service.
type Server struct {
	addr         string
	readTimeout  time.Duration
	writeTimeout time.Duration
	maxBodySize  int
	workers      int

	env     wire.Env
	log     *logger.Logger
	pool    *internal.WorkerPool
	buffers *internal.BufferPool
	srv     *fasthttp.Server
}

// Option configures a Server.
type Option = internal.Option[Server]

// New returns a server listening on :8080 by default, then applies options.
func New(options ...Option) *Server {
	s := &Server{
		addr:         ":8080",
		readTimeout:  10 * time.Second,
		writeTimeout: 10 * time.Second,
		maxBodySize:  1 << 20,
		env:          wire.Env{Location: time.Local},
		log:          logger.Nop(),
		buffers:      internal.NewBufferPool(1024),
	}
	internal.ApplyOptions(s, options...)

	s.pool = internal.NewWorkerPool(internal.WorkerPoolConfig{MaxWorkers: s.workers})
	s.srv = &fasthttp.Server{
		Name:               "onekit",
		Handler:            s.Handler(),
		ReadTimeout:        s.readTimeout,
		WriteTimeout:       s.writeTimeout,
		MaxRequestBodySize: s.maxBodySize,
		Logger:             s.log,
	}
	return s
}

func WithAddr(addr string) Option {
	return internal.OptionFunc[Server](func(s *Server) { s.addr = addr })
}

// WithWorkers bounds how many batch items run at once. Zero picks a default
// from the CPU count.
func WithWorkers(n int) Option {
	return internal.OptionFunc[Server](func(s *Server) { s.workers = n })
}

func WithTimeouts(read, write time.Duration) Option {
	return internal.OptionFunc[Server](func(s *Server) {
		s.readTimeout = read
		s.writeTimeout = write
	})
}

func WithMaxBodySize(n int) Option {
	return internal.OptionFunc[Server](func(s *Server) { s.maxBodySize = n })
}

// WithEnv sets the locale, location and clock used when a request leaves
// them unset.
func WithEnv(env wire.Env) Option {
	return internal.OptionFunc[Server](func(s *Server) { s.env = env })
}

func WithLogger(l *logger.Logger) Option {
	return internal.OptionFunc[Server](func(s *Server) {
		if l != nil {
			s.log = l
		}
	})
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.With(map[string]any{"addr": ln.Addr().String(), "workers": s.pool.Stats().MaxWorkers}).Info("serving")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		_ = s.pool.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.writeTimeout+time.Second)
	defer cancel()

	err := s.srv.ShutdownWithContext(shutdownCtx)
	// Serve may not have registered ln yet when shutdown ran.
	_ = ln.Close()
	if closeErr := s.pool.CloseWithTimeout(time.Second); err == nil {
		err = closeErr
	}
	<-errCh
	if errors.Is(err, context.DeadlineExceeded) {
		s.log.Warn("shutdown timed out")
	}
	s.log.Info("stopped")
	return err
}
