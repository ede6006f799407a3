// Package server exposes a network.Session over HTTP.
//
// Endpoints:
//
//	POST /v1/branches        - insert a branch ({"name"} or {"name","lat","lon"})
//	GET  /v1/branches        - list branches in insertion order
//	GET  /v1/branches/:name  - one branch
//	GET  /v1/mst             - current tree (?verify=true cross-checks it)
//	GET  /v1/places          - gazetteer entries
//	GET  /healthz            - liveness
//	GET  /metrics            - Prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/branchnet/gazetteer"
	"github.com/katalvlaran/branchnet/metrics"
	"github.com/katalvlaran/branchnet/network"
)

// Defaults for the HTTP server timeouts.
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Server serves one session.
type Server struct {
	session *network.Session
	places  *gazetteer.Gazetteer
	metrics *metrics.Registry
	logger  *log.Logger

	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(s *Server)

// WithTimeouts sets the read, write and graceful-shutdown timeouts. Zero keeps the default.
func WithTimeouts(read, write, shutdown time.Duration) Option {
	return func(s *Server) {
		if read > 0 {
			s.readTimeout = read
		}
		if write > 0 {
			s.writeTimeout = write
		}
		if shutdown > 0 {
			s.shutdownTimeout = shutdown
		}
	}
}

// New returns a server. A nil gazetteer selects the built-in districts, a nil
// registry disables /metrics, and a nil logger selects log.Default().
func New(session *network.Session, places *gazetteer.Gazetteer, reg *metrics.Registry, logger *log.Logger, opts ...Option) *Server {
	if places == nil {
		places = gazetteer.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		session:         session,
		places:          places,
		metrics:         reg,
		logger:          logger,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Router builds the gin engine with all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.instrument())

	r.GET("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := r.Group("/v1")
	v1.POST("/branches", s.handleInsert)
	v1.GET("/branches", s.handleBranches)
	v1.GET("/branches/:name", s.handleBranch)
	v1.GET("/mst", s.handleTree)
	v1.GET("/places", s.handlePlaces)

	return r
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Router(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String(), "session", s.session.ID())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}

// instrument records every request in metrics and the debug log.
func (s *Server) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		d := time.Since(start)
		s.metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(status), d)
		s.logger.Debug("request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", status, "took", d)
	}
}
