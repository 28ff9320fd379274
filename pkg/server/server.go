package server

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/uniqid/pkg/middleware"
	"github.com/vango-dev/uniqid/pkg/routepath"
	"github.com/vango-dev/uniqid/pkg/uid"
	"github.com/vango-dev/uniqid/pkg/vdom"
)

// Page is a registered page. Body is called once per server render and
// once per live session, and must build a fresh tree each time.
type Page struct {
	Title       string
	StyleSheets []string
	Body        func(ctx context.Context) *vdom.VNode
}

// Server renders pages and runs live resync sessions.
type Server struct {
	config *ServerConfig

	mu    sync.RWMutex
	pages map[string]Page

	source   *uid.Source
	upgrader websocket.Upgrader
	sessions *sessionRegistry

	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer
	tracing  *middleware.Tracing

	httpServer *http.Server
	logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics records server activity on m and serves gatherer on
// MetricsPath.
func WithMetrics(m *middleware.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = gatherer
	}
}

// WithTracing traces HTTP requests, renders and hydration passes.
func WithTracing(t *middleware.Tracing) Option {
	return func(s *Server) {
		s.tracing = t
	}
}

// New creates a new Server with the given configuration.
func New(config *ServerConfig, opts ...Option) *Server {
	s := &Server{
		config:   config.withDefaults(),
		pages:    make(map[string]Page),
		sessions: newSessionRegistry(),
		logger:   slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  s.config.ReadBufferSize,
		WriteBufferSize: s.config.WriteBufferSize,
		CheckOrigin:     s.config.CheckOrigin,
	}
	s.source = uid.NewSource(s.config.Scope, s.generatorOptions("ssr")...)
	return s
}

// generatorOptions returns the options for a generator labelled name.
func (s *Server) generatorOptions(name string) []uid.Option {
	opts := []uid.Option{uid.WithName(name), uid.WithPrefix(s.config.Prefix)}
	if s.metrics != nil {
		opts = append(opts, uid.WithObserver(s.metrics))
	}
	return opts
}

// Handle registers page at path. Registering a path twice replaces the
// earlier page. Handle panics if path cannot be canonicalized.
func (s *Server) Handle(path string, page Page) {
	path = routepath.MustCanonicalize(path)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[path] = page
}

// Paths returns the registered page paths, sorted.
func (s *Server) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.pages))
	for p := range s.pages {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (s *Server) page(path string) (Page, bool) {
	path, err := routepath.Canonicalize(path)
	if err != nil {
		return Page{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[path]
	return p, ok
}

// Router builds the HTTP handler:
//
//	GET /healthz     liveness probe
//	GET <metrics>    Prometheus scrape (when metrics are enabled)
//	GET <live>       websocket resync
//	GET /*           registered pages
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.logRequests)
	if s.metrics != nil {
		r.Use(s.metrics.HTTP)
	}
	if s.tracing != nil {
		r.Use(s.tracing.HTTP)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	if s.gatherer != nil {
		r.Method(http.MethodGet, s.config.MetricsPath,
			promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	r.Get(s.config.LivePath, s.HandleLive)
	r.Get("/*", s.HandlePage)
	return r
}

// logRequests logs each request at Debug, and at Warn for server errors.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		level := slog.LevelDebug
		if ww.Status() >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		s.logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Router(),
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address, "scope", s.config.Scope.String())
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes live sessions and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.sessions.closeAll()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// SessionCount returns the number of open live sessions.
func (s *Server) SessionCount() int {
	return s.sessions.count()
}

// Config returns the effective server configuration.
func (s *Server) Config() *ServerConfig {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}
