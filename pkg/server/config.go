package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/vango-dev/uniqid/pkg/uid"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	// Address is the host:port to listen on.
	// Default: "localhost:3000".
	Address string

	// LivePath is the websocket route.
	// Default: "/_live".
	LivePath string

	// MetricsPath is the Prometheus scrape route, served when metrics are
	// enabled with WithMetrics.
	// Default: "/metrics".
	MetricsPath string

	// Scope selects how SSR requests share identifier generators.
	// Default: uid.ScopeRequest.
	Scope uid.Scope

	// Prefix is the identifier prefix for server and client generators.
	// Default: uid.DefaultPrefix.
	Prefix string

	// Pretty enables indented HTML output.
	Pretty bool

	// ReadBufferSize and WriteBufferSize size the websocket buffers.
	// Default: 4096 each.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the websocket Origin header.
	// Default: accepts same-origin requests and requests without Origin.
	CheckOrigin func(r *http.Request) bool

	// MaxMessageSize bounds incoming websocket messages.
	// Default: 64KB.
	MaxMessageSize int64

	// HandshakeTimeout bounds the wait for the ClientHello.
	// Default: 10 seconds.
	HandshakeTimeout time.Duration

	// ReadTimeout bounds the wait for client messages after the resync.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout bounds each websocket write.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// ReadHeaderTimeout is passed to http.Server.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 30 seconds.
	ShutdownTimeout time.Duration
}

// DefaultServerConfig returns a ServerConfig with defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           "localhost:3000",
		LivePath:          "/_live",
		MetricsPath:       "/metrics",
		Scope:             uid.ScopeRequest,
		Prefix:            uid.DefaultPrefix,
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		CheckOrigin:       sameOrigin,
		MaxMessageSize:    64 * 1024,
		HandshakeTimeout:  10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   30 * time.Second,
	}
}

// withDefaults fills unset fields from DefaultServerConfig.
func (c *ServerConfig) withDefaults() *ServerConfig {
	d := DefaultServerConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.LivePath == "" {
		out.LivePath = d.LivePath
	}
	if out.MetricsPath == "" {
		out.MetricsPath = d.MetricsPath
	}
	if out.Prefix == "" {
		out.Prefix = d.Prefix
	}
	if out.ReadBufferSize == 0 {
		out.ReadBufferSize = d.ReadBufferSize
	}
	if out.WriteBufferSize == 0 {
		out.WriteBufferSize = d.WriteBufferSize
	}
	if out.CheckOrigin == nil {
		out.CheckOrigin = d.CheckOrigin
	}
	if out.MaxMessageSize == 0 {
		out.MaxMessageSize = d.MaxMessageSize
	}
	if out.HandshakeTimeout == 0 {
		out.HandshakeTimeout = d.HandshakeTimeout
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = d.ReadTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = d.WriteTimeout
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	return &out
}

// sameOrigin accepts requests whose Origin host matches the Host header.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}
