// Package middleware provides Prometheus metrics and OpenTelemetry tracing
// for identifier generation, server rendering, hydration and HTTP traffic.
//
// # Prometheus Metrics
//
// Metrics are registered with promauto on the configured registry:
//
//	m := middleware.NewMetrics(
//	    middleware.WithNamespace("myapp"),
//	    middleware.WithRegistry(reg),
//	)
//	gen := uid.New(uid.WithObserver(m))
//
// Metrics collected:
//   - uniqid_ids_issued_total: Counter of identifiers by generator name
//   - uniqid_render_duration_seconds: Histogram of SSR duration
//   - uniqid_directives_rendered_total: Counter of directive server renders
//   - uniqid_directives_mounted_total: Counter of directive mounts
//   - uniqid_directives_skipped_total: Counter of repeated mount attempts
//   - uniqid_patches_sent_total: Counter of patches written to live clients
//   - uniqid_live_sessions: Gauge of open live connections
//   - uniqid_http_requests_total: Counter of HTTP requests by method, route and status
//
// # OpenTelemetry
//
// Tracing uses the global tracer provider unless one is passed with
// WithTracerProvider:
//
//	tr := middleware.NewTracing(middleware.WithTracerName("myapp"))
//	r.Use(tr.HTTP)
//	ctx, span := tr.StartRender(ctx, "/signup")
//	defer span.End()
package middleware
