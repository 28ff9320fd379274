package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/vango-dev/uniqid/pkg/uid"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics_ObservesGenerator(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	gen := uid.New(uid.WithName("ssr"), uid.WithObserver(m))
	gen.Next()
	gen.NewID("email-")
	gen.Next()

	if got := metricCounterValue(t, m.idsIssued.WithLabelValues("ssr")); got != 3 {
		t.Errorf("ids_issued_total{generator=ssr} = %v, want 3", got)
	}
	if got := metricCounterValue(t, m.idsIssued.WithLabelValues("client")); got != 0 {
		t.Errorf("ids_issued_total{generator=client} = %v, want 0", got)
	}
}

func TestMetrics_RenderAndHydrate(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.ObserveRender(5*time.Millisecond, 4)
	m.ObserveRender(time.Millisecond, 2)
	m.ObserveHydrate(4, 0)
	m.ObserveHydrate(0, 4)
	m.PatchesSent(4)

	if got := metricHistogramCount(t, m.renderDuration); got != 2 {
		t.Errorf("render_duration_seconds count = %d, want 2", got)
	}
	if got := metricCounterValue(t, m.directivesRendered); got != 6 {
		t.Errorf("directives_rendered_total = %v, want 6", got)
	}
	if got := metricCounterValue(t, m.directivesMounted); got != 4 {
		t.Errorf("directives_mounted_total = %v, want 4", got)
	}
	if got := metricCounterValue(t, m.directivesSkipped); got != 4 {
		t.Errorf("directives_skipped_total = %v, want 4", got)
	}
	if got := metricCounterValue(t, m.patchesSent); got != 4 {
		t.Errorf("patches_sent_total = %v, want 4", got)
	}
}

func TestMetrics_Sessions(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	if got := metricGaugeValue(t, m.liveSessions); got != 1 {
		t.Errorf("live_sessions = %v, want 1", got)
	}
}

func TestMetrics_HTTP(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	r := chi.NewRouter()
	r.Use(m.HTTP)
	r.Get("/pages/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	for _, path := range []string{"/pages/a", "/pages/b", "/broken"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := metricCounterValue(t, m.httpRequests.WithLabelValues("GET", "/pages/{name}", "200")); got != 2 {
		t.Errorf("http_requests_total{/pages/{name},200} = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.httpRequests.WithLabelValues("GET", "/broken", "500")); got != 1 {
		t.Errorf("http_requests_total{/broken,500} = %v, want 1", got)
	}
}

func TestMetrics_Options(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(
		WithRegistry(reg),
		WithNamespace("app"),
		WithSubsystem("ids"),
		WithConstLabels(prometheus.Labels{"env": "test"}),
		WithBuckets([]float64{0.1, 1}),
	)
	m.IDIssued("process", "id-1")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() != "app_ids_ids_issued_total" {
			continue
		}
		found = true
		labels := f.GetMetric()[0].GetLabel()
		hasEnv := false
		for _, l := range labels {
			if l.GetName() == "env" && l.GetValue() == "test" {
				hasEnv = true
			}
		}
		if !hasEnv {
			t.Errorf("const label env=test missing: %v", labels)
		}
	}
	if !found {
		t.Error("app_ids_ids_issued_total not registered")
	}
}
