package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/uniqid/pkg/middleware"
	"github.com/vango-dev/uniqid/pkg/render"
	"github.com/vango-dev/uniqid/pkg/uid"
)

// HandlePage server-renders the page registered for the request path. The
// generator comes from the server's uid.Source, so with ScopeRequest every
// response numbers its identifiers from 1.
func (s *Server) HandlePage(w http.ResponseWriter, r *http.Request) {
	page, ok := s.page(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	start := time.Now()
	gen := s.source.Acquire()
	ctx := uid.WithGenerator(r.Context(), gen)
	ctx, span := s.tracing.StartRender(ctx, r.URL.Path)

	renderer := render.NewRenderer(render.RendererConfig{
		Pretty:   s.config.Pretty,
		LivePath: s.config.LivePath,
	})

	var buf bytes.Buffer
	err := renderer.RenderPage(ctx, &buf, render.PageData{
		Body:        page.Body(ctx),
		Title:       page.Title,
		Path:        r.URL.Path,
		SessionID:   uuid.NewString(),
		StyleSheets: page.StyleSheets,
	})
	stats := renderer.Stats()
	middleware.EndSpan(span, err,
		attribute.Int("uniqid.elements", stats.Elements),
		attribute.Int("uniqid.directives", stats.Directives),
	)
	if err != nil {
		s.logger.Error("render failed", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if s.metrics != nil {
		s.metrics.ObserveRender(time.Since(start), stats.Directives)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
