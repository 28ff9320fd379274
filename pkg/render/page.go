package render

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/vango-dev/uniqid/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Path is the request path the page was rendered for. It is announced
	// to the client so the live connection can activate the same page.
	Path string

	// SessionID identifies the render for logs and the live handshake.
	SessionID string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(ctx, w, page.Body); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n</body>\n</html>\n"); err != nil {
		return err
	}
	return nil
}

func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<head>\n<meta charset=\"utf-8\">\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, "<link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	live := r.config.LivePath
	if page.Path != "" {
		live += "?path=" + url.QueryEscape(page.Path)
	}
	if _, err := fmt.Fprintf(w, "<meta name=\"uniqid-live\" content=\"%s\">\n", escapeAttr(live)); err != nil {
		return err
	}
	if page.SessionID != "" {
		if _, err := fmt.Fprintf(w, "<meta name=\"uniqid-session\" content=\"%s\">\n", escapeAttr(page.SessionID)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</head>\n")
	return err
}
