package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/vango-dev/uniqid/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	r := NewRenderer(RendererConfig{})
	var buf bytes.Buffer

	err := r.RenderPage(context.Background(), &buf, PageData{
		Title:       "Sign <up>",
		Path:        "/signup?x=1",
		SessionID:   "abc",
		StyleSheets: []string{"/app.css"},
		Body:        vdom.Main(vdom.H1(vdom.Text("Hi"))),
	})
	if err != nil {
		t.Fatalf("RenderPage error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Sign &lt;up&gt;</title>",
		`<link rel="stylesheet" href="/app.css">`,
		`<meta name="uniqid-live" content="/_live?path=%2Fsignup%3Fx%3D1">`,
		`<meta name="uniqid-session" content="abc">`,
		"<main><h1>Hi</h1></main>",
		"</html>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestRenderPage_LangAndLivePath(t *testing.T) {
	r := NewRenderer(RendererConfig{LivePath: "/ws"})
	var buf bytes.Buffer
	if err := r.RenderPage(context.Background(), &buf, PageData{Lang: "de"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `<html lang="de">`) {
		t.Error("lang not applied")
	}
	if !strings.Contains(buf.String(), `content="/ws"`) {
		t.Error("live path not applied")
	}
}
