package render

import (
	"context"
	"strings"
	"testing"

	"github.com/vango-dev/uniqid/pkg/uid"
	"github.com/vango-dev/uniqid/pkg/uniqueid"
	"github.com/vango-dev/uniqid/pkg/vdom"
)

func serverCtx() (context.Context, *uid.Generator) {
	gen := uid.New(uid.WithName("server"))
	return uid.WithGenerator(context.Background(), gen), gen
}

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(context.Background(), vdom.Text("Hello, World!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(context.Background(), vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElements(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "sorted attributes",
			node: vdom.Div(vdom.Class("card"), vdom.ID("main"), vdom.Text("x")),
			want: `<div class="card" id="main">x</div>`,
		},
		{
			name: "void element",
			node: vdom.Input(vdom.Type("text")),
			want: `<input type="text">`,
		},
		{
			name: "boolean attributes",
			node: vdom.Input(vdom.Required(), vdom.Disabled(false)),
			want: `<input required>`,
		},
		{
			name: "escaped attribute",
			node: vdom.Div(vdom.Attribute("title", `a"b`)),
			want: `<div title="a&quot;b"></div>`,
		},
		{
			name: "fragment and raw",
			node: vdom.Fragment(vdom.Raw("<hr>"), vdom.Span()),
			want: `<hr><span></span>`,
		},
		{
			name: "component",
			node: vdom.Fragment(vdom.Func(func() *vdom.VNode { return vdom.P(vdom.Text("c")) })),
			want: `<p>c</p>`,
		},
		{
			name: "empty values and internal props are skipped",
			node: vdom.Div(vdom.Attribute("_internal", "x"), vdom.Attribute("title", "")),
			want: `<div></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRenderer(RendererConfig{}).RenderToString(context.Background(), tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(context.Background(), &vdom.VNode{Kind: vdom.VKind(42)})
	if err == nil {
		t.Fatal("expected error for unknown node kind")
	}
}

func TestRenderDirectives_ServerIDs(t *testing.T) {
	ctx, gen := serverCtx()
	email := uniqueid.New("")
	tree := vdom.Form(
		vdom.Label(email.For(), vdom.Text("Email")),
		vdom.Input(email.ID(), vdom.Type("email")),
	)

	renderer := NewRenderer(RendererConfig{})
	html, err := renderer.RenderToString(ctx, tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<form><label for="id-1" data-hid="h1">Email</label><input id="id-1" type="email" data-hid="h2"></form>`
	if html != want {
		t.Errorf("got  %q\nwant %q", html, want)
	}
	if gen.Current() != 1 {
		t.Errorf("server generator advanced %d times, want 1", gen.Current())
	}
	if email.State() != uniqueid.ServerBound {
		t.Errorf("binding state = %v, want ServerBound", email.State())
	}
	if s := renderer.Stats(); s.Directives != 2 || s.Elements != 3 {
		t.Errorf("Stats() = %+v", s)
	}

	renderer.Reset()
	if s := renderer.Stats(); s.Directives != 0 {
		t.Errorf("Reset did not clear stats: %+v", s)
	}
}

func TestRenderDirectives_ExplicitValue(t *testing.T) {
	ctx, gen := serverCtx()
	b := uniqueid.New("newsletter")
	html, err := NewRenderer(RendererConfig{}).RenderToString(ctx, vdom.Input(b.ID()))
	if err != nil {
		t.Fatal(err)
	}
	if extractAttrValue(t, html, "id") != "newsletter" {
		t.Errorf("explicit id not rendered: %q", html)
	}
	if gen.Current() != 0 {
		t.Error("explicit value should not consume the generator")
	}
}

func TestRenderPretty(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true})
	html, err := r.RenderToString(context.Background(), vdom.Div(vdom.P(vdom.Text("a"))))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "\n  <p>a</p>\n") {
		t.Errorf("pretty output = %q", html)
	}
}

func TestRenderNilContextAndNode(t *testing.T) {
	r := NewRenderer(RendererConfig{})
	html, err := r.RenderToString(nil, nil)
	if err != nil || html != "" {
		t.Errorf("RenderToString(nil, nil) = %q, %v", html, err)
	}
}
