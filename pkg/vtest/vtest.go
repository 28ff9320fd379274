package vtest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/uniqid/pkg/hydrate"
	"github.com/vango-dev/uniqid/pkg/render"
	"github.com/vango-dev/uniqid/pkg/uid"
	"github.com/vango-dev/uniqid/pkg/vdom"
)

// CtxBuilder allows fluent construction of render contexts.
type CtxBuilder struct {
	ctx  context.Context
	opts []uid.Option
}

// NewCtx creates a new context builder. The built context carries a fresh
// generator named "test".
func NewCtx() *CtxBuilder {
	return &CtxBuilder{
		ctx:  context.Background(),
		opts: []uid.Option{uid.WithName("test")},
	}
}

// WithPrefix sets the generator prefix.
func (b *CtxBuilder) WithPrefix(prefix string) *CtxBuilder {
	b.opts = append(b.opts, uid.WithPrefix(prefix))
	return b
}

// WithStart sets the generator's initial counter.
//
// Example:
//
//	ctx := vtest.NewCtx().WithStart(41).Build() // first id is id-42
func (b *CtxBuilder) WithStart(n uint64) *CtxBuilder {
	b.opts = append(b.opts, uid.WithStart(n))
	return b
}

// WithParent derives the context from parent.
func (b *CtxBuilder) WithParent(parent context.Context) *CtxBuilder {
	b.ctx = parent
	return b
}

// Build returns the context.
func (b *CtxBuilder) Build() context.Context {
	return uid.WithGenerator(b.ctx, uid.New(b.opts...))
}

// Generator returns the generator carried by ctx.
func Generator(ctx context.Context) *uid.Generator {
	return uid.FromContext(ctx)
}

// RenderToString renders node with ctx, failing the test on error.
func RenderToString(t *testing.T, ctx context.Context, node *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(ctx, node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t *testing.T, ctx context.Context, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(t, ctx, node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, ctx context.Context, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(t, ctx, node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, ctx, form, "for", "id-1")
func ExpectAttribute(t *testing.T, ctx context.Context, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(t, ctx, node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// referenceAttrs hold space-separated id references.
var referenceAttrs = []string{"for", "aria-describedby", "aria-labelledby", "aria-controls"}

// ExpectLinked asserts that ids in node are unique and that every
// reference attribute names an existing id. Call it after a render or
// activation, when bindings have written their values.
func ExpectLinked(t *testing.T, node *vdom.VNode) {
	t.Helper()
	for _, problem := range LinkProblems(node) {
		t.Error(problem)
	}
}

// LinkProblems lists duplicate ids and dangling references in node.
func LinkProblems(node *vdom.VNode) []string {
	var problems []string

	ids := map[string]int{}
	vdom.Walk(node, func(n *vdom.VNode) bool {
		vdom.Expand(n)
		if id := vdom.AttrString(n.Props["id"]); id != "" {
			ids[id]++
			if ids[id] == 2 {
				problems = append(problems, fmt.Sprintf("id %q is not unique", id))
			}
		}
		return true
	})

	vdom.Walk(node, func(n *vdom.VNode) bool {
		for _, key := range referenceAttrs {
			for _, ref := range strings.Fields(vdom.AttrString(n.Props[key])) {
				if ids[ref] == 0 {
					problems = append(problems, fmt.Sprintf("<%s %s=%q> references a missing id", n.Tag, key, ref))
				}
			}
		}
		return true
	})
	return problems
}

// Activate hydrates node with a fresh client generator, failing the test
// on error. opts configure the client generator.
func Activate(t *testing.T, node *vdom.VNode, opts ...uid.Option) *hydrate.Result {
	t.Helper()
	gen := uid.New(append([]uid.Option{uid.WithName("client")}, opts...)...)
	res, err := hydrate.New(hydrate.WithGenerator(gen)).Hydrate(context.Background(), node)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	return res
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
