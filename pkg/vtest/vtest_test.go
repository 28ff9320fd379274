package vtest

import (
	"testing"

	"github.com/vango-dev/uniqid/pkg/uid"
	"github.com/vango-dev/uniqid/pkg/uniqueid"
	"github.com/vango-dev/uniqid/pkg/vdom"
)

func TestNewCtx(t *testing.T) {
	ctx := NewCtx().WithPrefix("x-").WithStart(4).Build()
	gen := Generator(ctx)
	if gen.Name() != "test" {
		t.Errorf("Name() = %q", gen.Name())
	}
	if got := gen.Next(); got != "x-5" {
		t.Errorf("Next() = %q, want x-5", got)
	}
}

func TestRenderAssertions(t *testing.T) {
	ctx := NewCtx().WithStart(10).Build()
	field := uniqueid.Field("Email", vdom.Type("email"))

	ExpectAttribute(t, ctx, field, "for", "id-11")
	ExpectContains(t, ctx, field, `<input id="id-11"`)
	ExpectNotContains(t, ctx, field, "id-12")
	ExpectLinked(t, field)
}

func TestActivate(t *testing.T) {
	ctx := NewCtx().WithStart(10).Build()
	field := uniqueid.HintedField("Email", "Required")
	RenderToString(t, ctx, field)

	res := Activate(t, field, uid.WithStart(100))
	if res.Mounted != 4 || len(res.Patches) != 4 {
		t.Errorf("Mounted = %d, patches = %d, want 4 and 4", res.Mounted, len(res.Patches))
	}
	ExpectAttribute(t, ctx, field, "for", "id-101")
	ExpectAttribute(t, ctx, field, "aria-describedby", "hint-102")
	ExpectLinked(t, field)
}

func TestLinkProblems(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
	}{
		{"duplicate id", vdom.Div(vdom.Span(vdom.ID("a")), vdom.Span(vdom.ID("a")))},
		{"dangling for", vdom.Div(vdom.Label(vdom.For("missing")))},
		{"dangling aria", vdom.Div(vdom.Input(vdom.ID("a"), vdom.AriaDescribedBy("a b")))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if problems := LinkProblems(tc.node); len(problems) != 1 {
				t.Errorf("LinkProblems() = %q, want one problem", problems)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("ab", 3); got != "ab" {
		t.Errorf("truncate() = %q", got)
	}
}
