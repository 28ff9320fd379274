package vdom

import (
	"context"
	"testing"
)

// stubDirective owns one attribute and records lifecycle calls.
type stubDirective struct {
	attr    string
	renders int
	mounts  int
}

func (s *stubDirective) Name() string { return "stub" }
func (s *stubDirective) Attr() string { return s.attr }

func (s *stubDirective) ServerRender(_ context.Context, el *VNode) {
	s.renders++
	el.Props[s.attr] = "server"
}

func (s *stubDirective) Mount(_ context.Context, el *VNode) ([]Patch, bool) {
	if s.mounts > 0 {
		return nil, false
	}
	s.mounts++
	el.Props[s.attr] = "client"
	return []Patch{{Op: PatchSetAttr, HID: el.HID, Key: s.attr, Value: "client", Force: true}}, true
}

func TestVKind_String(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCreateElement(t *testing.T) {
	d := &stubDirective{attr: "id"}
	node := Div(
		Class("card", "wide"),
		nil,
		Key("k1"),
		[]Attr{Name("n"), Type("text")},
		UseDirective(d),
		UseDirective(nil),
		"hello",
		Span(Text("child")),
		[]*VNode{P(), nil},
	)

	if node.Tag != "div" || node.Kind != KindElement {
		t.Fatalf("unexpected node %v/%q", node.Kind, node.Tag)
	}
	if node.Props["class"] != "card wide" {
		t.Errorf("class = %v", node.Props["class"])
	}
	if node.Key != "k1" {
		t.Errorf("Key = %q, want k1", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key should not be stored as a prop")
	}
	if node.Props["name"] != "n" || node.Props["type"] != "text" {
		t.Errorf("attr slice not applied: %v", node.Props)
	}
	if len(node.Directives) != 1 || node.Directives[0] != d {
		t.Fatalf("Directives = %v", node.Directives)
	}
	if !node.HasDirectives() || !node.OwnsAttr("id") || node.OwnsAttr("class") {
		t.Error("directive ownership not reported correctly")
	}
	if len(node.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(node.Children))
	}
	if node.Children[0].Kind != KindText || node.Children[0].Text != "hello" {
		t.Errorf("string child = %+v", node.Children[0])
	}
}

func TestCreateElement_Bundle(t *testing.T) {
	d := &stubDirective{attr: "for"}
	node := Label([]any{UseDirective(d), Class("lbl")}, Text("Email"))

	if len(node.Directives) != 1 {
		t.Fatalf("bundle directive not attached: %v", node.Directives)
	}
	if node.Props["class"] != "lbl" {
		t.Errorf("bundle attribute not applied: %v", node.Props)
	}
	if len(node.Children) != 1 || node.Children[0].Text != "Email" {
		t.Errorf("children = %+v", node.Children)
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("input") || IsVoidElement("div") {
		t.Error("IsVoidElement mismatch")
	}
}

func TestFragmentAndExpand(t *testing.T) {
	calls := 0
	comp := Func(func() *VNode {
		calls++
		return Input(ID("x"))
	})

	frag := Fragment("a", nil, Text("b"), comp, []*VNode{Br()})
	if len(frag.Children) != 4 {
		t.Fatalf("fragment children = %d, want 4", len(frag.Children))
	}

	compNode := frag.Children[2]
	Expand(compNode)
	Expand(compNode)
	if calls != 1 {
		t.Errorf("component rendered %d times, want 1", calls)
	}
	if len(compNode.Children) != 1 || compNode.Children[0].Tag != "input" {
		t.Errorf("expanded children = %+v", compNode.Children)
	}

	if Expand(nil) != nil {
		t.Error("Expand(nil) should be nil")
	}
}

func TestAttrString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{true, "true"},
		{42, "42"},
		{int64(-3), "-3"},
		{uint64(7), "7"},
		{1.5, "1.5"},
		{struct{ A int }{1}, "{1}"},
	}
	for _, tt := range tests {
		if got := AttrString(tt.in); got != tt.want {
			t.Errorf("AttrString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPatchOp_String(t *testing.T) {
	if PatchSetAttr.String() != "SetAttr" || PatchOp(0xFF).String() != "Unknown" {
		t.Error("PatchOp.String mismatch")
	}
}
