package uniqueid

import (
	"testing"

	"github.com/vango-dev/uniqid/pkg/uid"
	"github.com/vango-dev/uniqid/pkg/vdom"
)

func TestField(t *testing.T) {
	field := Field("Email", vdom.Type("email"), vdom.Name("email"))

	if field.Tag != "div" || field.Props["class"] != "field" || len(field.Children) != 2 {
		t.Fatalf("field = %+v", field)
	}
	label, input := field.Children[0], field.Children[1]
	if input.Props["type"] != "email" || input.Props["name"] != "email" {
		t.Errorf("control args not applied: %v", input.Props)
	}
	if input.Directives[0].Attr() != "id" {
		t.Error("id directive should come first")
	}

	ctx := withGen(uid.New())
	label.Directives[0].ServerRender(ctx, label)
	input.Directives[0].ServerRender(ctx, input)
	if label.Props["for"] != input.Props["id"] || input.Props["id"] != "id-1" {
		t.Errorf("label for=%v input id=%v", label.Props["for"], input.Props["id"])
	}
}

func TestHintedField(t *testing.T) {
	field := HintedField("Password", "At least 12 characters", vdom.Type("password"))
	if len(field.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(field.Children))
	}
	label, input, hint := field.Children[0], field.Children[1], field.Children[2]

	ctx := withGen(uid.New())
	for _, n := range []*vdom.VNode{label, input, hint} {
		for _, d := range n.Directives {
			d.ServerRender(ctx, n)
		}
	}

	if label.Props["for"] != "id-1" || input.Props["id"] != "id-1" {
		t.Errorf("label/input link broken: %v %v", label.Props, input.Props)
	}
	if input.Props["aria-describedby"] != "hint-2" || hint.Props["id"] != "hint-2" {
		t.Errorf("hint link broken: input=%v hint=%v", input.Props, hint.Props)
	}
}
