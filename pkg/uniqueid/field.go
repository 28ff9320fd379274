package uniqueid

import "github.com/vango-dev/uniqid/pkg/vdom"

// Field builds a label and control linked by a fresh binding. control holds
// extra arguments for the input element; the binding's directive is added
// first so the control's id is always owned by it.
//
//	uniqueid.Field("Email", vdom.Type("email"), vdom.Name("email"))
func Field(label string, control ...any) *vdom.VNode {
	b := New("")
	args := append([]any{b.ID()}, control...)
	return vdom.Div(
		vdom.Class("field"),
		vdom.Label(b.For(), vdom.Text(label)),
		vdom.Input(args...),
	)
}

// HintedField is Field plus a hint paragraph linked via aria-describedby.
func HintedField(label, hint string, control ...any) *vdom.VNode {
	input := New("")
	help := New("", WithPrefix("hint-"))
	args := append([]any{input.ID(), help.DescribedBy()}, control...)
	return vdom.Div(
		vdom.Class("field"),
		vdom.Label(input.For(), vdom.Text(label)),
		vdom.Input(args...),
		vdom.P(help.ID(), vdom.Class("hint"), vdom.Text(hint)),
	)
}
