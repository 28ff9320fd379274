package main

import (
	"context"

	"github.com/vango-dev/uniqid/pkg/server"
	"github.com/vango-dev/uniqid/pkg/uniqueid"
	"github.com/vango-dev/uniqid/pkg/vdom"
)

// signupForm is the demo page body: a form whose fields, hint and
// fieldset legend are linked by unique-id bindings.
func signupForm(ctx context.Context) *vdom.VNode {
	plan := uniqueid.New("", uniqueid.WithPrefix("plan-"))
	return vdom.Main(
		vdom.H1(vdom.Text("Create an account")),
		vdom.Form(
			vdom.Class("signup"),
			uniqueid.Field("Name", vdom.Type("text"), vdom.Name("name")),
			uniqueid.HintedField("Email", "We never share your address.",
				vdom.Type("email"), vdom.Name("email"), vdom.Required()),
			vdom.Fieldset(
				plan.LabelledBy(),
				vdom.Legend(plan.ID(), vdom.Text("Plan")),
				uniqueid.Field("Monthly", vdom.Type("radio"), vdom.Name("plan"), vdom.Value("monthly")),
				uniqueid.Field("Yearly", vdom.Type("radio"), vdom.Name("plan"), vdom.Value("yearly")),
			),
			vdom.Button(vdom.Type("submit"), vdom.Text("Sign up")),
		),
	)
}

func demoPage() server.Page {
	return server.Page{Title: "Sign up", Body: signupForm}
}
