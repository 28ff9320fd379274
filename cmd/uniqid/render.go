package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vango-dev/uniqid/pkg/hydrate"
	"github.com/vango-dev/uniqid/pkg/render"
	"github.com/vango-dev/uniqid/pkg/uid"
	"github.com/vango-dev/uniqid/pkg/vdom"
)

type renderOptions struct {
	prefix  string
	offset  int
	pretty  bool
	page    bool
	hydrate bool
}

func renderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo signup form",
		Long: `Render the demo signup form with a server generator.

With --hydrate the rendered tree is then activated with a separate client
generator, and the forced attribute writes are printed along with the
markup as the client would see it.

--offset consumes identifiers from the server generator before rendering,
simulating other output on the same page. The client generator does not
see those, so the server and client values diverge.

Examples:
  uniqid render --pretty
  uniqid render --hydrate --offset 5
  uniqid render --page`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.prefix, "prefix", "p", uid.DefaultPrefix, "Identifier prefix")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Identifiers consumed by the server before rendering")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the HTML output")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Render a full HTML document")
	cmd.Flags().BoolVar(&opts.hydrate, "hydrate", false, "Hydrate with a client generator and print the patches")

	return cmd
}

func runRender(ctx context.Context, out io.Writer, opts renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	serverGen := uid.New(uid.WithPrefix(opts.prefix), uid.WithName("ssr"))
	for i := 0; i < opts.offset; i++ {
		serverGen.Next()
	}
	ctx = uid.WithGenerator(ctx, serverGen)

	tree := signupForm(ctx)
	renderer := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty})
	if opts.page {
		if err := renderer.RenderPage(ctx, out, render.PageData{Title: "Sign up", Body: tree, Path: "/signup"}); err != nil {
			return err
		}
	} else {
		html, err := renderer.RenderToString(ctx, tree)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, html)
	}

	if !opts.hydrate {
		return nil
	}

	// The client builds its own tree, as a browser would from the page code.
	clientTree := signupForm(ctx)
	clientGen := uid.New(uid.WithPrefix(opts.prefix), uid.WithName("client"))
	res, err := hydrate.New(hydrate.WithGenerator(clientGen)).Hydrate(ctx, clientTree)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "-- patches (%d mounted, %d forced writes) --\n", res.Mounted, len(res.Patches))
	for _, p := range res.Patches {
		fmt.Fprintln(out, formatPatch(p))
	}

	// Reconciling the two trees never touches directive-owned attributes,
	// which is why the forced writes above are needed.
	diff := vdom.Diff(tree, clientTree)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "-- diff (%d patches) --\n", len(diff))
	for _, p := range diff {
		fmt.Fprintln(out, formatPatch(p))
	}

	html, err := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty}).RenderToString(ctx, clientTree)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "-- after hydration --")
	fmt.Fprintln(out, html)
	return nil
}

func formatPatch(p vdom.Patch) string {
	s := fmt.Sprintf("%s %s %s=%q", p.Op, p.HID, p.Key, p.Value)
	if p.Force {
		s += " (forced)"
	}
	return s
}
