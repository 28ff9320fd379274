package hydrate

import (
	"context"
	"log/slog"

	"github.com/vango-dev/uniqid/internal/errors"
	"github.com/vango-dev/uniqid/pkg/uid"
	"github.com/vango-dev/uniqid/pkg/vdom"
)

// Result summarises one hydration pass.
type Result struct {
	// Patches are the forced writes produced by directive mounts, in
	// document order.
	Patches []vdom.Patch

	// Mounted counts directives whose Mount hook ran in this pass.
	Mounted int

	// Skipped counts directives that refused to mount because they had
	// already mounted, in this or any earlier pass.
	Skipped int
}

// Hydrator fires directive mount hooks. Directives guard their own mount,
// so hydrating the same tree twice mounts nothing new and a Hydrator keeps
// no state between passes.
type Hydrator struct {
	logger    *slog.Logger
	generator *uid.Generator
	assign    bool
}

// Option configures a Hydrator.
type Option func(*Hydrator)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hydrator) {
		h.logger = logger
	}
}

// WithGenerator sets the client generator. Without it the generator is
// taken from the context passed to Hydrate.
func WithGenerator(g *uid.Generator) Option {
	return func(h *Hydrator) {
		h.generator = g
	}
}

// WithoutHIDAssignment disables filling in missing hydration IDs. Elements
// carrying directives must then already have one, or Hydrate fails with E044.
func WithoutHIDAssignment() Option {
	return func(h *Hydrator) {
		h.assign = false
	}
}

// New creates a Hydrator.
func New(opts ...Option) *Hydrator {
	h := &Hydrator{
		logger: slog.Default().With("component", "hydrate"),
		assign: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hydrate activates root. Missing hydration IDs are assigned in document
// order starting at h1, which reproduces the server's assignment for an
// identically structured tree.
func (h *Hydrator) Hydrate(ctx context.Context, root *vdom.VNode) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if h.generator != nil {
		ctx = uid.WithGenerator(ctx, h.generator)
	}

	if h.assign {
		vdom.AssignHIDs(root, vdom.NewHIDGenerator())
	}

	res := &Result{}
	var walkErr error

	vdom.Walk(root, func(n *vdom.VNode) bool {
		if walkErr != nil {
			return false
		}
		vdom.Expand(n)
		if !n.HasDirectives() {
			return true
		}
		if n.HID == "" {
			walkErr = errors.New("E044").
				WithDetail("<" + n.Tag + "> carries a " + n.Directives[0].Name() + " directive but no hydration ID")
			return false
		}
		for _, d := range n.Directives {
			patches, ok := d.Mount(ctx, n)
			if !ok {
				res.Skipped++
				continue
			}
			res.Mounted++
			res.Patches = append(res.Patches, patches...)
		}
		return true
	})

	if walkErr != nil {
		h.logger.Warn("hydration aborted", "error", walkErr)
		return res, walkErr
	}

	h.logger.Debug("hydrated",
		"mounted", res.Mounted,
		"skipped", res.Skipped,
		"patches", len(res.Patches),
		"generator", uid.FromContext(ctx).Name(),
	)
	return res, nil
}

// Apply writes patches into the tree addressed by HID, the way a client
// applies them to its DOM. Forced writes are applied even when the target
// already holds the value. It returns the number of patches applied.
func Apply(root *vdom.VNode, patches []vdom.Patch) int {
	index := vdom.CollectHIDs(root)
	applied := 0
	for _, p := range patches {
		n := index[p.HID]
		if n == nil {
			continue
		}
		switch p.Op {
		case vdom.PatchSetAttr:
			if !p.Force && vdom.AttrString(n.Props[p.Key]) == p.Value {
				continue
			}
			if n.Props == nil {
				n.Props = make(vdom.Props)
			}
			n.Props[p.Key] = p.Value
			applied++
		case vdom.PatchRemoveAttr:
			delete(n.Props, p.Key)
			applied++
		}
	}
	return applied
}
