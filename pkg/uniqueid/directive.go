package uniqueid

import (
	"context"
	"sync"

	"github.com/vango-dev/uniqid/pkg/vdom"
)

// DirectiveName is reported by every binding directive.
const DirectiveName = "unique-id"

// directive writes a binding's value into one attribute of one element.
type directive struct {
	binding *Binding
	attr    string

	mu      sync.Mutex
	mounted bool
}

var _ vdom.Directive = (*directive)(nil)

func (d *directive) Name() string { return DirectiveName }

func (d *directive) Attr() string { return d.attr }

// ServerRender assigns the server-phase value so the initial markup is valid.
func (d *directive) ServerRender(ctx context.Context, el *vdom.VNode) {
	if el.Props == nil {
		el.Props = make(vdom.Props)
	}
	el.Props[d.attr] = d.binding.resolveServer(ctx)
}

// Mount overwrites the attribute with the client-phase value. The write is
// unconditional and marked Force so it wins over whatever the server wrote.
// Later calls for the same element do nothing.
func (d *directive) Mount(ctx context.Context, el *vdom.VNode) ([]vdom.Patch, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mounted {
		return nil, false
	}
	d.mounted = true

	value := d.binding.resolveClient(ctx)
	if el.Props == nil {
		el.Props = make(vdom.Props)
	}
	el.Props[d.attr] = value

	return []vdom.Patch{{
		Op:    vdom.PatchSetAttr,
		HID:   el.HID,
		Key:   d.attr,
		Value: value,
		Force: true,
	}}, true
}

// Mounted reports whether el's binding directive for attr has mounted.
func Mounted(el *vdom.VNode, attr string) bool {
	if el == nil {
		return false
	}
	for _, dir := range el.Directives {
		if d, ok := dir.(*directive); ok && d.attr == attr {
			d.mu.Lock()
			m := d.mounted
			d.mu.Unlock()
			return m
		}
	}
	return false
}

// BindingOf returns the binding attached to el's attr, if any.
func BindingOf(el *vdom.VNode, attr string) *Binding {
	if el == nil {
		return nil
	}
	for _, dir := range el.Directives {
		if d, ok := dir.(*directive); ok && d.attr == attr {
			return d.binding
		}
	}
	return nil
}
