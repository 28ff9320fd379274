package uniqueid

import (
	"context"
	"sync"

	"github.com/vango-dev/uniqid/pkg/uid"
	"github.com/vango-dev/uniqid/pkg/vdom"
)

// State is the lifecycle state of a Binding.
type State uint8

const (
	Unbound     State = iota // created, no value yet
	ServerBound              // first server render assigned a value
	ClientBound              // first client mount regenerated the value; terminal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unbound:
		return "Unbound"
	case ServerBound:
		return "ServerBound"
	case ClientBound:
		return "ClientBound"
	default:
		return "Unknown"
	}
}

// Binding is one identifier shared by an owning element and the elements
// that reference it.
type Binding struct {
	mu       sync.Mutex
	explicit string
	prefix   string
	state    State
	value    string
}

// Option configures a Binding.
type Option func(*Binding)

// WithPrefix sets the prefix passed to the generator. Empty means the
// generator's own prefix.
func WithPrefix(prefix string) Option {
	return func(b *Binding) {
		b.prefix = prefix
	}
}

// New creates an Unbound binding. A non-empty explicit value is used as the
// identifier in both phases instead of a generated one.
func New(explicit string, opts ...Option) *Binding {
	b := &Binding{explicit: explicit}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns the binding's current state.
func (b *Binding) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Value returns the identifier currently bound, or "" while Unbound.
func (b *Binding) Value() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Explicit returns the explicit identifier given to New.
func (b *Binding) Explicit() string {
	return b.explicit
}

// ID attaches the binding to the element whose id attribute it owns.
func (b *Binding) ID() any {
	return b.Ref("id")
}

// For attaches the binding to a label's for attribute.
func (b *Binding) For() any {
	return b.Ref("for")
}

// DescribedBy attaches the binding to an aria-describedby attribute.
func (b *Binding) DescribedBy() any {
	return b.Ref("aria-describedby")
}

// LabelledBy attaches the binding to an aria-labelledby attribute.
func (b *Binding) LabelledBy() any {
	return b.Ref("aria-labelledby")
}

// Ref attaches the binding to an arbitrary attribute of an element.
// Each call creates a separate directive instance, so the same binding can
// be referenced from any number of elements.
func (b *Binding) Ref(attr string) any {
	return vdom.UseDirective(&directive{binding: b, attr: attr})
}

// resolveServer returns the server-phase value, binding it on first use.
func (b *Binding) resolveServer(ctx context.Context) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == Unbound {
		b.value = b.generate(ctx)
		b.state = ServerBound
	}
	return b.value
}

// resolveClient returns the client-phase value, regenerating it on the
// first client use regardless of any server-phase value.
func (b *Binding) resolveClient(ctx context.Context) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != ClientBound {
		b.value = b.generate(ctx)
		b.state = ClientBound
	}
	return b.value
}

func (b *Binding) generate(ctx context.Context) string {
	if b.explicit != "" {
		return b.explicit
	}
	return uid.FromContext(ctx).NewID(b.prefix)
}
