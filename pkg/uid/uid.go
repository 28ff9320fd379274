package uid

import (
	"math"
	"strconv"
	"sync/atomic"

	"github.com/vango-dev/uniqid/internal/errors"
)

// DefaultPrefix is used when neither the call nor the generator names a prefix.
const DefaultPrefix = "id-"

// ErrExhausted is the panic value raised when a generator would wrap around.
// Compare with errors.Is; the value carries code E201.
var ErrExhausted = errors.New("E201")

// Observer is notified after every issued identifier.
type Observer interface {
	IDIssued(generator, id string)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(generator, id string)

// IDIssued implements Observer.
func (f ObserverFunc) IDIssued(generator, id string) { f(generator, id) }

// Generator produces monotonically increasing prefixed identifiers.
// The zero value is ready to use and issues "id-1", "id-2", ...
type Generator struct {
	counter  atomic.Uint64
	prefix   string
	name     string
	observer Observer
}

// Option configures a Generator.
type Option func(*Generator)

// WithPrefix sets the prefix used when NewID is called with an empty prefix.
func WithPrefix(prefix string) Option {
	return func(g *Generator) {
		g.prefix = prefix
	}
}

// WithStart sets the counter's initial value. The first identifier issued
// is start+1.
func WithStart(start uint64) Option {
	return func(g *Generator) {
		g.counter.Store(start)
	}
}

// WithName labels the generator for observers and logs (e.g. "server", "client").
func WithName(name string) Option {
	return func(g *Generator) {
		g.name = name
	}
}

// WithObserver registers an observer notified after each issued identifier.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

// New creates a Generator with a counter at zero.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewID increments the counter once and returns prefix followed by the new
// counter value. An empty prefix selects the generator's prefix, which
// itself defaults to DefaultPrefix.
//
// NewID panics with ErrExhausted instead of wrapping around.
func (g *Generator) NewID(prefix string) string {
	n := g.advance()
	if prefix == "" {
		prefix = g.Prefix()
	}
	id := prefix + strconv.FormatUint(n, 10)
	if g.observer != nil {
		g.observer.IDIssued(g.Name(), id)
	}
	return id
}

// Next returns the next identifier using the generator's prefix.
func (g *Generator) Next() string {
	return g.NewID("")
}

// advance increments the counter, refusing to wrap.
func (g *Generator) advance() uint64 {
	for {
		cur := g.counter.Load()
		if cur == math.MaxUint64 {
			panic(ErrExhausted)
		}
		if g.counter.CompareAndSwap(cur, cur+1) {
			return cur + 1
		}
	}
}

// Current returns the counter value without incrementing.
func (g *Generator) Current() uint64 {
	return g.counter.Load()
}

// Prefix returns the generator's default prefix.
func (g *Generator) Prefix() string {
	if g.prefix == "" {
		return DefaultPrefix
	}
	return g.prefix
}

// Name returns the generator's label, or "default" when unnamed.
func (g *Generator) Name() string {
	if g.name == "" {
		return "default"
	}
	return g.name
}
