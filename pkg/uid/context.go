package uid

import "context"

type generatorKey struct{}

// WithGenerator returns a copy of ctx carrying g.
func WithGenerator(ctx context.Context, g *Generator) context.Context {
	return context.WithValue(ctx, generatorKey{}, g)
}

// FromContext returns the generator carried by ctx, or the process-wide
// default when ctx carries none.
func FromContext(ctx context.Context) *Generator {
	if ctx != nil {
		if g, ok := ctx.Value(generatorKey{}).(*Generator); ok && g != nil {
			return g
		}
	}
	return Default()
}
