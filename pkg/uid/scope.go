package uid

import (
	"strings"

	"github.com/vango-dev/uniqid/internal/errors"
)

// Scope selects how generators are shared between rendering contexts.
type Scope uint8

const (
	// ScopeRequest gives every Acquire a fresh generator.
	ScopeRequest Scope = iota
	// ScopeProcess shares a single generator for the Source's lifetime.
	ScopeProcess
)

// String returns the configuration spelling of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeRequest:
		return "request"
	case ScopeProcess:
		return "process"
	default:
		return "unknown"
	}
}

// ParseScope parses "process" or "request" (case-insensitive).
// An empty string selects ScopeRequest.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "request":
		return ScopeRequest, nil
	case "process":
		return ScopeProcess, nil
	default:
		return 0, errors.New("E121").WithDetail(`scope "` + s + `" is not one of process, request`)
	}
}

// Source hands out generators according to its Scope.
type Source struct {
	scope  Scope
	opts   []Option
	shared *Generator
}

// NewSource creates a Source. opts are applied to every generator it creates.
func NewSource(scope Scope, opts ...Option) *Source {
	s := &Source{scope: scope, opts: opts}
	if scope == ScopeProcess {
		s.shared = New(opts...)
	}
	return s
}

// Scope returns the source's scope.
func (s *Source) Scope() Scope {
	return s.scope
}

// Acquire returns the shared generator for ScopeProcess, or a new generator
// with a counter at zero for ScopeRequest.
func (s *Source) Acquire() *Generator {
	if s.scope == ScopeProcess {
		return s.shared
	}
	return New(s.opts...)
}
