package guard

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/scoutdeck/scoutdeck/pkg/access"
)

type options struct {
	fallback templ.Component
}

// Option configures a guard.
type Option func(*options)

// WithFallback sets the component rendered when the capability is denied.
// The default fallback renders nothing.
func WithFallback(c templ.Component) Option {
	return func(o *options) {
		if c != nil {
			o.fallback = c
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{fallback: templ.NopComponent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Show returns allowed when the user holds the capability, the fallback
// otherwise. The decision delegates to access.Allowed, so denial semantics
// (privilege short-circuit, fail-closed on missing config) are identical to
// every other check in the application.
func Show(u access.User, cap access.Capability, allowed templ.Component, opts ...Option) templ.Component {
	o := applyOptions(opts)
	if access.Allowed(u, cap) {
		return allowed
	}
	return o.fallback
}

// FromContext defers the capability check to render time, resolving the
// acting user from the component's context. A context without a user fails
// closed to the fallback.
func FromContext(cap access.Capability, allowed templ.Component, opts ...Option) templ.Component {
	o := applyOptions(opts)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if u, ok := access.UserFromContext(ctx); ok && access.Allowed(u, cap) {
			return allowed.Render(ctx, w)
		}
		return o.fallback.Render(ctx, w)
	})
}
