package filter

import (
	"context"

	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/pathspec"
	"github.com/gatekit/gatekit/core/request"
)

// Filter is a path-pattern-scoped middleware registration. Built once at
// API assembly and immutable afterward, so it may be matched concurrently
// without locking.
type Filter struct {
	pattern  string
	segments []pathspec.Segment
	wildcard bool
	fn       handler.Filter
}

// New creates a filter from a pattern and a filter function. The pattern
// follows route syntax with an optional terminal "*" wildcard.
func New(pattern string, fn handler.Filter) (*Filter, error) {
	segments, wildcard, err := pathspec.ParseFilter(pattern)
	if err != nil {
		return nil, err
	}
	return &Filter{
		pattern:  pattern,
		segments: segments,
		wildcard: wildcard,
		fn:       fn,
	}, nil
}

// MustNew is like New but panics on a malformed pattern. Intended for
// statically known patterns.
func MustNew(pattern string, fn handler.Filter) *Filter {
	f, err := New(pattern, fn)
	if err != nil {
		panic(err)
	}
	return f
}

// Pattern returns the filter's path pattern as declared.
func (f *Filter) Pattern() string {
	return f.pattern
}

// Matches reports whether the filter applies to a request path split into
// segments. Fixed pattern segments must equal the request segment, variable
// segments match any single non-empty segment, and a terminal wildcard
// matches zero or more trailing segments. Without a wildcard the segment
// counts must match exactly.
func (f *Filter) Matches(segments []string) bool {
	if f.wildcard {
		if len(segments) < len(f.segments) {
			return false
		}
	} else if len(segments) != len(f.segments) {
		return false
	}

	for i, ps := range f.segments {
		switch ps.Kind {
		case pathspec.KindFixed:
			if ps.Value != segments[i] {
				return false
			}
		case pathspec.KindVariable:
			if segments[i] == "" {
				return false
			}
		}
	}
	return true
}

// wrap returns a handler that invokes the filter around next.
func (f *Filter) wrap(next handler.Handler) handler.Handler {
	return func(ctx context.Context, req *request.Request) (*request.Response, error) {
		return f.fn(ctx, req, next)
	}
}

// Compose wraps terminal in every filter whose pattern matches the request
// segments, preserving declaration order: the first matching filter becomes
// the outermost wrapper.
func Compose(filters []*Filter, segments []string, terminal handler.Handler) handler.Handler {
	composed := terminal
	for i := len(filters) - 1; i >= 0; i-- {
		if filters[i].Matches(segments) {
			composed = filters[i].wrap(composed)
		}
	}
	return composed
}
