package router

import (
	"fmt"

	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/pathspec"
	"github.com/gatekit/gatekit/core/request"
)

// endpoint is a terminal route registration on a trie node.
type endpoint struct {
	handler handler.Handler
	pattern string
	auth    string
	cors    bool
}

// staticEnd terminates descent by capturing all remaining path segments as
// a relative asset key.
type staticEnd struct {
	handler handler.Handler
	pattern string
	auth    string
	cors    bool
}

// node is a trie node keyed by path segment. Each node directly owns its
// children; the whole trie is owned by the API that built it and is
// immutable after construction.
type node struct {
	// fixed children keyed by literal segment text.
	fixed map[string]*node

	// variable child; at most one per node, holding the single variable
	// name this position accepts.
	variable *node
	varName  string

	// endpoints maps HTTP method to the terminal registration.
	endpoints map[string]*endpoint

	// static, when set, captures every remaining segment below this node.
	static *staticEnd
}

// tree wraps the root node and collects construction warnings.
type tree struct {
	root     *node
	warnings []string
}

func newTree() *tree {
	return &tree{root: &node{}}
}

// insert registers an endpoint for method under the given segment sequence.
func (t *tree) insert(method string, segments []pathspec.Segment, ep *endpoint) error {
	n := t.root
	for _, seg := range segments {
		switch seg.Kind {
		case pathspec.KindFixed:
			if n.static != nil {
				return fmt.Errorf("%w: route '%s' descends through static route '%s'",
					ErrStaticRouteClash, ep.pattern, n.static.pattern)
			}
			child, ok := n.fixed[seg.Value]
			if !ok {
				child = &node{}
				if n.fixed == nil {
					n.fixed = make(map[string]*node)
				}
				n.fixed[seg.Value] = child
			}
			n = child

		case pathspec.KindVariable:
			if n.variable == nil {
				n.variable = &node{}
				n.varName = seg.Value
			} else if n.varName != seg.Value {
				return fmt.Errorf("%w: '{%s}' and '{%s}' at the same position in '%s'",
					ErrVariableNameClash, n.varName, seg.Value, ep.pattern)
			}
			if n.static != nil {
				t.warnf("route '%s' overlaps static route '%s'; the variable path wins when it matches",
					ep.pattern, n.static.pattern)
			}
			n = n.variable
		}
	}

	if n.endpoints == nil {
		n.endpoints = make(map[string]*endpoint)
	}
	if _, exists := n.endpoints[method]; exists {
		return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, ep.pattern)
	}
	n.endpoints[method] = ep
	return nil
}

// insertStatic mounts a static capture at the node addressed by segments.
// Static mount paths are fixed literals only.
func (t *tree) insertStatic(segments []pathspec.Segment, se *staticEnd) error {
	n := t.root
	for _, seg := range segments {
		if seg.Kind != pathspec.KindFixed {
			return fmt.Errorf("%w: '%s'", ErrInvalidStaticPattern, se.pattern)
		}
		if n.static != nil {
			return fmt.Errorf("%w: '%s' descends through static route '%s'",
				ErrStaticRouteClash, se.pattern, n.static.pattern)
		}
		child, ok := n.fixed[seg.Value]
		if !ok {
			child = &node{}
			if n.fixed == nil {
				n.fixed = make(map[string]*node)
			}
			n.fixed[seg.Value] = child
		}
		n = child
	}

	if n.static != nil {
		return fmt.Errorf("%w: '%s' already mounted", ErrStaticRouteClash, se.pattern)
	}
	if len(n.fixed) > 0 {
		return fmt.Errorf("%w: '%s' is a literal prefix of a dynamic route", ErrStaticRouteClash, se.pattern)
	}
	if n.variable != nil {
		t.warnf("static route '%s' overlaps variable route segment '{%s}'; the variable path wins when it matches",
			se.pattern, n.varName)
	}
	n.static = se
	return nil
}

func (t *tree) warnf(format string, args ...any) {
	t.warnings = append(t.warnings, fmt.Sprintf(format, args...))
}

// matchResult is the outcome of a successful trie descent.
type matchResult struct {
	// endpoint is set for dynamic route matches.
	endpoint *endpoint

	// static and remainder are set for static-file matches.
	static    *staticEnd
	remainder []string

	// params holds the path variable bindings recorded during descent.
	params request.Params
}

// match resolves a method and split request path to a handler registration.
// Returns nil when nothing matches; absence of the method at an otherwise
// matching node is also no match.
func (t *tree) match(method string, segments []string) *matchResult {
	return t.root.find(method, segments, nil)
}

// find descends greedily: a fixed child always wins over the variable
// child, and a static capture is the fallback when neither leads to a
// match. Variable descent copies the binding map so an abandoned branch
// leaves no stray bindings.
func (n *node) find(method string, segments []string, params request.Params) *matchResult {
	if len(segments) == 0 {
		if ep, ok := n.endpoints[method]; ok {
			return &matchResult{endpoint: ep, params: params}
		}
		if n.static != nil {
			return &matchResult{static: n.static, params: params}
		}
		return nil
	}

	seg := segments[0]

	if child, ok := n.fixed[seg]; ok {
		if r := child.find(method, segments[1:], params); r != nil {
			return r
		}
	} else if n.variable != nil && seg != "" {
		bound := params.With(n.varName, seg)
		if r := n.variable.find(method, segments[1:], bound); r != nil {
			return r
		}
	}

	if n.static != nil {
		return &matchResult{static: n.static, remainder: segments, params: params}
	}
	return nil
}
