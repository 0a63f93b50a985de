package router

import "errors"

var (
	// ErrDuplicateRoute indicates two routes with the same method
	// terminating at the same trie node.
	ErrDuplicateRoute = errors.New("multiple routes with the same HTTP method")

	// ErrVariableNameClash indicates two routes assigning different
	// variable names at the same trie position. A trie node owns exactly
	// one variable-child name.
	ErrVariableNameClash = errors.New("clashing variable names")

	// ErrStaticRouteClash indicates a static-file route overlapping a
	// fixed dynamic route, in either direction. Overlap with a variable
	// path is permitted and resolved by match priority.
	ErrStaticRouteClash = errors.New("static route clashes with dynamic route")

	// ErrInvalidStaticPattern indicates a static-file route pattern
	// containing variable segments.
	ErrInvalidStaticPattern = errors.New("static route pattern must not contain variables")

	// ErrNilHandler indicates a route or filter registered without a
	// handler function.
	ErrNilHandler = errors.New("nil handler")

	// ErrNilStore indicates a static-file route registered without an
	// asset store.
	ErrNilStore = errors.New("nil asset store")
)
