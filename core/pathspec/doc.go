// Package pathspec parses and validates route path patterns into ordered
// sequences of typed segments.
//
// A pattern is a slash-separated list of segments. Each segment is either a
// literal (fixed text) or a named variable written as {name}. Filter patterns
// additionally allow a single trailing * wildcard segment.
//
// Validation happens once, at route and filter construction time. Request
// paths are only split, never validated, so matching stays allocation-light.
//
// Basic usage:
//
//	segs, err := pathspec.Parse("/users/{id}/orders")
//	if err != nil {
//		// malformed pattern, abort assembly
//	}
//
//	segs, wildcard, err := pathspec.ParseFilter("/users/*")
package pathspec
