package pathspec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPattern indicates a malformed route or filter path pattern.
	ErrInvalidPattern = errors.New("invalid path pattern")

	// ErrInvalidSegment indicates a segment with illegal characters or
	// unbalanced variable markers.
	ErrInvalidSegment = errors.New("invalid path segment")
)

// Kind discriminates the closed set of segment variants.
type Kind uint8

const (
	// KindFixed is a literal segment matched by textual equality.
	KindFixed Kind = iota

	// KindVariable is a named variable segment matching any single
	// request path segment.
	KindVariable
)

// Segment is one slash-delimited component of a path pattern.
type Segment struct {
	// Value holds the literal text for fixed segments or the variable
	// name for variable segments. Never empty.
	Value string

	// Kind selects the segment variant.
	Kind Kind
}

// Fixed returns a literal segment.
func Fixed(text string) Segment {
	return Segment{Value: text, Kind: KindFixed}
}

// Variable returns a named variable segment.
func Variable(name string) Segment {
	return Segment{Value: name, Kind: KindVariable}
}

// String renders the segment in pattern syntax.
func (s Segment) String() string {
	if s.Kind == KindVariable {
		return "{" + s.Value + "}"
	}
	return s.Value
}

// Parse validates a route path pattern and returns its segment sequence.
//
// The pattern must begin with a slash, must be exactly "/" or must not end
// with a slash, and each segment must be a literal from the allowed
// character set or a single balanced {name} variable marker.
func Parse(pattern string) ([]Segment, error) {
	raw, err := splitPattern(pattern)
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(raw))
	for _, part := range raw {
		seg, err := parseSegment(pattern, part)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// ParseFilter validates a filter path pattern. It follows the same rules as
// Parse, except the final segment may be the wildcard "*", which matches
// zero or more trailing request segments. The returned bool reports whether
// the pattern ends with the wildcard.
func ParseFilter(pattern string) ([]Segment, bool, error) {
	raw, err := splitPattern(pattern)
	if err != nil {
		return nil, false, err
	}

	wildcard := false
	if n := len(raw); n > 0 && raw[n-1] == "*" {
		wildcard = true
		raw = raw[:n-1]
	}

	segments := make([]Segment, 0, len(raw))
	for _, part := range raw {
		if part == "*" {
			return nil, false, fmt.Errorf("%w: '%s' wildcard must be the last segment", ErrInvalidPattern, pattern)
		}
		seg, err := parseSegment(pattern, part)
		if err != nil {
			return nil, false, err
		}
		segments = append(segments, seg)
	}
	return segments, wildcard, nil
}

// Join renders a segment sequence back into pattern syntax. The result is
// equivalent to the pattern the sequence was parsed from.
func Join(segments []Segment) string {
	if len(segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(seg.String())
	}
	return b.String()
}

// Split breaks a request path into its segments, ignoring the leading empty
// segment produced by the root slash. The empty path and "/" both yield an
// empty slice. Trailing or doubled slashes produce empty segments, which
// never match any pattern segment.
func Split(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func splitPattern(pattern string) ([]string, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, fmt.Errorf("%w: '%s' must start with '/'", ErrInvalidPattern, pattern)
	}
	if pattern == "/" {
		return nil, nil
	}
	if pattern[len(pattern)-1] == '/' {
		return nil, fmt.Errorf("%w: '%s' must not end with '/'", ErrInvalidPattern, pattern)
	}
	return strings.Split(pattern[1:], "/"), nil
}

func parseSegment(pattern, part string) (Segment, error) {
	if part == "" {
		return Segment{}, fmt.Errorf("%w: '%s' contains an empty segment", ErrInvalidPattern, pattern)
	}

	if part[0] == '{' {
		if part[len(part)-1] != '}' {
			return Segment{}, fmt.Errorf("%w: '%s' has an unbalanced variable marker in '%s'", ErrInvalidSegment, pattern, part)
		}
		name := part[1 : len(part)-1]
		if !validName(name) {
			return Segment{}, fmt.Errorf("%w: '%s' has an invalid variable name in '%s'", ErrInvalidSegment, pattern, part)
		}
		return Variable(name), nil
	}

	// A stray brace inside a literal segment is rejected by the
	// character-set check below, including nested or unbalanced markers.
	if !validName(part) {
		return Segment{}, fmt.Errorf("%w: '%s' has invalid characters in '%s'", ErrInvalidSegment, pattern, part)
	}
	return Fixed(part), nil
}

// validName reports whether s is non-empty and contains only characters
// from the allowed set [A-Za-z0-9~_.()-].
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '~' || c == '_' || c == '-' || c == '.' || c == '(' || c == ')':
		default:
			return false
		}
	}
	return true
}
