package request

import "maps"

// Headers is a case-sensitive header map. Insertion order is irrelevant;
// merging follows a later-write-wins rule. All write operations return a
// copy, leaving the receiver untouched.
type Headers map[string]string

// Get returns the value for key, or the empty string when absent.
func (h Headers) Get(key string) string {
	return h[key]
}

// Has reports whether key is present.
func (h Headers) Has(key string) bool {
	_, ok := h[key]
	return ok
}

// With returns a copy of h with key set to value.
func (h Headers) With(key, value string) Headers {
	out := h.Clone()
	if out == nil {
		out = make(Headers, 1)
	}
	out[key] = value
	return out
}

// Merge returns a copy of h with all entries of other applied over it.
// Values in other win on key collisions.
func (h Headers) Merge(other Headers) Headers {
	if len(other) == 0 {
		return h.Clone()
	}
	out := make(Headers, len(h)+len(other))
	maps.Copy(out, h)
	maps.Copy(out, other)
	return out
}

// Clone returns a shallow copy of h. A nil map stays nil.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	return maps.Clone(h)
}

// Params is a case-sensitive parameter map for query and path parameters.
// It shares the merge semantics of Headers.
type Params map[string]string

// Get returns the value for key, or the empty string when absent.
func (p Params) Get(key string) string {
	return p[key]
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// With returns a copy of p with key set to value.
func (p Params) With(key, value string) Params {
	out := p.Clone()
	if out == nil {
		out = make(Params, 1)
	}
	out[key] = value
	return out
}

// Clone returns a shallow copy of p. A nil map stays nil.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}
