package request

import "maps"

// Request is the canonical inbound request value. It is immutable: all
// With* operations return a derived copy and never mutate the receiver.
//
// Body holds one of four value kinds: nil (absent), string, []byte (raw
// binary), or any other Go value, which the content-encoding filter
// serializes on the way out.
type Request struct {
	// Method is the HTTP method, upper-case.
	Method string

	// Path is the request path with any adapter base-path prefix removed.
	Path string

	// Headers carries the request headers, single-valued.
	Headers Headers

	// Query carries decoded query string parameters.
	Query Params

	// PathParams carries path variable bindings produced by the matcher.
	PathParams Params

	// Env carries opaque deployment-environment metadata populated by the
	// inbound adapter, such as the stage identifier.
	Env Params

	// Body is the decoded request body, nil when absent.
	Body any

	// Attributes carries request-scoped values shared between filters.
	Attributes map[string]any

	// defaultRespHeaders are merged under handler-supplied headers by the
	// response builder. Filters use them to establish defaults (such as
	// Content-Type) that handlers may override.
	defaultRespHeaders Headers
}

// Option configures a Request at construction time.
type Option func(*Request)

// WithHeaders sets the request headers.
func WithHeaders(h Headers) Option {
	return func(r *Request) { r.Headers = h.Clone() }
}

// WithHeader sets a single request header.
func WithHeader(key, value string) Option {
	return func(r *Request) { r.Headers = r.Headers.With(key, value) }
}

// WithQuery sets the query parameters.
func WithQuery(p Params) Option {
	return func(r *Request) { r.Query = p.Clone() }
}

// WithQueryParam sets a single query parameter.
func WithQueryParam(key, value string) Option {
	return func(r *Request) { r.Query = r.Query.With(key, value) }
}

// WithBody sets the request body.
func WithBody(body any) Option {
	return func(r *Request) { r.Body = body }
}

// WithEnv sets a single deployment-environment entry.
func WithEnv(key, value string) Option {
	return func(r *Request) { r.Env = r.Env.With(key, value) }
}

// New creates a Request for the given method and path.
func New(method, path string, opts ...Option) *Request {
	r := &Request{Method: method, Path: path}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// clone returns a copy of r with all maps copied, safe to modify.
func (r *Request) clone() *Request {
	out := *r
	out.Headers = r.Headers.Clone()
	out.Query = r.Query.Clone()
	out.PathParams = r.PathParams.Clone()
	out.Env = r.Env.Clone()
	out.defaultRespHeaders = r.defaultRespHeaders.Clone()
	if r.Attributes != nil {
		out.Attributes = maps.Clone(r.Attributes)
	}
	return &out
}

// WithBody returns a copy of r with the body replaced.
func (r *Request) WithBody(body any) *Request {
	out := r.clone()
	out.Body = body
	return out
}

// WithHeader returns a copy of r with the header set.
func (r *Request) WithHeader(key, value string) *Request {
	out := r.clone()
	if out.Headers == nil {
		out.Headers = make(Headers, 1)
	}
	out.Headers[key] = value
	return out
}

// WithHeaders returns a copy of r with all given headers applied over the
// existing ones.
func (r *Request) WithHeaders(h Headers) *Request {
	out := r.clone()
	out.Headers = out.Headers.Merge(h)
	return out
}

// WithPathParams returns a copy of r with the path variable bindings set.
func (r *Request) WithPathParams(p Params) *Request {
	out := r.clone()
	out.PathParams = p.Clone()
	return out
}

// WithAttribute returns a copy of r with the attribute set.
func (r *Request) WithAttribute(key string, value any) *Request {
	out := r.clone()
	if out.Attributes == nil {
		out.Attributes = make(map[string]any, 1)
	}
	out.Attributes[key] = value
	return out
}

// WithAttributes returns a copy of r with all given attributes set.
func (r *Request) WithAttributes(attrs map[string]any) *Request {
	out := r.clone()
	if out.Attributes == nil {
		out.Attributes = make(map[string]any, len(attrs))
	}
	for k, v := range attrs {
		out.Attributes[k] = v
	}
	return out
}

// Attribute returns the attribute value for key, or nil when absent.
func (r *Request) Attribute(key string) any {
	return r.Attributes[key]
}

// WithDefaultResponseHeader returns a copy of r carrying a default response
// header. Defaults are merged under handler-supplied headers by the
// response builder, so an explicit header always wins.
func (r *Request) WithDefaultResponseHeader(key, value string) *Request {
	out := r.clone()
	if out.defaultRespHeaders == nil {
		out.defaultRespHeaders = make(Headers, 1)
	}
	out.defaultRespHeaders[key] = value
	return out
}

// DefaultResponseHeaders returns the request-scoped default response
// headers. The returned map is a copy.
func (r *Request) DefaultResponseHeaders() Headers {
	return r.defaultRespHeaders.Clone()
}

// Response returns a response builder seeded with the request-scoped
// default response headers.
func (r *Request) Response() *Builder {
	return &Builder{defaults: r.defaultRespHeaders}
}
