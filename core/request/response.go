package request

import "net/http"

// Response is the canonical outbound response value. It is immutable:
// transformation goes through With* copies, the same discipline as Request.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// Headers carries the response headers, single-valued.
	Headers Headers

	// Body is the response body, nil when absent. After the
	// content-encoding filter has run, Body is always nil or a string.
	Body any

	// Base64Encoded reports that Body is a base64-encoded string carrying
	// binary content. Outbound adapters use it to decode before writing,
	// or to set the wire protocol's is-base64 flag.
	Base64Encoded bool
}

// WithStatus returns a copy of r with the status replaced.
func (r *Response) WithStatus(status int) *Response {
	out := *r
	out.Status = status
	out.Headers = r.Headers.Clone()
	return &out
}

// WithHeader returns a copy of r with the header set.
func (r *Response) WithHeader(key, value string) *Response {
	out := *r
	out.Headers = r.Headers.With(key, value)
	return &out
}

// WithHeaders returns a copy of r with all given headers applied over the
// existing ones.
func (r *Response) WithHeaders(h Headers) *Response {
	out := *r
	out.Headers = r.Headers.Merge(h)
	return &out
}

// WithBody returns a copy of r with the body replaced.
func (r *Response) WithBody(body any) *Response {
	out := *r
	out.Body = body
	out.Headers = r.Headers.Clone()
	return &out
}

// WithEncodedBody returns a copy of r with the body replaced and the
// base64 flag set. Used by the content-encoding filter.
func (r *Response) WithEncodedBody(body any, base64Encoded bool) *Response {
	out := *r
	out.Body = body
	out.Base64Encoded = base64Encoded
	out.Headers = r.Headers.Clone()
	return &out
}

// Builder assembles a Response. The zero status defaults to 200 OK, and
// caller-supplied headers are merged over the request-scoped defaults the
// builder was seeded with.
type Builder struct {
	status   int
	headers  Headers
	body     any
	defaults Headers
}

// NewResponse returns a response builder without request-scoped defaults.
// Prefer Request.Response inside handlers so defaults established by
// filters are preserved.
func NewResponse() *Builder {
	return &Builder{}
}

// Status sets the response status code.
func (b *Builder) Status(status int) *Builder {
	b.status = status
	return b
}

// Header sets a single response header.
func (b *Builder) Header(key, value string) *Builder {
	b.headers = b.headers.With(key, value)
	return b
}

// Headers applies all given headers, later writes winning.
func (b *Builder) Headers(h Headers) *Builder {
	b.headers = b.headers.Merge(h)
	return b
}

// Body sets the response body.
func (b *Builder) Body(body any) *Builder {
	b.body = body
	return b
}

// Build produces the immutable Response.
func (b *Builder) Build() *Response {
	status := b.status
	if status == 0 {
		status = http.StatusOK
	}
	return &Response{
		Status:  status,
		Headers: b.defaults.Merge(b.headers),
		Body:    b.body,
	}
}
