package httpserver

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gatekit/gatekit/core/request"
	"github.com/gatekit/gatekit/core/router"
)

// Compile-time check that Handler implements http.Handler.
var _ http.Handler = (*Handler)(nil)

// Handler serves a compiled route table over net/http. Safe for concurrent
// use; the underlying API is immutable.
type Handler struct {
	api      *router.API
	basePath string
	env      request.Params
}

// Option configures the adapter.
type Option func(*Handler)

// WithBasePath strips the given prefix from every inbound path before
// matching. Requests outside the prefix are answered with a plain 404.
func WithBasePath(prefix string) Option {
	return func(h *Handler) { h.basePath = "/" + strings.Trim(prefix, "/") }
}

// WithStage publishes the deployment stage identifier on every request's
// Env under the conventional stage key.
func WithStage(stage string) Option {
	return func(h *Handler) { h.env = h.env.With(request.EnvStage, stage) }
}

// WithEnv publishes an arbitrary deployment-environment entry on every
// request.
func WithEnv(key, value string) Option {
	return func(h *Handler) { h.env = h.env.With(key, value) }
}

// New creates an http.Handler around the compiled API.
func New(api *router.API, opts ...Option) *Handler {
	h := &Handler{api: api}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if h.basePath != "" {
		rest, ok := strings.CutPrefix(path, h.basePath)
		if !ok {
			http.NotFound(w, r)
			return
		}
		path = rest
	}

	req, err := h.translate(r, path)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	resp, err := h.api.Handle(r.Context(), req)
	if err != nil || resp == nil {
		// Only a failing filter outside the error-mapping filter lands here.
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.write(w, resp)
}

// translate converts an http.Request into the canonical request value.
// Multi-valued headers are joined with a comma; for multi-valued query
// parameters the first value wins.
func (h *Handler) translate(r *http.Request, path string) (*request.Request, error) {
	headers := make(request.Headers, len(r.Header))
	for name, values := range r.Header {
		headers[name] = strings.Join(values, ", ")
	}

	var query request.Params
	if raw := r.URL.Query(); len(raw) > 0 {
		query = make(request.Params, len(raw))
		for name, values := range raw {
			query[name] = values[0]
		}
	}

	opts := []request.Option{
		request.WithHeaders(headers),
		request.WithQuery(query),
	}
	for k, v := range h.env {
		opts = append(opts, request.WithEnv(k, v))
	}

	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		if len(body) > 0 {
			opts = append(opts, request.WithBody(string(body)))
		}
	}

	return request.New(r.Method, path, opts...), nil
}

// write copies the response to the ResponseWriter, decoding base64 bodies
// back to raw bytes.
func (h *Handler) write(w http.ResponseWriter, resp *request.Response) {
	var body []byte
	switch b := resp.Body.(type) {
	case nil:
	case string:
		if resp.Base64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(b)
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			body = decoded
		} else {
			body = []byte(b)
		}
	case []byte:
		// The encoding filter normally converts raw bytes to base64; accept
		// them anyway for pipelines assembled without it.
		body = b
	}

	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(resp.Status)
	if len(body) > 0 {
		_, _ = w.Write(body)
	}
}
