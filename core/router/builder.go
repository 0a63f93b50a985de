package router

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gatekit/gatekit/core/assets"
	"github.com/gatekit/gatekit/core/filter"
	"github.com/gatekit/gatekit/core/handler"
	"github.com/gatekit/gatekit/core/pathspec"
)

// Builder accumulates route and filter declarations and compiles them into
// an immutable API. A Builder is single-threaded and used once at startup.
//
// Nested groups created by Route share the underlying declaration state;
// each group carries its own path prefix and scope defaults (auth, CORS),
// flattened into absolute patterns at declaration time.
type Builder struct {
	prefix string
	auth   string
	cors   *bool
	state  *builderState
}

// builderState is shared across nested group builders.
type builderState struct {
	routes   []*routeReg
	statics  []*staticReg
	filters  []*filter.Filter
	errs     []error
	corsCfg  *filter.CORSConfig
	logger   *slog.Logger
	observef []handler.Filter // observability filters, outermost
}

type routeReg struct {
	method   string
	pattern  string
	segments []pathspec.Segment
	handler  handler.Handler
	auth     string
	cors     bool
}

type staticReg struct {
	pattern   string
	segments  []pathspec.Segment
	store     assets.Store
	indexFile string
	auth      string
	cors      bool
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithLogger sets the logger used for construction warnings and by the
// error-mapping filter. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) { b.state.logger = log }
}

// WithCORS installs the CORS filter with the given allow-lists. Individual
// routes and groups still opt in via the CORS route option; the innermost
// scope wins.
func WithCORS(cfg filter.CORSConfig) Option {
	return func(b *Builder) { b.state.corsCfg = &cfg }
}

// WithObservability installs filters that wrap the whole pipeline,
// including the error-mapping filter, such as filter.RequestID and
// filter.Logging. Their own failures are not mapped.
func WithObservability(filters ...handler.Filter) Option {
	return func(b *Builder) { b.state.observef = append(b.state.observef, filters...) }
}

// New creates an empty route table builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		state: &builderState{
			logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RouteOption configures a single route or a group scope.
type RouteOption func(*routeOpts)

type routeOpts struct {
	auth *string
	cors *bool
}

// Auth tags the route with an auth requirement. The tag travels to filters
// as a request attribute; enforcement is a filter or deployment concern.
func Auth(tag string) RouteOption {
	return func(o *routeOpts) { o.auth = &tag }
}

// CORS enables or disables CORS header injection for the route or group.
func CORS(enabled bool) RouteOption {
	return func(o *routeOpts) { o.cors = &enabled }
}

// Get registers a handler for GET requests.
func (b *Builder) Get(pattern string, h handler.Handler, opts ...RouteOption) {
	b.Handle(http.MethodGet, pattern, h, opts...)
}

// Post registers a handler for POST requests.
func (b *Builder) Post(pattern string, h handler.Handler, opts ...RouteOption) {
	b.Handle(http.MethodPost, pattern, h, opts...)
}

// Put registers a handler for PUT requests.
func (b *Builder) Put(pattern string, h handler.Handler, opts ...RouteOption) {
	b.Handle(http.MethodPut, pattern, h, opts...)
}

// Delete registers a handler for DELETE requests.
func (b *Builder) Delete(pattern string, h handler.Handler, opts ...RouteOption) {
	b.Handle(http.MethodDelete, pattern, h, opts...)
}

// Patch registers a handler for PATCH requests.
func (b *Builder) Patch(pattern string, h handler.Handler, opts ...RouteOption) {
	b.Handle(http.MethodPatch, pattern, h, opts...)
}

// Head registers a handler for HEAD requests.
func (b *Builder) Head(pattern string, h handler.Handler, opts ...RouteOption) {
	b.Handle(http.MethodHead, pattern, h, opts...)
}

// Options registers a handler for OPTIONS requests.
func (b *Builder) Options(pattern string, h handler.Handler, opts ...RouteOption) {
	b.Handle(http.MethodOptions, pattern, h, opts...)
}

// Handle registers a handler for an arbitrary HTTP method.
func (b *Builder) Handle(method, pattern string, h handler.Handler, opts ...RouteOption) {
	if h == nil {
		b.fail(fmt.Errorf("%w: %s %s", ErrNilHandler, method, pattern))
		return
	}

	full := joinPattern(b.prefix, pattern)
	segments, err := pathspec.Parse(full)
	if err != nil {
		b.fail(err)
		return
	}

	ro := b.resolve(opts)
	b.state.routes = append(b.state.routes, &routeReg{
		method:   method,
		pattern:  full,
		segments: segments,
		handler:  h,
		auth:     ro.authValue(b.auth),
		cors:     ro.corsValue(b.cors),
	})
}

// Route declares a nested group. All registrations inside fn are prefixed
// with the given pattern; options set scope defaults that inner
// registrations inherit and may override.
func (b *Builder) Route(pattern string, fn func(b *Builder), opts ...RouteOption) {
	if fn == nil {
		b.fail(fmt.Errorf("nil group function on '%s'", pattern))
		return
	}

	ro := b.resolve(opts)
	child := &Builder{
		prefix: joinPattern(b.prefix, pattern),
		auth:   ro.authValue(b.auth),
		cors:   ro.corsPtr(b.cors),
		state:  b.state,
	}
	fn(child)
}

// Filter registers a filter matching everything under the current scope.
func (b *Builder) Filter(fn handler.Filter) {
	b.FilterPattern("/*", fn)
}

// FilterPattern registers a filter for a pattern relative to the current
// scope. The pattern's last segment may be the wildcard "*". Declaration
// order is preserved: the first-declared matching filter runs outermost,
// and filters declared in an outer scope precede those of inner scopes.
func (b *Builder) FilterPattern(pattern string, fn handler.Filter) {
	if fn == nil {
		b.fail(fmt.Errorf("%w: filter '%s'", ErrNilHandler, pattern))
		return
	}

	f, err := filter.New(joinPattern(b.prefix, pattern), fn)
	if err != nil {
		b.fail(err)
		return
	}
	b.state.filters = append(b.state.filters, f)
}

// StaticOption configures a static-file route.
type StaticOption func(*staticReg)

// IndexFile serves the given file when a request addresses the mount point
// itself with no remainder.
func IndexFile(name string) StaticOption {
	return func(s *staticReg) { s.indexFile = name }
}

// StaticAuth tags the static route with an auth requirement, overriding
// the scope default.
func StaticAuth(tag string) StaticOption {
	return func(s *staticReg) { s.auth = tag }
}

// StaticFiles mounts an asset store at the given pattern. Every request
// path below the mount point is captured and passed to the store as a
// relative lookup key. Static routes participate in auth scoping exactly
// like dynamic routes.
func (b *Builder) StaticFiles(pattern string, store assets.Store, opts ...StaticOption) {
	if store == nil {
		b.fail(fmt.Errorf("%w: static route '%s'", ErrNilStore, pattern))
		return
	}

	full := joinPattern(b.prefix, pattern)
	segments, err := pathspec.Parse(full)
	if err != nil {
		b.fail(err)
		return
	}

	reg := &staticReg{
		pattern:  full,
		segments: segments,
		store:    store,
		auth:     b.auth,
		cors:     b.cors != nil && *b.cors,
	}
	for _, opt := range opts {
		opt(reg)
	}
	b.state.statics = append(b.state.statics, reg)
}

// Build compiles the declarations into an immutable API. All accumulated
// construction errors are reported together; any error means the API must
// be fixed and reassembled.
func (b *Builder) Build() (*API, error) {
	s := b.state

	t := newTree()
	corsUsed := false

	for _, r := range s.routes {
		if err := t.insert(r.method, r.segments, &endpoint{
			handler: r.handler,
			pattern: r.pattern,
			auth:    r.auth,
			cors:    r.cors,
		}); err != nil {
			s.errs = append(s.errs, err)
		}
		corsUsed = corsUsed || r.cors
	}

	for _, sr := range s.statics {
		if err := t.insertStatic(sr.segments, &staticEnd{
			handler: serveStatic(sr.store, sr.indexFile),
			pattern: sr.pattern,
			auth:    sr.auth,
			cors:    sr.cors,
		}); err != nil {
			s.errs = append(s.errs, err)
		}
		corsUsed = corsUsed || sr.cors
	}

	if len(s.errs) > 0 {
		return nil, errors.Join(s.errs...)
	}

	for _, w := range t.warnings {
		s.logger.Warn(w)
	}

	// Standard pipeline: observability filters wrap everything, then error
	// mapping, then content encoding, then CORS, then user filters, with
	// the route handler innermost.
	filters := make([]*filter.Filter, 0, len(s.filters)+len(s.observef)+3)
	for _, fn := range s.observef {
		filters = append(filters, filter.MustNew("/*", fn))
	}
	filters = append(filters,
		filter.MustNew("/*", filter.ErrorMapping(s.logger)),
		filter.MustNew("/*", filter.Encoding()),
	)
	if s.corsCfg != nil || corsUsed {
		cfg := filter.CORSConfig{}
		if s.corsCfg != nil {
			cfg = *s.corsCfg
		}
		filters = append(filters, filter.MustNew("/*", filter.CORS(cfg)))
	}
	filters = append(filters, s.filters...)

	routes := make([]RouteInfo, 0, len(s.routes)+len(s.statics))
	for _, r := range s.routes {
		routes = append(routes, RouteInfo{Method: r.method, Pattern: r.pattern, Auth: r.auth, CORS: r.cors})
	}
	for _, sr := range s.statics {
		routes = append(routes, RouteInfo{Pattern: sr.pattern, Auth: sr.auth, CORS: sr.cors, Static: true})
	}

	return &API{
		tree:    t,
		filters: filters,
		routes:  routes,
		logger:  s.logger,
	}, nil
}

// MustBuild is like Build but panics on construction errors. Intended for
// startup paths where an invalid API definition should abort the process.
func (b *Builder) MustBuild() *API {
	api, err := b.Build()
	if err != nil {
		panic(err)
	}
	return api
}

func (b *Builder) fail(err error) {
	b.state.errs = append(b.state.errs, err)
}

func (b *Builder) resolve(opts []RouteOption) *routeOpts {
	ro := &routeOpts{}
	for _, opt := range opts {
		opt(ro)
	}
	return ro
}

func (o *routeOpts) authValue(scope string) string {
	if o.auth != nil {
		return *o.auth
	}
	return scope
}

func (o *routeOpts) corsValue(scope *bool) bool {
	if o.cors != nil {
		return *o.cors
	}
	return scope != nil && *scope
}

func (o *routeOpts) corsPtr(scope *bool) *bool {
	if o.cors != nil {
		return o.cors
	}
	return scope
}

// joinPattern joins a scope prefix and a relative pattern into an absolute
// pattern. The relative root "/" resolves to the prefix itself.
func joinPattern(prefix, pattern string) string {
	if prefix == "" || prefix == "/" {
		return pattern
	}
	if pattern == "" || pattern == "/" {
		return prefix
	}
	return prefix + pattern
}
