package logger

import (
	"io"
	"log/slog"
	"os"
)

type settings struct {
	level   slog.Level
	json    bool
	output  io.Writer
	attrs   []slog.Attr
	handler *slog.HandlerOptions
}

// Option configures the logger factory.
type Option func(*settings)

// WithDevelopment configures text output at debug level, tagged with the
// service name.
func WithDevelopment(service string) Option {
	return func(s *settings) {
		s.level = slog.LevelDebug
		s.json = false
		s.attrs = append(s.attrs, slog.String("service", service))
	}
}

// WithProduction configures JSON output at info level, tagged with the
// service name.
func WithProduction(service string) Option {
	return func(s *settings) {
		s.level = slog.LevelInfo
		s.json = true
		s.attrs = append(s.attrs, slog.String("service", service))
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(s *settings) { s.level = level }
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(s *settings) { s.json = true }
}

// WithOutput redirects log output, e.g. to a buffer in tests.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.output = w }
}

// WithAttr attaches attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) { s.attrs = append(s.attrs, attrs...) }
}

// WithHandlerOptions overrides the slog handler options entirely. The
// configured level still applies unless the options set their own.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(s *settings) { s.handler = opts }
}

// New creates a configured slog.Logger. Defaults to text output at info
// level on stdout.
func New(opts ...Option) *slog.Logger {
	s := &settings{level: slog.LevelInfo, output: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}

	ho := s.handler
	if ho == nil {
		ho = &slog.HandlerOptions{Level: s.level}
	}

	var h slog.Handler
	if s.json {
		h = slog.NewJSONHandler(s.output, ho)
	} else {
		h = slog.NewTextHandler(s.output, ho)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}

	return slog.New(h)
}

// SetAsDefault installs the logger as the process-wide slog default.
func SetAsDefault(log *slog.Logger) {
	slog.SetDefault(log)
}
