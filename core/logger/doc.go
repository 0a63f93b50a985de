// Package logger provides a slog factory and attribute helpers for
// consistent structured logging across the framework and its adapters.
//
// Create loggers with the factory and environment presets:
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("gateway"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("gateway"))
//
//	// Custom
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("version", "1.2.0")),
//	)
//
// Attribute helpers use the empty Attr pattern for nil safety, so calls
// like log.Error("msg", logger.Error(err)) need no explicit nil checks.
//
// Capture output in tests with WithOutput:
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
package logger
