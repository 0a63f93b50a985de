package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gatekit/gatekit/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output carries configured attrs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "gateway")),
		)

		log.Info("hello")

		out := buf.String()
		assert.Contains(t, out, `"msg":"hello"`)
		assert.Contains(t, out, `"service":"gateway"`)
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("development preset enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("gateway"), logger.WithOutput(&buf))

		log.Debug("details")
		assert.Contains(t, buf.String(), "details")
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)

	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, "request_id", logger.RequestID("req-1").Key)

	d := logger.Duration(1500 * time.Microsecond)
	assert.Equal(t, "duration_ms", d.Key)
	assert.InDelta(t, 1.5, d.Value.Float64(), 0.001)

	assert.Equal(t, "status", logger.Status(200).Key)
	assert.Equal(t, "component", logger.Component("router").Key)
}
