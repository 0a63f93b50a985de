package httperr_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gatekit/gatekit/core/httperr"
)

func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *httperr.Error
		status  int
		message string
	}{
		{"not found", httperr.NotFound("no such widget"), http.StatusNotFound, "no such widget"},
		{"not found formatted", httperr.NotFoundf("no widget %d", 7), http.StatusNotFound, "no widget 7"},
		{"forbidden", httperr.Forbidden("not yours"), http.StatusForbidden, "not yours"},
		{"bad request", httperr.BadRequest("missing name"), http.StatusBadRequest, "missing name"},
		{"bad request formatted", httperr.BadRequestf("bad field %q", "x"), http.StatusBadRequest, `bad field "x"`},
		{"internal", httperr.Internal("db down"), http.StatusInternalServerError, "db down"},
		{"custom status", httperr.New(http.StatusConflict, "duplicate"), http.StatusConflict, "duplicate"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.status, tt.err.StatusCode())
			assert.EqualError(t, tt.err, tt.message)
		})
	}
}

func TestStatusCoder(t *testing.T) {
	t.Parallel()

	var sc httperr.StatusCoder = httperr.NotFound("x")
	assert.Equal(t, http.StatusNotFound, sc.StatusCode())
}
