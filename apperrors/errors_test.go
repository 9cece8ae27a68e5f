package apperrors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidation(nil), http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("Unauthorized"), http.StatusUnauthorized},
		{"forbidden", NewForbidden("no role"), http.StatusForbidden},
		{"not found", NewNotFound("Project not found"), http.StatusNotFound},
		{"conflict", NewConflict("Project slug already exists"), http.StatusConflict},
		{"has dependents", NewHasDependents("cannot delete", 3), http.StatusConflict},
		{"unavailable", NewUnavailable(errors.New("conn refused")), http.StatusServiceUnavailable},
		{"timeout", NewTimeout(errors.New("deadline")), http.StatusGatewayTimeout},
		{"internal", NewInternal(errors.New("boom")), http.StatusInternalServerError},
		{"untyped error", errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestFrom_WrappedError(t *testing.T) {
	inner := NewNotFound("Project not found")
	wrapped := errors.Wrap(inner, "while handling request")

	got := From(wrapped)
	assert.Equal(t, KindNotFound, got.Kind)
	assert.Equal(t, "Project not found", got.Message)
}

func TestFrom_UntypedBecomesInternal(t *testing.T) {
	got := From(errors.New("driver panic"))
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "Internal server error", got.Message)
	assert.NotNil(t, got.Err)
}

func TestHasDependentsCarriesCount(t *testing.T) {
	err := NewHasDependents("Cannot delete project. It has 5 waitlist entries. Please delete all entries first.", 5)
	assert.Equal(t, int64(5), From(err).Count)
}

func TestIsKind(t *testing.T) {
	err := NewUnauthorized("Unauthorized")
	assert.True(t, IsKind(err, KindUnauthorized))
	assert.False(t, IsKind(err, KindForbidden))
}
