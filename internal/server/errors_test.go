package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/devmatch/internal/db"
	"github.com/jonathan/devmatch/internal/schemas"
	"github.com/jonathan/devmatch/internal/types"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "action", Message: "unknown"}
	assert.Equal(t, "validation error: action - unknown", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"ErrValidation", &ErrValidation{Field: "f", Message: "m"}, http.StatusBadRequest},
		{"InvalidInputError", &types.InvalidInputError{Field: "profile", Reason: "not an object"}, http.StatusBadRequest},
		{"wrapped InvalidInputError", fmt.Errorf("parse: %w", &types.InvalidInputError{Reason: "x"}), http.StatusBadRequest},
		{"schema ValidationError", &schemas.ValidationError{Errors: []schemas.FieldError{{Field: "job", Message: "required"}}}, http.StatusBadRequest},
		{"ErrUnauthorized", &ErrUnauthorized{}, http.StatusUnauthorized},
		{"ErrJobNotFound", fmt.Errorf("%w: abc", db.ErrJobNotFound), http.StatusNotFound},
		{"Unknown error", assert.AnError, http.StatusInternalServerError},
		{"Nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestNewErrorBody(t *testing.T) {
	body := newErrorBody(assert.AnError, http.StatusInternalServerError)
	assert.Equal(t, "internal server error", body.Error)

	fields := []schemas.FieldError{{Field: "job", Message: "job is required"}}
	body = newErrorBody(&schemas.ValidationError{Errors: fields}, http.StatusBadRequest)
	assert.Equal(t, "request does not match schema", body.Error)
	assert.Equal(t, fields, body.Fields)

	body = newErrorBody(&ErrValidation{Field: "f", Message: "m"}, http.StatusBadRequest)
	assert.Equal(t, "validation error: f - m", body.Error)
	assert.Empty(t, body.Fields)
}
