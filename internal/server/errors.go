package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/devmatch/internal/db"
	"github.com/jonathan/devmatch/internal/schemas"
	"github.com/jonathan/devmatch/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnauthorized indicates a request without an authenticated developer.
type ErrUnauthorized struct{}

func (e *ErrUnauthorized) Error() string {
	return "unauthorized"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		unauthorized  *ErrUnauthorized
		invalidInput  *types.InvalidInputError
		schemaErr     *schemas.ValidationError
	)
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &validationErr), errors.As(err, &invalidInput), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, db.ErrJobNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON shape of an error response.
type errorBody struct {
	Error  string               `json:"error"`
	Fields []schemas.FieldError `json:"fields,omitempty"`
}

// newErrorBody builds the response body for err. Internal errors are not echoed to clients.
func newErrorBody(err error, status int) errorBody {
	if status >= http.StatusInternalServerError {
		return errorBody{Error: "internal server error"}
	}

	body := errorBody{Error: err.Error()}
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		body.Error = "request does not match schema"
		body.Fields = schemaErr.Errors
	}
	return body
}
