package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/baropoint/tubegate/internal/youtube"
)

type appError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *appError) Error() string {
	return fmt.Sprintf("Internal server error: %s", e.Message)
}

func errValidation(msg string) *appError {
	return &appError{http.StatusBadRequest, msg}
}

func errUnauthorized(msg string) *appError {
	return &appError{http.StatusUnauthorized, msg}
}

func errNotFound(msg string) *appError {
	return &appError{http.StatusNotFound, msg}
}

// toAppError maps a handler error to a status code and client message.
// Provider error payloads pass their message through verbatim; anything
// unrecognized becomes a 500 without crashing the process.
func toAppError(err error) *appError {
	var ae *appError
	if errors.As(err, &ae) {
		return ae
	}
	var pe *youtube.APIError
	if errors.As(err, &pe) {
		return &appError{http.StatusBadRequest, pe.Message}
	}
	switch {
	case errors.Is(err, youtube.ErrMissingAPIKey):
		return &appError{http.StatusInternalServerError, err.Error()}
	case errors.Is(err, youtube.ErrEmptyQuery), errors.Is(err, youtube.ErrEmptyVideoId):
		return &appError{http.StatusBadRequest, err.Error()}
	case errors.Is(err, youtube.ErrVideoNotFound):
		return &appError{http.StatusNotFound, err.Error()}
	}
	return &appError{http.StatusInternalServerError, err.Error()}
}
