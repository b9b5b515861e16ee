package app

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/baropoint/tubegate/internal/youtube"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		err     error
		code    int
		message string
	}{
		{errValidation("bad input"), http.StatusBadRequest, "bad input"},
		{errUnauthorized("nope"), http.StatusUnauthorized, "nope"},
		{errNotFound("gone"), http.StatusNotFound, "gone"},
		{&youtube.APIError{Message: "quota exceeded"}, http.StatusBadRequest, "quota exceeded"},
		{fmt.Errorf("search: %w", &youtube.APIError{Message: "quota exceeded"}), http.StatusBadRequest, "quota exceeded"},
		{youtube.ErrMissingAPIKey, http.StatusInternalServerError, youtube.ErrMissingAPIKey.Error()},
		{youtube.ErrEmptyQuery, http.StatusBadRequest, youtube.ErrEmptyQuery.Error()},
		{youtube.ErrVideoNotFound, http.StatusNotFound, youtube.ErrVideoNotFound.Error()},
		{errors.New("boom"), http.StatusInternalServerError, "boom"},
	}
	for _, tt := range tests {
		ae := toAppError(tt.err)
		if ae.Code != tt.code {
			t.Errorf("toAppError(%v).Code = %d, want %d", tt.err, ae.Code, tt.code)
		}
		if ae.Message != tt.message {
			t.Errorf("toAppError(%v).Message = %q, want %q", tt.err, ae.Message, tt.message)
		}
	}
}
