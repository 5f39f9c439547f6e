package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/postboard-server/internal/model"
)

func TestWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "not found",
			err:        model.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "not found",
		},
		{
			name:       "validation",
			err:        model.ErrValidation,
			wantStatus: http.StatusBadRequest,
			wantError:  model.ErrValidation.Error(),
		},
		{
			name:       "duplicate email",
			err:        model.ErrDuplicateEmail,
			wantStatus: http.StatusBadRequest,
			wantError:  "email is already taken",
		},
		{
			name:       "invalid credentials",
			err:        model.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid credentials",
		},
		{
			name:       "missing token",
			err:        model.ErrMissingToken,
			wantStatus: http.StatusUnauthorized,
			wantError:  "missing authorization token",
		},
		{
			name:       "invalid token",
			err:        model.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid authorization token",
		},
		{
			name:       "unknown error is opaque",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}
