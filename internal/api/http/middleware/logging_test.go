package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/postboard-server/internal/testutil"
)

func TestLogging_Handle_PassesThrough(t *testing.T) {
	t.Parallel()

	l := NewLogging(testutil.MakeNoopLogger())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	})

	rec := httptest.NewRecorder()
	l.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "body", rec.Body.String())
}

func TestLogging_Handle_ForwardsFlush(t *testing.T) {
	t.Parallel()

	l := NewLogging(testutil.MakeNoopLogger())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("chunk"))
		f, ok := w.(http.Flusher)
		assert.True(t, ok)
		f.Flush()
	})

	rec := httptest.NewRecorder()
	l.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

	assert.True(t, rec.Flushed)
}

func TestStatusRecorder_DefaultsToOK(t *testing.T) {
	t.Parallel()

	l := NewLogging(testutil.MakeNoopLogger())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	})

	rec := httptest.NewRecorder()
	l.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
