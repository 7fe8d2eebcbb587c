package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError) // ignored

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Write_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	_, _ = w.Write([]byte("abc"))
	_, _ = w.Write([]byte("defgh"))

	assert.Equal(t, 8, w.size)
	assert.Equal(t, "abcdefgh", rr.Body.String())
}

func TestResponseWriter_StatusCode(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *responseWriter)
		want  int
	}{
		{name: "untouched", write: func(*responseWriter) {}, want: http.StatusOK},
		{name: "explicit", write: func(w *responseWriter) { w.WriteHeader(http.StatusTeapot) }, want: http.StatusTeapot},
		{name: "body only", write: func(w *responseWriter) { _, _ = w.Write([]byte("x")) }, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newResponseWriter(httptest.NewRecorder())
			tt.write(w)
			assert.Equal(t, tt.want, w.statusCode())
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Equal(t, http.ResponseWriter(rr), w.Unwrap())
}
