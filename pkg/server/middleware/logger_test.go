package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := Logger(&logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Error().Msg("handler log line")
		w.WriteHeader(http.StatusBadRequest)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	out := buf.String()

	// Handler logs inherit the request fields from the context logger.
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/api/reports"`)
	assert.Contains(t, out, "handler log line")

	// One completion line with the response status.
	assert.Contains(t, out, `"status":400`)
	assert.Contains(t, out, "request completed")
}
