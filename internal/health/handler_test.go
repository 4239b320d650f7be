// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (c *stubChecker) Ping(ctx context.Context) error {
	return c.err
}

func get(router chi.Router, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestLiveness(t *testing.T) {
	handler := NewHandler(&stubChecker{})
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	for _, target := range []string{"/healthz", "/livez"} {
		rec := get(router, target)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestReadiness(t *testing.T) {
	checker := &stubChecker{}
	handler := NewHandler(checker)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	t.Run("healthy store", func(t *testing.T) {
		rec := get(router, "/readyz")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("failing store ping", func(t *testing.T) {
		checker.err = errors.New("connection refused")
		defer func() { checker.err = nil }()

		rec := get(router, "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
	})

	t.Run("not ready", func(t *testing.T) {
		handler.SetReady(false)
		defer handler.SetReady(true)

		rec := get(router, "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestShutdownDrainsTraffic(t *testing.T) {
	handler := NewHandler(&stubChecker{})
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	handler.SetShutdown(true)

	for _, target := range []string{"/healthz", "/livez", "/readyz"} {
		rec := get(router, target)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	}
}
