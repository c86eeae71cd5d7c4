package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Success_CreateWithNamespace", func(t *testing.T) {
		m := New("test_app")

		require.NotNil(t, m)
		assert.NotNil(t, m.registry)
		assert.NotNil(t, m.requestsTotal)
		assert.NotNil(t, m.requestDuration)
	})

	t.Run("Success_CreateWithEmptyNamespace", func(t *testing.T) {
		m := New("")

		require.NotNil(t, m)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("test_app")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	// Go runtime collectors are always present even before any request.
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_Middleware(t *testing.T) {
	t.Run("Success_RecordsCompletedRequests", func(t *testing.T) {
		m := New("test_app")

		router := chi.NewRouter()
		router.Use(m.Middleware)
		router.Get("/test", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}

		scrape := scrapeBody(t, m)
		assert.Contains(t, scrape, `test_app_http_requests_total{method="GET",path="/test",status_code="200"} 3`)
		assert.Contains(t, scrape, "test_app_http_request_duration_seconds_count")
	})

	t.Run("Success_RecordsErrorStatus", func(t *testing.T) {
		m := New("test_app")

		router := chi.NewRouter()
		router.Use(m.Middleware)
		router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		scrape := scrapeBody(t, m)
		assert.Contains(t, scrape, `test_app_http_requests_total{method="GET",path="/boom",status_code="500"} 1`)
	})

	t.Run("Success_ImplicitOKWithoutWriteHeader", func(t *testing.T) {
		m := New("test_app")

		router := chi.NewRouter()
		router.Use(m.Middleware)
		router.Get("/implicit", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/implicit", nil)
		router.ServeHTTP(rec, req)

		scrape := scrapeBody(t, m)
		assert.Contains(t, scrape, `status_code="200"`)
	})
}

func scrapeBody(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}
