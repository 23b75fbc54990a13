package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matt-dz/foodgram/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(PrometheusMetrics)
	router.Get("/api/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/recipes/{id}", "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipes/17", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("request counter increased by %v, want 1", got)
	}
}
