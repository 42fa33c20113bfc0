package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/linguahub/internal/app/system/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/classes", func(w http.ResponseWriter, r *http.Request) {})
	r.Handle("/metrics", m.Handler())

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/classes", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	if !strings.Contains(body, `linguahub_http_requests_total{method="GET",route="/classes",status="200"} 3`) {
		t.Errorf("expected 3 counted /classes requests, got:\n%s", body)
	}
	if !strings.Contains(body, `route="unmatched",status="404"`) {
		t.Errorf("expected unmatched 404 to be counted, got:\n%s", body)
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	h := a.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if n, err := testutil.GatherAndCount(b.Registry(), "linguahub_http_requests_total"); err != nil || n != 0 {
		t.Errorf("second registry should be empty, got %d (err %v)", n, err)
	}
	if n, _ := testutil.GatherAndCount(a.Registry(), "linguahub_http_requests_total"); n != 1 {
		t.Errorf("first registry: got %d series, want 1", n)
	}
}
