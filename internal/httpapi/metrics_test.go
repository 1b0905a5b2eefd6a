package httpapi

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modeler/internal/planner"
)

func scrapeMetrics(t *testing.T) []byte {
	t.Helper()
	mrr := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(mrr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if mrr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", mrr.Code)
	}
	return mrr.Body.Bytes()
}

func preview(b []byte) string {
	if len(b) > 400 {
		b = b[:400]
	}
	return string(b)
}

// TestMetricsMiddleware_EmitsRequestCounters verifies that wrapping a handler
// with MetricsMiddleware results in request metrics being exposed via the
// Prometheus /metrics handler.
func TestMetricsMiddleware_EmitsRequestCounters(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	MetricsMiddleware(next).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	body := scrapeMetrics(t)
	if !bytes.Contains(body, []byte("modeler_http_requests_total")) {
		t.Fatalf("expected to find modeler_http_requests_total in metrics; got: %q", preview(body))
	}
}

func TestPlansTotal_LabelsOutcome(t *testing.T) {
	svc := &mockService{cat: testCatalog(), planErr: &planner.NoSuitableInstanceError{SizeGB: 1000, Accelerator: "gpu"}}
	postPlan(t, NewMux(svc), planBody)
	svc = &mockService{cat: testCatalog()}
	postPlan(t, NewMux(svc), `{"model":{"id":"m","size_in_bytes_fp32":1},"accelerator":"made-up"}`)

	body := scrapeMetrics(t)
	if !bytes.Contains(body, []byte(`modeler_plans_total{accelerator="gpu",outcome="no_instance"}`)) {
		t.Fatalf("missing no_instance sample; got: %q", preview(body))
	}
	if !bytes.Contains(body, []byte(`modeler_plans_total{accelerator="unknown",outcome="ok"}`)) {
		t.Fatalf("missing unknown accelerator sample")
	}
}

func TestPlanOutcome(t *testing.T) {
	cases := map[string]error{
		"ok":           nil,
		"unknown_task": &planner.UnknownTaskError{Task: "x"},
		"no_instance":  &planner.NoSuitableInstanceError{},
		"error":        errors.New("boom"),
	}
	for want, err := range cases {
		if got := planOutcome(err); got != want {
			t.Fatalf("planOutcome(%v) = %s, want %s", err, got, want)
		}
	}
}
