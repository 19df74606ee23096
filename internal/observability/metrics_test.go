package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveAPI(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveAPI("GET", "/courses", "200", 15*time.Millisecond)
	m.ObserveAPI("GET", "/courses", "200", 5*time.Millisecond)
	m.ObserveAPI("POST", "/login", "400", time.Millisecond)

	if got := testutil.ToFloat64(m.apiRequests.WithLabelValues("GET", "/courses", "200")); got != 2 {
		t.Fatalf("requests: want=2 got=%v", got)
	}
	if got := testutil.CollectAndCount(m.apiLatency); got != 2 {
		t.Fatalf("latency series: want=2 got=%d", got)
	}
}

func TestInflightGauge(t *testing.T) {
	m := NewMetrics(nil)
	m.ApiInflightInc()
	m.ApiInflightInc()
	m.ApiInflightDec()
	if got := testutil.ToFloat64(m.apiInflight); got != 1 {
		t.Fatalf("inflight: want=1 got=%v", got)
	}
}

func TestLoginAndUploadCounters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.IncLogin("invalid")
	m.IncLogin("success")
	m.IncLogin("invalid")
	m.ObserveUpload("drive", "error", time.Second)

	if got := testutil.ToFloat64(m.loginAttempts.WithLabelValues("invalid")); got != 2 {
		t.Fatalf("invalid logins: want=2 got=%v", got)
	}
	if got := testutil.ToFloat64(m.uploads.WithLabelValues("drive", "error")); got != 1 {
		t.Fatalf("upload errors: want=1 got=%v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ApiInflightInc()
	m.IncLogin("success")
	m.ObserveUpload("gcs", "ok", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("nil handler status: want=%d got=%d", http.StatusNotFound, rec.Code)
	}
}

func TestHandlerExposition(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveAPI("GET", "/health", "200", time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `portfolio_http_requests_total{method="GET",route="/health",status="200"} 1`) {
		t.Fatalf("exposition missing request counter:\n%s", body)
	}
}
