package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecordToolCall(t *testing.T) {
	p := NewPrometheus()
	ctx := context.Background()

	p.RecordToolCall(ctx, "gw_get_user", "success", 20*time.Millisecond)
	p.RecordToolCall(ctx, "gw_get_user", "success", 30*time.Millisecond)
	p.RecordToolCall(ctx, "gw_get_user", "upstream_error", 10*time.Millisecond)

	if got := testutil.ToFloat64(p.invocations.WithLabelValues("gw_get_user", "success")); got != 2 {
		t.Fatalf("expected 2 successful invocations, got %v", got)
	}
	if got := testutil.ToFloat64(p.invocations.WithLabelValues("gw_get_user", "upstream_error")); got != 1 {
		t.Fatalf("expected 1 failed invocation, got %v", got)
	}
	if got := testutil.CollectAndCount(p.duration); got != 1 {
		t.Fatalf("expected 1 histogram series, got %d", got)
	}
}

func TestPrometheusHandler(t *testing.T) {
	p := NewPrometheus()
	p.RecordToolCall(context.Background(), "gw_list_org_units", "success", time.Millisecond)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if rec.Code != 200 {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(string(body), `mcp_tool_invocations_total{status="success",tool="gw_list_org_units"} 1`) {
		t.Fatalf("expected invocation counter in output, got:\n%s", body)
	}
}
