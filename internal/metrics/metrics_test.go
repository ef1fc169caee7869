package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, func() int { return 0 })

	ok := connect.UnaryFunc(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&struct{}{}), nil
	})
	notFound := connect.UnaryFunc(func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("match not found"))
	})

	ctx := context.Background()
	req := connect.NewRequest(&struct{}{})
	for i := 0; i < 3; i++ {
		m.Interceptor()(ok)(ctx, req)
	}
	m.Interceptor()(notFound)(ctx, req)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("", "ok")); got != 3 {
		t.Errorf("ok count = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("", "not_found")); got != 1 {
		t.Errorf("not_found count = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.duration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestActiveMatchesGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	active := 2
	m := New(reg, func() int { return active })

	expected := `
# HELP scoreboard_active_matches Matches currently in progress.
# TYPE scoreboard_active_matches gauge
scoreboard_active_matches 2
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "scoreboard_active_matches"); err != nil {
		t.Error(err)
	}

	active = 5
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "scoreboard_active_matches 5") {
		t.Errorf("metrics output missing updated gauge:\n%s", body)
	}
}
