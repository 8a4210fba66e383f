package metrics

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

// All metric families are snake_case, namespaced and carry a help string
func TestMetricNamingAndHelp(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, nil)

	// vectors only show up once a series exists
	m.RecordHTTPRequest("GET", "/api/posts", 200, time.Millisecond)
	m.RecordDBQuery("select", "comments", time.Millisecond, errors.New("boom"))
	m.RecordStorageCall("put_object", time.Millisecond, errors.New("connection refused"))
	m.RecordReaction("liked")

	families, err := registry.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	snake := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	for _, mf := range families {
		name := mf.GetName()
		assert.True(t, snake.MatchString(name), "metric %s is not snake_case", name)
		assert.True(t, strings.HasPrefix(name, namespace+"_"), "metric %s lacks namespace", name)
		assert.NotEmpty(t, strings.TrimSpace(mf.GetHelp()), "metric %s has no help", name)
	}
}

func TestBusinessCounters(t *testing.T) {
	m := getTestMetrics()

	m.IncrementCommentCreated()
	m.IncrementCommentCreated()
	m.IncrementReports()
	m.AddCommentsPurged(7)
	m.RecordReaction("liked")
	m.RecordReaction("liked")
	m.RecordReaction("removed_like")

	assert.Equal(t, 2.0, getCounterValue(t, m.CommentCreatedTotal))
	assert.Equal(t, 1.0, getCounterValue(t, m.ReportsTotal))
	assert.Equal(t, 7.0, getCounterValue(t, m.CommentsPurged))
	assert.Equal(t, 2.0, getCounterValue(t, m.ReactionsTotal.WithLabelValues("liked")))
	assert.Equal(t, 1.0, getCounterValue(t, m.ReactionsTotal.WithLabelValues("removed_like")))
}

func TestBusinessGauges(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		set   func(int64)
		gauge prometheus.Gauge
	}{
		{"posts", m.SetPostsTotal, m.PostsTotal},
		{"comments", m.SetCommentsTotal, m.CommentsTotal},
		{"pending reports", m.SetPendingReportsTotal, m.PendingReportsTotal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range []int64{0, 42, 1000000} {
				tt.set(v)
				assert.Equal(t, float64(v), getGaugeValue(t, tt.gauge))
			}
		})
	}
}

func TestUpdateDBStats_AddsOnlyGrowth(t *testing.T) {
	m := getTestMetrics()

	m.UpdateDBStats(sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2, MaxOpenConnections: 25, WaitCount: 4, WaitDuration: 2 * time.Second})
	m.UpdateDBStats(sql.DBStats{OpenConnections: 5, InUse: 4, Idle: 1, MaxOpenConnections: 25, WaitCount: 6, WaitDuration: 3 * time.Second})

	assert.Equal(t, 5.0, getGaugeValue(t, m.DBConnectionsOpen))
	assert.Equal(t, 4.0, getGaugeValue(t, m.DBConnectionsInUse))
	assert.Equal(t, 25.0, getGaugeValue(t, m.DBConnectionsMax))
	assert.Equal(t, 6.0, getCounterValue(t, m.DBConnectionWaitTotal))
	assert.InDelta(t, 3.0, getCounterValue(t, m.DBConnectionWaitDuration), 1e-9)

	// anything other than sql.DBStats is ignored
	m.UpdateDBStats("not stats")
	assert.Equal(t, 5.0, getGaugeValue(t, m.DBConnectionsOpen))
}

func TestCategorizeStatus(t *testing.T) {
	cases := map[int]string{200: "2xx", 204: "2xx", 301: "3xx", 404: "4xx", 429: "4xx", 500: "5xx", 100: "unknown"}
	for code, want := range cases {
		assert.Equal(t, want, categorizeStatus(code), "status %d", code)
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	for _, path := range []string{"/metrics", "/health", "/ready", "/api/health", "/api/metrics", "/swagger/index.html"} {
		assert.True(t, ShouldSkipEndpoint(path), path)
	}
	for _, path := range []string{"/api/posts", "/api/posts/health", "/api/comments/1", "/"} {
		assert.False(t, ShouldSkipEndpoint(path), path)
	}
}

func TestGetErrorType(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{context.DeadlineExceeded, "timeout"},
		{context.Canceled, "canceled"},
		{errors.New("dial tcp: connection refused"), "connection_refused"},
		{errors.New("lookup minio: no such host"), "dns_error"},
		{errors.New("unexpected EOF"), "connection_reset"},
		{errors.New("api error NoSuchKey"), "not_found"},
		{errors.New("api error AccessDenied"), "access_denied"},
		{errors.New("weird"), "unknown"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, getErrorType(c.err), c.err.Error())
	}
}

func TestRecordStorageCall(t *testing.T) {
	m := getTestMetrics()

	m.RecordStorageCall("put_object", 10*time.Millisecond, nil)
	m.RecordStorageCall("put_object", 10*time.Millisecond, errors.New("connection refused"))

	assert.Equal(t, 1.0, getCounterValue(t, m.StorageRequestsTotal.WithLabelValues("put_object", "success")))
	assert.Equal(t, 1.0, getCounterValue(t, m.StorageRequestsTotal.WithLabelValues("put_object", "error")))
	assert.Equal(t, 1.0, getCounterValue(t, m.StorageErrors.WithLabelValues("put_object", "connection_refused")))
}

// A nil *Metrics must be safe to use so callers can run without metrics
func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", 200, time.Second)
		m.RecordDBQuery("select", "comments", time.Millisecond, nil)
		m.RecordStorageCall("put_object", time.Millisecond, nil)
		m.IncrementCommentCreated()
		m.RecordReaction("liked")
		m.SetPostsTotal(1)
		m.UpdateDBStats(sql.DBStats{})
	})
}

// Panics inside a metric operation are logged and swallowed
func TestSafeExecuteRecoversPanics(t *testing.T) {
	m := getTestMetrics()
	assert.NotPanics(t, func() {
		m.safeExecute("boom", func() { panic("boom") })
	})
}
