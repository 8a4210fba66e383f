package metrics

import (
	"strings"
	"time"
)

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		status := categorizeStatus(statusCode)
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// categorizeStatus converts status code to category (2xx, 3xx, 4xx, 5xx)
func categorizeStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// ShouldSkipEndpoint reports whether a path is an operational endpoint kept
// out of the request metrics, either at the root or under the API base path
func ShouldSkipEndpoint(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return false
	}
	switch path[i:] {
	case "/metrics", "/health", "/ready":
		return strings.Count(path, "/") <= 2
	}
	return false
}
