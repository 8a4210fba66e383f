package metrics

import (
	"context"
	"errors"
	"strings"
	"time"
)

// RecordStorageCall records one object storage operation
func (m *Metrics) RecordStorageCall(operation string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageCall", func() {
		status := "success"
		if err != nil {
			status = "error"
			m.StorageErrors.WithLabelValues(operation, getErrorType(err)).Inc()
		}
		m.StorageRequestsTotal.WithLabelValues(operation, status).Inc()
		m.StorageRequestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
	})
}

// getErrorType categorizes network and storage errors
func getErrorType(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "connection_refused"
	case strings.Contains(msg, "no such host"):
		return "dns_error"
	case strings.Contains(msg, "timeout"):
		return "timeout"
	case strings.Contains(msg, "EOF"), strings.Contains(msg, "connection reset"):
		return "connection_reset"
	case strings.Contains(msg, "NoSuchKey"), strings.Contains(msg, "NotFound"):
		return "not_found"
	case strings.Contains(msg, "AccessDenied"):
		return "access_denied"
	}
	return "unknown"
}
