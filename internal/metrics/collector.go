package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector refreshes the post, comment and report gauges periodically
type BusinessMetricsCollector struct {
	db       *gorm.DB
	metrics  *Metrics
	logger   *zap.Logger
	interval time.Duration
	done     chan struct{}
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger, interval time.Duration) *BusinessMetricsCollector {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &BusinessMetricsCollector{
		db:       db,
		metrics:  metrics,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	ticker := time.NewTicker(c.interval)
	go func() {
		defer ticker.Stop()

		// 즉시 한 번 수집
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	close(c.done)
}

func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	counts := []struct {
		name  string
		query func(db *gorm.DB) *gorm.DB
		set   func(int64)
	}{
		{"posts", func(db *gorm.DB) *gorm.DB { return db.Table("posts") }, c.metrics.SetPostsTotal},
		{"comments", func(db *gorm.DB) *gorm.DB {
			return db.Table("comments").Where("deleted_at IS NULL")
		}, c.metrics.SetCommentsTotal},
		{"pending reports", func(db *gorm.DB) *gorm.DB {
			return db.Table("comment_reports").Where("status = ?", "pending")
		}, c.metrics.SetPendingReportsTotal},
	}

	for _, q := range counts {
		var n int64
		if err := q.query(c.db.WithContext(ctx)).Count(&n).Error; err != nil {
			c.logger.Error("Failed to count "+q.name, zap.Error(err))
			continue
		}
		q.set(n)
	}
}
