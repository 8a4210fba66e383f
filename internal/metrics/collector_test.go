package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestBusinessMetricsCollector_Collect(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"CREATE TABLE posts (id INTEGER PRIMARY KEY)",
		"CREATE TABLE comments (id INTEGER PRIMARY KEY, deleted_at DATETIME)",
		"CREATE TABLE comment_reports (id INTEGER PRIMARY KEY, status TEXT)",
		"INSERT INTO posts (id) VALUES (1), (2)",
		"INSERT INTO comments (id, deleted_at) VALUES (1, NULL), (2, NULL), (3, '2024-01-01 00:00:00')",
		"INSERT INTO comment_reports (id, status) VALUES (1, 'pending'), (2, 'resolved')",
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	m := getTestMetrics()
	c := NewBusinessMetricsCollector(db, m, zap.NewNop(), time.Hour)
	c.Start()
	defer c.Stop()

	assert.Eventually(t, func() bool {
		return getGaugeValue(t, m.PostsTotal) == 2 &&
			getGaugeValue(t, m.CommentsTotal) == 2 &&
			getGaugeValue(t, m.PendingReportsTotal) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestBusinessMetricsCollector_MissingTablesDoNotPanic(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	c := NewBusinessMetricsCollector(db, getTestMetrics(), zap.NewNop(), 0)
	assert.Equal(t, 60*time.Second, c.interval)
	assert.NotPanics(t, c.collect)
}
