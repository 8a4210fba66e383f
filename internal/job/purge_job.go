package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"blog-api/internal/metrics"
)

const purgeTimeout = 5 * time.Minute

// CommentPurger hard-deletes comments that were soft-deleted before a cutoff
type CommentPurger interface {
	PurgeDeletedBefore(ctx context.Context, before time.Time) (int64, error)
}

// PurgeJob removes comments that have stayed in the trash longer than the retention period.
// Their likes, dislikes, reports and replies go with them.
type PurgeJob struct {
	purger     CommentPurger
	purgeAfter time.Duration
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewPurgeJob creates a new PurgeJob instance
func NewPurgeJob(purger CommentPurger, purgeAfter time.Duration, m *metrics.Metrics, logger *zap.Logger) *PurgeJob {
	return &PurgeJob{
		purger:     purger,
		purgeAfter: purgeAfter,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

// Run implements cron.Job
func (j *PurgeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	if _, err := j.RunOnce(ctx); err != nil {
		j.logger.Error("Comment purge job failed", zap.Error(err))
	}
}

// RunOnce purges everything soft-deleted before now minus the retention period
func (j *PurgeJob) RunOnce(ctx context.Context) (int64, error) {
	if j.purgeAfter <= 0 {
		j.logger.Debug("Comment purge disabled")
		return 0, nil
	}

	cutoff := j.now().UTC().Add(-j.purgeAfter)
	j.logger.Info("Starting comment purge job", zap.Time("cutoff", cutoff))

	purged, err := j.purger.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	j.metrics.AddCommentsPurged(purged)
	j.logger.Info("Comment purge job completed", zap.Int64("purged", purged))
	return purged, nil
}

// Schedule registers the job on c under a standard cron spec or descriptor such as @daily
func (j *PurgeJob) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddJob(spec, cron.NewChain(cron.SkipIfStillRunning(NewCronLogger(j.logger))).Then(j))
}

type cronLogger struct {
	sugar *zap.SugaredLogger
}

// NewCronLogger adapts zap to the cron.Logger interface
func NewCronLogger(logger *zap.Logger) cron.Logger {
	return cronLogger{sugar: logger.Sugar()}
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
