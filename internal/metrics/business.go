package metrics

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// RecordReaction counts one like/dislike toggle by its resulting action
func (m *Metrics) RecordReaction(action string) {
	m.safeExecute("RecordReaction", func() {
		m.ReactionsTotal.WithLabelValues(action).Inc()
	})
}

// IncrementReports counts an accepted report
func (m *Metrics) IncrementReports() {
	m.safeExecute("IncrementReports", func() {
		m.ReportsTotal.Inc()
	})
}

// AddCommentsPurged adds the rows removed by one purge run
func (m *Metrics) AddCommentsPurged(n int64) {
	m.safeExecute("AddCommentsPurged", func() {
		m.CommentsPurged.Add(float64(n))
	})
}

func (m *Metrics) SetPostsTotal(count int64) {
	m.safeExecute("SetPostsTotal", func() {
		m.PostsTotal.Set(float64(count))
	})
}

func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}

func (m *Metrics) SetPendingReportsTotal(count int64) {
	m.safeExecute("SetPendingReportsTotal", func() {
		m.PendingReportsTotal.Set(float64(count))
	})
}
