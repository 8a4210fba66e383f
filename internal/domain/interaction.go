package domain

import "time"

// CommentLike records one user's like on a comment
type CommentLike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_likes_comment_user,priority:1" json:"commentId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_likes_comment_user,priority:2;index:idx_comment_likes_user_id" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Comment   *Comment  `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// CommentDislike records one user's dislike on a comment
type CommentDislike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_dislikes_comment_user,priority:1" json:"commentId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_dislikes_comment_user,priority:2;index:idx_comment_dislikes_user_id" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Comment   *Comment  `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommentDislike) TableName() string {
	return "comment_dislikes"
}

// ReportReason is why a comment was reported
type ReportReason string

const (
	ReportReasonSpam           ReportReason = "spam"
	ReportReasonHarassment     ReportReason = "harassment"
	ReportReasonAbuse          ReportReason = "abuse"
	ReportReasonInappropriate  ReportReason = "inappropriate"
	ReportReasonMisinformation ReportReason = "misinformation"
	ReportReasonOther          ReportReason = "other"
)

// ReportStatus is the moderation state of a report
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusReviewed  ReportStatus = "reviewed"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}

// CommentReport is a user's report against a comment
type CommentReport struct {
	BaseModel
	CommentID   uint         `gorm:"not null;uniqueIndex:idx_comment_reports_comment_user,priority:1;index:idx_comment_reports_comment_status,priority:1" json:"commentId"`
	UserID      uint         `gorm:"not null;uniqueIndex:idx_comment_reports_comment_user,priority:2" json:"userId"`
	Reason      ReportReason `gorm:"type:varchar(32);not null" json:"reason"`
	Description string       `gorm:"type:varchar(500)" json:"description"`
	Status      ReportStatus `gorm:"type:varchar(16);not null;default:pending;index:idx_comment_reports_comment_status,priority:2" json:"status"`
	Comment     *Comment     `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommentReport) TableName() string {
	return "comment_reports"
}

// ReactionAction is the transition applied by a like or dislike toggle
type ReactionAction string

const (
	ReactionLiked          ReactionAction = "liked"
	ReactionRemovedLike    ReactionAction = "removed_like"
	ReactionDisliked       ReactionAction = "disliked"
	ReactionRemovedDislike ReactionAction = "removed_dislike"
)

// ReactionResult is the state of a (comment, user) pair after a toggle
type ReactionResult struct {
	Action        ReactionAction
	LikesCount    int64
	DislikesCount int64
	UserLiked     bool
	UserDisliked  bool
}

// CommentStats aggregates the live comments of a post
type CommentStats struct {
	TotalComments    int64 `gorm:"column:total_comments"`
	TopLevelComments int64 `gorm:"column:top_level_comments"`
	Replies          int64 `gorm:"column:replies"`
}
