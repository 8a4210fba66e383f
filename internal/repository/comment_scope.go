package repository

import (
	"strings"

	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// CommentScope narrows the candidate set of a listing
type CommentScope struct {
	PostID         *uint
	UserID         *uint
	ParentID       *uint
	TopLevelOnly   bool
	Search         string
	PendingReports bool
}

// PostTopLevel is the top-level thread of a post
func PostTopLevel(postID uint) CommentScope {
	return CommentScope{PostID: &postID, TopLevelOnly: true}
}

// RepliesOf is the direct replies to a comment
func RepliesOf(parentID uint) CommentScope {
	return CommentScope{ParentID: &parentID}
}

// ByAuthor is every live comment written by a user
func ByAuthor(userID uint) CommentScope {
	return CommentScope{UserID: &userID}
}

// Matching is every live comment whose content contains q
func Matching(q string) CommentScope {
	return CommentScope{Search: q}
}

// AwaitingModeration is every live comment with at least one pending report
func AwaitingModeration() CommentScope {
	return CommentScope{PendingReports: true}
}

func (s CommentScope) apply(db *gorm.DB) *gorm.DB {
	if s.PostID != nil {
		db = db.Where("comments.post_id = ?", *s.PostID)
	}
	if s.UserID != nil {
		db = db.Where("comments.user_id = ?", *s.UserID)
	}
	if s.ParentID != nil {
		db = db.Where("comments.parent_id = ?", *s.ParentID)
	}
	if s.TopLevelOnly {
		db = db.Where("comments.parent_id IS NULL")
	}
	if s.Search != "" {
		db = db.Where(`LOWER(comments.content) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(s.Search))+"%")
	}
	if s.PendingReports {
		db = db.Where("EXISTS (SELECT 1 FROM comment_reports WHERE comment_reports.comment_id = comments.id AND comment_reports.status = ?)",
			string(domain.ReportStatusPending))
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
