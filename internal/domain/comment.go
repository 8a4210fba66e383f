package domain

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a top-level comment on a post (ParentID nil) or a reply to another comment
type Comment struct {
	BaseModel
	PostID    uint           `gorm:"not null;index:idx_comments_post_created,priority:1;index:idx_comments_post_parent,priority:1" json:"postId"`
	UserID    uint           `gorm:"not null;index:idx_comments_user_id" json:"userId"`
	ParentID  *uint          `gorm:"index:idx_comments_post_parent,priority:2" json:"parentId"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	IsEdited  bool           `gorm:"not null;default:false" json:"isEdited"`
	EditedAt  *time.Time     `json:"editedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	// Computed at read time from the interaction tables, never stored.
	LikesCount    int64 `gorm:"->;-:migration" json:"likesCount"`
	DislikesCount int64 `gorm:"->;-:migration" json:"dislikesCount"`
	ReportsCount  int64 `gorm:"->;-:migration" json:"reportsCount"`
	RepliesCount  int64 `gorm:"->;-:migration" json:"repliesCount"`

	Post   *Post    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Parent *Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	User   *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsTopLevel reports whether the comment is attached directly to the post
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

// EditableAt reports whether the comment may still be edited at now
func (c *Comment) EditableAt(now time.Time, window time.Duration) bool {
	return now.Sub(c.CreatedAt) <= window
}
