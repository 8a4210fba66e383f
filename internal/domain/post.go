package domain

import "gorm.io/datatypes"

// Post is a blog entry that comments attach to
type Post struct {
	BaseModel
	UserID      uint           `gorm:"not null;index:idx_posts_user_id" json:"userId"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"type:varchar(100);index:idx_posts_category" json:"category"`
	Tags        datatypes.JSON `json:"tags"`
	Thumbnail   string         `gorm:"type:varchar(512)" json:"thumbnail"`
	User        *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}
