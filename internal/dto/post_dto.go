package dto

import "time"

// CreatePostRequest is accepted as JSON or multipart form; a thumbnail file
// may accompany the multipart form under "thumbnail"
type CreatePostRequest struct {
	Title       string   `json:"title" form:"title" binding:"required,min=1,max=255"`
	Content     string   `json:"content" form:"content" binding:"required,min=1"`
	Description string   `json:"description" form:"description" binding:"max=1000"`
	Category    string   `json:"category" form:"category" binding:"max=100"`
	Tags        []string `json:"tags" form:"tags" binding:"max=10,dive,min=1,max=30"`
}

// UpdatePostRequest changes only the provided fields
type UpdatePostRequest struct {
	Title           *string  `json:"title" form:"title" binding:"omitempty,min=1,max=255"`
	Content         *string  `json:"content" form:"content" binding:"omitempty,min=1"`
	Description     *string  `json:"description" form:"description" binding:"omitempty,max=1000"`
	Category        *string  `json:"category" form:"category" binding:"omitempty,max=100"`
	Tags            []string `json:"tags" form:"tags" binding:"omitempty,max=10,dive,min=1,max=30"`
	RemoveThumbnail bool     `json:"removeThumbnail" form:"remove_thumbnail"`
}

// ListPostsQuery is the query string of GET /posts
type ListPostsQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1"`
	Search    string `form:"search" binding:"omitempty,max=100"`
	Category  string `form:"category" binding:"omitempty,max=100"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=created_at updated_at title"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ThumbnailUpload is an image file sent with a post
type ThumbnailUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// PostResponse represents a post with rendered content
type PostResponse struct {
	ID           uint         `json:"id"`
	Title        string       `json:"title"`
	Content      string       `json:"content"`
	ContentHTML  string       `json:"contentHtml"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Tags         []string     `json:"tags"`
	ThumbnailURL string       `json:"thumbnailUrl,omitempty"`
	Author       *UserSummary `json:"author,omitempty"`
	CanEdit      bool         `json:"canEdit"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// PostSummary is the post header shown above a comment thread
type PostSummary struct {
	ID     uint         `json:"id"`
	Title  string       `json:"title"`
	Author *UserSummary `json:"author,omitempty"`
}

// PostListResponse is one page of posts
type PostListResponse struct {
	Posts      []*PostResponse `json:"posts"`
	Pagination PaginationMeta  `json:"pagination"`
}
