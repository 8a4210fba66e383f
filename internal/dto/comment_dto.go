package dto

import "time"

// ListCommentsQuery is the query string of GET /posts/:postId/comments
type ListCommentsQuery struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PerPage       int    `form:"per_page" binding:"omitempty,min=1"`
	SortBy        string `form:"sort_by" binding:"omitempty,oneof=created_at likes_count replies_count"`
	SortOrder     string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	LoadMore      bool   `form:"load_more"`
	LastCommentID *uint  `form:"last_comment_id" binding:"omitempty,min=1"`
}

// LoadMoreQuery is the query string of GET /posts/:postId/comments/load-more
type LoadMoreQuery struct {
	Limit         int    `form:"limit" binding:"omitempty,min=1"`
	LastCommentID *uint  `form:"last_comment_id" binding:"omitempty,min=1"`
	SortBy        string `form:"sort_by" binding:"omitempty,oneof=created_at likes_count replies_count"`
	SortOrder     string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	TotalLoaded   int    `form:"total_loaded" binding:"omitempty,min=0"`
}

// PageQuery is a generic offset/cursor query for secondary comment listings
type PageQuery struct {
	Page          int   `form:"page" binding:"omitempty,min=1"`
	PerPage       int   `form:"per_page" binding:"omitempty,min=1"`
	LoadMore      bool  `form:"load_more"`
	LastCommentID *uint `form:"last_comment_id" binding:"omitempty,min=1"`
}

// SearchCommentsQuery is the query string of GET /comments/search
type SearchCommentsQuery struct {
	PageQuery
	Q string `form:"q" binding:"required,min=3,max=100"`
}

// CreateCommentRequest represents the request to create a comment or a reply
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=2000"`
	ParentID *uint  `json:"parentId,omitempty" binding:"omitempty,min=1"`
}

// UpdateCommentRequest represents the request to edit a comment
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// ReportCommentRequest represents the request to report a comment
type ReportCommentRequest struct {
	Reason      string `json:"reason" binding:"required,oneof=spam harassment abuse inappropriate misinformation other"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateReportStatusRequest moves a report through moderation
type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed resolved dismissed"`
}

// CommentResponse represents a comment as seen by the current viewer
type CommentResponse struct {
	ID            uint               `json:"id"`
	PostID        uint               `json:"postId"`
	ParentID      *uint              `json:"parentId"`
	Content       string             `json:"content"`
	IsEdited      bool               `json:"isEdited"`
	EditedAt      *time.Time         `json:"editedAt"`
	DeletedAt     *time.Time         `json:"deletedAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	User          *UserSummary       `json:"user,omitempty"`
	LikesCount    int64              `json:"likesCount"`
	DislikesCount int64              `json:"dislikesCount"`
	RepliesCount  int64              `json:"repliesCount"`
	ReportsCount  int64              `json:"reportsCount"`
	UserLiked     bool               `json:"userLiked"`
	UserDisliked  bool               `json:"userDisliked"`
	IsAuthor      bool               `json:"isAuthor"`
	CanEdit       bool               `json:"canEdit"`
	CanDelete     bool               `json:"canDelete"`
	Replies       []*CommentResponse `json:"replies,omitempty"`
}

// CommentStatsResponse holds the live comment counts of a post
type CommentStatsResponse struct {
	TotalComments    int64 `json:"totalComments"`
	TopLevelComments int64 `json:"topLevelComments"`
	Replies          int64 `json:"replies"`
}

// PaginationMeta describes an offset page
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	LastPage    int   `json:"lastPage"`
	PerPage     int   `json:"perPage"`
	Total       int64 `json:"total"`
}

// LoadMoreMeta describes a cursor page
type LoadMoreMeta struct {
	HasMore     bool  `json:"hasMore"`
	NextCursor  *uint `json:"nextCursor"`
	LoadedCount int   `json:"loadedCount"`
}

// CommentListResponse is the response of the post comment listing
type CommentListResponse struct {
	Comments   []*CommentResponse    `json:"comments"`
	Post       *PostSummary          `json:"post"`
	Stats      *CommentStatsResponse `json:"stats"`
	Pagination *PaginationMeta       `json:"pagination,omitempty"`
	LoadMore   *LoadMoreMeta         `json:"loadMore,omitempty"`
	SortBy     string                `json:"sortBy"`
	SortOrder  string                `json:"sortOrder"`
}

// CommentPageResponse is a page of comments outside a post thread
type CommentPageResponse struct {
	Comments   []*CommentResponse `json:"comments"`
	Pagination *PaginationMeta    `json:"pagination,omitempty"`
	LoadMore   *LoadMoreMeta      `json:"loadMore,omitempty"`
}

// ReactionResponse is the state after a like or dislike toggle
type ReactionResponse struct {
	Action        string `json:"action"`
	LikesCount    int64  `json:"likesCount"`
	DislikesCount int64  `json:"dislikesCount"`
	UserLiked     bool   `json:"userLiked"`
	UserDisliked  bool   `json:"userDisliked"`
}

// ReportResponse represents a stored report
type ReportResponse struct {
	ID           uint      `json:"id"`
	CommentID    uint      `json:"commentId"`
	Reason       string    `json:"reason"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	ReportsCount int64     `json:"reportsCount,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
