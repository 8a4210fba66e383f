package handler

import (
	"context"
	"time"

	"blog-api/internal/dto"
)

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListCommentsFunc     func(ctx context.Context, actorID *uint, postID uint, q *dto.ListCommentsQuery) (*dto.CommentListResponse, error)
	LoadMoreFunc         func(ctx context.Context, actorID *uint, postID uint, q *dto.LoadMoreQuery) (*dto.CommentPageResponse, error)
	GetStatsFunc         func(ctx context.Context, postID uint) (*dto.CommentStatsResponse, error)
	GetCommentFunc       func(ctx context.Context, actorID *uint, commentID uint) (*dto.CommentResponse, error)
	ListRepliesFunc      func(ctx context.Context, actorID *uint, commentID uint, q *dto.PageQuery) (*dto.CommentPageResponse, error)
	CreateCommentFunc    func(ctx context.Context, actorID, postID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpdateCommentFunc    func(ctx context.Context, actorID, commentID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteCommentFunc    func(ctx context.Context, actorID, commentID uint) error
	RestoreCommentFunc   func(ctx context.Context, actorID, commentID uint) (*dto.CommentResponse, error)
	ToggleLikeFunc       func(ctx context.Context, actorID, commentID uint) (*dto.ReactionResponse, error)
	ToggleDislikeFunc    func(ctx context.Context, actorID, commentID uint) (*dto.ReactionResponse, error)
	ReportCommentFunc    func(ctx context.Context, actorID, commentID uint, req *dto.ReportCommentRequest) (*dto.ReportResponse, error)
	ListUserCommentsFunc func(ctx context.Context, actorID uint, q *dto.PageQuery) (*dto.CommentPageResponse, error)
	SearchCommentsFunc   func(ctx context.Context, actorID *uint, q *dto.SearchCommentsQuery) (*dto.CommentPageResponse, error)
}

func (m *MockCommentService) ListComments(ctx context.Context, actorID *uint, postID uint, q *dto.ListCommentsQuery) (*dto.CommentListResponse, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, actorID, postID, q)
	}
	return &dto.CommentListResponse{}, nil
}

func (m *MockCommentService) LoadMore(ctx context.Context, actorID *uint, postID uint, q *dto.LoadMoreQuery) (*dto.CommentPageResponse, error) {
	if m.LoadMoreFunc != nil {
		return m.LoadMoreFunc(ctx, actorID, postID, q)
	}
	return &dto.CommentPageResponse{}, nil
}

func (m *MockCommentService) GetStats(ctx context.Context, postID uint) (*dto.CommentStatsResponse, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, postID)
	}
	return &dto.CommentStatsResponse{}, nil
}

func (m *MockCommentService) GetComment(ctx context.Context, actorID *uint, commentID uint) (*dto.CommentResponse, error) {
	if m.GetCommentFunc != nil {
		return m.GetCommentFunc(ctx, actorID, commentID)
	}
	return &dto.CommentResponse{}, nil
}

func (m *MockCommentService) ListReplies(ctx context.Context, actorID *uint, commentID uint, q *dto.PageQuery) (*dto.CommentPageResponse, error) {
	if m.ListRepliesFunc != nil {
		return m.ListRepliesFunc(ctx, actorID, commentID, q)
	}
	return &dto.CommentPageResponse{}, nil
}

func (m *MockCommentService) CreateComment(ctx context.Context, actorID, postID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, actorID, postID, req)
	}
	return &dto.CommentResponse{}, nil
}

func (m *MockCommentService) UpdateComment(ctx context.Context, actorID, commentID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	if m.UpdateCommentFunc != nil {
		return m.UpdateCommentFunc(ctx, actorID, commentID, req)
	}
	return &dto.CommentResponse{}, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, actorID, commentID uint) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, actorID, commentID)
	}
	return nil
}

func (m *MockCommentService) RestoreComment(ctx context.Context, actorID, commentID uint) (*dto.CommentResponse, error) {
	if m.RestoreCommentFunc != nil {
		return m.RestoreCommentFunc(ctx, actorID, commentID)
	}
	return &dto.CommentResponse{}, nil
}

func (m *MockCommentService) ToggleLike(ctx context.Context, actorID, commentID uint) (*dto.ReactionResponse, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, actorID, commentID)
	}
	return &dto.ReactionResponse{}, nil
}

func (m *MockCommentService) ToggleDislike(ctx context.Context, actorID, commentID uint) (*dto.ReactionResponse, error) {
	if m.ToggleDislikeFunc != nil {
		return m.ToggleDislikeFunc(ctx, actorID, commentID)
	}
	return &dto.ReactionResponse{}, nil
}

func (m *MockCommentService) ReportComment(ctx context.Context, actorID, commentID uint, req *dto.ReportCommentRequest) (*dto.ReportResponse, error) {
	if m.ReportCommentFunc != nil {
		return m.ReportCommentFunc(ctx, actorID, commentID, req)
	}
	return &dto.ReportResponse{}, nil
}

func (m *MockCommentService) ListUserComments(ctx context.Context, actorID uint, q *dto.PageQuery) (*dto.CommentPageResponse, error) {
	if m.ListUserCommentsFunc != nil {
		return m.ListUserCommentsFunc(ctx, actorID, q)
	}
	return &dto.CommentPageResponse{}, nil
}

func (m *MockCommentService) SearchComments(ctx context.Context, actorID *uint, q *dto.SearchCommentsQuery) (*dto.CommentPageResponse, error) {
	if m.SearchCommentsFunc != nil {
		return m.SearchCommentsFunc(ctx, actorID, q)
	}
	return &dto.CommentPageResponse{}, nil
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	LoginFunc    func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	LogoutFunc   func(ctx context.Context, tokenID string, expiresAt time.Time) error
	MeFunc       func(ctx context.Context, actorID uint) (*dto.UserResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return &dto.AuthResponse{}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &dto.AuthResponse{}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, tokenID, expiresAt)
	}
	return nil
}

func (m *MockAuthService) Me(ctx context.Context, actorID uint) (*dto.UserResponse, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, actorID)
	}
	return &dto.UserResponse{}, nil
}
