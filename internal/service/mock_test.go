package service

import (
	"context"
	"time"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc              func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc            func(ctx context.Context, id uint) (*domain.Comment, error)
	FindByIDWithTrashedFunc func(ctx context.Context, id uint) (*domain.Comment, error)
	UpdateContentFunc       func(ctx context.Context, id uint, content string, editedAt *time.Time) error
	EditContentFunc         func(ctx context.Context, id, authorID uint, content string, editedAt time.Time, window time.Duration) error
	SoftDeleteFunc          func(ctx context.Context, id uint) error
	RestoreFunc             func(ctx context.Context, id uint) error
	ForceDeleteFunc         func(ctx context.Context, id uint) error
	PurgeDeletedBeforeFunc  func(ctx context.Context, before time.Time) (int64, error)
	ListByCursorFunc        func(ctx context.Context, q repository.CursorQuery) (*repository.CursorPage, error)
	ListByOffsetFunc        func(ctx context.Context, q repository.OffsetQuery) (*repository.OffsetPage, error)
	StatsFunc               func(ctx context.Context, postID uint) (*domain.CommentStats, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByIDWithTrashed(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.FindByIDWithTrashedFunc != nil {
		return m.FindByIDWithTrashedFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id uint, content string, editedAt *time.Time) error {
	if m.UpdateContentFunc != nil {
		return m.UpdateContentFunc(ctx, id, content, editedAt)
	}
	return nil
}

func (m *MockCommentRepository) EditContent(ctx context.Context, id, authorID uint, content string, editedAt time.Time, window time.Duration) error {
	if m.EditContentFunc != nil {
		return m.EditContentFunc(ctx, id, authorID, content, editedAt, window)
	}
	return nil
}

func (m *MockCommentRepository) SoftDelete(ctx context.Context, id uint) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) Restore(ctx context.Context, id uint) error {
	if m.RestoreFunc != nil {
		return m.RestoreFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) ForceDelete(ctx context.Context, id uint) error {
	if m.ForceDeleteFunc != nil {
		return m.ForceDeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) PurgeDeletedBefore(ctx context.Context, before time.Time) (int64, error) {
	if m.PurgeDeletedBeforeFunc != nil {
		return m.PurgeDeletedBeforeFunc(ctx, before)
	}
	return 0, nil
}

func (m *MockCommentRepository) ListByCursor(ctx context.Context, q repository.CursorQuery) (*repository.CursorPage, error) {
	if m.ListByCursorFunc != nil {
		return m.ListByCursorFunc(ctx, q)
	}
	return &repository.CursorPage{Items: []*domain.Comment{}}, nil
}

func (m *MockCommentRepository) ListByOffset(ctx context.Context, q repository.OffsetQuery) (*repository.OffsetPage, error) {
	if m.ListByOffsetFunc != nil {
		return m.ListByOffsetFunc(ctx, q)
	}
	return &repository.OffsetPage{Items: []*domain.Comment{}, CurrentPage: 1, LastPage: 1, PerPage: repository.DefaultPageSize}, nil
}

func (m *MockCommentRepository) Stats(ctx context.Context, postID uint) (*domain.CommentStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, postID)
	}
	return &domain.CommentStats{}, nil
}

// MockInteractionRepository is a mock implementation of InteractionRepository
type MockInteractionRepository struct {
	ToggleLikeFunc         func(ctx context.Context, commentID, userID uint) (*domain.ReactionResult, error)
	ToggleDislikeFunc      func(ctx context.Context, commentID, userID uint) (*domain.ReactionResult, error)
	ReactionFlagsFunc      func(ctx context.Context, userID uint, commentIDs []uint) (map[uint]bool, map[uint]bool, error)
	ReportFunc             func(ctx context.Context, report *domain.CommentReport) (bool, error)
	CountReportsFunc       func(ctx context.Context, commentID uint) (int64, error)
	FindReportByIDFunc     func(ctx context.Context, id uint) (*domain.CommentReport, error)
	UpdateReportStatusFunc func(ctx context.Context, id uint, status domain.ReportStatus) error
}

func (m *MockInteractionRepository) ToggleLike(ctx context.Context, commentID, userID uint) (*domain.ReactionResult, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, commentID, userID)
	}
	return &domain.ReactionResult{}, nil
}

func (m *MockInteractionRepository) ToggleDislike(ctx context.Context, commentID, userID uint) (*domain.ReactionResult, error) {
	if m.ToggleDislikeFunc != nil {
		return m.ToggleDislikeFunc(ctx, commentID, userID)
	}
	return &domain.ReactionResult{}, nil
}

func (m *MockInteractionRepository) ReactionFlags(ctx context.Context, userID uint, commentIDs []uint) (map[uint]bool, map[uint]bool, error) {
	if m.ReactionFlagsFunc != nil {
		return m.ReactionFlagsFunc(ctx, userID, commentIDs)
	}
	return map[uint]bool{}, map[uint]bool{}, nil
}

func (m *MockInteractionRepository) Report(ctx context.Context, report *domain.CommentReport) (bool, error) {
	if m.ReportFunc != nil {
		return m.ReportFunc(ctx, report)
	}
	return true, nil
}

func (m *MockInteractionRepository) CountReports(ctx context.Context, commentID uint) (int64, error) {
	if m.CountReportsFunc != nil {
		return m.CountReportsFunc(ctx, commentID)
	}
	return 0, nil
}

func (m *MockInteractionRepository) FindReportByID(ctx context.Context, id uint) (*domain.CommentReport, error) {
	if m.FindReportByIDFunc != nil {
		return m.FindReportByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockInteractionRepository) UpdateReportStatus(ctx context.Context, id uint, status domain.ReportStatus) error {
	if m.UpdateReportStatusFunc != nil {
		return m.UpdateReportStatusFunc(ctx, id, status)
	}
	return nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	CreateFunc   func(ctx context.Context, post *domain.Post) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Post, error)
	ListFunc     func(ctx context.Context, filter repository.PostFilter) (*repository.PostPage, error)
	UpdateFunc   func(ctx context.Context, post *domain.Post) error
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPostRepository) List(ctx context.Context, filter repository.PostFilter) (*repository.PostPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return &repository.PostPage{Items: []*domain.Post{}, CurrentPage: 1, LastPage: 1}, nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

// MockTokenRepository is a mock implementation of TokenRepository
type MockTokenRepository struct {
	RevokeFunc    func(ctx context.Context, jti string, ttl time.Duration) error
	IsRevokedFunc func(ctx context.Context, jti string) (bool, error)
}

func (m *MockTokenRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, jti, ttl)
	}
	return nil
}

func (m *MockTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, jti)
	}
	return false, nil
}
