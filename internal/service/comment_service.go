package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

// CommentService defines the interface for comment business logic.
// Every call names its actor explicitly; a nil actor is an anonymous viewer.
type CommentService interface {
	ListComments(ctx context.Context, actorID *uint, postID uint, q *dto.ListCommentsQuery) (*dto.CommentListResponse, error)
	LoadMore(ctx context.Context, actorID *uint, postID uint, q *dto.LoadMoreQuery) (*dto.CommentPageResponse, error)
	GetStats(ctx context.Context, postID uint) (*dto.CommentStatsResponse, error)
	GetComment(ctx context.Context, actorID *uint, commentID uint) (*dto.CommentResponse, error)
	ListReplies(ctx context.Context, actorID *uint, commentID uint, q *dto.PageQuery) (*dto.CommentPageResponse, error)
	CreateComment(ctx context.Context, actorID, postID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, actorID, commentID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, actorID, commentID uint) error
	RestoreComment(ctx context.Context, actorID, commentID uint) (*dto.CommentResponse, error)
	ToggleLike(ctx context.Context, actorID, commentID uint) (*dto.ReactionResponse, error)
	ToggleDislike(ctx context.Context, actorID, commentID uint) (*dto.ReactionResponse, error)
	ReportComment(ctx context.Context, actorID, commentID uint, req *dto.ReportCommentRequest) (*dto.ReportResponse, error)
	ListUserComments(ctx context.Context, actorID uint, q *dto.PageQuery) (*dto.CommentPageResponse, error)
	SearchComments(ctx context.Context, actorID *uint, q *dto.SearchCommentsQuery) (*dto.CommentPageResponse, error)
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo     repository.CommentRepository
	interactionRepo repository.InteractionRepository
	postRepo        repository.PostRepository
	presenter       *commentPresenter
	editWindow      time.Duration
	now             func() time.Time
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// CommentServiceOption customizes a CommentService
type CommentServiceOption func(*commentServiceImpl)

// WithClock replaces the wall clock used for edit-window checks
func WithClock(now func() time.Time) CommentServiceOption {
	return func(s *commentServiceImpl) {
		s.now = now
	}
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	interactionRepo repository.InteractionRepository,
	postRepo repository.PostRepository,
	editWindow time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
	opts ...CommentServiceOption,
) CommentService {
	s := &commentServiceImpl{
		commentRepo:     commentRepo,
		interactionRepo: interactionRepo,
		postRepo:        postRepo,
		editWindow:      editWindow,
		now:             time.Now,
		metrics:         m,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.presenter = &commentPresenter{
		interactionRepo: interactionRepo,
		editWindow:      editWindow,
		now:             func() time.Time { return s.now() },
	}
	return s
}

// ListComments returns the top-level thread of a post in offset or cursor mode,
// together with the post header and its comment stats
func (s *commentServiceImpl) ListComments(ctx context.Context, actorID *uint, postID uint, q *dto.ListCommentsQuery) (*dto.CommentListResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, postLookupError(err)
	}

	key, err := repository.ResolveSort(q.SortBy, q.SortOrder)
	if err != nil {
		return nil, response.NewValidationError("Invalid sort parameters", err.Error())
	}

	resp := &dto.CommentListResponse{
		Post:      &dto.PostSummary{ID: post.ID, Title: post.Title},
		SortBy:    key.Field,
		SortOrder: repository.SortAsc,
	}
	if key.Desc {
		resp.SortOrder = repository.SortDesc
	}
	if post.User != nil {
		resp.Post.Author = toUserSummary(post.User)
	}

	scope := repository.PostTopLevel(postID)

	var (
		items []*domain.Comment
		stats *domain.CommentStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if q.LoadMore {
			page, err := s.commentRepo.ListByCursor(gctx, repository.CursorQuery{
				Scope:  scope,
				Sort:   key,
				Limit:  q.PerPage,
				LastID: q.LastCommentID,
			})
			if err != nil {
				return err
			}
			items = page.Items
			resp.LoadMore = cursorMeta(page, 0)
			return nil
		}

		page, err := s.commentRepo.ListByOffset(gctx, repository.OffsetQuery{
			Scope:   scope,
			Sort:    key,
			Page:    q.Page,
			PerPage: q.PerPage,
		})
		if err != nil {
			return err
		}
		items = page.Items
		resp.Pagination = offsetMeta(page)
		return nil
	})
	g.Go(func() error {
		var err error
		stats, err = s.commentRepo.Stats(gctx, postID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to list comments", zap.Uint("post_id", postID), zap.Error(err))
		return nil, response.NewInternalError("Failed to retrieve comments", err)
	}

	resp.Stats = toStatsResponse(stats)
	if resp.Comments, err = s.presenter.present(ctx, actorID, items); err != nil {
		return nil, err
	}
	return resp, nil
}

// LoadMore returns the next cursor page of a post's top-level thread
func (s *commentServiceImpl) LoadMore(ctx context.Context, actorID *uint, postID uint, q *dto.LoadMoreQuery) (*dto.CommentPageResponse, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, postLookupError(err)
	}

	key, err := repository.ResolveSort(q.SortBy, q.SortOrder)
	if err != nil {
		return nil, response.NewValidationError("Invalid sort parameters", err.Error())
	}

	return s.listPage(ctx, actorID, repository.PostTopLevel(postID), key, pageRequest{
		loadMore:    true,
		perPage:     q.Limit,
		lastID:      q.LastCommentID,
		totalLoaded: q.TotalLoaded,
	})
}

// GetStats returns the live comment counts of a post
func (s *commentServiceImpl) GetStats(ctx context.Context, postID uint) (*dto.CommentStatsResponse, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, postLookupError(err)
	}

	stats, err := s.commentRepo.Stats(ctx, postID)
	if err != nil {
		return nil, response.NewInternalError("Failed to retrieve comment stats", err)
	}
	return toStatsResponse(stats), nil
}

// GetComment returns a comment with the first page of its replies, oldest first
func (s *commentServiceImpl) GetComment(ctx context.Context, actorID *uint, commentID uint) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, commentLookupError(err)
	}

	replies, err := s.commentRepo.ListByOffset(ctx, repository.OffsetQuery{
		Scope:   repository.RepliesOf(commentID),
		Sort:    repository.MustResolveSort(repository.SortByCreatedAt, repository.SortAsc),
		Page:    1,
		PerPage: repository.MaxPerPage,
	})
	if err != nil {
		return nil, response.NewInternalError("Failed to retrieve replies", err)
	}

	all, err := s.presenter.present(ctx, actorID, append([]*domain.Comment{comment}, replies.Items...))
	if err != nil {
		return nil, err
	}
	resp := all[0]
	resp.Replies = all[1:]
	return resp, nil
}

// ListReplies pages through the direct replies of a comment, oldest first
func (s *commentServiceImpl) ListReplies(ctx context.Context, actorID *uint, commentID uint, q *dto.PageQuery) (*dto.CommentPageResponse, error) {
	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		return nil, commentLookupError(err)
	}

	return s.listPage(ctx, actorID, repository.RepliesOf(commentID),
		repository.MustResolveSort(repository.SortByCreatedAt, repository.SortAsc), fromPageQuery(q))
}

// CreateComment adds a top-level comment or a reply on the same post
func (s *commentServiceImpl) CreateComment(ctx context.Context, actorID, postID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	content, err := sanitizeComment(req.Content)
	if err != nil {
		return nil, response.NewValidationError("Invalid comment content", err.Error())
	}

	comment := &domain.Comment{
		PostID:   postID,
		UserID:   actorID,
		ParentID: req.ParentID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			return nil, response.NewNotFoundError("Post not found", "")
		case errors.Is(err, domain.ErrInvalidParent):
			return nil, response.NewAppError(response.ErrCodeUnprocessable, "Invalid parent comment", err.Error())
		}
		s.logger.Error("Failed to create comment", zap.Uint("post_id", postID), zap.Error(err))
		return nil, response.NewInternalError("Failed to create comment", err)
	}

	s.metrics.IncrementCommentCreated()
	s.logger.Info("Comment created",
		zap.Uint("comment_id", comment.ID),
		zap.Uint("post_id", postID),
		zap.Uint("user_id", actorID),
		zap.Bool("reply", comment.ParentID != nil),
	)

	return s.reload(ctx, actorID, comment.ID)
}

// UpdateComment edits a comment's content; only the author may do so and only
// within the edit window. Unchanged content is not marked as edited.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, actorID, commentID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, commentLookupError(err)
	}
	if comment.UserID != actorID {
		return nil, response.NewForbiddenError("You can only edit your own comments", domain.ErrNotCommentAuthor.Error())
	}

	now := s.now()
	if !comment.EditableAt(now, s.editWindow) {
		return nil, editWindowExpired(s.editWindow)
	}

	content, err := sanitizeComment(req.Content)
	if err != nil {
		return nil, response.NewValidationError("Invalid comment content", err.Error())
	}

	if content != comment.Content {
		err := s.commentRepo.EditContent(ctx, commentID, actorID, content, now.UTC(), s.editWindow)
		switch {
		case errors.Is(err, domain.ErrEditWindowExpired):
			return nil, editWindowExpired(s.editWindow)
		case errors.Is(err, domain.ErrNotCommentAuthor):
			return nil, response.NewForbiddenError("You can only edit your own comments", err.Error())
		case err != nil:
			return nil, commentLookupError(err)
		}
	}

	return s.reload(ctx, actorID, commentID)
}

func editWindowExpired(window time.Duration) error {
	return response.NewAppError(response.ErrCodeEditWindowExpired,
		"Comments can only be edited within "+window.String()+" of posting", domain.ErrEditWindowExpired.Error())
}

// DeleteComment soft-deletes a comment owned by the actor
func (s *commentServiceImpl) DeleteComment(ctx context.Context, actorID, commentID uint) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return commentLookupError(err)
	}
	if comment.UserID != actorID {
		return response.NewForbiddenError("You can only delete your own comments", domain.ErrNotCommentAuthor.Error())
	}

	if err := s.commentRepo.SoftDelete(ctx, commentID); err != nil {
		return commentLookupError(err)
	}
	return nil
}

// RestoreComment brings back a soft-deleted comment owned by the actor
func (s *commentServiceImpl) RestoreComment(ctx context.Context, actorID, commentID uint) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByIDWithTrashed(ctx, commentID)
	if err != nil {
		return nil, commentLookupError(err)
	}
	if comment.UserID != actorID {
		return nil, response.NewForbiddenError("You can only restore your own comments", domain.ErrNotCommentAuthor.Error())
	}
	if !comment.DeletedAt.Valid {
		return nil, response.NewValidationError("Comment is not deleted", "")
	}

	if err := s.commentRepo.Restore(ctx, commentID); err != nil {
		return nil, commentLookupError(err)
	}
	return s.reload(ctx, actorID, commentID)
}

// ToggleLike flips the actor's like on a comment, clearing a dislike
func (s *commentServiceImpl) ToggleLike(ctx context.Context, actorID, commentID uint) (*dto.ReactionResponse, error) {
	return s.toggle(ctx, commentID, func() (*domain.ReactionResult, error) {
		return s.interactionRepo.ToggleLike(ctx, commentID, actorID)
	})
}

// ToggleDislike flips the actor's dislike on a comment, clearing a like
func (s *commentServiceImpl) ToggleDislike(ctx context.Context, actorID, commentID uint) (*dto.ReactionResponse, error) {
	return s.toggle(ctx, commentID, func() (*domain.ReactionResult, error) {
		return s.interactionRepo.ToggleDislike(ctx, commentID, actorID)
	})
}

func (s *commentServiceImpl) toggle(ctx context.Context, commentID uint, flip func() (*domain.ReactionResult, error)) (*dto.ReactionResponse, error) {
	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		return nil, commentLookupError(err)
	}

	result, err := flip()
	if err != nil {
		s.logger.Error("Failed to toggle reaction", zap.Uint("comment_id", commentID), zap.Error(err))
		return nil, response.NewInternalError("Failed to update reaction", err)
	}

	s.metrics.RecordReaction(string(result.Action))
	return &dto.ReactionResponse{
		Action:        string(result.Action),
		LikesCount:    result.LikesCount,
		DislikesCount: result.DislikesCount,
		UserLiked:     result.UserLiked,
		UserDisliked:  result.UserDisliked,
	}, nil
}

// ReportComment files a pending report; a second report by the same user is rejected
func (s *commentServiceImpl) ReportComment(ctx context.Context, actorID, commentID uint, req *dto.ReportCommentRequest) (*dto.ReportResponse, error) {
	if _, err := s.commentRepo.FindByID(ctx, commentID); err != nil {
		return nil, commentLookupError(err)
	}

	report := &domain.CommentReport{
		CommentID:   commentID,
		UserID:      actorID,
		Reason:      domain.ReportReason(req.Reason),
		Description: strings.TrimSpace(req.Description),
		Status:      domain.ReportStatusPending,
	}
	created, err := s.interactionRepo.Report(ctx, report)
	if err != nil {
		return nil, response.NewInternalError("Failed to report comment", err)
	}
	if !created {
		return nil, response.NewAppError(response.ErrCodeAlreadyReported, "You have already reported this comment", "")
	}

	s.metrics.IncrementReports()
	s.logger.Info("Comment reported",
		zap.Uint("comment_id", commentID),
		zap.Uint("user_id", actorID),
		zap.String("reason", req.Reason),
	)

	resp := toReportResponse(report)
	if count, err := s.interactionRepo.CountReports(ctx, commentID); err == nil {
		resp.ReportsCount = count
	} else {
		s.logger.Warn("Failed to count reports", zap.Uint("comment_id", commentID), zap.Error(err))
	}
	return resp, nil
}

// ListUserComments pages through the actor's own comments, newest first
func (s *commentServiceImpl) ListUserComments(ctx context.Context, actorID uint, q *dto.PageQuery) (*dto.CommentPageResponse, error) {
	return s.listPage(ctx, &actorID, repository.ByAuthor(actorID),
		repository.MustResolveSort(repository.SortByCreatedAt, repository.SortDesc), fromPageQuery(q))
}

// SearchComments finds live comments whose content contains the query, newest first
func (s *commentServiceImpl) SearchComments(ctx context.Context, actorID *uint, q *dto.SearchCommentsQuery) (*dto.CommentPageResponse, error) {
	term := strings.TrimSpace(q.Q)
	if n := utf8.RuneCountInString(term); n < 3 || n > 100 {
		return nil, response.NewValidationError("Search query must be between 3 and 100 characters", "")
	}

	return s.listPage(ctx, actorID, repository.Matching(term),
		repository.MustResolveSort(repository.SortByCreatedAt, repository.SortDesc), fromPageQuery(&q.PageQuery))
}

// pageRequest selects offset or cursor mode for a listing
type pageRequest struct {
	loadMore    bool
	page        int
	perPage     int
	lastID      *uint
	totalLoaded int
}

func fromPageQuery(q *dto.PageQuery) pageRequest {
	if q == nil {
		return pageRequest{}
	}
	return pageRequest{loadMore: q.LoadMore, page: q.Page, perPage: q.PerPage, lastID: q.LastCommentID}
}

func (s *commentServiceImpl) listPage(ctx context.Context, actorID *uint, scope repository.CommentScope, key repository.SortKey, req pageRequest) (*dto.CommentPageResponse, error) {
	resp := &dto.CommentPageResponse{}
	var items []*domain.Comment

	if req.loadMore {
		page, err := s.commentRepo.ListByCursor(ctx, repository.CursorQuery{
			Scope:  scope,
			Sort:   key,
			Limit:  req.perPage,
			LastID: req.lastID,
		})
		if err != nil {
			return nil, response.NewInternalError("Failed to retrieve comments", err)
		}
		items = page.Items
		resp.LoadMore = cursorMeta(page, req.totalLoaded)
	} else {
		page, err := s.commentRepo.ListByOffset(ctx, repository.OffsetQuery{
			Scope:   scope,
			Sort:    key,
			Page:    req.page,
			PerPage: req.perPage,
		})
		if err != nil {
			return nil, response.NewInternalError("Failed to retrieve comments", err)
		}
		items = page.Items
		resp.Pagination = offsetMeta(page)
	}

	comments, err := s.presenter.present(ctx, actorID, items)
	if err != nil {
		return nil, err
	}
	resp.Comments = comments
	return resp, nil
}

// reload reads a comment back with fresh counters for the response
func (s *commentServiceImpl) reload(ctx context.Context, actorID, commentID uint) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, commentLookupError(err)
	}
	return s.presenter.presentOne(ctx, &actorID, comment)
}

func toStatsResponse(stats *domain.CommentStats) *dto.CommentStatsResponse {
	if stats == nil {
		return &dto.CommentStatsResponse{}
	}
	return &dto.CommentStatsResponse{
		TotalComments:    stats.TotalComments,
		TopLevelComments: stats.TopLevelComments,
		Replies:          stats.Replies,
	}
}
