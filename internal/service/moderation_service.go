package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

// ModerationService defines the interface for moderator-only comment operations
type ModerationService interface {
	ListReportedComments(ctx context.Context, actorID uint, q *dto.PageQuery) (*dto.CommentPageResponse, error)
	UpdateReportStatus(ctx context.Context, actorID, reportID uint, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error)
	ForceDeleteComment(ctx context.Context, actorID, commentID uint) error
}

// moderationServiceImpl is the implementation of ModerationService
type moderationServiceImpl struct {
	commentRepo     repository.CommentRepository
	interactionRepo repository.InteractionRepository
	userRepo        repository.UserRepository
	presenter       *commentPresenter
	logger          *zap.Logger
}

// NewModerationService creates a new instance of ModerationService
func NewModerationService(
	commentRepo repository.CommentRepository,
	interactionRepo repository.InteractionRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) ModerationService {
	return &moderationServiceImpl{
		commentRepo:     commentRepo,
		interactionRepo: interactionRepo,
		userRepo:        userRepo,
		presenter:       &commentPresenter{interactionRepo: interactionRepo, now: time.Now},
		logger:          logger,
	}
}

// requireModerator re-reads the actor's role so a demoted user loses access
// before their token expires
func (s *moderationServiceImpl) requireModerator(ctx context.Context, actorID uint) error {
	user, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeUnauthorized, "User not found", "")
		}
		return response.NewInternalError("Failed to load user", err)
	}
	if !user.IsModerator() {
		return response.NewForbiddenError("Moderator role required", "")
	}
	return nil
}

// ListReportedComments returns live comments with at least one pending report, newest first
func (s *moderationServiceImpl) ListReportedComments(ctx context.Context, actorID uint, q *dto.PageQuery) (*dto.CommentPageResponse, error) {
	if err := s.requireModerator(ctx, actorID); err != nil {
		return nil, err
	}

	req := fromPageQuery(q)
	page, err := s.commentRepo.ListByOffset(ctx, repository.OffsetQuery{
		Scope:   repository.AwaitingModeration(),
		Sort:    repository.MustResolveSort(repository.SortByCreatedAt, repository.SortDesc),
		Page:    req.page,
		PerPage: req.perPage,
	})
	if err != nil {
		return nil, response.NewInternalError("Failed to retrieve reported comments", err)
	}

	comments, err := s.presenter.present(ctx, &actorID, page.Items)
	if err != nil {
		return nil, err
	}
	return &dto.CommentPageResponse{
		Comments:   comments,
		Pagination: offsetMeta(page),
	}, nil
}

// UpdateReportStatus moves a report through review
func (s *moderationServiceImpl) UpdateReportStatus(ctx context.Context, actorID, reportID uint, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error) {
	if err := s.requireModerator(ctx, actorID); err != nil {
		return nil, err
	}

	status := domain.ReportStatus(req.Status)
	if !status.IsValid() {
		return nil, response.NewValidationError("Invalid report status", req.Status)
	}

	if err := s.interactionRepo.UpdateReportStatus(ctx, reportID, status); err != nil {
		return nil, reportLookupError(err)
	}

	report, err := s.interactionRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, reportLookupError(err)
	}

	s.logger.Info("Report status updated",
		zap.Uint("report_id", reportID),
		zap.Uint("moderator_id", actorID),
		zap.String("status", req.Status),
	)
	return toReportResponse(report), nil
}

// ForceDeleteComment permanently removes a comment and its replies, deleted or not
func (s *moderationServiceImpl) ForceDeleteComment(ctx context.Context, actorID, commentID uint) error {
	if err := s.requireModerator(ctx, actorID); err != nil {
		return err
	}

	if err := s.commentRepo.ForceDelete(ctx, commentID); err != nil {
		return commentLookupError(err)
	}

	s.logger.Info("Comment force deleted", zap.Uint("comment_id", commentID), zap.Uint("moderator_id", actorID))
	return nil
}

func reportLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrReportNotFound) {
		return response.NewNotFoundError("Report not found", "")
	}
	return response.NewInternalError("Failed to update report", err)
}
