package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

// commentPresenter turns stored comments into viewer-specific responses
type commentPresenter struct {
	interactionRepo repository.InteractionRepository
	editWindow      time.Duration
	now             func() time.Time
}

// present hydrates viewer flags for the whole page in one round trip
func (p *commentPresenter) present(ctx context.Context, actorID *uint, comments []*domain.Comment) ([]*dto.CommentResponse, error) {
	out := make([]*dto.CommentResponse, 0, len(comments))
	if len(comments) == 0 {
		return out, nil
	}

	var liked, disliked map[uint]bool
	if actorID != nil {
		ids := make([]uint, 0, len(comments))
		for _, c := range comments {
			ids = append(ids, c.ID)
		}
		var err error
		liked, disliked, err = p.interactionRepo.ReactionFlags(ctx, *actorID, ids)
		if err != nil {
			return nil, response.NewInternalError("Failed to load reactions", err)
		}
	}

	for _, c := range comments {
		out = append(out, p.toResponse(c, actorID, liked[c.ID], disliked[c.ID]))
	}
	return out, nil
}

func (p *commentPresenter) presentOne(ctx context.Context, actorID *uint, c *domain.Comment) (*dto.CommentResponse, error) {
	items, err := p.present(ctx, actorID, []*domain.Comment{c})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (p *commentPresenter) toResponse(c *domain.Comment, actorID *uint, liked, disliked bool) *dto.CommentResponse {
	isAuthor := actorID != nil && *actorID == c.UserID
	deleted := c.DeletedAt.Valid

	resp := &dto.CommentResponse{
		ID:            c.ID,
		PostID:        c.PostID,
		ParentID:      c.ParentID,
		Content:       c.Content,
		IsEdited:      c.IsEdited,
		EditedAt:      c.EditedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		LikesCount:    c.LikesCount,
		DislikesCount: c.DislikesCount,
		RepliesCount:  c.RepliesCount,
		ReportsCount:  c.ReportsCount,
		UserLiked:     liked,
		UserDisliked:  disliked,
		IsAuthor:      isAuthor,
		CanEdit:       isAuthor && !deleted && c.EditableAt(p.now(), p.editWindow),
		CanDelete:     isAuthor && !deleted,
	}
	if deleted {
		t := c.DeletedAt.Time
		resp.DeletedAt = &t
	}
	if c.User != nil {
		resp.User = toUserSummary(c.User)
	}
	return resp
}

func toUserSummary(u *domain.User) *dto.UserSummary {
	return &dto.UserSummary{ID: u.ID, Name: u.Name}
}

func toReportResponse(r *domain.CommentReport) *dto.ReportResponse {
	return &dto.ReportResponse{
		ID:          r.ID,
		CommentID:   r.CommentID,
		Reason:      string(r.Reason),
		Description: r.Description,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func offsetMeta(p *repository.OffsetPage) *dto.PaginationMeta {
	return &dto.PaginationMeta{
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
	}
}

func cursorMeta(p *repository.CursorPage, alreadyLoaded int) *dto.LoadMoreMeta {
	return &dto.LoadMoreMeta{
		HasMore:     p.HasMore,
		NextCursor:  p.NextCursor,
		LoadedCount: alreadyLoaded + len(p.Items),
	}
}

// commentLookupError maps a failed comment lookup to an AppError
func commentLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrCommentNotFound) {
		return response.NewNotFoundError("Comment not found", "")
	}
	return response.NewInternalError("Failed to load comment", err)
}

func postLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrPostNotFound) {
		return response.NewNotFoundError("Post not found", "")
	}
	return response.NewInternalError("Failed to load post", err)
}
