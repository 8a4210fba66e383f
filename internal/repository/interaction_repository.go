package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blog-api/internal/domain"
)

// InteractionRepository defines the interface for likes, dislikes and reports
type InteractionRepository interface {
	ToggleLike(ctx context.Context, commentID, userID uint) (*domain.ReactionResult, error)
	ToggleDislike(ctx context.Context, commentID, userID uint) (*domain.ReactionResult, error)
	ReactionFlags(ctx context.Context, userID uint, commentIDs []uint) (liked, disliked map[uint]bool, err error)
	Report(ctx context.Context, report *domain.CommentReport) (bool, error)
	CountReports(ctx context.Context, commentID uint) (int64, error)
	FindReportByID(ctx context.Context, id uint) (*domain.CommentReport, error)
	UpdateReportStatus(ctx context.Context, id uint, status domain.ReportStatus) error
}

// interactionRepositoryImpl is the GORM implementation of InteractionRepository
type interactionRepositoryImpl struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new instance of InteractionRepository
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepositoryImpl{db: db}
}

// reaction describes one side of the like/dislike pair
type reaction struct {
	model    func(commentID, userID uint) interface{}
	opposite func() interface{}
	added    domain.ReactionAction
	removed  domain.ReactionAction
	isLike   bool
}

var (
	likeReaction = reaction{
		model: func(commentID, userID uint) interface{} {
			return &domain.CommentLike{CommentID: commentID, UserID: userID}
		},
		opposite: func() interface{} { return &domain.CommentDislike{} },
		added:    domain.ReactionLiked,
		removed:  domain.ReactionRemovedLike,
		isLike:   true,
	}
	dislikeReaction = reaction{
		model: func(commentID, userID uint) interface{} {
			return &domain.CommentDislike{CommentID: commentID, UserID: userID}
		},
		opposite: func() interface{} { return &domain.CommentLike{} },
		added:    domain.ReactionDisliked,
		removed:  domain.ReactionRemovedDislike,
	}
)

// ToggleLike moves the pair none->liked, liked->none or disliked->liked
func (r *interactionRepositoryImpl) ToggleLike(ctx context.Context, commentID, userID uint) (*domain.ReactionResult, error) {
	return r.toggle(ctx, commentID, userID, likeReaction)
}

// ToggleDislike is the mirror of ToggleLike
func (r *interactionRepositoryImpl) ToggleDislike(ctx context.Context, commentID, userID uint) (*domain.ReactionResult, error) {
	return r.toggle(ctx, commentID, userID, dislikeReaction)
}

func (r *interactionRepositoryImpl) toggle(ctx context.Context, commentID, userID uint, rx reaction) (*domain.ReactionResult, error) {
	result := &domain.ReactionResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(rx.opposite()).Error; err != nil {
			return err
		}

		removed := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(rx.model(0, 0))
		if removed.Error != nil {
			return removed.Error
		}

		if removed.RowsAffected > 0 {
			result.Action = rx.removed
		} else {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rx.model(commentID, userID)).Error; err != nil {
				return err
			}
			result.Action = rx.added
			result.UserLiked = rx.isLike
			result.UserDisliked = !rx.isLike
		}

		if err := tx.Model(&domain.CommentLike{}).Where("comment_id = ?", commentID).Count(&result.LikesCount).Error; err != nil {
			return err
		}
		return tx.Model(&domain.CommentDislike{}).Where("comment_id = ?", commentID).Count(&result.DislikesCount).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReactionFlags reports which of commentIDs the user has liked or disliked
func (r *interactionRepositoryImpl) ReactionFlags(ctx context.Context, userID uint, commentIDs []uint) (map[uint]bool, map[uint]bool, error) {
	liked := make(map[uint]bool)
	disliked := make(map[uint]bool)
	if len(commentIDs) == 0 {
		return liked, disliked, nil
	}

	db := r.db.WithContext(ctx)

	var likedIDs []uint
	if err := db.Model(&domain.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &likedIDs).Error; err != nil {
		return nil, nil, err
	}

	var dislikedIDs []uint
	if err := db.Model(&domain.CommentDislike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &dislikedIDs).Error; err != nil {
		return nil, nil, err
	}

	for _, id := range likedIDs {
		liked[id] = true
	}
	for _, id := range dislikedIDs {
		disliked[id] = true
	}
	return liked, disliked, nil
}

// Report stores a pending report; false means the user had already reported the comment
func (r *interactionRepositoryImpl) Report(ctx context.Context, report *domain.CommentReport) (bool, error) {
	if report.Status == "" {
		report.Status = domain.ReportStatusPending
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "comment_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(report)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountReports counts every report on a comment regardless of status
func (r *interactionRepositoryImpl) CountReports(ctx context.Context, commentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CommentReport{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}

// FindReportByID finds a report by ID
func (r *interactionRepositoryImpl) FindReportByID(ctx context.Context, id uint) (*domain.CommentReport, error) {
	var report domain.CommentReport
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReportStatus moves a report to a new moderation status
func (r *interactionRepositoryImpl) UpdateReportStatus(ctx context.Context, id uint, status domain.ReportStatus) error {
	result := r.db.WithContext(ctx).Model(&domain.CommentReport{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
