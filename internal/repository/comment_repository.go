package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// CursorQuery requests one "load more" page
type CursorQuery struct {
	Scope  CommentScope
	Sort   SortKey
	Limit  int
	LastID *uint
}

// CursorPage is one "load more" page; NextCursor is set only when HasMore
type CursorPage struct {
	Items      []*domain.Comment
	HasMore    bool
	NextCursor *uint
}

// OffsetQuery requests one numbered page
type OffsetQuery struct {
	Scope   CommentScope
	Sort    SortKey
	Page    int
	PerPage int
}

// OffsetPage is one numbered page with the eager total
type OffsetPage struct {
	Items       []*domain.Comment
	Total       int64
	CurrentPage int
	LastPage    int
	PerPage     int
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uint) (*domain.Comment, error)
	FindByIDWithTrashed(ctx context.Context, id uint) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id uint, content string, editedAt *time.Time) error
	EditContent(ctx context.Context, id, authorID uint, content string, editedAt time.Time, window time.Duration) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	ForceDelete(ctx context.Context, id uint) error
	PurgeDeletedBefore(ctx context.Context, before time.Time) (int64, error)
	ListByCursor(ctx context.Context, q CursorQuery) (*CursorPage, error)
	ListByOffset(ctx context.Context, q OffsetQuery) (*OffsetPage, error)
	Stats(ctx context.Context, postID uint) (*domain.CommentStats, error)
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create inserts a comment after checking that its post exists and that its
// parent, if any, is a live comment on the same post
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var posts int64
		if err := tx.Model(&domain.Post{}).Where("id = ?", comment.PostID).Count(&posts).Error; err != nil {
			return err
		}
		if posts == 0 {
			return domain.ErrPostNotFound
		}

		if comment.ParentID != nil {
			var parents int64
			if err := tx.Model(&domain.Comment{}).
				Where("id = ? AND post_id = ?", *comment.ParentID, comment.PostID).
				Count(&parents).Error; err != nil {
				return err
			}
			if parents == 0 {
				return domain.ErrInvalidParent
			}
		}

		return tx.Create(comment).Error
	})
}

// FindByID finds a live comment with its counters and author
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// FindByIDWithTrashed also returns soft-deleted comments
func (r *commentRepositoryImpl) FindByIDWithTrashed(ctx context.Context, id uint) (*domain.Comment, error) {
	return r.find(r.db.WithContext(ctx).Unscoped(), id)
}

func (r *commentRepositoryImpl) find(db *gorm.DB, id uint) (*domain.Comment, error) {
	var comment domain.Comment
	if err := db.Model(&domain.Comment{}).
		Select(commentColumns).
		Preload("User").
		Where("comments.id = ?", id).
		Take(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateContent replaces the content; a non-nil editedAt also marks the comment edited
func (r *commentRepositoryImpl) UpdateContent(ctx context.Context, id uint, content string, editedAt *time.Time) error {
	updates := map[string]interface{}{"content": content}
	if editedAt != nil {
		updates["is_edited"] = true
		updates["edited_at"] = *editedAt
	}

	result := r.db.WithContext(ctx).Model(&domain.Comment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// EditContent rewrites an author's comment and marks it edited. The author and
// created_at >= editedAt-window conditions are part of the UPDATE itself, so an
// edit checked just before the window closes cannot land after it.
func (r *commentRepositoryImpl) EditContent(ctx context.Context, id, authorID uint, content string, editedAt time.Time, window time.Duration) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Comment{}).
			Where("id = ? AND user_id = ? AND created_at >= ?", id, authorID, editedAt.Add(-window)).
			Updates(map[string]interface{}{
				"content":   content,
				"is_edited": true,
				"edited_at": editedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		var current domain.Comment
		if err := tx.Select("id", "user_id").Take(&current, id).Error; err != nil {
			return err
		}
		if current.UserID != authorID {
			return domain.ErrNotCommentAuthor
		}
		return domain.ErrEditWindowExpired
	})
}

// SoftDelete sets deleted_at on a live comment
func (r *commentRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Restore clears deleted_at on a soft-deleted comment
func (r *commentRepositoryImpl) Restore(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().
		Model(&domain.Comment{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ForceDelete permanently removes a comment, its reply subtree and their interactions
func (r *commentRepositoryImpl) ForceDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var found int64
		if err := tx.Unscoped().Model(&domain.Comment{}).Where("id = ?", id).Count(&found).Error; err != nil {
			return err
		}
		if found == 0 {
			return gorm.ErrRecordNotFound
		}
		_, err := hardDeleteComments(tx, []uint{id})
		return err
	})
}

// PurgeDeletedBefore hard-deletes comments soft-deleted before the cutoff and returns how many rows went
func (r *commentRepositoryImpl) PurgeDeletedBefore(ctx context.Context, before time.Time) (int64, error) {
	var purged int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Unscoped().Model(&domain.Comment{}).
			Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		n, err := hardDeleteComments(tx, ids)
		purged = n
		return err
	})
	return purged, err
}

// ListByCursor returns the page that follows LastID in the requested order.
// The cursor lookup and the page read share one transaction.
func (r *commentRepositoryImpl) ListByCursor(ctx context.Context, q CursorQuery) (*CursorPage, error) {
	limit := ClampCursorLimit(q.Limit)

	var rows []*domain.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cursor *Cursor
		if q.LastID != nil {
			var err error
			if cursor, err = resolveCursor(tx, q.Scope, q.Sort, *q.LastID); err != nil {
				return err
			}
		}

		query := q.Scope.apply(tx.Model(&domain.Comment{})).Select(commentColumns)
		if cursor != nil {
			predicate, args := q.Sort.After(cursor)
			query = query.Where(predicate, args...)
		}

		return query.Preload("User").
			Order(q.Sort.OrderBy()).
			Limit(limit + 1).
			Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	page := &CursorPage{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		page.HasMore = true
		next := page.Items[limit-1].ID
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []*domain.Comment{}
	}
	return page, nil
}

// ListByOffset returns a numbered page and the total size of the scope
func (r *commentRepositoryImpl) ListByOffset(ctx context.Context, q OffsetQuery) (*OffsetPage, error) {
	perPage := ClampPerPage(q.PerPage)
	page := q.Page
	if page < 1 {
		page = 1
	}

	db := r.db.WithContext(ctx)

	var total int64
	if err := q.Scope.apply(db.Model(&domain.Comment{})).Count(&total).Error; err != nil {
		return nil, err
	}

	rows := make([]*domain.Comment, 0, perPage)
	if err := q.Scope.apply(db.Model(&domain.Comment{})).
		Select(commentColumns).
		Preload("User").
		Order(q.Sort.OrderBy()).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return &OffsetPage{
		Items:       rows,
		Total:       total,
		CurrentPage: page,
		LastPage:    lastPage(total, perPage),
		PerPage:     perPage,
	}, nil
}

// Stats counts the live comments of a post in one aggregate query
func (r *commentRepositoryImpl) Stats(ctx context.Context, postID uint) (*domain.CommentStats, error) {
	var stats domain.CommentStats
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Select(`COUNT(*) AS total_comments,
			COUNT(CASE WHEN parent_id IS NULL THEN 1 END) AS top_level_comments,
			COUNT(CASE WHEN parent_id IS NOT NULL THEN 1 END) AS replies`).
		Where("post_id = ?", postID).
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// hardDeleteComments removes roots, every descendant reply and their interaction rows
func hardDeleteComments(tx *gorm.DB, roots []uint) (int64, error) {
	ids := append([]uint(nil), roots...)
	frontier := roots
	for len(frontier) > 0 {
		var children []uint
		if err := tx.Unscoped().Model(&domain.Comment{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &children).Error; err != nil {
			return 0, err
		}
		ids = append(ids, children...)
		frontier = children
	}

	for _, model := range []interface{}{&domain.CommentLike{}, &domain.CommentDislike{}, &domain.CommentReport{}} {
		if err := tx.Where("comment_id IN ?", ids).Delete(model).Error; err != nil {
			return 0, err
		}
	}

	result := tx.Unscoped().Where("id IN ?", ids).Delete(&domain.Comment{})
	return result.RowsAffected, result.Error
}
