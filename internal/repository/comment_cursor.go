package repository

import (
	"errors"

	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// Cursor is the comparable position of the last comment a client has seen
type Cursor struct {
	ID    uint
	Value interface{}
}

// resolveCursor reads the sort value of lastID inside scope. A comment that is
// missing, soft-deleted or outside the scope yields a nil cursor, which callers
// treat as a first-page request.
func resolveCursor(tx *gorm.DB, scope CommentScope, key SortKey, lastID uint) (*Cursor, error) {
	var row domain.Comment
	err := scope.apply(tx.Model(&domain.Comment{})).
		Select(commentColumns).
		Where("comments.id = ?", lastID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &Cursor{ID: row.ID, Value: key.value(&row)}, nil
}
