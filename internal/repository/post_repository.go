package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// PostFilter narrows and orders a post listing
type PostFilter struct {
	UserID    *uint
	Category  string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

// PostPage is one numbered page of posts
type PostPage struct {
	Items       []*domain.Post
	Total       int64
	CurrentPage int
	LastPage    int
	PerPage     int
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id uint) (*domain.Post, error)
	List(ctx context.Context, filter PostFilter) (*PostPage, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepositoryImpl is the GORM implementation of PostRepository
type postRepositoryImpl struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepositoryImpl{db: db}
}

var postSortColumns = map[string]string{
	"created_at": "posts.created_at",
	"updated_at": "posts.updated_at",
	"title":      "posts.title",
}

// Create creates a new post
func (r *postRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID finds a post with its author
func (r *postRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns a page of posts ordered by the requested column, id breaking ties
func (r *postRepositoryImpl) List(ctx context.Context, filter PostFilter) (*PostPage, error) {
	perPage := ClampPerPage(filter.PerPage)
	page := filter.Page
	if page < 1 {
		page = 1
	}

	column, ok := postSortColumns[filter.SortBy]
	if !ok {
		column = postSortColumns["created_at"]
	}
	dir := "DESC"
	if strings.EqualFold(filter.SortOrder, SortAsc) {
		dir = "ASC"
	}

	scoped := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Post{})
		if filter.UserID != nil {
			q = q.Where("posts.user_id = ?", *filter.UserID)
		}
		if filter.Category != "" {
			q = q.Where("posts.category = ?", filter.Category)
		}
		if filter.Search != "" {
			pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
			q = q.Where(`(LOWER(posts.title) LIKE ? ESCAPE '\' OR LOWER(posts.content) LIKE ? ESCAPE '\')`, pattern, pattern)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, err
	}

	posts := make([]*domain.Post, 0, perPage)
	if err := scoped().
		Preload("User").
		Order(column + " " + dir + ", posts.id " + dir).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	return &PostPage{
		Items:       posts,
		Total:       total,
		CurrentPage: page,
		LastPage:    lastPage(total, perPage),
		PerPage:     perPage,
	}, nil
}

// Update saves the editable columns of a post
func (r *postRepositoryImpl) Update(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).
		Model(post).
		Select("title", "content", "description", "category", "tags", "thumbnail", "updated_at").
		Updates(post).Error
}

// Delete removes a post together with all of its comments and their interactions
func (r *postRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roots []uint
		if err := tx.Unscoped().Model(&domain.Comment{}).
			Where("post_id = ? AND parent_id IS NULL", id).
			Pluck("id", &roots).Error; err != nil {
			return err
		}
		if len(roots) > 0 {
			if _, err := hardDeleteComments(tx, roots); err != nil {
				return err
			}
		}

		result := tx.Delete(&domain.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
