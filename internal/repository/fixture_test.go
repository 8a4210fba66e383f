package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blog-api/internal/database"
	"blog-api/internal/domain"
)

// setupTestDB opens a private in-memory SQLite database with the full schema
func setupTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection to :memory: would be a different database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

type fixture struct {
	t     testing.TB
	db    *gorm.DB
	base  time.Time
	users int
}

func newFixture(t testing.TB) *fixture {
	return &fixture{
		t:    t,
		db:   setupTestDB(t),
		base: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) user() *domain.User {
	f.t.Helper()
	f.users++
	u := &domain.User{
		Name:         fmt.Sprintf("user%d", f.users),
		Email:        fmt.Sprintf("user%d@example.com", f.users),
		PasswordHash: "hash",
		Role:         domain.RoleUser,
	}
	require.NoError(f.t, f.db.Create(u).Error)
	return u
}

func (f *fixture) post(author *domain.User) *domain.Post {
	f.t.Helper()
	p := &domain.Post{UserID: author.ID, Title: "post", Content: "body"}
	require.NoError(f.t, f.db.Create(p).Error)
	return p
}

// comment inserts a comment created at base+offset
func (f *fixture) comment(post *domain.Post, author *domain.User, parentID *uint, offset time.Duration) *domain.Comment {
	f.t.Helper()
	at := f.base.Add(offset)
	c := &domain.Comment{
		BaseModel: domain.BaseModel{CreatedAt: at, UpdatedAt: at},
		PostID:    post.ID,
		UserID:    author.ID,
		ParentID:  parentID,
		Content:   fmt.Sprintf("comment at %s", offset),
	}
	require.NoError(f.t, f.db.Create(c).Error)
	return c
}

// likes adds n likes from fresh users
func (f *fixture) likes(c *domain.Comment, n int) {
	f.t.Helper()
	for i := 0; i < n; i++ {
		u := f.user()
		require.NoError(f.t, f.db.Create(&domain.CommentLike{CommentID: c.ID, UserID: u.ID}).Error)
	}
}

func (f *fixture) softDelete(c *domain.Comment, at time.Time) {
	f.t.Helper()
	require.NoError(f.t, f.db.Unscoped().Model(&domain.Comment{}).Where("id = ?", c.ID).Update("deleted_at", at).Error)
}

func ids(items []*domain.Comment) []uint {
	out := make([]uint, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func uintPtr(v uint) *uint {
	return &v
}
