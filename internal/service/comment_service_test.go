package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected *response.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}

func newTestCommentService(comments *MockCommentRepository, interactions *MockInteractionRepository, posts *MockPostRepository, now time.Time) CommentService {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	return NewCommentService(comments, interactions, posts, 15*time.Minute, m, zap.NewNop(),
		WithClock(func() time.Time { return now }))
}

func testComment(id, userID uint, createdAt time.Time) *domain.Comment {
	return &domain.Comment{
		BaseModel: domain.BaseModel{ID: id, CreatedAt: createdAt, UpdatedAt: createdAt},
		PostID:    1,
		UserID:    userID,
		Content:   "original",
		User:      &domain.User{BaseModel: domain.BaseModel{ID: userID}, Name: "writer"},
	}
}

func existingPost() *MockPostRepository {
	return &MockPostRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Post, error) {
			return &domain.Post{
				BaseModel: domain.BaseModel{ID: id},
				UserID:    9,
				Title:     "Hello",
				User:      &domain.User{BaseModel: domain.BaseModel{ID: 9}, Name: "author"},
			}, nil
		},
	}
}

func TestCommentService_CreateComment(t *testing.T) {
	tests := []struct {
		name        string
		req         *dto.CreateCommentRequest
		createErr   error
		wantErrCode string
		wantContent string
	}{
		{
			name:        "성공: 최상위 댓글 생성",
			req:         &dto.CreateCommentRequest{Content: "  <b>Nice</b> post  "},
			wantContent: "Nice post",
		},
		{
			name:        "실패: 게시글 없음",
			req:         &dto.CreateCommentRequest{Content: "hi"},
			createErr:   domain.ErrPostNotFound,
			wantErrCode: response.ErrCodeNotFound,
		},
		{
			name:        "실패: 다른 게시글의 부모 댓글",
			req:         &dto.CreateCommentRequest{Content: "hi", ParentID: uintPtr(7)},
			createErr:   domain.ErrInvalidParent,
			wantErrCode: response.ErrCodeUnprocessable,
		},
		{
			name:        "실패: 태그만 있는 내용",
			req:         &dto.CreateCommentRequest{Content: "<script>alert(1)</script>"},
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "실패: DB 에러",
			req:         &dto.CreateCommentRequest{Content: "hi"},
			createErr:   errors.New("database error"),
			wantErrCode: response.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			var stored *domain.Comment
			comments := &MockCommentRepository{
				CreateFunc: func(ctx context.Context, comment *domain.Comment) error {
					if tt.createErr != nil {
						return tt.createErr
					}
					comment.ID = 42
					comment.CreatedAt = baseTime
					stored = comment
					return nil
				},
				FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) {
					return stored, nil
				},
			}
			svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)

			// When
			got, err := svc.CreateComment(context.Background(), 3, 1, tt.req)

			// Then
			if tt.wantErrCode != "" {
				requireAppError(t, err, tt.wantErrCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(42), got.ID)
			assert.Equal(t, tt.wantContent, got.Content)
			assert.True(t, got.IsAuthor)
			assert.True(t, got.CanEdit)
			assert.True(t, got.CanDelete)
		})
	}
}

func TestCommentService_UpdateComment_EditWindow(t *testing.T) {
	tests := []struct {
		name        string
		actorID     uint
		elapsed     time.Duration
		content     string
		wantErrCode string
		wantUpdate  bool
	}{
		{name: "성공: 14분 경과", actorID: 3, elapsed: 14 * time.Minute, content: "changed", wantUpdate: true},
		{name: "성공: 정확히 15분", actorID: 3, elapsed: 15 * time.Minute, content: "changed", wantUpdate: true},
		{name: "성공: 내용 동일하면 수정 표시 안 함", actorID: 3, elapsed: time.Minute, content: "original"},
		{name: "실패: 16분 경과", actorID: 3, elapsed: 16 * time.Minute, content: "changed", wantErrCode: response.ErrCodeEditWindowExpired},
		{name: "실패: 작성자 아님", actorID: 4, elapsed: time.Minute, content: "changed", wantErrCode: response.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			comment := testComment(10, 3, baseTime)
			updated := false
			comments := &MockCommentRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) {
					return comment, nil
				},
				EditContentFunc: func(ctx context.Context, id, authorID uint, content string, editedAt time.Time, window time.Duration) error {
					updated = true
					assert.Equal(t, tt.actorID, authorID)
					assert.Equal(t, baseTime.Add(tt.elapsed), editedAt)
					assert.Equal(t, 15*time.Minute, window)
					comment.Content = content
					comment.IsEdited = true
					comment.EditedAt = &editedAt
					return nil
				},
			}
			svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime.Add(tt.elapsed))

			// When
			got, err := svc.UpdateComment(context.Background(), tt.actorID, 10, &dto.UpdateCommentRequest{Content: tt.content})

			// Then
			assert.Equal(t, tt.wantUpdate, updated)
			if tt.wantErrCode != "" {
				requireAppError(t, err, tt.wantErrCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, got.Content)
			assert.Equal(t, tt.wantUpdate, got.IsEdited)
		})
	}
}

func TestCommentService_UpdateComment_WriteRejected(t *testing.T) {
	tests := []struct {
		name        string
		writeErr    error
		wantErrCode string
	}{
		{name: "실패: 저장 시점에 수정 가능 시간 지남", writeErr: domain.ErrEditWindowExpired, wantErrCode: response.ErrCodeEditWindowExpired},
		{name: "실패: 저장 시점에 작성자 불일치", writeErr: domain.ErrNotCommentAuthor, wantErrCode: response.ErrCodeForbidden},
		{name: "실패: 저장 시점에 삭제됨", writeErr: gorm.ErrRecordNotFound, wantErrCode: response.ErrCodeNotFound},
		{name: "실패: 저장소 오류", writeErr: errors.New("db down"), wantErrCode: response.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := &MockCommentRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) {
					return testComment(10, 3, baseTime), nil
				},
				EditContentFunc: func(ctx context.Context, id, authorID uint, content string, editedAt time.Time, window time.Duration) error {
					return tt.writeErr
				},
			}
			svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime.Add(15*time.Minute))

			_, err := svc.UpdateComment(context.Background(), 3, 10, &dto.UpdateCommentRequest{Content: "changed"})
			requireAppError(t, err, tt.wantErrCode)
		})
	}
}

func TestCommentService_UpdateComment_NotFound(t *testing.T) {
	comments := &MockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)

	_, err := svc.UpdateComment(context.Background(), 3, 10, &dto.UpdateCommentRequest{Content: "x"})
	requireAppError(t, err, response.ErrCodeNotFound)
}

func TestCommentService_Permissions(t *testing.T) {
	comment := testComment(10, 3, baseTime)
	comments := &MockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) {
			return comment, nil
		},
	}
	interactions := &MockInteractionRepository{
		ReactionFlagsFunc: func(ctx context.Context, userID uint, ids []uint) (map[uint]bool, map[uint]bool, error) {
			if userID == 4 {
				return map[uint]bool{10: true}, map[uint]bool{}, nil
			}
			return map[uint]bool{}, map[uint]bool{}, nil
		},
	}

	t.Run("작성자, 수정 가능 시간 내", func(t *testing.T) {
		svc := newTestCommentService(comments, interactions, existingPost(), baseTime.Add(5*time.Minute))
		got, err := svc.GetComment(context.Background(), uintPtr(3), 10)
		require.NoError(t, err)
		assert.True(t, got.IsAuthor)
		assert.True(t, got.CanEdit)
		assert.True(t, got.CanDelete)
		assert.False(t, got.UserLiked)
	})

	t.Run("작성자, 수정 가능 시간 지남", func(t *testing.T) {
		svc := newTestCommentService(comments, interactions, existingPost(), baseTime.Add(time.Hour))
		got, err := svc.GetComment(context.Background(), uintPtr(3), 10)
		require.NoError(t, err)
		assert.True(t, got.IsAuthor)
		assert.False(t, got.CanEdit)
		assert.True(t, got.CanDelete)
	})

	t.Run("다른 사용자", func(t *testing.T) {
		svc := newTestCommentService(comments, interactions, existingPost(), baseTime)
		got, err := svc.GetComment(context.Background(), uintPtr(4), 10)
		require.NoError(t, err)
		assert.False(t, got.IsAuthor)
		assert.False(t, got.CanEdit)
		assert.False(t, got.CanDelete)
		assert.True(t, got.UserLiked)
	})

	t.Run("비로그인", func(t *testing.T) {
		svc := newTestCommentService(comments, &MockInteractionRepository{
			ReactionFlagsFunc: func(ctx context.Context, userID uint, ids []uint) (map[uint]bool, map[uint]bool, error) {
				t.Fatal("anonymous viewers need no reaction lookup")
				return nil, nil, nil
			},
		}, existingPost(), baseTime)
		got, err := svc.GetComment(context.Background(), nil, 10)
		require.NoError(t, err)
		assert.False(t, got.IsAuthor)
		assert.False(t, got.CanDelete)
	})
}

func TestCommentService_GetComment_IncludesReplies(t *testing.T) {
	comments := &MockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) {
			return testComment(id, 3, baseTime), nil
		},
		ListByOffsetFunc: func(ctx context.Context, q repository.OffsetQuery) (*repository.OffsetPage, error) {
			require.NotNil(t, q.Scope.ParentID)
			assert.Equal(t, uint(10), *q.Scope.ParentID)
			assert.Equal(t, repository.SortByCreatedAt, q.Sort.Field)
			assert.False(t, q.Sort.Desc)
			return &repository.OffsetPage{
				Items: []*domain.Comment{testComment(11, 4, baseTime), testComment(12, 5, baseTime)},
				Total: 2,
			}, nil
		},
	}
	svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)

	got, err := svc.GetComment(context.Background(), uintPtr(4), 10)
	require.NoError(t, err)
	require.Len(t, got.Replies, 2)
	assert.Equal(t, uint(11), got.Replies[0].ID)
	assert.True(t, got.Replies[0].IsAuthor)
}

func TestCommentService_ListComments(t *testing.T) {
	stats := &domain.CommentStats{TotalComments: 5, TopLevelComments: 3, Replies: 2}

	t.Run("성공: offset 모드", func(t *testing.T) {
		comments := &MockCommentRepository{
			ListByOffsetFunc: func(ctx context.Context, q repository.OffsetQuery) (*repository.OffsetPage, error) {
				require.NotNil(t, q.Scope.PostID)
				assert.Equal(t, uint(1), *q.Scope.PostID)
				assert.True(t, q.Scope.TopLevelOnly)
				assert.Equal(t, repository.SortByLikesCount, q.Sort.Field)
				assert.Equal(t, 2, q.Page)
				return &repository.OffsetPage{
					Items:       []*domain.Comment{testComment(1, 3, baseTime)},
					Total:       16,
					CurrentPage: 2,
					LastPage:    2,
					PerPage:     15,
				}, nil
			},
			StatsFunc: func(ctx context.Context, postID uint) (*domain.CommentStats, error) {
				return stats, nil
			},
		}
		svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)

		got, err := svc.ListComments(context.Background(), nil, 1, &dto.ListCommentsQuery{
			Page:   2,
			SortBy: repository.SortByLikesCount,
		})

		require.NoError(t, err)
		require.Len(t, got.Comments, 1)
		require.NotNil(t, got.Pagination)
		assert.Nil(t, got.LoadMore)
		assert.Equal(t, int64(16), got.Pagination.Total)
		assert.Equal(t, 2, got.Pagination.LastPage)
		assert.Equal(t, int64(5), got.Stats.TotalComments)
		assert.Equal(t, "Hello", got.Post.Title)
		assert.Equal(t, "author", got.Post.Author.Name)
		assert.Equal(t, repository.SortByLikesCount, got.SortBy)
		assert.Equal(t, repository.SortDesc, got.SortOrder)
	})

	t.Run("성공: cursor 모드", func(t *testing.T) {
		next := uint(7)
		comments := &MockCommentRepository{
			ListByCursorFunc: func(ctx context.Context, q repository.CursorQuery) (*repository.CursorPage, error) {
				require.NotNil(t, q.LastID)
				assert.Equal(t, uint(9), *q.LastID)
				assert.Equal(t, 2, q.Limit)
				assert.False(t, q.Sort.Desc)
				return &repository.CursorPage{
					Items:      []*domain.Comment{testComment(8, 3, baseTime), testComment(7, 3, baseTime)},
					HasMore:    true,
					NextCursor: &next,
				}, nil
			},
			StatsFunc: func(ctx context.Context, postID uint) (*domain.CommentStats, error) {
				return stats, nil
			},
		}
		svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)

		got, err := svc.ListComments(context.Background(), nil, 1, &dto.ListCommentsQuery{
			PerPage:       2,
			SortOrder:     repository.SortAsc,
			LoadMore:      true,
			LastCommentID: uintPtr(9),
		})

		require.NoError(t, err)
		assert.Nil(t, got.Pagination)
		require.NotNil(t, got.LoadMore)
		assert.True(t, got.LoadMore.HasMore)
		assert.Equal(t, &next, got.LoadMore.NextCursor)
		assert.Equal(t, 2, got.LoadMore.LoadedCount)
	})

	t.Run("실패: 게시글 없음", func(t *testing.T) {
		posts := &MockPostRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.Post, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := newTestCommentService(&MockCommentRepository{}, &MockInteractionRepository{}, posts, baseTime)

		_, err := svc.ListComments(context.Background(), nil, 1, &dto.ListCommentsQuery{})
		requireAppError(t, err, response.ErrCodeNotFound)
	})

	t.Run("실패: 지원하지 않는 정렬", func(t *testing.T) {
		svc := newTestCommentService(&MockCommentRepository{}, &MockInteractionRepository{}, existingPost(), baseTime)

		_, err := svc.ListComments(context.Background(), nil, 1, &dto.ListCommentsQuery{SortBy: "content"})
		requireAppError(t, err, response.ErrCodeValidation)
	})

	t.Run("실패: 통계 조회 에러 전파", func(t *testing.T) {
		comments := &MockCommentRepository{
			StatsFunc: func(ctx context.Context, postID uint) (*domain.CommentStats, error) {
				return nil, errors.New("connection reset")
			},
		}
		svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)

		_, err := svc.ListComments(context.Background(), nil, 1, &dto.ListCommentsQuery{})
		requireAppError(t, err, response.ErrCodeInternal)
	})
}

func TestCommentService_LoadMore_CountsAlreadyLoaded(t *testing.T) {
	comments := &MockCommentRepository{
		ListByCursorFunc: func(ctx context.Context, q repository.CursorQuery) (*repository.CursorPage, error) {
			return &repository.CursorPage{Items: []*domain.Comment{testComment(3, 1, baseTime)}}, nil
		},
	}
	svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)

	got, err := svc.LoadMore(context.Background(), nil, 1, &dto.LoadMoreQuery{LastCommentID: uintPtr(4), TotalLoaded: 30})
	require.NoError(t, err)
	assert.False(t, got.LoadMore.HasMore)
	assert.Nil(t, got.LoadMore.NextCursor)
	assert.Equal(t, 31, got.LoadMore.LoadedCount)
}

func TestCommentService_DeleteAndRestore(t *testing.T) {
	live := testComment(10, 3, baseTime)
	trashed := testComment(10, 3, baseTime)
	trashed.DeletedAt = gorm.DeletedAt{Time: baseTime, Valid: true}

	t.Run("삭제: 작성자 아님", func(t *testing.T) {
		comments := &MockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) { return live, nil },
			SoftDeleteFunc: func(ctx context.Context, id uint) error {
				t.Fatal("must not delete")
				return nil
			},
		}
		svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)
		requireAppError(t, svc.DeleteComment(context.Background(), 4, 10), response.ErrCodeForbidden)
	})

	t.Run("삭제: 성공", func(t *testing.T) {
		deleted := false
		comments := &MockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) { return live, nil },
			SoftDeleteFunc: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}
		svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)
		require.NoError(t, svc.DeleteComment(context.Background(), 3, 10))
		assert.True(t, deleted)
	})

	t.Run("복원: 삭제되지 않은 댓글", func(t *testing.T) {
		comments := &MockCommentRepository{
			FindByIDWithTrashedFunc: func(ctx context.Context, id uint) (*domain.Comment, error) { return live, nil },
		}
		svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)
		_, err := svc.RestoreComment(context.Background(), 3, 10)
		requireAppError(t, err, response.ErrCodeValidation)
	})

	t.Run("복원: 성공", func(t *testing.T) {
		comments := &MockCommentRepository{
			FindByIDWithTrashedFunc: func(ctx context.Context, id uint) (*domain.Comment, error) { return trashed, nil },
			FindByIDFunc:            func(ctx context.Context, id uint) (*domain.Comment, error) { return live, nil },
		}
		svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)
		got, err := svc.RestoreComment(context.Background(), 3, 10)
		require.NoError(t, err)
		assert.Nil(t, got.DeletedAt)
	})
}

func TestCommentService_ToggleLike(t *testing.T) {
	t.Run("성공", func(t *testing.T) {
		comments := &MockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) { return testComment(id, 3, baseTime), nil },
		}
		interactions := &MockInteractionRepository{
			ToggleLikeFunc: func(ctx context.Context, commentID, userID uint) (*domain.ReactionResult, error) {
				assert.Equal(t, uint(10), commentID)
				assert.Equal(t, uint(4), userID)
				return &domain.ReactionResult{Action: domain.ReactionLiked, LikesCount: 1, UserLiked: true}, nil
			},
		}
		svc := newTestCommentService(comments, interactions, existingPost(), baseTime)

		got, err := svc.ToggleLike(context.Background(), 4, 10)
		require.NoError(t, err)
		assert.Equal(t, "liked", got.Action)
		assert.Equal(t, int64(1), got.LikesCount)
		assert.True(t, got.UserLiked)
		assert.False(t, got.UserDisliked)
	})

	t.Run("실패: 댓글 없음", func(t *testing.T) {
		comments := &MockCommentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) { return nil, gorm.ErrRecordNotFound },
		}
		svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)

		_, err := svc.ToggleDislike(context.Background(), 4, 10)
		requireAppError(t, err, response.ErrCodeNotFound)
	})
}

func TestCommentService_ReportComment(t *testing.T) {
	found := &MockCommentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Comment, error) { return testComment(id, 3, baseTime), nil },
	}

	t.Run("성공", func(t *testing.T) {
		interactions := &MockInteractionRepository{
			ReportFunc: func(ctx context.Context, report *domain.CommentReport) (bool, error) {
				assert.Equal(t, domain.ReportReasonSpam, report.Reason)
				assert.Equal(t, domain.ReportStatusPending, report.Status)
				assert.Equal(t, "buy now", report.Description)
				report.ID = 5
				return true, nil
			},
			CountReportsFunc: func(ctx context.Context, commentID uint) (int64, error) { return 3, nil },
		}
		svc := newTestCommentService(found, interactions, existingPost(), baseTime)

		got, err := svc.ReportComment(context.Background(), 4, 10, &dto.ReportCommentRequest{Reason: "spam", Description: " buy now "})
		require.NoError(t, err)
		assert.Equal(t, uint(5), got.ID)
		assert.Equal(t, "pending", got.Status)
		assert.Equal(t, int64(3), got.ReportsCount)
	})

	t.Run("실패: 중복 신고", func(t *testing.T) {
		interactions := &MockInteractionRepository{
			ReportFunc: func(ctx context.Context, report *domain.CommentReport) (bool, error) { return false, nil },
		}
		svc := newTestCommentService(found, interactions, existingPost(), baseTime)

		_, err := svc.ReportComment(context.Background(), 4, 10, &dto.ReportCommentRequest{Reason: "spam"})
		requireAppError(t, err, response.ErrCodeAlreadyReported)
	})
}

func TestCommentService_SearchComments(t *testing.T) {
	t.Run("실패: 검색어가 너무 짧음", func(t *testing.T) {
		svc := newTestCommentService(&MockCommentRepository{}, &MockInteractionRepository{}, existingPost(), baseTime)
		_, err := svc.SearchComments(context.Background(), nil, &dto.SearchCommentsQuery{Q: "  ab  "})
		requireAppError(t, err, response.ErrCodeValidation)
	})

	t.Run("성공: 최신순 검색", func(t *testing.T) {
		comments := &MockCommentRepository{
			ListByOffsetFunc: func(ctx context.Context, q repository.OffsetQuery) (*repository.OffsetPage, error) {
				assert.Equal(t, "golang", q.Scope.Search)
				assert.True(t, q.Sort.Desc)
				return &repository.OffsetPage{Items: []*domain.Comment{testComment(1, 2, baseTime)}, Total: 1, CurrentPage: 1, LastPage: 1, PerPage: 15}, nil
			},
		}
		svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)
		got, err := svc.SearchComments(context.Background(), nil, &dto.SearchCommentsQuery{Q: " golang "})
		require.NoError(t, err)
		assert.Len(t, got.Comments, 1)
		assert.Equal(t, int64(1), got.Pagination.Total)
	})
}

func TestCommentService_ListUserComments_Cursor(t *testing.T) {
	comments := &MockCommentRepository{
		ListByCursorFunc: func(ctx context.Context, q repository.CursorQuery) (*repository.CursorPage, error) {
			require.NotNil(t, q.Scope.UserID)
			assert.Equal(t, uint(3), *q.Scope.UserID)
			return &repository.CursorPage{Items: []*domain.Comment{testComment(1, 3, baseTime)}}, nil
		},
	}
	svc := newTestCommentService(comments, &MockInteractionRepository{}, existingPost(), baseTime)

	got, err := svc.ListUserComments(context.Background(), 3, &dto.PageQuery{LoadMore: true})
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.True(t, got.Comments[0].IsAuthor)
	assert.Nil(t, got.Pagination)
}

func uintPtr(v uint) *uint {
	return &v
}
