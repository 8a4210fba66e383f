package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"blog-api/internal/client"
	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

const maxThumbnailSize = 5 << 20

var allowedThumbnailTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// PostService defines the interface for post business logic
type PostService interface {
	CreatePost(ctx context.Context, actorID uint, req *dto.CreatePostRequest, thumbnail *dto.ThumbnailUpload) (*dto.PostResponse, error)
	GetPost(ctx context.Context, actorID *uint, postID uint) (*dto.PostResponse, error)
	ListPosts(ctx context.Context, actorID *uint, q *dto.ListPostsQuery) (*dto.PostListResponse, error)
	ListUserPosts(ctx context.Context, actorID uint, q *dto.ListPostsQuery) (*dto.PostListResponse, error)
	UpdatePost(ctx context.Context, actorID, postID uint, req *dto.UpdatePostRequest, thumbnail *dto.ThumbnailUpload) (*dto.PostResponse, error)
	DeletePost(ctx context.Context, actorID, postID uint) error
}

// postServiceImpl is the implementation of PostService
type postServiceImpl struct {
	postRepo repository.PostRepository
	s3Client client.S3ClientInterface
	logger   *zap.Logger
}

// NewPostService creates a new instance of PostService
func NewPostService(postRepo repository.PostRepository, s3Client client.S3ClientInterface, logger *zap.Logger) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		s3Client: s3Client,
		logger:   logger,
	}
}

// CreatePost stores a post, uploading its thumbnail first when one is sent
func (s *postServiceImpl) CreatePost(ctx context.Context, actorID uint, req *dto.CreatePostRequest, thumbnail *dto.ThumbnailUpload) (*dto.PostResponse, error) {
	tags, err := encodeTags(req.Tags)
	if err != nil {
		return nil, response.NewValidationError("Invalid tags", err.Error())
	}

	post := &domain.Post{
		UserID:      actorID,
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		Description: req.Description,
		Category:    req.Category,
		Tags:        tags,
	}

	if thumbnail != nil {
		key, err := s.uploadThumbnail(ctx, thumbnail)
		if err != nil {
			return nil, err
		}
		post.Thumbnail = key
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		s.logger.Error("Failed to create post", zap.Uint("user_id", actorID), zap.Error(err))
		if post.Thumbnail != "" {
			s.deleteThumbnail(ctx, post.Thumbnail)
		}
		return nil, response.NewInternalError("Failed to create post", err)
	}

	s.logger.Info("Post created", zap.Uint("post_id", post.ID), zap.Uint("user_id", actorID))

	created, err := s.postRepo.FindByID(ctx, post.ID)
	if err != nil {
		return nil, postLookupError(err)
	}
	return s.toPostResponse(created, &actorID), nil
}

// GetPost returns a single post
func (s *postServiceImpl) GetPost(ctx context.Context, actorID *uint, postID uint) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, postLookupError(err)
	}
	return s.toPostResponse(post, actorID), nil
}

// ListPosts returns a filtered page of all posts
func (s *postServiceImpl) ListPosts(ctx context.Context, actorID *uint, q *dto.ListPostsQuery) (*dto.PostListResponse, error) {
	return s.list(ctx, actorID, nil, q)
}

// ListUserPosts returns a page of the actor's own posts
func (s *postServiceImpl) ListUserPosts(ctx context.Context, actorID uint, q *dto.ListPostsQuery) (*dto.PostListResponse, error) {
	return s.list(ctx, &actorID, &actorID, q)
}

func (s *postServiceImpl) list(ctx context.Context, actorID, ownerID *uint, q *dto.ListPostsQuery) (*dto.PostListResponse, error) {
	page, err := s.postRepo.List(ctx, repository.PostFilter{
		UserID:    ownerID,
		Category:  q.Category,
		Search:    strings.TrimSpace(q.Search),
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Page:      q.Page,
		PerPage:   q.PageSize,
	})
	if err != nil {
		return nil, response.NewInternalError("Failed to retrieve posts", err)
	}

	posts := make([]*dto.PostResponse, 0, len(page.Items))
	for _, post := range page.Items {
		posts = append(posts, s.toPostResponse(post, actorID))
	}

	return &dto.PostListResponse{
		Posts: posts,
		Pagination: dto.PaginationMeta{
			CurrentPage: page.CurrentPage,
			LastPage:    page.LastPage,
			PerPage:     page.PerPage,
			Total:       page.Total,
		},
	}, nil
}

// UpdatePost changes the provided fields of a post owned by the actor.
// A new thumbnail replaces the old one, which is then removed from storage.
func (s *postServiceImpl) UpdatePost(ctx context.Context, actorID, postID uint, req *dto.UpdatePostRequest, thumbnail *dto.ThumbnailUpload) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, postLookupError(err)
	}
	if post.UserID != actorID {
		return nil, response.NewForbiddenError("You can only edit your own posts", domain.ErrNotPostAuthor.Error())
	}

	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		tags, err := encodeTags(req.Tags)
		if err != nil {
			return nil, response.NewValidationError("Invalid tags", err.Error())
		}
		post.Tags = tags
	}

	oldThumbnail := post.Thumbnail
	switch {
	case thumbnail != nil:
		key, err := s.uploadThumbnail(ctx, thumbnail)
		if err != nil {
			return nil, err
		}
		post.Thumbnail = key
	case req.RemoveThumbnail:
		post.Thumbnail = ""
	}

	post.UpdatedAt = time.Now()
	if err := s.postRepo.Update(ctx, post); err != nil {
		s.logger.Error("Failed to update post", zap.Uint("post_id", postID), zap.Error(err))
		if post.Thumbnail != oldThumbnail && post.Thumbnail != "" {
			s.deleteThumbnail(ctx, post.Thumbnail)
		}
		return nil, response.NewInternalError("Failed to update post", err)
	}
	if oldThumbnail != "" && oldThumbnail != post.Thumbnail {
		s.deleteThumbnail(ctx, oldThumbnail)
	}

	updated, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, postLookupError(err)
	}
	return s.toPostResponse(updated, &actorID), nil
}

// DeletePost removes a post owned by the actor with all of its comments
func (s *postServiceImpl) DeletePost(ctx context.Context, actorID, postID uint) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return postLookupError(err)
	}
	if post.UserID != actorID {
		return response.NewForbiddenError("You can only delete your own posts", domain.ErrNotPostAuthor.Error())
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Post not found", "")
		}
		return response.NewInternalError("Failed to delete post", err)
	}

	if post.Thumbnail != "" {
		s.deleteThumbnail(ctx, post.Thumbnail)
	}

	s.logger.Info("Post deleted", zap.Uint("post_id", postID), zap.Uint("user_id", actorID))
	return nil
}

func (s *postServiceImpl) uploadThumbnail(ctx context.Context, thumbnail *dto.ThumbnailUpload) (string, error) {
	if s.s3Client == nil {
		return "", response.NewAppError(response.ErrCodeUnprocessable, "Thumbnail uploads are not configured", "")
	}
	if !allowedThumbnailTypes[thumbnail.ContentType] {
		return "", response.NewValidationError("Thumbnail must be a JPEG, PNG, GIF or WebP image", thumbnail.ContentType)
	}
	if thumbnail.Size > maxThumbnailSize || int64(len(thumbnail.Data)) > maxThumbnailSize {
		return "", response.NewValidationError("Thumbnail must be at most 5MB", "")
	}

	key := s.s3Client.GenerateFileKey(thumbnail.Filename, time.Now())
	if err := s.s3Client.UploadFile(ctx, key, bytes.NewReader(thumbnail.Data), thumbnail.ContentType); err != nil {
		s.logger.Error("Failed to upload thumbnail", zap.String("key", key), zap.Error(err))
		return "", response.NewInternalError("Failed to upload thumbnail", err)
	}
	return key, nil
}

// deleteThumbnail is best effort; an orphaned object is only logged
func (s *postServiceImpl) deleteThumbnail(ctx context.Context, key string) {
	if s.s3Client == nil {
		return
	}
	if err := s.s3Client.DeleteFile(ctx, key); err != nil {
		s.logger.Warn("Failed to delete thumbnail", zap.String("key", key), zap.Error(err))
	}
}

func (s *postServiceImpl) toPostResponse(post *domain.Post, actorID *uint) *dto.PostResponse {
	resp := &dto.PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Content:     post.Content,
		ContentHTML: renderMarkdown(post.Content),
		Description: post.Description,
		Category:    post.Category,
		Tags:        decodeTags(post.Tags),
		CanEdit:     actorID != nil && *actorID == post.UserID,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
	if post.Thumbnail != "" && s.s3Client != nil {
		resp.ThumbnailURL = s.s3Client.GetFileURL(post.Thumbnail)
	}
	if post.User != nil {
		resp.Author = toUserSummary(post.User)
	}
	return resp
}

// encodeTags trims, drops empties and de-duplicates tags in their given order
func encodeTags(tags []string) (datatypes.JSON, error) {
	seen := make(map[string]bool, len(tags))
	clean := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		clean = append(clean, tag)
	}

	raw, err := json.Marshal(clean)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func decodeTags(raw datatypes.JSON) []string {
	tags := []string{}
	if len(raw) == 0 {
		return tags
	}
	if err := json.Unmarshal(raw, &tags); err != nil {
		return []string{}
	}
	return tags
}
