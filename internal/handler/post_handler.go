package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-api/internal/dto"
	"blog-api/internal/response"
	"blog-api/internal/service"
	"blog-api/internal/util"
)

// thumbnailReadLimit caps how much of an uploaded file is buffered; the
// service rejects anything over its own size limit
const thumbnailReadLimit = 5<<20 + 1

type PostHandler struct {
	postService service.PostService
	logger      *zap.Logger
}

func NewPostHandler(postService service.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// CreatePost godoc
// @Summary      게시글 작성
// @Description  JSON 또는 multipart/form-data 로 게시글을 작성합니다. multipart 요청에는 thumbnail 이미지(최대 5MB)를 첨부할 수 있습니다
// @Tags         posts
// @Accept       json,mpfd
// @Produce      json
// @Param        request body dto.CreatePostRequest true "게시글 작성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.PostResponse} "작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	thumbnail, ok := readThumbnail(c)
	if !ok {
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), auth.UserID, &req, thumbnail)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, post)
}

// GetPost godoc
// @Summary      게시글 조회
// @Tags         posts
// @Produce      json
// @Param        postId path int true "Post ID"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Router       /posts/{postId} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), util.OptionalUserID(c), postID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// ListPosts godoc
// @Summary      게시글 목록
// @Tags         posts
// @Produce      json
// @Param        page query int false "페이지 번호"
// @Param        page_size query int false "페이지 크기 (최대 50)"
// @Param        search query string false "제목/내용 검색어"
// @Param        category query string false "카테고리"
// @Param        sort_by query string false "정렬 기준" Enums(created_at, updated_at, title)
// @Param        sort_order query string false "정렬 방향" Enums(asc, desc)
// @Success      200 {object} response.SuccessResponse{data=dto.PostListResponse} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	var q dto.ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	result, err := h.postService.ListPosts(c.Request.Context(), util.OptionalUserID(c), &q)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// ListUserPosts godoc
// @Summary      내 게시글 목록
// @Tags         posts
// @Produce      json
// @Param        page query int false "페이지 번호"
// @Param        page_size query int false "페이지 크기"
// @Success      200 {object} response.SuccessResponse{data=dto.PostListResponse} "조회 성공"
// @Router       /user/posts [get]
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	var q dto.ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	result, err := h.postService.ListUserPosts(c.Request.Context(), auth.UserID, &q)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdatePost godoc
// @Summary      게시글 수정
// @Description  작성자만 수정할 수 있습니다. 전달한 필드만 변경됩니다
// @Tags         posts
// @Accept       json,mpfd
// @Produce      json
// @Param        postId path int true "Post ID"
// @Param        request body dto.UpdatePostRequest true "게시글 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.PostResponse} "수정 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Router       /posts/{postId} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	thumbnail, ok := readThumbnail(c)
	if !ok {
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), auth.UserID, postID, &req, thumbnail)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, post)
}

// DeletePost godoc
// @Summary      게시글 삭제
// @Description  게시글과 모든 댓글을 영구 삭제합니다
// @Tags         posts
// @Produce      json
// @Param        postId path int true "Post ID"
// @Success      200 {object} response.SuccessResponse "삭제 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Router       /posts/{postId} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), auth.UserID, postID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// readThumbnail returns the optional "thumbnail" file of a multipart request
func readThumbnail(c *gin.Context) (*dto.ThumbnailUpload, bool) {
	if !strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		return nil, true
	}

	header, err := c.FormFile("thumbnail")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, true
	}
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid thumbnail")
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid thumbnail")
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, thumbnailReadLimit))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid thumbnail")
		return nil, false
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return &dto.ThumbnailUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Data:        data,
	}, true
}
