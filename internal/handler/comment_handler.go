package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-api/internal/dto"
	"blog-api/internal/response"
	"blog-api/internal/service"
	"blog-api/internal/util"
)

type CommentHandler struct {
	commentService service.CommentService
	logger         *zap.Logger
}

func NewCommentHandler(commentService service.CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// ListComments godoc
// @Summary      게시글 댓글 목록 조회
// @Description  게시글의 최상위 댓글을 페이지 번호(offset) 또는 load_more=true 일 때 커서 방식으로 조회합니다
// @Description  per_page 는 offset 모드에서 최대 50, 커서 모드에서 최대 30 으로 제한됩니다
// @Tags         comments
// @Produce      json
// @Param        postId path int true "Post ID"
// @Param        page query int false "페이지 번호" default(1)
// @Param        per_page query int false "페이지 크기" default(15)
// @Param        sort_by query string false "정렬 기준" Enums(created_at, likes_count, replies_count)
// @Param        sort_order query string false "정렬 방향" Enums(asc, desc)
// @Param        load_more query bool false "커서 모드"
// @Param        last_comment_id query int false "마지막으로 받은 댓글 ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentListResponse} "댓글 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /posts/{postId}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	var q dto.ListCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	result, err := h.commentService.ListComments(c.Request.Context(), util.OptionalUserID(c), postID, &q)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// LoadMore godoc
// @Summary      댓글 더 보기
// @Description  last_comment_id 다음의 댓글을 커서 방식으로 조회합니다. 커서가 유효하지 않으면 첫 페이지를 반환합니다
// @Tags         comments
// @Produce      json
// @Param        postId path int true "Post ID"
// @Param        limit query int false "조회 개수 (최대 30)" default(15)
// @Param        last_comment_id query int false "마지막으로 받은 댓글 ID"
// @Param        sort_by query string false "정렬 기준" Enums(created_at, likes_count, replies_count)
// @Param        sort_order query string false "정렬 방향" Enums(asc, desc)
// @Param        total_loaded query int false "지금까지 받은 댓글 수"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentPageResponse} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Router       /posts/{postId}/comments/load-more [get]
func (h *CommentHandler) LoadMore(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	var q dto.LoadMoreQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	result, err := h.commentService.LoadMore(c.Request.Context(), util.OptionalUserID(c), postID, &q)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GetStats godoc
// @Summary      댓글 통계
// @Tags         comments
// @Produce      json
// @Param        postId path int true "Post ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentStatsResponse} "통계 조회 성공"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Router       /posts/{postId}/comments/stats [get]
func (h *CommentHandler) GetStats(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	stats, err := h.commentService.GetStats(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}

// CreateComment godoc
// @Summary      댓글 작성
// @Description  게시글에 댓글 또는 답글(parentId)을 작성합니다. HTML 태그는 제거됩니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        postId path int true "Post ID"
// @Param        request body dto.CreateCommentRequest true "댓글 작성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse} "댓글 작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없음"
// @Failure      422 {object} response.ErrorResponse "부모 댓글이 유효하지 않음"
// @Failure      429 {object} response.ErrorResponse "요청 한도 초과"
// @Router       /posts/{postId}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := parseIDParam(c, "postId", "post")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), auth.UserID, postID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, comment)
}

// GetComment godoc
// @Summary      댓글 단건 조회
// @Description  댓글과 답글 목록(오래된 순)을 함께 조회합니다
// @Tags         comments
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{commentId} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), util.OptionalUserID(c), commentID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// ListReplies godoc
// @Summary      답글 목록 조회
// @Tags         comments
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Param        page query int false "페이지 번호"
// @Param        per_page query int false "페이지 크기"
// @Param        load_more query bool false "커서 모드"
// @Param        last_comment_id query int false "마지막으로 받은 답글 ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentPageResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{commentId}/replies [get]
func (h *CommentHandler) ListReplies(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	result, err := h.commentService.ListReplies(c.Request.Context(), util.OptionalUserID(c), commentID, &q)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateComment godoc
// @Summary      댓글 수정
// @Description  작성자만 작성 후 15분 이내에 수정할 수 있습니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Param        request body dto.UpdateCommentRequest true "댓글 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음 또는 수정 가능 시간 초과"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{commentId} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), auth.UserID, commentID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      댓글 삭제
// @Description  작성자만 삭제할 수 있으며 복원 가능한 소프트 삭제입니다
// @Tags         comments
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse "삭제 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), auth.UserID, commentID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// RestoreComment godoc
// @Summary      삭제한 댓글 복원
// @Tags         comments
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentResponse} "복원 성공"
// @Failure      400 {object} response.ErrorResponse "삭제되지 않은 댓글"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{commentId}/restore [post]
func (h *CommentHandler) RestoreComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	comment, err := h.commentService.RestoreComment(c.Request.Context(), auth.UserID, commentID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, comment)
}

// ToggleLike godoc
// @Summary      좋아요 토글
// @Description  좋아요를 추가하거나 취소합니다. 싫어요가 있으면 함께 취소됩니다
// @Tags         comments
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ReactionResponse} "처리 성공"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{commentId}/like [post]
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, h.commentService.ToggleLike)
}

// ToggleDislike godoc
// @Summary      싫어요 토글
// @Description  싫어요를 추가하거나 취소합니다. 좋아요가 있으면 함께 취소됩니다
// @Tags         comments
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ReactionResponse} "처리 성공"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Router       /comments/{commentId}/dislike [post]
func (h *CommentHandler) ToggleDislike(c *gin.Context) {
	h.toggle(c, h.commentService.ToggleDislike)
}

type toggleFunc func(ctx context.Context, actorID, commentID uint) (*dto.ReactionResponse, error)

func (h *CommentHandler) toggle(c *gin.Context, fn toggleFunc) {
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	result, err := fn(c.Request.Context(), auth.UserID, commentID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// ReportComment godoc
// @Summary      댓글 신고
// @Description  사용자당 한 번만 신고할 수 있습니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Param        request body dto.ReportCommentRequest true "신고 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.ReportResponse} "신고 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 신고한 댓글"
// @Router       /comments/{commentId}/report [post]
func (h *CommentHandler) ReportComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	var req dto.ReportCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	report, err := h.commentService.ReportComment(c.Request.Context(), auth.UserID, commentID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, report)
}

// ListUserComments godoc
// @Summary      내 댓글 목록
// @Tags         comments
// @Produce      json
// @Param        page query int false "페이지 번호"
// @Param        per_page query int false "페이지 크기"
// @Param        load_more query bool false "커서 모드"
// @Param        last_comment_id query int false "마지막으로 받은 댓글 ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentPageResponse} "조회 성공"
// @Router       /user/comments [get]
func (h *CommentHandler) ListUserComments(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	result, err := h.commentService.ListUserComments(c.Request.Context(), auth.UserID, &q)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// SearchComments godoc
// @Summary      댓글 검색
// @Description  내용에 검색어(3~100자)가 포함된 댓글을 최신순으로 조회합니다
// @Tags         comments
// @Produce      json
// @Param        q query string true "검색어"
// @Param        page query int false "페이지 번호"
// @Param        per_page query int false "페이지 크기"
// @Param        load_more query bool false "커서 모드"
// @Param        last_comment_id query int false "마지막으로 받은 댓글 ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentPageResponse} "검색 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 검색어"
// @Router       /comments/search [get]
func (h *CommentHandler) SearchComments(c *gin.Context) {
	var q dto.SearchCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Search query must be between 3 and 100 characters")
		return
	}

	result, err := h.commentService.SearchComments(c.Request.Context(), util.OptionalUserID(c), &q)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
