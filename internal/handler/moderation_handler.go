package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-api/internal/dto"
	"blog-api/internal/response"
	"blog-api/internal/service"
	"blog-api/internal/util"
)

type ModerationHandler struct {
	moderationService service.ModerationService
	logger            *zap.Logger
}

func NewModerationHandler(moderationService service.ModerationService, logger *zap.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationService: moderationService,
		logger:            logger,
	}
}

// ListReportedComments godoc
// @Summary      신고 대기 댓글 목록
// @Description  처리되지 않은 신고가 있는 댓글을 조회합니다 (moderator 전용)
// @Tags         moderation
// @Produce      json
// @Param        page query int false "페이지 번호"
// @Param        per_page query int false "페이지 크기"
// @Success      200 {object} response.SuccessResponse{data=dto.CommentPageResponse} "조회 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Security     BearerAuth
// @Router       /moderation/comments [get]
func (h *ModerationHandler) ListReportedComments(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid query parameters")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	result, err := h.moderationService.ListReportedComments(c.Request.Context(), auth.UserID, &q)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// UpdateReportStatus godoc
// @Summary      신고 상태 변경
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        reportId path int true "Report ID"
// @Param        request body dto.UpdateReportStatusRequest true "상태 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.ReportResponse} "변경 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "신고를 찾을 수 없음"
// @Security     BearerAuth
// @Router       /moderation/reports/{reportId} [put]
func (h *ModerationHandler) UpdateReportStatus(c *gin.Context) {
	reportID, ok := parseIDParam(c, "reportId", "report")
	if !ok {
		return
	}

	var req dto.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	report, err := h.moderationService.UpdateReportStatus(c.Request.Context(), auth.UserID, reportID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, report)
}

// ForceDeleteComment godoc
// @Summary      댓글 영구 삭제
// @Description  댓글과 모든 답글, 반응, 신고를 영구 삭제합니다 (moderator 전용)
// @Tags         moderation
// @Produce      json
// @Param        commentId path int true "Comment ID"
// @Success      200 {object} response.SuccessResponse "삭제 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Security     BearerAuth
// @Router       /moderation/comments/{commentId} [delete]
func (h *ModerationHandler) ForceDeleteComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId", "comment")
	if !ok {
		return
	}

	auth, ok := util.ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.moderationService.ForceDeleteComment(c.Request.Context(), auth.UserID, commentID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}
