package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizzyhq/quizzy-core/internal/controller"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/quizzyhq/quizzy-core/internal/middleware"
	"github.com/quizzyhq/quizzy-core/internal/service"
)

type UserAnswerController struct {
	userAnswerService service.UserAnswerService
}

func NewUserAnswerController(userAnswerService service.UserAnswerService) *UserAnswerController {
	return &UserAnswerController{userAnswerService: userAnswerService}
}

// RecordAnswer godoc
// @Summary (Candidate) Record a selection on an open session
// @Description On a single-answer question a later selection replaces the earlier one. On a multiple-answer question selections accumulate; repeating an option is rejected.
// @Tags Candidate - Answers
// @Accept json
// @Produce json
// @Param reference path string true "Session reference"
// @Param request body dto.RecordAnswerRequest true "Question and selected option"
// @Success 201 {object} dto.UserAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Session closed or duplicate selection"
// @Failure 404 {object} dto.ErrorResponse "Session, question or answer not found"
// @Router /sessions/{reference}/answers [post]
func (c *UserAnswerController) RecordAnswer(ctx *gin.Context) {
	var req dto.RecordAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.userAnswerService.RecordAnswer(middleware.UserID(ctx), ctx.Param("reference"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllAnswers godoc
// @Summary (Candidate) List recorded selections for a session
// @Tags Candidate - Answers
// @Produce json
// @Param reference path string true "Session reference"
// @Success 200 {array} dto.UserAnswerResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{reference}/answers [get]
func (c *UserAnswerController) GetAllAnswers(ctx *gin.Context) {
	resp, err := c.userAnswerService.GetAllAnswers(middleware.UserID(ctx), ctx.Param("reference"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
