package platform

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizzyhq/quizzy-core/internal/controller"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/quizzyhq/quizzy-core/internal/middleware"
	"github.com/quizzyhq/quizzy-core/internal/service"
)

type AnswerController struct {
	answerService service.AnswerService
}

func NewAnswerController(answerService service.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

func (c *AnswerController) pathIDs(ctx *gin.Context) (assessmentID, questionID uint, ok bool) {
	assessmentID, ok = controller.ParseID(ctx, "assessment_id")
	if !ok {
		return 0, 0, false
	}
	questionID, ok = controller.ParseID(ctx, "question_id")
	if !ok {
		return 0, 0, false
	}
	return assessmentID, questionID, true
}

// AddAnswer godoc
// @Summary (Platform) Add an option to a question
// @Description Appended at the next free position. A single-answer question accepts at most one correct option.
// @Tags Platform - Answers
// @Accept json
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param question_id path int true "Question ID"
// @Param request body dto.CreateAnswerRequest true "Option details"
// @Success 201 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Validation or plan limit rejection"
// @Failure 404 {object} dto.ErrorResponse "Assessment or question not found"
// @Router /platform/assessments/{assessment_id}/questions/{question_id}/answers [post]
func (c *AnswerController) AddAnswer(ctx *gin.Context) {
	assessmentID, questionID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}
	var req dto.CreateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.answerService.AddAnswer(middleware.PlatformID(ctx), assessmentID, questionID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllAnswers godoc
// @Summary (Platform) List a question's options in display order
// @Tags Platform - Answers
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param question_id path int true "Question ID"
// @Success 200 {array} dto.AnswerResponse
// @Failure 404 {object} dto.ErrorResponse "Assessment or question not found"
// @Router /platform/assessments/{assessment_id}/questions/{question_id}/answers [get]
func (c *AnswerController) GetAllAnswers(ctx *gin.Context) {
	assessmentID, questionID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}
	resp, err := c.answerService.GetAllAnswers(middleware.PlatformID(ctx), assessmentID, questionID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateAnswer godoc
// @Summary (Platform) Update an option's text
// @Tags Platform - Answers
// @Accept json
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param question_id path int true "Question ID"
// @Param answer_id path int true "Answer ID"
// @Param request body dto.UpdateAnswerRequest true "New option text"
// @Success 200 {object} dto.AnswerResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /platform/assessments/{assessment_id}/questions/{question_id}/answers/{answer_id} [put]
func (c *AnswerController) UpdateAnswer(ctx *gin.Context) {
	assessmentID, questionID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}
	answerID, ok := controller.ParseID(ctx, "answer_id")
	if !ok {
		return
	}
	var req dto.UpdateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.answerService.UpdateAnswer(middleware.PlatformID(ctx), assessmentID, questionID, answerID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateCriteria godoc
// @Summary (Platform) Mark an option correct or incorrect
// @Description Single-answer questions keep at most one correct option; the current one must be unmarked first.
// @Tags Platform - Answers
// @Accept json
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param question_id path int true "Question ID"
// @Param answer_id path int true "Answer ID"
// @Param request body dto.UpdateCriteriaRequest true "Correct flag"
// @Success 200 {object} dto.AnswerResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /platform/assessments/{assessment_id}/questions/{question_id}/answers/{answer_id}/criteria [put]
func (c *AnswerController) UpdateCriteria(ctx *gin.Context) {
	assessmentID, questionID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}
	answerID, ok := controller.ParseID(ctx, "answer_id")
	if !ok {
		return
	}
	var req dto.UpdateCriteriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.answerService.UpdateCriteria(middleware.PlatformID(ctx), assessmentID, questionID, answerID, *req.Correct)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ReorderAnswer godoc
// @Summary (Platform) Move an option to a new position
// @Tags Platform - Answers
// @Accept json
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param question_id path int true "Question ID"
// @Param answer_id path int true "Answer ID"
// @Param request body dto.ReorderRequest true "Target position (1-based)"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Position out of range"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /platform/assessments/{assessment_id}/questions/{question_id}/answers/{answer_id}/reorder [put]
func (c *AnswerController) ReorderAnswer(ctx *gin.Context) {
	assessmentID, questionID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}
	answerID, ok := controller.ParseID(ctx, "answer_id")
	if !ok {
		return
	}
	var req dto.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.answerService.ReorderAnswer(middleware.PlatformID(ctx), assessmentID, questionID, answerID, req.Order)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RemoveAnswer godoc
// @Summary (Platform) Remove an option
// @Tags Platform - Answers
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param question_id path int true "Question ID"
// @Param answer_id path int true "Answer ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /platform/assessments/{assessment_id}/questions/{question_id}/answers/{answer_id} [delete]
func (c *AnswerController) RemoveAnswer(ctx *gin.Context) {
	assessmentID, questionID, ok := c.pathIDs(ctx)
	if !ok {
		return
	}
	answerID, ok := controller.ParseID(ctx, "answer_id")
	if !ok {
		return
	}
	if err := c.answerService.RemoveAnswer(middleware.PlatformID(ctx), assessmentID, questionID, answerID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Answer deleted"})
}
