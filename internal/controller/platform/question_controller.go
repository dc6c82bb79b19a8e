package platform

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizzyhq/quizzy-core/internal/controller"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/quizzyhq/quizzy-core/internal/middleware"
	"github.com/quizzyhq/quizzy-core/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// AddQuestion godoc
// @Summary (Platform) Add a question to an assessment
// @Description The question is appended at the next free position. Plan limits cap the question count.
// @Tags Platform - Questions
// @Accept json
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param request body dto.CreateQuestionRequest true "Question details"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation or plan limit rejection"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /platform/assessments/{assessment_id}/questions [post]
func (c *QuestionController) AddQuestion(ctx *gin.Context) {
	assessmentID, ok := controller.ParseID(ctx, "assessment_id")
	if !ok {
		return
	}
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.questionService.AddQuestion(middleware.PlatformID(ctx), assessmentID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllQuestions godoc
// @Summary (Platform) List questions in display order
// @Tags Platform - Questions
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /platform/assessments/{assessment_id}/questions [get]
func (c *QuestionController) GetAllQuestions(ctx *gin.Context) {
	assessmentID, ok := controller.ParseID(ctx, "assessment_id")
	if !ok {
		return
	}
	resp, err := c.questionService.GetAllQuestions(middleware.PlatformID(ctx), assessmentID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateQuestion godoc
// @Summary (Platform) Update a question's text or answer mode
// @Tags Platform - Questions
// @Accept json
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param question_id path int true "Question ID"
// @Param request body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Assessment or question not found"
// @Router /platform/assessments/{assessment_id}/questions/{question_id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	assessmentID, ok := controller.ParseID(ctx, "assessment_id")
	if !ok {
		return
	}
	questionID, ok := controller.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.questionService.UpdateQuestion(middleware.PlatformID(ctx), assessmentID, questionID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ReorderQuestion godoc
// @Summary (Platform) Move a question to a new position
// @Description Swaps positions with the current occupant of the target. A vacant target is taken directly.
// @Tags Platform - Questions
// @Accept json
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param question_id path int true "Question ID"
// @Param request body dto.ReorderRequest true "Target position (1-based)"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Position out of range"
// @Failure 404 {object} dto.ErrorResponse "Assessment or question not found"
// @Router /platform/assessments/{assessment_id}/questions/{question_id}/reorder [put]
func (c *QuestionController) ReorderQuestion(ctx *gin.Context) {
	assessmentID, ok := controller.ParseID(ctx, "assessment_id")
	if !ok {
		return
	}
	questionID, ok := controller.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.questionService.ReorderQuestion(middleware.PlatformID(ctx), assessmentID, questionID, req.Order)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RemoveQuestion godoc
// @Summary (Platform) Remove a question
// @Description Soft delete. Other questions keep their positions; the freed position stays vacant.
// @Tags Platform - Questions
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Assessment or question not found"
// @Router /platform/assessments/{assessment_id}/questions/{question_id} [delete]
func (c *QuestionController) RemoveQuestion(ctx *gin.Context) {
	assessmentID, ok := controller.ParseID(ctx, "assessment_id")
	if !ok {
		return
	}
	questionID, ok := controller.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.questionService.RemoveQuestion(middleware.PlatformID(ctx), assessmentID, questionID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted"})
}
