package platform

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizzyhq/quizzy-core/internal/controller"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/quizzyhq/quizzy-core/internal/middleware"
	"github.com/quizzyhq/quizzy-core/internal/service"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// CreateAssessment godoc
// @Summary (Platform) Create an assessment
// @Description Create an assessment under the calling platform. Plan limits apply to count, duration, retakes and candidate limit.
// @Tags Platform - Assessments
// @Accept json
// @Produce json
// @Param request body dto.CreateAssessmentRequest true "Assessment details"
// @Success 201 {object} dto.AssessmentResponse
// @Failure 400 {object} dto.ErrorResponse "Validation or plan limit rejection"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /platform/assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.assessmentService.CreateAssessment(middleware.PlatformID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllAssessments godoc
// @Summary (Platform) List assessments
// @Tags Platform - Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /platform/assessments [get]
func (c *AssessmentController) GetAllAssessments(ctx *gin.Context) {
	resp, err := c.assessmentService.GetAllAssessments(middleware.PlatformID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAssessment godoc
// @Summary (Platform) Get one assessment
// @Tags Platform - Assessments
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {object} dto.AssessmentResponse
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /platform/assessments/{assessment_id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "assessment_id")
	if !ok {
		return
	}
	resp, err := c.assessmentService.GetAssessment(middleware.PlatformID(ctx), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateAssessment godoc
// @Summary (Platform) Update an assessment
// @Tags Platform - Assessments
// @Accept json
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Param request body dto.UpdateAssessmentRequest true "Fields to update"
// @Success 200 {object} dto.AssessmentResponse
// @Failure 400 {object} dto.ErrorResponse "Validation or plan limit rejection"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /platform/assessments/{assessment_id} [put]
func (c *AssessmentController) UpdateAssessment(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "assessment_id")
	if !ok {
		return
	}
	var req dto.UpdateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.assessmentService.UpdateAssessment(middleware.PlatformID(ctx), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteAssessment godoc
// @Summary (Platform) Delete an assessment
// @Description Soft delete. Questions, answers and candidate history are kept.
// @Tags Platform - Assessments
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /platform/assessments/{assessment_id} [delete]
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "assessment_id")
	if !ok {
		return
	}
	if err := c.assessmentService.DeleteAssessment(middleware.PlatformID(ctx), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Assessment deleted"})
}

// PurgeAssessment godoc
// @Summary (Platform) Permanently remove an assessment
// @Description Hard delete. Cascades to questions, answers, sessions and recorded answers. Irreversible.
// @Tags Platform - Assessments
// @Produce json
// @Param assessment_id path int true "Assessment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /platform/assessments/{assessment_id}/purge [delete]
func (c *AssessmentController) PurgeAssessment(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "assessment_id")
	if !ok {
		return
	}
	if err := c.assessmentService.PurgeAssessment(middleware.PlatformID(ctx), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Assessment permanently removed"})
}
