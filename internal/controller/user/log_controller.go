package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizzyhq/quizzy-core/internal/controller"
	"github.com/quizzyhq/quizzy-core/internal/middleware"
	"github.com/quizzyhq/quizzy-core/internal/service"
)

type LogController struct {
	logService service.LogService
}

func NewLogController(logService service.LogService) *LogController {
	return &LogController{logService: logService}
}

// ViewAssessment godoc
// @Summary (Candidate) View an assessment
// @Description Returns the assessment with questions and options in display order. Correct flags are never included.
// @Tags Candidate - Sessions
// @Produce json
// @Param identifier path string true "Assessment identifier"
// @Success 200 {object} dto.CandidateAssessmentResponse
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{identifier} [get]
func (c *LogController) ViewAssessment(ctx *gin.Context) {
	resp, err := c.logService.ViewAssessment(ctx.Param("identifier"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StartAssessment godoc
// @Summary (Candidate) Start an assessment session
// @Description Opens a session when every admission gate passes: schedule window, candidate limit and retake allowance.
// @Tags Candidate - Sessions
// @Produce json
// @Param identifier path string true "Assessment identifier"
// @Success 201 {object} dto.LogResponse
// @Failure 400 {object} dto.ErrorResponse "Admission gate rejection"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{identifier}/start [post]
func (c *LogController) StartAssessment(ctx *gin.Context) {
	resp, err := c.logService.StartAssessment(middleware.UserID(ctx), ctx.Param("identifier"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// EndAssessment godoc
// @Summary (Candidate) End an open session
// @Description Closing twice is rejected; under concurrent calls exactly one succeeds.
// @Tags Candidate - Sessions
// @Produce json
// @Param reference path string true "Session reference"
// @Success 200 {object} dto.LogResponse
// @Failure 400 {object} dto.ErrorResponse "Session already completed"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{reference}/end [post]
func (c *LogController) EndAssessment(ctx *gin.Context) {
	resp, err := c.logService.EndAssessment(middleware.UserID(ctx), ctx.Param("reference"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetLog godoc
// @Summary (Candidate) Get one session
// @Tags Candidate - Sessions
// @Produce json
// @Param reference path string true "Session reference"
// @Success 200 {object} dto.LogResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{reference} [get]
func (c *LogController) GetLog(ctx *gin.Context) {
	resp, err := c.logService.GetLog(middleware.UserID(ctx), ctx.Param("reference"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAllLogs godoc
// @Summary (Candidate) List own sessions
// @Tags Candidate - Sessions
// @Produce json
// @Success 200 {array} dto.LogResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [get]
func (c *LogController) GetAllLogs(ctx *gin.Context) {
	resp, err := c.logService.GetAllLogs(middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
