package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gruenderai_backend/internal/service"
	"gruenderai_backend/internal/util"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary Start a new assessment session
// @Description Creates a session and returns the first question
// @Tags assessment
// @Accept json
// @Produce json
// @Param body body service.StartAssessmentRequest true "Optional user id and language"
// @Success 200 {object} service.StartAssessmentResponse
// @Failure 400 {object} util.ErrorResponse
// @Router /api/assessment/start [post]
func (c *AssessmentController) StartAssessment(ctx *gin.Context) {
	var req service.StartAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.Service.Start(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary Submit an answer
// @Description Records the answer and returns the next question, or null once all questions are answered
// @Tags assessment
// @Accept json
// @Produce json
// @Param body body service.SubmitAnswerRequest true "Session id, question id and answer value"
// @Success 200 {object} service.SubmitAnswerResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/assessment/answer [post]
func (c *AssessmentController) SubmitAnswer(ctx *gin.Context) {
	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.Service.SubmitAnswer(req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary Calculate assessment results
// @Description Scores the answered questions and returns the readiness evaluation
// @Tags assessment
// @Accept json
// @Produce json
// @Param body body service.ResultsRequest true "Session id"
// @Success 200 {object} service.AssessmentResults
// @Failure 404 {object} util.ErrorResponse
// @Router /api/assessment/results [post]
func (c *AssessmentController) GetResults(ctx *gin.Context) {
	var req service.ResultsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.Service.Results(req.SessionID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary Get session information
// @Description Returns progress and answer count for a session
// @Tags assessment
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} service.SessionInfo
// @Failure 404 {object} util.ErrorResponse
// @Router /api/assessment/session/{sessionId} [get]
func (c *AssessmentController) GetSessionInfo(ctx *gin.Context) {
	resp, err := c.Service.SessionInfo(ctx.Param("sessionId"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

func (c *AssessmentController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidAnswer):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
