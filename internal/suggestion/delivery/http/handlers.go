package http

import (
	"github.com/gin-gonic/gin"

	"event-task-suggester/pkg/response"
)

// Generate godoc
// @Summary     Generate task suggestions for an event
// @Description Classifies the event, analyzes its complexity and returns preparation/follow-up task suggestions with an analysis summary.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Event data"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/suggestions [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// Accept godoc
// @Summary     Accept suggestions as tasks
// @Description Creates durable tasks from the selected suggestions and records accepted/rejected feedback for the event's category.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body acceptReq true "Event with selected and rejected suggestions"
// @Success     200 {object} acceptResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/suggestions/accept [POST]
func (h *handler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAcceptReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Accept(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Accept: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAcceptResp(output))
}

// ListTasks godoc
// @Summary     List created tasks
// @Description Returns all tasks created from accepted suggestions, ordered by scheduled time.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listTasksResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// Upcoming godoc
// @Summary     Suggest tasks for upcoming calendar events
// @Description Fetches events from the configured calendar for the next N days and generates suggestions for each.
// @Tags        Suggestions
// @Produce     json
// @Param       days query int false "Look-ahead window in days (default: 7)"
// @Success     200 {object} upcomingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/calendar/suggestions [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpcomingReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SuggestUpcoming(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestUpcoming: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpcomingResp(output))
}

// Feedback godoc
// @Summary     Suggestion feedback statistics
// @Description Returns accumulated acceptance/rejection counts per event category.
// @Tags        Suggestions
// @Produce     json
// @Success     200 {object} feedbackResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/suggestions/feedback [GET]
func (h *handler) Feedback(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := h.fb.Snapshot(ctx)
	if err != nil {
		h.l.Errorf(ctx, "fb.Snapshot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFeedbackResp(snap))
}
