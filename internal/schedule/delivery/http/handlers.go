package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/schedule"
	"daily-planner/pkg/response"
)

// Initialize godoc
// @Summary     Initialize a schedule
// @Description Drafts durations and order for the given task names, inserts breaks and replaces the user's schedule. Starts at the next whole minute.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body initializeReq true "User and task names"
// @Success     200  {object} initializeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/initialize [POST]
func (h *handler) Initialize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInitializeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Initialize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Initialize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInitializeResp(output))
}

// State godoc
// @Summary     Get stored state
// @Description Returns the user's persisted record, or null data when there is none.
// @Tags        Schedule
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {object} model.UserState
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/state/{userId} [GET]
func (h *handler) State(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.State(ctx, c.Param("userId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.State: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Progress godoc
// @Summary     Get live progress
// @Description Resolves the active task from the current time and returns it with remaining minutes, next break and commentary.
// @Tags        Schedule
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {object} progressResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/progress/{userId} [GET]
func (h *handler) Progress(c *gin.Context) {
	data, err := h.progress(c, c.Param("userId"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, data)
}

// UpdateTask godoc
// @Summary     Update task completion
// @Description Marks a task completed or not completed. Completing moves the pointer to the next task.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body updateTaskReq true "Task update"
// @Success     200  {object} updateTaskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Schedule or task not found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/task/update [POST]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateTaskResp(output))
}

// Chat godoc
// @Summary     Chat with the assistant
// @Description Answers a free-form message using the recent conversation. Always replies, even when the model is unavailable.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// progress returns the progress payload, or the no-schedule message.
func (h *handler) progress(c *gin.Context, userID string) (any, error) {
	ctx := c.Request.Context()

	output, err := h.uc.Progress(ctx, userID)
	if errors.Is(err, schedule.ErrNoActiveSchedule) {
		return h.newNoScheduleResp(), nil
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.Progress: %v", err)
		return nil, err
	}
	return h.newProgressResp(output), nil
}
