package http

import (
	"strings"

	"daily-planner/internal/model"
	"daily-planner/internal/schedule"
	pkgErrors "daily-planner/pkg/errors"
)

// --- Request DTOs ---

type initializeReq struct {
	UserID string   `json:"userId" binding:"required,max=128"`
	Tasks  []string `json:"tasks"  binding:"required,min=1,max=50,dive,max=200"`
}

func (r initializeReq) validate() error {
	for _, t := range r.Tasks {
		if strings.TrimSpace(t) != "" {
			return nil
		}
	}
	return pkgErrors.NewHTTPError(400, "tasks must contain at least one non-empty name")
}

func (r initializeReq) toInput() schedule.InitializeInput {
	return schedule.InitializeInput{
		UserID: r.UserID,
		Tasks:  r.Tasks,
	}
}

// ---

type updateTaskReq struct {
	UserID    string `json:"userId"    binding:"required,max=128"`
	TaskID    string `json:"taskId"    binding:"required"`
	Completed *bool  `json:"completed" binding:"required"`
}

func (r updateTaskReq) validate() error { return nil }

func (r updateTaskReq) toInput() schedule.UpdateTaskInput {
	return schedule.UpdateTaskInput{
		UserID:    r.UserID,
		TaskID:    r.TaskID,
		Completed: *r.Completed,
	}
}

// ---

type chatReq struct {
	UserID  string `json:"userId"  binding:"required,max=128"`
	Message string `json:"message" binding:"required,max=2000"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return pkgErrors.NewHTTPError(400, "message must not be blank")
	}
	return nil
}

func (r chatReq) toInput() schedule.ChatInput {
	return schedule.ChatInput{
		UserID:  r.UserID,
		Message: r.Message,
	}
}

// --- Response DTOs ---

type initializeResp struct {
	Schedule   model.Schedule `json:"schedule"`
	Commentary string         `json:"commentary"`
}

func (h *handler) newInitializeResp(out schedule.InitializeOutput) initializeResp {
	return initializeResp{
		Schedule:   out.Schedule,
		Commentary: out.Commentary,
	}
}

type currentTaskResp struct {
	model.Task
	TimeRemaining      int  `json:"timeRemaining"`
	BreakTimeRemaining *int `json:"breakTimeRemaining"`
}

type progressCountResp struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type progressResp struct {
	CurrentTask currentTaskResp   `json:"currentTask"`
	Progress    progressCountResp `json:"progress"`
	Commentary  string            `json:"commentary"`
	Schedule    model.Schedule    `json:"schedule"`
}

func (h *handler) newProgressResp(out schedule.ProgressOutput) progressResp {
	return progressResp{
		CurrentTask: currentTaskResp{
			Task:               out.CurrentTask.Task,
			TimeRemaining:      out.CurrentTask.TimeRemaining,
			BreakTimeRemaining: out.CurrentTask.BreakTimeRemaining,
		},
		Progress: progressCountResp{
			Completed: out.Completed,
			Total:     out.Total,
		},
		Commentary: out.Commentary,
		Schedule:   out.Schedule,
	}
}

type messageResp struct {
	Message string `json:"message"`
}

func (h *handler) newNoScheduleResp() messageResp {
	return messageResp{Message: schedule.NoActiveScheduleMessage}
}

type updateTaskResp struct {
	Schedule   model.Schedule `json:"schedule"`
	Commentary string         `json:"commentary"`
}

func (h *handler) newUpdateTaskResp(out schedule.UpdateTaskOutput) updateTaskResp {
	return updateTaskResp{
		Schedule:   out.Schedule,
		Commentary: out.Commentary,
	}
}

type chatResp struct {
	Response string `json:"response"`
}

func (h *handler) newChatResp(out schedule.ChatOutput) chatResp {
	return chatResp{Response: out.Response}
}

// newStateResp returns nil when the user has no record, rendered as null data.
func (h *handler) newStateResp(out schedule.StateOutput) *model.UserState {
	if !out.Found {
		return nil
	}
	return &out.State
}
