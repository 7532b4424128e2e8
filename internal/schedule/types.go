package schedule

import "daily-planner/internal/model"

// NoActiveScheduleMessage is shown when a user has nothing to track.
const NoActiveScheduleMessage = "No active schedule. Please initialize your tasks first."

type InitializeInput struct {
	UserID string
	Tasks  []string
}

type InitializeOutput struct {
	Schedule   model.Schedule
	Commentary string
}

type StateOutput struct {
	State model.UserState
	Found bool
}

// CurrentTask is the active task with its live counters.
type CurrentTask struct {
	Task               model.Task
	TimeRemaining      int
	BreakTimeRemaining *int
}

type ProgressOutput struct {
	CurrentTask CurrentTask
	Completed   int
	Total       int
	Commentary  string
	Schedule    model.Schedule
}

type UpdateTaskInput struct {
	UserID    string
	TaskID    string
	Completed bool
}

type UpdateTaskOutput struct {
	Schedule   model.Schedule
	Commentary string
}

type ChatInput struct {
	UserID  string
	Message string
}

type ChatOutput struct {
	Response string
}
