package usecase

import (
	"context"
	"errors"
	"strings"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/schedule"
)

// UpdateTask sets a task's completion flag and returns commentary on the
// task the pointer lands on.
func (uc *implUseCase) UpdateTask(ctx context.Context, input schedule.UpdateTaskInput) (schedule.UpdateTaskOutput, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" || strings.TrimSpace(input.TaskID) == "" {
		return schedule.UpdateTaskOutput{}, schedule.ErrInvalidPayload
	}

	s, err := uc.updateTask(ctx, userID, input.TaskID, input.Completed)
	if err != nil {
		return schedule.UpdateTaskOutput{}, err
	}
	uc.l.Infof(ctx, "schedule.usecase.UpdateTask: user=%s task=%s completed=%t status=%s", userID, input.TaskID, input.Completed, s.Status)

	commentary := uc.assistant.Commentary(ctx, commentaryInput(s, s.CurrentTaskIndex, uc.now()))
	return schedule.UpdateTaskOutput{Schedule: s, Commentary: commentary}, nil
}

func (uc *implUseCase) updateTask(ctx context.Context, userID, taskID string, completed bool) (model.Schedule, error) {
	unlock := uc.locks.Lock(userID)
	defer unlock()

	state, err := uc.repo.GetState(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.UpdateTask.GetState: %v", err)
		return model.Schedule{}, err
	}
	if state.Schedule == nil || len(state.Schedule.Tasks) == 0 {
		return model.Schedule{}, schedule.ErrScheduleNotFound
	}

	s := state.Schedule.Clone()
	if err := planner.CompleteTask(&s, taskID, completed); err != nil {
		if errors.Is(err, planner.ErrTaskNotFound) {
			return model.Schedule{}, schedule.ErrTaskNotFound
		}
		return model.Schedule{}, err
	}

	state.Schedule = &s
	state.ConversationHistory = historyOf(state)
	if err := uc.repo.SaveState(ctx, state); err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.UpdateTask.SaveState: %v", err)
		return model.Schedule{}, err
	}
	return s, nil
}
