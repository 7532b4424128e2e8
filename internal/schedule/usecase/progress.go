package usecase

import (
	"context"
	"strings"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/schedule"
)

// Progress resolves the active task from the clock. A stale pointer is
// written back before commentary is requested.
func (uc *implUseCase) Progress(ctx context.Context, userID string) (schedule.ProgressOutput, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return schedule.ProgressOutput{}, schedule.ErrInvalidPayload
	}

	s, p, err := uc.resolve(ctx, userID)
	if err != nil {
		return schedule.ProgressOutput{}, err
	}

	active := s.Tasks[p.ActiveIndex]
	commentary := uc.assistant.Commentary(ctx, commentaryInput(s, p.ActiveIndex, uc.now()))

	return schedule.ProgressOutput{
		CurrentTask: schedule.CurrentTask{
			Task:               active,
			TimeRemaining:      p.TimeRemaining,
			BreakTimeRemaining: p.BreakRemaining,
		},
		Completed:  s.CompletedCount(),
		Total:      len(s.Tasks),
		Commentary: commentary,
		Schedule:   s,
	}, nil
}

func (uc *implUseCase) resolve(ctx context.Context, userID string) (model.Schedule, planner.Progress, error) {
	unlock := uc.locks.Lock(userID)
	defer unlock()

	state, err := uc.repo.GetState(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Progress.GetState: %v", err)
		return model.Schedule{}, planner.Progress{}, err
	}
	if state.Schedule == nil || len(state.Schedule.Tasks) == 0 {
		return model.Schedule{}, planner.Progress{}, schedule.ErrNoActiveSchedule
	}

	s := state.Schedule.Clone()
	p := planner.ResolveProgress(s, uc.now())
	if !p.Changed {
		return s, p, nil
	}

	s.CurrentTaskIndex = p.ActiveIndex
	state.Schedule = &s
	state.ConversationHistory = historyOf(state)
	if err := uc.repo.SaveState(ctx, state); err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Progress.SaveState: %v", err)
		return model.Schedule{}, planner.Progress{}, err
	}
	uc.l.Debugf(ctx, "schedule.usecase.Progress: user=%s index moved to %d", userID, p.ActiveIndex)
	return s, p, nil
}
