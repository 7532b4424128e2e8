package usecase

import (
	"context"
	"strings"
	"time"

	"daily-planner/internal/model"
	"daily-planner/internal/planner"
	"daily-planner/internal/schedule"
)

// Initialize replaces the user's schedule with a fresh plan for input.Tasks.
// The record passes through a planning state while the draft is prepared and
// the conversation history is reset.
func (uc *implUseCase) Initialize(ctx context.Context, input schedule.InitializeInput) (schedule.InitializeOutput, error) {
	userID := strings.TrimSpace(input.UserID)
	names := cleanNames(input.Tasks)
	if userID == "" || len(names) == 0 {
		return schedule.InitializeOutput{}, schedule.ErrInvalidPayload
	}

	start := planner.StartOfNextMinute(uc.now())
	uc.l.Infof(ctx, "schedule.usecase.Initialize: user=%s tasks=%d start=%s", userID, len(names), start.Format("15:04"))

	unlock := uc.locks.Lock(userID)
	err := uc.repo.SaveState(ctx, model.UserState{
		UserID: userID,
		Schedule: &model.Schedule{
			Tasks:     []model.Task{},
			Breaks:    []model.Break{},
			StartTime: model.At(start),
			Status:    model.StatusPlanning,
		},
		ConversationHistory: []model.ConversationTurn{},
	})
	unlock()
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Initialize.SavePlanning: %v", err)
		return schedule.InitializeOutput{}, err
	}

	draft := uc.assistant.DraftSchedule(ctx, names)
	uc.l.Infof(ctx, "schedule.usecase.Initialize: draft source=%s tasks=%d", draft.Source, len(draft.Tasks))

	s := planner.BuildTimeline(draftTasks(userID, start, draft), start, uc.policy)

	unlock = uc.locks.Lock(userID)
	defer unlock()

	// Keep turns chatted while the draft was being prepared.
	current, err := uc.repo.GetState(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "schedule.usecase.Initialize.GetState: %v", err)
	}
	history := historyOf(current)
	if err := uc.repo.SaveState(ctx, model.UserState{
		UserID:              userID,
		Schedule:            &s,
		ConversationHistory: history,
	}); err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Initialize.SaveSchedule: %v", err)
		uc.abandonPlanning(ctx, userID, start, history)
		return schedule.InitializeOutput{}, err
	}

	return schedule.InitializeOutput{
		Schedule:   s.Clone(),
		Commentary: draft.Commentary,
	}, nil
}

// abandonPlanning moves a record left in planning back to idle. Caller holds the user lock.
func (uc *implUseCase) abandonPlanning(ctx context.Context, userID string, start time.Time, history []model.ConversationTurn) {
	err := uc.repo.SaveState(ctx, model.UserState{
		UserID: userID,
		Schedule: &model.Schedule{
			Tasks:     []model.Task{},
			Breaks:    []model.Break{},
			StartTime: model.At(start),
			Status:    model.StatusIdle,
		},
		ConversationHistory: history,
	})
	if err != nil {
		uc.l.Warnf(ctx, "schedule.usecase.Initialize.abandonPlanning: %v", err)
	}
}
