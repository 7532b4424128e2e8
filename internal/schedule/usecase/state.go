package usecase

import (
	"context"
	"strings"

	"daily-planner/internal/schedule"
)

func (uc *implUseCase) State(ctx context.Context, userID string) (schedule.StateOutput, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return schedule.StateOutput{}, schedule.ErrInvalidPayload
	}

	state, err := uc.repo.GetState(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.State.GetState: %v", err)
		return schedule.StateOutput{}, err
	}
	if !state.Exists() {
		return schedule.StateOutput{}, nil
	}

	state.ConversationHistory = historyOf(state)
	return schedule.StateOutput{State: state, Found: true}, nil
}
