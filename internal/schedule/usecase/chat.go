package usecase

import (
	"context"
	"strings"

	"daily-planner/internal/model"
	"daily-planner/internal/schedule"
)

// Chat answers a message using the recent history. Storing the exchange is
// best-effort and never fails the call.
func (uc *implUseCase) Chat(ctx context.Context, input schedule.ChatInput) (schedule.ChatOutput, error) {
	userID := strings.TrimSpace(input.UserID)
	message := strings.TrimSpace(input.Message)
	if userID == "" || message == "" {
		return schedule.ChatOutput{}, schedule.ErrInvalidPayload
	}

	state, err := uc.repo.GetState(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "schedule.usecase.Chat.GetState: continuing without history: %v", err)
	}

	asked := uc.now()
	reply := uc.assistant.Reply(ctx, message, historyOf(state))

	uc.appendTurns(ctx, userID,
		model.ConversationTurn{Role: model.RoleUser, Content: message, Timestamp: model.At(asked)},
		model.ConversationTurn{Role: model.RoleAssistant, Content: reply, Timestamp: model.At(uc.now())},
	)

	return schedule.ChatOutput{Response: reply}, nil
}

func (uc *implUseCase) appendTurns(ctx context.Context, userID string, turns ...model.ConversationTurn) {
	unlock := uc.locks.Lock(userID)
	defer unlock()

	state, err := uc.repo.GetState(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "schedule.usecase.Chat.appendTurns.GetState: %v", err)
		return
	}
	if !state.Exists() {
		state = model.UserState{UserID: userID}
	}

	state.ConversationHistory = append(historyOf(state), turns...)
	if err := uc.repo.SaveState(ctx, state); err != nil {
		uc.l.Warnf(ctx, "schedule.usecase.Chat.appendTurns.SaveState: %v", err)
	}
}
