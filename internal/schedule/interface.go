package schedule

import "context"

// UseCase defines the business logic interface for the schedule domain.
type UseCase interface {
	// Initialize drafts a schedule for the given task names and replaces the user's record.
	Initialize(ctx context.Context, input InitializeInput) (InitializeOutput, error)

	// State returns the persisted record as stored.
	State(ctx context.Context, userID string) (StateOutput, error)

	// Progress resolves the active task from the clock, correcting the stored pointer if needed.
	Progress(ctx context.Context, userID string) (ProgressOutput, error)

	// UpdateTask sets a task's completion flag.
	UpdateTask(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)

	// Chat answers a message and appends both turns to the history.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
}
