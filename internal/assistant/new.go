package assistant

import (
	"context"
	"time"

	"daily-planner/internal/model"
	"daily-planner/pkg/llmprovider"
	"daily-planner/pkg/log"
)

// Assistant is the language model collaborator. Every method degrades to a
// deterministic answer when the model is unavailable or talks nonsense.
type Assistant interface {
	DraftSchedule(ctx context.Context, names []string) Draft
	Commentary(ctx context.Context, in CommentaryInput) string
	Reply(ctx context.Context, message string, history []model.ConversationTurn) string
}

// Generator is the slice of llmprovider.Manager the assistant needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implAssistant struct {
	gen     Generator
	l       log.Logger
	timeout time.Duration
}

var _ Assistant = (*implAssistant)(nil)

// New creates an Assistant. A nil gen runs on fallbacks only.
func New(gen Generator, l log.Logger, timeout time.Duration) Assistant {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &implAssistant{
		gen:     gen,
		l:       l,
		timeout: timeout,
	}
}
