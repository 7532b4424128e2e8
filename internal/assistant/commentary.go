package assistant

import (
	"context"
	"fmt"
	"strings"

	"daily-planner/pkg/llmprovider"
)

// Commentary returns a short remark on the current task. It never fails.
func (a *implAssistant) Commentary(ctx context.Context, in CommentaryInput) string {
	nextBreak := PromptNoBreak
	if in.BreakRemaining != nil && *in.BreakRemaining > 0 {
		nextBreak = fmt.Sprintf("%d minutes", *in.BreakRemaining)
	}

	prompt := fmt.Sprintf(PromptCommentary, in.Task.Name, in.MinutesRemaining, nextBreak, in.Completed, in.Total)
	text, err := a.generate(ctx, generateOptions{
		system:      PromptCommentarySystem,
		messages:    []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, prompt)},
		temperature: CommentaryTemperature,
		maxTokens:   CommentaryMaxTokens,
	})
	if err != nil {
		a.l.Debugf(ctx, "%s: using fallback: %v", LogPrefixCommentary, err)
		return FallbackCommentary(in)
	}
	return text
}

// FallbackCommentary renders the commentary template.
func FallbackCommentary(in CommentaryInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, MessageCommentaryTask, in.MinutesRemaining)
	if in.BreakRemaining != nil && *in.BreakRemaining > 0 {
		fmt.Fprintf(&sb, MessageCommentaryBreak, *in.BreakRemaining)
	}
	fmt.Fprintf(&sb, MessageCommentaryCount, in.Completed, in.Total)
	return sb.String()
}
