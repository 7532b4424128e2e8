package assistant

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"daily-planner/internal/model"
	"daily-planner/pkg/llmprovider"
)

var codeBlock = regexp.MustCompile("(?s)```.*?```")

// Reply answers a chat message using the most recent turns as context.
// Failures are turned into a canned reply chosen by the kind of failure.
func (a *implAssistant) Reply(ctx context.Context, message string, history []model.ConversationTurn) string {
	if len(history) > ChatHistoryWindow {
		history = history[len(history)-ChatHistoryWindow:]
	}

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llmprovider.RoleAssistant
		if turn.Role == model.RoleUser {
			role = llmprovider.RoleUser
		}
		messages = append(messages, llmprovider.TextMessage(role, turn.Content))
	}
	messages = append(messages, llmprovider.TextMessage(llmprovider.RoleUser, message))

	text, err := a.generate(ctx, generateOptions{
		system:      PromptChatSystem,
		messages:    messages,
		temperature: ChatTemperature,
		maxTokens:   ChatMaxTokens,
	})
	switch {
	case errors.Is(err, errEmptyResponse):
		return MessageChatEmpty
	case err != nil:
		a.l.Warnf(ctx, "%s: %v", LogPrefixReply, err)
		return failureReply(err)
	}

	text = strings.TrimSpace(codeBlock.ReplaceAllString(text, ""))
	if text == "" {
		return MessageChatEmpty
	}
	return text
}

func failureReply(err error) string {
	switch {
	case errors.Is(err, llmprovider.ErrProviderRateLimited):
		return MessageChatQuota
	case errors.Is(err, llmprovider.ErrProviderTimeout), errors.Is(err, context.DeadlineExceeded):
		return MessageChatTimeout
	default:
		return MessageChatDelay
	}
}
