package assistant

import (
	"context"
	"errors"
	"strings"

	"daily-planner/pkg/llmprovider"
)

var (
	errNoGenerator   = errors.New("assistant: no generator configured")
	errEmptyResponse = errors.New("assistant: empty model response")
)

type generateOptions struct {
	system      string
	messages    []llmprovider.Message
	temperature float64
	maxTokens   int
	jsonOutput  bool
}

// generate runs one bounded model call and returns its trimmed text.
func (a *implAssistant) generate(ctx context.Context, opts generateOptions) (string, error) {
	if a.gen == nil {
		return "", errNoGenerator
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req := &llmprovider.Request{
		Messages:    opts.messages,
		Temperature: opts.temperature,
		MaxTokens:   opts.maxTokens,
		JSONOutput:  opts.jsonOutput,
	}
	if opts.system != "" {
		sys := llmprovider.TextMessage(llmprovider.RoleSystem, opts.system)
		req.SystemInstruction = &sys
	}

	resp, err := a.gen.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", errEmptyResponse
	}

	text := strings.TrimSpace(resp.Content.Text())
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}
