package llmprovider

import (
	"context"

	"daily-planner/pkg/deepseek"
	"daily-planner/pkg/gemini"
	"daily-planner/pkg/qwen"
)

const (
	ProviderGemini   = "gemini"
	ProviderQwen     = "qwen"
	ProviderDeepSeek = "deepseek"

	deepseekResponseFormatJSON = "json_object"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Contents:        make([]gemini.Content, 0, len(req.Messages)),
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxTokens,
		JSONOutput:      req.JSONOutput,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = req.SystemInstruction.Text()
	}
	for _, m := range req.Messages {
		geminiReq.Contents = append(geminiReq.Contents, gemini.Content{Role: m.Role, Text: m.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, wrapError(ProviderGemini, err, gemini.ErrRateLimited)
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text),
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string  { return ProviderGemini }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		Messages:    make([]qwen.Message, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONOutput:  req.JSONOutput,
	}
	if req.SystemInstruction != nil {
		qwenReq.System = req.SystemInstruction.Text()
	}
	for _, m := range req.Messages {
		qwenReq.Messages = append(qwenReq.Messages, qwen.Message{Role: m.Role, Content: m.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, wrapError(ProviderQwen, err, qwen.ErrRateLimited)
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Message.Content),
		ProviderName: ProviderQwen,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *QwenAdapter) Name() string  { return ProviderQwen }
func (a *QwenAdapter) Model() string { return a.client.Model() }

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Messages:    make([]deepseek.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: RoleSystem, Content: req.SystemInstruction.Text()})
	}
	for _, m := range req.Messages {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: m.Role, Content: m.Text()})
	}
	if req.JSONOutput {
		dsReq.ResponseFormat = &deepseek.ResponseFormat{Type: deepseekResponseFormatJSON}
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, wrapError(ProviderDeepSeek, err, deepseek.ErrRateLimited)
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, text),
		ProviderName: ProviderDeepSeek,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *DeepSeekAdapter) Name() string  { return ProviderDeepSeek }
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }
