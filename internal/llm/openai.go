package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	"github.com/sozercan/textlens/internal/config"
)

// OpenAI client implementation
type OpenAI struct {
	client *openai.Client
	cfg    *config.OpenAIConfig
}

func NewOpenAI(cfg *config.OpenAIConfig, extra ...option.RequestOption) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set for the openai provider")
	}

	var opts []option.RequestOption
	switch cfg.Provider {
	case "azure":
		opts = append(opts,
			azure.WithEndpoint(cfg.APIEndpoint, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
		)
	default: // "openai"
		opts = append(opts,
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.APIEndpoint),
		)
	}
	opts = append(opts, extra...)

	return &OpenAI{
		client: openai.NewClient(opts...),
		cfg:    cfg,
	}, nil
}

func (o *OpenAI) Model() string {
	return o.cfg.Model
}

func (o *OpenAI) Analyze(ctx context.Context, systemMessages []string, userMessages []string, opts ...Option) (*Response, error) {
	options := &Options{
		Model:       o.cfg.Model,
		Temperature: 0,
		MaxTokens:   1000,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(systemMessages)+len(userMessages))
	for _, m := range systemMessages {
		messages = append(messages, openai.SystemMessage(m))
	}
	for _, m := range userMessages {
		messages = append(messages, openai.UserMessage(m))
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.F(options.Model),
		Messages:    openai.F(messages),
		Temperature: openai.F(options.Temperature),
		MaxTokens:   openai.F(options.MaxTokens),
	}
	if len(options.Tools) > 0 {
		params.Tools = openai.F(options.Tools)
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}

	response := &Response{
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	// Check for function calls in the response
	if len(resp.Choices) > 0 && len(resp.Choices[0].Message.ToolCalls) > 0 {
		toolCall := resp.Choices[0].Message.ToolCalls[0]
		response.FunctionCall = &FunctionResponse{
			Name:      toolCall.Function.Name,
			Arguments: toolCall.Function.Arguments,
		}
	} else if len(resp.Choices) > 0 {
		response.Content = resp.Choices[0].Message.Content
	}

	slog.Debug("OpenAI completion finished", "model", options.Model, "tokens", response.Usage.TotalTokens)
	return response, nil
}
