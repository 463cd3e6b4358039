package llm

import (
	"context"

	"github.com/openai/openai-go"
)

type Provider interface {
	// Analyze takes system and user messages and returns the model's reply
	Analyze(ctx context.Context, systemMessages []string, userMessages []string, opts ...Option) (*Response, error)

	// Model names the model used when no option overrides it
	Model() string
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
	Tools       []openai.ChatCompletionToolParam
}

// WithTools offers function definitions to providers that support them.
func WithTools(tools ...openai.ChatCompletionToolParam) Option {
	return func(o *Options) {
		o.Tools = tools
	}
}

// WithMaxTokens limits the reply length.
func WithMaxTokens(n int64) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// FunctionResponse represents the structured response from a function call
type FunctionResponse struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type Response struct {
	Content      string
	FunctionCall *FunctionResponse
	Usage        Usage
}
