package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sozercan/textlens/apimodels"
	"github.com/sozercan/textlens/internal/llm"
	"github.com/sozercan/textlens/internal/textutil"
	"github.com/sozercan/textlens/internal/tools"
)

const sentimentPrompt = `You classify the sentiment of the user's text.
Call report_sentiment with the label (positive, negative or neutral) and a confidence score between 0 and 1.
If you cannot call functions, answer with only a JSON object of the form {"label": "...", "score": 0.0}.`

const summaryPrompt = `You summarize the user's text in one or two sentences of at most 280 characters.
Call report_summary with the summary, or if you cannot call functions answer with only the summary text.`

// LLM runs sentiment and summary on a language model. Keyphrase extraction
// stays with the simple provider.
type LLM struct {
	name     string
	client   llm.Provider
	fallback *Simple
}

func NewLLM(name string, client llm.Provider) *LLM {
	return &LLM{
		name:     name,
		client:   client,
		fallback: NewSimple(),
	}
}

func (p *LLM) Name() string { return p.name }

func (p *LLM) Models() map[string]string {
	return map[string]string{
		"sentiment": p.client.Model(),
		"summary":   p.client.Model(),
	}
}

func (p *LLM) Sentiment(ctx context.Context, text string) (*apimodels.SentimentResult, error) {
	resp, err := p.client.Analyze(ctx, []string{sentimentPrompt}, []string{text},
		llm.WithTools(tools.Sentiment), llm.WithMaxTokens(100))
	if err != nil {
		return nil, fmt.Errorf("%w: sentiment: %v", ErrUnavailable, err)
	}

	var out apimodels.SentimentResult
	if err := json.Unmarshal([]byte(structuredPayload(resp, tools.ReportSentiment)), &out); err != nil {
		return nil, fmt.Errorf("decoding sentiment reply: %w", err)
	}

	out.Label = normalizeLabel(out.Label)
	out.Score = roundScore(clamp(out.Score))
	slog.Debug("LLM sentiment", "provider", p.name, "label", out.Label, "score", out.Score)
	return &out, nil
}

func (p *LLM) Keyphrases(ctx context.Context, text string) ([]string, error) {
	return p.fallback.Keyphrases(ctx, text)
}

func (p *LLM) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := p.client.Analyze(ctx, []string{summaryPrompt}, []string{text},
		llm.WithTools(tools.Summary), llm.WithMaxTokens(200))
	if err != nil {
		return "", fmt.Errorf("%w: summary: %v", ErrUnavailable, err)
	}

	if resp.FunctionCall != nil && resp.FunctionCall.Name == tools.ReportSummary {
		var args struct {
			Summary string `json:"summary"`
		}
		if err := json.Unmarshal([]byte(resp.FunctionCall.Arguments), &args); err != nil {
			return "", fmt.Errorf("decoding summary arguments: %w", err)
		}
		return textutil.Truncate(textutil.Normalize(args.Summary), maxSummaryLen), nil
	}
	return textutil.Truncate(textutil.Normalize(resp.Content), maxSummaryLen), nil
}

// structuredPayload returns the JSON the model produced, preferring the
// arguments of the named function call over free-form content.
func structuredPayload(resp *llm.Response, function string) string {
	if resp.FunctionCall != nil && resp.FunctionCall.Name == function {
		return resp.FunctionCall.Arguments
	}
	content := strings.TrimSpace(resp.Content)
	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			return content[start : end+1]
		}
	}
	return content
}

func normalizeLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.HasPrefix(label, "pos"):
		return apimodels.SentimentPositive
	case strings.HasPrefix(label, "neg"):
		return apimodels.SentimentNegative
	default:
		return apimodels.SentimentNeutral
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
