package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/sourcegraph/conc/pool"

	"github.com/sozercan/textlens/apimodels"
	"github.com/sozercan/textlens/internal/providers"
)

// ErrInvalidText is returned for empty text or text over the configured limit.
var ErrInvalidText = errors.New("invalid_text")

type Analyzer struct {
	provider providers.Provider
	maxChars int
}

func New(provider providers.Provider, maxChars int) *Analyzer {
	return &Analyzer{
		provider: provider,
		maxChars: maxChars,
	}
}

// ProviderName reports which provider serves analyses.
func (a *Analyzer) ProviderName() string {
	return a.provider.Name()
}

// Analyze runs the requested analyses concurrently. The first failure cancels
// the others and is returned.
func (a *Analyzer) Analyze(ctx context.Context, text string, opts apimodels.AnalysisOptions) (*apimodels.AnalysisResponse, error) {
	if text == "" || utf8.RuneCountInString(text) > a.maxChars {
		return nil, ErrInvalidText
	}

	slog.Info("Starting analysis", "provider", a.provider.Name(), "chars", len(text),
		"sentiment", opts.Sentiment, "keyphrases", opts.Keyphrases, "summary", opts.Summary)
	startTime := time.Now()

	result := &apimodels.AnalysisResponse{}
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()

	if opts.Sentiment {
		p.Go(func(ctx context.Context) error {
			s, err := a.provider.Sentiment(ctx, text)
			if err != nil {
				return fmt.Errorf("sentiment: %w", err)
			}
			result.Sentiment = s
			return nil
		})
	}
	if opts.Keyphrases {
		p.Go(func(ctx context.Context) error {
			k, err := a.provider.Keyphrases(ctx, text)
			if err != nil {
				return fmt.Errorf("keyphrases: %w", err)
			}
			if k == nil {
				k = []string{}
			}
			result.Keyphrases = k
			return nil
		})
	}
	if opts.Summary {
		p.Go(func(ctx context.Context) error {
			s, err := a.provider.Summarize(ctx, text)
			if err != nil {
				return fmt.Errorf("summary: %w", err)
			}
			result.Summary = s
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		slog.Error("Analysis failed", "provider", a.provider.Name(), "error", err)
		return nil, err
	}

	result.Meta = &apimodels.MetaInfo{
		Provider:  a.provider.Name(),
		Models:    a.provider.Models(),
		ElapsedMS: float64(time.Since(startTime).Milliseconds()),
	}

	slog.Debug("Analysis completed", "elapsed_ms", result.Meta.ElapsedMS)
	return result, nil
}
