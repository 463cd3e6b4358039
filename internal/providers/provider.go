// Package providers implements the analysis backends behind /analyze.
package providers

import (
	"context"
	"errors"

	"github.com/sozercan/textlens/apimodels"
)

// ErrUnavailable is returned when a provider's backing model cannot be reached.
var ErrUnavailable = errors.New("provider unavailable")

// Provider runs the individual analyses for one backend.
type Provider interface {
	// Name identifies the provider in health checks and response metadata.
	Name() string

	// Models reports the model used per analysis, keyed by analysis name.
	Models() map[string]string

	Sentiment(ctx context.Context, text string) (*apimodels.SentimentResult, error)
	Keyphrases(ctx context.Context, text string) ([]string, error)
	Summarize(ctx context.Context, text string) (string, error)
}
