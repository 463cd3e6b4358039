package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sozercan/textlens/apimodels"
)

func meta() *apimodels.MetaInfo {
	return &apimodels.MetaInfo{Provider: "local", ElapsedMS: 12}
}

func TestRenderResultAllFields(t *testing.T) {
	got := RenderResult(&apimodels.AnalysisResponse{
		Sentiment:  &apimodels.SentimentResult{Label: "positive", Score: 0.98},
		Keyphrases: []string{"love"},
		Summary:    "Positive statement.",
		Meta:       meta(),
	})

	assert.Equal(t, "Sentiment: positive (0.98)\nKeyphrases: love\nSummary: Positive statement.\nMeta: provider=local elapsed=12ms", got)
}

func TestRenderResultAbsentFields(t *testing.T) {
	testCases := []struct {
		name     string
		resp     *apimodels.AnalysisResponse
		expected string
	}{
		{
			name:     "nothing requested",
			resp:     &apimodels.AnalysisResponse{Meta: meta()},
			expected: "Sentiment: n/a\nKeyphrases: n/a\nSummary: n/a\nMeta: provider=local elapsed=12ms",
		},
		{
			name: "no sentiment",
			resp: &apimodels.AnalysisResponse{
				Keyphrases: []string{"a", "b c"},
				Summary:    "S.",
				Meta:       meta(),
			},
			expected: "Sentiment: n/a\nKeyphrases: a, b c\nSummary: S.\nMeta: provider=local elapsed=12ms",
		},
		{
			name: "empty keyphrases are present",
			resp: &apimodels.AnalysisResponse{
				Sentiment:  &apimodels.SentimentResult{Label: "neutral", Score: 0.5},
				Keyphrases: []string{},
				Meta:       meta(),
			},
			expected: "Sentiment: neutral (0.5)\nKeyphrases: \nSummary: n/a\nMeta: provider=local elapsed=12ms",
		},
		{
			name: "whole and zero scores",
			resp: &apimodels.AnalysisResponse{
				Sentiment: &apimodels.SentimentResult{Label: "negative", Score: 0},
				Meta:      &apimodels.MetaInfo{Provider: "simple", ElapsedMS: 0},
			},
			expected: "Sentiment: negative (0)\nKeyphrases: n/a\nSummary: n/a\nMeta: provider=simple elapsed=0ms",
		},
		{
			name: "fractional elapsed",
			resp: &apimodels.AnalysisResponse{
				Summary: "S.",
				Meta:    &apimodels.MetaInfo{Provider: "local", ElapsedMS: 12.5},
			},
			expected: "Sentiment: n/a\nKeyphrases: n/a\nSummary: S.\nMeta: provider=local elapsed=12.5ms",
		},
		{
			name:     "missing meta",
			resp:     &apimodels.AnalysisResponse{Summary: "S."},
			expected: "Sentiment: n/a\nKeyphrases: n/a\nSummary: S.\nMeta: n/a",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RenderResult(tc.resp))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1", formatNumber(1))
	assert.Equal(t, "0.6667", formatNumber(0.6667))
	assert.Equal(t, "0.1", formatNumber(0.1))
}
