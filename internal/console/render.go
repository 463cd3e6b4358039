package console

import (
	"strconv"
	"strings"

	"github.com/sozercan/textlens/apimodels"
)

const notAvailable = "n/a"

// RenderResult formats an analysis as the four-line result block. Absent
// fields render as "n/a"; an empty summary counts as absent, an empty
// keyphrase list does not.
func RenderResult(resp *apimodels.AnalysisResponse) string {
	sentiment := notAvailable
	if resp.Sentiment != nil {
		sentiment = resp.Sentiment.Label + " (" + formatNumber(resp.Sentiment.Score) + ")"
	}

	keyphrases := notAvailable
	if resp.Keyphrases != nil {
		keyphrases = strings.Join(resp.Keyphrases, ", ")
	}

	summary := resp.Summary
	if summary == "" {
		summary = notAvailable
	}

	meta := notAvailable
	if resp.Meta != nil {
		meta = "provider=" + resp.Meta.Provider + " elapsed=" + formatNumber(resp.Meta.ElapsedMS) + "ms"
	}

	return "Sentiment: " + sentiment +
		"\nKeyphrases: " + keyphrases +
		"\nSummary: " + summary +
		"\nMeta: " + meta
}

// formatNumber prints the shortest decimal that round-trips, without exponent.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
