package apimodels

type AnalysisRequest struct {
	// Text is the free text to analyze
	Text string `json:"text"`

	// Language hint; accepted but not used by any provider yet
	Language string `json:"language,omitempty"`

	// Which analyses to run. Nil means all of them.
	Options *AnalysisOptions `json:"options,omitempty"`
}

type AnalysisOptions struct {
	Sentiment  bool `json:"sentiment"`
	Keyphrases bool `json:"keyphrases"`
	Summary    bool `json:"summary"`
}

// DefaultOptions enables every analysis.
func DefaultOptions() AnalysisOptions {
	return AnalysisOptions{Sentiment: true, Keyphrases: true, Summary: true}
}

// EffectiveOptions returns the requested options, falling back to DefaultOptions.
func (r AnalysisRequest) EffectiveOptions() AnalysisOptions {
	if r.Options == nil {
		return DefaultOptions()
	}
	return *r.Options
}
