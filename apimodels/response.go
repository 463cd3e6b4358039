package apimodels

type AnalysisResponse struct {
	// Sentiment is nil when it was not requested
	Sentiment *SentimentResult `json:"sentiment" yaml:"sentiment,omitempty"`

	// Keyphrases is nil when not requested; an empty slice means none were found
	Keyphrases []string `json:"keyphrases" yaml:"keyphrases"`

	// Summary is empty when not requested
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// Metadata about the analysis
	Meta *MetaInfo `json:"meta" yaml:"meta"`
}

type SentimentResult struct {
	// One of positive, negative, neutral
	Label string `json:"label" yaml:"label"`

	// Confidence in [0, 1]
	Score float64 `json:"score" yaml:"score"`
}

type MetaInfo struct {
	// Name of the provider that served the request
	Provider string `json:"provider" yaml:"provider"`

	// Models used per analysis, empty for rule-based providers
	Models map[string]string `json:"models" yaml:"models,omitempty"`

	// Wall time of the analysis in milliseconds. The server reports whole
	// milliseconds, but any JSON number is accepted.
	ElapsedMS float64 `json:"elapsed_ms" yaml:"elapsed_ms"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider" yaml:"provider"`
}

// ErrorResponse is returned when the request body fails validation.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DetailResponse is returned when a well-formed request cannot be served.
type DetailResponse struct {
	Detail string `json:"detail"`
}

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)
