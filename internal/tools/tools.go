package tools

import (
	"github.com/openai/openai-go"
)

const (
	ReportSentiment = "report_sentiment"
	ReportSummary   = "report_summary"
)

// Functions the model calls to hand back structured analysis results
var Sentiment = openai.ChatCompletionToolParam{
	Type: openai.F(openai.ChatCompletionToolTypeFunction),
	Function: openai.F(openai.FunctionDefinitionParam{
		Name:        openai.String(ReportSentiment),
		Description: openai.String("Report the overall sentiment of the user's text"),
		Parameters: openai.F(openai.FunctionParameters{
			"type": "object",
			"properties": map[string]interface{}{
				"label": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"positive", "negative", "neutral"},
					"description": "The sentiment polarity",
				},
				"score": map[string]interface{}{
					"type":        "number",
					"description": "Confidence in the label, between 0 and 1",
				},
			},
			"required": []string{"label", "score"},
		}),
	}),
}

var Summary = openai.ChatCompletionToolParam{
	Type: openai.F(openai.ChatCompletionToolTypeFunction),
	Function: openai.F(openai.FunctionDefinitionParam{
		Name:        openai.String(ReportSummary),
		Description: openai.String("Report a short summary of the user's text"),
		Parameters: openai.F(openai.FunctionParameters{
			"type": "object",
			"properties": map[string]interface{}{
				"summary": map[string]string{
					"type":        "string",
					"description": "One or two sentences, at most 280 characters",
				},
			},
			"required": []string{"summary"},
		}),
	}),
}
