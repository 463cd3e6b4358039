package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/textlens/internal/config"
)

func newTestOpenAI(t *testing.T, reply string, check func(body map[string]any)) *OpenAI {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if check != nil {
			check(body)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(ts.Close)

	client, err := NewOpenAI(&config.OpenAIConfig{
		Provider:    "openai",
		APIKey:      "test-key",
		APIEndpoint: ts.URL + "/",
		Model:       "gpt-4o-mini",
	}, option.WithMaxRetries(0))
	require.NoError(t, err)
	return client
}

func TestOpenAIAnalyzeContent(t *testing.T) {
	reply := `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1,
  "model": "gpt-4o-mini",
  "choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "A short summary."}}],
  "usage": {"prompt_tokens": 10, "completion_tokens": 4, "total_tokens": 14}
}`
	client := newTestOpenAI(t, reply, func(body map[string]any) {
		assert.Equal(t, "gpt-4o-mini", body["model"])
		messages := body["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]any)["role"])
		assert.Equal(t, "user", messages[1].(map[string]any)["role"])
		assert.NotContains(t, body, "tools")
	})

	resp, err := client.Analyze(context.Background(), []string{"Summarize."}, []string{"Some text"})
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", resp.Content)
	assert.Nil(t, resp.FunctionCall)
	assert.Equal(t, int64(14), resp.Usage.TotalTokens)
}

func TestOpenAIAnalyzeToolCall(t *testing.T) {
	reply := `{
  "id": "chatcmpl-2",
  "object": "chat.completion",
  "created": 1,
  "model": "gpt-4o-mini",
  "choices": [{"index": 0, "finish_reason": "tool_calls", "message": {"role": "assistant", "content": null,
    "tool_calls": [{"id": "call_1", "type": "function", "function": {"name": "report_sentiment", "arguments": "{\"label\":\"positive\",\"score\":0.9}"}}]}}],
  "usage": {"prompt_tokens": 10, "completion_tokens": 4, "total_tokens": 14}
}`
	client := newTestOpenAI(t, reply, nil)

	resp, err := client.Analyze(context.Background(), []string{"Classify."}, []string{"I love this"})
	require.NoError(t, err)
	require.NotNil(t, resp.FunctionCall)
	assert.Equal(t, "report_sentiment", resp.FunctionCall.Name)
	assert.JSONEq(t, `{"label":"positive","score":0.9}`, resp.FunctionCall.Arguments)
}

func TestOpenAIRequiresKey(t *testing.T) {
	_, err := NewOpenAI(&config.OpenAIConfig{Provider: "openai"})
	assert.Error(t, err)
}
