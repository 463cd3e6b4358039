package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/textlens/internal/analyzer"
	"github.com/sozercan/textlens/internal/config"
	"github.com/sozercan/textlens/internal/providers"
	"github.com/sozercan/textlens/internal/server"
)

func runCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	color.NoColor = true

	srv := server.New(config.Config{Server: config.ServerConfig{StaticDir: t.TempDir()}},
		analyzer.New(providers.NewSimple(), 1000))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	s := NewSettings()
	root := &cobra.Command{Use: "textlens", SilenceUsage: true}
	s.AddFlags(root)
	root.AddCommand(NewProviderCmd(s), NewAnalyzeCmd(s), NewConsoleCmd(s))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--url", ts.URL))
	require.NoError(t, root.Execute())
	return out.String()
}

func TestProviderCmd(t *testing.T) {
	assert.Equal(t, "Provider: simple\n", runCLI(t, "", "provider"))
}

func TestAnalyzeCmdHuman(t *testing.T) {
	out := runCLI(t, "", "analyze", "I love this", "--summary=false")
	assert.True(t, strings.HasPrefix(out, "Provider: simple\n"), out)
	assert.Contains(t, out, "Sentiment: positive (1)\nKeyphrases: love\nSummary: n/a\nMeta: provider=simple elapsed=")
}

func TestAnalyzeCmdJSONFromStdin(t *testing.T) {
	out := runCLI(t, "Awful and slow.\n", "analyze", "-o", "json")

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, map[string]any{"label": "negative", "score": 0.0}, resp["sentiment"])
	assert.Equal(t, "Awful and slow.", resp["summary"])
}

func TestAnalyzeCmdReportsHTTPError(t *testing.T) {
	assert.Contains(t, runCLI(t, "", "analyze", strings.Repeat("a", 1001)), `Error: 400 {"detail":"invalid_text"}`)
}

func TestConsoleCmd(t *testing.T) {
	out := runCLI(t, "I love this\n\nthis is bad\n", "console", "--keyphrases=false")

	assert.True(t, strings.HasPrefix(out, "Provider: simple\n"), out)
	assert.Contains(t, out, "Sentiment: positive (1)\nKeyphrases: n/a\nSummary: I love this\n")
	assert.Contains(t, out, "Sentiment: negative (0)\nKeyphrases: n/a\nSummary: this is bad\n")
}
