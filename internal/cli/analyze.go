package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/sozercan/textlens/apimodels"
	"github.com/sozercan/textlens/internal/console"
	"github.com/sozercan/textlens/internal/formatter"
	"github.com/sozercan/textlens/pkg/client"
)

type optionFlags struct {
	sentiment  bool
	keyphrases bool
	summary    bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.sentiment, "sentiment", true, "Run sentiment analysis")
	cmd.Flags().BoolVar(&f.keyphrases, "keyphrases", true, "Extract keyphrases")
	cmd.Flags().BoolVar(&f.summary, "summary", true, "Summarize the text")
}

func (f *optionFlags) options() apimodels.AnalysisOptions {
	return apimodels.AnalysisOptions{
		Sentiment:  f.sentiment,
		Keyphrases: f.keyphrases,
		Summary:    f.summary,
	}
}

func NewAnalyzeCmd(s *Settings) *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:   "analyze [TEXT]",
		Short: "Analyze text with the textlens server",
		Long: `Send text to the server and print its sentiment, keyphrases and summary.

Examples:
  # Analyze an argument
  textlens analyze "I love this"

  # Read from stdin, skip the summary
  cat review.txt | textlens analyze --summary=false

  # Machine-readable output
  textlens analyze "Slow and buggy" -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			form := console.StaticForm{Input: text, Opts: flags.options()}

			if s.Output() == formatter.FormatHuman {
				return runHuman(cmd, s, form)
			}
			return runStructured(cmd, s, form)
		},
	}

	flags.register(cmd)
	return cmd
}

func runHuman(cmd *cobra.Command, s *Settings, form console.StaticForm) error {
	term := console.NewTerminal(cmd.OutOrStdout())
	c := console.New(s.Client(), term, form)
	c.LoadProvider(cmd.Context())

	sp := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " Analyzing..."
	sp.Start()
	c.Analyze(cmd.Context())
	sp.Stop()
	return nil
}

func runStructured(cmd *cobra.Command, s *Settings, form console.StaticForm) error {
	opts := form.Options()
	resp, err := s.Client().Analyze(cmd.Context(), apimodels.AnalysisRequest{
		Text:    form.Text(),
		Options: &opts,
	})
	if err != nil {
		if client.IsNetworkError(err) {
			return fmt.Errorf("network error: %w", err)
		}
		return fmt.Errorf("analysis failed: %w", err)
	}
	return formatter.DisplayResults(cmd.OutOrStdout(), resp, s.Output())
}

func inputText(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
