package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sozercan/textlens/internal/cli"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	settings := cli.NewSettings()

	rootCmd := &cobra.Command{
		Use:   "textlens",
		Short: "Sentiment, keyphrases and summaries from a textlens server",
		Long: `textlens sends text to a textlens server and prints the sentiment,
keyphrases and summary it returns.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return settings.Load()
		},
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	settings.AddFlags(rootCmd)
	rootCmd.AddCommand(
		cli.NewProviderCmd(settings),
		cli.NewAnalyzeCmd(settings),
		cli.NewConsoleCmd(settings),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "textlens version %s\n", version)
		},
	}
}
