package cli

import (
	"bufio"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sozercan/textlens/internal/console"
)

func NewConsoleCmd(s *Settings) *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Analyze each line typed on stdin",
		Long: `Start an interactive session. The provider is shown once, then every line
you enter is analyzed. Lines are sent without waiting for earlier ones, and
the output shows results in the order they come back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			term := console.NewTerminal(out)
			api := s.Client()

			console.New(api, term, console.StaticForm{}).LoadProvider(cmd.Context())
			color.New(color.FgHiBlack).Fprintln(out, "Type text and press enter. Ctrl-D to quit.")

			var wg sync.WaitGroup
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				c := console.New(api, term, console.StaticForm{Input: line, Opts: flags.options()})
				wg.Add(1)
				go func() {
					defer wg.Done()
					c.Analyze(cmd.Context())
				}()
			}
			wg.Wait()
			return scanner.Err()
		},
	}

	flags.register(cmd)
	return cmd
}
