package cli

import (
	"github.com/spf13/cobra"

	"github.com/sozercan/textlens/internal/console"
)

func NewProviderCmd(s *Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "provider",
		Short: "Show which analysis provider the server is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			term := console.NewTerminal(cmd.OutOrStdout())
			console.New(s.Client(), term, console.StaticForm{}).LoadProvider(cmd.Context())
			return nil
		},
	}
}
