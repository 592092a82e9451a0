package commands

import (
	"github.com/spf13/cobra"

	"binconv/internal/domain"
	"binconv/internal/shell"
)

func shellCmd(c *cli) *cobra.Command {
	var startMode string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive converter",
		Long: "Each line you type replaces the input and prints the converted output.\n" +
			"Lines starting with ':' are commands; type :help to list them.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseMode(startMode)
			if err != nil {
				return err
			}
			sess := c.wire.NewSession(shell.WithMode(mode))
			defer sess.Close()

			r := &repl{in: cmd.InOrStdin(), out: cmd.OutOrStdout(), sess: sess}
			return r.run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&startMode, "mode", "text", "starting mode: text or binary")
	return cmd
}
