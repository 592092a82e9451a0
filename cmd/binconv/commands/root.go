package commands

import (
	"context"

	"github.com/spf13/cobra"

	"binconv/internal/app"
)

// cli carries state shared by the root command and its subcommands.
type cli struct {
	flags app.Flags
	wire  *app.Wire
}

// ExecuteContext runs the binconv CLI with os.Args under ctx.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "binconv",
		Short:        "Convert text to binary and back",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.flags.Load(cmd.Flags())
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.wire = w
			return nil
		},
	}

	c.flags.RegisterCommon(root.PersistentFlags())
	c.flags.RegisterClient(root.PersistentFlags())

	root.AddCommand(encodeCmd(c), decodeCmd(c), shellCmd(c))
	return root
}
