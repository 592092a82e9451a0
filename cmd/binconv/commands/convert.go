package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"binconv/internal/converter"
	"binconv/internal/domain"
)

func encodeCmd(c *cli) *cobra.Command {
	var copyOut bool
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Convert text to binary",
		Long: "Convert text to space-separated binary, one token per character.\n" +
			"Arguments are joined by a single space; with no arguments the text is read from stdin.",
		Example: "  binconv encode Hi\n  echo -n Hi | binconv encode --unit rune",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.convert(cmd, domain.TextToBinary, args, copyOut)
		},
	}
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also copy the result to the clipboard")
	return cmd
}

func decodeCmd(c *cli) *cobra.Command {
	var copyOut bool
	cmd := &cobra.Command{
		Use:   "decode [binary...]",
		Short: "Convert binary to text",
		Long: "Convert whitespace-separated binary tokens back to text.\n" +
			"Every token must contain only 0 and 1; the first bad token aborts with no output.",
		Example: "  binconv decode 01001000 01101001",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.convert(cmd, domain.BinaryToText, args, copyOut)
		},
	}
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also copy the result to the clipboard")
	return cmd
}

// convert runs a one-shot conversion. Blank input prints nothing.
func (c *cli) convert(cmd *cobra.Command, mode domain.Mode, args []string, copyOut bool) error {
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if converter.IsBlank(in) {
		return nil
	}

	out, err := c.wire.Conversions.Convert(cmd.Context(), mode, in)
	if err != nil {
		return fmt.Errorf("%s: %w", verb(mode), err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if copyOut && out != "" {
		if c.wire.Clipboard == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "clipboard disabled")
			return nil
		}
		if err := c.wire.Clipboard.WriteText(cmd.Context(), out); err != nil {
			c.wire.Log.Warn("failed to copy text", "err", err)
			return nil
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied!")
	}
	return nil
}

// readInput joins args, or reads stdin without its final line break.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func verb(m domain.Mode) string {
	if m == domain.BinaryToText {
		return "decode"
	}
	return "encode"
}
