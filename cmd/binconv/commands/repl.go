package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"binconv/internal/domain"
	"binconv/internal/shell"
)

const replHelp = `Commands:
  :swap            use the output as input and flip the direction
  :clear           clear the input
  :copy            copy the output to the clipboard
  :mode            show the current direction
  :mode text       text to binary
  :mode binary     binary to text
  :state           show input, output, direction and copied flag
  :help            show this help
  :quit            leave the shell
Any other line becomes the new input. Start a line with \: to enter a literal ':'.`

type repl struct {
	in   io.Reader
	out  io.Writer
	sess *shell.Session
}

func (r *repl) run(ctx context.Context) error {
	sc := bufio.NewScanner(r.in)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)

	fmt.Fprintln(r.out, "binconv shell. Type :help for commands.")
	for {
		r.prompt()
		if !sc.Scan() {
			fmt.Fprintln(r.out)
			return sc.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}
		if quit := r.handle(ctx, strings.TrimSuffix(sc.Text(), "\r")); quit {
			return nil
		}
	}
}

func (r *repl) prompt() {
	if r.sess.State().Mode == domain.BinaryToText {
		fmt.Fprint(r.out, "binary> ")
	} else {
		fmt.Fprint(r.out, "text> ")
	}
}

// handle processes one line and reports whether the shell should exit.
func (r *repl) handle(ctx context.Context, line string) bool {
	if strings.HasPrefix(line, `\:`) {
		r.show(r.sess.SetInput(ctx, line[1:]))
		return false
	}
	if !strings.HasPrefix(line, ":") {
		r.show(r.sess.SetInput(ctx, line))
		return false
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":swap":
		r.show(r.sess.Swap(ctx))
	case ":clear":
		r.sess.Clear(ctx)
		fmt.Fprintln(r.out, "(cleared)")
	case ":copy":
		if r.sess.Copy(ctx) {
			fmt.Fprintln(r.out, "Copied!")
		} else {
			fmt.Fprintln(r.out, "(nothing copied)")
		}
	case ":mode":
		if len(fields) == 1 {
			fmt.Fprintln(r.out, modeLabel(r.sess.State().Mode))
			return false
		}
		m, err := domain.ParseMode(fields[1])
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false
		}
		r.show(r.sess.SetMode(ctx, m))
	case ":state":
		st := r.sess.State()
		fmt.Fprintf(r.out, "mode:   %s\ninput:  %q\noutput: %q\ncopied: %t\n",
			modeLabel(st.Mode), st.Input, st.Output, st.Copied)
	case ":help", ":h", ":?":
		fmt.Fprintln(r.out, replHelp)
	default:
		fmt.Fprintf(r.out, "unknown command %s (type :help)\n", fields[0])
	}
	return false
}

func (r *repl) show(st domain.ShellState) {
	fmt.Fprintln(r.out, st.Output)
}

func modeLabel(m domain.Mode) string {
	if m == domain.BinaryToText {
		return "binary -> text"
	}
	return "text -> binary"
}
