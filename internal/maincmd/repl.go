package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/mna/clover/lang/interp"
)

// REPL reads one line at a time from stdio.Stdin, pipeline-executing each
// one against a single shared Interpreter (so global definitions persist
// across lines) until EOF or ctx is cancelled. A reported error on one line
// never stops the loop: the REPL re-enters the read loop after any
// reported scan, parse, resolve or runtime error.
func REPL(ctx context.Context, stdio mainer.Stdio) error {
	in := interp.New(stdio.Stdout)
	scan := bufio.NewScanner(stdio.Stdin)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(stdio.Stdout, "> ")
		if !scan.Scan() {
			break
		}
		line := scan.Text()
		if line == "" {
			continue
		}
		// errors are already reported to stderr by run; the REPL simply loops.
		_ = run(in, stdio.Stderr, "<stdin>", []byte(line))
	}
	if err := scan.Err(); err != nil {
		return err
	}
	return nil
}
