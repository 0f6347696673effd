package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/clover/lang/interp"
)

// RunFile reads path as UTF-8 source, runs it end-to-end through the
// scan/parse/resolve/evaluate pipeline, and reports any error to
// stdio.Stderr. It returns a non-nil error on a fatal I/O error or any
// reported scan/parse/resolve/runtime error.
func RunFile(_ context.Context, stdio mainer.Stdio, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		err = errors.New("clover: " + err.Error())
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	in := interp.New(stdio.Stdout)
	return run(in, stdio.Stderr, path, src)
}
