// Package maincmd wires together lang/scanner, lang/parser, lang/resolver
// and lang/interp into a thin REPL/file driver.
package maincmd

import (
	"fmt"
	"io"

	"github.com/mna/clover/lang/interp"
	"github.com/mna/clover/lang/parser"
	"github.com/mna/clover/lang/resolver"
	"github.com/mna/clover/lang/scanner"
)

// run scans, parses, resolves and evaluates src under filename using in.
// Each of the three static phases reports its errors to stderr and aborts
// before the next phase runs; a runtime error is printed the same way and
// also aborts, but (for the REPL's sake) does not terminate the caller.
func run(in *interp.Interpreter, stderr io.Writer, filename string, src []byte) error {
	chunk, err := parser.ParseSource(filename, src)
	if err != nil {
		scanner.PrintError(stderr, err)
		return err
	}

	if err := resolver.Resolve(filename, chunk); err != nil {
		scanner.PrintError(stderr, err)
		return err
	}

	if err := in.Interpret(chunk.Stmts); err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	return nil
}
