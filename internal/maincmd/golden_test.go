package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"

	"github.com/mna/clover/internal/filetest"
	"github.com/mna/clover/internal/maincmd"
)

var testUpdateGoldenTests = flag.Bool("test.update-golden-tests", false, "If set, replace expected golden test results with actual results.")

// TestRunFile drives every script under testdata/in through RunFile end to
// end and diffs its stdout/stderr against the golden files under
// testdata/out.
func TestRunFile(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".clv") {
		t.Run(fi.Name(), func(t *testing.T) {
			var out, errOut bytes.Buffer
			stdio := mainer.Stdio{Stdout: &out, Stderr: &errOut}

			// error is ignored here: a script that is expected to fail still has
			// its error message captured in errOut and checked against the
			// golden .err file.
			_ = maincmd.RunFile(context.Background(), stdio, filepath.Join(srcDir, fi.Name()))

			filetest.DiffOutput(t, fi, out.String(), resultDir, testUpdateGoldenTests)
			filetest.DiffErrors(t, fi, errOut.String(), resultDir, testUpdateGoldenTests)
		})
	}
}
