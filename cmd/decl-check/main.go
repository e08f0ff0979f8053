// Command decl-check reports function and class names declared in an old
// source file that no longer appear in any of a set of new source files.
//
// Usage:
//
//	decl-check [flags] <old-file> [new-file|new-dir ...]
//	decl-check --config decl-check.yaml
//
// Names are found by matching `function <name>` and `class <name>` in the
// raw text; nothing is parsed. The report lists the old names that are
// missing from the union of the new files between two marker lines.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Overridden at build time with -ldflags "-X main.Version=x.y.z".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	cmd := newRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)

	if err := cmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
