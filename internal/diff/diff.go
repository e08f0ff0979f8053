// Package diff renders unified diffs between two sorted name lists.
// It uses github.com/pmezard/go-difflib/difflib to produce classic unified
// output (---/+++ headers, @@ hunks, lines prefixed with ' ', '-', '+').
package diff

import (
	"fmt"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// Options controls diff generation.
type Options struct {
	// Context is the number of context lines around each hunk.
	// If 0, defaults to 3.
	Context int
}

// Names produces a unified diff of old↦new, one identifier per line.
// Both lists are expected in ascending order. Equal lists yield "".
func Names(fromLabel, toLabel string, old, new []string, opt Options) (string, error) {
	ctx := opt.Context
	if ctx <= 0 {
		ctx = 3
	}
	u := difflib.UnifiedDiff{
		A:        asLines(old),
		B:        asLines(new),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  ctx,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return "", fmt.Errorf("diff %s %s: %w", fromLabel, toLabel, err)
	}
	return s, nil
}

// asLines appends "\n" to each name, which difflib expects for clean hunks.
func asLines(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n + "\n"
	}
	return out
}
