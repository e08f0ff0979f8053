// Package report computes and renders the old-minus-new name difference.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"decl-check/internal/names"
)

// Marker lines delimiting the missing list in text output.
const (
	StartMarker = "--- START MISSING ---"
	EndMarker   = "--- END MISSING ---"
)

// Report is the result of comparing the old name set with the new one.
type Report struct {
	OldCount int
	NewTotal int
	Missing  []string
	// Diff is an optional unified diff of the name lists, rendered after the
	// marker block in text output and as the "diff" field in JSON.
	Diff string
}

// Generate returns the names of old absent from new, sorted ascending.
func Generate(old, new names.Set) Report {
	return Report{
		OldCount: old.Len(),
		NewTotal: new.Len(),
		Missing:  old.Minus(new).Sorted(),
	}
}

// WriteText prints the counts followed by the marker-delimited missing list.
func (r Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Old count: %d\n", r.OldCount)
	fmt.Fprintf(bw, "New total: %d\n", r.NewTotal)
	fmt.Fprintf(bw, "Missing count: %d\n", len(r.Missing))
	fmt.Fprintln(bw, StartMarker)
	for _, m := range r.Missing {
		fmt.Fprintln(bw, m)
	}
	fmt.Fprintln(bw, EndMarker)
	bw.WriteString(r.Diff)
	return bw.Flush()
}

// WriteJSON prints the report as a single indented JSON object.
func (r Report) WriteJSON(w io.Writer) error {
	out := struct {
		OldCount     int      `json:"old_count"`
		NewTotal     int      `json:"new_total"`
		MissingCount int      `json:"missing_count"`
		Missing      []string `json:"missing"`
		Diff         string   `json:"diff,omitempty"`
	}{
		OldCount:     r.OldCount,
		NewTotal:     r.NewTotal,
		MissingCount: len(r.Missing),
		Missing:      append([]string{}, r.Missing...), // [] instead of null
		Diff:         r.Diff,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Write renders r in the named format ("text" or "json").
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "", FormatText:
		return r.WriteText(w)
	case FormatJSON:
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)
