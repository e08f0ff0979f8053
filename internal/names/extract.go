// Package names extracts function and class identifiers from source files
// and holds them as sets.
package names

import (
	"fmt"
	"io"
	"os"

	"decl-check/internal/logging"
	"decl-check/internal/textutil"
)

// Extractor reads files and scans them for declarations.
type Extractor struct {
	// Charset names the text encoding of every input file ("" = UTF-8).
	Charset string
	// Warn receives one "Warning: <path> not found" line per missing input.
	Warn io.Writer
	Log  logging.Logger
}

// NewExtractor returns an Extractor writing warnings to warn.
func NewExtractor(charset string, warn io.Writer, log logging.Logger) *Extractor {
	if warn == nil {
		warn = os.Stderr
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Extractor{Charset: charset, Warn: warn, Log: log}
}

// Extract returns the names declared in the file at path.
//
// A path that cannot be stat'ed (missing, dangling or looping symlink,
// unreachable parent) is not an error: a warning is written and the empty
// set returned. Read and decode failures of an existing path are returned
// as errors.
func (e *Extractor) Extract(path string) (Set, error) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(e.Warn, "Warning: %s not found\n", path)
		e.Log.Debug("stat failed", "path", path, "err", err)
		return make(Set), nil
	}

	// *fs.PathError already names the path.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := textutil.Decode(data, e.Charset)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	s := Scan(textutil.NormalizeLF(text))
	e.Log.Debug("scanned file", "path", path, "bytes", len(data), "names", s.Len())
	return s, nil
}

// Collect extracts every path in order and returns the union. It stops at
// the first fatal error.
func (e *Extractor) Collect(paths []string) (Set, error) {
	all := make(Set)
	for _, p := range paths {
		s, err := e.Extract(p)
		if err != nil {
			return nil, err
		}
		all.Union(s)
	}
	return all, nil
}
