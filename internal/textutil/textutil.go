// Package textutil turns raw file bytes into text under a named charset.
package textutil

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultCharset is used when no charset is configured.
const DefaultCharset = "utf-8"

// ErrInvalidUTF8 is returned by Decode when UTF-8 input holds an invalid byte
// sequence.
var ErrInvalidUTF8 = encoding.ErrInvalidUTF8

// Decode converts data to a string.
//
// UTF-8 (the default) is validated strictly: an invalid sequence is an error
// rather than being replaced with U+FFFD. Any other charset label known to
// the WHATWG index (windows-1252, latin1, shift_jis, ...) is decoded through
// golang.org/x/text.
func Decode(data []byte, charset string) (string, error) {
	if isUTF8(charset) {
		out, _, err := transform.Bytes(encoding.UTF8Validator, data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	enc, err := Lookup(charset)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Lookup resolves a charset label. UTF-8 labels resolve to encoding.Nop
// because Decode validates them itself.
func Lookup(charset string) (encoding.Encoding, error) {
	if isUTF8(charset) {
		return encoding.Nop, nil
	}
	enc, err := htmlindex.Get(strings.TrimSpace(charset))
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", charset)
	}
	return enc, nil
}

func isUTF8(charset string) bool {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// NormalizeLF converts CRLF and lone CR to LF.
func NormalizeLF(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	b := bytes.ReplaceAll([]byte(s), []byte("\r\n"), []byte("\n"))
	b = bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
	return string(b)
}
