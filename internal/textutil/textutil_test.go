package textutil

import (
	"errors"
	"testing"
)

func TestDecodeUTF8Strict(t *testing.T) {
	got, err := Decode([]byte("function café() {}"), "")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "function café() {}" {
		t.Fatalf("Decode = %q", got)
	}

	_, err = Decode([]byte{'f', 'n', 0xff, 0xfe}, "UTF-8")
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("Decode(invalid) err = %v, want ErrInvalidUTF8", err)
	}
}

func TestDecodeWindows1252(t *testing.T) {
	// 0xE9 is "é" in windows-1252 and invalid on its own in UTF-8.
	got, err := Decode([]byte{'c', 'l', 'a', 's', 's', ' ', 'X', 0xe9}, "windows-1252")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "class Xé" {
		t.Fatalf("Decode = %q", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no-such-charset"); err == nil {
		t.Fatalf("expected error for unknown charset")
	}
	if _, err := Lookup("utf8"); err != nil {
		t.Fatalf("Lookup(utf8): %v", err)
	}
	if _, err := Lookup("latin1"); err != nil {
		t.Fatalf("Lookup(latin1): %v", err)
	}
}

func TestNormalizeLF(t *testing.T) {
	if got := NormalizeLF("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Fatalf("NormalizeLF = %q", got)
	}
	if got := NormalizeLF("plain"); got != "plain" {
		t.Fatalf("NormalizeLF = %q", got)
	}
}
