// ABOUTME: Tests for wire unit segmentation and the buffering Scanner.
// ABOUTME: Covers CSI/SS3 boundaries, partial sequences, UTF-8, and chunking invariance.

package keyseq

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		data           string
		wantN          int
		wantIncomplete bool
	}{
		{name: "empty", data: "", wantIncomplete: true},
		{name: "ascii byte", data: "a", wantN: 1},
		{name: "ascii run takes one", data: "abc", wantN: 1},
		{name: "carriage return", data: "\r", wantN: 1},
		{name: "lone escape", data: "\x1b", wantIncomplete: true},
		{name: "esc cr", data: "\x1b\rx", wantN: 2},
		{name: "alt rune", data: "\x1bq", wantN: 2},
		{name: "csi complete", data: "\x1b[A", wantN: 3},
		{name: "csi with params", data: "\x1b[13;2u", wantN: 7},
		{name: "csi partial", data: "\x1b[13;2", wantIncomplete: true},
		{name: "csi then more", data: "\x1b[13;2uXYZ", wantN: 7},
		{name: "csi private prefix", data: "\x1b[?4m", wantN: 5},
		{name: "ss3 complete", data: "\x1bOP", wantN: 3},
		{name: "ss3 partial", data: "\x1bO", wantIncomplete: true},
		{name: "utf8 rune", data: "é", wantN: 2},
		{name: "utf8 partial", data: "\xc3", wantIncomplete: true},
		{name: "invalid utf8 at max", data: "\xff123", wantN: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, incomplete := Split([]byte(tt.data))
			if incomplete != tt.wantIncomplete {
				t.Fatalf("Split(%q) incomplete = %v, want %v", tt.data, incomplete, tt.wantIncomplete)
			}
			if !incomplete && n != tt.wantN {
				t.Errorf("Split(%q) = %d, want %d", tt.data, n, tt.wantN)
			}
		})
	}
}

func scanAll(s *Scanner) []string {
	var units []string
	for {
		unit, ok := s.Next()
		if !ok {
			return units
		}
		units = append(units, string(unit))
	}
}

func TestScannerSegments(t *testing.T) {
	t.Parallel()

	input := "hi\x1b[13;2u\r\x1b[27;2;13~\x1b\ré"
	want := []string{"h", "i", "\x1b[13;2u", "\r", "\x1b[27;2;13~", "\x1b\r", "é"}

	var s Scanner
	s.Write([]byte(input))
	if got := scanAll(&s); !reflect.DeepEqual(got, want) {
		t.Errorf("units = %q, want %q", got, want)
	}
	if s.Pending() {
		t.Error("scanner has leftover bytes")
	}
}

// Feeding one byte at a time must produce the same units as feeding the
// whole input at once.
func TestScannerChunkingInvariance(t *testing.T) {
	t.Parallel()

	input := []byte("a\x1b[13;2u\x1bOPé\x1b[200~pasted\r\x1b[201~\x1b\r")

	var whole Scanner
	whole.Write(input)
	want := scanAll(&whole)

	var bytewise Scanner
	var got []string
	for _, b := range input {
		bytewise.Write([]byte{b})
		got = append(got, scanAll(&bytewise)...)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("bytewise units = %q, want %q", got, want)
	}
}

func TestScannerFlush(t *testing.T) {
	t.Parallel()

	var s Scanner
	s.Write([]byte("\x1b[13;2"))

	if _, ok := s.Next(); ok {
		t.Fatal("Next returned a unit for a partial sequence")
	}
	if !s.Pending() {
		t.Fatal("Pending = false with buffered bytes")
	}
	if got := s.Flush(); string(got) != "\x1b[13;2" {
		t.Errorf("Flush = %q, want %q", got, "\x1b[13;2")
	}
	if s.Pending() {
		t.Error("Pending = true after Flush")
	}
	if got := s.Flush(); got != nil {
		t.Errorf("second Flush = %q, want nil", got)
	}
}
