// ABOUTME: Incremental segmentation of raw terminal byte streams into complete wire units.
// ABOUTME: Scanner buffers partial escape sequences so callers can apply lone-ESC flush timeouts.

package keyseq

import "unicode/utf8"

// Split reports the length of the first complete wire unit at the start of
// data, or incomplete=true when more bytes are needed to finish it. A unit
// is a CSI sequence (terminated by a byte in 0x40..0x7E), an SS3 sequence,
// an ESC-prefixed byte, a full UTF-8 rune, or a single byte.
//
// A lone ESC is reported incomplete: the caller decides, after a timeout,
// whether it was the Escape key or the start of a sequence still in flight.
func Split(data []byte) (n int, incomplete bool) {
	if len(data) == 0 {
		return 0, true
	}
	if data[0] != 0x1b {
		return splitRune(data)
	}
	if len(data) == 1 {
		return 0, true
	}
	switch data[1] {
	case '[':
		return splitCSI(data)
	case 'O':
		if len(data) < 3 {
			return 0, true
		}
		return 3, false
	default:
		// ESC-prefixed byte: alt chords and the ESC CR literal.
		return 2, false
	}
}

func splitCSI(data []byte) (int, bool) {
	for i := 2; i < len(data); i++ {
		if data[i] >= 0x40 && data[i] <= 0x7e {
			return i + 1, false
		}
	}
	return 0, true
}

func splitRune(data []byte) (int, bool) {
	if data[0] < utf8.RuneSelf {
		return 1, false
	}
	if !utf8.FullRune(data) && len(data) < utf8.UTFMax {
		return 0, true
	}
	_, size := utf8.DecodeRune(data)
	return size, false
}

// Scanner accumulates raw bytes and yields complete wire units in order.
// The zero value is ready to use.
type Scanner struct {
	buf []byte
}

// Write feeds raw bytes into the scanner. It never fails; the signature
// exists so the scanner can sit behind an io.Writer boundary.
func (s *Scanner) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

// Next returns the next complete unit, or ok=false when the buffered bytes
// do not yet form one.
func (s *Scanner) Next() ([]byte, bool) {
	n, incomplete := Split(s.buf)
	if incomplete || n == 0 {
		return nil, false
	}
	unit := make([]byte, n)
	copy(unit, s.buf)
	s.buf = s.buf[n:]
	return unit, true
}

// Pending reports whether bytes are buffered awaiting completion.
func (s *Scanner) Pending() bool { return len(s.buf) > 0 }

// Flush returns and clears whatever is buffered, complete or not. Used on
// EOF and when the lone-ESC timeout expires.
func (s *Scanner) Flush() []byte {
	if len(s.buf) == 0 {
		return nil
	}
	out := s.buf
	s.buf = nil
	return out
}
