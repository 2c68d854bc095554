// ABOUTME: Printable renderings of raw wire bytes for logs, tables, and CLI output.
// ABOUTME: EscapeBytes yields backslash escapes; HexBytes yields tmux send-keys -H hex pairs.

package keyseq

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EscapeBytes renders data with control bytes as backslash escapes, keeping
// printable text as-is. ESC renders as \e to match protocol documentation.
func EscapeBytes(data []byte) string {
	var b strings.Builder
	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case c == 0x1b:
			b.WriteString(`\e`)
			i++
		case c == '\r':
			b.WriteString(`\r`)
			i++
		case c == '\n':
			b.WriteString(`\n`)
			i++
		case c == '\t':
			b.WriteString(`\t`)
			i++
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
			i++
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			i++
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size == 1 {
				fmt.Fprintf(&b, `\x%02x`, c)
				i++
				break
			}
			b.WriteRune(r)
			i += size
		}
	}
	return b.String()
}

// HexBytes renders data as space-separated hex pairs, the argument format
// tmux send-keys -H expects.
func HexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, c := range data {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}
