// ABOUTME: Human-readable naming for raw wire units shown in the debug viewer.
// ABOUTME: Covers Enter-family decodes, legacy CSI/SS3 keys, control bytes, and runes.

package keyseq

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// legacyNames maps common CSI and SS3 sequences to display names. These
// cover the fixed-spelling keys terminals emit outside the Enter family.
var legacyNames = map[string]string{
	// CSI sequences
	"\x1b[A":    "Up",
	"\x1b[B":    "Down",
	"\x1b[C":    "Right",
	"\x1b[D":    "Left",
	"\x1b[H":    "Home",
	"\x1b[F":    "End",
	"\x1b[2~":   "Insert",
	"\x1b[3~":   "Delete",
	"\x1b[5~":   "Page Up",
	"\x1b[6~":   "Page Down",
	"\x1b[Z":    "Shift+Tab",
	"\x1b[200~": "Paste Begin",
	"\x1b[201~": "Paste End",
	"\x1b[I":    "Focus In",
	"\x1b[O":    "Focus Out",

	// SS3 variants (application mode)
	"\x1bOA": "Up",
	"\x1bOB": "Down",
	"\x1bOC": "Right",
	"\x1bOD": "Left",
	"\x1bOH": "Home",
	"\x1bOF": "End",
	"\x1bOP": "F1",
	"\x1bOQ": "F2",
	"\x1bOR": "F3",
	"\x1bOS": "F4",
}

// Describe names a complete wire unit for display. Enter-family sequences
// use their decoded event, everything else falls back to the legacy tables,
// control byte names, or the rune itself.
func Describe(data []byte) string {
	if d, ok := Decode(data); ok {
		if d.Release {
			return d.Event.String() + " (release)"
		}
		return d.Event.String()
	}
	if name, ok := legacyNames[string(data)]; ok {
		return name
	}
	if len(data) == 1 {
		return describeByte(data[0])
	}
	if len(data) == 2 && data[0] == 0x1b {
		return "Alt+" + describeByte(data[1])
	}
	if r, size := utf8.DecodeRune(data); size == len(data) && r != utf8.RuneError && unicode.IsPrint(r) {
		return string(r)
	}
	return "Unknown"
}

func describeByte(c byte) string {
	switch {
	case c == 0x00:
		return "Ctrl+Space"
	case c == '\t':
		return "Tab"
	case c == 0x1b:
		return "Escape"
	case c == 0x7f:
		return "Backspace"
	case c < 0x1b:
		return fmt.Sprintf("Ctrl+%c", 'A'+c-1)
	case c < 0x20:
		return fmt.Sprintf("Ctrl+%c", '4'+c-0x1c)
	case c == ' ':
		return "Space"
	default:
		return string(rune(c))
	}
}
