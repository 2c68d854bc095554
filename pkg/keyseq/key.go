// ABOUTME: Core key event model: key identities, modifier bitmasks, and chord syntax.
// ABOUTME: Events are immutable values; chords round-trip through ParseChord and Event.Chord.

package keyseq

import (
	"fmt"
	"strings"
)

// Mod is a bitmask of held modifiers. The bit layout matches the wire
// encoding used by CSI sequences, where the transmitted parameter is the
// bitmask plus one.
type Mod uint8

const (
	ModShift Mod = 1 << iota // bit 0
	ModAlt                   // bit 1
	ModCtrl                  // bit 2
)

// modTable lists modifiers in canonical chord order with both spellings.
var modTable = []struct {
	mod     Mod
	chord   string
	display string
}{
	{ModCtrl, "ctrl", "Ctrl"},
	{ModAlt, "alt", "Alt"},
	{ModShift, "shift", "Shift"},
}

// Key identifies a logical key independent of its wire encoding.
type Key int

const (
	KeyUnknown Key = iota // Unrecognized or unset
	KeyEnter              // Enter / Return
	KeyKPEnter            // Keypad Enter
)

// String returns the display name of the key.
func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeyKPEnter:
		return "KP-Enter"
	default:
		return "Unknown"
	}
}

// Event is a logical key press: a key identity plus held modifiers.
type Event struct {
	Key Key
	Mod Mod
}

// String renders the event for display, e.g. "Shift+Enter".
func (e Event) String() string {
	var parts []string
	for _, m := range modTable {
		if e.Mod&m.mod != 0 {
			parts = append(parts, m.display)
		}
	}
	parts = append(parts, e.Key.String())
	return strings.Join(parts, "+")
}

// Chord renders the event in config chord syntax, e.g. "shift+enter".
func (e Event) Chord() string {
	var parts []string
	for _, m := range modTable {
		if e.Mod&m.mod != 0 {
			parts = append(parts, m.chord)
		}
	}
	parts = append(parts, chordKeyName(e.Key))
	return strings.Join(parts, "+")
}

// chordMods maps chord modifier spellings to their bits.
var chordMods = map[string]Mod{
	"shift":   ModShift,
	"alt":     ModAlt,
	"meta":    ModAlt,
	"opt":     ModAlt,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
}

// chordKeys maps chord key spellings to their identities.
var chordKeys = map[string]Key{
	"enter":    KeyEnter,
	"return":   KeyEnter,
	"kp-enter": KeyKPEnter,
	"kpenter":  KeyKPEnter,
}

func chordKeyName(k Key) string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyKPEnter:
		return "kp-enter"
	default:
		return "unknown"
	}
}

// ParseChord parses a chord like "shift+enter" or "ctrl+alt+enter" into an
// Event. Modifier order is free; the final token must name a key.
func ParseChord(s string) (Event, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	var ev Event
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if i == len(parts)-1 {
			key, ok := chordKeys[part]
			if !ok {
				return Event{}, fmt.Errorf("unknown key %q in chord %q", part, s)
			}
			ev.Key = key
			break
		}
		mod, ok := chordMods[part]
		if !ok {
			return Event{}, fmt.Errorf("unknown modifier %q in chord %q", part, s)
		}
		ev.Mod |= mod
	}
	return ev, nil
}
