// ABOUTME: Inverse of the registry: maps complete wire sequences back to key events.
// ABOUTME: Accepts variants the registry never emits: LF, lock bits, keypad Enter, CSI u event types.

package keyseq

import "strconv"

// Wire modifier bits beyond Mod's range that CSI encodings may carry.
// Lock state is discarded on decode; the others reject the sequence.
const (
	wireCapsLock = 64
	wireNumLock  = 128
	wireLockMask = wireCapsLock | wireNumLock
)

// Decoded is the result of reversing a wire sequence back to its event.
type Decoded struct {
	Event   Event
	Scheme  Scheme
	Release bool // CSI u event type 3
}

// Decode maps a complete Enter-family wire sequence back to the event it
// encodes. It is the inverse of Encode and additionally accepts spellings
// the registry never produces: the LF literal (the conventional deliberate
// newline, since terminals transmit CR for a plain Enter press), keypad
// Enter, alternate-key subparameters, lock modifier bits, and CSI u event
// types (releases are flagged, not dropped). Anything it cannot attribute
// to an Enter-family event reports ok=false; it never guesses.
func Decode(data []byte) (Decoded, bool) {
	switch {
	case len(data) == 0:
		return Decoded{}, false
	case len(data) == 1 && data[0] == '\r':
		return Decoded{Event: Event{Key: KeyEnter}, Scheme: SchemeLiteral}, true
	case len(data) == 1 && data[0] == '\n':
		return Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeLiteral}, true
	case len(data) == 2 && data[0] == 0x1b && data[1] == '\r':
		return Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeLiteral}, true
	}

	if len(data) >= 4 && data[0] == 0x1b && data[1] == '[' {
		body := string(data[2 : len(data)-1])
		switch data[len(data)-1] {
		case 'u':
			return decodeCSIU(body)
		case '~':
			return decodeModifyOtherKeys(body)
		}
	}
	return Decoded{}, false
}

// decodeCSIU handles ESC [ <codepoint>[:<shifted>[:<base>]] [; <mods>[:<event>] [; <text>]] u.
func decodeCSIU(body string) (Decoded, bool) {
	cpPart, rest := splitOnSemicolon(body)
	modPart, _ := splitOnSemicolon(rest) // trailing text-as-codepoints section is ignored

	primary, _ := splitOnColon(cpPart)
	cp, err := strconv.Atoi(primary)
	if err != nil {
		return Decoded{}, false
	}

	var key Key
	switch cp {
	case 13:
		key = KeyEnter
	case kpEnterCodepoint:
		key = KeyKPEnter
	default:
		return Decoded{}, false
	}

	mod, release, ok := decodeWireMods(modPart)
	if !ok {
		return Decoded{}, false
	}
	return Decoded{Event: Event{Key: key, Mod: mod}, Scheme: SchemeCSIU, Release: release}, true
}

// decodeModifyOtherKeys handles ESC [ 27 ; <mods> ; <keycode> ~. Only the
// Enter keycode belongs to the registry; xterm's unmodified form (mods=1)
// is accepted even though Encode never emits it.
func decodeModifyOtherKeys(body string) (Decoded, bool) {
	first, rest := splitOnSemicolon(body)
	if first != "27" || rest == "" {
		return Decoded{}, false
	}
	modPart, codePart := splitOnSemicolon(rest)
	if codePart != "13" {
		return Decoded{}, false
	}
	mod, _, ok := decodeWireMods(modPart)
	if !ok {
		return Decoded{}, false
	}
	return Decoded{Event: Event{Key: KeyEnter, Mod: mod}, Scheme: SchemeModifyOtherKeys}, true
}

// decodeWireMods parses the <modifiers>[:<event>] section of a CSI sequence.
// The wire value is the bitmask plus one. Lock bits are discarded; any other
// bit outside Mod's range rejects the sequence rather than guessing.
func decodeWireMods(s string) (mod Mod, release bool, ok bool) {
	if s == "" {
		return 0, false, true
	}
	modStr, eventStr := splitOnColon(s)
	val, err := strconv.Atoi(modStr)
	if err != nil || val < 1 {
		return 0, false, false
	}
	bits := (val - 1) &^ wireLockMask
	if bits&^int(ModShift|ModAlt|ModCtrl) != 0 {
		return 0, false, false
	}
	if eventStr != "" {
		event, err := strconv.Atoi(eventStr)
		if err != nil {
			return 0, false, false
		}
		release = event == 3
	}
	return Mod(bits), release, true
}

// splitOnSemicolon splits a string into at most two parts on the first ';'.
func splitOnSemicolon(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

// splitOnColon splits a string into at most two parts on the first ':'.
func splitOnColon(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}
