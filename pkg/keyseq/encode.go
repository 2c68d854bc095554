// ABOUTME: The escape-sequence registry: maps (scheme, event) pairs to exact wire bytes.
// ABOUTME: Each scheme defines encodings only for the combinations its wire format can express.

package keyseq

import (
	"errors"
	"fmt"
)

// ErrUnsupportedCombination reports that a scheme defines no encoding for a
// key/modifier pair. The caller decides whether to try another scheme.
var ErrUnsupportedCombination = errors.New("unsupported key/modifier combination")

// kpEnterCodepoint is the CSI u functional codepoint for keypad Enter.
const kpEnterCodepoint = 57414

// Encode returns the exact bytes that encode event under scheme.
//
// Wire formats:
//
//	csi-u:             ESC [ <codepoint> [; <mods+1>] u
//	modify-other-keys: ESC [ 27 ; <mods+1> ; 13 ~
//	literal:           CR for Enter, ESC CR for Shift+Enter
func Encode(scheme Scheme, ev Event) ([]byte, error) {
	switch scheme {
	case SchemeCSIU:
		return encodeCSIU(ev)
	case SchemeModifyOtherKeys:
		return encodeModifyOtherKeys(ev)
	case SchemeLiteral:
		return encodeLiteral(ev)
	default:
		return nil, fmt.Errorf("%v: %w", scheme, ErrUnsupportedCombination)
	}
}

// encodeCSIU emits the kitty keyboard protocol form. The modifier parameter
// is omitted for an unmodified key, matching what terminals transmit.
func encodeCSIU(ev Event) ([]byte, error) {
	var cp int
	switch ev.Key {
	case KeyEnter:
		cp = 13
	case KeyKPEnter:
		cp = kpEnterCodepoint
	default:
		return nil, fmt.Errorf("csi-u cannot encode %v: %w", ev, ErrUnsupportedCombination)
	}
	if ev.Mod == 0 {
		return fmt.Appendf(nil, "\x1b[%du", cp), nil
	}
	return fmt.Appendf(nil, "\x1b[%d;%du", cp, int(ev.Mod)+1), nil
}

// encodeModifyOtherKeys emits the xterm CSI 27 form. xterm only reports
// modified keys this way, so an empty modifier set has no encoding.
func encodeModifyOtherKeys(ev Event) ([]byte, error) {
	if ev.Key != KeyEnter || ev.Mod == 0 {
		return nil, fmt.Errorf("modify-other-keys cannot encode %v: %w", ev, ErrUnsupportedCombination)
	}
	return fmt.Appendf(nil, "\x1b[27;%d;13~", int(ev.Mod)+1), nil
}

// encodeLiteral emits plain newline bytes. ESC CR can disambiguate exactly
// one modified state, so only Enter and Shift+Enter are encodable.
func encodeLiteral(ev Event) ([]byte, error) {
	if ev.Key != KeyEnter {
		return nil, fmt.Errorf("literal cannot encode %v: %w", ev, ErrUnsupportedCombination)
	}
	switch ev.Mod {
	case 0:
		return []byte{'\r'}, nil
	case ModShift:
		return []byte{0x1b, '\r'}, nil
	default:
		return nil, fmt.Errorf("literal cannot encode %v: %w", ev, ErrUnsupportedCombination)
	}
}
