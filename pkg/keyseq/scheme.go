// ABOUTME: Encoding scheme identities for the three Enter-family wire encodings.
// ABOUTME: Scheme names round-trip through String and ParseScheme for config and CLI use.

package keyseq

import (
	"fmt"
	"strings"
)

// Scheme identifies a wire encoding a terminal or application may use for
// modified Enter keys.
type Scheme int

const (
	SchemeCSIU            Scheme = iota // kitty keyboard protocol CSI u encoding
	SchemeModifyOtherKeys               // xterm modifyOtherKeys CSI 27 ~ encoding
	SchemeLiteral                       // literal newline bytes (CR, LF, ESC CR)
)

// AllSchemes lists every scheme, most to least expressive.
var AllSchemes = []Scheme{SchemeCSIU, SchemeModifyOtherKeys, SchemeLiteral}

// String returns the canonical scheme name used in profiles and CLI flags.
func (s Scheme) String() string {
	switch s {
	case SchemeCSIU:
		return "csi-u"
	case SchemeModifyOtherKeys:
		return "modify-other-keys"
	case SchemeLiteral:
		return "literal"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// ParseScheme resolves a scheme name or one of its common aliases.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csi-u", "csiu", "kitty":
		return SchemeCSIU, nil
	case "modify-other-keys", "modifyotherkeys", "xterm":
		return SchemeModifyOtherKeys, nil
	case "literal", "newline":
		return SchemeLiteral, nil
	}
	return 0, fmt.Errorf("unknown encoding scheme %q", name)
}
