// ABOUTME: Terminal background preference from environment hints only.
// ABOUTME: Reads BACKGROUND and COLORFGBG; never sends OSC queries, which race raw-mode readers.

package detect

import (
	"os"
	"strconv"
	"strings"
)

// Background is the terminal background preference.
type Background int

const (
	BackgroundUnknown Background = iota
	BackgroundDark
	BackgroundLight
)

// String returns the preference name.
func (b Background) String() string {
	switch b {
	case BackgroundDark:
		return "dark"
	case BackgroundLight:
		return "light"
	default:
		return "unknown"
	}
}

// BackgroundPreference resolves the background from BACKGROUND (explicit
// user intent) and COLORFGBG (set by rxvt, konsole, and friends).
func BackgroundPreference() Background {
	switch strings.ToLower(os.Getenv("BACKGROUND")) {
	case "light":
		return BackgroundLight
	case "dark":
		return BackgroundDark
	}

	// COLORFGBG is "fg;bg" or "fg;default;bg". Background colors 0-6 and 8
	// are dark; 7 and 9-15 are light.
	if v := os.Getenv("COLORFGBG"); v != "" {
		parts := strings.Split(v, ";")
		bg := parts[len(parts)-1]
		if n, err := strconv.Atoi(bg); err == nil {
			if n == 7 || n >= 9 {
				return BackgroundLight
			}
			return BackgroundDark
		}
	}
	return BackgroundUnknown
}
