// ABOUTME: Passive detection of the hosting terminal and multiplexer from environment hints.
// ABOUTME: Caches the result via sync.Once; never writes to the terminal (see query.go for probes).

package detect

import (
	"os"
	"strings"
	"sync"

	"github.com/mauromedda/keywire/pkg/keyseq"
)

// Info describes the hosting terminal stack as seen from the environment.
type Info struct {
	Terminal   string          // terminal emulator name, "" when unknown
	Mux        string          // multiplexer in front: "tmux", "zellij", "screen", or ""
	Schemes    []keyseq.Scheme // encodings the immediate host can deliver to an application
	Background Background      // light/dark preference hint
}

var (
	detectOnce sync.Once
	cachedInfo Info
)

// Detect probes environment variables and returns the hosting terminal
// info. The result is cached after the first call.
func Detect() Info {
	detectOnce.Do(func() {
		cachedInfo = detect()
	})
	return cachedInfo
}

// resetDetectCache clears the cached result so the next Detect call
// re-probes. Used only in tests.
func resetDetectCache() {
	detectOnce = sync.Once{}
	cachedInfo = Info{}
}

func detect() Info {
	info := Info{
		Terminal:   terminalName(),
		Mux:        muxName(),
		Background: BackgroundPreference(),
	}
	info.Schemes = hostSchemes(info)
	return info
}

// terminalName identifies the emulator from its environment markers.
// Specific markers win over TERM, which multiplexers and SSH rewrite.
func terminalName() string {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return "kitty"
	}

	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	switch {
	case termProgram == "kitty":
		return "kitty"
	case os.Getenv("GHOSTTY_RESOURCES_DIR") != "" || termProgram == "ghostty":
		return "ghostty"
	case os.Getenv("WEZTERM_PANE") != "" || termProgram == "wezterm":
		return "wezterm"
	case os.Getenv("ITERM_SESSION_ID") != "" || termProgram == "iterm.app":
		return "iterm2"
	case termProgram == "apple_terminal":
		return "apple-terminal"
	case termProgram == "vscode":
		return "vscode"
	}

	if os.Getenv("XTERM_VERSION") != "" {
		return "xterm"
	}

	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case strings.HasPrefix(term, "xterm-kitty"):
		return "kitty"
	case term == "alacritty":
		return "alacritty"
	case strings.HasPrefix(term, "foot"):
		return "foot"
	case strings.HasPrefix(term, "rio"):
		return "rio"
	}
	return ""
}

// muxName identifies the innermost multiplexer, which masks the terminal.
func muxName() string {
	switch {
	case os.Getenv("TMUX") != "":
		return "tmux"
	case os.Getenv("ZELLIJ") != "":
		return "zellij"
	case os.Getenv("STY") != "":
		return "screen"
	}
	return ""
}

// terminalSchemes lists what each known emulator can transmit for the
// Enter family, most capable first.
var terminalSchemes = map[string][]keyseq.Scheme{
	"kitty":          {keyseq.SchemeCSIU, keyseq.SchemeLiteral},
	"ghostty":        {keyseq.SchemeCSIU, keyseq.SchemeLiteral},
	"wezterm":        {keyseq.SchemeCSIU, keyseq.SchemeModifyOtherKeys, keyseq.SchemeLiteral},
	"iterm2":         {keyseq.SchemeCSIU, keyseq.SchemeLiteral},
	"alacritty":      {keyseq.SchemeCSIU, keyseq.SchemeLiteral},
	"foot":           {keyseq.SchemeCSIU, keyseq.SchemeLiteral},
	"rio":            {keyseq.SchemeCSIU, keyseq.SchemeLiteral},
	"xterm":          {keyseq.SchemeModifyOtherKeys, keyseq.SchemeLiteral},
	"vscode":         {keyseq.SchemeLiteral},
	"apple-terminal": {keyseq.SchemeLiteral},
}

// muxSchemes lists what a multiplexer can deliver to its inner panes.
// Bindings synthesize the bytes, so the outer terminal does not matter.
var muxSchemes = map[string][]keyseq.Scheme{
	"tmux":   {keyseq.SchemeCSIU, keyseq.SchemeModifyOtherKeys, keyseq.SchemeLiteral},
	"zellij": {keyseq.SchemeCSIU, keyseq.SchemeLiteral},
	"screen": {keyseq.SchemeLiteral},
}

// hostSchemes resolves the scheme claims for the immediate host. A
// multiplexer, when present, is the host an application actually talks to.
// Unknown hosts claim only the universal literal scheme.
func hostSchemes(info Info) []keyseq.Scheme {
	if info.Mux != "" {
		return muxSchemes[info.Mux]
	}
	if s, ok := terminalSchemes[info.Terminal]; ok {
		return s
	}
	return []keyseq.Scheme{keyseq.SchemeLiteral}
}
