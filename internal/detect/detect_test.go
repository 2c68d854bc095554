// ABOUTME: Tests for environment-based terminal, multiplexer, and background detection.
// ABOUTME: Clears the ambient environment per case and resets the detection cache.

package detect

import (
	"reflect"
	"testing"

	"github.com/mauromedda/keywire/pkg/keyseq"
)

// detectionVars covers every variable detection reads.
var detectionVars = []string{
	"KITTY_WINDOW_ID", "TERM_PROGRAM", "GHOSTTY_RESOURCES_DIR", "WEZTERM_PANE",
	"ITERM_SESSION_ID", "XTERM_VERSION", "TERM", "TMUX", "ZELLIJ", "STY",
	"BACKGROUND", "COLORFGBG",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range detectionVars {
		t.Setenv(v, "")
	}
}

func TestTerminalName(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "kitty window id", env: map[string]string{"KITTY_WINDOW_ID": "1"}, want: "kitty"},
		{name: "kitty term", env: map[string]string{"TERM": "xterm-kitty"}, want: "kitty"},
		{name: "ghostty resources", env: map[string]string{"GHOSTTY_RESOURCES_DIR": "/usr/share/ghostty"}, want: "ghostty"},
		{name: "wezterm pane", env: map[string]string{"WEZTERM_PANE": "0"}, want: "wezterm"},
		{name: "iterm session", env: map[string]string{"ITERM_SESSION_ID": "w0t0p0"}, want: "iterm2"},
		{name: "iterm term program", env: map[string]string{"TERM_PROGRAM": "iTerm.app"}, want: "iterm2"},
		{name: "apple terminal", env: map[string]string{"TERM_PROGRAM": "Apple_Terminal"}, want: "apple-terminal"},
		{name: "vscode", env: map[string]string{"TERM_PROGRAM": "vscode"}, want: "vscode"},
		{name: "real xterm", env: map[string]string{"XTERM_VERSION": "XTerm(390)", "TERM": "xterm"}, want: "xterm"},
		{name: "alacritty", env: map[string]string{"TERM": "alacritty"}, want: "alacritty"},
		{name: "foot", env: map[string]string{"TERM": "foot-extra"}, want: "foot"},
		{name: "bare xterm-256color is unknown", env: map[string]string{"TERM": "xterm-256color"}, want: ""},
		{name: "nothing set", env: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := terminalName(); got != tt.want {
				t.Errorf("terminalName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectSchemes(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMux string
		want    []keyseq.Scheme
	}{
		{
			name: "kitty host",
			env:  map[string]string{"KITTY_WINDOW_ID": "1"},
			want: []keyseq.Scheme{keyseq.SchemeCSIU, keyseq.SchemeLiteral},
		},
		{
			name: "wezterm host",
			env:  map[string]string{"WEZTERM_PANE": "0"},
			want: []keyseq.Scheme{keyseq.SchemeCSIU, keyseq.SchemeModifyOtherKeys, keyseq.SchemeLiteral},
		},
		{
			name:    "tmux masks the terminal",
			env:     map[string]string{"KITTY_WINDOW_ID": "1", "TMUX": "/tmp/tmux-1000/default,123,0"},
			wantMux: "tmux",
			want:    []keyseq.Scheme{keyseq.SchemeCSIU, keyseq.SchemeModifyOtherKeys, keyseq.SchemeLiteral},
		},
		{
			name:    "screen collapses to literal",
			env:     map[string]string{"KITTY_WINDOW_ID": "1", "STY": "1234.pts-0.host"},
			wantMux: "screen",
			want:    []keyseq.Scheme{keyseq.SchemeLiteral},
		},
		{
			name:    "zellij",
			env:     map[string]string{"ZELLIJ": "0"},
			wantMux: "zellij",
			want:    []keyseq.Scheme{keyseq.SchemeCSIU, keyseq.SchemeLiteral},
		},
		{
			name: "unknown host claims literal only",
			env:  nil,
			want: []keyseq.Scheme{keyseq.SchemeLiteral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			resetDetectCache()
			info := Detect()
			if info.Mux != tt.wantMux {
				t.Errorf("Mux = %q, want %q", info.Mux, tt.wantMux)
			}
			if !reflect.DeepEqual(info.Schemes, tt.want) {
				t.Errorf("Schemes = %v, want %v", info.Schemes, tt.want)
			}
		})
	}
}

func TestDetectCaches(t *testing.T) {
	clearEnv(t)
	t.Setenv("KITTY_WINDOW_ID", "1")
	resetDetectCache()

	first := Detect()
	t.Setenv("KITTY_WINDOW_ID", "")
	second := Detect()

	if first.Terminal != second.Terminal {
		t.Errorf("cached detection changed: %q then %q", first.Terminal, second.Terminal)
	}
	resetDetectCache()
}

func TestBackgroundPreference(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Background
	}{
		{name: "explicit light", env: map[string]string{"BACKGROUND": "light"}, want: BackgroundLight},
		{name: "explicit dark", env: map[string]string{"BACKGROUND": "dark"}, want: BackgroundDark},
		{name: "colorfgbg dark", env: map[string]string{"COLORFGBG": "15;0"}, want: BackgroundDark},
		{name: "colorfgbg light", env: map[string]string{"COLORFGBG": "0;15"}, want: BackgroundLight},
		{name: "colorfgbg three fields", env: map[string]string{"COLORFGBG": "0;default;7"}, want: BackgroundLight},
		{name: "background wins over colorfgbg", env: map[string]string{"BACKGROUND": "dark", "COLORFGBG": "0;15"}, want: BackgroundDark},
		{name: "unparseable colorfgbg", env: map[string]string{"COLORFGBG": "default"}, want: BackgroundUnknown},
		{name: "nothing set", env: nil, want: BackgroundUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := BackgroundPreference(); got != tt.want {
				t.Errorf("BackgroundPreference() = %v, want %v", got, tt.want)
			}
		})
	}
}
