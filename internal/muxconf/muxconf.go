// ABOUTME: Multiplexer binding generation for forwarding Shift+Enter to an application.
// ABOUTME: Prints declarative snippets; never installs or edits the user's configuration.

package muxconf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/keywire/internal/emit"
	"github.com/mauromedda/keywire/internal/profile"
	"github.com/mauromedda/keywire/pkg/keyseq"
)

// ErrUnsupportedMux reports a multiplexer the generator has no template for.
var ErrUnsupportedMux = errors.New("unsupported multiplexer")

// Muxes lists the multiplexers the generator knows, in display order.
var Muxes = []string{"tmux", "zellij", "screen"}

// Snippet is a ready-to-paste multiplexer configuration fragment.
type Snippet struct {
	Mux    string
	App    string
	Scheme keyseq.Scheme // scheme the binding delivers; zero for refusals
	Text   string
}

// For builds the binding that makes mux deliver Shift+Enter to app in the
// encoding the app prefers. screen gets a documented refusal rather than a
// fabricated binding.
func For(mux string, p *profile.Profile) (Snippet, error) {
	if mux == "screen" {
		return Snippet{Mux: mux, App: p.Name, Text: screenSnippet(p)}, nil
	}

	em, err := emit.Resolve(p, keyseq.Event{Key: keyseq.KeyEnter, Mod: keyseq.ModShift})
	if err != nil {
		return Snippet{}, fmt.Errorf("bindings for %s: %w", mux, err)
	}

	switch mux {
	case "tmux":
		return Snippet{Mux: mux, App: p.Name, Scheme: em.Scheme, Text: tmuxSnippet(p, em)}, nil
	case "zellij":
		return Snippet{Mux: mux, App: p.Name, Scheme: em.Scheme, Text: zellijSnippet(p, em)}, nil
	default:
		return Snippet{}, fmt.Errorf("%w %q", ErrUnsupportedMux, mux)
	}
}

func tmuxSnippet(p *profile.Profile, em emit.Emission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# keywire: Shift+Enter -> %s for %s (%s)\n", keyseq.EscapeBytes(em.Bytes), p.Name, em.Scheme)
	b.WriteString("# Add to ~/.tmux.conf and reload with: tmux source-file ~/.tmux.conf\n")
	if em.Scheme == keyseq.SchemeCSIU {
		b.WriteString("# tmux 3.2+ can also pass extended keys through untouched:\n")
		b.WriteString("#   set -s extended-keys on\n")
		b.WriteString("#   set -as terminal-features 'xterm*:extkeys'\n")
	}
	fmt.Fprintf(&b, "bind-key -n S-Enter send-keys -H %s\n", keyseq.HexBytes(em.Bytes))
	return b.String()
}

func zellijSnippet(p *profile.Profile, em emit.Emission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// keywire: Shift+Enter -> %s for %s (%s)\n", keyseq.EscapeBytes(em.Bytes), p.Name, em.Scheme)
	b.WriteString("// Merge into the keybinds block of ~/.config/zellij/config.kdl\n")
	b.WriteString("keybinds {\n")
	b.WriteString("    shared_except \"locked\" {\n")
	fmt.Fprintf(&b, "        bind \"Shift Enter\" { Write %s; }\n", decimalBytes(em.Bytes))
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

func screenSnippet(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString("# GNU screen cannot distinguish Shift+Enter from Enter: its input layer\n")
	b.WriteString("# predates extended keyboard reporting, so both chords reach it as CR and\n")
	b.WriteString("# no bindkey stanza can recover the modifier. Bind the chord at the hosting\n")
	b.WriteString("# terminal emulator instead, or run the target under the forwarder:\n")
	fmt.Fprintf(&b, "#   keywire wrap --app %s -- %s\n", p.Name, p.Name)
	return b.String()
}

// decimalBytes renders data as space-separated decimal bytes, the argument
// format of zellij's Write action.
func decimalBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, c := range data {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return strings.Join(parts, " ")
}
