// ABOUTME: Curated builtin application profiles for the Enter key family.
// ABOUTME: Scheme order reflects what each application parses natively, most preferred first.

package profile

import "github.com/mauromedda/keywire/pkg/keyseq"

// Builtin returns the curated profile table. Callers receive a fresh slice;
// the registry overlays user overrides onto it.
func Builtin() []Profile {
	return []Profile{
		{
			Name:    "claude-code",
			Aliases: []string{"claude"},
			Schemes: []keyseq.Scheme{keyseq.SchemeLiteral, keyseq.SchemeCSIU},
			Notes:   "ESC CR inserts a newline in every build; its /terminal-setup installs the same binding. CSI u is parsed once the app has enabled the kitty protocol.",
		},
		{
			Name:    "aider",
			Schemes: []keyseq.Scheme{keyseq.SchemeLiteral},
			Notes:   "prompt-toolkit input loop: ESC CR reads as Alt+Enter and inserts a newline. No CSI u parsing.",
		},
		{
			Name:    "codex",
			Schemes: []keyseq.Scheme{keyseq.SchemeLiteral},
			Notes:   "Accepts ESC CR for newline insertion.",
		},
		{
			Name:    "neovim",
			Aliases: []string{"nvim"},
			Schemes: []keyseq.Scheme{keyseq.SchemeCSIU, keyseq.SchemeModifyOtherKeys, keyseq.SchemeLiteral},
			Notes:   "Full kitty keyboard protocol since 0.9; modifyOtherKeys understood as well. <S-CR> is mappable once either arrives.",
		},
		{
			Name:    "vim",
			Schemes: []keyseq.Scheme{keyseq.SchemeModifyOtherKeys, keyseq.SchemeLiteral},
			Notes:   "modifyOtherKeys level 2 in 8.2+; stock builds do not speak the kitty protocol.",
		},
		{
			Name:    "helix",
			Aliases: []string{"hx"},
			Schemes: []keyseq.Scheme{keyseq.SchemeCSIU, keyseq.SchemeLiteral},
			Notes:   "Requests the enhanced keyboard protocol at startup; S-ret is bindable out of the box.",
		},
		{
			Name:    "kakoune",
			Aliases: []string{"kak"},
			Schemes: []keyseq.Scheme{keyseq.SchemeCSIU, keyseq.SchemeLiteral},
			Notes:   "Parses CSI u sequences for modified keys.",
		},
		{
			Name:    "emacs",
			Schemes: []keyseq.Scheme{keyseq.SchemeModifyOtherKeys, keyseq.SchemeLiteral},
			Notes:   "xterm integration decodes modifyOtherKeys; bind S-return once xterm-mouse-mode era setup runs.",
		},
		{
			Name:    "tmux",
			Schemes: []keyseq.Scheme{keyseq.SchemeCSIU, keyseq.SchemeModifyOtherKeys, keyseq.SchemeLiteral},
			Notes:   "With extended-keys on, consumes CSI u and modifyOtherKeys and can re-emit them to inner panes.",
		},
		{
			Name:    "zellij",
			Schemes: []keyseq.Scheme{keyseq.SchemeCSIU, keyseq.SchemeLiteral},
			Notes:   "Kitty protocol supported in recent releases; WriteChars bindings cover older ones.",
		},
		{
			Name:    "screen",
			Aliases: []string{"gnu-screen"},
			Schemes: []keyseq.Scheme{},
			Notes:   "Cannot represent a modified Enter on its inner ptys. Rebind at the hosting terminal or accept plain CR.",
		},
		{
			Name:    "raw",
			Aliases: []string{"cat", "passthrough"},
			Schemes: []keyseq.Scheme{keyseq.SchemeLiteral},
			Notes:   "Byte-transparent consumer; receives literal newline bytes only.",
		},
	}
}
