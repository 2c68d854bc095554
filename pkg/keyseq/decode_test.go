// ABOUTME: Tests for wire sequence decoding covering spelling variants and rejections.
// ABOUTME: Validates lock bits, event types, alternate keys, keypad Enter, and literal forms.

package keyseq

import "testing"

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Decoded
	}{
		// Literal variants
		{name: "carriage return", data: "\r", want: Decoded{Event: Event{Key: KeyEnter}, Scheme: SchemeLiteral}},
		{name: "line feed", data: "\n", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeLiteral}},
		{name: "esc cr", data: "\x1b\r", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeLiteral}},

		// csi-u
		{name: "csi-u plain", data: "\x1b[13u", want: Decoded{Event: Event{Key: KeyEnter}, Scheme: SchemeCSIU}},
		{name: "csi-u shift", data: "\x1b[13;2u", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeCSIU}},
		{name: "csi-u alt", data: "\x1b[13;3u", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModAlt}, Scheme: SchemeCSIU}},
		{name: "csi-u ctrl+shift", data: "\x1b[13;6u", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModCtrl | ModShift}, Scheme: SchemeCSIU}},
		{name: "csi-u explicit mods 1", data: "\x1b[13;1u", want: Decoded{Event: Event{Key: KeyEnter}, Scheme: SchemeCSIU}},
		{name: "csi-u caps lock ignored", data: "\x1b[13;66u", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeCSIU}},
		{name: "csi-u num lock ignored", data: "\x1b[13;130u", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeCSIU}},
		{name: "csi-u press event", data: "\x1b[13;2:1u", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeCSIU}},
		{name: "csi-u repeat event", data: "\x1b[13;2:2u", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeCSIU}},
		{name: "csi-u release event", data: "\x1b[13;2:3u", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeCSIU, Release: true}},
		{name: "csi-u alternate key", data: "\x1b[13:57414;2u", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeCSIU}},
		{name: "csi-u text section ignored", data: "\x1b[13;2;13u", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeCSIU}},
		{name: "keypad enter", data: "\x1b[57414u", want: Decoded{Event: Event{Key: KeyKPEnter}, Scheme: SchemeCSIU}},
		{name: "keypad shift+enter", data: "\x1b[57414;2u", want: Decoded{Event: Event{Key: KeyKPEnter, Mod: ModShift}, Scheme: SchemeCSIU}},

		// modify-other-keys
		{name: "mok shift", data: "\x1b[27;2;13~", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModShift}, Scheme: SchemeModifyOtherKeys}},
		{name: "mok ctrl", data: "\x1b[27;5;13~", want: Decoded{Event: Event{Key: KeyEnter, Mod: ModCtrl}, Scheme: SchemeModifyOtherKeys}},
		{name: "mok unmodified", data: "\x1b[27;1;13~", want: Decoded{Event: Event{Key: KeyEnter}, Scheme: SchemeModifyOtherKeys}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Decode([]byte(tt.data))
			if !ok {
				t.Fatalf("Decode(%q) failed", tt.data)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestDecodeRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "plain rune", data: "a"},
		{name: "lone escape", data: "\x1b"},
		{name: "arrow key", data: "\x1b[A"},
		{name: "other codepoint", data: "\x1b[97;2u"},
		{name: "super modifier", data: "\x1b[13;10u"},
		{name: "garbage mods", data: "\x1b[13;xu"},
		{name: "garbage codepoint", data: "\x1b[x;2u"},
		{name: "mods zero", data: "\x1b[13;0u"},
		{name: "mok wrong keycode", data: "\x1b[27;2;9~"},
		{name: "mok missing sections", data: "\x1b[27~"},
		{name: "tilde not mok", data: "\x1b[5~"},
		{name: "alt rune", data: "\x1bx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got, ok := Decode([]byte(tt.data)); ok {
				t.Errorf("Decode(%q) = %+v, want no decode", tt.data, got)
			}
		})
	}
}
