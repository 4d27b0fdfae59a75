package cli

import "testing"

func TestDecode_Transitions(t *testing.T) {
	cases := []struct {
		name  string
		state DecodeState
		in    byte
		next  DecodeState
		act   Action
	}{
		{"printable", StateNormal, 'a', StateNormal, ActInsert},
		{"space", StateNormal, ' ', StateNormal, ActInsert},
		{"tilde", StateNormal, '~', StateNormal, ActInsert},
		{"ctrl-c", StateNormal, 0x03, StateNormal, ActCancel},
		{"ctrl-d", StateNormal, 0x04, StateNormal, ActEOF},
		{"cr", StateNormal, '\r', StateNormal, ActSubmit},
		{"lf", StateNormal, '\n', StateNormal, ActSubmit},
		{"del", StateNormal, 127, StateNormal, ActBackspace},
		{"bs", StateNormal, 8, StateNormal, ActBackspace},
		{"tab", StateNormal, '\t', StateNormal, ActComplete},
		{"esc", StateNormal, 0x1b, StateAwaitEscape1, ActNone},
		{"other control", StateNormal, 0x01, StateNormal, ActNone},
		{"high byte", StateNormal, 0xc3, StateNormal, ActNone},
		{"csi", StateAwaitEscape1, '[', StateAwaitEscape2, ActNone},
		{"not csi", StateAwaitEscape1, 'O', StateNormal, ActNone},
		{"up", StateAwaitEscape2, 'A', StateNormal, ActHistoryOlder},
		{"down", StateAwaitEscape2, 'B', StateNormal, ActHistoryNewer},
		{"right", StateAwaitEscape2, 'C', StateNormal, ActCursorRight},
		{"left", StateAwaitEscape2, 'D', StateNormal, ActCursorLeft},
		{"unsupported csi", StateAwaitEscape2, 'Z', StateNormal, ActNone},
		{"ctrl-c after esc", StateAwaitEscape1, 0x03, StateNormal, ActCancel},
		{"ctrl-c inside csi", StateAwaitEscape2, 0x03, StateNormal, ActCancel},
	}
	for _, tc := range cases {
		next, act := Decode(tc.state, tc.in)
		if next != tc.next || act != tc.act {
			t.Fatalf("%s: got (%v, %v) want (%v, %v)", tc.name, next, act, tc.next, tc.act)
		}
	}
}

func TestDecode_IsTotal(t *testing.T) {
	for _, s := range []DecodeState{StateNormal, StateAwaitEscape1, StateAwaitEscape2} {
		for b := 0; b < 256; b++ {
			next, _ := Decode(s, byte(b))
			if next < StateNormal || next > StateAwaitEscape2 {
				t.Fatalf("state %v byte %d: invalid next state %v", s, b, next)
			}
		}
	}
}

func TestDecode_ArrowSequence(t *testing.T) {
	s := StateNormal
	var acts []Action
	for _, b := range []byte{0x1b, '[', 'A', 'x'} {
		var a Action
		s, a = Decode(s, b)
		acts = append(acts, a)
	}
	want := []Action{ActNone, ActNone, ActHistoryOlder, ActInsert}
	for i := range want {
		if acts[i] != want[i] {
			t.Fatalf("step %d: got %v want %v", i, acts[i], want[i])
		}
	}
}
