package cli

// Key bytes recognised by the decoder.
const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyBS        = 0x08
	keyTab       = 0x09
	keyLF        = 0x0a
	keyCR        = 0x0d
	keyEscape    = 0x1b
	keyBackspace = 0x7f
)

// DecodeState is the position of the decoder inside an escape sequence.
type DecodeState int

const (
	StateNormal DecodeState = iota
	StateAwaitEscape1
	StateAwaitEscape2
)

// Action is what a byte asks the line editor to do.
type Action int

const (
	ActNone Action = iota
	ActInsert
	ActBackspace
	ActSubmit
	ActCancel
	ActEOF
	ActComplete
	ActHistoryOlder
	ActHistoryNewer
	ActCursorLeft
	ActCursorRight
)

func (a Action) String() string {
	switch a {
	case ActInsert:
		return "insert"
	case ActBackspace:
		return "backspace"
	case ActSubmit:
		return "submit"
	case ActCancel:
		return "cancel"
	case ActEOF:
		return "eof"
	case ActComplete:
		return "complete"
	case ActHistoryOlder:
		return "history-older"
	case ActHistoryNewer:
		return "history-newer"
	case ActCursorLeft:
		return "cursor-left"
	case ActCursorRight:
		return "cursor-right"
	default:
		return "none"
	}
}

// Decode is the transition function of the input state machine. It is total:
// every byte in every state yields a next state and an action. Unsupported or
// malformed escape sequences decay to ActNone and StateNormal. Ctrl-C cancels
// from any state, abandoning a partial sequence.
func Decode(s DecodeState, b byte) (DecodeState, Action) {
	if b == keyCtrlC {
		return StateNormal, ActCancel
	}
	switch s {
	case StateAwaitEscape1:
		if b == '[' {
			return StateAwaitEscape2, ActNone
		}
		return StateNormal, ActNone
	case StateAwaitEscape2:
		switch b {
		case 'A':
			return StateNormal, ActHistoryOlder
		case 'B':
			return StateNormal, ActHistoryNewer
		case 'C':
			return StateNormal, ActCursorRight
		case 'D':
			return StateNormal, ActCursorLeft
		}
		return StateNormal, ActNone
	}

	switch b {
	case keyCtrlD:
		return StateNormal, ActEOF
	case keyCR, keyLF:
		return StateNormal, ActSubmit
	case keyBackspace, keyBS:
		return StateNormal, ActBackspace
	case keyTab:
		return StateNormal, ActComplete
	case keyEscape:
		return StateAwaitEscape1, ActNone
	}
	if b >= 32 && b <= 126 {
		return StateNormal, ActInsert
	}
	return StateNormal, ActNone
}
