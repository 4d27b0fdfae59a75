package cli

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/term"
)

// TerminalError reports a failure to read or apply the terminal device
// configuration.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string { return fmt.Sprintf("terminal %s: %v", e.Op, e.Err) }

func (e *TerminalError) Unwrap() error { return e.Err }

// ErrSessionActive is returned by EnterRaw while another session is open.
var ErrSessionActive = errors.New("a terminal session is already active")

// sessionActive is set from EnterRaw until the session's Leave.
var sessionActive atomic.Bool

// Terminal is one raw-mode session on a terminal device. The configuration
// captured by EnterRaw is restored at most once, by the first Leave call.
type Terminal struct {
	fd       int
	original *term.State

	once     sync.Once
	leaveErr error
}

// EnterRaw captures the configuration of fd and switches it to raw mode: no
// echo, no line buffering, no signal characters, 8-bit clean. Only one session
// may be open at a time.
func EnterRaw(fd int) (*Terminal, error) {
	if !sessionActive.CompareAndSwap(false, true) {
		return nil, &TerminalError{Op: "enter", Err: ErrSessionActive}
	}
	if !term.IsTerminal(fd) {
		sessionActive.Store(false)
		return nil, &TerminalError{Op: "get state", Err: fmt.Errorf("fd %d is not a terminal", fd)}
	}
	st, err := term.MakeRaw(fd)
	if err != nil {
		sessionActive.Store(false)
		return nil, &TerminalError{Op: "make raw", Err: err}
	}
	return &Terminal{fd: fd, original: st}, nil
}

// EnterRawStdin is EnterRaw on the process's standard input.
func EnterRawStdin() (*Terminal, error) { return EnterRaw(int(os.Stdin.Fd())) }

// Leave restores the captured configuration. Later calls return the result of
// the first one without touching the device again. The session is closed even
// when the restore fails.
func (t *Terminal) Leave() error {
	if t == nil {
		return nil
	}
	t.once.Do(func() {
		if err := term.Restore(t.fd, t.original); err != nil {
			t.leaveErr = &TerminalError{Op: "restore", Err: err}
		}
		sessionActive.Store(false)
	})
	return t.leaveErr
}

// Width reports the column count of the terminal, or 80 when unknown.
func (t *Terminal) Width() int {
	if t == nil {
		return 80
	}
	w, _, err := term.GetSize(t.fd)
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
