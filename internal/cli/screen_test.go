package cli

import (
	"strings"
	"testing"
)

// screen is a minimal reference terminal: it understands printable bytes,
// '\b', '\r', '\n' and ignores bells and CSI sequences.
type screen struct {
	lines [][]byte
	row   int
	col   int
	esc   int // 0 none, 1 after ESC, 2 inside CSI
}

func newScreen() *screen { return &screen{lines: [][]byte{nil}} }

func (s *screen) Write(p []byte) (int, error) {
	for _, ch := range p {
		switch s.esc {
		case 1:
			if ch == '[' {
				s.esc = 2
			} else {
				s.esc = 0
			}
			continue
		case 2:
			if ch >= 0x40 && ch <= 0x7e {
				s.esc = 0
			}
			continue
		}
		switch {
		case ch == 0x1b:
			s.esc = 1
		case ch == '\b':
			if s.col > 0 {
				s.col--
			}
		case ch == '\r':
			s.col = 0
		case ch == '\n':
			s.row++
			if s.row == len(s.lines) {
				s.lines = append(s.lines, nil)
			}
		case ch >= 32 && ch < 127:
			line := s.lines[s.row]
			for len(line) <= s.col {
				line = append(line, ' ')
			}
			line[s.col] = ch
			s.lines[s.row] = line
			s.col++
		}
	}
	return len(p), nil
}

// current is the text of the cursor row.
func (s *screen) current() string { return string(s.lines[s.row]) }

func (s *screen) text() string {
	out := make([]string, len(s.lines))
	for i, l := range s.lines {
		out[i] = string(l)
	}
	return strings.Join(out, "\n")
}

// requireShows fails unless the cursor row reads prefix+b's content followed
// only by blanks, and the cursor sits on b's logical cursor.
func requireShows(t *testing.T, s *screen, prefix string, b *Buffer) {
	t.Helper()
	want := prefix + b.String()
	got := s.current()
	if !strings.HasPrefix(got, want) || strings.TrimRight(got[len(want):], " ") != "" {
		t.Fatalf("screen shows %q, buffer is %q", got, want)
	}
	if s.col != len(prefix)+b.Cursor() {
		t.Fatalf("screen cursor at %d, buffer cursor at %d", s.col, len(prefix)+b.Cursor())
	}
}
