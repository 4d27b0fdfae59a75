package cli

import (
	"bytes"
	"errors"
	"io"
)

// DefaultBufferCapacity is the longest command line accepted, in bytes.
const DefaultBufferCapacity = 1024

var ErrBufferFull = errors.New("edit buffer full")

// Buffer is a fixed-capacity line with a cursor. Every mutation writes the
// minimal redraw to out: the cursor is assumed to sit at the logical cursor
// column before the call and is left there after it.
//
// Invariant: 0 <= cursor <= len(buf) <= cap.
type Buffer struct {
	buf    []byte
	cap    int
	cursor int
	out    io.Writer
	scr    bytes.Buffer
}

func NewBuffer(capacity int, out io.Writer) *Buffer {
	if capacity <= 0 {
		capacity = DefaultBufferCapacity
	}
	if out == nil {
		out = io.Discard
	}
	return &Buffer{buf: make([]byte, 0, capacity), cap: capacity, out: out}
}

func (b *Buffer) Len() int       { return len(b.buf) }
func (b *Buffer) Cap() int       { return b.cap }
func (b *Buffer) Cursor() int    { return b.cursor }
func (b *Buffer) String() string { return string(b.buf) }

// Insert places ch at the cursor and advances it.
func (b *Buffer) Insert(ch byte) error {
	if len(b.buf) >= b.cap {
		return ErrBufferFull
	}
	b.buf = append(b.buf, 0)
	copy(b.buf[b.cursor+1:], b.buf[b.cursor:])
	b.buf[b.cursor] = ch
	b.cursor++

	tail := b.buf[b.cursor:]
	b.scr.WriteByte(ch)
	b.scr.Write(tail)
	b.back(len(tail))
	b.flush()
	return nil
}

// DeleteBeforeCursor removes the byte left of the cursor. It reports whether
// anything was removed.
func (b *Buffer) DeleteBeforeCursor() bool {
	if b.cursor == 0 {
		return false
	}
	copy(b.buf[b.cursor-1:], b.buf[b.cursor:])
	b.buf = b.buf[:len(b.buf)-1]
	b.cursor--

	tail := b.buf[b.cursor:]
	b.back(1)
	b.scr.Write(tail)
	b.scr.WriteByte(' ')
	b.back(len(tail) + 1)
	b.flush()
	return true
}

// MoveCursor shifts the cursor by delta, clamped to [0, Len()].
func (b *Buffer) MoveCursor(delta int) {
	to := b.cursor + delta
	if to < 0 {
		to = 0
	}
	if to > len(b.buf) {
		to = len(b.buf)
	}
	switch {
	case to < b.cursor:
		b.back(b.cursor - to)
	case to > b.cursor:
		// Rewriting the bytes moves right without relying on CSI support.
		b.scr.Write(b.buf[b.cursor:to])
	}
	b.cursor = to
	b.flush()
}

// ReplaceAll swaps the whole line for text, truncated to capacity, and puts
// the cursor at the end.
func (b *Buffer) ReplaceAll(text string) {
	if len(text) > b.cap {
		text = text[:b.cap]
	}
	old := len(b.buf)
	b.back(b.cursor)
	b.scr.Write(bytes.Repeat([]byte{' '}, old))
	b.back(old)
	b.scr.WriteString(text)

	b.buf = append(b.buf[:0], text...)
	b.cursor = len(b.buf)
	b.flush()
}

// Redraw rewrites the line in place. Calling it twice in a row leaves the
// display unchanged.
func (b *Buffer) Redraw() {
	b.back(b.cursor)
	b.scr.Write(b.buf)
	b.back(len(b.buf) - b.cursor)
	b.flush()
}

// Reset empties the line without emitting anything; the caller has already
// moved past it on screen.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.cursor = 0
}

func (b *Buffer) back(n int) {
	for i := 0; i < n; i++ {
		b.scr.WriteByte('\b')
	}
}

func (b *Buffer) flush() {
	if b.scr.Len() == 0 {
		return
	}
	_, _ = b.out.Write(b.scr.Bytes())
	b.scr.Reset()
}
