package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/flowave-io/webwasp/internal/command"
	"github.com/flowave-io/webwasp/pkg/log"
)

// ErrInterrupt is returned by ReadLine when the user presses Ctrl-C.
var ErrInterrupt = errors.New("interrupted")

// Completer answers completion queries for a tokenized partial line. A single
// match replaces the last token; with no tokens it becomes the whole line.
type Completer interface {
	Complete(tokens []string) []string
}

// Dispatcher consumes finished lines.
type Dispatcher interface {
	Dispatch(ctx context.Context, line string) (command.Status, error)
}

type Options struct {
	In  io.Reader
	Out io.Writer

	Prompt         string
	Banner         string
	BufferCapacity int
	// History is used when set; otherwise one of HistoryMax entries is made.
	History    *History
	HistoryMax int

	Completer  Completer
	Dispatcher Dispatcher

	// Terminal, when set, is released by Close.
	Terminal *Terminal
	// Width reports the terminal width for match listings. Defaults to 80.
	Width func() int
}

// Console owns one line editor session: the terminal, the edit buffer, the
// history and the completion source.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
	banner string
	width  func() int

	buf    *Buffer
	hist   *History
	recall recall

	completer  Completer
	dispatcher Dispatcher

	term     *Terminal
	closers  []func() error
	once     sync.Once
	closeErr error

	mu      sync.Mutex
	notices []string
}

func NewConsole(opts Options) (*Console, error) {
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("console needs both input and output")
	}
	hist := opts.History
	if hist == nil {
		n := opts.HistoryMax
		if n == 0 {
			n = DefaultHistoryMax
		}
		h, err := NewHistory(n)
		if err != nil {
			return nil, err
		}
		hist = h
	}
	width := opts.Width
	if width == nil {
		width = opts.Terminal.Width
	}
	c := &Console{
		in:         bufio.NewReaderSize(opts.In, 64),
		out:        opts.Out,
		prompt:     opts.Prompt,
		banner:     opts.Banner,
		width:      width,
		buf:        NewBuffer(opts.BufferCapacity, opts.Out),
		hist:       hist,
		completer:  opts.Completer,
		dispatcher: opts.Dispatcher,
		term:       opts.Terminal,
	}
	c.recall = newRecall(hist)
	return c, nil
}

func (c *Console) History() *History { return c.hist }

// OnClose registers fn to run during Close, after the terminal is restored.
func (c *Console) OnClose(fn func() error) { c.closers = append(c.closers, fn) }

// Notify queues a message for display. Other goroutines must not write to the
// terminal while a line is edited, so notices are printed by Run before the
// next prompt.
func (c *Console) Notify(msg string) {
	c.mu.Lock()
	c.notices = append(c.notices, msg)
	c.mu.Unlock()
}

func (c *Console) flushNotices() {
	c.mu.Lock()
	pending := c.notices
	c.notices = nil
	c.mu.Unlock()
	for _, msg := range pending {
		c.write(msg + "\r\n")
	}
}

// Close restores the terminal and runs the OnClose hooks. Only the first call
// does any work.
func (c *Console) Close() error {
	c.once.Do(func() {
		var result *multierror.Error
		if err := c.term.Leave(); err != nil {
			result = multierror.Append(result, err)
		}
		for _, fn := range c.closers {
			if err := fn(); err != nil {
				result = multierror.Append(result, err)
			}
		}
		c.closeErr = result.ErrorOrNil()
	})
	return c.closeErr
}

// Run reads and dispatches lines until the user quits, cancels, input ends or
// ctx is done. Cancel and end of input are not errors.
func (c *Console) Run(ctx context.Context) error {
	if c.banner != "" {
		c.write(c.banner)
	}
	for {
		if ctx.Err() != nil {
			return nil
		}
		c.flushNotices()
		c.write(c.prompt)
		line, err := c.ReadLine()
		c.write("\r\n")
		switch {
		case errors.Is(err, ErrInterrupt):
			log.Debug("console: interrupted")
			return nil
		case errors.Is(err, io.EOF):
			log.Debug("console: end of input")
			return nil
		case err != nil:
			return err
		}

		c.hist.Push(line)
		if c.dispatcher == nil {
			continue
		}
		st, err := c.dispatcher.Dispatch(ctx, line)
		if err != nil {
			return fmt.Errorf("dispatch %q: %w", line, err)
		}
		if st == command.StatusQuit {
			return nil
		}
	}
}

// ReadLine edits one line and returns it on Enter. Ctrl-C yields
// ErrInterrupt; Ctrl-D on an empty line and any read failure yield io.EOF.
func (c *Console) ReadLine() (string, error) {
	c.buf.Reset()
	c.recall = newRecall(c.hist)
	state := StateNormal
	for {
		b, err := c.in.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug("console: read:", err)
			}
			return "", io.EOF
		}
		var act Action
		state, act = Decode(state, b)
		switch act {
		case ActInsert:
			if err := c.buf.Insert(b); err != nil {
				c.bell()
				continue
			}
			c.recall.edited()
		case ActBackspace:
			if c.buf.DeleteBeforeCursor() {
				c.recall.edited()
			}
		case ActCursorLeft:
			c.buf.MoveCursor(-1)
		case ActCursorRight:
			c.buf.MoveCursor(1)
		case ActHistoryOlder:
			if line, ok := c.recall.older(c.buf.String()); ok {
				c.buf.ReplaceAll(line)
			}
		case ActHistoryNewer:
			if line, ok := c.recall.newer(); ok {
				c.buf.ReplaceAll(line)
			}
		case ActComplete:
			c.complete()
		case ActSubmit:
			return c.buf.String(), nil
		case ActCancel:
			c.write("^C")
			return "", ErrInterrupt
		case ActEOF:
			if c.buf.Len() == 0 {
				return "", io.EOF
			}
		}
	}
}

// complete applies one Tab press: no match rings the bell, one match replaces
// the last token and adds a space, several matches are listed below the line.
func (c *Console) complete() {
	if c.completer == nil {
		c.bell()
		return
	}
	tokens := command.Tokens(c.buf.String())
	matches := c.completer.Complete(tokens)
	switch len(matches) {
	case 0:
		c.bell()
	case 1:
		var head string
		if len(tokens) > 1 {
			head = strings.Join(tokens[:len(tokens)-1], " ") + " "
		}
		c.buf.ReplaceAll(head + matches[0] + " ")
		c.recall.edited()
	default:
		c.listMatches(matches)
	}
}

// listMatches prints matches in columns under the line, then redraws the
// prompt and line with the cursor where it was.
func (c *Console) listMatches(matches []string) {
	w := c.width()
	if w <= 0 {
		w = 80
	}
	maxLen := 0
	for _, s := range matches {
		if l := len(s); l > maxLen {
			maxLen = l
		}
	}
	colW := maxLen + 2
	cols := w / colW
	if cols < 1 {
		cols = 1
	}
	var sb strings.Builder
	sb.WriteString("\r\n")
	for i, s := range matches {
		sb.WriteString(s)
		last := i == len(matches)-1
		if (i+1)%cols == 0 || last {
			sb.WriteString("\r\n")
		} else {
			sb.WriteString(strings.Repeat(" ", colW-len(s)))
		}
	}
	sb.WriteString(c.prompt)
	sb.WriteString(c.buf.String()[:c.buf.Cursor()])
	c.write(sb.String())
	c.buf.Redraw()
}

func (c *Console) bell() { c.write("\a") }

func (c *Console) write(s string) {
	if s == "" {
		return
	}
	_, _ = io.WriteString(c.out, s)
}
