package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/flowave-io/webwasp/internal/headers"
	"github.com/flowave-io/webwasp/pkg/log"
)

// Status tells the console whether to keep reading lines.
type Status int

const (
	StatusContinue Status = iota
	StatusQuit
)

// HistoryLister is the read side of the console history.
type HistoryLister interface {
	Entries() []string
}

// FetchFunc loads a header profile from a source string.
type FetchFunc func(ctx context.Context, source string) (headers.Profile, error)

// Dispatcher executes finished console lines against the header store.
// Output is written with bare '\n'; the console wraps Out for raw terminals.
type Dispatcher struct {
	Fields  *headers.Fields
	Sender  *headers.Sender
	History HistoryLister
	Fetch   FetchFunc
	Out     io.Writer
}

type handler func(d *Dispatcher, ctx context.Context, line string, args []string) Status

var usage = map[string]string{
	"show":    "show {all | host | auth | maxforward | referer | useragent}",
	"set":     "set {host | auth | maxforward | referer | useragent} <value>",
	"clear":   "clear {all | host | auth | maxforward | referer | useragent}",
	"send":    "send [path]",
	"load":    "load <file | url | getter source>",
	"history": "history",
	"help":    "help",
	"quit":    "quit | exit",
}

var handlers = map[string]handler{
	"show":    (*Dispatcher).show,
	"set":     (*Dispatcher).set,
	"clear":   (*Dispatcher).clear,
	"send":    (*Dispatcher).send,
	"load":    (*Dispatcher).load,
	"history": (*Dispatcher).history,
	"help":    (*Dispatcher).help,
}

// Dispatch runs one line. Mistakes in the line are reported to Out and never
// end the session; only quit/exit returns StatusQuit.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) (Status, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return StatusContinue, nil
	}
	switch args[0] {
	case "quit", "exit":
		return StatusQuit, nil
	}
	h, ok := handlers[args[0]]
	if !ok {
		fmt.Fprintf(d.Out, "Unrecognized command: '%s'\n", args[0])
		return StatusContinue, nil
	}
	return h(d, ctx, line, args), nil
}

func (d *Dispatcher) syntax(cmd string) Status {
	fmt.Fprintf(d.Out, "[?] Incorrect syntax for command: '%s'\n", cmd)
	fmt.Fprintf(d.Out, "[?] Usage: %s\n", usage[cmd])
	return StatusContinue
}

func (d *Dispatcher) show(_ context.Context, _ string, args []string) Status {
	if len(args) != 2 {
		return d.syntax("show")
	}
	if args[1] == "all" {
		d.Fields.ShowAll(d.Out)
		return StatusContinue
	}
	f, ok := headers.ParseField(args[1])
	if !ok {
		fmt.Fprintf(d.Out, "[?] Invalid argument '%s'\n", args[1])
		return StatusContinue
	}
	d.Fields.Show(d.Out, f)
	return StatusContinue
}

func (d *Dispatcher) set(_ context.Context, line string, args []string) Status {
	if len(args) < 3 {
		return d.syntax("set")
	}
	f, ok := headers.ParseField(args[1])
	if !ok {
		fmt.Fprintf(d.Out, "[?] Invalid argument '%s'\n", args[1])
		return StatusContinue
	}
	d.Fields.Set(f, afterFields(line, 2))
	d.Fields.Show(d.Out, f)
	return StatusContinue
}

func (d *Dispatcher) clear(_ context.Context, _ string, args []string) Status {
	if len(args) != 2 {
		return d.syntax("clear")
	}
	if args[1] == "all" {
		d.Fields.ClearAll()
		return StatusContinue
	}
	f, ok := headers.ParseField(args[1])
	if !ok {
		fmt.Fprintf(d.Out, "[?] Invalid argument '%s'\n", args[1])
		return StatusContinue
	}
	d.Fields.Clear(f)
	return StatusContinue
}

func (d *Dispatcher) send(ctx context.Context, _ string, args []string) Status {
	if len(args) > 2 {
		return d.syntax("send")
	}
	path := "/"
	if len(args) == 2 {
		path = args[1]
	}
	if d.Sender == nil {
		fmt.Fprintln(d.Out, "[!] sending is not available")
		return StatusContinue
	}
	resp, err := d.Sender.Send(ctx, d.Fields, path)
	if err != nil {
		log.Debug("send failed:", err)
		fmt.Fprintf(d.Out, "[!] %v\n", err)
		return StatusContinue
	}
	resp.Print(d.Out)
	return StatusContinue
}

func (d *Dispatcher) load(ctx context.Context, _ string, args []string) Status {
	if len(args) != 2 {
		return d.syntax("load")
	}
	if d.Fetch == nil {
		fmt.Fprintln(d.Out, "[!] loading is not available")
		return StatusContinue
	}
	p, err := d.Fetch(ctx, args[1])
	if err != nil {
		fmt.Fprintf(d.Out, "[!] %v\n", err)
		return StatusContinue
	}
	d.Fields.Replace(p)
	log.Info("loaded header profile from", args[1])
	d.Fields.ShowAll(d.Out)
	return StatusContinue
}

func (d *Dispatcher) history(_ context.Context, _ string, args []string) Status {
	if len(args) != 1 {
		return d.syntax("history")
	}
	if d.History == nil {
		return StatusContinue
	}
	for i, line := range d.History.Entries() {
		fmt.Fprintf(d.Out, "%3d  %s\n", i, line)
	}
	return StatusContinue
}

func (d *Dispatcher) help(_ context.Context, _ string, _ []string) Status {
	for _, name := range []string{"show", "set", "clear", "send", "load", "history", "help", "quit"} {
		fmt.Fprintf(d.Out, "  %s\n", usage[name])
	}
	return StatusContinue
}

// afterFields returns line without its first n fields and the blanks around
// them. Spacing inside the remainder is kept.
func afterFields(line string, n int) string {
	s := line
	for i := 0; i < n; i++ {
		s = strings.TrimLeft(s, " \t")
		if j := strings.IndexAny(s, " \t"); j >= 0 {
			s = s[j:]
		} else {
			s = ""
		}
	}
	return strings.Trim(s, " \t")
}
