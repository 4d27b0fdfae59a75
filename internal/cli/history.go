package cli

import "errors"

// DefaultHistoryMax is how many submitted lines are kept when no capacity is
// configured.
const DefaultHistoryMax = 20

var ErrInvalidCapacity = errors.New("history capacity must be greater than zero")

// History keeps the most recent submitted lines, newest at index 0.
type History struct {
	entries []string
	cap     int
}

func NewHistory(capacity int) (*History, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &History{entries: make([]string, 0, capacity), cap: capacity}, nil
}

// Push records line as the newest entry, dropping the oldest one when full.
// Empty lines are ignored; duplicates are kept.
func (h *History) Push(line string) {
	if line == "" {
		return
	}
	if len(h.entries) < h.cap {
		h.entries = append(h.entries, "")
	}
	copy(h.entries[1:], h.entries[:len(h.entries)-1])
	h.entries[0] = line
}

// Get returns the entry at recency index i (0 = most recent).
func (h *History) Get(i int) (string, bool) {
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	return h.entries[i], true
}

func (h *History) Size() int { return len(h.entries) }
func (h *History) Cap() int  { return h.cap }

// Entries returns a copy of the stored lines, newest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// recall tracks one edit session's position while browsing history.
// index -1 means the live draft is shown.
type recall struct {
	hist  *History
	index int
	draft string
}

func newRecall(h *History) recall { return recall{hist: h, index: -1} }

// older returns the line to show for one step back in time, or false when
// already at the oldest entry.
func (r *recall) older(live string) (string, bool) {
	if r.index+1 >= r.hist.Size() {
		return "", false
	}
	if r.index == -1 {
		r.draft = live
	}
	r.index++
	line, _ := r.hist.Get(r.index)
	return line, true
}

// newer returns the line to show for one step forward, restoring the draft
// when leaving the most recent entry.
func (r *recall) newer() (string, bool) {
	switch {
	case r.index == -1:
		return "", false
	case r.index == 0:
		r.index = -1
		d := r.draft
		r.draft = ""
		return d, true
	default:
		r.index--
		line, _ := r.hist.Get(r.index)
		return line, true
	}
}

// edited is called on any buffer edit; the shown text becomes the live line.
func (r *recall) edited() {
	r.index = -1
	r.draft = ""
}

func (r *recall) active() bool { return r.index >= 0 }
