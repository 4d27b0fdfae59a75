package headers

import (
	"fmt"
	"io"
	"sync"
)

// Field identifies one stored HTTP request header.
type Field int

const (
	Host Field = iota
	Auth
	MaxForwards
	Referer
	UserAgent
	numFields
)

// Console-facing names, in display order.
var fieldNames = [numFields]string{"host", "auth", "maxforward", "referer", "useragent"}

var displayNames = [numFields]string{"HOST", "AUTH", "MAX-FORWARDS", "REFERER", "USER-AGENT"}

var headerKeys = [numFields]string{"Host", "Authorization", "Max-Forwards", "Referer", "User-Agent"}

func (f Field) String() string { return fieldNames[f] }

// Header is the canonical HTTP header name for f.
func (f Field) Header() string { return headerKeys[f] }

// FieldNames lists the console names of every field in display order.
func FieldNames() []string {
	out := make([]string, numFields)
	copy(out, fieldNames[:])
	return out
}

// ParseField maps a console name such as "useragent" to its Field.
func ParseField(name string) (Field, bool) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), true
		}
	}
	return 0, false
}

// Fields is the header store edited from the console. It is safe for use by
// the console loop and a profile watcher at the same time.
type Fields struct {
	mu   sync.RWMutex
	vals [numFields]string
}

func NewFields() *Fields { return &Fields{} }

func (s *Fields) Get(f Field) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vals[f]
}

func (s *Fields) Set(f Field, v string) {
	s.mu.Lock()
	s.vals[f] = v
	s.mu.Unlock()
}

func (s *Fields) Clear(f Field) { s.Set(f, "") }

func (s *Fields) ClearAll() {
	s.mu.Lock()
	s.vals = [numFields]string{}
	s.mu.Unlock()
}

// Replace overwrites every field with the values of p.
func (s *Fields) Replace(p Profile) {
	s.mu.Lock()
	s.vals = p.values()
	s.mu.Unlock()
}

// Snapshot copies the current values into a Profile.
func (s *Fields) Snapshot() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return profileFrom(s.vals)
}

// Show writes one field as "[+] NAME: 'value'".
func (s *Fields) Show(w io.Writer, f Field) {
	fmt.Fprintf(w, "[+] %s: '%s'\n", displayNames[f], s.Get(f))
}

// ShowAll writes every field in display order.
func (s *Fields) ShowAll(w io.Writer) {
	for f := Field(0); f < numFields; f++ {
		s.Show(w, f)
	}
}
