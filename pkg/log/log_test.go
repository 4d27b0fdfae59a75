package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestRawWriter_MapsLoneNewlines(t *testing.T) {
	var out bytes.Buffer
	w := RawWriter(&out)
	n, err := w.Write([]byte("a\nb\r\nc\n"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != 7 {
		t.Fatalf("expected 7 bytes reported, got %d", n)
	}
	if got, want := out.String(), "a\r\nb\r\nc\r\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRawWriter_CarriesStateAcrossWrites(t *testing.T) {
	var out bytes.Buffer
	w := RawWriter(&out)
	_, _ = w.Write([]byte("x\r"))
	_, _ = w.Write([]byte("\ny"))
	if got, want := out.String(), "x\r\ny"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLevels_PrefixAndDebugGate(t *testing.T) {
	var out bytes.Buffer
	prev := SetOutput(&out)
	defer SetOutput(prev)

	Info("started")
	Warn("careful")
	Debug("hidden")
	SetDebug(true)
	Debug("shown")
	SetDebug(false)

	s := out.String()
	for _, want := range []string{"[INFO] started", "[WARN] careful", "[DEBUG] shown"} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in %q", want, s)
		}
	}
	if strings.Contains(s, "hidden") {
		t.Fatalf("debug line leaked while disabled: %q", s)
	}
}
