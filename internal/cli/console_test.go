package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowave-io/webwasp/internal/headers"
)

func TestRunConsoleCommand_StdinNotATerminal(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "webwasp.hcl")
	require.NoError(t, os.WriteFile(cfg, nil, 0o644))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	stdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = stdin }()

	assert.Equal(t, 1, RunConsoleCommand([]string{"-config", cfg, "-no-banner"}))
}

func TestRunConsoleCommand_BadFlagsAndConfig(t *testing.T) {
	assert.Equal(t, 2, RunConsoleCommand([]string{"-no-such-flag"}))
	assert.Equal(t, 1, RunConsoleCommand([]string{"-config", filepath.Join(t.TempDir(), "missing.hcl")}))
}

func TestProfileReloader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`host = "one.example"`+"\n"), 0o644))

	fields := headers.NewFields()
	var notes []string
	reload := profileReloader(fields, path, func(s string) { notes = append(notes, s) })

	reload()
	assert.Equal(t, "one.example", fields.Get(headers.Host))
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "Reloaded header profile")

	require.NoError(t, os.WriteFile(path, []byte(`host = `), 0o644))
	reload()
	assert.Equal(t, "one.example", fields.Get(headers.Host))
	require.Len(t, notes, 2)
	assert.Contains(t, notes[1], "[!] Profile reload failed")
}
