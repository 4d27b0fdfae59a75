package command

import (
	"strings"

	"github.com/flowave-io/webwasp/internal/headers"
)

// Vocabulary is every command path the dispatcher understands, as completion
// paths. Free-form arguments (values, paths, sources) are not listed.
func Vocabulary() [][]string {
	fields := headers.FieldNames()
	v := [][]string{
		{"show", "all"},
	}
	for _, f := range fields {
		v = append(v, []string{"show", f})
	}
	for _, f := range fields {
		v = append(v, []string{"set", f})
	}
	v = append(v, []string{"clear", "all"})
	for _, f := range fields {
		v = append(v, []string{"clear", f})
	}
	v = append(v,
		[]string{"send"},
		[]string{"load"},
		[]string{"history"},
		[]string{"help"},
		[]string{"quit"},
		[]string{"exit"},
	)
	return v
}

// Tokens splits a line for completion. A trailing blank yields an empty final
// token so the next position is completed.
func Tokens(line string) []string {
	toks := strings.Fields(line)
	if len(toks) > 0 && isBlank(line[len(line)-1]) {
		toks = append(toks, "")
	}
	return toks
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }
