package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete_SingleWordPrefix(t *testing.T) {
	tr := NewTrie([]string{"quit"}, []string{"show"})
	assert.Equal(t, []string{"show"}, tr.Complete([]string{"sh"}))
}

func TestComplete_EarlierTokensMustMatchExactly(t *testing.T) {
	tr := NewTrie([]string{"quit"}, []string{"show"})
	assert.Empty(t, tr.Complete([]string{"q", "uit"}))
}

func TestComplete_EmptyTokens(t *testing.T) {
	tr := NewTrie([]string{"quit"})
	assert.Empty(t, tr.Complete(nil))
	assert.Empty(t, tr.Complete([]string{}))
}

func TestComplete_MultipleMatchesKeepInsertionOrder(t *testing.T) {
	tr := NewTrie([]string{"shutdown"}, []string{"quit"}, []string{"show"})
	assert.Equal(t, []string{"shutdown", "show"}, tr.Complete([]string{"sh"}))
}

func TestComplete_SecondPosition(t *testing.T) {
	tr := NewTrie(
		[]string{"show", "host"},
		[]string{"show", "auth"},
		[]string{"set", "host"},
		[]string{"show", "all"},
	)
	assert.Equal(t, []string{"host"}, tr.Complete([]string{"show", "h"}))
	assert.Equal(t, []string{"host", "auth", "all"}, tr.Complete([]string{"show", ""}))
	assert.Empty(t, tr.Complete([]string{"sho", "h"}))
	// the final token never expands children
	assert.Equal(t, []string{"show"}, tr.Complete([]string{"show"}))
	assert.Empty(t, tr.Complete([]string{"show", "host", ""}))
}

func TestNewTrie_MergesSharedPrefixes(t *testing.T) {
	tr := NewTrie([]string{"show", "host"}, []string{"show", "auth"}, []string{"show", "host"})
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []string{"show"}, tr.Words())
}

func TestVocabulary_CompletesEveryCommand(t *testing.T) {
	tr := NewTrie(Vocabulary()...)
	assert.Equal(t, []string{"show", "set", "send"}, tr.Complete([]string{"s"}))
	assert.Equal(t, []string{"useragent"}, tr.Complete([]string{"set", "u"}))
	assert.Equal(t, []string{"all", "auth"}, tr.Complete([]string{"clear", "a"}))
	assert.Equal(t, []string{"all"}, tr.Complete([]string{"clear", "al"}))
	assert.Empty(t, tr.Complete([]string{"send", ""}))
	for _, w := range []string{"send", "load", "history", "help", "quit", "exit"} {
		assert.Contains(t, tr.Words(), w)
	}
}

func TestTokens(t *testing.T) {
	assert.Empty(t, Tokens(""))
	assert.Empty(t, Tokens("   "))
	assert.Equal(t, []string{"sh"}, Tokens("sh"))
	assert.Equal(t, []string{"show", ""}, Tokens("show "))
	assert.Equal(t, []string{"show", "ho"}, Tokens("  show\tho"))
}
