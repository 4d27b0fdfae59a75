package command

import "strings"

// Trie indexes command token paths for tab completion. Node 0 is the
// unlabeled root; a node's depth is its token position (first word = 1).
// Nodes live in one slice and refer to children by index. The trie is
// read-only once NewTrie returns.
type Trie struct {
	nodes []trieNode
}

type trieNode struct {
	label    string
	depth    int
	children []int
}

// NewTrie builds a trie from token paths such as {"show", "host"}. Shared
// prefixes are merged, so sibling labels are unique. Children keep the order
// in which they were first seen.
func NewTrie(paths ...[]string) *Trie {
	t := &Trie{nodes: []trieNode{{}}}
	for _, p := range paths {
		t.add(p)
	}
	return t
}

func (t *Trie) add(path []string) {
	cur := 0
	for _, tok := range path {
		next := -1
		for _, c := range t.nodes[cur].children {
			if t.nodes[c].label == tok {
				next = c
				break
			}
		}
		if next < 0 {
			next = len(t.nodes)
			t.nodes = append(t.nodes, trieNode{label: tok, depth: t.nodes[cur].depth + 1})
			t.nodes[cur].children = append(t.nodes[cur].children, next)
		}
		cur = next
	}
}

// Len is the number of labeled nodes.
func (t *Trie) Len() int { return len(t.nodes) - 1 }

// Complete returns the labels that can stand in the position of the last
// token. Every earlier token must equal the label at its depth; the last one
// only has to be a prefix. Results follow child insertion order.
func (t *Trie) Complete(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	var out []string
	queue := append([]int(nil), t.nodes[0].children...)
	for len(queue) > 0 {
		n := t.nodes[queue[0]]
		queue = queue[1:]

		tok := tokens[n.depth-1]
		if n.depth == len(tokens) {
			if strings.HasPrefix(n.label, tok) {
				out = append(out, n.label)
			}
			continue
		}
		if n.label == tok {
			queue = append(queue, n.children...)
		}
	}
	return out
}

// Words lists the first-position labels, used by help output.
func (t *Trie) Words() []string {
	out := make([]string, 0, len(t.nodes[0].children))
	for _, c := range t.nodes[0].children {
		out = append(out, t.nodes[c].label)
	}
	return out
}
