package trie

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NodeID addresses a node in the dictionary arena.
type NodeID int32

// NoNode is returned by lookups that find nothing.
const NoNode NodeID = -1

// sentinel is the arena slot holding the root nodes as its children.
const sentinel NodeID = 0

type node struct {
	letter    rune
	wordEnd   bool
	exhausted bool
	children  map[rune]NodeID
}

// Dictionary is the prefix index over a word list.
type Dictionary struct {
	nodes []node
	words int
}

// Build creates a Dictionary from a word list.
//
// Words are lower-cased before insertion. Empty words are ignored and
// duplicates are counted once.
func Build(words []string) *Dictionary {
	d := &Dictionary{nodes: []node{{}}}
	lower := cases.Lower(language.Und)
	for _, w := range words {
		d.insert(lower.String(w))
	}
	return d
}

func (d *Dictionary) insert(word string) {
	if word == "" {
		return
	}
	cur := sentinel
	for _, r := range word {
		next, ok := d.nodes[cur].children[r]
		if !ok {
			next = NodeID(len(d.nodes))
			d.nodes = append(d.nodes, node{letter: r})
			if d.nodes[cur].children == nil {
				d.nodes[cur].children = make(map[rune]NodeID, 1)
			}
			d.nodes[cur].children[r] = next
		}
		cur = next
	}
	if !d.nodes[cur].wordEnd {
		d.nodes[cur].wordEnd = true
		d.words++
	}
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	return d.words
}

// NodeCount returns the number of letter nodes, excluding the sentinel.
func (d *Dictionary) NodeCount() int {
	return len(d.nodes) - 1
}

// Root returns the node for words beginning with letter.
func (d *Dictionary) Root(letter rune) (NodeID, bool) {
	return d.Child(sentinel, letter)
}

// Child returns the child of id reached by letter.
func (d *Dictionary) Child(id NodeID, letter rune) (NodeID, bool) {
	next, ok := d.nodes[id].children[letter]
	if !ok {
		return NoNode, false
	}
	return next, true
}

// Letter returns the letter stored at id.
func (d *Dictionary) Letter(id NodeID) rune {
	return d.nodes[id].letter
}

// IsWordEnd reports whether some dictionary word terminates at id.
func (d *Dictionary) IsWordEnd(id NodeID) bool {
	return d.nodes[id].wordEnd
}

// HasChildren reports whether any longer word continues through id.
func (d *Dictionary) HasChildren(id NodeID) bool {
	return len(d.nodes[id].children) > 0
}

// Exhausted reports whether id has been fully mined in the current solve.
func (d *Dictionary) Exhausted(id NodeID) bool {
	return d.nodes[id].exhausted
}

// MarkExhausted flags id as fully mined until the next Reset.
func (d *Dictionary) MarkExhausted(id NodeID) {
	d.nodes[id].exhausted = true
}

// ChildrenExhausted reports whether id has no children or every child is
// exhausted. It observes the flags at call time.
func (d *Dictionary) ChildrenExhausted(id NodeID) bool {
	for _, child := range d.nodes[id].children {
		if !d.nodes[child].exhausted {
			return false
		}
	}
	return true
}

// Reset clears the exhausted flag on every node.
func (d *Dictionary) Reset() {
	for i := range d.nodes {
		d.nodes[i].exhausted = false
	}
}

// Contains reports whether word is a complete dictionary word. Prefixes of
// longer words that are not themselves words are not contained.
func (d *Dictionary) Contains(word string) bool {
	id, ok := d.lookup(cases.Lower(language.Und).String(word))
	return ok && id != sentinel && d.nodes[id].wordEnd
}

// lookup walks the path spelled by prefix.
func (d *Dictionary) lookup(prefix string) (NodeID, bool) {
	cur := sentinel
	for _, r := range prefix {
		next, ok := d.nodes[cur].children[r]
		if !ok {
			return NoNode, false
		}
		cur = next
	}
	return cur, true
}

// WordsWithPrefix lists every dictionary word beginning with prefix, sorted.
// An empty prefix lists the whole dictionary.
func (d *Dictionary) WordsWithPrefix(prefix string) []string {
	prefix = cases.Lower(language.Und).String(prefix)
	start, ok := d.lookup(prefix)
	if !ok {
		return nil
	}

	var words []string
	if start != sentinel && d.nodes[start].wordEnd {
		words = append(words, prefix)
	}
	d.collect(start, prefix, &words)
	sort.Strings(words)
	return words
}

func (d *Dictionary) collect(id NodeID, prefix string, out *[]string) {
	for letter, child := range d.nodes[id].children {
		word := prefix + string(letter)
		if d.nodes[child].wordEnd {
			*out = append(*out, word)
		}
		d.collect(child, word, out)
	}
}
