package dictionary

import (
	"slices"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/mcoot/scrabble-go/internal/model"
)

// Separator marks the point in a GADDAG path where the reversed prefix ends
// and the suffix begins
const Separator = '>'

// Result is one word found by a GADDAG query
type Result struct {
	Word string
	Path string // Reversed prefix, Separator, suffix
}

// HookIndex returns the index of the hook letter within Word
func (r Result) HookIndex() int {
	before, _, _ := strings.Cut(r.Path, string(Separator))
	return len([]rune(before)) - 1
}

type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// GADDAG is a trie over every reversed-prefix/suffix split of each word, so that
// words can be grown outward from any letter in them
type GADDAG struct {
	root  *node
	words int
}

// NewGADDAG creates an empty GADDAG
func NewGADDAG() *GADDAG {
	return &GADDAG{root: newNode()}
}

// Add inserts a word. Words are stored uppercase; words containing anything
// other than letters are ignored.
func (g *GADDAG) Add(word string) bool {
	letters, ok := normalize(word)
	if !ok {
		return false
	}
	if g.Contains(string(letters)) {
		return false
	}

	n := len(letters)
	for i := 1; i <= n; i++ {
		prefix := slices.Clone(letters[:i])
		slices.Reverse(prefix)
		path := append(prefix, Separator)
		path = append(path, letters[i:]...)
		g.insert(path)
	}
	g.words++
	return true
}

func (g *GADDAG) insert(path []rune) {
	cur := g.root
	for _, r := range path {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
	}
	cur.terminal = true
}

// Contains reports whether the word was added
func (g *GADDAG) Contains(word string) bool {
	letters, ok := normalize(word)
	if !ok {
		return false
	}
	path := append([]rune{letters[0], Separator}, letters[1:]...)
	cur := g.root
	for _, r := range path {
		cur = cur.children[r]
		if cur == nil {
			return false
		}
	}
	return cur.terminal
}

// WordCount returns the number of distinct words added
func (g *GADDAG) WordCount() int {
	return g.words
}

// FindWordsWithRackAndHook returns every word that contains the hook letter and
// can be completed from the rack. A model.BlankLetter hook means the board is
// empty: each distinct rack letter is tried as the hook in turn. Blanks on the
// rack stand in for any letter. Results are deduplicated and sorted.
func (g *GADDAG) FindWordsWithRackAndHook(rack []rune, hook rune) []Result {
	remaining := make(map[rune]int, len(rack))
	for _, r := range rack {
		if r != model.BlankLetter {
			r = unicode.ToUpper(r)
		}
		remaining[r]++
	}

	found := make(map[Result]struct{})
	if hook == model.BlankLetter {
		for _, letter := range lo.Keys(remaining) {
			if letter == model.BlankLetter {
				continue
			}
			rest := clone(remaining)
			take(rest, letter)
			g.find(found, nil, nil, rest, letter, g.root, true)
		}
	} else {
		g.find(found, nil, nil, remaining, unicode.ToUpper(hook), g.root, true)
	}

	results := lo.Keys(found)
	slices.SortFunc(results, func(a, b Result) int {
		if c := strings.Compare(a.Word, b.Word); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return results
}

// find follows the edge labelled label out of cur. While reversed is true the
// letters seen so far are the word's prefix read backwards.
func (g *GADDAG) find(found map[Result]struct{}, word, path []rune, rack map[rune]int, label rune, cur *node, reversed bool) {
	next := cur.children[label]
	if next == nil {
		return
	}

	if label != Separator {
		if reversed {
			word = append([]rune{label}, word...)
		} else {
			word = append(slices.Clone(word), label)
		}
	}
	path = append(slices.Clone(path), label)

	if next.terminal {
		found[Result{Word: string(word), Path: string(path)}] = struct{}{}
	}

	for key := range next.children {
		switch {
		case key == Separator:
			g.find(found, word, path, rack, key, next, false)
		case rack[key] > 0:
			rest := clone(rack)
			take(rest, key)
			g.find(found, word, path, rest, key, next, reversed)
		case rack[model.BlankLetter] > 0:
			rest := clone(rack)
			take(rest, model.BlankLetter)
			g.find(found, word, path, rest, key, next, reversed)
		}
	}
}

func normalize(word string) ([]rune, bool) {
	letters := []rune(strings.ToUpper(strings.TrimSpace(word)))
	if len(letters) == 0 {
		return nil, false
	}
	for _, r := range letters {
		if !unicode.IsLetter(r) {
			return nil, false
		}
	}
	return letters, true
}

func clone(rack map[rune]int) map[rune]int {
	out := make(map[rune]int, len(rack))
	for k, v := range rack {
		out[k] = v
	}
	return out
}

func take(rack map[rune]int, letter rune) {
	rack[letter]--
	if rack[letter] <= 0 {
		delete(rack, letter)
	}
}
