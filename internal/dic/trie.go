package dic

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
)

// Trie is a rune keyed prefix tree. Probes never lock: every node
// publishes its children as an immutable sorted slice and its word state
// atomically, so writers only copy the slice they change.
type Trie struct {
	root  *node
	mu    sync.Mutex // serializes writers
	words atomic.Int64
}

type node struct {
	ch     rune
	childs atomic.Pointer[[]*node]
	end    atomic.Bool
}

func NewTrie() *Trie {
	return &Trie{root: &node{}}
}

func (n *node) children() []*node {
	if p := n.childs.Load(); p != nil {
		return *p
	}
	return nil
}

func (n *node) hasNext() bool {
	return len(n.children()) > 0
}

func (n *node) lookup(r rune) *node {
	cs := n.children()
	if len(cs) <= 4 {
		for _, c := range cs {
			if c.ch == r {
				return c
			}
		}
		return nil
	}
	idx := sort.Search(len(cs), func(i int) bool { return cs[i].ch >= r })
	if idx < len(cs) && cs[idx].ch == r {
		return cs[idx]
	}
	return nil
}

// child returns the child for r, creating it. Caller holds Trie.mu.
func (n *node) child(r rune) *node {
	if c := n.lookup(r); c != nil {
		return c
	}
	cs := n.children()
	idx := sort.Search(len(cs), func(i int) bool { return cs[i].ch >= r })
	next := make([]*node, len(cs)+1)
	copy(next, cs[:idx])
	next[idx] = &node{ch: r}
	copy(next[idx+1:], cs[idx:])
	n.childs.Store(&next)
	return next[idx]
}

// match walks buf[begin:begin+length] from n. Probes past the buffer are
// unmatched.
func (n *node) match(buf []rune, begin, length int, hit Hit) Hit {
	hit.state = hitUnmatch
	hit.node = nil
	if begin < 0 || length <= 0 || begin+length > len(buf) {
		return hit
	}
	p := n
	for i := begin; i < begin+length; i++ {
		p = p.lookup(unicode.ToLower(buf[i]))
		if p == nil {
			return hit
		}
	}
	hit.End = begin + length - 1
	if p.end.Load() {
		hit.state |= hitMatch
	}
	if p.hasNext() {
		hit.state |= hitPrefix
		hit.node = p
	}
	return hit
}

// Match probes buf[begin:begin+length] from the root.
func (t *Trie) Match(buf []rune, begin, length int) Hit {
	return t.root.match(buf, begin, length, Hit{Begin: begin, End: begin + length - 1})
}

// MatchWithHit extends a prefix hit by length more runes starting at
// begin. The returned hit keeps prior.Begin.
func MatchWithHit(buf []rune, begin, length int, prior Hit) Hit {
	if prior.node == nil {
		prior.state = hitUnmatch
		return prior
	}
	return prior.node.match(buf, begin, length, prior)
}

// Fill inserts word. Filling an existing word re-enables it.
func (t *Trie) Fill(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	p := t.root
	for _, r := range word {
		p = p.child(r)
	}
	if !p.end.Swap(true) {
		t.words.Add(1)
	}
}

// Disable marks word as no longer matching. The path stays in place so
// longer words sharing the prefix are unaffected.
func (t *Trie) Disable(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	p := t.root
	for _, r := range word {
		if p = p.lookup(r); p == nil {
			return
		}
	}
	if p.end.Swap(false) {
		t.words.Add(-1)
	}
}

// Len returns the number of enabled words.
func (t *Trie) Len() int {
	return int(t.words.Load())
}
