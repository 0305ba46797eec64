package bst

import (
	"golang.org/x/exp/constraints"
)

// Entry is one key along with the number of times it was incremented.
type Entry[K constraints.Ordered] struct {
	Key   K
	Count uint64
}

type node[K constraints.Ordered] struct {
	key   K
	count uint64
	left  *node[K]
	right *node[K]
}

// Tree is an unbalanced binary search tree counting occurrences of keys.
// The zero value is an empty tree ready for use.
type Tree[K constraints.Ordered] struct {
	root  *node[K]
	size  int
	total uint64
}

func New[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Increment adds key with a count of one, or bumps the count of the
// existing entry. Sorted input degrades the tree to a list; no rebalancing
// is done.
func (t *Tree[K]) Increment(key K) {
	t.total++
	slot := &t.root
	for *slot != nil {
		n := *slot
		switch {
		case key == n.key:
			n.count++
			return
		case key < n.key:
			slot = &n.left
		default:
			slot = &n.right
		}
	}
	*slot = &node[K]{key: key, count: 1}
	t.size++
}

// Count returns the count stored for key, zero if it was never seen.
func (t *Tree[K]) Count(key K) uint64 {
	n := t.root
	for n != nil {
		switch {
		case key == n.key:
			return n.count
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return 0
}

// Len is the number of distinct keys.
func (t *Tree[K]) Len() int {
	return t.size
}

// Total is the sum of all counts.
func (t *Tree[K]) Total() uint64 {
	return t.total
}

func (t *Tree[K]) Depth() int {
	return depth(t.root)
}

func depth[K constraints.Ordered](n *node[K]) int {
	// iterative level walk; sorted input makes recursion as deep as the tree
	d := 0
	level := []*node[K]{}
	if n != nil {
		level = append(level, n)
	}
	for len(level) > 0 {
		d++
		next := []*node[K]{}
		for _, e := range level {
			if e.left != nil {
				next = append(next, e.left)
			}
			if e.right != nil {
				next = append(next, e.right)
			}
		}
		level = next
	}
	return d
}

// InOrder returns an iterator over the entries in ascending key order.
// Calling the returned function yields the next entry; the second result is
// false once the traversal is exhausted and stays false afterwards.
// Every call to InOrder starts a new traversal. The tree must not be
// modified while an iterator is in use.
func (t *Tree[K]) InOrder() func() (Entry[K], bool) {
	stack := []*node[K]{}
	pushLeft := func(n *node[K]) {
		for ; n != nil; n = n.left {
			stack = append(stack, n)
		}
	}
	pushLeft(t.root)

	return func() (Entry[K], bool) {
		if len(stack) == 0 {
			return Entry[K]{}, false
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pushLeft(n.right)
		return Entry[K]{Key: n.key, Count: n.count}, true
	}
}

// Walk calls fn for each entry in ascending key order until fn returns
// false.
func (t *Tree[K]) Walk(fn func(Entry[K]) bool) {
	next := t.InOrder()
	for e, ok := next(); ok; e, ok = next() {
		if !fn(e) {
			return
		}
	}
}

func (t *Tree[K]) Entries() []Entry[K] {
	result := make([]Entry[K], 0, t.size)
	t.Walk(func(e Entry[K]) bool {
		result = append(result, e)
		return true
	})
	return result
}
