/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */

// Package gollowmap implements a self-balancing ordered map: a binary
// search tree keyed by a Comparator with O(log n) lookup, insertion,
// deletion and neighbour queries, ascending/descending range views and
// fail-fast iteration. Two balancing policies (red-black and AVL) run
// on top of the same engine.
//
// The map performs no locking. If multiple goroutines share a map and
// at least one mutates it, the callers must synchronize; iterators only
// give a best-effort detection of such races.
package gollowmap

import (
	"cmp"
	"log"
)

// BalancePolicy selects the rebalancing strategy of a tree
type BalancePolicy int

const (
	RedBlack BalancePolicy = iota
	AVL
)

// An ordered map backed by a parent-linked binary search tree
type TreeMap[K any, V any] struct {
	EnhancedIterator[*Entry[K, V]]
	root       *treeNode[K, V]
	comparator Comparator[K]
	size       int
	policy     BalancePolicy

	// bumped on every structural change: insert of a new key, any
	// removal, clear, bulk rebuild. Iterators snapshot it.
	version uint64

	logger      *log.Logger
	compression Compression
}

// Creates an empty red-black map ordered by [comparator]
func New[K any, V any](comparator Comparator[K]) *TreeMap[K, V] {
	return newTreeMap[K, V](comparator, RedBlack, nil, nil)
}

// Creates an empty AVL map ordered by [comparator]
func NewAVL[K any, V any](comparator Comparator[K]) *TreeMap[K, V] {
	return newTreeMap[K, V](comparator, AVL, nil, nil)
}

// Creates an empty red-black map using the natural order of the key type
func NewOrdered[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return newTreeMap[K, V](OrderedComparator[K](), RedBlack, nil, nil)
}

// Creates an empty AVL map using the natural order of the key type
func NewOrderedAVL[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return newTreeMap[K, V](OrderedComparator[K](), AVL, nil, nil)
}

// Creates an empty map configured by [option]
func NewWithOptions[K any, V any](option *MapOption[K]) *TreeMap[K, V] {
	return newTreeMap[K, V](option.comparator, option.policy, option.logger, option.compression)
}

func newTreeMap[K any, V any](comparator Comparator[K], policy BalancePolicy, logger *log.Logger, compression Compression) *TreeMap[K, V] {
	if comparator == nil {
		panic("gollowmap: a comparator is required")
	}
	if compression == nil {
		compression = NewSnappyCompression()
	}
	tree := &TreeMap[K, V]{
		comparator:  comparator,
		policy:      policy,
		logger:      logger,
		compression: compression,
	}
	tree.base = tree
	return tree
}

// Returns the number of entries in the map. O(1)
func (t *TreeMap[K, V]) GetSize() int {
	return t.size
}

func (t *TreeMap[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Returns the balancing policy the map was created with
func (t *TreeMap[K, V]) Policy() BalancePolicy {
	return t.policy
}

// Removes every entry from the map. O(1)
func (t *TreeMap[K, V]) Clear() {
	t.root = nil
	t.size = 0
	t.version++
}

// Associates [value] with [key], replacing any previous value. Returns
// the replaced value or nil if the key was absent. Replacing a value in
// place is not a structural change. O(log n)
func (t *TreeMap[K, V]) Put(key K, value V) *V {
	if t.root == nil {
		// run the comparator once even for a first entry so a bad
		// key fails here and not on the second Put
		t.comparator(key, key)
		t.root = &treeNode[K, V]{key: key, value: value}
		if t.policy == AVL {
			t.root.meta = 1
		} else {
			t.root.meta = black
		}
		t.size = 1
		t.version++
		return nil
	}

	var parent *treeNode[K, V]
	cur := t.root
	c := 0
	for cur != nil {
		parent = cur
		c = t.comparator(key, cur.key)
		if c < 0 {
			cur = cur.left
		} else if c > 0 {
			cur = cur.right
		} else {
			old := cur.value
			cur.value = value
			return &old
		}
	}

	n := &treeNode[K, V]{key: key, value: value, parent: parent}
	if c < 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	t.size++
	t.version++

	if t.policy == AVL {
		n.meta = 1
		t.rebalance(n.parent)
	} else {
		t.fixAfterInsert(n)
	}
	return nil
}

// Returns the value mapped to [key] or nil if the key is absent. O(log n)
func (t *TreeMap[K, V]) Get(key K) *V {
	n := t.getNode(key)
	if n == nil {
		return nil
	}
	value := n.value
	return &value
}

// Checks if [key] is present in the map. O(log n)
func (t *TreeMap[K, V]) ContainsKey(key K) bool {
	return t.getNode(key) != nil
}

// Removes the entry for [key] if present. Returns the removed value or
// nil if the key was absent. O(log n)
func (t *TreeMap[K, V]) Remove(key K) *V {
	n := t.getNode(key)
	if n == nil {
		return nil
	}
	old := n.value
	t.deleteNode(n)
	return &old
}

// Returns the entry with the lowest key, or nil on an empty map. O(log n)
func (t *TreeMap[K, V]) First() *Entry[K, V] {
	return exportEntry(leftmost(t.root))
}

// Returns the entry with the highest key, or nil on an empty map. O(log n)
func (t *TreeMap[K, V]) Last() *Entry[K, V] {
	return exportEntry(rightmost(t.root))
}

// Returns the lowest key, or nil on an empty map. O(log n)
func (t *TreeMap[K, V]) FirstKey() *K {
	n := leftmost(t.root)
	if n == nil {
		return nil
	}
	key := n.key
	return &key
}

// Returns the highest key, or nil on an empty map. O(log n)
func (t *TreeMap[K, V]) LastKey() *K {
	n := rightmost(t.root)
	if n == nil {
		return nil
	}
	key := n.key
	return &key
}

// Returns a key-value mapping associated with the greatest key less
// than or equal to the given key, or null if there is no such key. O(log n)
func (t *TreeMap[K, V]) Floor(k K) *Entry[K, V] {
	return exportEntry(t.getFloorNode(k))
}

// Returns a key-value mapping associated with the least key greater
// than or equal to the given key, or null if there is no such key. O(log n)
func (t *TreeMap[K, V]) Ceiling(k K) *Entry[K, V] {
	return exportEntry(t.getCeilingNode(k))
}

// Returns a key-value mapping associated with the least key
// strictly greater than the given key, or null if there is
// no such key. O(log n)
func (t *TreeMap[K, V]) Higher(k K) *Entry[K, V] {
	return exportEntry(t.getHigherNode(k))
}

// Returns a key-value mapping associated with the greatest key
// strictly less than the given key, or null if there is no such
// key. O(log n)
func (t *TreeMap[K, V]) Lower(k K) *Entry[K, V] {
	return exportEntry(t.getLowerNode(k))
}

// Returns the entry at the root of the tree, or nil on an empty map.
// Mostly useful for diagnostics and cross-checks.
func (t *TreeMap[K, V]) Root() *Entry[K, V] {
	return exportEntry(t.root)
}

// Returns the number of edges on the longest downward path from the
// root, -1 for an empty map. Diagnostic, O(n).
func (t *TreeMap[K, V]) Height() int {
	return subtreeLevels(t.root) - 1
}

func subtreeLevels[K any, V any](n *treeNode[K, V]) int {
	if n == nil {
		return 0
	}
	l := subtreeLevels(n.left)
	r := subtreeLevels(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func exportEntry[K any, V any](n *treeNode[K, V]) *Entry[K, V] {
	if n == nil {
		return nil
	}
	return &Entry[K, V]{key: n.key, value: n.value}
}

// point lookup, go left when the target is smaller
func (t *TreeMap[K, V]) getNode(key K) *treeNode[K, V] {
	cur := t.root
	for cur != nil {
		c := t.comparator(key, cur.key)
		if c < 0 {
			cur = cur.left
		} else if c > 0 {
			cur = cur.right
		} else {
			return cur
		}
	}
	return nil
}

// The four neighbour lookups below share one idiom: descend comparing
// at every node, and when the walk bottoms out without an exact match
// recover the best candidate either from the last favorable turn or by
// climbing to the first ancestor on the favorable side.

func (t *TreeMap[K, V]) getCeilingNode(key K) *treeNode[K, V] {
	cur := t.root
	for cur != nil {
		c := t.comparator(key, cur.key)
		if c < 0 {
			if cur.left == nil {
				return cur
			}
			cur = cur.left
		} else if c > 0 {
			if cur.right == nil {
				ch := cur
				p := cur.parent
				for p != nil && ch == p.right {
					ch = p
					p = p.parent
				}
				return p
			}
			cur = cur.right
		} else {
			return cur
		}
	}
	return nil
}

func (t *TreeMap[K, V]) getFloorNode(key K) *treeNode[K, V] {
	cur := t.root
	for cur != nil {
		c := t.comparator(key, cur.key)
		if c > 0 {
			if cur.right == nil {
				return cur
			}
			cur = cur.right
		} else if c < 0 {
			if cur.left == nil {
				ch := cur
				p := cur.parent
				for p != nil && ch == p.left {
					ch = p
					p = p.parent
				}
				return p
			}
			cur = cur.left
		} else {
			return cur
		}
	}
	return nil
}

func (t *TreeMap[K, V]) getHigherNode(key K) *treeNode[K, V] {
	cur := t.root
	for cur != nil {
		if t.comparator(key, cur.key) < 0 {
			if cur.left == nil {
				return cur
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				ch := cur
				p := cur.parent
				for p != nil && ch == p.right {
					ch = p
					p = p.parent
				}
				return p
			}
			cur = cur.right
		}
	}
	return nil
}

func (t *TreeMap[K, V]) getLowerNode(key K) *treeNode[K, V] {
	cur := t.root
	for cur != nil {
		if t.comparator(key, cur.key) > 0 {
			if cur.right == nil {
				return cur
			}
			cur = cur.right
		} else {
			if cur.left == nil {
				ch := cur
				p := cur.parent
				for p != nil && ch == p.left {
					ch = p
					p = p.parent
				}
				return p
			}
			cur = cur.left
		}
	}
	return nil
}

// Unlinks [p] from the tree. A node with two children first swaps in
// its in-order successor's key and value, the successor (at most one
// child) is then the node physically removed. Structural repair is
// delegated to the active balancing policy.
func (t *TreeMap[K, V]) deleteNode(p *treeNode[K, V]) {
	t.version++
	t.size--

	if p.left != nil && p.right != nil {
		s := successor(p)
		p.key = s.key
		p.value = s.value
		p = s
	}

	replacement := p.left
	if replacement == nil {
		replacement = p.right
	}

	if replacement != nil {
		// splice the single child into p's position
		replacement.parent = p.parent
		if p.parent == nil {
			t.root = replacement
		} else if p == p.parent.left {
			p.parent.left = replacement
		} else {
			p.parent.right = replacement
		}
		wasBlack := p.meta == black
		p.left, p.right, p.parent = nil, nil, nil
		if t.policy == AVL {
			t.rebalance(replacement.parent)
		} else if wasBlack {
			t.fixAfterDelete(replacement)
		}
	} else if p.parent == nil {
		t.root = nil
	} else {
		// no replacement: fix the deficiency while p is still
		// linked, then detach it
		parent := p.parent
		if t.policy == RedBlack && p.meta == black {
			t.fixAfterDelete(p)
		}
		if p.parent != nil {
			if p == p.parent.left {
				p.parent.left = nil
			} else if p == p.parent.right {
				p.parent.right = nil
			}
			p.parent = nil
		}
		if t.policy == AVL {
			t.rebalance(parent)
		}
	}
}

// Rotations re-parent three links in O(1) and move the root pointer
// when the pivot was the root. Balancing metadata is untouched here,
// the policies fix it up themselves.

func (t *TreeMap[K, V]) rotateLeft(p *treeNode[K, V]) {
	if p == nil {
		return
	}
	r := p.right
	p.right = r.left
	if r.left != nil {
		r.left.parent = p
	}
	r.parent = p.parent
	if p.parent == nil {
		t.root = r
	} else if p.parent.left == p {
		p.parent.left = r
	} else {
		p.parent.right = r
	}
	r.left = p
	p.parent = r
}

func (t *TreeMap[K, V]) rotateRight(p *treeNode[K, V]) {
	if p == nil {
		return
	}
	l := p.left
	p.left = l.right
	if l.right != nil {
		l.right.parent = p
	}
	l.parent = p.parent
	if p.parent == nil {
		t.root = l
	} else if p.parent.right == p {
		p.parent.right = l
	} else {
		p.parent.left = l
	}
	l.right = p
	p.parent = l
}
