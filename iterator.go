package gollowmap

// In-order cursor over a tree or a bounded view of it. The iterator
// snapshots the tree version at creation; a structural change in the
// backing tree surfaces as ErrConcurrentModification from Err after
// MoveNext returns false, and the iterator is dead from then on.
type EntryIterator[K any, V any] struct {
	tree         *TreeMap[K, V]
	next         *treeNode[K, V]
	lastReturned *treeNode[K, V]
	descending   bool

	// far-bound check for view iterators, nil on a whole-tree walk
	stop StopCallback[K]

	// exclusive end and split state for partitioned traversal
	fenceNode  *treeNode[K, V]
	side       int
	splittable bool

	version uint64
	err     error
}

type StopCallback[K any] func(k K) bool

// Returns an ascending iterator over the whole map
func (t *TreeMap[K, V]) Iterator() *EntryIterator[K, V] {
	return &EntryIterator[K, V]{
		tree:       t,
		next:       leftmost(t.root),
		splittable: true,
		version:    t.version,
	}
}

// Returns a descending iterator over the whole map
func (t *TreeMap[K, V]) DescendingIterator() *EntryIterator[K, V] {
	return &EntryIterator[K, V]{
		tree:       t,
		next:       rightmost(t.root),
		descending: true,
		splittable: true,
		version:    t.version,
	}
}

// returns treemap iterator
func (t *TreeMap[K, V]) GetIterator() IteratorBase[*Entry[K, V]] {
	return t.Iterator()
}

// Returns an iterable over the keys in ascending order
func (t *TreeMap[K, V]) Keys() Iterable[K] {
	itr := Iterable[K]{
		recreaterCallback: func() IteratorBase[K] {
			return NewTransformIterator(t.GetIterator(), func(e *Entry[K, V]) K {
				return e.GetKey()
			})
		},
	}
	itr.base = itr
	return itr
}

// Returns an iterable over the values in ascending key order
func (t *TreeMap[K, V]) Values() Iterable[V] {
	itr := Iterable[V]{
		recreaterCallback: func() IteratorBase[V] {
			return NewTransformIterator(t.GetIterator(), func(e *Entry[K, V]) V {
				return e.GetValue()
			})
		},
	}
	itr.base = itr
	return itr
}

// move next for EntryIterator
func (i *EntryIterator[K, V]) MoveNext() bool {
	if i.err != nil {
		return false
	}
	if i.version != i.tree.version {
		i.err = ErrConcurrentModification
		i.lastReturned = nil
		return false
	}
	if i.next == nil || i.next == i.fenceNode {
		return false
	}
	if i.stop != nil && i.stop(i.next.key) {
		return false
	}

	i.lastReturned = i.next
	if i.descending {
		i.next = predecessor(i.next)
	} else {
		i.next = successor(i.next)
	}
	return true
}

// get current for EntryIterator
func (i *EntryIterator[K, V]) GetCurrent() *Entry[K, V] {
	if i.lastReturned == nil {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}
	return exportEntry(i.lastReturned)
}

// Reports why iteration ended early, nil after a plain exhaustion
func (i *EntryIterator[K, V]) Err() error {
	return i.err
}

// Removes the last entry returned by MoveNext from the backing tree.
// The version snapshot is refreshed afterwards so the iterator does
// not trip over its own removal. Iterators produced by TrySplit, and
// the receiver once it has been split, refuse removal: a split part
// bounds its range by node identity, and removing next to the boundary
// can unlink the fence node itself.
func (i *EntryIterator[K, V]) Remove() error {
	if i.lastReturned == nil || i.side != 0 {
		return ErrIllegalState
	}
	if i.version != i.tree.version {
		i.err = ErrConcurrentModification
		i.lastReturned = nil
		return i.err
	}

	// a two-child node is logically removed by successor
	// substitution: the successor's content moves into this node and
	// the successor is the one unlinked. Pin the cursor back onto the
	// substituted node so the ascending walk resumes correctly.
	if !i.descending && i.lastReturned.left != nil && i.lastReturned.right != nil {
		i.next = i.lastReturned
	}
	i.tree.deleteNode(i.lastReturned)
	i.lastReturned = nil
	i.version = i.tree.version
	return nil
}

// Splits off a disjoint, order-contiguous prefix of the remaining
// traversal and returns an iterator over it, or nil when no split is
// possible. Only whole-tree iterators split: the first split is at the
// root, later ones at a child of the current node or of the fence.
// Both halves stay fail-fast against the shared version counter and
// neither supports Remove afterwards.
func (i *EntryIterator[K, V]) TrySplit() *EntryIterator[K, V] {
	if i.err != nil || !i.splittable {
		return nil
	}

	e, f := i.next, i.fenceNode
	var s *treeNode[K, V]
	switch {
	case e == nil || e == f:
		return nil
	case i.side == 0:
		s = i.tree.root
	case i.side > 0:
		if i.descending {
			s = e.left
		} else {
			s = e.right
		}
	default:
		if f != nil {
			if i.descending {
				s = f.right
			} else {
				s = f.left
			}
		}
	}
	if s == nil || s == e || s == f {
		return nil
	}
	c := i.tree.comparator(e.key, s.key)
	if (!i.descending && c >= 0) || (i.descending && c <= 0) {
		return nil
	}

	prefix := &EntryIterator[K, V]{
		tree:       i.tree,
		next:       e,
		fenceNode:  s,
		side:       -1,
		descending: i.descending,
		splittable: true,
		version:    i.version,
	}
	i.side = 1
	i.next = s
	return prefix
}
