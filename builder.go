package gollowmap

import "sort"

// Linear-time construction from pre-sorted input: split the range at
// its midpoint, build both halves recursively and hang them off the
// middle element. For the red-black policy every node is black except
// the lowest, possibly incomplete level, which is red; the result
// satisfies the red-black invariants with no fixup pass. For the AVL
// policy heights are assigned on the way back up.

// Builds a red-black map from entries already in strictly increasing
// key order. O(n)
func NewFromSorted[K any, V any](entries []*Entry[K, V], comparator Comparator[K]) (*TreeMap[K, V], error) {
	tree := New[K, V](comparator)
	if err := tree.loadSorted(entries); err != nil {
		return nil, err
	}
	return tree, nil
}

// Builds a map configured by [option] from entries already in strictly
// increasing key order. O(n)
func NewFromSortedWithOptions[K any, V any](entries []*Entry[K, V], option *MapOption[K]) (*TreeMap[K, V], error) {
	tree := NewWithOptions[K, V](option)
	if err := tree.loadSorted(entries); err != nil {
		return nil, err
	}
	return tree, nil
}

// Builds a red-black map from a plain Go map. The entries are sorted
// first, so this is O(n log n). Keys that the comparator considers
// equal collapse into an ErrUnsortedInput.
func NewFromMap[K comparable, V any](items map[K]V, comparator Comparator[K]) (*TreeMap[K, V], error) {
	entries := make([]*Entry[K, V], 0, len(items))
	for k, v := range items {
		entries = append(entries, &Entry[K, V]{key: k, value: v})
	}
	sorter := NewEntrySortBy(entries, comparator)
	sort.Sort(&sorter)
	return NewFromSorted(entries, comparator)
}

// Returns an independent copy of the map: equal content, same
// comparator, policy and options, freshly rebuilt nodes. The original
// is drained through its in-order iterator and the copy is rebuilt
// with the linear-time builder. O(n)
func (t *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	clone := newTreeMap[K, V](t.comparator, t.policy, t.logger, t.compression)
	// an in-order drain is already strictly sorted, loadSorted cannot
	// refuse it
	if err := clone.loadSorted(t.ToList()); err != nil {
		panic(err)
	}
	return clone
}

// verify order, then rebuild in place as one structural change
func (t *TreeMap[K, V]) loadSorted(entries []*Entry[K, V]) error {
	for i := 1; i < len(entries); i++ {
		if t.comparator(entries[i-1].key, entries[i].key) >= 0 {
			return ErrUnsortedInput
		}
	}
	t.root = buildSubtree(entries, 0, len(entries)-1, 0, computeRedLevel(len(entries)), t.policy)
	t.size = len(entries)
	t.version++
	return nil
}

func buildSubtree[K any, V any](entries []*Entry[K, V], lo int, hi int, level int, redLevel int, policy BalancePolicy) *treeNode[K, V] {
	if hi < lo {
		return nil
	}

	mid := (lo + hi) / 2
	left := buildSubtree(entries, lo, mid-1, level+1, redLevel, policy)
	right := buildSubtree(entries, mid+1, hi, level+1, redLevel, policy)

	n := &treeNode[K, V]{
		key:   entries[mid].key,
		value: entries[mid].value,
		left:  left,
		right: right,
	}
	if left != nil {
		left.parent = n
	}
	if right != nil {
		right.parent = n
	}

	if policy == AVL {
		updateHeight(n)
	} else if level == redLevel {
		n.meta = red
	} else {
		n.meta = black
	}
	return n
}

// The level of the lowest, possibly incomplete row of a complete tree
// of [size] nodes: the number of halving steps to reach zero from
// size-1. Everything on it is colored red, everything above black.
func computeRedLevel(size int) int {
	level := 0
	for m := size - 1; m >= 0; m = m/2 - 1 {
		level++
	}
	return level
}

// struct that helps in sorting entries
// implements Sort Interface
type EntrySortBy[K any, V any] struct {
	list       []*Entry[K, V]
	comparator Comparator[K]
}

func NewEntrySortBy[K any, V any](list []*Entry[K, V], comparator Comparator[K]) EntrySortBy[K, V] {
	return EntrySortBy[K, V]{
		list:       list,
		comparator: comparator,
	}
}

func (a *EntrySortBy[K, V]) Len() int {
	return len(a.list)
}

func (a *EntrySortBy[K, V]) Swap(i, j int) {
	a.list[i], a.list[j] = a.list[j], a.list[i]
}

func (a *EntrySortBy[K, V]) Less(i, j int) bool {
	return a.comparator(a.list[i].key, a.list[j].key) < 0
}
