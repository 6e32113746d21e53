package gollowmap

// One side of a view window, either absent or a key with an inclusive
// flag. Bounds are always kept in the tree's order, the direction flag
// alone decides how a view is walked.
type rangeBound[K any] struct {
	key       K
	inclusive bool
	present   bool
}

// A live window over a slice of the backing tree's key range. A view
// owns no nodes and never wraps another view: composing views only
// intersects bound tuples over the same tree reference.
type SubMap[K any, V any] struct {
	EnhancedIterator[*Entry[K, V]]
	tree       *TreeMap[K, V]
	lo, hi     rangeBound[K]
	descending bool

	// size is recomputed by traversal, cached until the backing tree
	// version moves
	cachedSize   int
	cacheVersion uint64
	cacheValid   bool
}

func newSubMap[K any, V any](t *TreeMap[K, V], lo rangeBound[K], hi rangeBound[K], descending bool) *SubMap[K, V] {
	v := &SubMap[K, V]{
		tree:       t,
		lo:         lo,
		hi:         hi,
		descending: descending,
	}
	v.base = v
	return v
}

// Returns a view of the portion of this map whose keys range
// from fromKey to toKey. O(1)
func (t *TreeMap[K, V]) Sub(fromKey K, toKey K, fromInclusive bool, toInclusive bool) (*SubMap[K, V], error) {
	if t.comparator(fromKey, toKey) > 0 {
		return nil, ErrEmptyRange
	}
	lo := rangeBound[K]{key: fromKey, inclusive: fromInclusive, present: true}
	hi := rangeBound[K]{key: toKey, inclusive: toInclusive, present: true}
	return newSubMap(t, lo, hi, false), nil
}

// Returns a view of the portion of this map whose keys are
// less than toKey. O(1)
func (t *TreeMap[K, V]) Head(toKey K, inclusive bool) *SubMap[K, V] {
	hi := rangeBound[K]{key: toKey, inclusive: inclusive, present: true}
	return newSubMap(t, rangeBound[K]{}, hi, false)
}

// Returns a view of the portion of this map whose keys are
// greater than fromKey. O(1)
func (t *TreeMap[K, V]) Tail(fromKey K, inclusive bool) *SubMap[K, V] {
	lo := rangeBound[K]{key: fromKey, inclusive: inclusive, present: true}
	return newSubMap(t, lo, rangeBound[K]{}, false)
}

// Returns a reverse-order view of the whole map. O(1)
func (t *TreeMap[K, V]) Descending() *SubMap[K, V] {
	return newSubMap(t, rangeBound[K]{}, rangeBound[K]{}, true)
}

// bound checks, all under the tree's order

func (v *SubMap[K, V]) aboveLow(key K) bool {
	if !v.lo.present {
		return true
	}
	c := v.tree.comparator(key, v.lo.key)
	return c > 0 || (c == 0 && v.lo.inclusive)
}

func (v *SubMap[K, V]) belowHigh(key K) bool {
	if !v.hi.present {
		return true
	}
	c := v.tree.comparator(key, v.hi.key)
	return c < 0 || (c == 0 && v.hi.inclusive)
}

func (v *SubMap[K, V]) inRange(key K) bool {
	return v.aboveLow(key) && v.belowHigh(key)
}

// endpoint validation for sub-view composition, inclusivity ignored
func (v *SubMap[K, V]) inClosedRange(key K) bool {
	if v.lo.present && v.tree.comparator(key, v.lo.key) < 0 {
		return false
	}
	if v.hi.present && v.tree.comparator(key, v.hi.key) > 0 {
		return false
	}
	return true
}

// node-level navigation clipped to the window

func (v *SubMap[K, V]) lowestNode() *treeNode[K, V] {
	var n *treeNode[K, V]
	if !v.lo.present {
		n = leftmost(v.tree.root)
	} else if v.lo.inclusive {
		n = v.tree.getCeilingNode(v.lo.key)
	} else {
		n = v.tree.getHigherNode(v.lo.key)
	}
	if n == nil || !v.belowHigh(n.key) {
		return nil
	}
	return n
}

func (v *SubMap[K, V]) highestNode() *treeNode[K, V] {
	var n *treeNode[K, V]
	if !v.hi.present {
		n = rightmost(v.tree.root)
	} else if v.hi.inclusive {
		n = v.tree.getFloorNode(v.hi.key)
	} else {
		n = v.tree.getLowerNode(v.hi.key)
	}
	if n == nil || !v.aboveLow(n.key) {
		return nil
	}
	return n
}

func (v *SubMap[K, V]) floorNode(k K) *treeNode[K, V] {
	if v.hi.present {
		c := v.tree.comparator(k, v.hi.key)
		if c > 0 || (c == 0 && !v.hi.inclusive) {
			return v.highestNode()
		}
	}
	n := v.tree.getFloorNode(k)
	if n == nil || !v.aboveLow(n.key) {
		return nil
	}
	return n
}

func (v *SubMap[K, V]) ceilingNode(k K) *treeNode[K, V] {
	if v.lo.present {
		c := v.tree.comparator(k, v.lo.key)
		if c < 0 || (c == 0 && !v.lo.inclusive) {
			return v.lowestNode()
		}
	}
	n := v.tree.getCeilingNode(k)
	if n == nil || !v.belowHigh(n.key) {
		return nil
	}
	return n
}

func (v *SubMap[K, V]) higherNode(k K) *treeNode[K, V] {
	if v.lo.present && v.tree.comparator(k, v.lo.key) < 0 {
		return v.lowestNode()
	}
	n := v.tree.getHigherNode(k)
	if n == nil || !v.belowHigh(n.key) {
		return nil
	}
	return n
}

func (v *SubMap[K, V]) lowerNode(k K) *treeNode[K, V] {
	if v.hi.present && v.tree.comparator(k, v.hi.key) > 0 {
		return v.highestNode()
	}
	n := v.tree.getLowerNode(k)
	if n == nil || !v.aboveLow(n.key) {
		return nil
	}
	return n
}

// Returns the first entry of the view in its direction, or nil. O(log n)
func (v *SubMap[K, V]) First() *Entry[K, V] {
	if v.descending {
		return exportEntry(v.highestNode())
	}
	return exportEntry(v.lowestNode())
}

// Returns the last entry of the view in its direction, or nil. O(log n)
func (v *SubMap[K, V]) Last() *Entry[K, V] {
	if v.descending {
		return exportEntry(v.lowestNode())
	}
	return exportEntry(v.highestNode())
}

// Returns a key-value mapping associated with the greatest key less
// than or equal to the given key under the view's order, or null if
// there is no such key. O(log n)
func (v *SubMap[K, V]) Floor(k K) *Entry[K, V] {
	if v.descending {
		return exportEntry(v.ceilingNode(k))
	}
	return exportEntry(v.floorNode(k))
}

// Returns a key-value mapping associated with the least key greater
// than or equal to the given key under the view's order, or null if
// there is no such key. O(log n)
func (v *SubMap[K, V]) Ceiling(k K) *Entry[K, V] {
	if v.descending {
		return exportEntry(v.floorNode(k))
	}
	return exportEntry(v.ceilingNode(k))
}

// Returns a key-value mapping associated with the least key strictly
// greater than the given key under the view's order, or null if there
// is no such key. O(log n)
func (v *SubMap[K, V]) Higher(k K) *Entry[K, V] {
	if v.descending {
		return exportEntry(v.lowerNode(k))
	}
	return exportEntry(v.higherNode(k))
}

// Returns a key-value mapping associated with the greatest key
// strictly less than the given key under the view's order, or null if
// there is no such key. O(log n)
func (v *SubMap[K, V]) Lower(k K) *Entry[K, V] {
	if v.descending {
		return exportEntry(v.higherNode(k))
	}
	return exportEntry(v.lowerNode(k))
}

// Returns the value mapped to [key] if it lies inside the view, or
// nil. O(log n)
func (v *SubMap[K, V]) Get(key K) *V {
	if !v.inRange(key) {
		return nil
	}
	return v.tree.Get(key)
}

// Checks if [key] lies inside the view and is present. O(log n)
func (v *SubMap[K, V]) ContainsKey(key K) bool {
	return v.inRange(key) && v.tree.ContainsKey(key)
}

// Writes through to the backing tree. A key outside the view bounds is
// refused with ErrKeyOutOfRange, nothing is mutated. O(log n)
func (v *SubMap[K, V]) Put(key K, value V) (*V, error) {
	if !v.inRange(key) {
		return nil, ErrKeyOutOfRange
	}
	return v.tree.Put(key, value), nil
}

// Removes [key] from the backing tree if it lies inside the view.
// Returns the removed value or nil. O(log n)
func (v *SubMap[K, V]) Remove(key K) *V {
	if !v.inRange(key) {
		return nil
	}
	return v.tree.Remove(key)
}

// Returns the number of entries inside the view. The tree keeps no
// subtree sizes, so this is a traversal cached against the tree's
// version counter. O(n) on the first call after a structural change,
// O(1) after.
func (v *SubMap[K, V]) GetSize() int {
	if !v.cacheValid || v.cacheVersion != v.tree.version {
		v.cachedSize = v.Count()
		v.cacheVersion = v.tree.version
		v.cacheValid = true
	}
	return v.cachedSize
}

func (v *SubMap[K, V]) IsEmpty() bool {
	if v.descending {
		return v.highestNode() == nil
	}
	return v.lowestNode() == nil
}

// Returns the same window walked in the opposite direction. O(1)
func (v *SubMap[K, V]) Descending() *SubMap[K, V] {
	return newSubMap(v.tree, v.lo, v.hi, !v.descending)
}

// Returns a sub-view of this view. Bounds are given in the view's own
// order and are intersected with the current window, keeping whichever
// side is stricter. An inverted range or an endpoint outside the
// parent window is refused. O(1)
func (v *SubMap[K, V]) Sub(fromKey K, toKey K, fromInclusive bool, toInclusive bool) (*SubMap[K, V], error) {
	loKey, hiKey, loInc, hiInc := fromKey, toKey, fromInclusive, toInclusive
	if v.descending {
		loKey, hiKey, loInc, hiInc = toKey, fromKey, toInclusive, fromInclusive
	}
	if v.tree.comparator(loKey, hiKey) > 0 {
		return nil, ErrEmptyRange
	}
	if !v.inClosedRange(loKey) || !v.inClosedRange(hiKey) {
		return nil, ErrKeyOutOfRange
	}
	lo := tighterLow(v.tree.comparator, v.lo, rangeBound[K]{key: loKey, inclusive: loInc, present: true})
	hi := tighterHigh(v.tree.comparator, v.hi, rangeBound[K]{key: hiKey, inclusive: hiInc, present: true})
	return newSubMap(v.tree, lo, hi, v.descending), nil
}

// Returns a sub-view holding the keys before toKey under the view's
// order. O(1)
func (v *SubMap[K, V]) Head(toKey K, inclusive bool) (*SubMap[K, V], error) {
	if !v.inClosedRange(toKey) {
		return nil, ErrKeyOutOfRange
	}
	b := rangeBound[K]{key: toKey, inclusive: inclusive, present: true}
	if v.descending {
		return newSubMap(v.tree, tighterLow(v.tree.comparator, v.lo, b), v.hi, true), nil
	}
	return newSubMap(v.tree, v.lo, tighterHigh(v.tree.comparator, v.hi, b), false), nil
}

// Returns a sub-view holding the keys from fromKey on under the view's
// order. O(1)
func (v *SubMap[K, V]) Tail(fromKey K, inclusive bool) (*SubMap[K, V], error) {
	if !v.inClosedRange(fromKey) {
		return nil, ErrKeyOutOfRange
	}
	b := rangeBound[K]{key: fromKey, inclusive: inclusive, present: true}
	if v.descending {
		return newSubMap(v.tree, v.lo, tighterHigh(v.tree.comparator, v.hi, b), true), nil
	}
	return newSubMap(v.tree, tighterLow(v.tree.comparator, v.lo, b), v.hi, false), nil
}

// Returns a bounded fail-fast iterator walking the view in its
// direction
func (v *SubMap[K, V]) Iterator() *EntryIterator[K, V] {
	if v.descending {
		return &EntryIterator[K, V]{
			tree:       v.tree,
			next:       v.highestNode(),
			descending: true,
			stop:       func(k K) bool { return !v.aboveLow(k) },
			version:    v.tree.version,
		}
	}
	return &EntryIterator[K, V]{
		tree:    v.tree,
		next:    v.lowestNode(),
		stop:    func(k K) bool { return !v.belowHigh(k) },
		version: v.tree.version,
	}
}

// returns submap iterator
func (v *SubMap[K, V]) GetIterator() IteratorBase[*Entry[K, V]] {
	return v.Iterator()
}

// stricter of two lower bounds, ties collapse to the exclusive side
func tighterLow[K any](comparator Comparator[K], a rangeBound[K], b rangeBound[K]) rangeBound[K] {
	if !a.present {
		return b
	}
	if !b.present {
		return a
	}
	c := comparator(a.key, b.key)
	if c > 0 {
		return a
	}
	if c < 0 {
		return b
	}
	return rangeBound[K]{key: a.key, inclusive: a.inclusive && b.inclusive, present: true}
}

// stricter of two upper bounds, ties collapse to the exclusive side
func tighterHigh[K any](comparator Comparator[K], a rangeBound[K], b rangeBound[K]) rangeBound[K] {
	if !a.present {
		return b
	}
	if !b.present {
		return a
	}
	c := comparator(a.key, b.key)
	if c < 0 {
		return a
	}
	if c > 0 {
		return b
	}
	return rangeBound[K]{key: a.key, inclusive: a.inclusive && b.inclusive, present: true}
}
