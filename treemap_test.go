package gollowmap_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/johnjamespj/gollowmap"
)

func intMap(policy gollowmap.BalancePolicy) *gollowmap.TreeMap[int, int] {
	if policy == gollowmap.AVL {
		return gollowmap.NewOrderedAVL[int, int]()
	}
	return gollowmap.NewOrdered[int, int]()
}

func checkTree[K any, V any](t *testing.T, m *gollowmap.TreeMap[K, V]) {
	t.Helper()
	if err := m.CheckInvariants(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func doRoundTrip(t *testing.T, policy gollowmap.BalancePolicy) {
	m := intMap(policy)

	if old := m.Put(10, 100); old != nil {
		t.Errorf("Put(10) on empty map returned %d; want nil", *old)
	}
	if v := m.Get(10); v == nil || *v != 100 {
		t.Errorf("Get(10) = %v; want 100", v)
	}
	if old := m.Put(10, 200); old == nil || *old != 100 {
		t.Errorf("Put(10) replace returned %v; want 100", old)
	}
	if v := m.Get(10); v == nil || *v != 200 {
		t.Errorf("Get(10) after replace = %v; want 200", v)
	}
	if m.GetSize() != 1 {
		t.Errorf("GetSize() = %d; want 1", m.GetSize())
	}
	if removed := m.Remove(10); removed == nil || *removed != 200 {
		t.Errorf("Remove(10) = %v; want 200", removed)
	}
	if v := m.Get(10); v != nil {
		t.Errorf("Get(10) after remove = %v; want nil", *v)
	}
	if removed := m.Remove(10); removed != nil {
		t.Errorf("Remove(10) twice = %v; want nil", *removed)
	}
	checkTree(t, m)
}

func TestRoundTrip(t *testing.T) {
	doRoundTrip(t, gollowmap.RedBlack)
	doRoundTrip(t, gollowmap.AVL)
}

func doOrderAndSize(t *testing.T, policy gollowmap.BalancePolicy) {
	m := intMap(policy)
	r := rand.New(rand.NewSource(42))

	inserted := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		k := r.Intn(500)
		m.Put(k, k*3)
		inserted[k] = true
	}
	if m.GetSize() != len(inserted) {
		t.Fatalf("GetSize() = %d after duplicate puts; want %d", m.GetSize(), len(inserted))
	}
	checkTree(t, m)

	// in-order traversal yields strictly increasing keys
	entries := m.ToList()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].GetKey() >= entries[i].GetKey() {
			t.Fatalf("keys out of order at %d: %d then %d", i, entries[i-1].GetKey(), entries[i].GetKey())
		}
	}

	removed := 0
	for k := range inserted {
		if removed%2 == 0 {
			if m.Remove(k) == nil {
				t.Fatalf("Remove(%d) lost an inserted key", k)
			}
		}
		removed++
	}
	want := len(inserted) - (len(inserted)+1)/2
	if m.GetSize() != want {
		t.Fatalf("GetSize() = %d after removals; want %d", m.GetSize(), want)
	}
	checkTree(t, m)
}

func TestOrderAndSizeInvariants(t *testing.T) {
	doOrderAndSize(t, gollowmap.RedBlack)
	doOrderAndSize(t, gollowmap.AVL)
}

func TestNavigation(t *testing.T) {
	m := gollowmap.NewOrdered[int, string]()
	for k := 10; k <= 100; k += 10 {
		m.Put(k, "v")
	}

	if e := m.First(); e == nil || e.GetKey() != 10 {
		t.Errorf("First() = %v; want key 10", e)
	}
	if e := m.Last(); e == nil || e.GetKey() != 100 {
		t.Errorf("Last() = %v; want key 100", e)
	}
	if k := m.FirstKey(); k == nil || *k != 10 {
		t.Errorf("FirstKey() = %v; want 10", k)
	}
	if k := m.LastKey(); k == nil || *k != 100 {
		t.Errorf("LastKey() = %v; want 100", k)
	}

	// a present key is its own floor and ceiling
	if e := m.Floor(50); e == nil || e.GetKey() != 50 {
		t.Errorf("Floor(50) = %v; want 50", e)
	}
	if e := m.Ceiling(50); e == nil || e.GetKey() != 50 {
		t.Errorf("Ceiling(50) = %v; want 50", e)
	}

	// an absent key between two neighbours
	if e := m.Floor(55); e == nil || e.GetKey() != 50 {
		t.Errorf("Floor(55) = %v; want 50", e)
	}
	if e := m.Ceiling(55); e == nil || e.GetKey() != 60 {
		t.Errorf("Ceiling(55) = %v; want 60", e)
	}

	if e := m.Higher(50); e == nil || e.GetKey() != 60 {
		t.Errorf("Higher(50) = %v; want 60", e)
	}
	if e := m.Lower(50); e == nil || e.GetKey() != 40 {
		t.Errorf("Lower(50) = %v; want 40", e)
	}

	if e := m.Floor(5); e != nil {
		t.Errorf("Floor(5) = %v; want nil", e)
	}
	if e := m.Lower(10); e != nil {
		t.Errorf("Lower(10) = %v; want nil", e)
	}
	if e := m.Ceiling(105); e != nil {
		t.Errorf("Ceiling(105) = %v; want nil", e)
	}
	if e := m.Higher(100); e != nil {
		t.Errorf("Higher(100) = %v; want nil", e)
	}
}

// sequential insertion is the worst case for an unbalanced BST, the
// policies have to keep the height logarithmic
func TestHeightBounds(t *testing.T) {
	const n = 1024

	rb := intMap(gollowmap.RedBlack)
	avl := intMap(gollowmap.AVL)
	for i := 0; i < n; i++ {
		rb.Put(i, i)
		avl.Put(i, i)
	}
	checkTree(t, rb)
	checkTree(t, avl)

	rbBound := int(2 * math.Log2(n+1))
	if h := rb.Height(); h > rbBound {
		t.Errorf("red-black height %d exceeds bound %d", h, rbBound)
	}
	avlBound := int(1.44 * math.Log2(n+2))
	if h := avl.Height(); h > avlBound {
		t.Errorf("AVL height %d exceeds bound %d", h, avlBound)
	}
}

func TestAVLSmallShape(t *testing.T) {
	m := intMap(gollowmap.AVL)
	for i := 0; i <= 6; i++ {
		m.Put(i, i)
	}
	checkTree(t, m)

	// 7 keys make a full tree: root plus two complete levels
	if h := m.Height(); h != 2 {
		t.Errorf("Height() = %d after 7 sequential inserts; want 2", h)
	}
	if e := m.First(); e == nil || e.GetKey() != 0 {
		t.Errorf("First() = %v; want key 0", e)
	}
	if e := m.Last(); e == nil || e.GetValue() != 6 {
		t.Errorf("Last() = %v; want value 6", e)
	}

	m.Remove(0)
	checkTree(t, m)
	if e := m.First(); e == nil || e.GetKey() != 1 || e.GetValue() != 1 {
		t.Errorf("First() after Remove(0) = %v; want (1, 1)", e)
	}
}

func TestClear(t *testing.T) {
	m := gollowmap.NewOrdered[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Clear()

	if !m.IsEmpty() || m.GetSize() != 0 {
		t.Errorf("map not empty after Clear")
	}
	if e := m.First(); e != nil {
		t.Errorf("First() = %v after Clear; want nil", e)
	}
	m.Put("c", 3)
	if m.GetSize() != 1 {
		t.Errorf("GetSize() = %d after reuse; want 1", m.GetSize())
	}
}

func TestCustomComparator(t *testing.T) {
	// reverse order map
	m := gollowmap.New[int, int](gollowmap.OrderedComparator[int]().Reversed())
	for i := 0; i < 10; i++ {
		m.Put(i, i)
	}
	checkTree(t, m)

	if e := m.First(); e == nil || e.GetKey() != 9 {
		t.Errorf("First() = %v under reversed order; want 9", e)
	}
	if e := m.Last(); e == nil || e.GetKey() != 0 {
		t.Errorf("Last() = %v under reversed order; want 0", e)
	}
	// floor under reversed order is the least key >= k in natural terms
	if e := m.Floor(5); e == nil || e.GetKey() != 5 {
		t.Errorf("Floor(5) = %v; want 5", e)
	}
}

func TestNilComparatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("New with a nil comparator did not panic")
		}
	}()
	gollowmap.New[int, int](nil)
}

func TestKeysAndValues(t *testing.T) {
	m := gollowmap.NewOrdered[int, string]()
	m.Put(2, "b")
	m.Put(1, "a")
	m.Put(3, "c")

	keys := m.Keys().ToList()
	if len(keys) != 3 || keys[0] != 1 || keys[1] != 2 || keys[2] != 3 {
		t.Errorf("Keys() = %v; want [1 2 3]", keys)
	}
	values := m.Values().ToList()
	if len(values) != 3 || values[0] != "a" || values[1] != "b" || values[2] != "c" {
		t.Errorf("Values() = %v; want [a b c]", values)
	}

	even := m.Where(func(e *gollowmap.Entry[int, string]) bool {
		return e.GetKey()%2 == 0
	}).ToList()
	if len(even) != 1 || even[0].GetKey() != 2 {
		t.Errorf("Where(even) = %v; want just key 2", even)
	}
}
