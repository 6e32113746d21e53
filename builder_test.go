package gollowmap_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/johnjamespj/gollowmap"
)

func sortedEntries(n int) []*gollowmap.Entry[int, int] {
	entries := make([]*gollowmap.Entry[int, int], n)
	for i := range entries {
		entries[i] = gollowmap.NewEntry(i, i*2)
	}
	return entries
}

func TestNewFromSorted(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100, 1000} {
		m, err := gollowmap.NewFromSorted(sortedEntries(n), gollowmap.OrderedComparator[int]())
		if err != nil {
			t.Fatalf("NewFromSorted(%d): %v", n, err)
		}
		if m.GetSize() != n {
			t.Fatalf("GetSize() = %d; want %d", m.GetSize(), n)
		}
		checkTree(t, m)

		entries := m.ToList()
		for i, e := range entries {
			if e.GetKey() != i || e.GetValue() != i*2 {
				t.Fatalf("entry %d = %v after bulk build of %d", i, e, n)
			}
		}
	}
}

func TestNewFromSortedAVL(t *testing.T) {
	option := gollowmap.NewOrderedMapOption[int]()
	option.SetBalancePolicy(gollowmap.AVL)

	m, err := gollowmap.NewFromSortedWithOptions[int, int](sortedEntries(1000), option)
	if err != nil {
		t.Fatalf("NewFromSortedWithOptions: %v", err)
	}
	if m.Policy() != gollowmap.AVL || m.GetSize() != 1000 {
		t.Fatalf("built policy %v size %d", m.Policy(), m.GetSize())
	}
	checkTree(t, m)

	// the built map stays valid under further mutation
	m.Put(5000, 0)
	m.Remove(500)
	checkTree(t, m)
}

func TestNewFromSortedRejectsUnsorted(t *testing.T) {
	cmp := gollowmap.OrderedComparator[int]()

	out := []*gollowmap.Entry[int, int]{
		gollowmap.NewEntry(1, 1),
		gollowmap.NewEntry(3, 3),
		gollowmap.NewEntry(2, 2),
	}
	if _, err := gollowmap.NewFromSorted(out, cmp); !errors.Is(err, gollowmap.ErrUnsortedInput) {
		t.Errorf("out-of-order input = %v; want ErrUnsortedInput", err)
	}

	dup := []*gollowmap.Entry[int, int]{
		gollowmap.NewEntry(1, 1),
		gollowmap.NewEntry(1, 2),
	}
	if _, err := gollowmap.NewFromSorted(dup, cmp); !errors.Is(err, gollowmap.ErrUnsortedInput) {
		t.Errorf("duplicate keys = %v; want ErrUnsortedInput", err)
	}
}

func TestNewFromMap(t *testing.T) {
	items := map[string]int{"b": 2, "a": 1, "d": 4, "c": 3}
	m, err := gollowmap.NewFromMap(items, gollowmap.OrderedComparator[string]())
	if err != nil {
		t.Fatalf("NewFromMap: %v", err)
	}
	checkTree(t, m)

	keys := m.Keys().ToList()
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v; want %v", keys, want)
		}
	}
	if v := m.Get("c"); v == nil || *v != 3 {
		t.Errorf("Get(c) = %v; want 3", v)
	}
}

func TestClone(t *testing.T) {
	m := gollowmap.NewOrderedAVL[int, int]()
	for i := 0; i < 200; i++ {
		m.Put(i, i)
	}

	c := m.Clone()
	checkTree(t, c)
	if c.Policy() != gollowmap.AVL || c.GetSize() != m.GetSize() {
		t.Fatalf("clone policy %v size %d", c.Policy(), c.GetSize())
	}
	for i := 0; i < 200; i++ {
		if v := c.Get(i); v == nil || *v != i {
			t.Fatalf("clone lost key %d", i)
		}
	}

	// the copies are independent both ways
	m.Remove(10)
	c.Put(1000, 1000)
	if !c.ContainsKey(10) {
		t.Errorf("removal from the original reached the clone")
	}
	if m.ContainsKey(1000) {
		t.Errorf("insert into the clone reached the original")
	}
	checkTree(t, m)
	checkTree(t, c)

	// the clone follows the same structural-change discipline as any
	// other map: its own iterators are fail-fast from the start
	itr := c.Iterator()
	c.Put(2000, 2000)
	if itr.MoveNext() || !errors.Is(itr.Err(), gollowmap.ErrConcurrentModification) {
		t.Errorf("mutating the clone did not trip the clone's iterator: %v", itr.Err())
	}
}

func TestCloneEmpty(t *testing.T) {
	c := gollowmap.NewOrdered[int, int]().Clone()
	if !c.IsEmpty() {
		t.Fatalf("clone of an empty map holds %d entries", c.GetSize())
	}
	c.Put(1, 1)
	if c.GetSize() != 1 {
		t.Errorf("GetSize() = %d after insert into an empty clone; want 1", c.GetSize())
	}
}

func TestCloneDoesNotTripIterators(t *testing.T) {
	m := gollowmap.NewOrdered[int, int]()
	for i := 0; i < 10; i++ {
		m.Put(i, i)
	}

	itr := m.Iterator()
	if !itr.MoveNext() {
		t.Fatalf("first MoveNext failed")
	}
	m.Clone()
	if !itr.MoveNext() {
		t.Errorf("Clone tripped a live iterator: %v", itr.Err())
	}
}

func doSnapshotRoundTrip(t *testing.T, compression gollowmap.Compression) {
	t.Helper()
	option := gollowmap.NewOrderedMapOption[int]()
	option.SetCompression(compression)

	m := gollowmap.NewWithOptions[int, string](option)
	for i := 0; i < 300; i++ {
		m.Put(i*7, "value")
	}

	var buf bytes.Buffer
	if err := m.WriteSnapshot(&buf); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	restored, err := gollowmap.ReadSnapshot[int, string](&buf, option)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	checkTree(t, restored)
	if restored.GetSize() != m.GetSize() {
		t.Fatalf("restored %d entries; want %d", restored.GetSize(), m.GetSize())
	}
	for i := 0; i < 300; i++ {
		if v := restored.Get(i * 7); v == nil || *v != "value" {
			t.Fatalf("restored map lost key %d", i*7)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	doSnapshotRoundTrip(t, gollowmap.NewNoCompression())
	doSnapshotRoundTrip(t, gollowmap.NewSnappyCompression())
	doSnapshotRoundTrip(t, gollowmap.NewZlibCompression())
	doSnapshotRoundTrip(t, gollowmap.NewS2Compression())
	doSnapshotRoundTrip(t, gollowmap.NewLZ4Compression())
}

// a nil compression on the option falls back to the snappy default on
// both the write and the read side
func TestSnapshotNilCompressionDefaults(t *testing.T) {
	option := gollowmap.NewOrderedMapOption[int]()
	option.SetCompression(nil)

	m := gollowmap.NewWithOptions[int, int](option)
	for i := 0; i < 50; i++ {
		m.Put(i, i)
	}

	var buf bytes.Buffer
	if err := m.WriteSnapshot(&buf); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	restored, err := gollowmap.ReadSnapshot[int, int](&buf, option)
	if err != nil {
		t.Fatalf("ReadSnapshot with a nil compression: %v", err)
	}
	if restored.GetSize() != 50 {
		t.Fatalf("restored %d entries; want 50", restored.GetSize())
	}
	for i := 0; i < 50; i++ {
		if v := restored.Get(i); v == nil || *v != i {
			t.Fatalf("restored map lost key %d", i)
		}
	}
}

func TestSnapshotEmptyMap(t *testing.T) {
	option := gollowmap.NewOrderedMapOption[string]()
	m := gollowmap.NewWithOptions[string, int](option)

	var buf bytes.Buffer
	if err := m.WriteSnapshot(&buf); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	restored, err := gollowmap.ReadSnapshot[string, int](&buf, option)
	if err != nil {
		t.Fatalf("ReadSnapshot: %v", err)
	}
	if !restored.IsEmpty() {
		t.Errorf("restored empty snapshot holds %d entries", restored.GetSize())
	}
}
