package gollowmap

import (
	"fmt"

	"github.com/golang-collections/collections/stack"
)

// Structural self-check, a debugging and test aid. Walks the whole
// tree validating the BST order, parent links and entry count, then
// the invariants of the active balancing policy: equal black height on
// every path and no red node with a red child for red-black, balance
// factors inside ±1 and correct stored heights for AVL. The first
// violation is returned and, when a logger is configured, logged.
func (t *TreeMap[K, V]) CheckInvariants() error {
	if err := t.checkStructure(); err != nil {
		if t.logger != nil {
			t.logger.Printf("tree invariant violation: %v", err)
		}
		return err
	}
	return nil
}

func (t *TreeMap[K, V]) checkStructure() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("root has a parent")
	}

	// iterative in-order walk for order, parent links and count
	st := stack.New()
	cur := t.root
	count := 0
	var prev *treeNode[K, V]
	for cur != nil || st.Len() > 0 {
		for cur != nil {
			st.Push(cur)
			cur = cur.left
		}
		cur = st.Pop().(*treeNode[K, V])
		count++

		if prev != nil && t.comparator(prev.key, cur.key) >= 0 {
			return fmt.Errorf("keys out of order: %v before %v", prev.key, cur.key)
		}
		if cur.left != nil && cur.left.parent != cur {
			return fmt.Errorf("bad parent link on the left child of %v", cur.key)
		}
		if cur.right != nil && cur.right.parent != cur {
			return fmt.Errorf("bad parent link on the right child of %v", cur.key)
		}

		prev = cur
		cur = cur.right
	}
	if count != t.size {
		return fmt.Errorf("size is %d but the tree holds %d nodes", t.size, count)
	}

	if t.policy == AVL {
		_, err := checkAVL(t.root)
		return err
	}
	if colorOf(t.root) != black {
		return fmt.Errorf("root is not black")
	}
	_, err := checkBlackHeight(t.root)
	return err
}

func checkBlackHeight[K any, V any](n *treeNode[K, V]) (int, error) {
	if n == nil {
		return 1, nil
	}
	if n.meta == red && (colorOf(n.left) == red || colorOf(n.right) == red) {
		return 0, fmt.Errorf("red node %v has a red child", n.key)
	}
	l, err := checkBlackHeight(n.left)
	if err != nil {
		return 0, err
	}
	r, err := checkBlackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if l != r {
		return 0, fmt.Errorf("black height mismatch at %v: %d vs %d", n.key, l, r)
	}
	if n.meta == black {
		l++
	}
	return l, nil
}

func checkAVL[K any, V any](n *treeNode[K, V]) (int32, error) {
	if n == nil {
		return 0, nil
	}
	l, err := checkAVL(n.left)
	if err != nil {
		return 0, err
	}
	r, err := checkAVL(n.right)
	if err != nil {
		return 0, err
	}
	if l-r > 1 || r-l > 1 {
		return 0, fmt.Errorf("balance factor out of range at %v: %d", n.key, l-r)
	}
	h := l
	if r > h {
		h = r
	}
	h++
	if n.meta != h {
		return 0, fmt.Errorf("stored height at %v is %d, computed %d", n.key, n.meta, h)
	}
	return h, nil
}
