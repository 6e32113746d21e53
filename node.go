package gollowmap

// meta values for a red-black tree node
const (
	red   int32 = 0
	black int32 = 1
)

// A single tree node. The meta word is owned by the balancing policy of
// the tree: red/black color for RedBlack, subtree height for AVL. A
// policy is picked at construction and never mixed within one tree.
type treeNode[K any, V any] struct {
	key    K
	value  V
	left   *treeNode[K, V]
	right  *treeNode[K, V]
	parent *treeNode[K, V]
	meta   int32
}

// nil-safe accessors, an absent node is black with height zero

func colorOf[K any, V any](n *treeNode[K, V]) int32 {
	if n == nil {
		return black
	}
	return n.meta
}

func setColor[K any, V any](n *treeNode[K, V], color int32) {
	if n != nil {
		n.meta = color
	}
}

func parentOf[K any, V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n == nil {
		return nil
	}
	return n.parent
}

func leftOf[K any, V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n == nil {
		return nil
	}
	return n.left
}

func rightOf[K any, V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n == nil {
		return nil
	}
	return n.right
}

func heightOf[K any, V any](n *treeNode[K, V]) int32 {
	if n == nil {
		return 0
	}
	return n.meta
}

func updateHeight[K any, V any](n *treeNode[K, V]) {
	l, r := heightOf(n.left), heightOf(n.right)
	if l > r {
		n.meta = l + 1
	} else {
		n.meta = r + 1
	}
}

func balanceFactorOf[K any, V any](n *treeNode[K, V]) int32 {
	return heightOf(n.left) - heightOf(n.right)
}

// lowest node of a subtree
func leftmost[K any, V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node of a subtree
func rightmost[K any, V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Returns the node holding the next higher key, or nil. Walks down into
// the right subtree when there is one, otherwise climbs parents until
// the current node is a left child.
func successor[K any, V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return leftmost(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// Returns the node holding the next lower key, or nil. Mirror image of
// successor.
func predecessor[K any, V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n == nil {
		return nil
	}
	if n.left != nil {
		return rightmost(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}
