package gollowmap

// AVL repair. After a physical insert or unlink the walk starts at the
// parent of the changed position and retraces to the root, refreshing
// stored heights and rotating wherever the balance factor leaves the
// ±1 band. A same-side-heavy subtree takes a single rotation, an
// opposite-side-heavy one a double rotation. Deletion can cascade all
// the way up, so the walk never stops early.
func (t *TreeMap[K, V]) rebalance(p *treeNode[K, V]) {
	for p != nil {
		updateHeight(p)
		if bf := balanceFactorOf(p); bf > 1 {
			if balanceFactorOf(p.left) < 0 {
				// LR: rotate the left child first
				t.avlRotateLeft(p.left)
			}
			p = t.avlRotateRight(p)
		} else if bf < -1 {
			if balanceFactorOf(p.right) > 0 {
				// RL: rotate the right child first
				t.avlRotateRight(p.right)
			}
			p = t.avlRotateLeft(p)
		}
		p = p.parent
	}
}

// rotation plus height refresh of the two re-parented nodes, returns
// the node now rooting the rotated subtree

func (t *TreeMap[K, V]) avlRotateLeft(p *treeNode[K, V]) *treeNode[K, V] {
	t.rotateLeft(p)
	updateHeight(p)
	q := p.parent
	updateHeight(q)
	return q
}

func (t *TreeMap[K, V]) avlRotateRight(p *treeNode[K, V]) *treeNode[K, V] {
	t.rotateRight(p)
	updateHeight(p)
	q := p.parent
	updateHeight(q)
	return q
}
