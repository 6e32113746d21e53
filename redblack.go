package gollowmap

// Red-black insert and delete repair. Both walk upward from the changed
// position, classify by the color of the uncle (insert) or the sibling
// and its children (delete), and terminate with the root forced black.
// Absent children count as black, the nil-safe accessors in node.go
// carry that convention.

func (t *TreeMap[K, V]) fixAfterInsert(x *treeNode[K, V]) {
	x.meta = red

	for x != nil && x != t.root && colorOf(parentOf(x)) == red {
		if parentOf(x) == leftOf(parentOf(parentOf(x))) {
			y := rightOf(parentOf(parentOf(x)))
			if colorOf(y) == red {
				// red uncle: flip colors, continue a level up
				setColor(parentOf(x), black)
				setColor(y, black)
				setColor(parentOf(parentOf(x)), red)
				x = parentOf(parentOf(x))
			} else {
				if x == rightOf(parentOf(x)) {
					x = parentOf(x)
					t.rotateLeft(x)
				}
				setColor(parentOf(x), black)
				setColor(parentOf(parentOf(x)), red)
				t.rotateRight(parentOf(parentOf(x)))
			}
		} else {
			y := leftOf(parentOf(parentOf(x)))
			if colorOf(y) == red {
				setColor(parentOf(x), black)
				setColor(y, black)
				setColor(parentOf(parentOf(x)), red)
				x = parentOf(parentOf(x))
			} else {
				if x == leftOf(parentOf(x)) {
					x = parentOf(x)
					t.rotateRight(x)
				}
				setColor(parentOf(x), black)
				setColor(parentOf(parentOf(x)), red)
				t.rotateLeft(parentOf(parentOf(x)))
			}
		}
	}
	t.root.meta = black
}

// x is the position carrying the missing black height, either the
// spliced-in replacement or the still-linked node about to be detached
func (t *TreeMap[K, V]) fixAfterDelete(x *treeNode[K, V]) {
	for x != t.root && colorOf(x) == black {
		if x == leftOf(parentOf(x)) {
			sib := rightOf(parentOf(x))

			if colorOf(sib) == red {
				setColor(sib, black)
				setColor(parentOf(x), red)
				t.rotateLeft(parentOf(x))
				sib = rightOf(parentOf(x))
			}

			if colorOf(leftOf(sib)) == black && colorOf(rightOf(sib)) == black {
				setColor(sib, red)
				x = parentOf(x)
			} else {
				if colorOf(rightOf(sib)) == black {
					setColor(leftOf(sib), black)
					setColor(sib, red)
					t.rotateRight(sib)
					sib = rightOf(parentOf(x))
				}
				setColor(sib, colorOf(parentOf(x)))
				setColor(parentOf(x), black)
				setColor(rightOf(sib), black)
				t.rotateLeft(parentOf(x))
				x = t.root
			}
		} else {
			sib := leftOf(parentOf(x))

			if colorOf(sib) == red {
				setColor(sib, black)
				setColor(parentOf(x), red)
				t.rotateRight(parentOf(x))
				sib = leftOf(parentOf(x))
			}

			if colorOf(rightOf(sib)) == black && colorOf(leftOf(sib)) == black {
				setColor(sib, red)
				x = parentOf(x)
			} else {
				if colorOf(leftOf(sib)) == black {
					setColor(rightOf(sib), black)
					setColor(sib, red)
					t.rotateLeft(sib)
					sib = leftOf(parentOf(x))
				}
				setColor(sib, colorOf(parentOf(x)))
				setColor(parentOf(x), black)
				setColor(leftOf(sib), black)
				t.rotateRight(parentOf(x))
				x = t.root
			}
		}
	}
	setColor(x, black)
}
