package ordmap

import "github.com/turboMaCk/any-dict/sortable"

// isRed reports whether n is red. nil nodes count as black.
func isRed[K sortable.Sortable[K], V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

// rotateLeft rotates the subtree rooted at x to the left:
//
//	  x                y
//	 / \              / \
//	A   y      =>    x   C
//	   / \          / \
//	  B   C        A   B
//
// nolint:varnamelen // standard red-black tree variable names
func (m *Map[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent

	switch {
	case x.parent == nil:
		m.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// rotateRight rotates the subtree rooted at y to the right:
//
//	    y              x
//	   / \            / \
//	  x   C   =>     A   y
//	 / \                / \
//	A   B              B   C
//
// nolint:varnamelen // standard red-black tree variable names
func (m *Map[K, V]) rotateRight(y *node[K, V]) {
	x := y.left
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent

	switch {
	case y.parent == nil:
		m.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}

	x.right = y
	y.parent = x
}

// fixupAdd restores the red-black properties after inserting z as a red node.
// A red parent with a red child is the only possible violation; it is fixed by
// recoloring when the uncle is red and by rotations otherwise, moving up the
// tree until the violation disappears.
// nolint:varnamelen // standard red-black tree variable names
func (m *Map[K, V]) fixupAdd(z *node[K, V]) {
	for z.parent != nil && z.parent.color == red {
		// A red parent is never the root, so the grandparent exists.
		grand := z.parent.parent

		if z.parent == grand.left {
			uncle := grand.right

			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grand.color = red
				z = grand
			} else {
				if z == z.parent.right {
					z = z.parent
					m.rotateLeft(z)
				}

				z.parent.color = black
				grand.color = red
				m.rotateRight(grand)
			}
		} else {
			uncle := grand.left

			if isRed(uncle) {
				z.parent.color = black
				uncle.color = black
				grand.color = red
				z = grand
			} else {
				if z == z.parent.left {
					z = z.parent
					m.rotateRight(z)
				}

				z.parent.color = black
				grand.color = red
				m.rotateLeft(grand)
			}
		}
	}

	m.root.color = black
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
// nolint:varnamelen // standard red-black tree variable names
func (m *Map[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		m.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// minimum returns the leftmost node of the subtree rooted at n.
func minimum[K sortable.Sortable[K], V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// removeNode unlinks z from the tree and rebalances.
// nolint:varnamelen // standard red-black tree variable names
func (m *Map[K, V]) removeNode(z *node[K, V]) {
	y := z
	yColor := y.color

	var x, xParent *node[K, V]

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		m.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		m.transplant(z, z.left)
	default:
		// Replace z with its in-order successor.
		y = minimum(z.right)
		yColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			m.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		m.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yColor == black {
		m.fixupRemove(x, xParent)
	}
}

// fixupRemove restores the red-black properties after removing a black node.
// x carries an extra "black" that must be pushed up or absorbed; x may be nil,
// which is why its parent is tracked explicitly.
// nolint:varnamelen // standard red-black tree variable names
func (m *Map[K, V]) fixupRemove(x, parent *node[K, V]) {
	for x != m.root && !isRed(x) && parent != nil {
		if x == parent.left {
			w := parent.right

			if isRed(w) {
				w.color = black
				parent.color = red
				m.rotateLeft(parent)
				w = parent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent
				parent = x.parent
			} else {
				if !isRed(w.right) {
					w.left.color = black
					w.color = red
					m.rotateRight(w)
					w = parent.right
				}

				w.color = parent.color
				parent.color = black
				w.right.color = black
				m.rotateLeft(parent)
				x = m.root
				parent = nil
			}
		} else {
			w := parent.left

			if isRed(w) {
				w.color = black
				parent.color = red
				m.rotateRight(parent)
				w = parent.left
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent
				parent = x.parent
			} else {
				if !isRed(w.left) {
					w.right.color = black
					w.color = red
					m.rotateLeft(w)
					w = parent.left
				}

				w.color = parent.color
				parent.color = black
				w.left.color = black
				m.rotateRight(parent)
				x = m.root
				parent = nil
			}
		}
	}

	if x != nil {
		x.color = black
	}
}
