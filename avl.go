package kanren

// substitution is a persistent AVL tree from variable ids to values.
// Inserting copies the path from the root; all other nodes are shared
// with the previous version, so states derived from a common ancestor
// never see each other's bindings.
type substitution struct {
	key   uint64
	value Value

	left   *substitution
	right  *substitution
	height int
}

func (n *substitution) copyNode() *substitution {
	return &substitution{
		key:    n.key,
		value:  n.value,
		left:   n.left,
		right:  n.right,
		height: n.height,
	}
}

func (n *substitution) Insert(v Var, e Value) *substitution {
	tree, _ := n.insert(v.id, e)
	return tree
}

// immutable update. boolean indicate actual new insertion happened
func (n *substitution) insert(k uint64, v Value) (*substitution, bool) {
	if n == nil {
		return &substitution{key: k, value: v, height: 1}, true
	}
	if n.key == k {
		return n, false
	}
	if k < n.key {
		left, inserted := n.left.insert(k, v)
		if !inserted {
			return n, false
		}
		newn := n.copyNode()
		newn.left = left
		return newn.rebalance(), true
	}
	right, inserted := n.right.insert(k, v)
	if !inserted {
		return n, false
	}
	newn := n.copyNode()
	newn.right = right
	return newn.rebalance(), true
}

func (n *substitution) getHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

// rebalance restores the AVL invariant at n, a fresh copy whose
// subtrees differ in height by at most two. Rotations copy the nodes
// they rewire; shared nodes are never touched.
func (n *substitution) rebalance() *substitution {
	switch n.right.getHeight() - n.left.getHeight() {
	case -2:
		if n.left.right.getHeight() > n.left.left.getHeight() {
			n.left = n.left.copyNode().rotateLeft()
		}
		return n.rotateRight()
	case 2:
		if n.right.left.getHeight() > n.right.right.getHeight() {
			n.right = n.right.copyNode().rotateRight()
		}
		return n.rotateLeft()
	}
	n.resetHeight()
	return n
}

// rotateRight lifts the left child of n. n itself must be a private copy.
func (n *substitution) rotateRight() *substitution {
	pivot := n.left.copyNode()
	n.left = pivot.right
	pivot.right = n
	n.resetHeight()
	pivot.resetHeight()
	return pivot
}

// rotateLeft mirrors rotateRight.
func (n *substitution) rotateLeft() *substitution {
	pivot := n.right.copyNode()
	n.right = pivot.left
	pivot.left = n
	n.resetHeight()
	pivot.resetHeight()
	return pivot
}

func (n *substitution) resetHeight() {
	n.height = max(n.left.getHeight(), n.right.getHeight()) + 1
}

func (n *substitution) Lookup(v Var) (Value, bool) {
	k := v.id
	for n != nil {
		switch {
		case k < n.key:
			n = n.left
		case k > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	return nil, false
}

// Len counts the bindings.
func (n *substitution) Len() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Len() + n.right.Len()
}
