package Trees

// A node in the BST.
// l and r are owned exclusively by the node; nil means the slot is absent.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// minimum follows l from n until it is absent. n must not be nil.
// Time: O(D); Space: O(1)
func (n *node[T]) minimum() *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// maximum follows r from n until it is absent. n must not be nil.
// Time: O(D); Space: O(1)
func (n *node[T]) maximum() *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// height of the subtree rooting at n, an absent subtree has height 0. Recursive.
func height[T any](n *node[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.l), height(n.r))
}

// count the nodes of the subtree rooting at n. Recursive.
func count[T any](n *node[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + count(n.l) + count(n.r)
}

// heightBalanced returns the height of n and whether every node in it has
// subtrees whose heights differ by at most 1. Recursive.
func heightBalanced[T any](n *node[T]) (uint, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := heightBalanced(n.l)
	if !lok {
		return 0, false
	}
	rh, rok := heightBalanced(n.r)
	if !rok {
		return 0, false
	}
	return 1 + max(lh, rh), absDiff(lh, rh) <= 1
}

func absDiff(a, b uint) uint {
	if a > b {
		return a - b
	}
	return b - a
}
