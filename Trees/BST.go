package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// BST is an unbalanced binary search tree with no repeated values.
// Every value in the left subtree of a node is less than the node's value
// and every value in the right subtree is greater. No rebalancing is done,
// so the height D of the tree depends on the order of insertions and ranges
// from log2(n+1) to n.
// The zero value isn't usable, create one with New or NewFunc.
// A BST isn't safe for concurrent use; guard the whole tree with one lock
// if it's shared.
type BST[T any] struct {
	root *node[T]
	sz   uint
	cmp  func(a, b T) int
}

// New returns an empty BST ordered by the natural order of T.
func New[T constraints.Ordered]() *BST[T] {
	return &BST[T]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty BST ordered by c. c(a,b) must be negative when
// a<b, zero when a==b, and positive when a>b, and must define a total order.
func NewFunc[T any](c func(a, b T) int) *BST[T] {
	if c == nil {
		panic("Trees: nil comparator")
	}
	return &BST[T]{cmp: c}
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() uint {
	return u.sz
}

// insert v to the subtree rooting at *curPtr recursively. curPtr is the slot
// owning the subtree, so a new leaf is attached by writing to it.
// The equality check precedes any attachment, so a failed insert leaves the
// tree untouched.
func (u *BST[T]) insert(curPtr **node[T], v T) error {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T]{v: v}
		return nil
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.insert(&cur.l, v)
	} else if c > 0 {
		return u.insert(&cur.r, v)
	}
	return &DuplicateValueError{v}
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BST[T]) Insert(v T) error {
	if err := u.insert(&u.root, v); err != nil {
		return err
	}
	u.sz++
	return nil
}

// remove v from the subtree rooting at *curPtr recursively, rebinding *curPtr
// when the node holding v is unlinked.
// A node with at most one child is replaced by that child. A node with two
// children takes the value of its in-order successor, which is then removed
// from the right subtree; that second removal can't fail.
func (u *BST[T]) remove(curPtr **node[T], v T) error {
	cur := *curPtr
	if cur == nil {
		return &ValueNotFoundError{v}
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.remove(&cur.l, v)
	} else if c > 0 {
		return u.remove(&cur.r, v)
	}
	if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		cur.v = cur.r.minimum().v
		return u.remove(&cur.r, cur.v)
	}
	return nil
}

// Delete [Tree.Delete]. Recursive.
// Time: O(D)
func (u *BST[T]) Delete(v T) error {
	if err := u.remove(&u.root, v); err != nil {
		return err
	}
	u.sz--
	return nil
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *BST[T]) Search(v T) bool {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.minimum().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.maximum().v, true
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BST[T]) Height() uint {
	return height(u.root)
}

// IsBalanced [Tree.IsBalanced]
// Only the root is inspected: a tree whose root has subtrees of equal height
// is reported balanced even if those subtrees are skewed internally. Use
// IsHeightBalanced for the check at every node.
// Time: O(n)
func (u *BST[T]) IsBalanced() bool {
	if u.root == nil {
		return true
	}
	return absDiff(height(u.root.l), height(u.root.r)) <= 1
}

// IsHeightBalanced [Tree.IsHeightBalanced]. Recursive.
// Time: O(n)
func (u *BST[T]) IsHeightBalanced() bool {
	_, ok := heightBalanced(u.root)
	return ok
}

// corrupt reports whether some value in the subtree rooting at cur falls
// outside the open interval (lo, hi). nil bounds are unbounded.
func (u *BST[T]) corrupt(cur, lo, hi *node[T]) bool {
	if cur == nil {
		return false
	}
	if lo != nil && u.cmp(lo.v, cur.v) >= 0 || hi != nil && u.cmp(cur.v, hi.v) >= 0 {
		return true
	}
	return u.corrupt(cur.l, lo, cur) || u.corrupt(cur.r, cur, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Also reports a size counter that disagrees with the number of nodes.
// Time: O(n)
func (u *BST[T]) Corrupt() bool {
	return u.corrupt(u.root, nil, nil) || count(u.root) != u.sz
}

// Clear [Tree.Clear]. Dropping the root releases every node.
// Time: O(1)
func (u *BST[T]) Clear() {
	u.root, u.sz = nil, 0
}
