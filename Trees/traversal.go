package Trees

import (
	"slices"

	"github.com/g-m-twostay/go-bst/Queues"
)

// Traversals are iterative with an explicit stack, so a degenerate tree
// shaped like a list doesn't grow the goroutine stack. Each returns a new
// slice of length Size().

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(D)
func (u *BST[T]) InOrder() []T {
	vs := make([]T, 0, u.sz)
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		vs = append(vs, cur.v)
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
	return vs
}

// PreOrder [Tree.PreOrder]
// Time: O(n); Space: O(D)
func (u *BST[T]) PreOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	for st := []*node[T]{u.root}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		vs = append(vs, cur.v)
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
	return vs
}

// PostOrder [Tree.PostOrder]
// Collects (self, right, left) and reverses it, which is (left, right, self).
// Time: O(n); Space: O(D)
func (u *BST[T]) PostOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	for st := []*node[T]{u.root}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		vs = append(vs, cur.v)
		if cur.l != nil {
			st = append(st, cur.l)
		}
		if cur.r != nil {
			st = append(st, cur.r)
		}
	}
	slices.Reverse(vs)
	return vs
}

// LevelOrder [Tree.LevelOrder]
// Time: O(n); Space: O(width)
func (u *BST[T]) LevelOrder() []T {
	vs := make([]T, 0, u.sz)
	if u.root == nil {
		return vs
	}
	q := Queues.MakeArrayQueue[*node[T]](u.sz/2 + 1)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		vs = append(vs, cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return vs
}
