package Trees

// Tree is a binary search tree holding distinct values.
// Lookups that can come up empty return (T, bool); the T is the zero value
// and meaningless when the bool is false, e.g. Minimum of an empty tree.
// Mutators report failures as errors, always either *DuplicateValueError
// or *ValueNotFoundError, and leave the tree unchanged when they fail.
// Traversals return freshly allocated slices, modifying them doesn't
// affect the tree.
type Tree[T any] interface {
	//Insert v to the Tree. Fails with *DuplicateValueError if v is
	//already present, in which case the tree is unchanged.
	Insert(v T) error
	//Delete v from the Tree. Fails with *ValueNotFoundError if v isn't
	//present, in which case the tree is unchanged.
	Delete(v T) error
	//Search reports whether v is in the tree.
	Search(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//InOrder returns the values in ascending order.
	InOrder() []T
	//PreOrder returns the values visiting each node before its children.
	PreOrder() []T
	//PostOrder returns the values visiting each node after its children.
	PostOrder() []T
	//LevelOrder returns the values level by level, left to right.
	LevelOrder() []T
	//Size of the tree.
	Size() uint
	//Height of the tree. 0 when empty, 1 for a single node.
	Height() uint
	//IsBalanced compares only the heights of the root's two subtrees.
	IsBalanced() bool
	//IsHeightBalanced checks the balance condition at every node.
	IsHeightBalanced() bool
	//Corrupt reports whether some value sits on the wrong side of an
	//ancestor, or the size count disagrees with the nodes. Balance isn't
	//considered.
	Corrupt() bool
	//Clear the tree.
	Clear()
}
