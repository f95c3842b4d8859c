package abstract

import "github.com/ajwerner/avl/internal/bst"

// LowLevelIterator is exposed to developers for use in implementing
// augmented search functionality. It navigates the tree structure directly:
// after Root, the Descend and Ascend methods move between parents and
// children. Moves made through it are visible on the Iterator it was
// obtained from.
type LowLevelIterator[K, V, Aux, A any, AP Aug[K, Aux, A]] Iterator[K, V, Aux, A, AP]

// LowLevel converts an iterator to a LowLevelIterator.
func LowLevel[K, V, Aux, A any, AP Aug[K, Aux, A]](
	it *Iterator[K, V, Aux, A, AP],
) *LowLevelIterator[K, V, Aux, A, AP] {
	return it.lowLevel()
}

// Config returns the Map's config.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Config() *Config[K, Aux] {
	return &i.r.cfg
}

// Root positions the iterator at the root of the tree. The iterator is
// invalid if the tree is empty.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Root() {
	i.it.Seek(i.r.t.Root())
}

// Valid returns whether the iterator is positioned at a node.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Valid() bool {
	return i.it.Valid()
}

// Key returns the key of the current node.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Key() K {
	return i.it.Key()
}

// Aug returns the augmentation of the current node.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Aug() AP {
	return AP(i.r.aug(i.it.Handle()))
}

// Left returns the augmentation of the left child of the current node, or
// nil if it has none.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Left() AP {
	return AP(i.r.aug(i.r.t.Left(i.it.Handle())))
}

// Right returns the augmentation of the right child of the current node, or
// nil if it has none.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Right() AP {
	return AP(i.r.aug(i.r.t.Right(i.it.Handle())))
}

// IsLeaf returns true if the current node has no children.
func (i *LowLevelIterator[K, V, Aux, A, AP]) IsLeaf() bool {
	return i.r.t.IsLeaf(i.it.Handle())
}

// DescendLeft moves to the left child of the current node. It is illegal
// to call if there is no such child.
func (i *LowLevelIterator[K, V, Aux, A, AP]) DescendLeft() {
	i.it.Seek(i.r.t.Left(i.it.Handle()))
}

// DescendRight moves to the right child of the current node. It is illegal
// to call if there is no such child.
func (i *LowLevelIterator[K, V, Aux, A, AP]) DescendRight() {
	i.it.Seek(i.r.t.Right(i.it.Handle()))
}

// Ascend moves to the parent of the current node. The iterator becomes
// invalid if the current node is the root.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Ascend() {
	i.it.Seek(i.r.t.Parent(i.it.Handle()))
}

// Depth returns the number of nodes above the current node.
func (i *LowLevelIterator[K, V, Aux, A, AP]) Depth() int {
	var d int
	for h := i.r.t.Parent(i.it.Handle()); h != bst.Nil; h = i.r.t.Parent(h) {
		d++
	}
	return d
}
