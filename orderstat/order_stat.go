// Package orderstat provides an ordered map which can locate keys by their
// position in the ordering.
package orderstat

import "github.com/ajwerner/avl/abstract"

// Tree is an ordered map augmented with subtree sizes.
type Tree[K, V any] struct {
	t abstract.Map[K, V, struct{}, aug[K], *aug[K]]
}

// MakeTree constructs a Tree ordered by cmp.
func MakeTree[K, V any](cmp func(K, K) int) *Tree[K, V] {
	return &Tree[K, V]{
		t: abstract.MakeMap[K, V, struct{}, aug[K]](struct{}{}, cmp),
	}
}

// Insert associates v with k.
func (t *Tree[K, V]) Insert(k K, v V) {
	t.t.Upsert(k, v)
}

// Remove deletes k, reporting whether it was present.
func (t *Tree[K, V]) Remove(k K) (removed bool) {
	_, removed = t.t.Delete(k)
	return removed
}

// Get returns the value associated with k.
func (t *Tree[K, V]) Get(k K) (V, bool) { return t.t.Get(k) }

// Len returns the number of keys.
func (t *Tree[K, V]) Len() int { return t.t.Len() }

// Nth returns the key and value at position i of the ordering.
func (t *Tree[K, V]) Nth(i int) (k K, v V, ok bool) {
	it := t.Iterator()
	if it.Nth(i); !it.Valid() {
		return k, v, false
	}
	return it.Cur(), it.Value(), true
}

// Rank returns the number of keys strictly less than k.
func (t *Tree[K, V]) Rank(k K) int {
	it := t.t.MakeIter()
	ll := abstract.LowLevel(&it)
	var rank int
	for ll.Root(); ll.Valid(); {
		if ll.Config().Compare(k, ll.Key()) <= 0 {
			ll.DescendLeft()
		} else {
			rank += count(ll.Left()) + 1
			ll.DescendRight()
		}
	}
	return rank
}

// Iterator iterates over a Tree in order.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V, struct{}, aug[K], *aug[K]]
}

// Iterator returns an unpositioned Iterator.
func (t *Tree[K, V]) Iterator() Iterator[K, V] {
	return Iterator[K, V]{
		it: t.t.MakeIter(),
	}
}

// Nth positions the iterator at position i of the ordering. The iterator is
// invalid if i is out of range.
func (it *Iterator[K, V]) Nth(i int) {
	ll := abstract.LowLevel(&it.it)
	if i < 0 {
		it.it.Reset()
		return
	}
	for ll.Root(); ll.Valid(); {
		left := count(ll.Left())
		switch {
		case i < left:
			ll.DescendLeft()
		case i == left:
			return
		default:
			i -= left + 1
			ll.DescendRight()
		}
	}
}

// First positions the iterator at the smallest key.
func (it *Iterator[K, V]) First() { it.it.First() }

// Last positions the iterator at the largest key.
func (it *Iterator[K, V]) Last() { it.it.Last() }

// Next moves the iterator to the next key in order.
func (it *Iterator[K, V]) Next() { it.it.Next() }

// Prev moves the iterator to the previous key in order.
func (it *Iterator[K, V]) Prev() { it.it.Prev() }

// Valid returns whether the iterator is positioned at a key.
func (it *Iterator[K, V]) Valid() bool { return it.it.Valid() }

// Cur returns the key at the iterator's position.
func (it *Iterator[K, V]) Cur() K { return it.it.Key() }

// Value returns the value at the iterator's position.
func (it *Iterator[K, V]) Value() V { return it.it.Value() }
