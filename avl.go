// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package avl provides an ordered map backed by an AVL tree. Insert, Remove
// and lookups take O(log n) time.
package avl

import (
	"cmp"

	"github.com/ajwerner/avl/abstract"
)

// KeyError is returned by At when the key is not present.
type KeyError = abstract.KeyError

type noopAug[K any] struct{}

func (a *noopAug[K]) Update(
	*abstract.Config[K, struct{}], abstract.Node[K, *noopAug[K]], abstract.UpdateMeta[K, noopAug[K]],
) (changed bool) {
	return false
}

// Map is an ordered map. The zero value is not usable; construct one with
// MakeMap or New. A Map is not safe for concurrent use.
type Map[K, V any] struct {
	t abstract.Map[K, V, struct{}, noopAug[K], *noopAug[K]]
}

// MakeMap constructs a Map ordered by cmp.
func MakeMap[K, V any](cmp func(K, K) int) *Map[K, V] {
	return &Map[K, V]{
		t: abstract.MakeMap[K, V, struct{}, noopAug[K]](struct{}{}, cmp),
	}
}

// New constructs a Map using the natural ordering of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return MakeMap[K, V](cmp.Compare[K])
}

// Insert associates v with k. If k is already present only its value
// changes.
func (m *Map[K, V]) Insert(k K, v V) {
	m.t.Upsert(k, v)
}

// Remove deletes k. Removing an absent key is a no-op.
func (m *Map[K, V]) Remove(k K) {
	m.t.Delete(k)
}

// Get returns the value associated with k.
func (m *Map[K, V]) Get(k K) (V, bool) { return m.t.Get(k) }

// At returns the value associated with k, or a *KeyError.
func (m *Map[K, V]) At(k K) (V, error) { return m.t.At(k) }

// Has returns whether k is present.
func (m *Map[K, V]) Has(k K) bool { return m.t.Has(k) }

// Len returns the number of keys.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Height returns the number of levels in the tree.
func (m *Map[K, V]) Height() int { return m.t.Height() }

// Reset removes all keys.
func (m *Map[K, V]) Reset() { m.t.Reset() }

// Clone returns an independent copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: *m.t.Clone()}
}

// Verify checks the internal invariants of the tree.
func (m *Map[K, V]) Verify() error { return m.t.Verify() }

func (m *Map[K, V]) String() string { return m.t.String() }

// Iterator iterates over the keys of a Map in order.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V, struct{}, noopAug[K], *noopAug[K]]
}

// Iterator returns an unpositioned Iterator. It must not be used after the
// map is modified.
func (m *Map[K, V]) Iterator() Iterator[K, V] {
	return Iterator[K, V]{it: m.t.MakeIter()}
}

// First positions the iterator at the smallest key.
func (it *Iterator[K, V]) First() { it.it.First() }

// Last positions the iterator at the largest key.
func (it *Iterator[K, V]) Last() { it.it.Last() }

// SeekGE positions the iterator at the smallest key >= k.
func (it *Iterator[K, V]) SeekGE(k K) { it.it.SeekGE(k) }

// SeekLT positions the iterator at the largest key < k.
func (it *Iterator[K, V]) SeekLT(k K) { it.it.SeekLT(k) }

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
