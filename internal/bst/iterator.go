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

package bst

// Iterator is responsible for search and traversal within a Tree. It walks
// the parent links of the tree and so needs no stack.
type Iterator[K, V, M any] struct {
	t   *Tree[K, V, M]
	cur Handle
}

// MakeIter returns a new Iterator. It is not safe to continue using an
// Iterator after modifications are made to the tree.
func (t *Tree[K, V, M]) MakeIter() Iterator[K, V, M] {
	return Iterator[K, V, M]{t: t}
}

// Reset invalidates the iterator.
func (i *Iterator[K, V, M]) Reset() { i.cur = Nil }

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V, M]) SeekGE(key K) { i.cur = i.t.SeekGE(key) }

// SeekLT seeks to the first key less-than the provided key.
func (i *Iterator[K, V, M]) SeekLT(key K) { i.cur = i.t.SeekLT(key) }

// First seeks to the first key in the Tree.
func (i *Iterator[K, V, M]) First() { i.cur = i.t.First() }

// Last seeks to the last key in the Tree.
func (i *Iterator[K, V, M]) Last() { i.cur = i.t.Last() }

// Seek positions the iterator at h.
func (i *Iterator[K, V, M]) Seek(h Handle) { i.cur = h }

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V, M]) Next() {
	if i.cur == Nil {
		return
	}
	i.cur = i.t.Successor(i.cur)
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V, M]) Prev() {
	if i.cur == Nil {
		return
	}
	i.cur = i.t.Predecessor(i.cur)
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V, M]) Valid() bool { return i.cur != Nil }

// Handle returns the node at the Iterator's current position.
func (i *Iterator[K, V, M]) Handle() Handle { return i.cur }

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V, M]) Key() K { return i.t.Key(i.cur) }

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V, M]) Value() V { return i.t.Value(i.cur) }
