// Copyright 2018 The Cockroach Authors.
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

package abstract

import "github.com/ajwerner/avl/internal/bst"

// Iterator is responsible for search and traversal within a Map.
type Iterator[K, V, Aux, A any, AP Aug[K, Aux, A]] struct {
	r  *Map[K, V, Aux, A, AP]
	it bst.Iterator[K, V, meta[A]]
}

func (i *Iterator[K, V, Aux, A, AP]) lowLevel() *LowLevelIterator[K, V, Aux, A, AP] {
	return (*LowLevelIterator[K, V, Aux, A, AP])(i)
}

// Reset invalidates the iterator.
func (i *Iterator[K, V, Aux, A, AP]) Reset() {
	i.it.Reset()
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V, Aux, A, AP]) SeekGE(key K) {
	i.it.SeekGE(key)
}

// SeekLT seeks to the first key less-than the provided key.
func (i *Iterator[K, V, Aux, A, AP]) SeekLT(key K) {
	i.it.SeekLT(key)
}

// First seeks to the first key in the Map.
func (i *Iterator[K, V, Aux, A, AP]) First() {
	i.it.First()
}

// Last seeks to the last key in the Map.
func (i *Iterator[K, V, Aux, A, AP]) Last() {
	i.it.Last()
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V, Aux, A, AP]) Next() {
	i.it.Next()
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V, Aux, A, AP]) Prev() {
	i.it.Prev()
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V, Aux, A, AP]) Valid() bool {
	return i.it.Valid()
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V, Aux, A, AP]) Key() K {
	return i.it.Key()
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V, Aux, A, AP]) Value() V {
	return i.it.Value()
}
