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

// Package abstract implements an augmented AVL tree. The balancing logic is
// layered on an unbalanced search tree whose nodes carry the balance factor
// and the augmentation.
package abstract

import (
	"fmt"

	"github.com/ajwerner/avl/internal/bst"
)

// Map is an implementation of an augmented AVL tree.
//
// A Map is not safe for concurrent use; callers must serialize all access.
type Map[K, V, Aux, A any, AP Aug[K, Aux, A]] struct {
	t   bst.Tree[K, V, meta[A]]
	cfg Config[K, Aux]
}

// MakeMap constructs a new Map ordered by cmp. The aux value is made
// available to the augmentation through its Config.
func MakeMap[K, V, Aux, A any, AP Aug[K, Aux, A]](aux Aux, cmp func(K, K) int) Map[K, V, Aux, A, AP] {
	return Map[K, V, Aux, A, AP]{
		t: bst.MakeTree[K, V, meta[A]](cmp),
		cfg: Config[K, Aux]{
			Aux: aux,
			cmp: cmp,
		},
	}
}

// KeyError is returned by At when the key is not present.
type KeyError struct {
	Key interface{}
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}

// Get returns the value associated with k.
func (t *Map[K, V, Aux, A, AP]) Get(k K) (v V, ok bool) {
	if h := t.t.Find(k); h != bst.Nil {
		return t.t.Value(h), true
	}
	return v, false
}

// Has returns whether k is present.
func (t *Map[K, V, Aux, A, AP]) Has(k K) bool {
	return t.t.Find(k) != bst.Nil
}

// At returns the value associated with k or a *KeyError if k is not present.
func (t *Map[K, V, Aux, A, AP]) At(k K) (V, error) {
	v, ok := t.Get(k)
	if !ok {
		return v, &KeyError{Key: k}
	}
	return v, nil
}

// Reset removes all items from the Map. The memory backing the nodes is
// retained for reuse.
func (t *Map[K, V, Aux, A, AP]) Reset() {
	t.t.Reset()
}

// Clone returns a copy of the Map in time linear in its size. Values and
// augmentations are copied shallowly.
func (t *Map[K, V, Aux, A, AP]) Clone() *Map[K, V, Aux, A, AP] {
	return &Map[K, V, Aux, A, AP]{
		t:   t.t.Clone(),
		cfg: t.cfg,
	}
}

// MakeIter returns a new Iterator object. It is not safe to continue using an
// Iterator after modifications are made to the tree. If modifications are made,
// create a new Iterator.
func (t *Map[K, V, Aux, A, AP]) MakeIter() Iterator[K, V, Aux, A, AP] {
	return Iterator[K, V, Aux, A, AP]{r: t, it: t.t.MakeIter()}
}

// Height returns the number of levels in the tree. It follows the taller
// child at each level and so runs in logarithmic time.
func (t *Map[K, V, Aux, A, AP]) Height() int {
	var h int
	for n := t.t.Root(); n != bst.Nil; h++ {
		if t.balance(n) > 0 {
			n = t.t.Right(n)
		} else {
			n = t.t.Left(n)
		}
	}
	return h
}

// Len returns the number of items currently in the tree.
func (t *Map[K, V, Aux, A, AP]) Len() int {
	return t.t.Len()
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Map[K, V, Aux, A, AP]) String() string {
	return t.t.String()
}
