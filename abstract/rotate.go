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

// rotateLeft promotes the right child of x into the position of x.
// Balance factors are left to the caller; augmentations of the two nodes
// are recomputed.
//
// Before:
//
//	  x
//	 / \
//	a   r
//	   / \
//	  b   c
//
// After:
//
//	    r
//	   / \
//	  x   c
//	 / \
//	a   b
func (t *Map[K, V, Aux, A, AP]) rotateLeft(x bst.Handle) {
	r := t.t.Right(x)
	assertf(r != bst.Nil, "left rotation of %v without a right child", t.t.Key(x))
	p := t.t.Parent(x)
	b := t.t.Left(r)

	t.t.SetRight(x, b)
	if b != bst.Nil {
		t.t.SetParent(b, x)
	}
	t.t.ReplaceChild(p, x, r)
	t.t.SetParent(r, p)
	t.t.SetLeft(r, x)
	t.t.SetParent(x, r)
	t.rotated(x, r)
}

// rotateRight promotes the left child of x into the position of x.
//
// Before:
//
//	    x
//	   / \
//	  l   c
//	 / \
//	a   b
//
// After:
//
//	  l
//	 / \
//	a   x
//	   / \
//	  b   c
func (t *Map[K, V, Aux, A, AP]) rotateRight(x bst.Handle) {
	l := t.t.Left(x)
	assertf(l != bst.Nil, "right rotation of %v without a left child", t.t.Key(x))
	p := t.t.Parent(x)
	b := t.t.Right(l)

	t.t.SetLeft(x, b)
	if b != bst.Nil {
		t.t.SetParent(b, x)
	}
	t.t.ReplaceChild(p, x, l)
	t.t.SetParent(l, p)
	t.t.SetRight(l, x)
	t.t.SetParent(x, l)
	t.rotated(x, l)
}

func (t *Map[K, V, Aux, A, AP]) rotated(demoted, promoted bst.Handle) {
	t.update(demoted, UpdateMeta[K, A]{Action: Rotation})
	t.update(promoted, UpdateMeta[K, A]{
		Action:        Rotation,
		ModifiedOther: t.aug(demoted),
	})
}
