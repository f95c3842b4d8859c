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

// Upsert adds the given key to the tree. If the key is already present its
// value is replaced and the previous value is returned; the shape of the
// tree is not changed.
func (t *Map[K, V, Aux, A, AP]) Upsert(k K, v V) (replaced V, found bool) {
	h, old, inserted := t.t.Insert(k, v)
	if !inserted {
		return old, true
	}
	t.updatePath(h, Insertion, k)
	t.rebalanceAfterInsert(h)
	return replaced, false
}

// rebalanceAfterInsert walks up from the newly inserted leaf h adjusting
// balance factors. It stops once a subtree's height is unchanged or after
// the first rotation, which always restores the height the subtree had
// before the insertion.
func (t *Map[K, V, Aux, A, AP]) rebalanceAfterInsert(h bst.Handle) {
	for p := t.t.Parent(h); p != bst.Nil; h, p = p, t.t.Parent(p) {
		if t.t.Left(p) == h {
			t.updateBalance(p, -1)
		} else {
			t.updateBalance(p, 1)
		}
		switch t.balance(p) {
		case 0:
			return
		case -1, 1:
			continue
		default:
			t.correctImbalance(p)
			return
		}
	}
}

// correctImbalance restores the balance of n, whose balance factor is -2 or
// 2 following an insertion beneath it.
func (t *Map[K, V, Aux, A, AP]) correctImbalance(n bst.Handle) {
	switch b := t.balance(n); b {
	case -2:
		l := t.t.Left(n)
		if t.balance(l) <= 0 {
			t.rotateRight(n)
			t.setBalance(n, 0)
			t.setBalance(l, 0)
			return
		}
		g := t.t.Right(l)
		gb := t.balance(g)
		t.rotateLeft(l)
		t.rotateRight(n)
		t.setDoubleRotationBalances(n, l, g, gb, false)
	case 2:
		r := t.t.Right(n)
		if t.balance(r) >= 0 {
			t.rotateLeft(n)
			t.setBalance(n, 0)
			t.setBalance(r, 0)
			return
		}
		g := t.t.Left(r)
		gb := t.balance(g)
		t.rotateRight(r)
		t.rotateLeft(n)
		t.setDoubleRotationBalances(n, r, g, gb, true)
	default:
		assertf(false, "correcting balance %d of %v", b, t.t.Key(n))
	}
}

// setDoubleRotationBalances assigns balances after g, the grandchild of n
// through child c, was promoted above both by a double rotation. gb is the
// balance of g before the rotations. If rightHeavy, c was the right child
// of n and ends up as the right child of g; otherwise c was the left child.
func (t *Map[K, V, Aux, A, AP]) setDoubleRotationBalances(
	n, c, g bst.Handle, gb int8, rightHeavy bool,
) {
	var nb, cb int8
	switch {
	case gb == 0:
	case rightHeavy == (gb < 0):
		// The shorter of g's subtrees went to c.
		if rightHeavy {
			cb = 1
		} else {
			cb = -1
		}
	default:
		if rightHeavy {
			nb = -1
		} else {
			nb = 1
		}
	}
	t.setBalance(n, nb)
	t.setBalance(c, cb)
	t.setBalance(g, 0)
}
