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

// Delete removes the given key from the tree, returning its value. Deleting
// a key which is not present is a no-op.
func (t *Map[K, V, Aux, A, AP]) Delete(k K) (removed V, found bool) {
	h := t.t.Find(k)
	if h == bst.Nil {
		return removed, false
	}
	removed = t.t.Value(h)
	if t.t.Left(h) != bst.Nil && t.t.Right(h) != bst.Nil {
		// Move h into the position of its predecessor, which has no right
		// child.
		t.nodeSwap(h, t.t.Predecessor(h))
	}
	parent, wasLeft := t.t.Splice(h)
	var diff int8
	if parent != bst.Nil {
		if wasLeft {
			diff = 1
		} else {
			diff = -1
		}
	}
	t.updatePath(parent, Removal, k)
	t.rebalanceAfterDelete(parent, diff)
	return removed, true
}

// nodeSwap exchanges the positions of n1 and n2 in the tree along with their
// balance factors and augmentations, which describe the positions rather
// than the keys.
func (t *Map[K, V, Aux, A, AP]) nodeSwap(n1, n2 bst.Handle) {
	t.t.Swap(n1, n2)
	m1, m2 := t.t.Meta(n1), t.t.Meta(n2)
	*m1, *m2 = *m2, *m1
}

// rebalanceAfterDelete walks up from n, one of whose subtrees became one
// level shorter. A diff of 1 means the left subtree shrank, -1 the right.
func (t *Map[K, V, Aux, A, AP]) rebalanceAfterDelete(n bst.Handle, diff int8) {
	for n != bst.Nil {
		t.updateBalance(n, diff)
		// top is the root of the subtree formerly rooted at n.
		top := n
		switch b := t.balance(n); b {
		case -1, 1:
			// Height unchanged.
			return
		case 0:
		case 2:
			r := t.t.Right(n)
			assertf(r != bst.Nil, "balance 2 at %v without a right child", t.t.Key(n))
			rb := t.balance(r)
			if rb >= 0 {
				t.rotateLeft(n)
				if rb == 0 {
					t.setBalance(n, 1)
					t.setBalance(r, -1)
					return
				}
				t.setBalance(n, 0)
				t.setBalance(r, 0)
				top = r
			} else {
				g := t.t.Left(r)
				gb := t.balance(g)
				t.rotateRight(r)
				t.rotateLeft(n)
				t.setDoubleRotationBalances(n, r, g, gb, true)
				top = g
			}
		case -2:
			l := t.t.Left(n)
			assertf(l != bst.Nil, "balance -2 at %v without a left child", t.t.Key(n))
			lb := t.balance(l)
			if lb <= 0 {
				t.rotateRight(n)
				if lb == 0 {
					t.setBalance(n, -1)
					t.setBalance(l, 1)
					return
				}
				t.setBalance(n, 0)
				t.setBalance(l, 0)
				top = l
			} else {
				g := t.t.Right(l)
				gb := t.balance(g)
				t.rotateLeft(l)
				t.rotateRight(n)
				t.setDoubleRotationBalances(n, l, g, gb, false)
				top = g
			}
		default:
			assertf(false, "balance %d at %v after removal", b, t.t.Key(n))
		}
		// The subtree rooted at top is one level shorter than before.
		if t.t.IsLeftChild(top) {
			diff = 1
		} else {
			diff = -1
		}
		n = t.t.Parent(top)
	}
}
