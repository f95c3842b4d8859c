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

// Handle identifies a node within a Tree. Handles are stable for the
// lifetime of the node they refer to; once a node is spliced out its handle
// may be handed out again.
type Handle int32

// Nil is the Handle of no node.
const Nil Handle = 0

type node[K, V, M any] struct {
	key                 K
	value               V
	parent, left, right Handle
	live                bool
	meta                M
}

// Key returns the key stored at h.
func (t *Tree[K, V, M]) Key(h Handle) K { return t.np.get(h).key }

// Value returns the value stored at h.
func (t *Tree[K, V, M]) Value(h Handle) V { return t.np.get(h).value }

// SetValue overwrites the value stored at h.
func (t *Tree[K, V, M]) SetValue(h Handle, v V) { t.np.get(h).value = v }

// Parent returns the parent of h or Nil if h is the root.
func (t *Tree[K, V, M]) Parent(h Handle) Handle { return t.np.get(h).parent }

// Left returns the left child of h.
func (t *Tree[K, V, M]) Left(h Handle) Handle { return t.np.get(h).left }

// Right returns the right child of h.
func (t *Tree[K, V, M]) Right(h Handle) Handle { return t.np.get(h).right }

// SetParent sets only the parent link of h.
func (t *Tree[K, V, M]) SetParent(h, p Handle) { t.np.get(h).parent = p }

// SetLeft sets only the left link of h; the child's parent link is not
// touched.
func (t *Tree[K, V, M]) SetLeft(h, c Handle) { t.np.get(h).left = c }

// SetRight sets only the right link of h; the child's parent link is not
// touched.
func (t *Tree[K, V, M]) SetRight(h, c Handle) { t.np.get(h).right = c }

// Meta returns a pointer to the extension metadata of h. The pointer must
// not be retained across calls which allocate nodes.
func (t *Tree[K, V, M]) Meta(h Handle) *M { return &t.np.get(h).meta }

// IsLeaf returns whether h has no children.
func (t *Tree[K, V, M]) IsLeaf(h Handle) bool {
	n := t.np.get(h)
	return n.left == Nil && n.right == Nil
}

// IsLeftChild returns whether h is the left child of its parent. It returns
// false for the root.
func (t *Tree[K, V, M]) IsLeftChild(h Handle) bool {
	p := t.np.get(h).parent
	return p != Nil && t.np.get(p).left == h
}

// replaceChild points the slot of p which referred to old at repl. A Nil p
// means the root slot.
func (t *Tree[K, V, M]) replaceChild(p, old, repl Handle) {
	switch {
	case p == Nil:
		t.root = repl
	case t.np.get(p).left == old:
		t.np.get(p).left = repl
	default:
		t.np.get(p).right = repl
	}
}
