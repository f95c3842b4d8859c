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

// Package bst implements an unbalanced binary search tree whose nodes live
// in an arena and are addressed by Handle. It provides the structural
// primitives (insertion without rebalancing, splicing, swapping, ordered
// navigation) on top of which balanced trees are built. Each node carries
// an opaque extension of type M for use by such trees.
//
// A Tree is not safe for concurrent use.
package bst

import (
	"fmt"
	"strings"
)

// Tree is a binary search tree keyed by K.
type Tree[K, V, M any] struct {
	cfg    Config[K]
	np     nodePool[K, V, M]
	root   Handle
	length int
}

// MakeTree constructs a new Tree ordered by cmp.
func MakeTree[K, V, M any](cmp func(K, K) int) Tree[K, V, M] {
	return Tree[K, V, M]{cfg: makeConfig(cmp)}
}

// Config returns the Tree's config.
func (t *Tree[K, V, M]) Config() *Config[K] { return &t.cfg }

// Compare compares two keys with the Tree's comparison function.
func (t *Tree[K, V, M]) Compare(a, b K) int { return t.cfg.cmp(a, b) }

// Root returns the root of the tree or Nil if it is empty.
func (t *Tree[K, V, M]) Root() Handle { return t.root }

// SetRoot overwrites the root slot. The parent link of h is not modified.
func (t *Tree[K, V, M]) SetRoot(h Handle) { t.root = h }

// ReplaceChild points the child slot of p which currently refers to old at
// repl. If p is Nil, the root slot is updated. The parent link of repl is
// not modified.
func (t *Tree[K, V, M]) ReplaceChild(p, old, repl Handle) {
	t.replaceChild(p, old, repl)
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, V, M]) Len() int { return t.length }

// Find returns the node holding k, or Nil.
func (t *Tree[K, V, M]) Find(k K) Handle {
	h := t.root
	for h != Nil {
		n := t.np.get(h)
		c := t.cfg.cmp(k, n.key)
		switch {
		case c < 0:
			h = n.left
		case c > 0:
			h = n.right
		default:
			return h
		}
	}
	return Nil
}

// Insert adds k to the tree without rebalancing. If k is already present its
// value is overwritten, the existing node and the previous value are
// returned and inserted is false; the shape of the tree does not change.
// Otherwise a new leaf with zero metadata is linked into place.
func (t *Tree[K, V, M]) Insert(k K, v V) (h Handle, old V, inserted bool) {
	if t.root == Nil {
		t.root = t.np.alloc(k, v, Nil)
		t.length++
		return t.root, old, true
	}
	cur := t.root
	for {
		n := t.np.get(cur)
		c := t.cfg.cmp(k, n.key)
		var next Handle
		switch {
		case c < 0:
			next = n.left
		case c > 0:
			next = n.right
		default:
			old, n.value = n.value, v
			return cur, old, false
		}
		if next == Nil {
			// n is invalidated by alloc.
			h = t.np.alloc(k, v, cur)
			if c < 0 {
				t.np.get(cur).left = h
			} else {
				t.np.get(cur).right = h
			}
			t.length++
			return h, old, true
		}
		cur = next
	}
}

// Splice removes h, which must have at most one child, from the tree. The
// child, if any, takes the place of h. It returns the former parent of h
// and whether h was its left child. The handle h is released.
func (t *Tree[K, V, M]) Splice(h Handle) (parent Handle, wasLeft bool) {
	n := t.np.get(h)
	if n.left != Nil && n.right != Nil {
		panic("bst: splice of node with two children")
	}
	child := n.left
	if child == Nil {
		child = n.right
	}
	parent = n.parent
	if child != Nil {
		t.np.get(child).parent = parent
	}
	if parent != Nil {
		wasLeft = t.np.get(parent).left == h
	}
	t.replaceChild(parent, h, child)
	t.np.release(h)
	t.length--
	return parent, wasLeft
}

// Swap exchanges the positions of n1 and n2 in the tree. Each node keeps its
// key, value and metadata; only parent and child links, and possibly the
// root slot, change. The nodes may be adjacent.
func (t *Tree[K, V, M]) Swap(n1, n2 Handle) {
	if n1 == n2 {
		return
	}
	a, b := t.np.get(n1), t.np.get(n2)
	p1, l1, r1 := a.parent, a.left, a.right
	p2, l2, r2 := b.parent, b.left, b.right
	n1Left := p1 != Nil && t.np.get(p1).left == n1
	n2Left := p2 != Nil && t.np.get(p2).left == n2

	a.parent, a.left, a.right = p2, l2, r2
	b.parent, b.left, b.right = p1, l1, r1

	// Where one node was the child of the other, the links copied above
	// point each node at itself.
	switch {
	case r1 == n2:
		a.parent, b.right = n2, n1
	case l1 == n2:
		a.parent, b.left = n2, n1
	case r2 == n1:
		b.parent, a.right = n1, n2
	case l2 == n1:
		b.parent, a.left = n1, n2
	}

	if p1 != n2 {
		switch {
		case p1 == Nil:
			t.root = n2
		case n1Left:
			t.np.get(p1).left = n2
		default:
			t.np.get(p1).right = n2
		}
	}
	if p2 != n1 {
		switch {
		case p2 == Nil:
			t.root = n1
		case n2Left:
			t.np.get(p2).left = n1
		default:
			t.np.get(p2).right = n1
		}
	}
	for _, c := range [...]Handle{a.left, a.right} {
		if c != Nil {
			t.np.get(c).parent = n1
		}
	}
	for _, c := range [...]Handle{b.left, b.right} {
		if c != Nil {
			t.np.get(c).parent = n2
		}
	}
}

// Min returns the node with the smallest key in the subtree rooted at h.
func (t *Tree[K, V, M]) Min(h Handle) Handle {
	if h == Nil {
		return Nil
	}
	for l := t.np.get(h).left; l != Nil; l = t.np.get(h).left {
		h = l
	}
	return h
}

// Max returns the node with the largest key in the subtree rooted at h.
func (t *Tree[K, V, M]) Max(h Handle) Handle {
	if h == Nil {
		return Nil
	}
	for r := t.np.get(h).right; r != Nil; r = t.np.get(h).right {
		h = r
	}
	return h
}

// First returns the node with the smallest key in the tree.
func (t *Tree[K, V, M]) First() Handle { return t.Min(t.root) }

// Last returns the node with the largest key in the tree.
func (t *Tree[K, V, M]) Last() Handle { return t.Max(t.root) }

// Predecessor returns the node with the largest key strictly less than the
// key of h, or Nil.
func (t *Tree[K, V, M]) Predecessor(h Handle) Handle {
	n := t.np.get(h)
	if n.left != Nil {
		return t.Max(n.left)
	}
	for p := n.parent; p != Nil; p = t.np.get(h).parent {
		if t.np.get(p).right == h {
			return p
		}
		h = p
	}
	return Nil
}

// Successor returns the node with the smallest key strictly greater than the
// key of h, or Nil.
func (t *Tree[K, V, M]) Successor(h Handle) Handle {
	n := t.np.get(h)
	if n.right != Nil {
		return t.Min(n.right)
	}
	for p := n.parent; p != Nil; p = t.np.get(h).parent {
		if t.np.get(p).left == h {
			return p
		}
		h = p
	}
	return Nil
}

// SeekGE returns the node with the smallest key greater than or equal to k.
func (t *Tree[K, V, M]) SeekGE(k K) Handle {
	var best Handle
	for h := t.root; h != Nil; {
		n := t.np.get(h)
		c := t.cfg.cmp(k, n.key)
		switch {
		case c < 0:
			best, h = h, n.left
		case c > 0:
			h = n.right
		default:
			return h
		}
	}
	return best
}

// SeekLT returns the node with the largest key strictly less than k.
func (t *Tree[K, V, M]) SeekLT(k K) Handle {
	var best Handle
	for h := t.root; h != Nil; {
		n := t.np.get(h)
		if t.cfg.cmp(n.key, k) < 0 {
			best, h = h, n.right
		} else {
			h = n.left
		}
	}
	return best
}

// Height returns the number of levels in the tree. It visits every node.
func (t *Tree[K, V, M]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K, V, M]) height(h Handle) int {
	if h == Nil {
		return 0
	}
	n := t.np.get(h)
	return 1 + max(t.height(n.left), t.height(n.right))
}

// Reset removes all nodes from the Tree. The arena is retained so that
// subsequent insertions can reuse it.
func (t *Tree[K, V, M]) Reset() {
	t.np.reset()
	t.root = Nil
	t.length = 0
}

// Clone returns a copy of the Tree. Handles of the receiver refer to the
// same keys in the copy. Keys, values and metadata are copied shallowly.
func (t *Tree[K, V, M]) Clone() Tree[K, V, M] {
	c := *t
	c.np = t.np.clone()
	return c
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[K, V, M]) String() string {
	if t.root == Nil {
		return ";"
	}
	var b strings.Builder
	t.writeString(&b, t.root)
	return b.String()
}

func (t *Tree[K, V, M]) writeString(b *strings.Builder, h Handle) {
	n := t.np.get(h)
	if n.left != Nil {
		b.WriteString("(")
		t.writeString(b, n.left)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v", n.key, n.value)
	if n.right != Nil {
		b.WriteString("(")
		t.writeString(b, n.right)
		b.WriteString(")")
	}
}
