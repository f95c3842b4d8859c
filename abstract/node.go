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

import (
	"fmt"

	"github.com/ajwerner/avl/internal/bst"
)

// meta is the per-node state the AVL tree keeps alongside the base node.
// balance is height(right) - height(left); it lies in [-1, 1] whenever the
// tree is not in the middle of an operation.
type meta[A any] struct {
	balance int8
	aug     A
}

func (t *Map[K, V, Aux, A, AP]) balance(h bst.Handle) int8 {
	return t.t.Meta(h).balance
}

func (t *Map[K, V, Aux, A, AP]) setBalance(h bst.Handle, b int8) {
	t.t.Meta(h).balance = b
}

func (t *Map[K, V, Aux, A, AP]) updateBalance(h bst.Handle, diff int8) {
	t.t.Meta(h).balance += diff
}

func (t *Map[K, V, Aux, A, AP]) aug(h bst.Handle) *A {
	if h == bst.Nil {
		return nil
	}
	return &t.t.Meta(h).aug
}

// nodeView exposes a node to the augmentation.
type nodeView[K, V, Aux, A any, AP Aug[K, Aux, A]] struct {
	t *Map[K, V, Aux, A, AP]
	h bst.Handle
}

func (n nodeView[K, V, Aux, A, AP]) Key() K    { return n.t.t.Key(n.h) }
func (n nodeView[K, V, Aux, A, AP]) Left() *A  { return n.t.aug(n.t.t.Left(n.h)) }
func (n nodeView[K, V, Aux, A, AP]) Right() *A { return n.t.aug(n.t.t.Right(n.h)) }

func (t *Map[K, V, Aux, A, AP]) update(h bst.Handle, md UpdateMeta[K, A]) bool {
	return AP(t.aug(h)).Update(&t.cfg, nodeView[K, V, Aux, A, AP]{t: t, h: h}, md)
}

// updatePath updates the augmentation of h and every ancestor of h.
func (t *Map[K, V, Aux, A, AP]) updatePath(h bst.Handle, action Action, k K) {
	md := UpdateMeta[K, A]{Action: action, RelevantKey: k}
	for ; h != bst.Nil; h = t.t.Parent(h) {
		t.update(h, md)
	}
}

// invariantViolated is the panic value used when the rebalancing code
// observes a state which no sequence of public operations can produce.
type invariantViolated struct {
	msg string
}

func (e invariantViolated) Error() string {
	return "invariant violated: " + e.msg
}

func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(invariantViolated{msg: fmt.Sprintf(format, args...)})
	}
}
