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

// nodePool is the arena backing a Tree. Slot 0 is never handed out so that
// the zero Handle can mean "no node". Released slots are kept on a free
// list and reused by the next allocation.
type nodePool[K, V, M any] struct {
	nodes []node[K, V, M]
	free  []Handle
}

func (np *nodePool[K, V, M]) init() {
	if np.nodes == nil {
		np.nodes = make([]node[K, V, M], 1, 8)
	}
}

// get returns a pointer to the node for h. The pointer is only valid until
// the next call to alloc.
func (np *nodePool[K, V, M]) get(h Handle) *node[K, V, M] {
	if h == Nil {
		panic("bst: dereference of nil handle")
	}
	n := &np.nodes[h]
	if !n.live {
		panic("bst: use of released handle")
	}
	return n
}

func (np *nodePool[K, V, M]) alloc(key K, value V, parent Handle) Handle {
	np.init()
	var h Handle
	if n := len(np.free); n > 0 {
		h = np.free[n-1]
		np.free = np.free[:n-1]
	} else {
		np.nodes = append(np.nodes, node[K, V, M]{})
		h = Handle(len(np.nodes) - 1)
	}
	np.nodes[h] = node[K, V, M]{
		key:    key,
		value:  value,
		parent: parent,
		live:   true,
	}
	return h
}

func (np *nodePool[K, V, M]) release(h Handle) {
	// Zero the slot so that the key, value and metadata can be collected.
	np.nodes[h] = node[K, V, M]{}
	np.free = append(np.free, h)
}

// reset drops every node but retains the arena's capacity.
func (np *nodePool[K, V, M]) reset() {
	if np.nodes == nil {
		return
	}
	var zero node[K, V, M]
	for i := range np.nodes {
		np.nodes[i] = zero
	}
	np.nodes = np.nodes[:1]
	np.free = np.free[:0]
}

func (np *nodePool[K, V, M]) clone() nodePool[K, V, M] {
	var c nodePool[K, V, M]
	if np.nodes != nil {
		c.nodes = append(make([]node[K, V, M], 0, cap(np.nodes)), np.nodes...)
	}
	if len(np.free) > 0 {
		c.free = append([]Handle(nil), np.free...)
	}
	return c
}
