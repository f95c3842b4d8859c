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

// Node represents an abstraction of a node exposed to the
// augmentation and low-level iteration primitives.
type Node[K, A any] interface {

	// Key returns the key stored at this node.
	Key() K

	// Left returns the augmentation of the left child, or nil if there is
	// no left child.
	Left() A

	// Right returns the augmentation of the right child, or nil if there is
	// no right child.
	Right() A
}

// Aug is a data structure which augments a node of the tree. It is updated
// when the structure or contents of the subtree rooted at the current node
// changes.
type Aug[K, Aux, A any] interface {
	*A

	// Update is used to update the state of the node augmentation in response
	// to a mutation to the tree. See Action and UpdateMeta for the semantics.
	// The children's augmentations are always up to date when Update is
	// called. The method must return true if the augmentation's value
	// changed.
	Update(*Config[K, Aux], Node[K, *A], UpdateMeta[K, A]) (changed bool)
}

// Config is passed to the augmentation's Update method. It carries the
// auxiliary data provided when the Map was made and the key comparison
// function.
type Config[K, Aux any] struct {
	Aux Aux
	cmp func(K, K) int
}

// Compare compares two keys using the same comparison function as the Map.
func (c *Config[K, Aux]) Compare(a, b K) int { return c.cmp(a, b) }

// Action is used to classify the type of Update in order to permit various
// optimizations when updated the augmented state.
type Action int

const (

	// Default implies that no assumptions may be made with regards to the
	// change in state of the node and thus the augmented state should be
	// recalculated in full.
	Default Action = iota

	// Insertion indicates that RelevantKey was added to the subtree rooted
	// at this node.
	Insertion

	// Removal indicates that RelevantKey was removed from the subtree rooted
	// at this node.
	Removal

	// Rotation indicates that the node changed position in a rotation. The
	// set of keys in the subtree rooted at the node may have changed
	// arbitrarily. If the node was promoted, ModifiedOther holds the
	// augmentation of the node it displaced, which is now its child.
	Rotation
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case Default:
		return "default"
	case Insertion:
		return "insertion"
	case Removal:
		return "removal"
	case Rotation:
		return "rotation"
	default:
		return "unknown"
	}
}

// UpdateMeta is used to describe the update operation.
type UpdateMeta[K, A any] struct {

	// Action indicates the semantics of the below fields. If Default, no
	// fields will be populated.
	Action Action

	// ModifiedOther is the augmentation of the demoted node during a
	// Rotation of the promoted node.
	ModifiedOther *A

	// RelevantKey will be populated for Insertion and Removal.
	RelevantKey K
}
