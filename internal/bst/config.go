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

// Config is used to configure the tree. It currently consists only of the
// comparison function for keys.
type Config[K any] struct {
	cmp func(K, K) int
}

// Compare compares two keys using the same comparison function as the Tree.
func (c *Config[K]) Compare(a, b K) int { return c.cmp(a, b) }

func makeConfig[K any](cmp func(K, K) int) Config[K] {
	if cmp == nil {
		panic("bst: nil comparison function")
	}
	return Config[K]{cmp: cmp}
}
