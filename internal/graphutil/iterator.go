// Copyright the scc-tools authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package graphutil adapts the adjacency-list graphs of the scc package to
// the interfaces of existing graph libraries, so their algorithms and
// statistics can run over the same inputs.
package graphutil

import (
	"github.com/argraph/scc-tools/analysis/scc"
)

// Iterator adapts an scc.Graph to the yourbasic/graph Iterator interface.
// Out-of-range edge targets are skipped, matching the tolerant traversals of
// the scc package.
type Iterator struct {
	G scc.Graph
}

// Order returns the number of nodes of the graph.
func (it Iterator) Order() int {
	return len(it.G)
}

// Visit calls do for every in-range out-neighbor of v with an edge cost of 1,
// aborting early if do returns true.
func (it Iterator) Visit(v int, do func(w int, c int64) bool) bool {
	if v < 0 || v >= len(it.G) {
		return false
	}
	for _, w := range it.G[v] {
		if w < 0 || w >= len(it.G) {
			continue
		}
		if do(w, 1) {
			return true
		}
	}
	return false
}
