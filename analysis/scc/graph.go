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

package scc

// Graph is a directed graph in adjacency-list form. The nodes are the indices
// 0..len(g)-1 and g[v] lists the targets of the edges out of v, in insertion
// order. Adjacency lists may contain duplicates; targets outside [0, len(g))
// are tolerated and skipped by every traversal (see Validate).
type Graph [][]int

// NewGraph returns a graph with n nodes and no edges.
func NewGraph(n int) Graph {
	return make(Graph, n)
}

// AddEdge adds a directed edge from u to v. The source u must be a valid node
// index; the target v may be anything, out-of-range targets are simply
// ignored by the traversals.
func (g Graph) AddEdge(u, v int) {
	g[u] = append(g[u], v)
}

// NumEdges returns the number of recorded edges, counting duplicates and
// out-of-range edges.
func (g Graph) NumEdges() int {
	m := 0
	for _, adj := range g {
		m += len(adj)
	}
	return m
}

// Transpose returns the reverse graph of g: for every edge (v -> w) of g with
// w in [0, len(g)), the result contains the edge (w -> v). Out-of-range edges
// are dropped, not mirrored. g is not modified.
func Transpose(g Graph) Graph {
	n := len(g)
	t := make(Graph, n)
	for v, adj := range g {
		for _, w := range adj {
			if w >= 0 && w < n {
				t[w] = append(t[w], v)
			}
		}
	}
	return t
}
