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

// frame is one entry of the explicit DFS work stack: the node being expanded
// and the position of the next adjacency entry to examine.
type frame struct {
	node int
	next int
}

// FindSCCs partitions the nodes of g into strongly connected components using
// Kosaraju's two-pass algorithm. Every node index in [0, len(g)) appears in
// exactly one component. Components are emitted in decreasing finishing-time
// order of their roots, so source components of the condensation come first;
// within a component, nodes appear in DFS pre-order over the transpose graph.
// The result is fully deterministic for a fixed g.
//
// An empty graph yields a nil result. Edge targets outside [0, len(g)) are
// skipped, never an error.
func FindSCCs(g Graph) [][]int {
	n := len(g)
	if n == 0 {
		return nil
	}

	order := finishOrder(g)
	transpose := Transpose(g)

	visited := make([]bool, n)
	var components [][]int
	for i := n - 1; i >= 0; i-- {
		if v := order[i]; !visited[v] {
			components = append(components, collectComponent(transpose, v, visited))
		}
	}
	return components
}

// CountSCCs returns the number of strongly connected components of g.
func CountSCCs(g Graph) int {
	return len(FindSCCs(g))
}

// finishOrder is the first pass: a DFS over g that records every node exactly
// once in order of completion, scanning roots in ascending index order. The
// returned slice is a permutation of [0, len(g)).
func finishOrder(g Graph) []int {
	n := len(g)
	order := make([]int, 0, n)
	visited := make([]bool, n)
	var stack []frame

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		stack = append(stack, frame{node: root})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if w, ok := nextUnvisited(g[top.node], &top.next, visited); ok {
				visited[w] = true
				stack = append(stack, frame{node: w})
				continue
			}
			// All out-neighbors handled: the node is finished.
			order = append(order, top.node)
			stack = stack[:len(stack)-1]
		}
	}
	return order
}

// collectComponent is the second pass rooted at root: a DFS over the
// transpose graph that marks every node it reaches and returns them in
// pre-order. The nodes reached this way are exactly the strongly connected
// component of root; anything else reachable in the transpose was already
// claimed by a component whose root finished no earlier.
func collectComponent(transpose Graph, root int, visited []bool) []int {
	visited[root] = true
	component := []int{root}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if w, ok := nextUnvisited(transpose[top.node], &top.next, visited); ok {
			visited[w] = true
			component = append(component, w)
			stack = append(stack, frame{node: w})
			continue
		}
		stack = stack[:len(stack)-1]
	}
	return component
}

// nextUnvisited advances *next past visited and out-of-range targets in adj
// and reports the first remaining unvisited in-range target, if any.
func nextUnvisited(adj []int, next *int, visited []bool) (int, bool) {
	for *next < len(adj) {
		w := adj[*next]
		*next++
		if w >= 0 && w < len(visited) && !visited[w] {
			return w, true
		}
	}
	return 0, false
}
