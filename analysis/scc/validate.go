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

import "fmt"

// RangeError lists the edges of a graph whose target lies outside the node
// range. It is purely diagnostic: FindSCCs treats such edges as absent and
// never fails on them.
type RangeError struct {
	// Nodes is the node count of the offending graph.
	Nodes int

	// Edges lists the offending (from, to) pairs in adjacency order.
	Edges [][2]int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%d edge(s) with target outside [0, %d), first is %d -> %d",
		len(e.Edges), e.Nodes, e.Edges[0][0], e.Edges[0][1])
}

// Validate checks that every edge target of g lies in [0, len(g)). It returns
// a *RangeError listing all violations, or nil when there are none. This is
// the strict counterpart to the tolerant traversals, which skip out-of-range
// edges silently.
func Validate(g Graph) error {
	n := len(g)
	var bad [][2]int
	for v, adj := range g {
		for _, w := range adj {
			if w < 0 || w >= n {
				bad = append(bad, [2]int{v, w})
			}
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return &RangeError{Nodes: n, Edges: bad}
}
