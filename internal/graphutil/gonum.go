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

package graphutil

import (
	"github.com/argraph/scc-tools/analysis/scc"
	"github.com/argraph/scc-tools/internal/funcutil"
	"gonum.org/v1/gonum/graph"
)

// Directed adapts an scc.Graph to Gonum's graph.Directed interface.
// Duplicate and out-of-range edges are dropped at construction so Gonum's
// simple-graph assumptions hold; node ids are the indices of the source
// graph.
type Directed struct {
	nodes int

	// out and in hold the deduplicated successor and predecessor ids of
	// every node, in increasing order.
	out [][]int64
	in  [][]int64
}

// NewDirected builds the Gonum view of g.
func NewDirected(g scc.Graph) *Directed {
	n := len(g)
	outSets := make([]map[int]bool, n)
	inSets := make([]map[int]bool, n)
	for v := range g {
		outSets[v] = map[int]bool{}
		inSets[v] = map[int]bool{}
	}
	for v, adj := range g {
		for _, w := range adj {
			if w >= 0 && w < n {
				outSets[v][w] = true
				inSets[w][v] = true
			}
		}
	}

	toIDs := func(set map[int]bool) []int64 {
		return funcutil.Map(funcutil.SetToOrderedSlice(set), func(x int) int64 { return int64(x) })
	}
	d := &Directed{nodes: n, out: make([][]int64, n), in: make([][]int64, n)}
	for v := 0; v < n; v++ {
		d.out[v] = toIDs(outSets[v])
		d.in[v] = toIDs(inSets[v])
	}
	return d
}

// Node returns the node with the given id, or nil if it does not exist.
func (d *Directed) Node(id int64) graph.Node {
	if id < 0 || id >= int64(d.nodes) {
		return nil
	}
	return Node(id)
}

// Nodes returns an iterator over all nodes of the graph.
func (d *Directed) Nodes() graph.Nodes {
	if d.nodes == 0 {
		return graph.Empty
	}
	ids := make([]int64, d.nodes)
	for i := range ids {
		ids[i] = int64(i)
	}
	return newNodeSet(ids)
}

// From returns an iterator over the direct successors of id.
func (d *Directed) From(id int64) graph.Nodes {
	if id < 0 || id >= int64(d.nodes) || len(d.out[id]) == 0 {
		return graph.Empty
	}
	return newNodeSet(d.out[id])
}

// To returns an iterator over the direct predecessors of id.
func (d *Directed) To(id int64) graph.Nodes {
	if id < 0 || id >= int64(d.nodes) || len(d.in[id]) == 0 {
		return graph.Empty
	}
	return newNodeSet(d.in[id])
}

// HasEdgeFromTo reports whether the edge (uid -> vid) exists.
func (d *Directed) HasEdgeFromTo(uid, vid int64) bool {
	if uid < 0 || uid >= int64(d.nodes) {
		return false
	}
	return funcutil.Contains(d.out[uid], vid)
}

// HasEdgeBetween reports whether an edge exists between the two nodes in
// either direction.
func (d *Directed) HasEdgeBetween(xid, yid int64) bool {
	return d.HasEdgeFromTo(xid, yid) || d.HasEdgeFromTo(yid, xid)
}

// Edge returns the edge (uid -> vid), or nil if it does not exist.
func (d *Directed) Edge(uid, vid int64) graph.Edge {
	if !d.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return Edge{F: Node(uid), T: Node(vid)}
}

// Node is a Gonum graph node identified by its index in the source graph.
type Node int64

// ID returns the id of the node
func (n Node) ID() int64 {
	return int64(n)
}

// Edge implements the Gonum graph.Edge interface.
type Edge struct {
	F, T Node
}

// From returns the origin of the edge
func (e Edge) From() graph.Node { return e.F }

// To returns the destination of the edge
func (e Edge) To() graph.Node { return e.T }

// ReversedEdge returns a new value representing the reversed edge
func (e Edge) ReversedEdge() graph.Edge { return Edge{F: e.T, T: e.F} }

// NodeSet is an iterator over a fixed set of node ids, implementing the Gonum
// graph.Nodes interface.
type NodeSet struct {
	ids []int64

	// cur is the index of the current node; -1 before the first call to Next.
	cur int
}

func newNodeSet(ids []int64) *NodeSet {
	return &NodeSet{ids: ids, cur: -1}
}

// Next moves the iterator to the next node, and returns true if such a node
// exists. Otherwise, returns false and the current node does not change.
func (ns *NodeSet) Next() bool {
	if ns.cur+1 < len(ns.ids) {
		ns.cur++
		return true
	}
	return false
}

// Len returns the number of nodes remaining in the iterator.
func (ns *NodeSet) Len() int {
	return len(ns.ids) - ns.cur - 1
}

// Reset rewinds the iterator to before the first node.
func (ns *NodeSet) Reset() {
	ns.cur = -1
}

// Node returns the current node of the iterator, or nil if Next has not been
// called or the set is exhausted.
func (ns *NodeSet) Node() graph.Node {
	if ns.cur < 0 || ns.cur >= len(ns.ids) {
		return nil
	}
	return Node(ns.ids[ns.cur])
}
