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

package graphutil_test

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/argraph/scc-tools/analysis/scc"
	"github.com/argraph/scc-tools/internal/funcutil"
	"github.com/argraph/scc-tools/internal/graphutil"
	ybgraph "github.com/yourbasic/graph"
	"golang.org/x/exp/slices"
	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

func randomGraph(size int, seed int64) scc.Graph {
	g := scc.NewGraph(size)
	r := rand.New(rand.NewSource(seed))
	for v := 0; v < size; v++ {
		for j := 0; j < 3; j++ {
			if r.Float32() < 0.7 {
				g.AddEdge(v, int(r.Int63()%int64(size)))
			}
		}
	}
	return g
}

// canonical sorts every component and orders components by smallest node, so
// partitions from different implementations can be compared.
func canonical(components [][]int) [][]int {
	c := make([][]int, len(components))
	for i, component := range components {
		c[i] = append([]int(nil), component...)
		sort.Ints(c[i])
	}
	sort.Slice(c, func(i, j int) bool { return c[i][0] < c[j][0] })
	return c
}

func TestIteratorOrderAndVisit(t *testing.T) {
	g := scc.Graph{{1, 9, 2}, {-3}, {0}}
	it := graphutil.Iterator{G: g}
	if it.Order() != 3 {
		t.Fatalf("Order = %d, want 3", it.Order())
	}

	var seen []int
	it.Visit(0, func(w int, c int64) bool {
		seen = append(seen, w)
		return false
	})
	if !slices.Equal(seen, []int{1, 2}) {
		t.Fatalf("Visit(0) emitted %v, want [1 2] with the out-of-range target skipped", seen)
	}
	if it.Visit(1, func(w int, c int64) bool { t.Fatalf("unexpected neighbor %d", w); return true }) {
		t.Fatal("Visit(1) aborted with no in-range neighbors")
	}
	if it.Visit(17, func(w int, c int64) bool { return true }) {
		t.Fatal("Visit of a nonexistent node aborted")
	}
}

func TestIteratorCheckStats(t *testing.T) {
	g := scc.Graph{{0, 1}, {0}, {}}
	stats := ybgraph.Check(graphutil.Iterator{G: g})
	if stats.Size != 3 {
		t.Fatalf("Check.Size = %d, want 3", stats.Size)
	}
	if stats.Loops != 1 {
		t.Fatalf("Check.Loops = %d, want 1", stats.Loops)
	}
	if stats.Isolated != 1 {
		t.Fatalf("Check.Isolated = %d, want 1", stats.Isolated)
	}
}

// The yourbasic implementation serves as an oracle: both must produce the
// same partition on the same input.
func TestFindSCCsMatchesStrongComponents(t *testing.T) {
	for i := 0; i < 100; i++ {
		g := randomGraph(10, 53411+int64(i))
		got := canonical(scc.FindSCCs(g))
		want := canonical(ybgraph.StrongComponents(graphutil.Iterator{G: g}))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("partitions disagree on %v:\nkosaraju: %v\nyourbasic: %v", g, got, want)
		}
	}
	for i := 0; i < 10; i++ {
		g := randomGraph(60, 997151+int64(i))
		got := canonical(scc.FindSCCs(g))
		want := canonical(ybgraph.StrongComponents(graphutil.Iterator{G: g}))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("partitions disagree (size 60, seed offset %d)", i)
		}
	}
}

// Gonum's Tarjan implementation serves as a second oracle through the
// Directed adapter.
func TestFindSCCsMatchesGonumTarjan(t *testing.T) {
	for i := 0; i < 100; i++ {
		g := randomGraph(10, 2023+int64(i))
		got := canonical(scc.FindSCCs(g))
		want := canonical(funcutil.Map(topo.TarjanSCC(graphutil.NewDirected(g)), nodeIndices))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("partitions disagree on %v:\nkosaraju: %v\ngonum: %v", g, got, want)
		}
	}
}

func nodeIndices(nodes []gograph.Node) []int {
	return funcutil.Map(nodes, func(n gograph.Node) int { return int(n.ID()) })
}

func TestDirectedAdapter(t *testing.T) {
	g := scc.Graph{{1, 1, 5}, {0, 2}, {}}
	d := graphutil.NewDirected(g)

	if d.Node(0) == nil || d.Node(2) == nil {
		t.Fatal("existing nodes not found")
	}
	if d.Node(-1) != nil || d.Node(3) != nil {
		t.Fatal("nonexistent nodes found")
	}
	if !d.HasEdgeFromTo(0, 1) || !d.HasEdgeFromTo(1, 2) {
		t.Fatal("missing edges in the adapter")
	}
	if d.HasEdgeFromTo(0, 5) {
		t.Fatal("out-of-range edge survived construction")
	}
	if d.HasEdgeFromTo(2, 0) {
		t.Fatal("unexpected edge 2 -> 0")
	}
	if !d.HasEdgeBetween(2, 1) {
		t.Fatal("HasEdgeBetween(2, 1) = false, want true via 1 -> 2")
	}
	if e := d.Edge(0, 1); e == nil || e.From().ID() != 0 || e.To().ID() != 1 {
		t.Fatalf("Edge(0, 1) = %v", e)
	}
	if e := d.Edge(1, 1); e != nil {
		t.Fatalf("Edge(1, 1) = %v, want nil", e)
	}

	// The duplicate 0 -> 1 edge must collapse to one successor.
	from := gograph.NodesOf(d.From(0))
	if len(from) != 1 || from[0].ID() != 1 {
		t.Fatalf("From(0) = %v, want exactly node 1", from)
	}
	to := gograph.NodesOf(d.To(0))
	if len(to) != 1 || to[0].ID() != 1 {
		t.Fatalf("To(0) = %v, want exactly node 1", to)
	}
	if all := gograph.NodesOf(d.Nodes()); len(all) != 3 {
		t.Fatalf("Nodes() yielded %v, want 3 nodes", all)
	}

	empty := graphutil.NewDirected(scc.Graph{})
	if n := empty.Nodes().Len(); n != 0 {
		t.Fatalf("empty graph has %d nodes", n)
	}
}

func TestNodeSetIteration(t *testing.T) {
	d := graphutil.NewDirected(scc.Graph{{1, 2}, {}, {}})
	it := d.From(0)
	if it.Len() != 2 {
		t.Fatalf("Len = %d before iteration, want 2", it.Len())
	}
	var ids []int64
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	if !slices.Equal(ids, []int64{1, 2}) {
		t.Fatalf("iterated %v, want [1 2]", ids)
	}
	if it.Len() != 0 || it.Next() {
		t.Fatal("exhausted iterator kept going")
	}
	it.Reset()
	if it.Len() != 2 || !it.Next() || it.Node().ID() != 1 {
		t.Fatal("Reset did not rewind the iterator")
	}
}
