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

package main

import (
	"flag"
	"fmt"
	"go/build"
	"os"
	"sort"
	"strings"

	"github.com/argraph/scc-tools/analysis/scc"
	"github.com/argraph/scc-tools/internal/formatutil"
	"github.com/argraph/scc-tools/internal/funcutil"
	"golang.org/x/tools/go/buildutil"
	"golang.org/x/tools/go/callgraph"
	"golang.org/x/tools/go/callgraph/cha"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

// flags

var (
	allFlag = false
)

func init() {
	flag.BoolVar(&allFlag, "all", false, "also list non-recursive functions, one singleton group each")
	flag.Var((*buildutil.TagsFlag)(&build.Default.BuildTags), "tags", buildutil.TagsFlagDoc)
}

const usage = `Find groups of mutually recursive functions in Go packages.

Builds the class-hierarchy-analysis callgraph of the packages and partitions
it into strongly connected components: every component with more than one
function, or with a self-calling function, is a recursion group.

Usage:
  callscc package...
  callscc source.go

Use the -help flag to display the options.

Examples:
% callscc ./...
`

// pkgLoadMode loads everything needed to build SSA for the packages.
const pkgLoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo |
	packages.NeedTypesSizes

func main() {
	if err := doMain(); err != nil {
		fmt.Fprintf(os.Stderr, "callscc: %s\n", err)
		os.Exit(1)
	}
}

func doMain() error {
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, formatutil.Faint("Reading sources")+"\n")

	cfg := &packages.Config{Mode: pkgLoadMode, Tests: false}
	if len(build.Default.BuildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(build.Default.BuildTags, ",")}
	}
	initial, err := packages.Load(cfg, flag.Args()...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}
	if len(initial) == 0 {
		return fmt.Errorf("no packages")
	}
	if packages.PrintErrors(initial) > 0 {
		return fmt.Errorf("errors found, exiting")
	}

	program, ssaPackages := ssautil.AllPackages(initial, ssa.BuilderMode(0))
	for i, p := range ssaPackages {
		if p == nil {
			return fmt.Errorf("cannot build SSA for package %s", initial[i])
		}
	}
	program.Build()

	fmt.Fprintf(os.Stderr, formatutil.Faint("Building callgraph")+"\n")

	cg := cha.CallGraph(program)
	cg.DeleteSyntheticNodes()

	g, nodes := callGraphAdjacency(cg)

	fmt.Fprintf(os.Stderr, formatutil.Faint("Computing components")+"\n")

	groups := 0
	for _, component := range scc.FindSCCs(g) {
		recursive := len(component) > 1 ||
			funcutil.Contains(g[component[0]], component[0])
		if !recursive && !allFlag {
			continue
		}
		if recursive {
			groups++
		}
		printGroup(component, nodes, recursive)
	}
	fmt.Printf("%s\n", formatutil.Bold(
		fmt.Sprintf("%d recursion group(s) among %d function(s)", groups, len(nodes))))
	return nil
}

// callGraphAdjacency flattens a callgraph into the index-based adjacency-list
// form of the scc package. Functions are indexed in lexicographic name order
// so the output is stable across runs.
func callGraphAdjacency(cg *callgraph.Graph) (scc.Graph, []*callgraph.Node) {
	var nodes []*callgraph.Node
	for _, node := range cg.Nodes {
		if node.Func != nil {
			nodes = append(nodes, node)
		}
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Func.String() < nodes[j].Func.String()
	})

	index := make(map[*callgraph.Node]int, len(nodes))
	for i, node := range nodes {
		index[node] = i
	}

	g := scc.NewGraph(len(nodes))
	for i, node := range nodes {
		for _, e := range node.Out {
			if e.Callee == nil {
				continue
			}
			if j, ok := index[e.Callee]; ok {
				g.AddEdge(i, j)
			}
		}
	}
	return g, nodes
}

func printGroup(component []int, nodes []*callgraph.Node, recursive bool) {
	names := funcutil.Map(component, func(v int) string { return nodes[v].Func.String() })
	sort.Strings(names)
	switch {
	case !recursive:
		fmt.Printf("%s: %s\n", formatutil.Faint("function"), names[0])
	case len(names) == 1:
		fmt.Printf("%s: %s\n", formatutil.Yellow("self-recursive"), names[0])
	default:
		fmt.Printf("%s (%d functions):\n", formatutil.Cyan("mutual recursion"), len(names))
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
	}
}
