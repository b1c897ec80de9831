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
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/argraph/scc-tools/analysis"
	"github.com/argraph/scc-tools/analysis/config"
	"github.com/argraph/scc-tools/analysis/scc"
	"github.com/argraph/scc-tools/internal/formatutil"
	"github.com/argraph/scc-tools/internal/funcutil"
	"github.com/argraph/scc-tools/internal/graphutil"
	ybgraph "github.com/yourbasic/graph"
)

// flags

var (
	configPath    = ""
	strictFlag    = false
	jsonFlag      = false
	countFlag     = false
	graphFilename = ""
)

func init() {
	flag.StringVar(&configPath, "config", "", "config file (yaml or json)")
	flag.BoolVar(&strictFlag, "strict", false, "reject graphs with out-of-range edge targets")
	flag.BoolVar(&jsonFlag, "json", false, "output results as JSON")
	flag.BoolVar(&countFlag, "count", false, "print only the number of components")
	flag.StringVar(&graphFilename, "graph", "", "output graphviz file (single input only)")
}

const usage = `Find the strongly connected components of adjacency-list graphs.

Usage:
  sccfind graphfile...

A graph file is a yaml or json document with one adjacency list per node:

  adjacency:
    - [1]
    - [2]
    - [0]

Use the -help flag to display the options.

Examples:
% sccfind triangle.yaml
% sccfind -count -strict graphs/*.yaml
`

func main() {
	if err := doMain(); err != nil {
		fmt.Fprintf(os.Stderr, "sccfind: %s\n", err)
		os.Exit(1)
	}
}

func doMain() error {
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if graphFilename != "" && len(flag.Args()) != 1 {
		return fmt.Errorf("-graph requires exactly one input file")
	}

	cfg := config.NewDefault()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	// Flags only tighten the config, they never reset it.
	cfg.Strict = cfg.Strict || strictFlag
	cfg.JSON = cfg.JSON || jsonFlag
	logger := config.NewLogGroup(cfg)

	for _, filename := range flag.Args() {
		logger.Debugf("reading graph from %s", filename)
		g, err := analysis.LoadGraph(filename)
		if err != nil {
			return err
		}

		stats := ybgraph.Check(graphutil.Iterator{G: g})
		logger.Debugf("%s: %d nodes, %d edges, %d loops, %d isolated",
			filename, len(g), stats.Size, stats.Loops, stats.Isolated)

		if err := scc.Validate(g); err != nil {
			if cfg.Strict {
				return fmt.Errorf("%s: %w", filename, err)
			}
			logger.Warnf("%s: %v (ignored)", filename, err)
		}

		components := scc.FindSCCs(g)
		if err := report(filename, g, components, cfg); err != nil {
			return err
		}

		if graphFilename != "" {
			if err := dumpGraphviz(graphFilename, g, components); err != nil {
				return err
			}
			logger.Infof("wrote %s", graphFilename)
		}
	}
	return nil
}

// result is the JSON shape of one analyzed graph.
type result struct {
	File       string  `json:"file"`
	Count      int     `json:"count"`
	Components [][]int `json:"components"`
}

func report(filename string, g scc.Graph, components [][]int, cfg *config.Config) error {
	switch {
	case countFlag:
		fmt.Println(len(components))
	case cfg.JSON:
		b, err := json.MarshalIndent(result{File: filename, Count: len(components), Components: components}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
	default:
		fmt.Printf("%s: %s strongly connected component(s) among %d node(s)\n",
			filename, formatutil.Bold(strconv.Itoa(len(components))), len(g))
		for i, component := range components {
			ids := strings.Join(funcutil.Map(component, strconv.Itoa), " ")
			fmt.Printf("  %s %d: [%s]\n", formatutil.Cyan("SCC"), i+1, ids)
		}
	}
	return nil
}

// dumpGraphviz writes a dot rendering of g with one cluster per component.
func dumpGraphviz(filename string, g scc.Graph, components [][]int) error {
	f, err := os.OpenFile(filename, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "digraph sccs {")
	for i, component := range components {
		fmt.Fprintf(f, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(f, "    label=\"scc %d\";\n", i+1)
		for _, v := range component {
			fmt.Fprintf(f, "    n%d [label=\"%d\"];\n", v, v)
		}
		fmt.Fprintln(f, "  }")
	}
	for v, adj := range g {
		for _, w := range adj {
			if w >= 0 && w < len(g) {
				fmt.Fprintf(f, "  n%d -> n%d;\n", v, w)
			}
		}
	}
	fmt.Fprintln(f, "}")
	return nil
}
