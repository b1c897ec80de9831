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

// Package analysis provides the input loading for the scc tools: reading
// adjacency-list graphs from YAML or JSON files into the representation
// consumed by the scc package.
package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/argraph/scc-tools/analysis/scc"
	"gopkg.in/yaml.v3"
)

// GraphFile is the on-disk representation of a graph: one adjacency list per
// node, in node-index order. For example, in YAML:
//
//	adjacency:
//	  - [1]
//	  - [2]
//	  - [0]
type GraphFile struct {
	Adjacency [][]int `yaml:"adjacency" json:"adjacency"`
}

// LoadGraph reads a graph from filename. The format is chosen by extension:
// .yaml or .yml for YAML, .json for JSON. Adjacency lists may contain
// duplicate or out-of-range targets; those are kept as-is, since the scc
// package defines its own tolerance for them.
func LoadGraph(filename string) (scc.Graph, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read graph file %s: %w", filename, err)
	}
	switch ext := strings.ToLower(path.Ext(filename)); ext {
	case ".json":
		return parseGraph(b, json.Unmarshal, filename)
	case ".yaml", ".yml":
		return parseGraph(b, yaml.Unmarshal, filename)
	default:
		return nil, fmt.Errorf("unsupported graph file extension %q (expected .yaml, .yml or .json)", ext)
	}
}

// ParseGraph parses a YAML graph document. JSON documents are accepted too,
// JSON being a subset of YAML.
func ParseGraph(b []byte) (scc.Graph, error) {
	return parseGraph(b, yaml.Unmarshal, "<memory>")
}

func parseGraph(b []byte, unmarshal func([]byte, interface{}) error, name string) (scc.Graph, error) {
	var gf GraphFile
	if err := unmarshal(b, &gf); err != nil {
		return nil, fmt.Errorf("could not parse graph file %s: %w", name, err)
	}
	return scc.Graph(gf.Adjacency), nil
}
