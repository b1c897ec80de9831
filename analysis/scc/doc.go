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

/*
Package scc computes the strongly connected components of a directed graph
with Kosaraju's two-pass algorithm.

A [Graph] is an adjacency-list representation where nodes are the indices
0..n-1. [FindSCCs] partitions the nodes into maximal sets of mutually
reachable nodes; [CountSCCs] returns only the number of such sets.

The algorithm runs two depth-first traversals: the first over the input graph
to compute a finishing order, the second over the transpose graph (see
[Transpose]) in decreasing finishing order, where each traversal tree is one
component. Both traversals use an explicit work stack, so graphs with long
chains do not exhaust the call stack. Time and auxiliary space are O(V + E).

Edge targets outside [0, n) are tolerated and skipped by every traversal;
use [Validate] to detect them explicitly.
*/
package scc
