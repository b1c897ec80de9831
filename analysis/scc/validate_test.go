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

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestValidateClean(t *testing.T) {
	for _, g := range []Graph{
		{},
		{{}},
		{{0}},
		{{1}, {2}, {0}},
	} {
		if err := Validate(g); err != nil {
			t.Fatalf("Validate(%v) = %v, want nil", g, err)
		}
	}
}

func TestValidateOutOfRange(t *testing.T) {
	g := Graph{{5, 1}, {0, -1}}
	err := Validate(g)
	if err == nil {
		t.Fatal("Validate accepted a graph with out-of-range targets")
	}
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Validate returned %T, want *RangeError", err)
	}
	want := [][2]int{{0, 5}, {1, -1}}
	if !reflect.DeepEqual(rangeErr.Edges, want) {
		t.Fatalf("RangeError.Edges = %v, want %v", rangeErr.Edges, want)
	}
	if rangeErr.Nodes != 2 {
		t.Fatalf("RangeError.Nodes = %d, want 2", rangeErr.Nodes)
	}
	if msg := err.Error(); !strings.Contains(msg, "0 -> 5") {
		t.Fatalf("error message %q does not mention the first bad edge", msg)
	}
}

// Validation must stay a separate diagnostic: FindSCCs keeps working on the
// same input Validate rejects.
func TestValidateDoesNotAffectFindSCCs(t *testing.T) {
	g := Graph{{5, 1}, {0, -1}}
	if err := Validate(g); err == nil {
		t.Fatal("expected a validation error")
	}
	if count := CountSCCs(g); count != 1 {
		t.Fatalf("CountSCCs = %d, want 1", count)
	}
}
