// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flair

import (
	"encoding/json"
	"testing"
)

func TestFormatChoices(t *testing.T) {
	tests := []struct {
		name       string
		candidates Candidates
		want       []string
	}{
		{
			name:       "sorted by descending count",
			candidates: Candidates{"russia": 42, "ukraine": 100, "poland": 7},
			want:       []string{"(ukraine: 100)", "(russia: 42)", "(poland: 7)"},
		},
		{
			name:       "ties broken by label",
			candidates: Candidates{"b": 5, "a": 5, "c": 5},
			want:       []string{"(a: 5)", "(b: 5)", "(c: 5)"},
		},
		{
			name:       "empty table",
			candidates: Candidates{},
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatChoices(tt.candidates)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d choices, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("choice %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveDecision(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name      string
		selection string
		want      *string
	}{
		{"plain label", "(russia: 42)", str("russia")},
		{"label containing a colon", "(a:b: 7)", str("a:b")},
		{"label with spaces", "(European Union: 3)", str("European Union")},
		{"none of the above", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := ResolveDecision("flair-key", tt.selection)
			if decision.Key != "flair-key" {
				t.Errorf("key = %q, want flair-key", decision.Key)
			}
			if decision.NeedsReview {
				t.Error("needs_review must stay false")
			}
			switch {
			case tt.want == nil && decision.Value != nil:
				t.Errorf("value = %q, want null", *decision.Value)
			case tt.want != nil && decision.Value == nil:
				t.Errorf("value = null, want %q", *tt.want)
			case tt.want != nil && *decision.Value != *tt.want:
				t.Errorf("value = %q, want %q", *decision.Value, *tt.want)
			}
		})
	}
}

func TestDecisionJSONShape(t *testing.T) {
	data, err := json.Marshal(ResolveDecision("key1", ""))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if got := string(data); got != `{"key":"key1","value":null,"needs_review":false}` {
		t.Errorf("null decision = %s", got)
	}

	data, err = json.Marshal(ResolveDecision("key2", "(russia: 42)"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if got := string(data); got != `{"key":"key2","value":"russia","needs_review":false}` {
		t.Errorf("labeled decision = %s", got)
	}
}
