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

// Package flair implements the manual annotation workflow: loading a
// precomputed flair candidate table, prompting a human for one canonical
// value per key, and appending each decision to a resumable JSONL log.
package flair

import (
	"fmt"
	"regexp"
	"sort"
)

// Candidates maps a raw label string to its occurrence count in the corpus.
type Candidates map[string]int

// Decision is one labeling outcome, appended to the output log as a single
// JSON line. Value is null when the human rejected every candidate.
// NeedsReview is part of the persisted shape but no code path here sets it
// true; downstream tooling owns that field.
type Decision struct {
	Key         string  `json:"key"`
	Value       *string `json:"value"`
	NeedsReview bool    `json:"needs_review"`
}

// choicePattern strips the "(label: count)" display markup from a chooser
// selection. The greedy group runs to the last colon, so labels containing
// colons stay intact.
var choicePattern = regexp.MustCompile(`\((.+):`)

// FormatChoices renders the candidate values for one key as display strings,
// sorted by descending count with ties broken by label.
func FormatChoices(candidates Candidates) []string {
	labels := make([]string, 0, len(candidates))
	for label := range candidates {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if candidates[labels[i]] != candidates[labels[j]] {
			return candidates[labels[i]] > candidates[labels[j]]
		}
		return labels[i] < labels[j]
	})

	choices := make([]string, len(labels))
	for i, label := range labels {
		choices[i] = fmt.Sprintf("(%s: %d)", label, candidates[label])
	}
	return choices
}

// ResolveDecision builds the record for a chooser selection. An empty
// selection means none-of-the-above: the value stays null.
func ResolveDecision(key, selection string) Decision {
	decision := Decision{Key: key}
	if selection == "" {
		return decision
	}
	if m := choicePattern.FindStringSubmatch(selection); m != nil {
		decision.Value = &m[1]
	}
	return decision
}
