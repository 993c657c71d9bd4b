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
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
)

// scriptedChooser answers prompts from a fixed script and records what it
// was asked.
type scriptedChooser struct {
	answers  map[string]string
	failOn   string
	prompted []string
}

func (c *scriptedChooser) Choose(message string, options []string) (string, error) {
	c.prompted = append(c.prompted, message)
	if message == c.failOn {
		return "", relayerrors.ErrCanceled
	}
	return c.answers[message], nil
}

func readDecisions(t *testing.T, path string) []Decision {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open label log: %v", err)
	}
	defer file.Close()

	var decisions []Decision
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var d Decision
		if err := json.Unmarshal(scanner.Bytes(), &d); err != nil {
			t.Fatalf("corrupt log line %q: %v", scanner.Text(), err)
		}
		decisions = append(decisions, d)
	}
	return decisions
}

var testTable = map[string]Candidates{
	"c-key": {"gamma": 1},
	"a-key": {"alpha": 3, "beta": 1},
	"b-key": {"beta": 2},
}

func TestSessionRun_PromptsInSortedKeyOrder(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "labels.jsonl")
	chooser := &scriptedChooser{answers: map[string]string{
		"a-key": "(alpha: 3)",
		"b-key": "",
		"c-key": "(gamma: 1)",
	}}

	session := &Session{Chooser: chooser, DestPath: dest}
	if err := session.Run(testTable, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"a-key", "b-key", "c-key"}
	if len(chooser.prompted) != len(wantOrder) {
		t.Fatalf("prompted %d keys, want %d", len(chooser.prompted), len(wantOrder))
	}
	for i, want := range wantOrder {
		if chooser.prompted[i] != want {
			t.Errorf("prompt %d = %q, want %q", i, chooser.prompted[i], want)
		}
	}

	decisions := readDecisions(t, dest)
	if len(decisions) != 3 {
		t.Fatalf("got %d decisions, want 3", len(decisions))
	}
	if decisions[0].Value == nil || *decisions[0].Value != "alpha" {
		t.Errorf("a-key decision = %+v, want alpha", decisions[0])
	}
	if decisions[1].Value != nil {
		t.Errorf("b-key value = %q, want null", *decisions[1].Value)
	}
}

func TestSessionRun_ResumeSkipsLabeledKeys(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "labels.jsonl")

	// Simulate a prior run that labeled a-key and b-key.
	prior := "{\"key\":\"a-key\",\"value\":\"alpha\",\"needs_review\":false}\n" +
		"{\"key\":\"b-key\",\"value\":null,\"needs_review\":false}\n"
	if err := os.WriteFile(dest, []byte(prior), 0o644); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	chooser := &scriptedChooser{answers: map[string]string{"c-key": "(gamma: 1)"}}
	session := &Session{Chooser: chooser, DestPath: dest}
	if err := session.Run(testTable, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(chooser.prompted) != 1 || chooser.prompted[0] != "c-key" {
		t.Errorf("prompted = %v, want only c-key", chooser.prompted)
	}

	decisions := readDecisions(t, dest)
	if len(decisions) != 3 {
		t.Fatalf("got %d decisions, want 3 (2 prior + 1 new)", len(decisions))
	}
	if decisions[2].Key != "c-key" {
		t.Errorf("appended key = %q, want c-key", decisions[2].Key)
	}
}

func TestSessionRun_FreshStartTruncates(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "labels.jsonl")

	prior := "{\"key\":\"a-key\",\"value\":\"stale\",\"needs_review\":false}\n"
	if err := os.WriteFile(dest, []byte(prior), 0o644); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	chooser := &scriptedChooser{answers: map[string]string{
		"a-key": "(alpha: 3)",
		"b-key": "(beta: 2)",
		"c-key": "(gamma: 1)",
	}}
	session := &Session{Chooser: chooser, DestPath: dest}
	if err := session.Run(testTable, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(chooser.prompted) != 3 {
		t.Errorf("prompted %d keys, want all 3 after truncation", len(chooser.prompted))
	}

	decisions := readDecisions(t, dest)
	if len(decisions) != 3 {
		t.Fatalf("got %d decisions, want 3", len(decisions))
	}
	if decisions[0].Value == nil || *decisions[0].Value != "alpha" {
		t.Errorf("stale decision survived the truncation: %+v", decisions[0])
	}
}

func TestSessionRun_CancellationKeepsProgress(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "labels.jsonl")

	chooser := &scriptedChooser{
		answers: map[string]string{"a-key": "(alpha: 3)"},
		failOn:  "b-key",
	}
	session := &Session{Chooser: chooser, DestPath: dest}

	err := session.Run(testTable, true)
	if !errors.Is(err, relayerrors.ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}

	decisions := readDecisions(t, dest)
	if len(decisions) != 1 || decisions[0].Key != "a-key" {
		t.Fatalf("log after cancel = %+v, want just a-key", decisions)
	}
}

func TestSessionRun_ResumeAfterCancellation(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "labels.jsonl")

	first := &scriptedChooser{
		answers: map[string]string{"a-key": "(alpha: 3)"},
		failOn:  "b-key",
	}
	session := &Session{Chooser: first, DestPath: dest}
	if err := session.Run(testTable, true); !errors.Is(err, relayerrors.ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}

	second := &scriptedChooser{answers: map[string]string{
		"b-key": "(beta: 2)",
		"c-key": "",
	}}
	session.Chooser = second
	if err := session.Run(testTable, true); err != nil {
		t.Fatalf("resumed run failed: %v", err)
	}

	if len(second.prompted) != 2 {
		t.Errorf("resumed run prompted %v, want b-key and c-key only", second.prompted)
	}
	decisions := readDecisions(t, dest)
	if len(decisions) != 3 {
		t.Fatalf("got %d decisions after resume, want 3", len(decisions))
	}
}

func TestSessionRun_CorruptLogIsAnError(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "labels.jsonl")
	if err := os.WriteFile(dest, []byte("{not json\n"), 0o644); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	session := &Session{Chooser: &scriptedChooser{}, DestPath: dest}
	if err := session.Run(testTable, true); err == nil {
		t.Fatal("expected an error for a corrupt log")
	}
}

func TestSessionRun_CreatesDestinationFolder(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "deeper", "labels.jsonl")

	chooser := &scriptedChooser{answers: map[string]string{
		"a-key": "", "b-key": "", "c-key": "",
	}}
	session := &Session{Chooser: chooser, DestPath: dest}
	if err := session.Run(testTable, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("label log was not created: %v", err)
	}
}

func TestSessionRun_BlankLinesInLogIgnored(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "labels.jsonl")
	prior := fmt.Sprintf("%s\n\n%s\n",
		`{"key":"a-key","value":"alpha","needs_review":false}`,
		`{"key":"b-key","value":null,"needs_review":false}`)
	if err := os.WriteFile(dest, []byte(prior), 0o644); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	chooser := &scriptedChooser{answers: map[string]string{"c-key": ""}}
	session := &Session{Chooser: chooser, DestPath: dest}
	if err := session.Run(testTable, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chooser.prompted) != 1 || chooser.prompted[0] != "c-key" {
		t.Errorf("prompted = %v, want only c-key", chooser.prompted)
	}
}
