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
	"errors"
	"os"
	"path/filepath"
	"testing"

	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
)

func TestLoadCandidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flairs.json")
	content := `{
		"key-one": {"russia": 42, "putin": 7},
		"key-two": {"ukraine": 100}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	table, err := LoadCandidates(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("got %d keys, want 2", len(table))
	}
	if table["key-one"]["russia"] != 42 {
		t.Errorf("key-one russia count = %d, want 42", table["key-one"]["russia"])
	}
	if table["key-two"]["ukraine"] != 100 {
		t.Errorf("key-two ukraine count = %d, want 100", table["key-two"]["ukraine"])
	}
}

func TestLoadCandidates_Errors(t *testing.T) {
	tmp := t.TempDir()

	malformed := filepath.Join(tmp, "bad.json")
	if err := os.WriteFile(malformed, []byte(`{"key": "not a table"}`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(tmp, "does-not-exist.json")},
		{"malformed table", malformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCandidates(tt.path)
			if !errors.Is(err, relayerrors.ErrBadFlairSource) {
				t.Errorf("LoadCandidates(%s) error = %v, want ErrBadFlairSource", tt.path, err)
			}
		})
	}
}
