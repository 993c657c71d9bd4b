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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/flairlab/reddit-relay/internal/prompt"
)

// Session runs a resumable labeling pass over a flair candidate table.
// Decisions are appended to DestPath one JSON line at a time, so an
// interruption after N choices leaves exactly N valid records on disk.
type Session struct {
	Chooser  prompt.Chooser
	DestPath string
}

// Run prompts for every key in the table not yet present in the destination
// log. When resume is true, already-labeled keys are determined by scanning
// the log and collecting its key set; membership is all that matters, so
// reordered or hand-edited logs resume correctly as long as the key field is
// intact. When resume is false the log is truncated first, discarding any
// prior progress.
//
// A chooser cancellation error is returned as-is; everything appended before
// it stays on disk.
func (s *Session) Run(table map[string]Candidates, resume bool) error {
	if err := os.MkdirAll(filepath.Dir(s.DestPath), 0o755); err != nil {
		return fmt.Errorf("failed to create label log folder: %w", err)
	}

	labeled := map[string]struct{}{}
	if resume {
		var err error
		labeled, err = labeledKeys(s.DestPath)
		if err != nil {
			return err
		}
	} else {
		if err := truncateLog(s.DestPath); err != nil {
			return err
		}
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, done := labeled[key]; done {
			continue
		}

		selection, err := s.Chooser.Choose(key, FormatChoices(table[key]))
		if err != nil {
			return err
		}

		if err := appendDecision(s.DestPath, ResolveDecision(key, selection)); err != nil {
			return err
		}
	}

	return nil
}

// labeledKeys scans the whole log and returns the set of keys it contains.
// Startup cost is linear in the log size, which is fine at this corpus scale.
func labeledKeys(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]struct{}{}, nil
		}
		return nil, fmt.Errorf("failed to read label log %s: %w", path, err)
	}
	defer file.Close()

	keys := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var decision Decision
		if err := json.Unmarshal(line, &decision); err != nil {
			return nil, fmt.Errorf("label log %s is corrupted (invalid JSON line): %w", path, err)
		}
		keys[decision.Key] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan label log %s: %w", path, err)
	}

	return keys, nil
}

func truncateLog(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to truncate label log %s: %w", path, err)
	}
	return file.Close()
}

// appendDecision opens, writes and closes the log for a single record, so no
// handle outlives one key's decision.
func appendDecision(path string, decision Decision) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open label log %s: %w", path, err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(decision); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to append decision for %q: %w", decision.Key, err)
	}

	return file.Close()
}
