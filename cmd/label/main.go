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

// Package main implements reddit-label, the interactive tool for assigning a
// canonical value to every flair key in an aggregated candidate table.
//
// Usage:
//
//	reddit-label --source_path data/flairs/raw/flairs_aggregated.json --continue
//
// Each decision is appended immediately to the destination log as one JSON
// line, so the session can be interrupted at any time and resumed later with
// --continue, which skips every key already present in the log. Without
// --continue the log is truncated before the first prompt.
//
// Exit codes:
//   - 0: Success, including cancellation at the prompt
//   - 1: General error
//   - 2: Invalid arguments (unreadable or corrupt flair source)
package main

import (
	"errors"
	"fmt"
	"os"

	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
)

var version = "dev"

func main() {
	rootCmd := newLabelCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, relayerrors.ErrBadFlairSource) {
		return 2 // Argument errors
	}

	return 1 // General error
}
