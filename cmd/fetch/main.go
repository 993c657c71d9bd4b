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

// Package main implements reddit-fetch, the command-line tool that retrieves
// Reddit comments matching a keyword filter from a Pushshift-style search
// API and persists them to per-day folders.
//
// Usage:
//
//	reddit-fetch --start 2022-02-24 --end 2022-03-01
//
// Each day in [start, end) becomes one folder named YYYY-MM-DD under the
// destination root, holding comments.jsonl (one comment per line) and
// metadata.json (the API's envelope for that day). Days whose folder already
// exists are skipped unless --force-rewrite is given, so re-running over an
// already-fetched range only fetches new days.
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Invalid arguments (malformed dates)
//   - 3: Unrecoverable API status
package main

import (
	"errors"
	"fmt"
	"os"

	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
)

var version = "dev"

func main() {
	rootCmd := newFetchCommand()

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

	if errors.Is(err, relayerrors.ErrInvalidDate) {
		return 2 // Argument errors
	}

	if errors.Is(err, relayerrors.ErrUnexpectedStatus) {
		return 3 // Fatal API errors
	}

	return 1 // General error
}
