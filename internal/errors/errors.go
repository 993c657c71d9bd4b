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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLIs for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrInvalidDate indicates a date argument that is not in YYYY-MM-DD form
	// or describes an empty range.
	// Maps to exit code 2.
	ErrInvalidDate = errors.New("invalid date")

	// ErrBadFlairSource indicates the flair candidate file could not be read
	// or deserialized. Reported before any prompting starts.
	// Maps to exit code 2.
	ErrBadFlairSource = errors.New("unreadable flair source")

	// ErrRateLimited indicates the search API answered HTTP 429. Retryable;
	// under the default policy it never escapes the retry client.
	ErrRateLimited = errors.New("rate limit reached")

	// ErrServerError indicates the search API answered HTTP 500 or above.
	// Retryable, same as ErrRateLimited.
	ErrServerError = errors.New("server error")

	// ErrUnexpectedStatus indicates any other non-200 status. Unrecoverable;
	// aborts the run with no output for the in-progress day.
	// Maps to exit code 3.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrCanceled indicates the human canceled the labeling prompt.
	// Treated as a clean stop, not a failure. Maps to exit code 0.
	ErrCanceled = errors.New("labeling canceled")
)
