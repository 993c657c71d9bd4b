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

// Package prompt implements the interactive terminal chooser used by the
// labeling session.
package prompt

// NoneOption is the trailing choice that rejects every candidate.
const NoneOption = "none of the above"

// Chooser presents a message and a list of options to a human and returns
// the selected option. An empty string with a nil error means the
// none-of-the-above option was taken. Cancellation is reported as
// errors.ErrCanceled so callers can shut down cleanly.
type Chooser interface {
	Choose(message string, options []string) (string, error)
}
