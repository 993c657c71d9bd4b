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
	"fmt"
	"os"

	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
)

// LoadCandidates reads the aggregated flair table: a JSON mapping from flair
// key to {label: count}. The table is produced by an external aggregation
// step over the fetched corpus. Unreadable or malformed input is an
// argument-level error, surfaced before any prompting starts.
func LoadCandidates(path string) (map[string]Candidates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error while opening the file: %v", relayerrors.ErrBadFlairSource, err)
	}

	var table map[string]Candidates
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid flair table: %v", relayerrors.ErrBadFlairSource, path, err)
	}

	return table, nil
}
