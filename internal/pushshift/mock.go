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

package pushshift

import (
	"context"
	"encoding/json"
	"fmt"
)

// MockClient is a scripted implementation of the Client interface for testing.
type MockClient struct {
	// Responses are consumed in order, one per call. When exhausted, the
	// client returns empty pages, which terminates any fetch loop.
	Responses []MockResponse

	// Handler, when set, overrides Responses entirely.
	Handler func(opts SearchOptions) (*Page, error)

	// Track calls for verification
	CallCount int
	LastOpts  SearchOptions
	SeenOpts  []SearchOptions
}

// MockResponse is a single canned Search result.
type MockResponse struct {
	Page *Page
	Err  error
}

// Search implements the Client interface.
func (m *MockClient) Search(ctx context.Context, opts SearchOptions) (*Page, error) {
	m.CallCount++
	m.LastOpts = opts
	m.SeenOpts = append(m.SeenOpts, opts)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.Handler != nil {
		return m.Handler(opts)
	}

	if len(m.Responses) == 0 {
		return &Page{}, nil
	}
	resp := m.Responses[0]
	m.Responses = m.Responses[1:]
	return resp.Page, resp.Err
}

// TestComment builds a comment with the given timestamp and a minimal raw
// body, for use in fetch-loop tests.
func TestComment(createdUTC int64, body string) Comment {
	raw, _ := json.Marshal(map[string]any{
		"id":          fmt.Sprintf("c%d", createdUTC),
		"body":        body,
		"created_utc": createdUTC,
	})
	return Comment{CreatedUTC: createdUTC, Raw: raw}
}

// TestMetadata builds a metadata envelope reporting the given total.
func TestMetadata(total int) *Metadata {
	raw, _ := json.Marshal(map[string]any{"total_results": total})
	return &Metadata{TotalResults: total, Raw: raw}
}
