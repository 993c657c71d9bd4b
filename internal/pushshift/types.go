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

// Package pushshift provides types and interfaces for the Pushshift-style
// Reddit comment search API.
package pushshift

import "encoding/json"

// Comment is a single search result. The API object is opaque to this tool:
// it is carried verbatim in Raw and written to disk byte-for-byte. Only the
// creation timestamp is interpreted, because pagination advances on it.
type Comment struct {
	CreatedUTC int64
	Raw        json.RawMessage
}

// Metadata is the side-channel envelope the API returns alongside the first
// page of a search. It is persisted verbatim; TotalResults is extracted for
// progress reporting only. The reported total is approximate and is never
// used as a termination condition.
type Metadata struct {
	TotalResults int
	Raw          json.RawMessage
}

// Page is one page of search results. Metadata is non-nil only when the
// request carried the metadata flag and the API returned an envelope.
type Page struct {
	Metadata *Metadata
	Comments []Comment
}

// SearchOptions configures a single search request.
// Results are always requested in ascending creation order, which is what
// makes timestamp-based pagination possible.
type SearchOptions struct {
	// Query is the keyword filter string. Supports |-alternation, * wildcards
	// and exclusion via a leading dash.
	Query string

	// Subreddit restricts the search to one subreddit.
	Subreddit string

	// After is the lower bound in UTC epoch seconds. The API treats it as
	// inclusive-or-equal.
	After int64

	// Before is the exclusive upper bound in UTC epoch seconds.
	// Zero means no upper bound.
	Before int64

	// Size is the page size. Defaults to 500 if not specified.
	Size int

	// IncludeMetadata asks the API for the metadata envelope. Only the first
	// request of a window sets this.
	IncludeMetadata bool
}

// Default values for search operations
const (
	defaultPageSize = 500
)
