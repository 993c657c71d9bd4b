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

package fetch

import (
	"context"

	"github.com/flairlab/reddit-relay/internal/pushshift"
)

// Fetcher assembles the complete ordered comment set for one day window by
// paging through the search API. Retry behavior for throttling and server
// errors lives in the client it is given, not here.
type Fetcher struct {
	Client    pushshift.Client
	Query     string
	Subreddit string
	BatchSize int

	// Progress, when set, receives one observation per fetched page:
	// page index (1-based), page size, running total, API-reported total.
	Progress func(page, pageSize, running, total int)
}

// FetchWindow retrieves every comment in the window in ascending creation
// order. The first request carries the metadata flag and supplies the
// envelope for the whole window. Subsequent requests start one second past
// the last comment seen: the API treats the after bound as
// inclusive-or-equal, so without the +1 the boundary comment would be
// fetched again on every page and the loop would never advance.
//
// An empty page is the sole termination condition. The reported total is
// approximate and never consulted for it.
func (f *Fetcher) FetchWindow(ctx context.Context, w Window) (*pushshift.Metadata, []pushshift.Comment, error) {
	opts := pushshift.SearchOptions{
		Query:           f.Query,
		Subreddit:       f.Subreddit,
		After:           w.After(),
		Before:          w.Before(),
		Size:            f.BatchSize,
		IncludeMetadata: true,
	}

	first, err := f.Client.Search(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	total := 0
	if first.Metadata != nil {
		total = first.Metadata.TotalResults
	}

	comments := first.Comments
	f.observe(1, len(first.Comments), len(comments), total)

	opts.IncludeMetadata = false
	page := 1
	for len(comments) > 0 {
		opts.After = comments[len(comments)-1].CreatedUTC + 1

		next, err := f.Client.Search(ctx, opts)
		if err != nil {
			return nil, nil, err
		}
		if len(next.Comments) == 0 {
			break
		}

		comments = append(comments, next.Comments...)
		page++
		f.observe(page, len(next.Comments), len(comments), total)
	}

	return first.Metadata, comments, nil
}

func (f *Fetcher) observe(page, pageSize, running, total int) {
	if f.Progress != nil {
		f.Progress(page, pageSize, running, total)
	}
}
