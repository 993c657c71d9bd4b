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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
)

// HTTPClient implements the Client interface against a REST search endpoint.
// It translates HTTP status codes into the error taxonomy the retry layer
// understands: 429 and 5xx are retryable, everything else non-200 is fatal.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient creates a search client for the given endpoint URL.
// The client is configured with:
//   - Connection pooling tuned for a single-threaded polling loop
//   - No request timeout; the fetch loop blocks on each call and the
//     retry policy owns all waiting behavior
func NewHTTPClient(endpoint string) *HTTPClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Transport: transport},
	}
}

// Search performs one GET against the search endpoint and decodes the
// response envelope. The query string mirrors the API contract: q,
// subreddit, metadata, size, after, before and a fixed ascending order.
func (c *HTTPClient) Search(ctx context.Context, opts SearchOptions) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	size := opts.Size
	if size <= 0 {
		size = defaultPageSize
	}

	q := req.URL.Query()
	q.Set("q", opts.Query)
	q.Set("subreddit", opts.Subreddit)
	q.Set("metadata", strconv.FormatBool(opts.IncludeMetadata))
	q.Set("size", strconv.Itoa(size))
	q.Set("after", strconv.FormatInt(opts.After, 10))
	if opts.Before > 0 {
		q.Set("before", strconv.FormatInt(opts.Before, 10))
	}
	q.Set("order", "asc")
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to decoding.
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("http %d: %w", resp.StatusCode, relayerrors.ErrRateLimited)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("http %d: %w", resp.StatusCode, relayerrors.ErrServerError)
	default:
		return nil, fmt.Errorf("http %d: %w", resp.StatusCode, relayerrors.ErrUnexpectedStatus)
	}

	page, err := decodePage(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return page, nil
}

// decodePage parses the {metadata?, data} envelope. Each comment stays a raw
// JSON message; only created_utc is lifted out for pagination.
func decodePage(r io.Reader) (*Page, error) {
	var envelope struct {
		Metadata json.RawMessage   `json:"metadata"`
		Data     []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return nil, err
	}

	page := &Page{}

	if len(envelope.Metadata) > 0 && !bytes.Equal(envelope.Metadata, []byte("null")) {
		var totals struct {
			TotalResults int `json:"total_results"`
		}
		if err := json.Unmarshal(envelope.Metadata, &totals); err != nil {
			return nil, fmt.Errorf("invalid metadata envelope: %w", err)
		}
		page.Metadata = &Metadata{
			TotalResults: totals.TotalResults,
			Raw:          envelope.Metadata,
		}
	}

	page.Comments = make([]Comment, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		var stamp struct {
			// The API serves created_utc as a number; historical data
			// occasionally carries fractional seconds.
			CreatedUTC float64 `json:"created_utc"`
		}
		if err := json.Unmarshal(raw, &stamp); err != nil {
			return nil, fmt.Errorf("comment without readable created_utc: %w", err)
		}
		page.Comments = append(page.Comments, Comment{
			CreatedUTC: int64(stamp.CreatedUTC),
			Raw:        raw,
		})
	}

	return page, nil
}
