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
	"errors"
	"fmt"
	"os"
	"time"

	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
)

// RetryPolicy configures the retry behavior for API calls.
type RetryPolicy struct {
	// MaxAttempts caps the number of tries. Zero means retry indefinitely;
	// a persistently failing endpoint then requires operator intervention,
	// which is the API's own rate-limiting contract.
	MaxAttempts int

	// Delay is the fixed sleep between attempts.
	Delay time.Duration

	// Backoff, when set, supplies the per-attempt sleep instead of Delay.
	// The default policy keeps the delay constant with no growth.
	Backoff func(attempt int) time.Duration
}

// DefaultRetryPolicy returns the policy used in production: unbounded
// attempts with a constant delay between them.
func DefaultRetryPolicy(delay time.Duration) *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts: 0,
		Delay:       delay,
	}
}

// RetryClient wraps a search client with automatic retry logic for
// rate limits and server errors.
type RetryClient struct {
	client Client
	policy *RetryPolicy
}

// NewRetryClient creates a new RetryClient with the given policy.
func NewRetryClient(client Client, policy *RetryPolicy) Client {
	if policy == nil {
		policy = DefaultRetryPolicy(10 * time.Second)
	}
	return &RetryClient{
		client: client,
		policy: policy,
	}
}

// Search implements the Client interface with retry logic. Retryable
// failures (429, 5xx) are logged and slept through; anything else is
// returned to the caller untouched.
func (r *RetryClient) Search(ctx context.Context, opts SearchOptions) (*Page, error) {
	var lastErr error

	for attempt := 0; r.policy.MaxAttempts == 0 || attempt < r.policy.MaxAttempts; attempt++ {
		page, err := r.client.Search(ctx, opts)
		if err == nil {
			return page, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		delay := r.policy.Delay
		if r.policy.Backoff != nil {
			delay = r.policy.Backoff(attempt)
		}

		if errors.Is(err, relayerrors.ErrRateLimited) {
			fmt.Fprintf(os.Stderr, "Rate limit reached, sleeping for %v.\n", delay)
		} else {
			fmt.Fprintf(os.Stderr, "Server error (%v), sleeping for %v.\n", err, delay)
		}

		// Wait with context cancellation support
		select {
		case <-time.After(delay):
			// Continue to next attempt
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", r.policy.MaxAttempts, lastErr)
}

// isRetryable reports whether an error came from a throttled or erroring
// server rather than a broken request.
func isRetryable(err error) bool {
	return errors.Is(err, relayerrors.ErrRateLimited) || errors.Is(err, relayerrors.ErrServerError)
}
