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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/flairlab/reddit-relay/internal/config"
	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
	"github.com/flairlab/reddit-relay/internal/fetch"
	"github.com/flairlab/reddit-relay/internal/pushshift"
)

// fetchFlags holds the command-line surface of the fetcher. Zero values mean
// "not set"; config file defaults apply then.
type fetchFlags struct {
	configPath   string
	start        string
	end          string
	batchSize    int
	timeout      time.Duration
	destFolder   string
	query        string
	subreddit    string
	forceRewrite bool
}

func newFetchCommand() *cobra.Command {
	var flags fetchFlags

	cmd := &cobra.Command{
		Use:   "reddit-fetch",
		Short: "Retrieve Reddit comments from a Pushshift-style search API",
		Long: `Retrieve Reddit comments matching a keyword filter, one calendar day at a
time, and persist each day as comments.jsonl plus metadata.json under a
folder named by its date.

The fetcher pages through the search API using each page's last comment
timestamp as the next lower bound, sleeping and retrying on throttling and
server errors until the API yields an empty page for the day.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&flags.start, "start", "", "Start date (inclusive), YYYY-MM-DD, UTC")
	cmd.Flags().StringVar(&flags.end, "end", "", "End date (exclusive), YYYY-MM-DD, UTC; omit to fetch exactly one day")
	cmd.Flags().IntVar(&flags.batchSize, "batch-size", 0, "Comments requested per page (default 500)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Sleep between retries on throttling or server errors (default 10s)")
	cmd.Flags().StringVar(&flags.destFolder, "dest_folder", "", "Destination root for per-day folders (default data/comments/raw)")
	cmd.Flags().StringVar(&flags.query, "query", "", "Keyword filter override")
	cmd.Flags().StringVar(&flags.subreddit, "subreddit", "", "Subreddit override")
	cmd.Flags().BoolVar(&flags.forceRewrite, "force-rewrite", false, "Refetch days whose destination folder already exists")

	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// runFetch executes the fetch command
func runFetch(cmd *cobra.Command, flags fetchFlags) error {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	start, err := fetch.ParseDate(flags.start)
	if err != nil {
		return err
	}
	var end time.Time
	if flags.end != "" {
		end, err = fetch.ParseDate(flags.end)
		if err != nil {
			return err
		}
		if !end.After(start) {
			return fmt.Errorf("%w: end date %s must be after start date %s",
				relayerrors.ErrInvalidDate, flags.end, flags.start)
		}
	}

	client := pushshift.NewRetryClient(
		pushshift.NewHTTPClient(cfg.API.Endpoint),
		pushshift.DefaultRetryPolicy(cfg.Defaults.RetryDelay),
	)

	cyan := color.New(color.FgCyan).SprintFunc()
	fetcher := &fetch.Fetcher{
		Client:    client,
		Query:     cfg.Search.Query,
		Subreddit: cfg.Search.Subreddit,
		BatchSize: cfg.Defaults.BatchSize,
		Progress: func(page, pageSize, running, total int) {
			fmt.Fprintf(os.Stderr, "#%d: %d (%s/%d)\n", page, pageSize, cyan(fmt.Sprintf("%d", running)), total)
		},
	}

	orchestrator := &fetch.Orchestrator{
		Fetcher:      fetcher,
		DestRoot:     cfg.Defaults.DestFolder,
		ForceRewrite: flags.forceRewrite,
	}

	return orchestrator.FetchRange(cmd.Context(), start, end)
}

// applyFlagOverrides layers explicitly set flags on top of the loaded config.
func applyFlagOverrides(cfg *config.Config, flags fetchFlags) {
	if flags.batchSize > 0 {
		cfg.Defaults.BatchSize = flags.batchSize
	}
	if flags.timeout > 0 {
		cfg.Defaults.RetryDelay = flags.timeout
	}
	if flags.destFolder != "" {
		cfg.Defaults.DestFolder = flags.destFolder
	}
	if flags.query != "" {
		cfg.Search.Query = flags.query
	}
	if flags.subreddit != "" {
		cfg.Search.Subreddit = flags.subreddit
	}
}
