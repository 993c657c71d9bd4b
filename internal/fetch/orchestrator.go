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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/flairlab/reddit-relay/internal/output"
	"github.com/flairlab/reddit-relay/internal/pushshift"
)

// Filenames written under each day folder.
const (
	CommentsFilename = "comments.jsonl"
	MetadataFilename = "metadata.json"
)

// Orchestrator drives the fetch loop across a range of calendar days and
// persists each completed day under DestRoot/YYYY-MM-DD. Days whose folder
// already exists are skipped unless ForceRewrite is set, which makes
// re-running over an already-fetched range a no-op except for new days.
type Orchestrator struct {
	Fetcher      *Fetcher
	DestRoot     string
	ForceRewrite bool

	// Log receives day-level notices. Defaults to stderr.
	Log io.Writer
}

// FetchRange processes every day window in [start, end). A fatal fetch error
// aborts the remaining days; completed days stay on disk and a rerun will
// skip them.
func (o *Orchestrator) FetchRange(ctx context.Context, start, end time.Time) error {
	for _, w := range DayWindows(start, end) {
		if err := o.fetchDay(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) fetchDay(ctx context.Context, w Window) error {
	dir := filepath.Join(o.DestRoot, w.Dir())

	if info, err := os.Stat(dir); err == nil && info.IsDir() && !o.ForceRewrite {
		fmt.Fprintf(o.log(), "Skipping %s: already fetched.\n", w.Dir())
		return nil
	}

	fmt.Fprintf(o.log(), "Fetching comments for %s...\n", w.Dir())
	started := time.Now()

	metadata, comments, err := o.Fetcher.FetchWindow(ctx, w)
	if err != nil {
		// Nothing has been written for this day; a rerun redoes it from scratch.
		return fmt.Errorf("fetching %s: %w", w.Dir(), err)
	}

	if err := writeDay(dir, metadata, comments); err != nil {
		return fmt.Errorf("writing %s: %w", w.Dir(), err)
	}

	fmt.Fprintf(o.log(), "Fetched %d comments for %s in %s.\n",
		len(comments), w.Dir(), time.Since(started).Round(time.Second))
	return nil
}

// writeDay persists a fully fetched window. It runs only after the
// pagination loop has terminated, so an interrupted day leaves no partial
// files behind.
func writeDay(dir string, metadata *pushshift.Metadata, comments []pushshift.Comment) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create day folder: %w", err)
	}

	writer, err := output.NewFileWriter(filepath.Join(dir, CommentsFilename))
	if err != nil {
		return err
	}
	for _, c := range comments {
		if err := writer.Write(c.Raw); err != nil {
			_ = writer.Close()
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	raw := json.RawMessage("{}")
	if metadata != nil {
		raw = metadata.Raw
	}
	return output.WriteMetadataFile(filepath.Join(dir, MetadataFilename), raw)
}

func (o *Orchestrator) log() io.Writer {
	if o.Log != nil {
		return o.Log
	}
	return os.Stderr
}
