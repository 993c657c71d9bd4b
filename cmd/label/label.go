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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flairlab/reddit-relay/internal/config"
	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
	"github.com/flairlab/reddit-relay/internal/flair"
	"github.com/flairlab/reddit-relay/internal/prompt"
)

func newLabelCommand() *cobra.Command {
	var (
		configPath string
		sourcePath string
		destPath   string
		resume     bool
	)

	cmd := &cobra.Command{
		Use:   "reddit-label",
		Short: "Manually annotate flair keys from an aggregated candidate table",
		Long: `Present each flair key's candidate values, sorted by frequency, for a human
to pick the canonical one. Every decision is appended to the destination log
immediately; rerun with --continue to pick up where a previous session left
off.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabel(configPath, sourcePath, destPath, resume)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&sourcePath, "source_path", "", "Serialized flair candidate table (default data/flairs/raw/flairs_aggregated.json)")
	cmd.Flags().StringVar(&destPath, "dest_path", "", "Destination label log (default data/flairs/processed/flairs_tagged.jsonl)")
	cmd.Flags().BoolVar(&resume, "continue", false, "Skip keys already present in the destination log instead of truncating it")

	return cmd
}

// runLabel executes the label command
func runLabel(configPath, sourcePath, destPath string, resume bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if sourcePath == "" {
		sourcePath = cfg.Flairs.SourcePath
	}
	if destPath == "" {
		destPath = cfg.Flairs.DestPath
	}

	table, err := flair.LoadCandidates(sourcePath)
	if err != nil {
		return err
	}

	session := &flair.Session{
		Chooser:  prompt.TUIChooser{},
		DestPath: destPath,
	}

	if err := session.Run(table, resume); err != nil {
		if errors.Is(err, relayerrors.ErrCanceled) {
			// A prompt cancellation is a clean stop; every decision made so
			// far is already on disk.
			fmt.Fprintln(os.Stderr, "Labeling canceled; progress saved.")
			return nil
		}
		return err
	}

	return nil
}
