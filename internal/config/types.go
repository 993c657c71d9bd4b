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

// Package config types define the configuration structures shared by the
// fetcher and the labeler. What the original tooling kept as module-level
// constants (endpoint, query string, subreddit) is an explicit structure
// here, loaded from YAML files, environment variables, or command-line flags.
package config

import (
	"path/filepath"
	"time"
)

// Config represents the complete configuration for both tools. It
// consolidates settings from various sources and provides a unified
// interface for accessing configuration values.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Search   SearchConfig   `yaml:"search"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Flairs   FlairConfig    `yaml:"flairs"`
}

// APIConfig contains the search API endpoint. Kept separate so alternative
// Pushshift-compatible hosts can be configured without code changes.
type APIConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// SearchConfig is the keyword filter applied to every fetch. The query
// syntax supports |-alternation, * wildcards and leading-dash exclusion.
type SearchConfig struct {
	Query     string `yaml:"query"`
	Subreddit string `yaml:"subreddit"`
}

// DefaultsConfig contains default settings for fetch operations unless
// overridden by command-line flags.
type DefaultsConfig struct {
	BatchSize  int           `yaml:"batch_size"`
	RetryDelay time.Duration `yaml:"retry_delay"`
	DestFolder string        `yaml:"dest_folder"`
}

// FlairConfig contains the default paths for the labeling tool: the
// aggregated candidate table it reads and the decision log it appends to.
type FlairConfig struct {
	SourcePath string `yaml:"source_path"`
	DestPath   string `yaml:"dest_path"`
}

// DefaultConfig returns a Config with the defaults the corpus was originally
// collected with. Every value can be overridden per deployment.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint: "https://api.pushshift.io/reddit/search/comment/",
		},
		Search: SearchConfig{
			Query:     "-moscopole -moscone mosco*|kremlin*|russia*|putin*",
			Subreddit: "europe",
		},
		Defaults: DefaultsConfig{
			BatchSize:  500,
			RetryDelay: 10 * time.Second,
			DestFolder: filepath.Join("data", "comments", "raw"),
		},
		Flairs: FlairConfig{
			SourcePath: filepath.Join("data", "flairs", "raw", "flairs_aggregated.json"),
			DestPath:   filepath.Join("data", "flairs", "processed", "flairs_tagged.jsonl"),
		},
	}
}
