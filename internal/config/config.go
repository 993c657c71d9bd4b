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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// precedence order (lowest to highest): built-in defaults, configuration
// file, environment variables. Command-line flags are applied by the CLIs
// on top of the result.
//
// If configPath is provided, it loads from that specific file. Otherwise it
// searches standard locations:
//   - .reddit-relay.yaml (current directory)
//   - .reddit-relay.yml (current directory)
//   - ~/.reddit-relay/config.yaml
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".reddit-relay.yaml",
			".reddit-relay.yml",
			filepath.Join(os.Getenv("HOME"), ".reddit-relay", "config.yaml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("RELAY_API_ENDPOINT"); endpoint != "" {
		cfg.API.Endpoint = endpoint
	}
	if query := os.Getenv("RELAY_QUERY"); query != "" {
		cfg.Search.Query = query
	}
	if subreddit := os.Getenv("RELAY_SUBREDDIT"); subreddit != "" {
		cfg.Search.Subreddit = subreddit
	}
	if batchSize := os.Getenv("RELAY_BATCH_SIZE"); batchSize != "" {
		if size, err := parsePositiveInt(batchSize); err == nil {
			cfg.Defaults.BatchSize = size
		}
	}
	if destFolder := os.Getenv("RELAY_DEST_FOLDER"); destFolder != "" {
		cfg.Defaults.DestFolder = destFolder
	}
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// Validate checks if the configuration contains valid values. This should be
// called after loading configuration and applying flag overrides, to catch
// invalid settings before any network or filesystem work starts.
func (c *Config) Validate() error {
	if c.API.Endpoint == "" {
		return fmt.Errorf("search API endpoint cannot be empty")
	}
	if !strings.HasPrefix(c.API.Endpoint, "http://") && !strings.HasPrefix(c.API.Endpoint, "https://") {
		return fmt.Errorf("search API endpoint must be an http(s) URL, got: %s", c.API.Endpoint)
	}
	if c.Search.Subreddit == "" {
		return fmt.Errorf("subreddit cannot be empty")
	}
	if c.Defaults.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got: %d", c.Defaults.BatchSize)
	}
	if c.Defaults.RetryDelay <= 0 {
		return fmt.Errorf("retry delay must be positive, got: %v", c.Defaults.RetryDelay)
	}
	return nil
}
