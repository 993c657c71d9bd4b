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

// Package fetch implements the day-windowed comment retrieval pipeline:
// splitting a date range into day windows, paging through each window until
// the API runs dry, and persisting completed days to disk.
package fetch

import (
	"fmt"
	"time"

	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
)

// Window is the half-open [After, Before) UTC interval covering one calendar
// day. It is the unit of fetch work: one window maps to exactly one output
// folder named by its start date.
type Window struct {
	Start time.Time
}

// After returns the inclusive lower bound in UTC epoch seconds.
func (w Window) After() int64 {
	return w.Start.Unix()
}

// Before returns the exclusive upper bound in UTC epoch seconds.
func (w Window) Before() int64 {
	return w.Start.AddDate(0, 0, 1).Unix()
}

// Dir returns the output folder name for this window.
func (w Window) Dir() string {
	return w.Start.Format("2006-01-02")
}

// DayWindows returns the consecutive day windows covering [start, end).
// A zero end yields exactly one window beginning at start. Both bounds are
// truncated to midnight UTC.
func DayWindows(start, end time.Time) []Window {
	start = midnightUTC(start)
	if end.IsZero() {
		end = start.AddDate(0, 0, 1)
	} else {
		end = midnightUTC(end)
	}

	var windows []Window
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		windows = append(windows, Window{Start: day})
	}
	return windows
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC. Malformed input is an
// argument-level error, reported before any network work starts.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be specified in YYYY-MM-DD format, got %q", relayerrors.ErrInvalidDate, s)
	}
	return t, nil
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
