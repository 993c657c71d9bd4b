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
	"errors"
	"testing"
	"time"

	relayerrors "github.com/flairlab/reddit-relay/internal/errors"
)

func TestDayWindows(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad test date %s: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantDirs []string
	}{
		{
			name:     "absent end yields exactly one day",
			start:    day("2022-02-24"),
			wantDirs: []string{"2022-02-24"},
		},
		{
			name:     "range covers consecutive days, end exclusive",
			start:    day("2022-02-27"),
			end:      day("2022-03-02"),
			wantDirs: []string{"2022-02-27", "2022-02-28", "2022-03-01"},
		},
		{
			name:  "end before start yields nothing",
			start: day("2022-03-02"),
			end:   day("2022-03-01"),
		},
		{
			name:  "end equals start yields nothing",
			start: day("2022-03-01"),
			end:   day("2022-03-01"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows := DayWindows(tt.start, tt.end)
			if len(windows) != len(tt.wantDirs) {
				t.Fatalf("got %d windows, want %d", len(windows), len(tt.wantDirs))
			}
			for i, w := range windows {
				if w.Dir() != tt.wantDirs[i] {
					t.Errorf("window %d dir = %s, want %s", i, w.Dir(), tt.wantDirs[i])
				}
			}
		})
	}
}

func TestWindowBounds(t *testing.T) {
	start := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	w := Window{Start: start}

	if w.After() != start.Unix() {
		t.Errorf("After() = %d, want %d", w.After(), start.Unix())
	}
	if want := start.Unix() + 24*60*60; w.Before() != want {
		t.Errorf("Before() = %d, want %d", w.Before(), want)
	}
	// Consecutive windows must share a boundary: [a, b) then [b, c).
	windows := DayWindows(start, start.AddDate(0, 0, 3))
	for i := 1; i < len(windows); i++ {
		if windows[i].After() != windows[i-1].Before() {
			t.Errorf("gap between window %d and %d: %d != %d",
				i-1, i, windows[i-1].Before(), windows[i].After())
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2022-02-24", false},
		{"2022-2-24", true},
		{"24-02-2022", true},
		{"yesterday", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, relayerrors.ErrInvalidDate) {
					t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Location() != time.UTC {
				t.Errorf("parsed date not UTC: %v", got.Location())
			}
		})
	}
}
