package logic

import (
	"errors"
	"testing"
	"time"
)

func TestWindowCutoff(t *testing.T) {
	now := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		window  string
		now     time.Time
		want    time.Time
		bounded bool
		wantErr bool
	}{
		{"empty is unbounded", "", now, time.Time{}, false, false},
		{"all is unbounded", "all", now, time.Time{}, false, false},
		{"week", "week", now, now.AddDate(0, 0, -7), true, false},
		{
			"month clamps to shorter month",
			"month", now,
			time.Date(2026, time.February, 28, 12, 0, 0, 0, time.UTC),
			true, false,
		},
		{
			"month from leap march",
			"month",
			time.Date(2024, time.March, 31, 8, 30, 0, 0, time.UTC),
			time.Date(2024, time.February, 29, 8, 30, 0, 0, time.UTC),
			true, false,
		},
		{
			"month crosses year boundary",
			"month",
			time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC),
			true, false,
		},
		{
			"month without clamp",
			"month",
			time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC),
			true, false,
		},
		{"unknown window", "year", now, time.Time{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, bounded, err := windowCutoff(tt.window, tt.now)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("windowCutoff(%q): %v", tt.window, err)
			}
			if bounded != tt.bounded {
				t.Errorf("bounded: got %v, want %v", bounded, tt.bounded)
			}
			if bounded && !got.Equal(tt.want) {
				t.Errorf("cutoff: got %s, want %s", got, tt.want)
			}
		})
	}
}
