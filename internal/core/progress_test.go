package core

import (
	"errors"
	"testing"
)

func TestResolveProgressSpecDurations(t *testing.T) {
	cases := []struct {
		spec string
		want int64
	}{
		{"2h 30m", 9000},
		{"2h30m", 9000},
		{"1h 5m 30s", 3930},
		{"45m", 2700},
		{"90s", 90},
		{"1h5s", 3605},
		{"0s", 0},
		{"", 0},
	}

	for _, tc := range cases {
		got, err := ResolveProgressSpec(tc.spec, 3600)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.spec, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: expected %d seconds, got %d", tc.spec, tc.want, got)
		}
	}
}

func TestResolveProgressSpecPercent(t *testing.T) {
	cases := []struct {
		spec      string
		estimated int64
		want      int64
	}{
		{"50%", 3600, 1800},
		{"25%", 3600, 900},
		{"100%", 1800, 1800},
		{"200%", 60, 120},
		{"33%", 100, 33},
		{"50%", 0, 0},
	}

	for _, tc := range cases {
		got, err := ResolveProgressSpec(tc.spec, tc.estimated)
		if err != nil {
			t.Errorf("%q of %d: unexpected error: %v", tc.spec, tc.estimated, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q of %d: expected %d, got %d", tc.spec, tc.estimated, tc.want, got)
		}
	}
}

func TestResolveProgressSpecPercentRounds(t *testing.T) {
	// 33% of 350 is 115.5, rounded to 116.
	got, err := ResolveProgressSpec("33%", 350)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 116 {
		t.Fatalf("expected 116, got %d", got)
	}
}

func TestResolveProgressSpecRejectsGarbage(t *testing.T) {
	for _, spec := range []string{"soon", "5x", "1h 2h", "m30", "50 %", "%50", "-5m"} {
		_, err := ResolveProgressSpec(spec, 3600)
		if !errors.Is(err, ErrInvalidProgress) {
			t.Errorf("%q: expected ErrInvalidProgress, got %v", spec, err)
		}
	}
}

func TestDurationFromGroupsOrder(t *testing.T) {
	got, err := DurationFromGroups([]string{"1", "2", "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3723 {
		t.Fatalf("expected 3723, got %d", got)
	}
}
