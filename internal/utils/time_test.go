package utils

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func withNow(t *testing.T, now time.Time) {
	t.Helper()
	orig := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = orig })
}

func TestTodayKey_RespectsTimezone(t *testing.T) {
	// 05:00 UTC on Feb 17 is still Feb 16 in Los Angeles.
	withNow(t, time.Date(2026, time.February, 17, 5, 0, 0, 0, time.UTC))

	got, err := TodayKey("America/Los_Angeles")
	if err != nil {
		t.Fatalf("TodayKey() error: %v", err)
	}
	if got != "2026-02-16" {
		t.Errorf("TodayKey() = %q, want 2026-02-16", got)
	}

	got, err = TodayKey("UTC")
	if err != nil {
		t.Fatalf("TodayKey() error: %v", err)
	}
	if got != "2026-02-17" {
		t.Errorf("TodayKey(UTC) = %q, want 2026-02-17", got)
	}
}

func TestTodayKey_InvalidTimezone(t *testing.T) {
	if _, err := TodayKey("Mars/Olympus_Mons"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestResolveDateArg(t *testing.T) {
	withNow(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"today", "2026-03-01", false},
		{"", "2026-03-01", false},
		{"Yesterday", "2026-02-28", false},
		{"tomorrow", "2026-03-02", false},
		{"2026-03-07", "2026-03-07", false},
		{"2026-3-7", "", true},
		{"next week", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ResolveDateArg(tt.arg, "UTC")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveDateArg(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveDateArg(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-02-28", 1)
	if err != nil || got != "2026-03-01" {
		t.Errorf("AddDays() = %q, %v", got, err)
	}
	if _, err := AddDays("bogus", 1); err == nil {
		t.Error("expected error for bad key")
	}
}

func TestValidateHelpers(t *testing.T) {
	if !ValidateTimeFormat("06:30") || ValidateTimeFormat("6.30") {
		t.Error("ValidateTimeFormat mismatch")
	}
	if !ValidateTimezone("Local") || !ValidateTimezone("") || ValidateTimezone("Nowhere/City") {
		t.Error("ValidateTimezone mismatch")
	}
}
