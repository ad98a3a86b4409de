package timeutil

import (
	"testing"
	"time"
)

func TestParseBound(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"now", now},
		{"-7d", now.Add(-7 * 24 * time.Hour)},
		{"+2h", now.Add(2 * time.Hour)},
		{"-1w", now.Add(-7 * 24 * time.Hour)},
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01T08:30:00Z", time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		b, err := ParseBound(tt.in)
		if err != nil {
			t.Fatalf("ParseBound(%q): %v", tt.in, err)
		}
		if got := b.Resolve(now); !got.Equal(tt.want) {
			t.Fatalf("ParseBound(%q) resolved to %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBound_Invalid(t *testing.T) {
	for _, in := range []string{"", "7d", "-7x", "yesterday"} {
		if _, err := ParseBound(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"date", time.DateOnly},
		{"RFC3339", time.RFC3339},
		{"yyyy-MM-dd HH:mm:ss", "2006-01-02 15:04:05"},
		{"dd/MM/yy", "02/01/06"},
		{"2006-01-02", "2006-01-02"},
		{"unix_ms", "unix_ms"},
	}
	for _, tt := range tests {
		got, err := Layout(tt.in)
		if err != nil {
			t.Fatalf("Layout(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Layout(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := Layout("???"); err == nil {
		t.Fatal("expected error for unrecognized layout")
	}
}

func TestFormat_Unix(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	if got := Format(ts, "unix"); got != "1700000000" {
		t.Fatalf("unexpected unix format: %s", got)
	}
	if got := Format(ts, "unix_ms"); got != "1700000000000" {
		t.Fatalf("unexpected unix_ms format: %s", got)
	}
}
