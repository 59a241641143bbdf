package domain

import (
	"testing"
	"time"
)

func TestChromeTimeInvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "literal zero", raw: "0"},
		{name: "non-numeric", raw: "not-a-number"},
		{name: "negative", raw: "-13222310400000000"},
		{name: "nan", raw: "NaN"},
		{name: "infinity", raw: "Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChromeTime(tt.raw); got != nil {
				t.Errorf("ChromeTime(%q) = %v, want nil", tt.raw, got)
			}
		})
	}
}

func TestChromeTimeKnownInstant(t *testing.T) {
	// 13222310400 seconds after 1601-01-01 is 2020-01-01T00:00:00Z
	got := ChromeTime("13222310400000000")
	if got == nil {
		t.Fatal("ChromeTime() = nil, want instant")
	}

	want := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ChromeTime() = %v, want %v", got, want)
	}
}

func TestChromeTimeTruncatesToMilliseconds(t *testing.T) {
	base := ChromeTime("13222310400000000")
	extra := ChromeTime("13222310400000500") // +500 microseconds
	if base == nil || extra == nil {
		t.Fatal("ChromeTime() returned nil for valid input")
	}

	if !base.Equal(*extra) {
		t.Errorf("sub-millisecond precision should truncate: %v != %v", base, extra)
	}
}
