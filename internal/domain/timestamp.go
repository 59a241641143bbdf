package domain

import (
	"math"
	"strconv"
	"time"
)

// chromeEpoch is the reference instant for Chrome bookmark timestamps, which
// count microseconds since 1601-01-01 UTC (the Windows FILETIME epoch).
var chromeEpoch = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

// ChromeTime converts a Chrome microsecond-count timestamp string to an
// instant. Absent, zero, non-numeric, non-finite, or non-positive values all
// return nil: manually added items commonly carry "0", so this is an expected
// case, not an error.
//
// Microseconds are truncated to millisecond resolution before offsetting.
func ChromeTime(raw string) *time.Time {
	if raw == "" || raw == "0" {
		return nil
	}

	micros, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	if math.IsNaN(micros) || math.IsInf(micros, 0) || micros <= 0 {
		return nil
	}

	millis := int64(math.Floor(micros / 1000))
	// The offset from 1601 exceeds time.Duration's ~292-year range, so add it
	// in two halves to avoid int64 overflow.
	t := chromeEpoch.
		Add(time.Duration(millis/2) * time.Millisecond).
		Add(time.Duration(millis-millis/2) * time.Millisecond)
	return &t
}
