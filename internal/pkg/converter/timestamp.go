package converter

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/rizkypram/tranledger/internal/pkg/models"
)

// canonicalLayout is the fixed UTC representation used for bucketing.
const canonicalLayout = "2006-01-02 15:04:05"

// ParseEpochMillis parses a raw datetime field into an epoch-millisecond
// value. Accepts integer strings and integer-valued float strings; rejects
// negative, fractional and non-numeric input.
func ParseEpochMillis(raw string) (int64, error) {
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("%w: negative value %q", models.ErrInvalidTimestamp, raw)
		}
		return ms, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidTimestamp, raw)
	}
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidTimestamp, raw)
	}
	return int64(f), nil
}

// CanonicalTimestamp formats an epoch-millisecond value as
// "YYYY-MM-DD HH:MM:SS" in UTC.
func CanonicalTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(canonicalLayout)
}

// DayKey returns the date portion of a canonical timestamp.
func DayKey(canonical string) string {
	if len(canonical) < 10 {
		return canonical
	}
	return canonical[:10]
}

// HourKey returns the two-digit hour portion of a canonical timestamp.
func HourKey(canonical string) string {
	if len(canonical) < 13 {
		return ""
	}
	return canonical[11:13]
}
