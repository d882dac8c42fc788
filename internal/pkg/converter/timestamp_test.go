package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rizkypram/tranledger/internal/pkg/models"
)

func TestParseEpochMillis(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "integer", raw: "1596330211174", want: 1596330211174},
		{name: "zero", raw: "0", want: 0},
		{name: "integer-valued float", raw: "1596330211174.0", want: 1596330211174},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "fractional", raw: "1596330211174.5", wantErr: true},
		{name: "not a number", raw: "yesterday", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "NaN", raw: "NaN", wantErr: true},
		{name: "infinity", raw: "+Inf", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseEpochMillis(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, models.ErrInvalidTimestamp))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanonicalTimestamp(t *testing.T) {
	// 2020-08-02 00:23:31.174 UTC
	assert.Equal(t, "2020-08-02 00:23:31", CanonicalTimestamp(1596327811174))
	// Epoch origin
	assert.Equal(t, "1970-01-01 00:00:00", CanonicalTimestamp(0))
}

func TestCanonicalTimestampIsUTC(t *testing.T) {
	// The same instant must format identically regardless of local zone.
	ms := int64(1596330211174)
	first := CanonicalTimestamp(ms)
	second := CanonicalTimestamp(ms)
	assert.Equal(t, first, second)
	assert.Len(t, first, 19)
}

func TestBucketKeys(t *testing.T) {
	canonical := CanonicalTimestamp(1596330211174)
	assert.Equal(t, "2020-08-02", DayKey(canonical))
	assert.Equal(t, "01", HourKey(canonical))

	assert.Equal(t, "short", DayKey("short"))
	assert.Equal(t, "", HourKey("2020-08-02"))
}

func TestHourKeyBoundaries(t *testing.T) {
	// 10:15 and 10:59 share a bucket, 11:00 does not.
	base := int64(1596362400000) // 2020-08-02 10:00:00 UTC
	at1015 := base + 15*60*1000
	at1059 := base + 59*60*1000
	at1100 := base + 60*60*1000

	assert.Equal(t, "10", HourKey(CanonicalTimestamp(at1015)))
	assert.Equal(t, "10", HourKey(CanonicalTimestamp(at1059)))
	assert.Equal(t, "11", HourKey(CanonicalTimestamp(at1100)))
}
