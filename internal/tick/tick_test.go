package tick

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstant(t *testing.T) {
	tests := []struct {
		name     string
		civil    Civil
		expected Instant
	}{
		{"minimum", Civil{Year: 1, Month: 1, Day: 1}, MinInstant},
		{"maximum", Civil{Year: 9999, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Ticks: 9_999_999}, MaxInstant},
		{"unix epoch", Civil{Year: 1970, Month: 1, Day: 1}, Instant(UnixEpochSeconds * TicksPerSecond)},
		{"leap day", Civil{Year: 2000, Month: 2, Day: 29}, Instant(630_873_792_000_000_000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewInstant(tt.civil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.civil, got.Civil())
		})
	}
}

func TestNewInstantErrors(t *testing.T) {
	tests := []struct {
		name  string
		civil Civil
		err   error
	}{
		{"year zero", Civil{Year: 0, Month: 1, Day: 1}, ErrOutOfRange},
		{"year 10000", Civil{Year: 10000, Month: 1, Day: 1}, ErrOutOfRange},
		{"month 13", Civil{Year: 2000, Month: 13, Day: 1}, ErrInvalidField},
		{"february 30", Civil{Year: 2001, Month: 2, Day: 30}, ErrInvalidField},
		{"non leap february 29", Civil{Year: 1900, Month: 2, Day: 29}, ErrInvalidField},
		{"hour 24", Civil{Year: 2000, Month: 1, Day: 1, Hour: 24}, ErrInvalidField},
		{"second 60", Civil{Year: 2000, Month: 1, Day: 1, Second: 60}, ErrInvalidField},
		{"ticks overflow", Civil{Year: 2000, Month: 1, Day: 1, Ticks: TicksPerSecond}, ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInstant(tt.civil)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestInstantTimeInterop(t *testing.T) {
	ts := time.Date(2022, 10, 16, 5, 57, 32, 329_470_455, time.UTC)
	i, err := InstantFromTime(ts)
	require.NoError(t, err)

	c := i.Civil()
	assert.Equal(t, int64(3_294_704), c.Ticks, "sub-tick nanoseconds are truncated")
	assert.Equal(t, ts.Truncate(100*time.Nanosecond), i.Time())

	// Offsets are folded into UTC.
	local := ts.In(time.FixedZone("plus2", 2*3600))
	j, err := InstantFromTime(local)
	require.NoError(t, err)
	assert.Equal(t, i, j)

	_, err = InstantFromTime(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = InstantFromTime(time.Time{}.Add(-time.Second))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestInstantUnix(t *testing.T) {
	i, err := InstantFromUnix(1_665_899_852)
	require.NoError(t, err)
	assert.Equal(t, int64(1_665_899_852), i.Unix())
	assert.Equal(t, time.Unix(1_665_899_852, 0).UTC(), i.Time())

	// The sub-second part does not survive the epoch-seconds form.
	withMillis := i + Instant(648*TicksPerMillisecond)
	back, err := InstantFromUnix(withMillis.Unix())
	require.NoError(t, err)
	assert.Equal(t, i, back)

	minSec := -UnixEpochSeconds
	got, err := InstantFromUnix(minSec)
	require.NoError(t, err)
	assert.Equal(t, MinInstant, got)

	maxSec := MaxInstant.Unix()
	got, err = InstantFromUnix(maxSec)
	require.NoError(t, err)
	assert.Equal(t, MaxInstant-Instant(TicksPerSecond-1), got)

	_, err = InstantFromUnix(minSec - 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = InstantFromUnix(maxSec + 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = InstantFromUnix(math.MaxInt64)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestInstantAdd(t *testing.T) {
	got, err := MinInstant.Add(Duration(TicksPerHour))
	require.NoError(t, err)
	assert.Equal(t, Instant(TicksPerHour), got)

	_, err = MinInstant.Add(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = MaxInstant.Add(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Instant(5).Add(MinDuration)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewOffsetInstant(t *testing.T) {
	c := Civil{Year: 2022, Month: 10, Day: 16, Hour: 5, Minute: 57, Second: 32}
	utc, err := NewInstant(c)
	require.NoError(t, err)

	zero, err := NewOffsetInstant(c, 0)
	require.NoError(t, err)
	assert.Equal(t, utc, zero.Instant())

	plus2, err := NewOffsetInstant(c, 120)
	require.NoError(t, err)
	assert.Equal(t, utc-Instant(2*TicksPerHour), plus2.Instant())
	assert.Equal(t, 3, plus2.Instant().Civil().Hour)

	_, err = NewOffsetInstant(Civil{Year: 1, Month: 1, Day: 1}, 60)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = NewOffsetInstant(Civil{Year: 9999, Month: 12, Day: 31, Hour: 23}, -60)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestInstantDateAndClock(t *testing.T) {
	i, err := NewInstant(Civil{Year: 2012, Month: 6, Day: 12, Hour: 10, Minute: 5, Second: 32, Ticks: 6_480_000})
	require.NoError(t, err)

	y, m, d := i.Date().Civil()
	assert.Equal(t, []int{2012, 6, 12}, []int{y, m, d})

	h, mi, s, ticks := i.Clock().Parts()
	assert.Equal(t, []int{10, 5, 32}, []int{h, mi, s})
	assert.Equal(t, int64(6_480_000), ticks)
}
