package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSameTime(t *testing.T, want, got time.Time) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %v, got %v", want, got)
}

func localDate(y int, m time.Month, d, h, i, s int) time.Time {
	return time.Date(y, m, d, h, i, s, 0, time.Local)
}

func madrid(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	return loc
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		n    int
		want time.Time
	}{
		{"forward", localDate(2023, 1, 1, 0, 0, 0), 2, localDate(2023, 1, 3, 0, 0, 0)},
		{"month rollover", localDate(2023, 1, 31, 8, 30, 0), 1, localDate(2023, 2, 1, 8, 30, 0)},
		{"year rollover", localDate(2023, 12, 31, 0, 0, 0), 1, localDate(2024, 1, 1, 0, 0, 0)},
		{"backwards into leap day", localDate(2024, 3, 1, 0, 0, 0), -1, localDate(2024, 2, 29, 0, 0, 0)},
		{"zero", localDate(2024, 5, 5, 5, 5, 5), 0, localDate(2024, 5, 5, 5, 5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSameTime(t, tt.want, AddDays(tt.date, tt.n))
		})
	}
}

func TestAddDaysKeepsWallClockAcrossDST(t *testing.T) {
	loc := madrid(t)

	// clocks go forward on 2023-03-26 in Madrid
	start := time.Date(2023, 3, 25, 12, 0, 0, 0, loc)
	got := AddDays(start, 1)

	assertSameTime(t, time.Date(2023, 3, 26, 12, 0, 0, 0, loc), got)
	assert.Equal(t, 23*time.Hour, got.Sub(start))
}

func TestDayBoundariesMadrid(t *testing.T) {
	loc := madrid(t)
	d := time.Date(2023, 1, 1, 0, 0, 0, 0, loc)

	assert.Equal(t, int64(1672700400000), AddDays(d, 2).UnixMilli())
	assert.Equal(t, int64(1672527600000), StartOfDay(d).UnixMilli())
	assert.Equal(t, int64(1672613999999), EndOfDay(d).UnixMilli())
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2024, 9, 24, 10, 42, 13, 500, time.Local))
	assertSameTime(t, localDate(2024, 9, 24, 0, 0, 0), got)
}

func TestEndOfDay(t *testing.T) {
	got := EndOfDay(localDate(2024, 9, 24, 10, 42, 13))
	assertSameTime(t, time.Date(2024, 9, 24, 23, 59, 59, 999000000, time.Local), got)
	assert.Equal(t, 999, got.Nanosecond()/int(time.Millisecond))
}

func TestRangesOverlap(t *testing.T) {
	day := func(d int) time.Time { return localDate(2023, 1, d, 0, 0, 0) }

	tests := []struct {
		name string
		a, b [2]time.Time
		want bool
	}{
		{"overlapping", [2]time.Time{day(1), day(10)}, [2]time.Time{day(5), day(15)}, true},
		{"disjoint", [2]time.Time{day(1), day(10)}, [2]time.Time{day(11), day(20)}, false},
		{"touching", [2]time.Time{day(1), day(10)}, [2]time.Time{day(10), day(20)}, true},
		{"contained", [2]time.Time{day(1), day(20)}, [2]time.Time{day(5), day(6)}, true},
		{"identical", [2]time.Time{day(3), day(4)}, [2]time.Time{day(3), day(4)}, true},
		{"single instants", [2]time.Time{day(3), day(3)}, [2]time.Time{day(3), day(3)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.a, tt.b))
			assert.Equal(t, tt.want, RangesOverlap(tt.b, tt.a), "not symmetric")
		})
	}
}

func pinClock(t *testing.T, now time.Time) {
	t.Helper()
	old := Now
	Now = func() time.Time { return now }
	t.Cleanup(func() { Now = old })
}

func TestGetCurrentDate(t *testing.T) {
	pinClock(t, localDate(2024, 8, 19, 23, 59, 59))
	assert.Equal(t, "2024-08-19", GetCurrentDate())

	pinClock(t, localDate(2024, 12, 5, 0, 0, 0))
	assert.Equal(t, "2024-12-05", GetCurrentDate())
}

func TestGetCurrentDateUsesClock(t *testing.T) {
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, GetCurrentDate())
}
