package engine_test

import (
	"testing"
	"time"

	"github.com/stacieblesley-tech/dailyluck/internal/engine"
	"github.com/stretchr/testify/assert"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// -----------------------------------------------------------------------------
// Zodiac Animal Tests
// -----------------------------------------------------------------------------

func TestZodiacAnimalFor(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1995, "돼지"},
		{2016, "원숭이"},
		{2000, "용"},
		{1990, "말"},
		{1988, "용"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, engine.ZodiacAnimalFor(tt.year), "year %d", tt.year)
	}
}

func TestZodiacAnimalFor_TwelveYearCycle(t *testing.T) {
	for year := 1950; year < 1962; year++ {
		assert.Equal(t, engine.ZodiacAnimalFor(year), engine.ZodiacAnimalFor(year+12),
			"animal must repeat every 12 years")
	}
}

// -----------------------------------------------------------------------------
// Star Sign Tests
// -----------------------------------------------------------------------------

func TestStarSignFor_Boundaries(t *testing.T) {
	tests := []struct {
		month, day int
		want       string
	}{
		// A boundary day belongs to the sign starting that day.
		{3, 20, "물고기자리"},
		{3, 21, "양자리"},
		{4, 19, "양자리"},
		{4, 20, "황소자리"},
		{6, 15, "쌍둥이자리"},
		{12, 24, "사수자리"},
		{12, 25, "염소자리"},
		{1, 19, "염소자리"},
		{1, 20, "물병자리"},
		{2, 18, "물병자리"},
		{2, 19, "물고기자리"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, engine.StarSignFor(tt.month, tt.day), "%d/%d", tt.month, tt.day)
	}
}

func TestStarSignFor_TotalOverYear(t *testing.T) {
	// Every calendar day must resolve to a sign; iterate a leap year.
	for d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		sign := engine.StarSignFor(int(d.Month()), d.Day())
		assert.NotEmptyf(t, sign, "no sign for %s", d.Format("01-02"))
	}
}

// -----------------------------------------------------------------------------
// Reference Calendar Tests
// -----------------------------------------------------------------------------

func TestDateKey_ReferenceZoneRollover(t *testing.T) {
	// 20:00 UTC is already 05:00 the next day in the reference zone.
	utcEvening := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-02", engine.DateKey(utcEvening))

	// 14:59 UTC is 23:59 the same day.
	utcAfternoon := time.Date(2025, 1, 1, 14, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-01", engine.DateKey(utcAfternoon))
}

func TestDateKey_HostZoneIndependent(t *testing.T) {
	// The same instant must produce the same key regardless of the zone
	// the time value happens to be expressed in.
	instant := time.Date(2025, 6, 15, 3, 30, 0, 0, time.UTC)
	ny := time.FixedZone("EST", -5*60*60)

	assert.Equal(t, engine.DateKey(instant), engine.DateKey(instant.In(ny)))
}

func TestAfterDailyThreshold(t *testing.T) {
	// 23:59 UTC is 08:59 in the reference zone: before the threshold.
	assert.False(t, engine.AfterDailyThreshold(time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)))

	// 00:00 UTC is exactly 09:00: at the threshold counts as after.
	assert.True(t, engine.AfterDailyThreshold(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)))

	// 12:00 UTC is 21:00: well past.
	assert.True(t, engine.AfterDailyThreshold(time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)))
}

func TestReferenceNow_UsesClock(t *testing.T) {
	clock := MockClock{CurrentTime: time.Date(2025, 3, 1, 0, 30, 0, 0, time.UTC)}
	now := engine.ReferenceNow(clock)

	assert.Equal(t, 9, now.Hour())
	assert.Equal(t, "2025-03-01", engine.DateKey(now))
}
