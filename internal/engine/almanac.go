package engine

import (
	"time"

	"github.com/stacieblesley-tech/dailyluck/internal/config"
)

// referenceZone is the fixed UTC+9 zone all daily semantics run in.
// It is a constant offset, deliberately not a tzdata location: the fortune
// day must roll over at the same instant everywhere, regardless of the host
// machine's timezone or DST rules.
var referenceZone = time.FixedZone(config.ReferenceZoneName, config.ReferenceUTCOffsetHours*60*60)

// zodiacAnimals is the fixed 12-label cycle indexed by year mod 12.
// The phase is anchored so that 2016 (2016 mod 12 == 0) is 원숭이.
var zodiacAnimals = [12]string{
	"원숭이", "닭", "개", "돼지", "쥐", "소",
	"호랑이", "토끼", "용", "뱀", "말", "양",
}

// starSignRange maps a fixed month/day span to a sign label. A date exactly
// on FromDay of FromMonth belongs to this sign, not the prior one.
type starSignRange struct {
	FromMonth, FromDay int
	ToMonth, ToDay     int
	Label              string
}

// starSigns holds the 11 explicit ranges; 물고기자리 (2/19–3/20) is the
// fallthrough so the mapping is total over the calendar year.
var starSigns = []starSignRange{
	{3, 21, 4, 19, "양자리"},
	{4, 20, 5, 20, "황소자리"},
	{5, 21, 6, 21, "쌍둥이자리"},
	{6, 22, 7, 22, "게자리"},
	{7, 23, 8, 22, "사자자리"},
	{8, 23, 9, 23, "처녀자리"},
	{9, 24, 10, 22, "천칭자리"},
	{10, 23, 11, 22, "전갈자리"},
	{11, 23, 12, 24, "사수자리"},
	{12, 25, 1, 19, "염소자리"},
	{1, 20, 2, 18, "물병자리"},
}

// StarSignFallback is the sign covering the dates no explicit range claims.
const StarSignFallback = "물고기자리"

// ReferenceLocation exposes the fixed reference zone for display formatting.
func ReferenceLocation() *time.Location {
	return referenceZone
}

// ReferenceNow converts the clock's instant into the fixed reference zone.
// The conversion goes through UTC so host locale settings never leak in.
func ReferenceNow(clock Clock) time.Time {
	return clock.Now().UTC().In(referenceZone)
}

// DateKey produces the canonical YYYY-MM-DD key for t in the reference zone.
// Two timestamps share a key exactly when they fall on the same KST calendar day.
func DateKey(t time.Time) string {
	return t.In(referenceZone).Format(config.DateKeyFormat)
}

// AfterDailyThreshold reports whether t is at or past the daily refresh
// threshold (09:00) in the reference zone. Minutes and seconds are ignored.
func AfterDailyThreshold(t time.Time) bool {
	return t.In(referenceZone).Hour() >= config.DailyThresholdHour
}

// ZodiacAnimalFor maps a birth year to its animal label via year mod 12.
func ZodiacAnimalFor(year int) string {
	idx := year % 12
	if idx < 0 {
		idx += 12
	}
	return zodiacAnimals[idx]
}

// StarSignFor maps a birth month/day to its sign label using the fixed
// range table. Boundary days resolve to the sign starting that day.
func StarSignFor(month, day int) string {
	for _, r := range starSigns {
		if (month == r.FromMonth && day >= r.FromDay) || (month == r.ToMonth && day <= r.ToDay) {
			return r.Label
		}
	}
	return StarSignFallback
}
