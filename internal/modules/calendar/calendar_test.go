package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestJulianDayNumber(t *testing.T) {
	tests := []struct {
		name     string
		y, m, d  int
		expected int
	}{
		{"J2000 epoch day", 2000, 1, 1, 2451545},
		{"new year 2024", 2024, 1, 1, 2460311},
		{"leap day", 2024, 2, 29, 2460370},
		{"gregorian reform", 1582, 10, 15, 2299161},
		{"year one", 1, 1, 1, 1721426},
		{"foxpro reference", 2006, 1, 2, 2453738},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JulianDayNumber(tt.y, tt.m, tt.d))
		})
	}
}

func TestConvert_ReferenceDates(t *testing.T) {
	tests := []struct {
		name      string
		at        time.Time
		longCount int
		tzolkin   string
		combined  int
		haab      string
		venus     VenusPhase
	}{
		{"2024-01-01", date(2024, 1, 1), 1876028, "2 Lamat", 129, "16 Kankin", VenusMorningStar},
		{"end of the 13th baktun", date(2012, 12, 21), 1872000, "4 Ahau", 1, "3 Kankin", VenusSuperiorConjunction},
		{"leap day", date(2024, 2, 29), 1876087, "9 Manik", 188, "15 Kayab", VenusSuperiorConjunction},
		{"year end", date(2024, 12, 31), 1876393, "3 Ben", 234, "16 Kankin", VenusMorningStar},
		{"gregorian reform", date(1582, 10, 15), 1714878, "13 Etznab", 179, "11 Sek", VenusSuperiorConjunction},
		{"year one", date(1, 1, 1), 1137143, "11 Akbal", 164, "11 Mol", VenusMorningStar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := Convert(tt.at)
			assert.Equal(t, tt.longCount, pos.LongCount)
			assert.Equal(t, tt.tzolkin, pos.TzolkinString())
			assert.Equal(t, tt.combined, pos.Combined)
			assert.Equal(t, tt.combined-1, pos.Index())
			assert.Equal(t, tt.haab, pos.HaabString())
			assert.Equal(t, tt.venus, pos.Venus)
		})
	}
}

func TestConvert_IgnoresTimeOfDay(t *testing.T) {
	morning := Convert(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	evening := Convert(time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, morning, evening)
}

func TestConvert_Wayeb(t *testing.T) {
	start := date(2024, 3, 25)
	for i := 0; i < 5; i++ {
		pos := Convert(start.AddDate(0, 0, i))
		assert.Equal(t, "Wayeb", pos.HaabMonth)
		assert.Equal(t, i, pos.HaabDay)
		assert.Equal(t, HaabRegularLen+i, pos.HaabCycleDay)
	}

	after := Convert(date(2024, 3, 30))
	assert.Equal(t, "Pop", after.HaabMonth)
	assert.Equal(t, 0, after.HaabDay)
}

func TestConvert_VenusBoundaries(t *testing.T) {
	tests := []struct {
		at       time.Time
		expected VenusPhase
	}{
		{date(2024, 1, 16), VenusMorningStar},
		{date(2024, 1, 17), VenusSuperiorConjunction},
		{date(2024, 4, 15), VenusSuperiorConjunction},
		{date(2024, 4, 16), VenusEveningStar},
		{date(2024, 12, 21), VenusEveningStar},
		{date(2024, 12, 22), VenusInferiorConjunction},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Convert(tt.at).Venus, tt.at.Format("2006-01-02"))
	}
}

func TestConvert_RangesAndPeriodicity(t *testing.T) {
	start := date(1900, 1, 1)
	for i := 0; i < 2000; i += 7 {
		day := start.AddDate(0, 0, i)
		pos := Convert(day)

		assert.GreaterOrEqual(t, pos.TzolkinNumber, 1)
		assert.LessOrEqual(t, pos.TzolkinNumber, 13)
		assert.GreaterOrEqual(t, pos.Combined, 1)
		assert.LessOrEqual(t, pos.Combined, 260)
		assert.GreaterOrEqual(t, pos.HaabCycleDay, 0)
		assert.Less(t, pos.HaabCycleDay, 365)

		next := Convert(day.AddDate(0, 0, TzolkinRound))
		assert.Equal(t, pos.Combined, next.Combined)
		assert.Equal(t, pos.TzolkinString(), next.TzolkinString())
	}
}

func TestConvert_BeforeEpoch(t *testing.T) {
	// Long count is negative before the epoch; positions must stay in range.
	pos := Convert(date(-3200, 6, 1))

	assert.Less(t, pos.LongCount, 0)
	assert.GreaterOrEqual(t, pos.TzolkinNumber, 1)
	assert.LessOrEqual(t, pos.TzolkinNumber, 13)
	assert.GreaterOrEqual(t, pos.Combined, 1)
	assert.LessOrEqual(t, pos.Combined, 260)
	assert.Contains(t, TzolkinNames(), pos.TzolkinName)
	assert.Contains(t, HaabMonths(), pos.HaabMonth)
}

func TestFloorHelpers(t *testing.T) {
	assert.Equal(t, 3, floorMod(-1, 4))
	assert.Equal(t, 0, floorMod(-8, 4))
	assert.Equal(t, -1, floorDiv(-1, 4))
	assert.Equal(t, -2, floorDiv(-5, 4))
	assert.Equal(t, 2, floorDiv(9, 4))
}

func TestVenusPhase_String(t *testing.T) {
	assert.Equal(t, "Morgenstern", VenusMorningStar.String())
	assert.Equal(t, "Obere Konjunktion", VenusSuperiorConjunction.String())
	assert.Equal(t, "Abendstern", VenusEveningStar.String())
	assert.Equal(t, "Untere Konjunktion", VenusInferiorConjunction.String())
	assert.Equal(t, "Unbekannt", VenusPhase(9).String())
}
