package hexagram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestResolve_ReferenceMoments(t *testing.T) {
	tests := []struct {
		name  string
		at    time.Time
		lower Trigram
		upper Trigram
		value int
		title string
		yang  int
	}{
		{"2024-01-01 midnight", at(2024, 1, 1, 0), 2, 4, 20, "Das Durchbeißen", 2},
		{"2024-01-01 afternoon", at(2024, 1, 1, 13), 7, 4, 60, "Innere Wahrheit", 4},
		{"1999-12-31", at(1999, 12, 31, 0), 6, 4, 52, "Die Entwicklung", 3},
		{"summer solstice 2025", at(2025, 6, 21, 0), 4, 6, 38, "Das Hemmnis", 3},
		{"equinox day", at(2024, 3, 20, 0), 7, 3, 59, "Die Beschränkung", 5},
		{"autumn morning", at(2024, 9, 22, 6), 5, 1, 41, "Die Mehrung", 3},
		{"leap year end", at(2024, 12, 31, 23), 2, 4, 20, "Das Durchbeißen", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Resolve(tt.at, Builtin())
			assert.Equal(t, tt.lower, h.Lower)
			assert.Equal(t, tt.upper, h.Upper)
			assert.Equal(t, tt.value, h.Value)
			assert.Equal(t, tt.value+1, h.Number())
			assert.Equal(t, tt.title, h.Name)
			assert.Equal(t, tt.yang, h.Yang)
			assert.Equal(t, 6-tt.yang, h.Yin)
		})
	}
}

func TestSolarLongitude(t *testing.T) {
	tests := []struct {
		doy      int
		expected float64
	}{
		{1, 283.1904},
		{80, 0.0},
		{81, 0.9043},
		{172, 90.7386},
		{266, 183.0525},
		{355, 271.1414},
		{366, 282.9240},
	}

	for _, tt := range tests {
		angle := SolarLongitude(tt.doy)
		assert.InDelta(t, tt.expected, angle, 0.0001, "day %d", tt.doy)
		assert.GreaterOrEqual(t, angle, 0.0)
		assert.Less(t, angle, 360.0)
	}
}

func TestFromTrigrams_AllValues(t *testing.T) {
	for lower := Trigram(0); lower < 8; lower++ {
		for upper := Trigram(0); upper < 8; upper++ {
			h := FromTrigrams(lower, upper, Builtin())

			require.GreaterOrEqual(t, h.Value, 0)
			require.LessOrEqual(t, h.Value, 63)
			assert.Equal(t, 6, h.Yang+h.Yin)
			assert.NotEqual(t, UnknownName, h.Name)
			assert.NotEmpty(t, h.Judgment)
			assert.Equal(t, h.Value, (int(h.Lower)<<3)|int(h.Upper))
		}
	}
}

func TestFromTrigrams_LineCounts(t *testing.T) {
	assert.Equal(t, 0, FromTrigrams(0, 0, nil).Yang)
	assert.Equal(t, 6, FromTrigrams(7, 7, nil).Yang)
	assert.Equal(t, 6, FromTrigrams(7, 7, nil).Balance())
	assert.Equal(t, 0, FromTrigrams(7, 0, nil).Balance())
}

type emptyTable struct{}

func (emptyTable) Lookup(int) (Entry, bool) { return Entry{}, false }

func TestFromTrigrams_LookupMiss(t *testing.T) {
	h := FromTrigrams(2, 4, emptyTable{})

	assert.Equal(t, 20, h.Value)
	assert.Equal(t, UnknownName, h.Name)
	assert.Empty(t, h.Judgment)

	nilTable := FromTrigrams(2, 4, nil)
	assert.Equal(t, UnknownName, nilTable.Name)
}

func TestHexagram_Relations(t *testing.T) {
	h := FromTrigrams(2, 4, Builtin())

	assert.Equal(t, 43, h.Opposite())
	assert.Equal(t, 34, h.Reversed())
	assert.Equal(t, h.Value, FromTrigrams(h.Upper, h.Lower, nil).Reversed())
}

func TestBuiltin_Lookup(t *testing.T) {
	table := Builtin()

	first, ok := table.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Das Schöpferische", first.Name)

	last, ok := table.Lookup(64)
	require.True(t, ok)
	assert.Equal(t, "Vor der Vollendung", last.Name)

	for n := 1; n <= 64; n++ {
		e, ok := table.Lookup(n)
		require.True(t, ok)
		assert.Equal(t, n, e.Number)
	}

	_, ok = table.Lookup(0)
	assert.False(t, ok)
	_, ok = table.Lookup(65)
	assert.False(t, ok)
}

func TestTrigram_Display(t *testing.T) {
	assert.Equal(t, "☷", Trigram(0).Symbol())
	assert.Equal(t, "Himmel", Trigram(7).Name())
	assert.Equal(t, "☲ Feuer", Trigram(5).String())
	assert.Equal(t, "?", Trigram(8).Symbol())
	assert.Equal(t, "?", Trigram(-1).Name())
}
