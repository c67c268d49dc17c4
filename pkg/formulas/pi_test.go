package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// First 260 digits produced by the ten-term series. Up to ~140 digits these are
// the digits of π; afterwards they belong to the truncated series.
const seriesDigits260 = "14159265358979323846264338327950288419716939937510" +
	"58209749445923078164062862089986280348253421170679" +
	"82148086513282306647093844609550582231725892483536" +
	"76747192893754797694517915712717438295288522640401" +
	"27689699828741310940372951250840731312509405550797" +
	"4596977380"

func TestPiDigits_Length(t *testing.T) {
	for _, n := range []int{1, 5, 16, 50, 100, 260} {
		digits := PiDigits(n)
		assert.Len(t, digits, n, "count %d", n)
		for _, r := range digits {
			assert.True(t, r >= '0' && r <= '9', "non-digit %q in output", r)
		}
	}
}

func TestPiDigits_KnownPrefix(t *testing.T) {
	assert.Equal(t, "1415926535", PiDigits(10))
	assert.Equal(t, "14159265358979323846264338327950288419716939937510", PiDigits(50))
}

func TestPiDigits_SeriesVector(t *testing.T) {
	require.Len(t, seriesDigits260, 260)
	assert.Equal(t, seriesDigits260, PiDigits(260))
}

func TestPiDigits_PrefixStable(t *testing.T) {
	long := PiDigits(300)
	for _, n := range []int{1, 7, 42, 99, 100, 101, 150, 260} {
		assert.Equal(t, long[:n], PiDigits(n), "prefix of length %d", n)
	}
}

func TestPiDigits_Deterministic(t *testing.T) {
	assert.Equal(t, PiDigits(120), PiDigits(120))
}

func TestPiDigits_NonPositive(t *testing.T) {
	assert.Equal(t, "", PiDigits(0))
	assert.Equal(t, "", PiDigits(-3))
}
