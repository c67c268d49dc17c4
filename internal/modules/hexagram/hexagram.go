// Package hexagram derives a six-line figure from a moment and resolves it
// against the reference table.
package hexagram

import (
	"math"
	"math/bits"
	"time"
)

const (
	// UnknownName is used when the table has no entry for a hexagram number.
	UnknownName = "?"

	obliquity = 23.44 // Axial tilt in degrees
	// upperBias is the literal floor(90/30) term of the upper trigram formula.
	upperBias = 3
)

// Hexagram is a six-bit figure composed of two trigrams.
type Hexagram struct {
	Value    int // 0..63
	Lower    Trigram
	Upper    Trigram
	Yang     int
	Yin      int
	Name     string
	Judgment string
}

// Number returns the table number (Value+1).
func (h Hexagram) Number() int {
	return h.Value + 1
}

// Balance returns |Yang - Yin|, 0 for a perfectly balanced figure.
func (h Hexagram) Balance() int {
	d := h.Yang - h.Yin
	if d < 0 {
		return -d
	}
	return d
}

// Opposite returns the value with every line inverted.
func (h Hexagram) Opposite() int {
	return h.Value ^ 0x3F
}

// Reversed returns the value with both trigrams swapped.
func (h Hexagram) Reversed() int {
	return (int(h.Upper) << 3) | int(h.Lower)
}

// Resolve computes the hexagram for t and looks it up in table.
func Resolve(t time.Time, table Table) Hexagram {
	lower := LowerTrigram(t)
	upper := UpperTrigram(t)
	return FromTrigrams(lower, upper, table)
}

// FromTrigrams composes two trigrams into a hexagram and fills in table text.
func FromTrigrams(lower, upper Trigram, table Table) Hexagram {
	value := (int(lower) << 3) | int(upper)
	yang := bits.OnesCount(uint(value))

	h := Hexagram{
		Value: value,
		Lower: lower,
		Upper: upper,
		Yang:  yang,
		Yin:   6 - yang,
		Name:  UnknownName,
	}

	if table != nil {
		if entry, ok := table.Lookup(value + 1); ok {
			h.Name = entry.Name
			h.Judgment = entry.Judgment
		}
	}
	return h
}

// LowerTrigram is (year mod 100 + month + day + hour) mod 8.
func LowerTrigram(t time.Time) Trigram {
	sum := floorMod(t.Year(), 100) + int(t.Month()) + t.Day() + t.Hour()
	return Trigram(floorMod(sum, 8))
}

// UpperTrigram maps the solar longitude onto twelve 30° sectors, shifted by a fixed bias.
func UpperTrigram(t time.Time) Trigram {
	sector := int(math.Floor(SolarLongitude(t.YearDay()) * 12 / 360))
	return Trigram(floorMod(sector+upperBias, 8))
}

// SolarLongitude approximates the ecliptic longitude of the sun in degrees [0, 360)
// for a day of the year.
func SolarLongitude(dayOfYear int) float64 {
	mean := radians(float64(dayOfYear-80) * 360 / 365.25)
	angle := degrees(math.Atan2(math.Sin(mean)*math.Cos(radians(obliquity)), math.Cos(mean)))

	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
