// Package calendar converts Gregorian dates into long-count cycle positions.
package calendar

import (
	"fmt"
	"time"
)

// Cycle constants
const (
	// LongCountEpoch is the Julian Day Number subtracted to obtain the long-count day.
	LongCountEpoch = 584283

	TzolkinNumbers = 13
	TzolkinDays    = 20
	TzolkinRound   = 260 // Combined 13 x 20 cycle
	HaabDays       = 365
	HaabMonthDays  = 20
	HaabRegularLen = 360 // 18 regular months; the remaining 5 days form Wayeb
	VenusSynodic   = 584
)

// Position is a date expressed in long-count calendar cycles.
type Position struct {
	JulianDay     int
	LongCount     int        // Days since the long-count epoch
	TzolkinNumber int        // 1..13
	TzolkinName   string     // One of 20 day names
	Combined      int        // 1..260
	HaabDay       int        // Day within the Haab month (0..19, Wayeb 0..4)
	HaabMonth     string     // One of 19 month names
	HaabCycleDay  int        // 0..364
	Venus         VenusPhase // Phase within the 584-day synodic cycle
}

// Convert derives the calendar position for the date part of t.
func Convert(t time.Time) Position {
	jdn := JulianDayNumber(t.Year(), int(t.Month()), t.Day())
	lc := jdn - LongCountEpoch

	number := floorMod(lc+4, TzolkinNumbers)
	if number == 0 {
		number = TzolkinNumbers
	}

	haab := floorMod(lc+348, HaabDays)
	var haabMonth string
	var haabDay int
	if haab < HaabRegularLen {
		haabMonth = haabMonths[haab/HaabMonthDays]
		haabDay = haab % HaabMonthDays
	} else {
		haabMonth = haabMonths[len(haabMonths)-1]
		haabDay = haab - HaabRegularLen
	}

	return Position{
		JulianDay:     jdn,
		LongCount:     lc,
		TzolkinNumber: number,
		TzolkinName:   tzolkinNames[floorMod(lc+19, TzolkinDays)],
		Combined:      floorMod(lc, TzolkinRound) + 1,
		HaabDay:       haabDay,
		HaabMonth:     haabMonth,
		HaabCycleDay:  haab,
		Venus:         venusPhaseFor(floorMod(lc, VenusSynodic)),
	}
}

// JulianDayNumber returns the JDN of a proleptic Gregorian date using the
// standard integer algorithm.
func JulianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// Index returns the zero-based position within the 260-day round (0..259).
func (p Position) Index() int {
	return p.Combined - 1
}

// TzolkinString formats the 13/20 cycle, e.g. "2 Lamat".
func (p Position) TzolkinString() string {
	return fmt.Sprintf("%d %s", p.TzolkinNumber, p.TzolkinName)
}

// HaabString formats the solar cycle, e.g. "16 Kankin".
func (p Position) HaabString() string {
	return fmt.Sprintf("%d %s", p.HaabDay, p.HaabMonth)
}

func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func floorDiv(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}
