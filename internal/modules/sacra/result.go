package sacra

import (
	"fmt"
	"math/big"
	"time"

	"github.com/aristath/sacra/internal/modules/calendar"
	"github.com/aristath/sacra/internal/modules/hexagram"
	"github.com/aristath/sacra/internal/modules/scoring"
)

// Result is the composite analysis of a single moment. It is never mutated
// after Analyze returns.
type Result struct {
	Moment          time.Time
	Signature       string
	Score           float64
	Tier            scoring.Tier
	Detail          scoring.MomentScore
	HexagramQuality scoring.JudgmentScore
	Hexagram        hexagram.Hexagram
	PiDigit         int
	Fibonacci       *big.Int
	Position        int // 0..259
	Calendar        calendar.Position
	Energy          float64
	Enrichment      *Enrichment // nil unless a reference book is loaded
}

// Enrichment carries reference-book material for the resolved hexagram.
type Enrichment struct {
	Entry    hexagram.BookEntry
	HasEntry bool
	Opposite hexagram.Hexagram
	Reversed hexagram.Hexagram
}

// Combined is the ranking key used by the optimal scan.
func (r Result) Combined() float64 {
	return (r.Score + r.HexagramQuality.Score) / 2
}

// Signature formats P{pi}-H{value hex}-T{position}.
func Signature(piDigit, value, position int) string {
	return fmt.Sprintf("P%d-H%02X-T%03d", piDigit, value, position)
}
