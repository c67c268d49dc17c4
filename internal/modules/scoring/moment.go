package scoring

import (
	"math"
	"math/big"

	"github.com/aristath/sacra/pkg/formulas"
)

// Moment score constants
const (
	// GoldenRatio is the rounded ratio used as the Fibonacci log base.
	GoldenRatio = 1.618

	EnergyWeight   = 0.3
	RawScoreWeight = 10.0
	MaxTrigramSum  = 14.0 // 7 + 7
)

// Tier classifies an overall moment score.
type Tier int

const (
	TierTransformative Tier = iota
	TierModerate
	TierGood
	TierVeryGood
	TierExcellent
)

// String returns the display label.
func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "EXZELLENT"
	case TierVeryGood:
		return "SEHR GUT"
	case TierGood:
		return "GUT"
	case TierModerate:
		return "MODERAT"
	default:
		return "TRANSFORMATIV"
	}
}

// TierFor maps an overall score to its tier.
func TierFor(score float64) Tier {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 65:
		return TierVeryGood
	case score >= 50:
		return TierGood
	case score >= 35:
		return TierModerate
	default:
		return TierTransformative
	}
}

// MomentInput carries the derived values a moment is scored from.
type MomentInput struct {
	PiDigit   int
	Value     int // Hexagram value 0..63
	Lower     int
	Upper     int
	Position  int // 0..259
	Fibonacci *big.Int
}

// MomentScore is the overall rating of a moment.
type MomentScore struct {
	PiComponent  float64
	HexComponent float64
	FibMagnitude float64
	Energy       float64
	Raw          int
	Score        float64
	Tier         Tier
}

// ScoreMoment combines the π digit, trigrams, position and Fibonacci magnitude.
//
//	energy = ((pi/9·100 + (lower+upper)/14·100) / 2) · (1 + fibMagnitude/10)
//	raw    = ((pi + value + position) mod 9) + 1
//	score  = min(100, raw·10 + energy·0.3)
func ScoreMoment(in MomentInput) MomentScore {
	pi := float64(in.PiDigit) / 9 * 100
	hex := float64(in.Lower+in.Upper) / MaxTrigramSum * 100
	fib := FibonacciMagnitude(in.Fibonacci)
	energy := (pi + hex) / 2 * (1 + fib/10)

	raw := floorMod(in.PiDigit+in.Value+in.Position, 9) + 1
	score := formulas.Clamp(float64(raw)*RawScoreWeight+energy*EnergyWeight, 0, 100)

	return MomentScore{
		PiComponent:  pi,
		HexComponent: hex,
		FibMagnitude: fib,
		Energy:       energy,
		Raw:          raw,
		Score:        score,
		Tier:         TierFor(score),
	}
}

// FibonacciMagnitude returns log_1.618(f+1) for positive f, else 0.
func FibonacciMagnitude(f *big.Int) float64 {
	if f == nil || f.Sign() <= 0 {
		return 0
	}
	next := new(big.Int).Add(f, big.NewInt(1))
	v, _ := new(big.Float).SetInt(next).Float64()
	return math.Log(v) / math.Log(GoldenRatio)
}

func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
