package scoring

import "github.com/aristath/sacra/pkg/formulas"

// Summary describes a series of scores from a day scan.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes descriptive statistics over scores.
func Summarize(scores []float64) Summary {
	return Summary{
		Count:  len(scores),
		Mean:   formulas.Mean(scores),
		StdDev: formulas.StdDev(scores),
		Min:    formulas.Min(scores),
		Max:    formulas.Max(scores),
	}
}
