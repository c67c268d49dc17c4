package formulas

import (
	"math"
	"math/big"
	"strings"
)

// Chudnovsky series constants
const (
	chudnovskyTerms      = 10
	chudnovskyMinDigits  = 100
	chudnovskyGuardDigit = 50
)

var (
	chudnovskyLinear = big.NewInt(545140134)
	chudnovskyBase   = big.NewInt(-262537412640768000)
)

// PiDigits returns the first count decimal digits of π after the decimal point.
//
// The value is computed with a fixed ten-term Chudnovsky series at a working
// precision of max(count+50, 100) significant decimal digits. Ten terms are good
// for roughly 140 digits of π; later positions are the digits of the truncated
// series, which are still identical for every call.
func PiDigits(count int) string {
	if count <= 0 {
		return ""
	}

	precDigits := count + chudnovskyGuardDigit
	if precDigits < chudnovskyMinDigits {
		precDigits = chudnovskyMinDigits
	}
	prec := uint(math.Ceil(float64(precDigits)*math.Log2(10))) + 64

	pi := chudnovsky(prec)

	// Render every significant digit, then truncate rather than round
	text := pi.Text('f', precDigits-1)
	fraction := ""
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		fraction = text[idx+1:]
	}

	if len(fraction) >= count {
		return fraction[:count]
	}
	return fraction + strings.Repeat("0", count-len(fraction))
}

// chudnovsky sums the series at the given binary precision and returns C/S.
func chudnovsky(prec uint) *big.Float {
	newFloat := func() *big.Float { return new(big.Float).SetPrec(prec) }

	// C = 426880 * sqrt(10005)
	c := newFloat().SetInt64(10005)
	c.Sqrt(c)
	c.Mul(c, newFloat().SetInt64(426880))

	k := big.NewInt(6)
	m := big.NewInt(1)
	l := big.NewInt(13591409)
	x := big.NewInt(1)
	s := newFloat().SetInt(l)

	kCubed := new(big.Int)
	sixteenK := new(big.Int)
	iCubed := new(big.Int)
	ml := new(big.Int)

	for i := int64(1); i < chudnovskyTerms; i++ {
		// M = M * (K^3 - 16K) / i^3 stays integral
		kCubed.Exp(k, big.NewInt(3), nil)
		sixteenK.Mul(k, big.NewInt(16))
		kCubed.Sub(kCubed, sixteenK)
		m.Mul(m, kCubed)
		iCubed.SetInt64(i * i * i)
		m.Quo(m, iCubed)

		k.Add(k, big.NewInt(12))
		l.Add(l, chudnovskyLinear)
		x.Mul(x, chudnovskyBase)

		ml.Mul(m, l)
		term := newFloat().SetInt(ml)
		term.Quo(term, newFloat().SetInt(x))
		s.Add(s, term)
	}

	return newFloat().Quo(c, s)
}
