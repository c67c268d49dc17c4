package formulas

import "math/big"

// Fibonacci returns the first n Fibonacci numbers starting 0, 1, 1, 2, ...
// n <= 0 yields an empty sequence.
func Fibonacci(n int) []*big.Int {
	if n <= 0 {
		return []*big.Int{}
	}

	seq := make([]*big.Int, 0, n)
	seq = append(seq, big.NewInt(0))
	if n == 1 {
		return seq
	}
	seq = append(seq, big.NewInt(1))

	for len(seq) < n {
		next := new(big.Int).Add(seq[len(seq)-1], seq[len(seq)-2])
		seq = append(seq, next)
	}
	return seq
}

// FibonacciAt returns the value at index from a sequence of at most limit terms.
// Indexes outside the generated sequence yield 0.
func FibonacciAt(index, limit int) *big.Int {
	if index < 0 {
		return big.NewInt(0)
	}

	n := index + 1
	if n > limit {
		n = limit
	}

	seq := Fibonacci(n)
	if index >= len(seq) {
		return big.NewInt(0)
	}
	return seq[index]
}
