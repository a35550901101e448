package dist

import "math"

// e carried to full float64 precision.
const e = 2.718281828459045

// ExpAccuracy is the magnitude below which Taylor series terms are dropped in Exp.
const ExpAccuracy = 1e-6

// maxExpArg is the largest |x| for which e**x fits in a normal float64.
// The short-circuit is symmetric, so Exp(-x) returns 0 rather than a
// subnormal for |x| just past this bound.
const maxExpArg = 709.78

// IntPow computes x to the non-negative integer power n in O(log n) multiplications.
func IntPow(x float64, n int) float64 {
	p := 1.0
	for n > 0 {
		if n&1 == 1 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return p
}

// Exp computes e**x for arbitrary finite x without the platform exponential.
// |x| is split into integer and fractional parts: the fraction is handled by a
// Taylor series truncated once a term drops below ExpAccuracy, the integer part
// by exact integer exponentiation of e. Negative inputs use exp(-x) = 1/exp(x).
func Exp(x float64) float64 {
	positive := x >= 0
	if !positive {
		x = -x
	}

	if x > maxExpArg {
		if positive {
			return math.Inf(1)
		}
		return 0
	}

	n := int(x)
	f := x - float64(n)

	sum := 0.0
	term := 1.0
	for i := 1; term > ExpAccuracy; i++ {
		sum += term
		term *= f / float64(i)
	}

	r := IntPow(e, n) * sum
	if !positive {
		return 1 / r
	}
	return r
}
