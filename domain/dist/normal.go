package dist

import "github.com/savthe/prediction-confidence/domain/core"

// rootTwoPi is sqrt(2*pi), the normalization constant of the normal density.
const rootTwoPi = 2.50662827463

// Params fixes a normal distribution. Immutable once configured.
type Params struct {
	Mean  float64 `json:"mean"`
	Stdev float64 `json:"stdev"`
}

// Validate rejects parameters that do not describe a normal distribution.
func (p Params) Validate() error {
	if p.Stdev <= 0 {
		return core.ErrInvalidStdev
	}
	return nil
}

// Density evaluates the normal probability density at x. Stdev > 0 is a
// configuration invariant enforced by Validate, not checked per call.
func (p Params) Density(x float64) float64 {
	z := (x - p.Mean) / p.Stdev
	return 1 / (p.Stdev * rootTwoPi) * Exp(-0.5*z*z)
}
