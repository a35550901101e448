package calibration

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/savthe/prediction-confidence/domain/confidence"
	"github.com/savthe/prediction-confidence/domain/core"
	"github.com/savthe/prediction-confidence/domain/dist"
	"github.com/savthe/prediction-confidence/internal/errors"
)

// FitParams estimates normal distribution parameters from observed samples
// using the sample mean and the sample (n-1) standard deviation.
func FitParams(samples []float64) (dist.Params, error) {
	if len(samples) < 2 {
		return dist.Params{}, core.ErrEmptySample
	}

	mean, err := stats.Mean(samples)
	if err != nil {
		return dist.Params{}, errors.Wrap(err, "failed to compute sample mean")
	}
	stdev, err := stats.StandardDeviationSample(samples)
	if err != nil {
		return dist.Params{}, errors.Wrap(err, "failed to compute sample stdev")
	}

	p := dist.Params{Mean: mean, Stdev: stdev}
	if err := p.Validate(); err != nil {
		// Degenerate samples (all identical) produce zero stdev.
		return dist.Params{}, errors.Wrap(err, "sample has no spread")
	}
	return p, nil
}

// TableDrift probes a built table against the closed-form normal CDF and
// returns the largest absolute confidence discrepancy seen. Useful as a
// build-time diagnostic: the result is bounded by one bucket of density plus
// the series truncation error.
func TableDrift(t *confidence.Table, probes int) float64 {
	cfg := t.Config()
	ref := distuv.Normal{Mu: cfg.Params.Mean, Sigma: cfg.Params.Stdev}

	worst := 0.0
	step := (cfg.Upper - cfg.Lower) / float64(probes+1)
	for i := 1; i <= probes; i++ {
		x := cfg.Lower + step*float64(i)

		cdf := ref.CDF(x)
		want := 2 * cdf
		if cdf > 0.5 {
			want = 2 * (1 - cdf)
		}

		if d := abs(t.Evaluate(x) - want); d > worst {
			worst = d
		}
	}
	return worst
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
