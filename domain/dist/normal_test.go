package dist

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

// aeq reports whether x and y agree within the accuracy carried by the
// series-based exponential.
func aeq(x, y float64) bool {
	return math.Abs(x-y) <= 1e-5*math.Max(math.Abs(y), 1)
}

func TestParams_Validate(t *testing.T) {
	if err := (Params{Mean: 0, Stdev: 1}).Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}
	if err := (Params{Mean: 0, Stdev: 0}).Validate(); err == nil {
		t.Fatal("zero stdev accepted")
	}
	if err := (Params{Mean: 0, Stdev: -1}).Validate(); err == nil {
		t.Fatal("negative stdev accepted")
	}
}

func TestDensity_StandardNormal(t *testing.T) {
	p := Params{Mean: 0, Stdev: 1}

	if e, g := 1/math.Sqrt(2*math.Pi), p.Density(0); !aeq(e, g) {
		t.Errorf("bad value at 0: expected %g, got %g", e, g)
	}
	if e, g := 1/math.Sqrt(2*math.Pi)*math.Exp(-0.5), p.Density(1); !aeq(e, g) {
		t.Errorf("bad value at 1: expected %g, got %g", e, g)
	}
	if e, g := 1/math.Sqrt(2*math.Pi)*math.Exp(-0.5), p.Density(-1); !aeq(e, g) {
		t.Errorf("bad value at -1: expected %g, got %g", e, g)
	}
	if e, g := 0.0, p.Density(-100); !aeq(e, g) {
		t.Errorf("bad value at low tail: expected %g, got %g", e, g)
	}
	if e, g := 0.0, p.Density(100); !aeq(e, g) {
		t.Errorf("bad value at high tail: expected %g, got %g", e, g)
	}
}

func TestDensity_MatchesReference(t *testing.T) {
	p := Params{Mean: 0.043, Stdev: 0.026}
	ref := distuv.Normal{Mu: p.Mean, Sigma: p.Stdev}

	for x := p.Mean - 5*p.Stdev; x <= p.Mean+5*p.Stdev; x += p.Stdev / 3 {
		want := ref.Prob(x)
		got := p.Density(x)
		if math.Abs(got-want) > 1e-4*want+1e-6 {
			t.Errorf("Density(%g) = %g, reference %g", x, got, want)
		}
	}
}

func TestDensity_SymmetricAroundMean(t *testing.T) {
	p := Params{Mean: 0.043, Stdev: 0.026}
	for d := 0.0; d <= 4*p.Stdev; d += p.Stdev / 7 {
		lo, hi := p.Density(p.Mean-d), p.Density(p.Mean+d)
		if !aeq(lo, hi) {
			t.Errorf("asymmetric density at offset %g: %g vs %g", d, lo, hi)
		}
	}
}
