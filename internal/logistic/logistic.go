package logistic

import "math"

const (
	ModelName          = "Population growth (logistic model)"
	EquationODE        = "dN/dt = r·N·(1 − N/K)"
	EquationClosedForm = "N(t) = K / (1 + ((K − N₀)/N₀)·e^(−r·t))"
)

// Params holds one render cycle's inputs.
type Params struct {
	N0   int     `json:"n0" yaml:"n0"`
	R    float64 `json:"r" yaml:"r"`
	K    int     `json:"k" yaml:"k"`
	TMax int     `json:"tmax" yaml:"tmax"`
}

// A returns (K - N0) / N0.
func (p Params) A() float64 {
	return float64(p.K-p.N0) / float64(p.N0)
}

// Validate runs the precondition checks of Evaluate without computing any
// points.
func (p Params) Validate() error {
	if p.N0 <= 0 {
		return ErrZeroPopulation
	}
	if p.TMax < 0 {
		return ErrNegativeHorizon
	}
	if p.R < 0 && p.K < p.N0 {
		return &DomainError{Params: p}
	}
	return nil
}

// CriticalTime returns the time at which 1 + A e^(-r t) reaches zero. It
// reports false when the denominator never vanishes for t > 0.
func (p Params) CriticalTime() (float64, bool) {
	if p.N0 <= 0 || p.R >= 0 {
		return 0, false
	}
	a := p.A()
	if a >= 0 || a <= -1 {
		return 0, false
	}
	return math.Log(-1/a) / -p.R, true
}

// Point is one sample of the solution. Undefined points have Defined false
// and N set to NaN.
type Point struct {
	T       int
	N       float64
	Defined bool
}

// Series is ordered by ascending T with no gaps.
type Series []Point

// Values returns N for every point, NaN where undefined.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, pt := range s {
		out[i] = pt.N
	}
	return out
}

// Final returns the last point, or false for an empty series.
func (s Series) Final() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1], true
}

// Undefined counts points whose denominator was not positive.
func (s Series) Undefined() int {
	n := 0
	for _, pt := range s {
		if !pt.Defined {
			n++
		}
	}
	return n
}

// Evaluate computes N(t) for t = 0..TMax. The domain guard runs once before
// any point is produced; on error the returned series is nil.
func Evaluate(p Params) (Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	a := p.A()
	k := float64(p.K)
	series := make(Series, p.TMax+1)
	for t := 0; t <= p.TMax; t++ {
		// A == 0 keeps N == K even when e^(-r t) overflows to +Inf.
		term := 0.0
		if a != 0 {
			term = a * math.Exp(-p.R*float64(t))
		}
		denom := 1 + term
		if denom <= 0 || math.IsNaN(denom) {
			series[t] = Point{T: t, N: math.NaN()}
			continue
		}
		series[t] = Point{T: t, N: k / denom, Defined: true}
	}
	return series, nil
}
