package logistic

import (
	"fmt"
	"math"
)

// Field describes one bounded numeric input.
type Field struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Default float64
	Step    float64
	Integer bool
}

var (
	FieldN0 = Field{Name: "n0", Label: "N₀ (initial population)", Min: 1, Max: 10000, Default: 100, Step: 10, Integer: true}
	FieldR  = Field{Name: "r", Label: "r (intrinsic growth rate, may be negative)", Min: -5.0, Max: 5.0, Default: 0.5, Step: 0.01}
	FieldK  = Field{Name: "k", Label: "K (carrying capacity)", Min: 1, Max: 100000, Default: 500, Step: 50, Integer: true}
	FieldT  = Field{Name: "tmax", Label: "t max (time horizon)", Min: 1, Max: 1000, Default: 10, Step: 1, Integer: true}
)

// Fields returns the inputs in display order.
func Fields() []Field {
	return []Field{FieldN0, FieldR, FieldK, FieldT}
}

// DefaultParams returns every field at its default.
func DefaultParams() Params {
	return Params{
		N0:   int(FieldN0.Default),
		R:    FieldR.Default,
		K:    int(FieldK.Default),
		TMax: int(FieldT.Default),
	}
}

// Clamp limits v to [Min, Max], truncating integer fields.
func (f Field) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return f.Default
	}
	if v < f.Min {
		v = f.Min
	}
	if v > f.Max {
		v = f.Max
	}
	if f.Integer {
		return math.Trunc(v)
	}
	return v
}

// Increment moves v by dir steps and clamps. Real-valued fields are rounded
// to the step's precision so repeated stepping does not drift.
func (f Field) Increment(v float64, dir int) float64 {
	v += float64(dir) * f.Step
	if !f.Integer {
		v = math.Round(v/f.Step) * f.Step
		v = math.Round(v*100) / 100
	}
	return f.Clamp(v)
}

// Contains reports whether v lies within the bounds.
func (f Field) Contains(v float64) bool {
	return v >= f.Min && v <= f.Max
}

// Format renders v the way the input widget shows it.
func (f Field) Format(v float64) string {
	if f.Integer {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.3f", v)
}

// Get reads the field's value from p.
func (f Field) Get(p Params) float64 {
	switch f.Name {
	case FieldN0.Name:
		return float64(p.N0)
	case FieldR.Name:
		return p.R
	case FieldK.Name:
		return float64(p.K)
	case FieldT.Name:
		return float64(p.TMax)
	}
	return 0
}

// Set returns a copy of p with the field replaced by the clamped v.
func (f Field) Set(p Params, v float64) Params {
	v = f.Clamp(v)
	switch f.Name {
	case FieldN0.Name:
		p.N0 = int(v)
	case FieldR.Name:
		p.R = v
	case FieldK.Name:
		p.K = int(v)
	case FieldT.Name:
		p.TMax = int(v)
	}
	return p
}

// BoundsError reports a parameter outside its input range.
type BoundsError struct {
	Field Field
	Value float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s = %s outside [%s, %s]", e.Field.Name,
		e.Field.Format(e.Value), e.Field.Format(e.Field.Min), e.Field.Format(e.Field.Max))
}

// CheckBounds returns a *BoundsError for the first field of p outside its
// range.
func CheckBounds(p Params) error {
	for _, f := range Fields() {
		if v := f.Get(p); !f.Contains(v) {
			return &BoundsError{Field: f, Value: v}
		}
	}
	return nil
}
