package server

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/san-kum/popgrowth/internal/logistic"
)

// parseParams reads n0, r, k and tmax from q, keeping defaults for absent
// keys, and enforces the input bounds.
func parseParams(q url.Values, defaults logistic.Params) (logistic.Params, error) {
	p := defaults
	for _, f := range logistic.Fields() {
		raw := q.Get(f.Name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return p, fmt.Errorf("%s: not a number: %q", f.Name, raw)
		}
		if f.Integer && v != math.Trunc(v) {
			return p, fmt.Errorf("%s: must be an integer: %q", f.Name, raw)
		}
		if !f.Contains(v) {
			return p, &logistic.BoundsError{Field: f, Value: v}
		}
		p = f.Set(p, v)
	}
	return p, nil
}
