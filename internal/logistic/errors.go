package logistic

import (
	"errors"
	"fmt"
)

var (
	// ErrParameterDomain is matched by every *DomainError.
	ErrParameterDomain = errors.New("logistic: parameters outside the solution domain")

	// ErrZeroPopulation indicates N0 <= 0, which leaves A undefined.
	ErrZeroPopulation = errors.New("logistic: initial population must be positive")

	// ErrNegativeHorizon indicates a negative time horizon.
	ErrNegativeHorizon = errors.New("logistic: time horizon must not be negative")
)

// DomainError reports the r < 0 and K < N0 combination, for which the
// denominator of the closed form crosses zero at a finite time.
type DomainError struct {
	Params Params
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("logistic: r < 0 and K < N0 (r=%g, K=%d, N0=%d): denominator reaches zero in finite time",
		e.Params.R, e.Params.K, e.Params.N0)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrParameterDomain
}

// Explain returns the message shown to the user in place of the table and
// chart.
func (e *DomainError) Explain() string {
	msg := "With this combination (r < 0 and K < N₀) the denominator of the closed-form " +
		"logistic solution reaches 0 in finite time and the population diverges."
	if ts, ok := e.Params.CriticalTime(); ok {
		msg += fmt.Sprintf(" Blow-up occurs at t* ≈ %.3f.", ts)
	}
	return msg + "\n\nAdjust the values so that either\n" +
		"  • r ≥ 0, or\n" +
		"  • K ≥ N₀."
}

// AsDomainError unwraps err to a *DomainError if it carries one.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
