// Package logistic evaluates the closed-form solution of the logistic
// population-growth equation.
//
// The model is
//
//	dN/dt = r N (1 - N/K)
//
// with the solution
//
//	N(t) = K / (1 + A e^(-r t)),  A = (K - N0) / N0
//
// [Evaluate] produces one [Point] per integer time step from 0 to TMax
// inclusive. The parameter region r < 0 and K < N0 is rejected up front with
// a [*DomainError]: there the denominator reaches zero in finite time and the
// solution blows up.
//
// # Thread Safety
//
// Evaluate is a pure function and may be called from any number of
// goroutines.
package logistic
