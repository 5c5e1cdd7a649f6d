// Package viz provides the terminal dashboard for the logistic growth model.
//
// The dashboard is a Bubble Tea program with three regions:
//
//   - a sidebar holding the four bounded inputs (N₀, r, K, t max)
//   - a table of (t, N) rows with N to three decimals
//   - an asciigraph line chart of N over t
//
// Every parameter change triggers one render cycle: the series is
// re-evaluated in full and both views are redrawn. When the inputs fall in
// the region r < 0 and K < N₀ the table and chart are replaced by an
// explanation of the finite-time blow-up.
//
// # Key Bindings
//
//	j/k   - select field
//	h/l   - step the selected field down/up
//	enter - type a value
//	p     - cycle presets
//	t     - cycle color themes
//	?     - show help
package viz
