package config

import (
	"sort"

	"github.com/san-kum/popgrowth/internal/logistic"
)

type Preset struct {
	Description string
	Params      logistic.Params
}

var Presets = map[string]Preset{
	"growth": {
		Description: "sigmoid growth toward K",
		Params:      logistic.Params{N0: 100, R: 0.5, K: 500, TMax: 10},
	},
	"fast": {
		Description: "steep growth that saturates early",
		Params:      logistic.Params{N0: 10, R: 2.0, K: 1000, TMax: 20},
	},
	"overshoot": {
		Description: "start above capacity and relax to K",
		Params:      logistic.Params{N0: 800, R: 0.5, K: 500, TMax: 15},
	},
	"decline": {
		Description: "negative growth rate, decay toward zero",
		Params:      logistic.Params{N0: 100, R: -0.1, K: 500, TMax: 50},
	},
	"blowup": {
		Description: "r < 0 and K < N0, outside the solution domain",
		Params:      logistic.Params{N0: 100, R: -0.1, K: 50, TMax: 10},
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
