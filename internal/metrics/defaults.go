package metrics

import "github.com/san-kum/eggburst/internal/sim"

// Defaults is the metric set reported by headless runs.
func Defaults(openAngle float64) []sim.Metric {
	return []sim.Metric{
		NewOpenTime(openAngle, 0.01),
		NewOvershoot(openAngle),
		NewMirrorError(),
		NewSettleFrame(),
		NewFrozenFraction(),
	}
}
