// Package waning maps high-level effect parameters onto the waning-effect
// config the simulator expects.
package waning

import "vectorgen/internal/domain/types"

// FromParams chooses the waning shape from the three knobs every
// intervention builder exposes:
//
//   - boxDuration == -1: the effect never decays (WaningEffectConstant).
//   - decayTimeConstant <= 0: the effect holds for boxDuration days, then
//     stops (WaningEffectBox).
//   - boxDuration == 0: the effect decays exponentially from day one
//     (WaningEffectExponential).
//   - otherwise: box followed by exponential decay
//     (WaningEffectBoxExponential).
func FromParams(initial, boxDuration, decayTimeConstant float64) types.Waning {
	switch {
	case boxDuration == -1:
		return types.NewWaningConstant(initial)
	case decayTimeConstant <= 0:
		return types.NewWaningBox(initial, boxDuration)
	case boxDuration == 0:
		return types.NewWaningExponential(initial, decayTimeConstant)
	default:
		return types.NewWaningBoxExponential(initial, boxDuration, decayTimeConstant)
	}
}
