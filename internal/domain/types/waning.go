package types

// Waning is implemented by the waning-effect configs that describe how an
// intervention's efficacy changes over time.
type Waning interface {
	WaningClass() string
}

// WaningConstant holds the initial effect indefinitely.
type WaningConstant struct {
	Class         string  `json:"class"`
	InitialEffect float64 `json:"Initial_Effect"`
}

// WaningClass implements Waning.
func (*WaningConstant) WaningClass() string { return "WaningEffectConstant" }

// NewWaningConstant returns a constant effect of strength initial.
func NewWaningConstant(initial float64) *WaningConstant {
	return &WaningConstant{Class: "WaningEffectConstant", InitialEffect: initial}
}

// WaningBox holds the initial effect for a fixed box duration, then drops
// to zero.
type WaningBox struct {
	Class         string  `json:"class"`
	InitialEffect float64 `json:"Initial_Effect"`
	BoxDuration   float64 `json:"Box_Duration"`
}

// WaningClass implements Waning.
func (*WaningBox) WaningClass() string { return "WaningEffectBox" }

// NewWaningBox returns a box effect of strength initial lasting boxDuration
// days.
func NewWaningBox(initial, boxDuration float64) *WaningBox {
	return &WaningBox{Class: "WaningEffectBox", InitialEffect: initial, BoxDuration: boxDuration}
}

// WaningExponential decays the initial effect exponentially from day one.
type WaningExponential struct {
	Class             string  `json:"class"`
	InitialEffect     float64 `json:"Initial_Effect"`
	DecayTimeConstant float64 `json:"Decay_Time_Constant"`
}

// WaningClass implements Waning.
func (*WaningExponential) WaningClass() string { return "WaningEffectExponential" }

// NewWaningExponential returns an exponentially decaying effect.
func NewWaningExponential(initial, decayTimeConstant float64) *WaningExponential {
	return &WaningExponential{
		Class:             "WaningEffectExponential",
		InitialEffect:     initial,
		DecayTimeConstant: decayTimeConstant,
	}
}

// WaningBoxExponential holds the initial effect for the box duration, then
// decays it exponentially.
type WaningBoxExponential struct {
	Class             string  `json:"class"`
	InitialEffect     float64 `json:"Initial_Effect"`
	BoxDuration       float64 `json:"Box_Duration"`
	DecayTimeConstant float64 `json:"Decay_Time_Constant"`
}

// WaningClass implements Waning.
func (*WaningBoxExponential) WaningClass() string { return "WaningEffectBoxExponential" }

// NewWaningBoxExponential returns a box effect followed by exponential decay.
func NewWaningBoxExponential(initial, boxDuration, decayTimeConstant float64) *WaningBoxExponential {
	return &WaningBoxExponential{
		Class:             "WaningEffectBoxExponential",
		InitialEffect:     initial,
		BoxDuration:       boxDuration,
		DecayTimeConstant: decayTimeConstant,
	}
}
