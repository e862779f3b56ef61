package waning_test

import (
	"testing"

	"vectorgen/internal/domain/types"
	"vectorgen/internal/waning"
)

func TestFromParams_ConstantWhenBoxIndefinite(t *testing.T) {
	w := waning.FromParams(0.8, -1, 150)

	c, ok := w.(*types.WaningConstant)
	if !ok {
		t.Fatalf("want WaningConstant, got %T", w)
	}
	if c.InitialEffect != 0.8 {
		t.Fatalf("want initial 0.8, got %v", c.InitialEffect)
	}
}

func TestFromParams_BoxWhenNoDecay(t *testing.T) {
	w := waning.FromParams(0.5, 100, 0)

	b, ok := w.(*types.WaningBox)
	if !ok {
		t.Fatalf("want WaningBox, got %T", w)
	}
	if b.BoxDuration != 100 {
		t.Fatalf("want box duration 100, got %v", b.BoxDuration)
	}
}

func TestFromParams_BoxWhenDecayNegative(t *testing.T) {
	// A negative decay constant disables decay rather than producing a
	// box-exponential with a nonsense parameter.
	if _, ok := waning.FromParams(0.09, 100, -1).(*types.WaningBox); !ok {
		t.Fatal("want WaningBox for negative decay")
	}
}

func TestFromParams_ExponentialWhenNoBox(t *testing.T) {
	w := waning.FromParams(1, 0, 250)

	e, ok := w.(*types.WaningExponential)
	if !ok {
		t.Fatalf("want WaningExponential, got %T", w)
	}
	if e.DecayTimeConstant != 250 {
		t.Fatalf("want decay 250, got %v", e.DecayTimeConstant)
	}
}

func TestFromParams_BoxExponential(t *testing.T) {
	w := waning.FromParams(1, 90, 250)

	be, ok := w.(*types.WaningBoxExponential)
	if !ok {
		t.Fatalf("want WaningBoxExponential, got %T", w)
	}
	if be.BoxDuration != 90 || be.DecayTimeConstant != 250 {
		t.Fatalf("unexpected params: %+v", be)
	}
}
