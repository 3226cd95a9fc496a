package starcatch

import "github.com/vovakirdan/starcatch/internal/core"

// Blend tracks how far the session has faded behind an overlay.
// The value ramps by a fixed step per tick and never leaves [0,1].
type Blend struct {
	value float64
	step  float64
}

// NewBlend creates a blend at zero that moves by step per tick.
func NewBlend(step float64) *Blend {
	return &Blend{step: step}
}

// Update moves the blend toward 1 while obscured and toward 0 otherwise.
func (b *Blend) Update(obscured bool) {
	if obscured {
		b.value = core.ClampF(b.value+b.step, 0, 1)
	} else {
		b.value = core.ClampF(b.value-b.step, 0, 1)
	}
}

// Value returns the current blend coefficient.
func (b *Blend) Value() float64 {
	return b.value
}

// FadeAlpha is the darkening alpha for the session's own layer given its
// entry/exit transition alpha.
func (b *Blend) FadeAlpha(ownAlpha float64) float64 {
	return core.Lerp(1-ownAlpha, 1, b.value/2)
}

// Composite stacks two black layers with the over operator.
func Composite(fade, stackFade float64) float64 {
	return core.ClampF(fade+stackFade*(1-fade), 0, 1)
}
