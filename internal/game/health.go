package game

import (
	"github.com/vbelenko/termblast/internal/core"
	"github.com/vbelenko/termblast/internal/sprite"
)

// HealthBar is a bounded health counter with a two-slot bar display
// (border plus proportional fill). Damage may drive the current value
// below zero; clamping happens at render time, not at the damage site.
type HealthBar struct {
	Cur float64
	Max float64

	Bar        core.Rect // Bar geometry in playfield pixels
	borderSlot int
	fillSlot   int
}

// NewHealthBar allocates the bar's two slots and writes the initial
// full-width fill.
func NewHealthBar(reg *sprite.Registry, max float64, bar core.Rect) (*HealthBar, error) {
	border, err := reg.Allocate()
	if err != nil {
		return nil, err
	}
	fill, err := reg.Allocate()
	if err != nil {
		reg.Release(border)
		return nil, err
	}
	h := &HealthBar{
		Cur:        max,
		Max:        max,
		Bar:        bar,
		borderSlot: border,
		fillSlot:   fill,
	}
	h.Sync(reg)
	return h, nil
}

// Damage subtracts from the current value. The value is allowed to go
// negative here; the fill fraction clamps when rendered.
func (h *HealthBar) Damage(amount float64) {
	h.Cur -= amount
}

// Depleted reports whether the health has crossed zero.
func (h *HealthBar) Depleted() bool {
	return h.Cur <= 0
}

// FillFraction returns the displayed fill proportion, always in [0, 1]
// regardless of transient negative current values.
func (h *HealthBar) FillFraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return core.ClampF(h.Cur/h.Max, 0, 1)
}

// Sync writes the border and fill records. The fill width is
// proportional to the clamped current value.
func (h *HealthBar) Sync(reg *sprite.Registry) {
	reg.Write(h.borderSlot, sprite.Attr{
		Screen: h.Bar,
		Atlas:  cellHealthBorder,
	})
	reg.Write(h.fillSlot, sprite.Attr{
		Screen: core.Rect{
			X: h.Bar.X,
			Y: h.Bar.Y,
			W: h.Bar.W * h.FillFraction(),
			H: h.Bar.H,
		},
		Atlas: cellHealthFill,
	})
}

// Release frees both slots.
func (h *HealthBar) Release(reg *sprite.Registry) {
	reg.Release(h.borderSlot)
	reg.Release(h.fillSlot)
}
