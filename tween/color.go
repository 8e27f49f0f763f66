package tween

import "github.com/lucasb-eyer/go-colorful"

// Color is a colour-valued Tweenable.
type Color = Tweenable[colorful.Color]

// NewColor creates a Color cell.
func NewColor(c colorful.Color) *Color {
	return NewTweenable(c)
}

// LerpColor blends in HCL space, which keeps hue transitions even.
func LerpColor(a, b colorful.Color, p float64) colorful.Color {
	return a.BlendHcl(b, p).Clamped()
}

// NewColorTween creates a Tween between colours.
func NewColorTween(target *Color, end colorful.Color, duration float64, ease EaseFunc) (*Tween[colorful.Color], error) {
	return NewTweenFunc(target, end, duration, ease, LerpColor)
}
