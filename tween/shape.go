package tween

import (
	"fmt"
	"math"
)

// RoundedRect builds a closed path around the box [0, 2r+w] x [0, 2r+h]
// with quarter-circle corners of radius r. The path starts at (0, r) and
// runs clockwise. It begins with a callback that resets x and y, so trees
// sharing the same cells can be traced one after another.
//
// A corner lasts one time unit. Edges last length/(πr/2) units, which keeps
// the speed along the path constant: percent of duration is percent of
// perimeter.
func RoundedRect(x, y *Number, radius, extraWidth, extraHeight float64) (*Chain, error) {
	switch {
	case x == nil || y == nil:
		return nil, ErrNilTarget
	case !(radius > 0) || extraWidth < 0 || extraHeight < 0:
		return nil, fmt.Errorf("%w: radius %v, extra %vx%v", ErrBadShape, radius, extraWidth, extraHeight)
	}

	r := radius
	w := extraWidth
	h := extraHeight
	unit := math.Pi * r / 2

	corner := func(endX, endY float64, easeX, easeY EaseFunc) *Multiplex {
		return NewMultiplex().
			AddChannel(MustTween(x, endX, 1, easeX)).
			AddChannel(MustTween(y, endY, 1, easeY))
	}

	chain := NewChain().
		Add(NewCallback(func() {
			x.Set(0)
			y.Set(r)
		})).
		// top-left
		Add(corner(r, 0, SineSlowToFast, SineFastToSlow)).
		Add(MustTween(x, r+w, w/unit, Linear)).
		// top-right
		Add(corner(2*r+w, r, SineFastToSlow, SineSlowToFast)).
		Add(MustTween(y, r+h, h/unit, Linear)).
		// bottom-right
		Add(corner(r+w, 2*r+h, SineSlowToFast, SineFastToSlow)).
		Add(MustTween(x, r, w/unit, Linear)).
		// bottom-left
		Add(corner(0, r+h, SineFastToSlow, SineSlowToFast)).
		Add(MustTween(y, r, h/unit, Linear))

	return chain, nil
}

// RoundedRectPerimeter returns the length of the RoundedRect path.
func RoundedRectPerimeter(radius, extraWidth, extraHeight float64) float64 {
	return 2*math.Pi*radius + 2*extraWidth + 2*extraHeight
}

// RoundedRectDuration returns the duration of the RoundedRect chain.
func RoundedRectDuration(radius, extraWidth, extraHeight float64) float64 {
	return RoundedRectPerimeter(radius, extraWidth, extraHeight) / (math.Pi * radius / 2)
}

// TopCentrePercent returns the percent along the RoundedRect path at which
// it passes the middle of the top edge.
func TopCentrePercent(radius, extraWidth, extraHeight float64) float64 {
	perimeter := RoundedRectPerimeter(radius, extraWidth, extraHeight)
	if perimeter == 0 {
		return 0
	}
	return (math.Pi*radius/2 + extraWidth/2) / perimeter
}
