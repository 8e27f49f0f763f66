package stream

import (
	"encoding/binary"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledclock/tween"
)

// Frame represents a frame of RGB pixels to display on an LED matrix.
type Frame struct {
	width  int
	height int
	pixels []colorful.Color
}

// NewFrame creates a new black Frame.
func NewFrame(width, height int) *Frame {
	f := new(Frame)
	f.width = width
	f.height = height
	f.pixels = make([]colorful.Color, width*height)
	return f
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Frame) Height() int {
	return f.height
}

// At returns the pixel at (x, y), or black outside the frame.
func (f *Frame) At(x, y int) colorful.Color {
	if !f.contains(x, y) {
		return colorful.Color{}
	}
	return f.pixels[y*f.width+x]
}

// Set writes a pixel. Writes outside the frame are dropped.
func (f *Frame) Set(x, y int, c colorful.Color) {
	if f.contains(x, y) {
		f.pixels[y*f.width+x] = c
	}
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

func (f *Frame) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

// InterpolateFrame merges two frames of the same size.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(f.width, f.height)
	for i := 0; i < len(f.pixels) && i < len(f2.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint).Clamped()
	}

	return out
}

// DrawLine draws a line between two points in pixel coordinates.
func (f *Frame) DrawLine(a, b tween.Point, c colorful.Color) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		f.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawPolyline draws consecutive segments, colouring segment i with colour(i).
func (f *Frame) DrawPolyline(points []tween.Point, colour func(i int) colorful.Color) {
	for i := 1; i < len(points); i++ {
		f.DrawLine(points[i-1], points[i], colour(i-1))
	}
}

// MarshalBinary converts a Frame into binary data: little-endian width and
// height followed by RGB triples in row order.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 4, (len(f.pixels)*3)+4)
	binary.LittleEndian.PutUint16(data, uint16(f.width))
	binary.LittleEndian.PutUint16(data[2:], uint16(f.height))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
