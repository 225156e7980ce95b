// Package render paints a clock face onto any surface that can draw filled
// circles and capped line segments.
package render

import (
	"image/color"

	"github.com/iburimskiy/analog-clock/internal/face"
	"github.com/iburimskiy/analog-clock/internal/geometry"
)

// MarkColor is the fill of the center dot and all dial marks.
var MarkColor color.Color = color.Black

// Background is the face color behind the dial.
var Background color.Color = color.White

// Segment is a stroked line with per-end caps.
type Segment struct {
	From, To geometry.Point
	Width    float64
	Color    color.Color
	StartCap face.Cap
	EndCap   face.Cap
}

// Canvas is a fixed-size drawing surface.
type Canvas interface {
	Clear(c color.Color)
	// FillCircle fills the circle inscribed in the square whose top-left
	// corner is at topLeft.
	FillCircle(topLeft geometry.Point, diameter float64, c color.Color)
	Line(s Segment)
}

// Paint draws f: background, center dot, hour marks, minute marks, then the
// second, minute and hour hands.
func Paint(c Canvas, f *face.Face) {
	c.Clear(Background)

	dot := f.CenterDot()
	c.FillCircle(dot.TopLeft(), dot.Diameter, MarkColor)
	for _, m := range f.HourMarks() {
		c.FillCircle(m.TopLeft(), m.Diameter, MarkColor)
	}
	for _, m := range f.MinuteMarks() {
		c.FillCircle(m.TopLeft(), m.Diameter, MarkColor)
	}

	for _, h := range f.Hands() {
		c.Line(HandSegment(h))
	}
}

// HandSegment converts a hand to the segment that draws it.
func HandSegment(h face.Hand) Segment {
	return Segment{
		From:     h.From,
		To:       h.To,
		Width:    h.Width,
		Color:    h.Color,
		StartCap: h.StartCap,
		EndCap:   h.EndCap,
	}
}
