package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/analog-clock/internal/face"
	"github.com/iburimskiy/analog-clock/internal/geometry"
	"github.com/iburimskiy/analog-clock/internal/render"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	// whiteSubImage avoids bleeding at the texture edge in DrawTriangles.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// canvas draws onto an ebiten image.
type canvas struct {
	dst *ebiten.Image
}

var _ render.Canvas = canvas{}

func (c canvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

func (c canvas) FillCircle(topLeft geometry.Point, diameter float64, clr color.Color) {
	r := diameter / 2
	vector.DrawFilledCircle(c.dst, float32(topLeft.X+r), float32(topLeft.Y+r), float32(r), clr, true)
}

func (c canvas) Line(s render.Segment) {
	vector.StrokeLine(c.dst, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y), float32(s.Width), s.Color, true)
	c.drawCap(s.From, s.To, s, s.StartCap)
	c.drawCap(s.To, s.From, s, s.EndCap)
}

// drawCap decorates the end of s at tip, where other is the opposite end.
func (c canvas) drawCap(tip, other geometry.Point, s render.Segment, kind face.Cap) {
	half := s.Width / 2
	switch kind {
	case face.CapRound:
		vector.DrawFilledCircle(c.dst, float32(tip.X), float32(tip.Y), float32(half), s.Color, true)
	case face.CapTriangle:
		l := tip.Dist(other)
		if l == 0 {
			return
		}
		// unit vector pointing out of the line, and its normal
		ux, uy := (tip.X-other.X)/l, (tip.Y-other.Y)/l
		nx, ny := -uy*half, ux*half

		var p vector.Path
		p.MoveTo(float32(tip.X+nx), float32(tip.Y+ny))
		p.LineTo(float32(tip.X+ux*half), float32(tip.Y+uy*half))
		p.LineTo(float32(tip.X-nx), float32(tip.Y-ny))
		p.Close()
		c.fillPath(&p, s.Color)
	}
}

func (c canvas) fillPath(p *vector.Path, clr color.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / math.MaxUint16
		vs[i].ColorG = float32(g) / math.MaxUint16
		vs[i].ColorB = float32(b) / math.MaxUint16
		vs[i].ColorA = float32(a) / math.MaxUint16
	}
	c.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
