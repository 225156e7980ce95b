package face

import (
	"image/color"

	"github.com/iburimskiy/analog-clock/internal/geometry"
)

// HandKind identifies one of the three hands.
type HandKind int

const (
	SecondHand HandKind = iota
	MinuteHand
	HourHand
)

func (k HandKind) String() string {
	switch k {
	case SecondHand:
		return "second"
	case MinuteHand:
		return "minute"
	case HourHand:
		return "hour"
	default:
		return "unknown"
	}
}

// Cap is the shape drawn at one end of a stroked line.
type Cap int

const (
	CapFlat Cap = iota
	CapRound
	CapTriangle
)

// Hand is a line segment pivoting at the face center. From never changes;
// To is replaced on every update.
type Hand struct {
	Kind     HandKind
	Length   float64
	Width    float64
	Color    color.Color
	StartCap Cap
	EndCap   Cap
	From     geometry.Point
	To       geometry.Point
}

func newHand(kind HandKind, center geometry.Point, length, width float64, clr color.Color) *Hand {
	return &Hand{
		Kind:     kind,
		Length:   length,
		Width:    width,
		Color:    clr,
		StartCap: CapRound,
		EndCap:   CapTriangle,
		From:     center,
		To:       center.Sub(geometry.Point{Y: length}),
	}
}

func (h *Hand) pointAt(angle float64) {
	h.To = h.From.Add(geometry.RotatedPoint(angle, h.Length))
}

// SecondAngle returns the second hand angle; 0 seconds points straight up.
func SecondAngle(second int) float64 {
	return float64(second*6 - 90)
}

// MinuteAngle returns the minute hand angle.
func MinuteAngle(minute int) float64 {
	return float64(minute*6 - 90)
}

// HourAngle returns the hour hand angle. The hand creeps half a degree per
// minute between hour positions.
func HourAngle(hour, minute int) float64 {
	return float64(360/hours*(hour%hours)) + 0.5*float64(minute) - 90
}
