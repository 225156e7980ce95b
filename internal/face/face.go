// Package face lays out an analog clock face and keeps its three hands in
// step with a clock reading.
package face

import (
	"image/color"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/analog-clock/internal/clock"
	"github.com/iburimskiy/analog-clock/internal/geometry"
)

const (
	// FaceRadius is the distance of every mark from the center.
	FaceRadius = 150

	CenterDotDiameter  = 10
	HourMarkDiameter   = 10
	MinuteMarkDiameter = 5

	SecondHandLength = 140
	MinuteHandLength = 120
	HourHandLength   = 80

	hours   = 12
	minutes = 60
)

// Mark is a filled dot on the dial.
type Mark struct {
	Center   geometry.Point
	Diameter float64
}

// TopLeft returns the corner of the dot's bounding box.
func (m Mark) TopLeft() geometry.Point {
	return m.Center.Sub(geometry.Point{X: m.Diameter / 2, Y: m.Diameter / 2})
}

// Face holds the write-once layout of the dial and the three hands.
// It is not safe for concurrent use; the game loop owns it.
type Face struct {
	center      geometry.Point
	centerDot   Mark
	hourMarks   []Mark
	minuteMarks []Mark

	second *Hand
	minute *Hand
	hour   *Hand

	shown clock.Reading

	log zerolog.Logger
}

// Option configures a Face.
type Option func(*Face)

// WithLogger sets the logger used to report skipped ticks.
func WithLogger(l zerolog.Logger) Option {
	return func(f *Face) { f.log = l }
}

// New lays out a face on a surface of the given size. The center is fixed at
// half the width and height. All hands start pointing at 12 o'clock.
func New(width, height float64, opts ...Option) *Face {
	center := geometry.Point{X: width / 2, Y: height / 2}
	f := &Face{
		center:    center,
		centerDot: Mark{Center: center, Diameter: CenterDotDiameter},
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.hourMarks = layoutHourMarks(center)
	f.minuteMarks = layoutMinuteMarks(center)

	f.second = newHand(SecondHand, center, SecondHandLength, 2, color.RGBA{R: 0xff, A: 0xff})
	f.minute = newHand(MinuteHand, center, MinuteHandLength, 4, color.Black)
	f.hour = newHand(HourHand, center, HourHandLength, 8, color.Black)

	return f
}

func layoutHourMarks(center geometry.Point) []Mark {
	marks := make([]Mark, 0, hours)
	for i := 0; i < hours; i++ {
		angle := float64(360 / hours * (i + 1))
		marks = append(marks, Mark{
			Center:   center.Add(geometry.RotatedPoint(angle, FaceRadius)),
			Diameter: HourMarkDiameter,
		})
	}
	return marks
}

func layoutMinuteMarks(center geometry.Point) []Mark {
	marks := make([]Mark, 0, minutes-hours)
	for i := 0; i < minutes; i++ {
		// every fifth position is already an hour mark
		if (i+1)%5 == 0 {
			continue
		}
		angle := 6 * float64(i+1)
		marks = append(marks, Mark{
			Center:   center.Add(geometry.RotatedPoint(angle, FaceRadius)),
			Diameter: MinuteMarkDiameter,
		})
	}
	return marks
}

// Center returns the pivot point of the hands.
func (f *Face) Center() geometry.Point { return f.center }

// CenterDot returns the dot drawn over the pivot.
func (f *Face) CenterDot() Mark { return f.centerDot }

// HourMarks returns a copy of the 12 hour marks.
func (f *Face) HourMarks() []Mark {
	return append([]Mark(nil), f.hourMarks...)
}

// MinuteMarks returns a copy of the 48 minute marks.
func (f *Face) MinuteMarks() []Mark {
	return append([]Mark(nil), f.minuteMarks...)
}

// Hand returns a snapshot of the hand of the given kind.
func (f *Face) Hand(kind HandKind) Hand {
	switch kind {
	case SecondHand:
		return *f.second
	case MinuteHand:
		return *f.minute
	default:
		return *f.hour
	}
}

// Hands returns snapshots of all hands in paint order.
func (f *Face) Hands() []Hand {
	return []Hand{*f.second, *f.minute, *f.hour}
}

// Shown returns the reading the hands currently display.
func (f *Face) Shown() clock.Reading { return f.shown }

// Update moves the hands to show r. Calling it again with the same reading
// leaves the hands where they are.
func (f *Face) Update(r clock.Reading) {
	f.shown = r
	f.second.pointAt(SecondAngle(r.Second))
	f.minute.pointAt(MinuteAngle(r.Minute))
	f.hour.pointAt(HourAngle(r.Hour, r.Minute))
}

// Tick reads src and updates the hands. When the clock cannot be read the
// hands are left untouched and Tick reports false; the next tick catches up.
func (f *Face) Tick(src clock.Source) bool {
	r, err := clock.Read(src)
	if err != nil {
		f.log.Debug().Err(err).Msg("skipping tick")
		return false
	}
	f.Update(r)
	return true
}
