package face

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/analog-clock/internal/clock"
	"github.com/iburimskiy/analog-clock/internal/geometry"
)

const eps = 1e-9

func newTestFace() *Face {
	return New(400, 400)
}

// angleOf returns the direction of p seen from c in degrees, in [0, 360).
func angleOf(c, p geometry.Point) float64 {
	a := math.Atan2(p.Y-c.Y, p.X-c.X) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}

func assertPoint(t *testing.T, want, got geometry.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
}

func TestNew_Center(t *testing.T) {
	f := New(400, 300)

	assert.Equal(t, geometry.Point{X: 200, Y: 150}, f.Center())
	assert.Equal(t, f.Center(), f.CenterDot().Center)
	assert.Equal(t, geometry.Point{X: 195, Y: 145}, f.CenterDot().TopLeft())
}

func TestHourMarks(t *testing.T) {
	f := newTestFace()
	marks := f.HourMarks()
	require.Len(t, marks, 12)

	for i, m := range marks {
		assert.InDelta(t, FaceRadius, m.Center.Dist(f.Center()), eps)
		assert.Equal(t, float64(HourMarkDiameter), m.Diameter)
		assertPoint(t, f.Center().Add(geometry.RotatedPoint(float64(30*(i+1)), FaceRadius)), m.Center)
	}

	// evenly spaced: every pair of neighbours is one 30 degree chord apart
	chord := 2 * FaceRadius * math.Sin(15*math.Pi/180)
	for i := range marks {
		next := marks[(i+1)%len(marks)]
		assert.InDelta(t, chord, marks[i].Center.Dist(next.Center), 1e-6)
	}

	// the last mark sits at 360 degrees, the same spot as 0
	assertPoint(t, geometry.Point{X: 350, Y: 200}, marks[11].Center)
}

func TestMinuteMarks(t *testing.T) {
	f := newTestFace()
	marks := f.MinuteMarks()
	require.Len(t, marks, 48)

	for _, m := range marks {
		assert.InDelta(t, FaceRadius, m.Center.Dist(f.Center()), eps)
		assert.Equal(t, float64(MinuteMarkDiameter), m.Diameter)

		a := angleOf(f.Center(), m.Center)
		steps := math.Round(a / 6)
		assert.InDelta(t, steps*6, a, 1e-6)
		assert.NotZero(t, int(steps)%5, "minute mark at %v overlaps an hour mark", a)
	}
}

func TestMark_TopLeft(t *testing.T) {
	m := Mark{Center: geometry.Point{X: 10, Y: 20}, Diameter: 5}
	assert.Equal(t, geometry.Point{X: 7.5, Y: 17.5}, m.TopLeft())
}

func TestMarks_ReturnCopies(t *testing.T) {
	f := newTestFace()
	marks := f.HourMarks()
	marks[0].Center = geometry.Point{}

	assert.NotEqual(t, geometry.Point{}, f.HourMarks()[0].Center)
}

func TestNew_HandsPointUp(t *testing.T) {
	f := newTestFace()
	c := f.Center()

	for _, h := range f.Hands() {
		assert.Equal(t, c, h.From)
		assertPoint(t, geometry.Point{X: c.X, Y: c.Y - h.Length}, h.To)
		assert.Equal(t, CapRound, h.StartCap)
		assert.Equal(t, CapTriangle, h.EndCap)
	}
}

func TestHandStyles(t *testing.T) {
	f := newTestFace()

	tests := []struct {
		kind   HandKind
		length float64
		width  float64
	}{
		{SecondHand, 140, 2},
		{MinuteHand, 120, 4},
		{HourHand, 80, 8},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			h := f.Hand(tt.kind)
			assert.Equal(t, tt.kind, h.Kind)
			assert.Equal(t, tt.length, h.Length)
			assert.Equal(t, tt.width, h.Width)
		})
	}
}

func TestUpdate_Scenarios(t *testing.T) {
	c := geometry.Point{X: 200, Y: 200}

	tests := []struct {
		name    string
		reading clock.Reading
		kind    HandKind
		want    geometry.Point
	}{
		{"second 0 points up", clock.Reading{Second: 0}, SecondHand, geometry.Point{X: 200, Y: 60}},
		{"second 15 points right", clock.Reading{Second: 15}, SecondHand, geometry.Point{X: 340, Y: 200}},
		{"minute 30 points down", clock.Reading{Minute: 30}, MinuteHand, geometry.Point{X: 200, Y: 320}},
		{"3 o'clock hour hand points right", clock.Reading{Hour: 3}, HourHand, geometry.Point{X: 280, Y: 200}},
		{"15 o'clock matches 3 o'clock", clock.Reading{Hour: 15}, HourHand, geometry.Point{X: 280, Y: 200}},
		{"half past three creeps 15 degrees", clock.Reading{Hour: 3, Minute: 30}, HourHand,
			c.Add(geometry.RotatedPoint(15, HourHandLength))},
		{"midnight hour hand points up", clock.Reading{}, HourHand, geometry.Point{X: 200, Y: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFace()
			f.Update(tt.reading)

			h := f.Hand(tt.kind)
			assert.Equal(t, c, h.From)
			assertPoint(t, tt.want, h.To)
			assert.InDelta(t, h.Length, h.To.Dist(c), eps)
		})
	}
}

func TestAngles(t *testing.T) {
	assert.Equal(t, -90.0, SecondAngle(0))
	assert.Equal(t, 0.0, SecondAngle(15))
	assert.Equal(t, 90.0, MinuteAngle(30))
	assert.Equal(t, 0.0, HourAngle(3, 0))
	assert.Equal(t, 15.0, HourAngle(3, 30))
	assert.Equal(t, HourAngle(3, 30), HourAngle(15, 30))
}

func TestUpdate_Idempotent(t *testing.T) {
	f := newTestFace()
	r := clock.Reading{Hour: 10, Minute: 8, Second: 42}

	f.Update(r)
	first := f.Hands()
	f.Update(r)
	f.Update(r)

	assert.Equal(t, first, f.Hands())
}

func TestUpdate_LayoutUnchanged(t *testing.T) {
	f := newTestFace()
	hours, mins := f.HourMarks(), f.MinuteMarks()

	f.Update(clock.Reading{Hour: 7, Minute: 45, Second: 3})

	assert.Equal(t, hours, f.HourMarks())
	assert.Equal(t, mins, f.MinuteMarks())
	assert.Equal(t, geometry.Point{X: 200, Y: 200}, f.Center())
}

func TestTick(t *testing.T) {
	f := newTestFace()
	src := clock.Fixed(time.Date(2024, 3, 1, 3, 0, 15, 0, time.Local))

	require.True(t, f.Tick(src))
	assertPoint(t, geometry.Point{X: 340, Y: 200}, f.Hand(SecondHand).To)
	assertPoint(t, geometry.Point{X: 280, Y: 200}, f.Hand(HourHand).To)
	assert.Equal(t, clock.Reading{Hour: 3, Second: 15}, f.Shown())
}

func TestTick_ClockUnavailable(t *testing.T) {
	var buf bytes.Buffer
	f := New(400, 400, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	f.Update(clock.Reading{Hour: 9, Minute: 15, Second: 30})
	before := f.Hands()

	failing := clock.Func(func() (time.Time, error) { return time.Time{}, clock.ErrUnavailable })

	assert.False(t, f.Tick(failing))
	assert.Equal(t, before, f.Hands())
	assert.Equal(t, clock.Reading{Hour: 9, Minute: 15, Second: 30}, f.Shown())
	assert.Contains(t, buf.String(), "skipping tick")
	assert.Contains(t, buf.String(), clock.ErrUnavailable.Error())
}

func TestHandKind_String(t *testing.T) {
	assert.Equal(t, "second", SecondHand.String())
	assert.Equal(t, "minute", MinuteHand.String())
	assert.Equal(t, "hour", HourHand.String())
	assert.Equal(t, "unknown", HandKind(9).String())
}
