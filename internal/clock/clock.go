// Package clock abstracts the wall-clock source so hand positions can be
// computed against a fixed time in tests.
package clock

import (
	"time"

	"github.com/pkg/errors"
)

// ErrUnavailable is returned by a Source that cannot read the time.
var ErrUnavailable = errors.New("clock unavailable")

// Source reports the current local time.
type Source interface {
	Now() (time.Time, error)
}

// System reads the host's local clock.
type System struct{}

// Now returns the current local time. It never fails.
func (System) Now() (time.Time, error) {
	return time.Now().Local(), nil
}

// Fixed always reports the same time.
type Fixed time.Time

func (f Fixed) Now() (time.Time, error) {
	return time.Time(f), nil
}

// Func adapts a function to Source.
type Func func() (time.Time, error)

func (f Func) Now() (time.Time, error) {
	return f()
}

// Reading is the part of a clock reading the face needs.
type Reading struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// ReadingOf extracts hour, minute and second from t.
func ReadingOf(t time.Time) Reading {
	h, m, s := t.Clock()
	return Reading{Hour: h, Minute: m, Second: s}
}

// Read returns the current reading of src.
func Read(src Source) (Reading, error) {
	t, err := src.Now()
	if err != nil {
		return Reading{}, errors.Wrap(err, "read clock")
	}
	return ReadingOf(t), nil
}

var (
	_ Source = System{}
	_ Source = Fixed{}
	_ Source = Func(nil)
)
