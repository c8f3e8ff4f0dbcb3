// Package interval measures signed semitone distances between pitches and
// transposes pitches by them.
package interval

import (
	"fmt"
	"math"

	"github.com/jsphweid/musicobjects/constants"
	"github.com/jsphweid/musicobjects/pitch"
	"github.com/jsphweid/musicobjects/util"
	"github.com/pkg/errors"
)

// ErrOverflow is returned when semitone or octave arithmetic leaves the
// representable range. Results are never clamped.
var ErrOverflow = errors.New("interval arithmetic overflow")

// Interval is a signed count of semitones. Positive values go up.
type Interval int32

const (
	Unison        Interval = 0
	MinorSecond   Interval = 1
	MajorSecond   Interval = 2
	MinorThird    Interval = 3
	MajorThird    Interval = 4
	PerfectFourth Interval = 5
	Tritone       Interval = 6
	PerfectFifth  Interval = 7
	MinorSixth    Interval = 8
	MajorSixth    Interval = 9
	MinorSeventh  Interval = 10
	MajorSeventh  Interval = 11
	Octave        Interval = 12
)

type Direction int8

const (
	None Direction = 0
	Up   Direction = 1
	Down Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "none"
}

// Directed builds an interval from an unsigned magnitude and a direction.
// A zero magnitude ignores the direction.
func Directed(magnitude uint32, direction Direction) (Interval, error) {
	if magnitude > math.MaxInt32 {
		return 0, errors.Wrapf(ErrOverflow, "magnitude %d", magnitude)
	}
	switch direction {
	case Up:
		return Interval(magnitude), nil
	case Down:
		return -Interval(magnitude), nil
	}
	if magnitude != 0 {
		return 0, errors.Errorf("interval of %d semitones needs a direction", magnitude)
	}
	return Unison, nil
}

// Between returns the chromatic distance from a to b. With 16-bit octaves
// the result always fits, so there is no error case.
func Between(a, b pitch.Pitch) Interval {
	octaves := int32(b.Octave()) - int32(a.Octave())
	classes := int32(b.Class().Int()) - int32(a.Class().Int())
	return Interval(octaves*constants.SemitonesPerOctave + classes)
}

// Transpose moves p by i semitones. The class wraps with floor modulo so
// negative offsets borrow from the octave correctly.
func Transpose(p pitch.Pitch, i Interval) (pitch.Pitch, error) {
	raw := int64(p.Class().Int()) + int64(i)
	octave := int64(p.Octave()) + util.FloorDiv(raw, constants.SemitonesPerOctave)
	if octave < math.MinInt16 || octave > math.MaxInt16 {
		return pitch.Pitch{}, errors.Wrapf(ErrOverflow, "%v transposed by %v", p, i)
	}

	class, err := pitch.ClassFromInt(int(util.FloorMod(raw, constants.SemitonesPerOctave)))
	if err != nil {
		return pitch.Pitch{}, err
	}
	return pitch.New(class, pitch.Octave(octave))
}

// TransposeClass moves a pitch class around the ring; it cannot fail.
func TransposeClass(c pitch.Class, i Interval) pitch.Class {
	raw := int64(c.Int()) + int64(i)
	return pitch.Class(util.FloorMod(raw, constants.SemitonesPerOctave))
}

// ClassDistance is the upward distance from a to b within one octave, 0..11.
func ClassDistance(a, b pitch.Class) Interval {
	return Interval(util.FloorMod(b.Int()-a.Int(), constants.SemitonesPerOctave))
}

func (i Interval) Semitones() int32 {
	return int32(i)
}

func (i Interval) Direction() Direction {
	switch {
	case i > 0:
		return Up
	case i < 0:
		return Down
	}
	return None
}

func (i Interval) Magnitude() uint32 {
	if i < 0 {
		return uint32(-int64(i))
	}
	return uint32(i)
}

func (i Interval) Negate() (Interval, error) {
	if i == math.MinInt32 {
		return 0, errors.Wrapf(ErrOverflow, "negating %d", int32(i))
	}
	return -i, nil
}

func (i Interval) Add(o Interval) (Interval, error) {
	sum := int64(i) + int64(o)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", int32(i), int32(o))
	}
	return Interval(sum), nil
}

func (i Interval) Compare(o Interval) int {
	switch {
	case i < o:
		return -1
	case i > o:
		return 1
	}
	return 0
}

func (i Interval) String() string {
	if i > 0 {
		return fmt.Sprintf("+%d", int32(i))
	}
	return fmt.Sprintf("%d", int32(i))
}
