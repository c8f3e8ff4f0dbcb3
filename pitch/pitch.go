// Package pitch models the twelve pitch classes and absolute pitches built
// from a class and a signed octave.
package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/musicobjects/constants"
	"github.com/pkg/errors"
)

var (
	ErrClassOutOfRange = errors.New("pitch class out of range")
	ErrInvalidName     = errors.New("invalid pitch name")
)

// Class is one of the twelve chromatic pitch classes. Its integer value is
// stable and is what all octave/class arithmetic uses.
type Class uint8

const (
	C      Class = 0
	CSharp Class = 1
	D      Class = 2
	DSharp Class = 3
	E      Class = 4
	F      Class = 5
	FSharp Class = 6
	G      Class = 7
	GSharp Class = 8
	A      Class = 9
	ASharp Class = 10
	B      Class = 11
)

var classNames = [constants.SemitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var namedClasses = map[string]Class{
	"C": C, "B#": C,
	"C#": CSharp, "Db": CSharp,
	"D":  D,
	"D#": DSharp, "Eb": DSharp,
	"E": E, "Fb": E,
	"F": F, "E#": F,
	"F#": FSharp, "Gb": FSharp,
	"G":  G,
	"G#": GSharp, "Ab": GSharp,
	"A":  A,
	"A#": ASharp, "Bb": ASharp,
	"B": B, "Cb": B,
}

// Classes lists every pitch class in integer order.
func Classes() []Class {
	res := make([]Class, 0, constants.SemitonesPerOctave)
	for i := 0; i < constants.SemitonesPerOctave; i++ {
		res = append(res, Class(i))
	}
	return res
}

func ClassFromInt(i int) (Class, error) {
	if i < 0 || i >= constants.SemitonesPerOctave {
		return 0, errors.Wrapf(ErrClassOutOfRange, "%d", i)
	}
	return Class(i), nil
}

// ParseClass accepts sharp and flat spellings such as "C#", "Db" or "B".
func ParseClass(s string) (Class, error) {
	c, ok := namedClasses[strings.TrimSpace(s)]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidName, "pitch class %q", s)
	}
	return c, nil
}

func (c Class) Valid() bool {
	return int(c) < constants.SemitonesPerOctave
}

func (c Class) Int() int {
	return int(c)
}

func (c Class) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
	return classNames[c]
}

// Octave is a signed scientific-pitch octave number; C4 is middle C.
type Octave = int16

// Pitch is an absolute pitch: a class within an octave. The zero value is C0.
type Pitch struct {
	class  Class
	octave Octave
}

// A4 is the reference pitch for tuning systems.
var A4 = Pitch{class: A, octave: 4}

func New(class Class, octave Octave) (Pitch, error) {
	if !class.Valid() {
		return Pitch{}, errors.Wrapf(ErrClassOutOfRange, "%d", uint8(class))
	}
	return Pitch{class: class, octave: octave}, nil
}

func MustNew(class Class, octave Octave) Pitch {
	p, err := New(class, octave)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse reads scientific pitch notation, e.g. "C4", "F#-1" or "Bb3".
func Parse(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	split := 1
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		split = 2
	}
	if len(s) <= split {
		return Pitch{}, errors.Wrapf(ErrInvalidName, "pitch %q", s)
	}

	class, err := ParseClass(s[:split])
	if err != nil {
		return Pitch{}, err
	}
	octave, err := strconv.ParseInt(s[split:], 10, 16)
	if err != nil {
		return Pitch{}, errors.Wrapf(ErrInvalidName, "pitch %q", s)
	}
	return Pitch{class: class, octave: Octave(octave)}, nil
}

func (p Pitch) Class() Class {
	return p.class
}

func (p Pitch) Octave() Octave {
	return p.octave
}

// Compare orders by octave first, then by class.
func (p Pitch) Compare(o Pitch) int {
	switch {
	case p.octave < o.octave:
		return -1
	case p.octave > o.octave:
		return 1
	case p.class < o.class:
		return -1
	case p.class > o.class:
		return 1
	}
	return 0
}

func (p Pitch) Less(o Pitch) bool {
	return p.Compare(o) < 0
}

func (p Pitch) String() string {
	return fmt.Sprintf("%v%d", p.class, p.octave)
}
