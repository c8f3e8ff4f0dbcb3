// Package midi moves scores in and out of Standard MIDI Files.
package midi

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/jsphweid/musicobjects/constants"
	"github.com/jsphweid/musicobjects/pitch"
	"github.com/jsphweid/musicobjects/rhythm"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	ErrKeyOutOfRange         = errors.New("midi key out of range")
	ErrInvalidOrigin         = errors.New("invalid origin")
	ErrBeforeOrigin          = errors.New("position before origin")
	ErrUnsupportedTimeFormat = errors.New("unsupported time format")
)

type Config struct {
	TicksPerQuarter uint16
	Channel         uint8
	Velocity        uint8

	// Origin is the timeline position written at tick 0.
	Origin rhythm.Duration

	// Logger reports skipped events. nil is silent.
	Logger *log.Logger
}

func DefaultConfig() Config {
	return Config{
		TicksPerQuarter: constants.DefaultTicksPerQuarter,
		Channel:         0,
		Velocity:        constants.DefaultVelocity,
		Origin:          rhythm.Whole,
	}
}

func (c Config) validate() (Config, error) {
	if !c.Origin.Valid() {
		return c, errors.Wrapf(ErrInvalidOrigin, "origin %v", c.Origin)
	}
	if c.TicksPerQuarter == 0 {
		c.TicksPerQuarter = constants.DefaultTicksPerQuarter
	}
	return c, nil
}

func (c Config) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

// KeyOf maps a pitch onto MIDI key numbering, where C4 is key 60.
func KeyOf(p pitch.Pitch) (uint8, error) {
	key := (int(p.Octave())-constants.MidiKeyOctave)*constants.SemitonesPerOctave + p.Class().Int()
	if key < 0 || key > constants.MaxMidiKey {
		return 0, errors.Wrapf(ErrKeyOutOfRange, "%v", p)
	}
	return uint8(key), nil
}

func PitchOf(key uint8) (pitch.Pitch, error) {
	if key > constants.MaxMidiKey {
		return pitch.Pitch{}, errors.Wrapf(ErrKeyOutOfRange, "key %d", key)
	}
	class := pitch.Class(key % constants.SemitonesPerOctave)
	octave := pitch.Octave(int(key)/constants.SemitonesPerOctave + constants.MidiKeyOctave)
	return pitch.New(class, octave)
}

func ReadFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s, e = nil, errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}
	return res, nil
}
