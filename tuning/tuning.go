// Package tuning turns absolute pitches into frequencies.
package tuning

import (
	"math"

	"github.com/jsphweid/musicobjects/constants"
	"github.com/jsphweid/musicobjects/interval"
	"github.com/jsphweid/musicobjects/pitch"
	"github.com/jsphweid/musicobjects/util"
	"github.com/pkg/errors"
)

var ErrInvalidFrequency = errors.New("invalid frequency")

// System computes the frequency of a pitch lying offset semitones from the
// reference pitch. New tunings plug in here without touching pitch.
type System interface {
	Frequency(reference pitch.Pitch, offset interval.Interval) (float64, error)
}

// Frequency uses A4 as the reference pitch.
func Frequency(p pitch.Pitch, sys System) (float64, error) {
	hz, err := sys.Frequency(pitch.A4, interval.Between(pitch.A4, p))
	if err != nil {
		return 0, err
	}
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
		return 0, errors.Wrapf(ErrInvalidFrequency, "%v => %v Hz", p, hz)
	}
	return hz, nil
}

// FrequencyOf is Frequency under standard equal temperament.
func FrequencyOf(p pitch.Pitch) (float64, error) {
	return Frequency(p, EqualTempered{})
}

func referenceOrDefault(hz float64) float64 {
	if hz == 0 {
		return constants.A4ReferenceHz
	}
	return hz
}

// EqualTempered divides the octave into twelve equal semitones.
// A zero ReferenceHz means 440 Hz.
type EqualTempered struct {
	ReferenceHz float64
}

func (et EqualTempered) Frequency(_ pitch.Pitch, offset interval.Interval) (float64, error) {
	ref := referenceOrDefault(et.ReferenceHz)
	if ref < 0 {
		return 0, errors.Wrapf(ErrInvalidFrequency, "reference %v Hz", ref)
	}
	// https://pages.mtu.edu/~suits/NoteFreqCalcs.html
	return ref * math.Exp2(float64(offset)/constants.SemitonesPerOctave), nil
}

// Nearest finds the equal-tempered pitch closest to hz and how many cents
// hz lies above (positive) or below it.
func (et EqualTempered) Nearest(hz float64) (pitch.Pitch, float64, error) {
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
		return pitch.Pitch{}, 0, errors.Wrapf(ErrInvalidFrequency, "%v Hz", hz)
	}
	exact := constants.SemitonesPerOctave * math.Log2(hz/referenceOrDefault(et.ReferenceHz))
	semis := math.Round(exact)
	if semis < math.MinInt32 || semis > math.MaxInt32 {
		return pitch.Pitch{}, 0, errors.Wrapf(interval.ErrOverflow, "%v Hz", hz)
	}

	p, err := interval.Transpose(pitch.A4, interval.Interval(semis))
	if err != nil {
		return pitch.Pitch{}, 0, err
	}
	return p, (exact - semis) * 100, nil
}

// 5-limit just ratios for each semitone above the tonic.
var justRatios = [constants.SemitonesPerOctave][2]float64{
	{1, 1}, {16, 15}, {9, 8}, {6, 5}, {5, 4}, {4, 3},
	{45, 32}, {3, 2}, {8, 5}, {5, 3}, {9, 5}, {15, 8},
}

// JustIntonation tunes every pitch by a small whole-number ratio from the
// reference, octaves by powers of two.
type JustIntonation struct {
	ReferenceHz float64
}

func (ji JustIntonation) Frequency(_ pitch.Pitch, offset interval.Interval) (float64, error) {
	ref := referenceOrDefault(ji.ReferenceHz)
	if ref < 0 {
		return 0, errors.Wrapf(ErrInvalidFrequency, "reference %v Hz", ref)
	}
	semis := int64(offset)
	octaves := util.FloorDiv(semis, constants.SemitonesPerOctave)
	ratio := justRatios[util.FloorMod(semis, constants.SemitonesPerOctave)]
	return ref * math.Ldexp(ratio[0]/ratio[1], int(octaves)), nil
}
