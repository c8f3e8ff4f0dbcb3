package rhythm

import (
	"fmt"
	"math"

	"github.com/jsphweid/musicobjects/constants"
	"github.com/pkg/errors"
)

// TimeSignature is beats per bar over the beat unit. One bar lasts the
// signature's ratio in whole notes.
type TimeSignature struct {
	ratio Ratio
}

func NewTimeSignature(beats, unit uint32) (TimeSignature, error) {
	r, err := NewRatio(beats, unit)
	if err != nil {
		return TimeSignature{}, err
	}
	return TimeSignature{ratio: r}, nil
}

func MustTimeSignature(beats, unit uint32) TimeSignature {
	return TimeSignature{ratio: MustRatio(beats, unit)}
}

func TimeSignatureOf(r Ratio) TimeSignature {
	return TimeSignature{ratio: r}
}

func (ts TimeSignature) Ratio() Ratio {
	return ts.ratio
}

func (ts TimeSignature) Beats() uint32 {
	return ts.ratio.Numerator()
}

func (ts TimeSignature) Unit() uint32 {
	return ts.ratio.Denominator()
}

// Equal compares notation, so 6/8 and 3/4 differ even though their bars
// last equally long.
func (ts TimeSignature) Equal(o TimeSignature) bool {
	return ts.ratio == o.ratio
}

func (ts TimeSignature) String() string {
	return ts.ratio.String()
}

// Tempo is a rate in beats per minute.
type Tempo struct {
	bpm float64
}

// NewTempo rejects zero as well as negative rates: a stopped tempo has no
// seconds per beat.
func NewTempo(bpm float64) (Tempo, error) {
	if math.IsNaN(bpm) || math.IsInf(bpm, 0) || bpm <= 0 {
		return Tempo{}, errors.Wrapf(ErrInvalidTempo, "%v bpm", bpm)
	}
	return Tempo{bpm: bpm}, nil
}

func MustTempo(bpm float64) Tempo {
	t, err := NewTempo(bpm)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tempo) BPM() float64 {
	return t.bpm
}

func (t Tempo) BPS() float64 {
	return t.bpm / constants.SecondsPerMinute
}

func (t Tempo) Valid() bool {
	return t.bpm > 0
}

func (t Tempo) SecondsPerBeat() (float64, error) {
	if !t.Valid() {
		return 0, errors.Wrapf(ErrInvalidTempo, "%v bpm", t.bpm)
	}
	return 1 / t.BPS(), nil
}

func (t Tempo) String() string {
	return fmt.Sprintf("%v bpm", t.bpm)
}

// BeatAssignment says which Duration counts as one beat.
type BeatAssignment struct {
	beat Duration
}

func NewBeatAssignment(beat Duration) BeatAssignment {
	return BeatAssignment{beat: beat}
}

func (b BeatAssignment) Beat() Duration {
	return b.beat
}

// Beats counts how many beats fit in d.
func (b BeatAssignment) Beats(d Duration) (float64, error) {
	return d.ratio.Quotient(b.beat.ratio)
}

// Rhythm pairs a tempo with a beat assignment, which is enough to turn
// durations into seconds.
type Rhythm struct {
	tempo Tempo
	beat  BeatAssignment
}

func NewRhythm(tempo Tempo, beat BeatAssignment) Rhythm {
	return Rhythm{tempo: tempo, beat: beat}
}

func (r Rhythm) Tempo() Tempo {
	return r.tempo
}

func (r Rhythm) BeatAssignment() BeatAssignment {
	return r.beat
}

func (r Rhythm) Seconds(d Duration) (float64, error) {
	beats, err := r.beat.Beats(d)
	if err != nil {
		return 0, err
	}
	spb, err := r.tempo.SecondsPerBeat()
	if err != nil {
		return 0, err
	}
	return beats * spb, nil
}

// BeatsAt is how many beats have elapsed after the given number of seconds.
func (r Rhythm) BeatsAt(seconds float64) (float64, error) {
	if !r.tempo.Valid() {
		return 0, errors.Wrapf(ErrInvalidTempo, "%v bpm", r.tempo.bpm)
	}
	return seconds * r.tempo.BPS(), nil
}

// Metre adds a time signature to a rhythm so durations can be counted in bars.
type Metre struct {
	rhythm        Rhythm
	timeSignature TimeSignature
}

func NewMetre(rhythm Rhythm, timeSignature TimeSignature) Metre {
	return Metre{rhythm: rhythm, timeSignature: timeSignature}
}

func (m Metre) Rhythm() Rhythm {
	return m.rhythm
}

func (m Metre) TimeSignature() TimeSignature {
	return m.timeSignature
}

func (m Metre) BarDuration() Duration {
	return DurationOf(m.timeSignature.ratio)
}

func (m Metre) BarSeconds() (float64, error) {
	return m.rhythm.Seconds(m.BarDuration())
}

func (m Metre) Bars(d Duration) (float64, error) {
	seconds, err := m.rhythm.Seconds(d)
	if err != nil {
		return 0, err
	}
	perBar, err := m.BarSeconds()
	if err != nil {
		return 0, err
	}
	return seconds / perBar, nil
}
