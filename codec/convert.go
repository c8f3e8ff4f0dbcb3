package codec

import (
	"github.com/jsphweid/musicobjects/chord"
	"github.com/jsphweid/musicobjects/composition"
	"github.com/jsphweid/musicobjects/interval"
	"github.com/jsphweid/musicobjects/model"
	"github.com/jsphweid/musicobjects/note"
	"github.com/jsphweid/musicobjects/pitch"
	"github.com/jsphweid/musicobjects/rhythm"
	"github.com/pkg/errors"
)

func FromPitch(p pitch.Pitch) model.Pitch {
	return model.Pitch{Class: p.Class().String(), Octave: p.Octave()}
}

func ToPitch(m model.Pitch) (pitch.Pitch, error) {
	c, err := pitch.ParseClass(m.Class)
	if err != nil {
		return pitch.Pitch{}, err
	}
	return pitch.New(c, m.Octave)
}

func FromDuration(d rhythm.Duration) model.Duration {
	return model.Duration{Numerator: d.Numerator(), Denominator: d.Denominator()}
}

func ToDuration(m model.Duration) (rhythm.Duration, error) {
	return rhythm.NewDuration(m.Numerator, m.Denominator)
}

func FromTimeSignature(ts rhythm.TimeSignature) model.TimeSignature {
	return model.TimeSignature{Numerator: ts.Beats(), Denominator: ts.Unit()}
}

func ToTimeSignature(m model.TimeSignature) (rhythm.TimeSignature, error) {
	return rhythm.NewTimeSignature(m.Numerator, m.Denominator)
}

func FromRhythm(r rhythm.Rhythm) model.Rhythm {
	return model.Rhythm{
		BPM:  r.Tempo().BPM(),
		Beat: FromDuration(r.BeatAssignment().Beat()),
	}
}

func ToRhythm(m model.Rhythm) (rhythm.Rhythm, error) {
	tempo, err := rhythm.NewTempo(m.BPM)
	if err != nil {
		return rhythm.Rhythm{}, err
	}
	beat, err := ToDuration(m.Beat)
	if err != nil {
		return rhythm.Rhythm{}, errors.Wrap(err, "beat")
	}
	return rhythm.NewRhythm(tempo, rhythm.NewBeatAssignment(beat)), nil
}

func FromMetre(m rhythm.Metre) model.Metre {
	return model.Metre{
		Rhythm:        FromRhythm(m.Rhythm()),
		TimeSignature: FromTimeSignature(m.TimeSignature()),
	}
}

func ToMetre(m model.Metre) (rhythm.Metre, error) {
	r, err := ToRhythm(m.Rhythm)
	if err != nil {
		return rhythm.Metre{}, err
	}
	ts, err := ToTimeSignature(m.TimeSignature)
	if err != nil {
		return rhythm.Metre{}, errors.Wrap(err, "time signature")
	}
	return rhythm.NewMetre(r, ts), nil
}

func FromNote(n note.Note) model.Note {
	return model.Note{Pitch: FromPitch(n.Pitch), Duration: FromDuration(n.Duration)}
}

func ToNote(m model.Note) (note.Note, error) {
	p, err := ToPitch(m.Pitch)
	if err != nil {
		return note.Note{}, err
	}
	d, err := ToDuration(m.Duration)
	if err != nil {
		return note.Note{}, err
	}
	return note.New(p, d), nil
}

func FromNotes(notes []note.Note) []model.Note {
	res := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		res = append(res, FromNote(n))
	}
	return res
}

func ToNotes(m []model.Note) ([]note.Note, error) {
	res := make([]note.Note, 0, len(m))
	for _, n := range m {
		v, err := ToNote(n)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func classNames(classes []pitch.Class) []string {
	res := make([]string, 0, len(classes))
	for _, c := range classes {
		res = append(res, c.String())
	}
	return res
}

func parseClasses(names []string) ([]pitch.Class, error) {
	res := make([]pitch.Class, 0, len(names))
	for _, name := range names {
		c, err := pitch.ParseClass(name)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func FromChordClass(c chord.Class) model.ChordClass {
	return model.ChordClass{Classes: classNames(c.Classes())}
}

func ToChordClass(m model.ChordClass) (chord.Class, error) {
	classes, err := parseClasses(m.Classes)
	if err != nil {
		return chord.Class{}, err
	}
	return chord.NewClass(classes...)
}

func FromRootedClass(r chord.RootedClass) model.RootedChordClass {
	return model.RootedChordClass{
		Classes: classNames(r.Class().Classes()),
		Root:    r.Root().String(),
	}
}

func ToRootedClass(m model.RootedChordClass) (chord.RootedClass, error) {
	c, err := ToChordClass(model.ChordClass{Classes: m.Classes})
	if err != nil {
		return chord.RootedClass{}, err
	}
	root, err := pitch.ParseClass(m.Root)
	if err != nil {
		return chord.RootedClass{}, err
	}
	return chord.NewRootedClass(c, root)
}

func fromPitches(pitches []pitch.Pitch) []model.Pitch {
	res := make([]model.Pitch, 0, len(pitches))
	for _, p := range pitches {
		res = append(res, FromPitch(p))
	}
	return res
}

func toPitches(m []model.Pitch) ([]pitch.Pitch, error) {
	res := make([]pitch.Pitch, 0, len(m))
	for _, p := range m {
		v, err := ToPitch(p)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func FromChord(c chord.Chord) model.Chord {
	return model.Chord{Pitches: fromPitches(c.Pitches())}
}

func ToChord(m model.Chord) (chord.Chord, error) {
	pitches, err := toPitches(m.Pitches)
	if err != nil {
		return chord.Chord{}, err
	}
	return chord.New(pitches...), nil
}

func FromRooted(r chord.Rooted) model.RootedChord {
	return model.RootedChord{
		Pitches: fromPitches(r.Chord().Pitches()),
		Root:    FromPitch(r.Root()),
	}
}

func ToRooted(m model.RootedChord) (chord.Rooted, error) {
	c, err := ToChord(model.Chord{Pitches: m.Pitches})
	if err != nil {
		return chord.Rooted{}, err
	}
	root, err := ToPitch(m.Root)
	if err != nil {
		return chord.Rooted{}, err
	}
	return chord.NewRooted(c, root)
}

func FromPattern(p chord.Pattern) model.ChordPattern {
	intervals := p.Intervals()
	res := make([]int32, 0, len(intervals))
	for _, i := range intervals {
		res = append(res, i.Semitones())
	}
	return model.ChordPattern{Intervals: res}
}

func ToPattern(m model.ChordPattern) (chord.Pattern, error) {
	intervals := make([]interval.Interval, 0, len(m.Intervals))
	for _, i := range m.Intervals {
		intervals = append(intervals, interval.Interval(i))
	}
	return chord.NewPattern(intervals...), nil
}

func FromMarker(mk composition.Marker) model.Marker {
	return model.Marker{Name: mk.Name, Position: FromDuration(mk.Position)}
}

func ToMarker(m model.Marker) (composition.Marker, error) {
	pos, err := ToDuration(m.Position)
	if err != nil {
		return composition.Marker{}, errors.Wrapf(err, "marker %q", m.Name)
	}
	return composition.NewMarker(m.Name, pos)
}

// FromTimeline converts each entry's value with to, keeping timeline order.
func FromTimeline[V, M any](tl composition.Timeline[V], to func(V) M) model.Timeline[M] {
	res := model.Timeline[M]{Entries: make([]model.Entry[M], 0, tl.Len())}
	tl.Each(func(e composition.Entry[V]) bool {
		res.Entries = append(res.Entries, model.Entry[M]{
			Position: FromDuration(e.Position),
			Value:    to(e.Value),
		})
		return true
	})
	return res
}

// ToTimeline rebuilds a timeline in any entry order. Entries sharing a
// position collapse to the last one, as with Insert.
func ToTimeline[V, M any](m model.Timeline[M], from func(M) (V, error)) (composition.Timeline[V], error) {
	var res composition.Timeline[V]
	for _, e := range m.Entries {
		pos, err := ToDuration(e.Position)
		if err != nil {
			return composition.Timeline[V]{}, err
		}
		v, err := from(e.Value)
		if err != nil {
			return composition.Timeline[V]{}, errors.Wrapf(err, "entry at %v", pos)
		}
		if res, err = res.Insert(pos, v); err != nil {
			return composition.Timeline[V]{}, err
		}
	}
	return res, nil
}
