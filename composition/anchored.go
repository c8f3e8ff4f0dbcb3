package composition

import (
	"github.com/jsphweid/musicobjects/rhythm"
)

// Timed is an entry resolved against a metre.
type Timed[V any] struct {
	Entry[V]
	Seconds float64
	Beats   float64
	Bars    float64
}

// Anchored ties a timeline to a metre so positions can be read as real
// time. Changing the metre means building a new Anchored; nothing is
// re-anchored automatically.
type Anchored[V any] struct {
	timeline Timeline[V]
	metre    rhythm.Metre
}

func NewAnchored[V any](timeline Timeline[V], metre rhythm.Metre) Anchored[V] {
	return Anchored[V]{timeline: timeline, metre: metre}
}

func (a Anchored[V]) Timeline() Timeline[V] {
	return a.timeline
}

func (a Anchored[V]) Metre() rhythm.Metre {
	return a.metre
}

func (a Anchored[V]) WithMetre(metre rhythm.Metre) Anchored[V] {
	return Anchored[V]{timeline: a.timeline, metre: metre}
}

func (a Anchored[V]) resolve(e Entry[V]) (Timed[V], error) {
	seconds, err := a.metre.Rhythm().Seconds(e.Position)
	if err != nil {
		return Timed[V]{}, err
	}
	beats, err := a.metre.Rhythm().BeatAssignment().Beats(e.Position)
	if err != nil {
		return Timed[V]{}, err
	}
	bars, err := a.metre.Bars(e.Position)
	if err != nil {
		return Timed[V]{}, err
	}
	return Timed[V]{Entry: e, Seconds: seconds, Beats: beats, Bars: bars}, nil
}

// Schedule resolves every entry, in position order.
func (a Anchored[V]) Schedule() ([]Timed[V], error) {
	res := make([]Timed[V], 0, a.timeline.Len())
	for _, e := range a.timeline.entries {
		timed, err := a.resolve(e)
		if err != nil {
			return nil, err
		}
		res = append(res, timed)
	}
	return res, nil
}

// Until keeps the entries that start strictly before the given second.
func (a Anchored[V]) Until(seconds float64) ([]Timed[V], error) {
	var res []Timed[V]
	for _, e := range a.timeline.entries {
		timed, err := a.resolve(e)
		if err != nil {
			return nil, err
		}
		if timed.Seconds >= seconds {
			break
		}
		res = append(res, timed)
	}
	return res, nil
}
