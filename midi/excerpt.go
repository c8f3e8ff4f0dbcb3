package midi

import (
	"github.com/jsphweid/musicobjects/composition"
	"github.com/jsphweid/musicobjects/rhythm"
)

// Excerpt keeps the notes and markers in [from, to) and moves them so that
// from lands on cfg.Origin. The metre is carried over unchanged.
func Excerpt(s Score, from, to rhythm.Duration, cfg Config) (Score, error) {
	c, err := cfg.validate()
	if err != nil {
		return Score{}, err
	}
	res := Score{Metre: s.Metre}
	if res.Notes, err = rebase(s.Notes.Range(from, to), from, c.Origin); err != nil {
		return Score{}, err
	}
	markers, err := rebase(s.Markers.Range(from, to), from, c.Origin)
	if err != nil {
		return Score{}, err
	}
	// marker positions live on the marker too
	markers.Each(func(e composition.Entry[composition.Marker]) bool {
		e.Value.Position = e.Position
		res.Markers, err = res.Markers.Insert(e.Position, e.Value)
		return err == nil
	})
	return res, err
}

func rebase[V any](tl composition.Timeline[V], from, origin rhythm.Duration) (composition.Timeline[V], error) {
	var res composition.Timeline[V]
	var err error
	tl.Each(func(e composition.Entry[V]) bool {
		pos := origin
		if !e.Position.Equal(from) {
			var offset rhythm.Duration
			if offset, err = e.Position.Sub(from); err != nil {
				return false
			}
			if pos, err = origin.Add(offset); err != nil {
				return false
			}
		}
		res, err = res.Insert(pos, e.Value)
		return err == nil
	})
	return res, err
}
