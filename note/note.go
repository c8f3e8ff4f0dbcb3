// Package note pairs a pitch with how long it sounds.
package note

import (
	"fmt"

	"github.com/jsphweid/musicobjects/interval"
	"github.com/jsphweid/musicobjects/pitch"
	"github.com/jsphweid/musicobjects/rhythm"
	"github.com/jsphweid/musicobjects/tuning"
)

type Note struct {
	Pitch    pitch.Pitch
	Duration rhythm.Duration
}

func New(p pitch.Pitch, d rhythm.Duration) Note {
	return Note{Pitch: p, Duration: d}
}

func (n Note) Equal(o Note) bool {
	return n.Pitch == o.Pitch && n.Duration.Equal(o.Duration)
}

func (n Note) Transpose(i interval.Interval) (Note, error) {
	p, err := interval.Transpose(n.Pitch, i)
	if err != nil {
		return Note{}, err
	}
	return Note{Pitch: p, Duration: n.Duration}, nil
}

func (n Note) Frequency(sys tuning.System) (float64, error) {
	return tuning.Frequency(n.Pitch, sys)
}

func (n Note) Seconds(r rhythm.Rhythm) (float64, error) {
	return r.Seconds(n.Duration)
}

func (n Note) String() string {
	return fmt.Sprintf("%v:%v", n.Pitch, n.Duration)
}
