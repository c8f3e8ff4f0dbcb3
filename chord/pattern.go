package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/musicobjects/interval"
	"github.com/jsphweid/musicobjects/pitch"
)

// Pattern is a chord shape: signed semitone offsets from an implicit root
// at 0, ascending and without duplicates.
type Pattern struct {
	intervals []interval.Interval
}

var (
	Major           = NewPattern(0, 4, 7)
	Minor           = NewPattern(0, 3, 7)
	Diminished      = NewPattern(0, 3, 6)
	Augmented       = NewPattern(0, 4, 8)
	Sus2            = NewPattern(0, 2, 7)
	Sus4            = NewPattern(0, 5, 7)
	Major6          = NewPattern(0, 4, 7, 9)
	Minor6          = NewPattern(0, 3, 7, 9)
	Dominant7       = NewPattern(0, 4, 7, 10)
	Major7          = NewPattern(0, 4, 7, 11)
	Minor7          = NewPattern(0, 3, 7, 10)
	Diminished7     = NewPattern(0, 3, 6, 9)
	HalfDiminished7 = NewPattern(0, 3, 6, 10)
	Dominant9       = NewPattern(0, 4, 7, 10, 14)
	Major9          = NewPattern(0, 4, 7, 11, 14)
	Minor9          = NewPattern(0, 3, 7, 10, 14)
	Add9            = NewPattern(0, 4, 7, 14)
)

func NewPattern(intervals ...interval.Interval) Pattern {
	sorted := append([]interval.Interval(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var res []interval.Interval
	for i, iv := range sorted {
		if i > 0 && iv == sorted[i-1] {
			continue
		}
		res = append(res, iv)
	}
	return Pattern{intervals: res}
}

func (p Pattern) Intervals() []interval.Interval {
	return append([]interval.Interval(nil), p.intervals...)
}

func (p Pattern) Len() int {
	return len(p.intervals)
}

func (p Pattern) Equal(o Pattern) bool {
	if len(p.intervals) != len(o.intervals) {
		return false
	}
	for i := range p.intervals {
		if p.intervals[i] != o.intervals[i] {
			return false
		}
	}
	return true
}

// Apply voices the pattern on a concrete root. Patterns without a 0 offset
// fail with ErrRootNotInChord.
func (p Pattern) Apply(root pitch.Pitch) (Rooted, error) {
	pitches := make([]pitch.Pitch, 0, len(p.intervals))
	for _, iv := range p.intervals {
		q, err := interval.Transpose(root, iv)
		if err != nil {
			return Rooted{}, err
		}
		pitches = append(pitches, q)
	}
	return NewRooted(New(pitches...), root)
}

func (p Pattern) ApplyClass(root pitch.Class) (RootedClass, error) {
	classes := make([]pitch.Class, 0, len(p.intervals))
	for _, iv := range p.intervals {
		classes = append(classes, interval.TransposeClass(root, iv))
	}
	c, err := NewClass(classes...)
	if err != nil {
		return RootedClass{}, err
	}
	return NewRootedClass(c, root)
}

func (p Pattern) String() string {
	parts := make([]string, 0, len(p.intervals))
	for _, iv := range p.intervals {
		parts = append(parts, fmt.Sprintf("%d", iv.Semitones()))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
