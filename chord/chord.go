// Package chord holds unordered pitch-class and pitch sets, their rooted
// forms, and interval patterns that generate them.
package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/musicobjects/interval"
	"github.com/jsphweid/musicobjects/pitch"
	"github.com/jsphweid/musicobjects/util"
	"github.com/pkg/errors"
)

var ErrRootNotInChord = errors.New("root is not a member of the chord")

// Class is a set of pitch classes. Members are kept sorted and unique, so
// two classes built from the same members in any order are Equal.
// An empty Class is allowed.
type Class struct {
	classes []pitch.Class
}

func NewClass(classes ...pitch.Class) (Class, error) {
	set := make(map[pitch.Class]bool)
	for _, c := range classes {
		if !c.Valid() {
			return Class{}, errors.Wrapf(pitch.ErrClassOutOfRange, "%d", uint8(c))
		}
		set[c] = true
	}
	return Class{classes: util.GetKeysSorted(set)}, nil
}

func MustClass(classes ...pitch.Class) Class {
	c, err := NewClass(classes...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Class) Classes() []pitch.Class {
	return append([]pitch.Class(nil), c.classes...)
}

func (c Class) Len() int {
	return len(c.classes)
}

func (c Class) Contains(pc pitch.Class) bool {
	i := sort.Search(len(c.classes), func(i int) bool {
		return c.classes[i] >= pc
	})
	return i < len(c.classes) && c.classes[i] == pc
}

func (c Class) Equal(o Class) bool {
	if len(c.classes) != len(o.classes) {
		return false
	}
	for i := range c.classes {
		if c.classes[i] != o.classes[i] {
			return false
		}
	}
	return true
}

func (c Class) Transpose(i interval.Interval) Class {
	moved := make([]pitch.Class, 0, len(c.classes))
	for _, pc := range c.classes {
		moved = append(moved, interval.TransposeClass(pc, i))
	}
	return MustClass(moved...)
}

// Key joins the class numbers in ascending order, e.g. "0-4-7".
func (c Class) Key() string {
	var res string
	for i, pc := range c.classes {
		res += fmt.Sprintf("%v", pc.Int())
		if i < len(c.classes)-1 {
			res += "-"
		}
	}
	return res
}

func (c Class) String() string {
	names := make([]string, 0, len(c.classes))
	for _, pc := range c.classes {
		names = append(names, pc.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// RootedClass is a Class whose root is guaranteed to be one of its members.
type RootedClass struct {
	class Class
	root  pitch.Class
}

func NewRootedClass(class Class, root pitch.Class) (RootedClass, error) {
	if !class.Contains(root) {
		return RootedClass{}, errors.Wrapf(ErrRootNotInChord, "%v not in %v", root, class)
	}
	return RootedClass{class: class, root: root}, nil
}

func (r RootedClass) Class() Class {
	return r.class
}

func (r RootedClass) Root() pitch.Class {
	return r.root
}

func (r RootedClass) Equal(o RootedClass) bool {
	return r.root == o.root && r.class.Equal(o.class)
}

// Pattern measures every member upward from the root within one octave.
func (r RootedClass) Pattern() Pattern {
	intervals := make([]interval.Interval, 0, r.class.Len())
	for _, pc := range r.class.classes {
		intervals = append(intervals, interval.ClassDistance(r.root, pc))
	}
	return NewPattern(intervals...)
}

func (r RootedClass) String() string {
	return fmt.Sprintf("%v/%v", r.class, r.root)
}

// Chord is a set of absolute pitches, sorted low to high with duplicates
// collapsed.
type Chord struct {
	pitches []pitch.Pitch
}

func New(pitches ...pitch.Pitch) Chord {
	sorted := append([]pitch.Pitch(nil), pitches...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	var res []pitch.Pitch
	for i, p := range sorted {
		if i > 0 && p == sorted[i-1] {
			continue
		}
		res = append(res, p)
	}
	return Chord{pitches: res}
}

func (c Chord) Pitches() []pitch.Pitch {
	return append([]pitch.Pitch(nil), c.pitches...)
}

func (c Chord) Len() int {
	return len(c.pitches)
}

func (c Chord) Contains(p pitch.Pitch) bool {
	i := sort.Search(len(c.pitches), func(i int) bool {
		return !c.pitches[i].Less(p)
	})
	return i < len(c.pitches) && c.pitches[i] == p
}

func (c Chord) Equal(o Chord) bool {
	if len(c.pitches) != len(o.pitches) {
		return false
	}
	for i := range c.pitches {
		if c.pitches[i] != o.pitches[i] {
			return false
		}
	}
	return true
}

// Class drops octaves.
func (c Chord) Class() Class {
	classes := make([]pitch.Class, 0, len(c.pitches))
	for _, p := range c.pitches {
		classes = append(classes, p.Class())
	}
	return MustClass(classes...)
}

func (c Chord) Transpose(i interval.Interval) (Chord, error) {
	moved := make([]pitch.Pitch, 0, len(c.pitches))
	for _, p := range c.pitches {
		q, err := interval.Transpose(p, i)
		if err != nil {
			return Chord{}, err
		}
		moved = append(moved, q)
	}
	return New(moved...), nil
}

// Key joins the pitches low to high, e.g. "C4-E4-G4".
func (c Chord) Key() string {
	names := make([]string, 0, len(c.pitches))
	for _, p := range c.pitches {
		names = append(names, p.String())
	}
	return strings.Join(names, "-")
}

func (c Chord) String() string {
	return "{" + strings.Join(strings.Split(c.Key(), "-"), ",") + "}"
}

// Rooted is a Chord whose root pitch is guaranteed to be one of its members.
type Rooted struct {
	chord Chord
	root  pitch.Pitch
}

func NewRooted(chord Chord, root pitch.Pitch) (Rooted, error) {
	if !chord.Contains(root) {
		return Rooted{}, errors.Wrapf(ErrRootNotInChord, "%v not in %v", root, chord)
	}
	return Rooted{chord: chord, root: root}, nil
}

func (r Rooted) Chord() Chord {
	return r.chord
}

func (r Rooted) Root() pitch.Pitch {
	return r.root
}

func (r Rooted) Equal(o Rooted) bool {
	return r.root == o.root && r.chord.Equal(o.chord)
}

func (r Rooted) Class() RootedClass {
	return RootedClass{class: r.chord.Class(), root: r.root.Class()}
}

// Pattern gives each member's signed distance from the root, so notes
// voiced below the root come out negative.
func (r Rooted) Pattern() Pattern {
	intervals := make([]interval.Interval, 0, r.chord.Len())
	for _, p := range r.chord.pitches {
		intervals = append(intervals, interval.Between(r.root, p))
	}
	return NewPattern(intervals...)
}

func (r Rooted) Transpose(i interval.Interval) (Rooted, error) {
	chord, err := r.chord.Transpose(i)
	if err != nil {
		return Rooted{}, err
	}
	root, err := interval.Transpose(r.root, i)
	if err != nil {
		return Rooted{}, err
	}
	return Rooted{chord: chord, root: root}, nil
}

func (r Rooted) String() string {
	return fmt.Sprintf("%v/%v", r.chord, r.root)
}
