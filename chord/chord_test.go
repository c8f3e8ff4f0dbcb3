package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/musicobjects/interval"
	"github.com/jsphweid/musicobjects/pitch"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootedClassAcceptsMemberRoot(t *testing.T) {
	cmaj := MustClass(pitch.C, pitch.E, pitch.G)
	rooted, err := NewRootedClass(cmaj, pitch.E)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(pitch.E, rooted.Root())
	assert.True(rooted.Class().Equal(cmaj))
}

func TestRootedClassRejectsForeignRoot(t *testing.T) {
	cmaj := MustClass(pitch.C, pitch.E, pitch.G)
	_, err := NewRootedClass(cmaj, pitch.D)
	assert.True(t, errors.Is(err, ErrRootNotInChord))
}

func TestEmptyChordsAreAllowedButCannotBeRooted(t *testing.T) {
	empty := MustClass()
	assert.Equal(t, 0, empty.Len())
	_, err := NewRootedClass(empty, pitch.C)
	assert.True(t, errors.Is(err, ErrRootNotInChord))

	_, err = NewRooted(New(), pitch.MustNew(pitch.C, 4))
	assert.True(t, errors.Is(err, ErrRootNotInChord))
}

func TestNewClassRejectsInvalidClass(t *testing.T) {
	_, err := NewClass(pitch.C, pitch.Class(12))
	assert.True(t, errors.Is(err, pitch.ErrClassOutOfRange))
}

func TestClassEqualityIsPermutationInvariant(t *testing.T) {
	orders := [][]pitch.Class{
		{pitch.C, pitch.E, pitch.G},
		{pitch.G, pitch.C, pitch.E},
		{pitch.E, pitch.G, pitch.C, pitch.E},
	}

	want := MustClass(orders[0]...)
	for _, order := range orders {
		name := fmt.Sprintf("class from %v", order)
		t.Run(name, func(t *testing.T) {
			got := MustClass(order...)
			assert.True(t, want.Equal(got))
			assert.Equal(t, "0-4-7", got.Key())
			assert.Equal(t, "{C,E,G}", got.String())
		})
	}
	assert.False(t, want.Equal(MustClass(pitch.C, pitch.E)))
}

func TestChordCollapsesDuplicatesAndSorts(t *testing.T) {
	c4 := pitch.MustNew(pitch.C, 4)
	e4 := pitch.MustNew(pitch.E, 4)
	g3 := pitch.MustNew(pitch.G, 3)

	chord := New(e4, c4, g3, c4)
	assert := assert.New(t)
	assert.Equal(3, chord.Len())
	assert.Equal([]pitch.Pitch{g3, c4, e4}, chord.Pitches())
	assert.Equal("G3-C4-E4", chord.Key())
	assert.True(chord.Equal(New(c4, g3, e4)))
	assert.True(chord.Contains(g3))
	assert.False(chord.Contains(pitch.MustNew(pitch.G, 4)))
	assert.True(chord.Class().Equal(MustClass(pitch.C, pitch.E, pitch.G)))
}

func TestPitchesReturnsACopy(t *testing.T) {
	chord := New(pitch.MustNew(pitch.C, 4))
	pitches := chord.Pitches()
	pitches[0] = pitch.MustNew(pitch.D, 4)
	assert.True(t, chord.Contains(pitch.MustNew(pitch.C, 4)))
}

func TestRootedChord(t *testing.T) {
	c4 := pitch.MustNew(pitch.C, 4)
	chord := New(c4, pitch.MustNew(pitch.E, 4), pitch.MustNew(pitch.G, 4))

	rooted, err := NewRooted(chord, c4)
	require.NoError(t, err)
	assert.Equal(t, c4, rooted.Root())
	assert.True(t, rooted.Pattern().Equal(Major))
	assert.True(t, rooted.Class().Equal(mustRootedClass(t, Major, pitch.C)))

	_, err = NewRooted(chord, pitch.MustNew(pitch.C, 5))
	assert.True(t, errors.Is(err, ErrRootNotInChord))
}

func mustRootedClass(t *testing.T, p Pattern, root pitch.Class) RootedClass {
	rc, err := p.ApplyClass(root)
	require.NoError(t, err)
	return rc
}

func TestPatternIsOrderedAndDeduplicated(t *testing.T) {
	p := NewPattern(7, 0, 4, 7, -12)
	assert.Equal(t, []interval.Interval{-12, 0, 4, 7}, p.Intervals())
	assert.Equal(t, "[-12 0 4 7]", p.String())
	assert.True(t, NewPattern(7, 4, 0).Equal(Major))
}

func TestPatternApply(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		root    pitch.Pitch
		want    string
	}{
		{"C major", Major, pitch.MustNew(pitch.C, 4), "C4-E4-G4"},
		{"A minor", Minor, pitch.MustNew(pitch.A, 4), "A4-C5-E5"},
		{"B diminished", Diminished, pitch.MustNew(pitch.B, 3), "B3-D4-F4"},
		{"G dominant seventh", Dominant7, pitch.MustNew(pitch.G, 2), "G2-B2-D3-F3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooted, err := tt.pattern.Apply(tt.root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rooted.Chord().Key())
			assert.Equal(t, tt.root, rooted.Root())
			assert.True(t, rooted.Pattern().Equal(tt.pattern))
		})
	}
}

func TestPatternWithoutUnisonCannotBeRooted(t *testing.T) {
	shell := NewPattern(4, 10)
	_, err := shell.Apply(pitch.MustNew(pitch.C, 4))
	assert.True(t, errors.Is(err, ErrRootNotInChord))

	_, err = shell.ApplyClass(pitch.C)
	assert.True(t, errors.Is(err, ErrRootNotInChord))
}

func TestApplyClassWrapsAroundTheOctave(t *testing.T) {
	rc, err := Major.ApplyClass(pitch.A)
	require.NoError(t, err)
	assert.True(t, rc.Class().Equal(MustClass(pitch.A, pitch.CSharp, pitch.E)))
	assert.True(t, rc.Pattern().Equal(Major))
}

func TestTransposeChords(t *testing.T) {
	cmaj, err := Major.Apply(pitch.MustNew(pitch.C, 4))
	require.NoError(t, err)

	dmaj, err := cmaj.Transpose(interval.MajorSecond)
	require.NoError(t, err)
	assert.Equal(t, "D4-F#4-A4", dmaj.Chord().Key())
	assert.Equal(t, pitch.MustNew(pitch.D, 4), dmaj.Root())

	moved := MustClass(pitch.C, pitch.E, pitch.G).Transpose(-interval.MajorThird)
	assert.True(t, moved.Equal(MustClass(pitch.GSharp, pitch.C, pitch.DSharp)))
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		symbol string
		octave pitch.Octave
		want   string
		root   string
	}{
		{"C", 4, "C4-E4-G4", "C4"},
		{"Em", 4, "E4-G4-B4", "E4"},
		{"Am7", 4, "A4-C5-E5-G5", "A4"},
		{"Cmaj7", 4, "C4-E4-G4-B4", "C4"},
		{"Bbdim", 3, "A#3-C#4-E4", "A#3"},
		{"F#sus4", 2, "F#2-B2-C#3", "F#2"},
		{"Em/G", 4, "G3-E4-G4-B4", "E4"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			rooted, err := ParseSymbol(tt.symbol, tt.octave)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rooted.Chord().Key())
			assert.Equal(t, tt.root, rooted.Root().String())
		})
	}
}

func TestParseSymbolErrors(t *testing.T) {
	for _, symbol := range []string{"", "H", "Cxyz", "C/H"} {
		_, err := ParseSymbol(symbol, 4)
		assert.True(t, errors.Is(err, ErrInvalidSymbol), symbol)
	}
}
