package pitch

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassIntegerIdentity(t *testing.T) {
	assert := assert.New(t)
	for i, c := range Classes() {
		assert.Equal(i, c.Int())
		back, err := ClassFromInt(i)
		require.NoError(t, err)
		assert.Equal(c, back)
	}
	assert.Equal(0, C.Int())
	assert.Equal(9, A.Int())
	assert.Equal(11, B.Int())
}

func TestClassFromIntOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 12, 200} {
		_, err := ClassFromInt(i)
		assert.True(t, errors.Is(err, ErrClassOutOfRange), "%d", i)
	}
}

func TestParseClassSpellings(t *testing.T) {
	tests := []struct {
		name string
		want Class
	}{
		{"C", C},
		{"C#", CSharp},
		{"Db", CSharp},
		{"Eb", DSharp},
		{"Fb", E},
		{"B#", C},
		{"Bb", ASharp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClass(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseClass("H")
	assert.True(t, errors.Is(err, ErrInvalidName))
}

func TestNewRejectsInvalidClass(t *testing.T) {
	_, err := New(Class(12), 4)
	assert.True(t, errors.Is(err, ErrClassOutOfRange))
}

func TestParseAndString(t *testing.T) {
	tests := []struct {
		in     string
		class  Class
		octave Octave
		out    string
	}{
		{"C4", C, 4, "C4"},
		{"A4", A, 4, "A4"},
		{"F#-1", FSharp, -1, "F#-1"},
		{"Bb3", ASharp, 3, "A#3"},
		{"G10", G, 10, "G10"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.class, p.Class())
			assert.Equal(t, tt.octave, p.Octave())
			assert.Equal(t, tt.out, p.String())
		})
	}

	for _, bad := range []string{"", "C", "X4", "C#", "Cx"} {
		_, err := Parse(bad)
		assert.True(t, errors.Is(err, ErrInvalidName), bad)
	}
}

func TestCompareIsOctaveMajor(t *testing.T) {
	assert := assert.New(t)
	b3 := MustNew(B, 3)
	c4 := MustNew(C, 4)
	d4 := MustNew(D, 4)

	assert.Equal(-1, b3.Compare(c4))
	assert.Equal(1, d4.Compare(c4))
	assert.Equal(0, c4.Compare(MustNew(C, 4)))
	assert.True(b3.Less(c4))
	assert.False(d4.Less(c4))
	assert.Equal(A4, MustNew(A, 4))
}
