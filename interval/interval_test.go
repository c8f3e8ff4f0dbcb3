package interval

import (
	"math"
	"testing"

	"github.com/jsphweid/musicobjects/pitch"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetweenOctaves(t *testing.T) {
	a4 := pitch.MustNew(pitch.A, 4)
	a5 := pitch.MustNew(pitch.A, 5)
	a6 := pitch.MustNew(pitch.A, 6)

	assert := assert.New(t)
	assert.Equal(Interval(12), Between(a4, a5))
	assert.Equal(Interval(24), Between(a4, a6))
	assert.Equal(Interval(-12), Between(a5, a4))
	assert.Equal(Interval(-24), Between(a6, a4))
	assert.Equal(Up, Between(a4, a6).Direction())
	assert.Equal(Down, Between(a6, a4).Direction())
	assert.Equal(uint32(24), Between(a6, a4).Magnitude())
}

func TestBetweenNonOctaves(t *testing.T) {
	c4 := pitch.MustNew(pitch.C, 4)
	g4 := pitch.MustNew(pitch.G, 4)
	d5 := pitch.MustNew(pitch.D, 5)

	assert := assert.New(t)
	assert.Equal(PerfectFifth, Between(c4, g4))
	assert.Equal(Interval(14), Between(c4, d5))
	assert.Equal(-PerfectFifth, Between(g4, c4))
	assert.Equal(Interval(-14), Between(d5, c4))
	assert.Equal(Unison, Between(c4, c4))
	assert.Equal(None, Unison.Direction())
}

func TestBetweenExtremeOctavesFits(t *testing.T) {
	low := pitch.MustNew(pitch.C, math.MinInt16)
	high := pitch.MustNew(pitch.B, math.MaxInt16)
	i := Between(low, high)
	assert.Equal(t, int32(65535*12+11), i.Semitones())

	back, err := Transpose(low, i)
	require.NoError(t, err)
	assert.Equal(t, high, back)
}

func TestTransposeNegativeUsesFloorModulo(t *testing.T) {
	tests := []struct {
		name string
		from pitch.Pitch
		by   Interval
		want pitch.Pitch
	}{
		{"C4 down one", pitch.MustNew(pitch.C, 4), -1, pitch.MustNew(pitch.B, 3)},
		{"C4 down an octave", pitch.MustNew(pitch.C, 4), -12, pitch.MustNew(pitch.C, 3)},
		{"D4 down thirteen", pitch.MustNew(pitch.D, 4), -13, pitch.MustNew(pitch.CSharp, 3)},
		{"C0 down to negative octave", pitch.MustNew(pitch.C, 0), -25, pitch.MustNew(pitch.B, -3)},
		{"B3 up one", pitch.MustNew(pitch.B, 3), 1, pitch.MustNew(pitch.C, 4)},
		{"C4 up a major third", pitch.MustNew(pitch.C, 4), MajorThird, pitch.MustNew(pitch.E, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transpose(tt.from, tt.by)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransposeOverflow(t *testing.T) {
	top := pitch.MustNew(pitch.B, math.MaxInt16)
	_, err := Transpose(top, MinorSecond)
	assert.True(t, errors.Is(err, ErrOverflow))

	bottom := pitch.MustNew(pitch.C, math.MinInt16)
	_, err = Transpose(bottom, -MinorSecond)
	assert.True(t, errors.Is(err, ErrOverflow))
}

func TestTransposeRoundTripAndInverse(t *testing.T) {
	for _, class := range pitch.Classes() {
		for octave := pitch.Octave(-3); octave <= 9; octave++ {
			p := pitch.MustNew(class, octave)
			for i := Interval(-40); i <= 40; i++ {
				moved, err := Transpose(p, i)
				require.NoError(t, err)

				neg, err := i.Negate()
				require.NoError(t, err)
				back, err := Transpose(moved, neg)
				require.NoError(t, err)

				if back != p {
					t.Fatalf("round trip of %v by %v gave %v", p, i, back)
				}
				if got := Between(p, moved); got != i {
					t.Fatalf("Between(%v, %v) = %v, want %v", p, moved, got, i)
				}
			}
		}
	}
}

func TestTransposeByBetweenReachesTarget(t *testing.T) {
	p := pitch.MustNew(pitch.FSharp, 2)
	q := pitch.MustNew(pitch.DSharp, 7)
	got, err := Transpose(p, Between(p, q))
	require.NoError(t, err)
	assert.Equal(t, q, got)
}

func TestDirected(t *testing.T) {
	assert := assert.New(t)

	up, err := Directed(4, Up)
	require.NoError(t, err)
	assert.Equal(MajorThird, up)

	down, err := Directed(7, Down)
	require.NoError(t, err)
	assert.Equal(Interval(-7), down)
	assert.Equal(uint32(7), down.Magnitude())

	zero, err := Directed(0, Down)
	require.NoError(t, err)
	assert.Equal(Unison, zero)

	_, err = Directed(3, None)
	assert.Error(err)

	_, err = Directed(math.MaxUint32, Up)
	assert.True(errors.Is(err, ErrOverflow))
}

func TestNegateAndAddOverflow(t *testing.T) {
	_, err := Interval(math.MinInt32).Negate()
	assert.True(t, errors.Is(err, ErrOverflow))

	_, err = Interval(math.MaxInt32).Add(1)
	assert.True(t, errors.Is(err, ErrOverflow))

	sum, err := PerfectFifth.Add(PerfectFourth)
	require.NoError(t, err)
	assert.Equal(t, Octave, sum)
}

func TestTransposeClassWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(pitch.B, TransposeClass(pitch.C, -1))
	assert.Equal(pitch.E, TransposeClass(pitch.A, PerfectFifth))
	assert.Equal(MajorThird, ClassDistance(pitch.C, pitch.E))
	assert.Equal(Interval(8), ClassDistance(pitch.E, pitch.C))
}

func TestIntervalOrderingAndString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(-1, Interval(-3).Compare(2))
	assert.Equal(0, Octave.Compare(12))
	assert.Equal("+7", PerfectFifth.String())
	assert.Equal("-12", (-Octave).String())
	assert.Equal("0", Unison.String())
}
