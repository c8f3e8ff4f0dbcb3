package note

import (
	"testing"

	"github.com/jsphweid/musicobjects/interval"
	"github.com/jsphweid/musicobjects/pitch"
	"github.com/jsphweid/musicobjects/rhythm"
	"github.com/jsphweid/musicobjects/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteHelpers(t *testing.T) {
	n := New(pitch.MustNew(pitch.A, 4), rhythm.MustDuration(2, 8))
	assert := assert.New(t)

	assert.True(n.Equal(New(pitch.A4, rhythm.Quarter)))
	assert.Equal("A4:2/8", n.String())

	hz, err := n.Frequency(tuning.EqualTempered{})
	require.NoError(t, err)
	assert.InDelta(440.0, hz, 1e-9)

	seconds, err := n.Seconds(rhythm.NewRhythm(rhythm.MustTempo(120), rhythm.NewBeatAssignment(rhythm.Quarter)))
	require.NoError(t, err)
	assert.InDelta(0.5, seconds, 1e-9)

	up, err := n.Transpose(interval.Octave)
	require.NoError(t, err)
	assert.Equal(pitch.MustNew(pitch.A, 5), up.Pitch)
	assert.True(up.Duration.Equal(n.Duration))
}
