package chord

import (
	"math"
	"strings"

	"github.com/jsphweid/musicobjects/pitch"
	"github.com/pkg/errors"
)

var ErrInvalidSymbol = errors.New("invalid chord symbol")

var qualities = map[string]Pattern{
	"":     Major,
	"maj":  Major,
	"M":    Major,
	"m":    Minor,
	"min":  Minor,
	"dim":  Diminished,
	"aug":  Augmented,
	"+":    Augmented,
	"sus2": Sus2,
	"sus4": Sus4,
	"sus":  Sus4,
	"6":    Major6,
	"m6":   Minor6,
	"7":    Dominant7,
	"maj7": Major7,
	"M7":   Major7,
	"m7":   Minor7,
	"min7": Minor7,
	"dim7": Diminished7,
	"m7b5": HalfDiminished7,
	"9":    Dominant9,
	"maj9": Major9,
	"m9":   Minor9,
	"add9": Add9,
}

func splitRoot(symbol string) (pitch.Class, string, error) {
	if len(symbol) == 0 {
		return 0, "", errors.Wrap(ErrInvalidSymbol, "empty chord symbol")
	}

	// Extract root (first 1-2 chars: C, C#, Db, etc.)
	n := 1
	if len(symbol) > 1 && (symbol[1] == '#' || symbol[1] == 'b') {
		n = 2
	}
	root, err := pitch.ParseClass(symbol[:n])
	if err != nil {
		return 0, "", errors.Wrapf(ErrInvalidSymbol, "root of %q", symbol)
	}
	return root, symbol[n:], nil
}

// ParseSymbol reads lead-sheet symbols such as "C", "Em", "Am7", "Cmaj7" or
// the slash chord "Em/G", voicing the root in the given octave. A slash bass
// is placed in the octave below; the chord's root stays the symbol's root.
func ParseSymbol(symbol string, octave pitch.Octave) (Rooted, error) {
	symbol = strings.TrimSpace(symbol)
	base, bass, hasBass := strings.Cut(symbol, "/")

	root, suffix, err := splitRoot(strings.TrimSpace(base))
	if err != nil {
		return Rooted{}, err
	}
	pattern, ok := qualities[suffix]
	if !ok {
		return Rooted{}, errors.Wrapf(ErrInvalidSymbol, "unknown quality %q in %q", suffix, symbol)
	}

	rootPitch, err := pitch.New(root, octave)
	if err != nil {
		return Rooted{}, err
	}
	rooted, err := pattern.Apply(rootPitch)
	if err != nil {
		return Rooted{}, err
	}
	if !hasBass {
		return rooted, nil
	}

	bassClass, err := pitch.ParseClass(bass)
	if err != nil {
		return Rooted{}, errors.Wrapf(ErrInvalidSymbol, "bass of %q", symbol)
	}
	if octave == math.MinInt16 {
		return Rooted{}, errors.Wrapf(ErrInvalidSymbol, "no octave below %d for bass", octave)
	}
	bassPitch, err := pitch.New(bassClass, octave-1)
	if err != nil {
		return Rooted{}, err
	}
	return NewRooted(New(append(rooted.chord.Pitches(), bassPitch)...), rootPitch)
}
