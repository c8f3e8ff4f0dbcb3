package constants

// A4ReferenceHz is concert pitch (ISO 16).
const A4ReferenceHz = 440.0

const SemitonesPerOctave = 12

const SecondsPerMinute = 60.0

// MIDI key numbering puts C4 at 60, so octave -1 starts at key 0.
const (
	MiddleCKey    = 60
	MaxMidiKey    = 127
	MidiKeyOctave = -1
)

const DefaultTicksPerQuarter = 960

// NOTE: same default the arranger uses when no velocity is given
const DefaultVelocity = 100

const DefaultBpm = 120.0

const (
	DefaultMeterBeats = 4
	DefaultMeterUnit  = 4
)
