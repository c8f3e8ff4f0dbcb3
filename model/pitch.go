package model

type Pitch struct {
	Class  string `json:"class" yaml:"class"`
	Octave int16  `json:"octave" yaml:"octave"`
}

type Note struct {
	Pitch    Pitch    `json:"pitch" yaml:"pitch"`
	Duration Duration `json:"duration" yaml:"duration"`
}

type ChordClass struct {
	Classes []string `json:"classes" yaml:"classes"`
}

type RootedChordClass struct {
	Classes []string `json:"classes" yaml:"classes"`
	Root    string   `json:"root" yaml:"root"`
}

type Chord struct {
	Pitches []Pitch `json:"pitches" yaml:"pitches"`
}

type RootedChord struct {
	Pitches []Pitch `json:"pitches" yaml:"pitches"`
	Root    Pitch   `json:"root" yaml:"root"`
}

// NOTE: intervals are signed semitones from the root
type ChordPattern struct {
	Intervals []int32 `json:"intervals" yaml:"intervals"`
}
