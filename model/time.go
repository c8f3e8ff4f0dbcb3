package model

type Ratio struct {
	Numerator   uint32 `json:"numerator" yaml:"numerator"`
	Denominator uint32 `json:"denominator" yaml:"denominator"`
}

type Duration = Ratio
type TimeSignature = Ratio

type Rhythm struct {
	BPM  float64  `json:"bpm" yaml:"bpm"`
	Beat Duration `json:"beat" yaml:"beat"`
}

type Metre struct {
	Rhythm        Rhythm        `json:"rhythm" yaml:"rhythm"`
	TimeSignature TimeSignature `json:"time_signature" yaml:"time_signature"`
}

type Marker struct {
	Name     string   `json:"name" yaml:"name"`
	Position Duration `json:"position" yaml:"position"`
}

type Entry[V any] struct {
	Position Duration `json:"position" yaml:"position"`
	Value    V        `json:"value" yaml:"value"`
}

type Timeline[V any] struct {
	Entries []Entry[V] `json:"entries" yaml:"entries"`
}
