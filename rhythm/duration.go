package rhythm

// Duration is a symbolic length measured in whole notes, so a quarter note
// is 1/4. Durations compare exactly.
type Duration struct {
	ratio Ratio
}

var (
	Whole     = MustDuration(1, 1)
	Half      = MustDuration(1, 2)
	Quarter   = MustDuration(1, 4)
	Eighth    = MustDuration(1, 8)
	Sixteenth = MustDuration(1, 16)
)

func NewDuration(numerator, denominator uint32) (Duration, error) {
	r, err := NewRatio(numerator, denominator)
	if err != nil {
		return Duration{}, err
	}
	return Duration{ratio: r}, nil
}

func MustDuration(numerator, denominator uint32) Duration {
	return Duration{ratio: MustRatio(numerator, denominator)}
}

// DurationOf wraps an existing ratio, e.g. a time signature's, as a length.
func DurationOf(r Ratio) Duration {
	return Duration{ratio: r}
}

func (d Duration) Ratio() Ratio {
	return d.ratio
}

func (d Duration) Numerator() uint32 {
	return d.ratio.Numerator()
}

func (d Duration) Denominator() uint32 {
	return d.ratio.Denominator()
}

func (d Duration) Valid() bool {
	return d.ratio.Valid()
}

func (d Duration) Compare(o Duration) int {
	return d.ratio.Compare(o.ratio)
}

func (d Duration) Equal(o Duration) bool {
	return d.ratio.Equal(o.ratio)
}

func (d Duration) Less(o Duration) bool {
	return d.ratio.Less(o.ratio)
}

func (d Duration) Add(o Duration) (Duration, error) {
	r, err := d.ratio.Add(o.ratio)
	if err != nil {
		return Duration{}, err
	}
	return Duration{ratio: r}, nil
}

// Sub is only defined when d is longer than o.
func (d Duration) Sub(o Duration) (Duration, error) {
	r, err := d.ratio.Sub(o.ratio)
	if err != nil {
		return Duration{}, err
	}
	return Duration{ratio: r}, nil
}

// Dotted lengthens d by half of itself.
func (d Duration) Dotted() (Duration, error) {
	r, err := d.ratio.Mul(Ratio{numerator: 3, denominator: 2})
	if err != nil {
		return Duration{}, err
	}
	return Duration{ratio: r}, nil
}

func (d Duration) Float64() float64 {
	return d.ratio.Float64()
}

func (d Duration) String() string {
	return d.ratio.String()
}
