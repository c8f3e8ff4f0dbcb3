package composition

import (
	"fmt"

	"github.com/jsphweid/musicobjects/rhythm"
	"github.com/pkg/errors"
)

// Marker names a position, e.g. a cue point or rehearsal letter. Names need
// not be unique.
type Marker struct {
	Name     string
	Position rhythm.Duration
}

func NewMarker(name string, position rhythm.Duration) (Marker, error) {
	if !position.Valid() {
		return Marker{}, errors.Wrapf(rhythm.ErrInvalidRatio, "marker %q", name)
	}
	return Marker{Name: name, Position: position}, nil
}

func (m Marker) Equal(o Marker) bool {
	return m.Name == o.Name && m.Position.Equal(o.Position)
}

func (m Marker) String() string {
	return fmt.Sprintf("%s@%v", m.Name, m.Position)
}

// Markers keys each marker by its own position. A later marker at the
// same position replaces an earlier one.
func Markers(markers ...Marker) (Timeline[Marker], error) {
	var res Timeline[Marker]
	for _, m := range markers {
		var err error
		res, err = res.Insert(m.Position, m)
		if err != nil {
			return Timeline[Marker]{}, err
		}
	}
	return res, nil
}
