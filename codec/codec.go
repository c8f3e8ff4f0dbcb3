// Package codec encodes the value types through their model DTOs. Decoding
// always goes back through the validating constructors, so bytes never
// produce a value the constructors would reject.
package codec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown format")

type Format int

const (
	JSON Format = iota
	YAML
	Gob
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "gob":
		return Gob, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%q", s)
}

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case Gob:
		return "gob"
	}
	return "unknown"
}

func Marshal(f Format, v interface{}) ([]byte, error) {
	switch f {
	case JSON:
		return json.Marshal(v)
	case YAML:
		return yaml.Marshal(v)
	case Gob:
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%d", int(f))
}

func Unmarshal(f Format, data []byte, v interface{}) error {
	switch f {
	case JSON:
		return json.Unmarshal(data, v)
	case YAML:
		return yaml.Unmarshal(data, v)
	case Gob:
		return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
	}
	return errors.Wrapf(ErrUnknownFormat, "%d", int(f))
}

// Encode converts v to its DTO with to and marshals the result.
func Encode[V, M any](f Format, v V, to func(V) M) ([]byte, error) {
	data, err := Marshal(f, to(v))
	return data, errors.Wrapf(err, "encoding %v", f)
}

// Decode unmarshals a DTO and rebuilds the value with from.
func Decode[V, M any](f Format, data []byte, from func(M) (V, error)) (V, error) {
	var m M
	if err := Unmarshal(f, data, &m); err != nil {
		var zero V
		return zero, errors.Wrapf(err, "decoding %v", f)
	}
	return from(m)
}
