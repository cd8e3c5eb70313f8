package binding

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hupe1980/attrib"
	"github.com/hupe1980/attrib/codec"
	"github.com/hupe1980/attrib/value"
)

// Record is the interchange form of one attribute.
type Record struct {
	Name  string      `json:"name" yaml:"name"`
	Type  value.Type  `json:"type" yaml:"type"`
	Count int         `json:"count" yaml:"count"`
	Data  []Component `json:"data" yaml:"data"`
}

// Component is one float64 component of an attribute (see value.Value.Components).
//
// JSON has no literal for non-finite numbers, so NaN and the infinities are
// written as the strings "NaN", "+Inf" and "-Inf". YAML and CBOR encode them
// natively.
type Component float64

// MarshalJSON implements json.Marshaler.
func (c Component) MarshalJSON() ([]byte, error) {
	f := float64(c)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	default:
		return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. It accepts numbers and the
// strings written by MarshalJSON.
func (c *Component) UnmarshalJSON(data []byte) error {
	text := string(data)
	if text == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return fmt.Errorf("%w: component %s", ErrMalformed, text)
		}
		switch unquoted {
		case "NaN", "+Inf", "-Inf":
			text = unquoted
		default:
			return fmt.Errorf("%w: component %s", ErrMalformed, text)
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("%w: component %s", ErrMalformed, text)
	}
	*c = Component(f)
	return nil
}

func toComponents(fs []float64) []Component {
	out := make([]Component, len(fs))
	for i, f := range fs {
		out[i] = Component(f)
	}
	return out
}

func fromComponents(cs []Component) []float64 {
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = float64(c)
	}
	return out
}

// Records returns the attributes of s in enumeration order.
func Records(s *attrib.Store) []Record {
	out := make([]Record, 0, s.Occupied())
	s.ForEach(func(_ int, e attrib.Entry) bool {
		out = append(out, Record{
			Name:  e.Name,
			Type:  e.Type(),
			Count: e.Count(),
			Data:  toComponents(e.Value.Components()),
		})
		return true
	})
	return out
}

// Value converts the record back into a typed value.
func (r Record) Value() (value.Value, error) {
	v, err := value.FromComponents(r.Type, fromComponents(r.Data))
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %q: %w", ErrMalformed, r.Name, err)
	}
	if v.Len() != r.Count {
		return value.Value{}, fmt.Errorf("%w: %q: count %d, have %d elements", ErrMalformed, r.Name, r.Count, v.Len())
	}
	return v, nil
}

// Marshal encodes the attributes of s with c (codec.Default when nil).
func Marshal(s *attrib.Store, c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(Records(s))
}

// Unmarshal decodes a document produced by Marshal into s.
//
// Into a hashed store, records are set by name. Into an array store, record
// k is written to slot k. Every record is validated before s is modified.
func Unmarshal(data []byte, c codec.Codec, s *attrib.Store) error {
	if c == nil {
		c = codec.Default
	}

	var records []Record
	if err := c.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("binding: decode with %s codec: %w", c.Name(), err)
	}

	values := make([]value.Value, len(records))
	for i, r := range records {
		v, err := r.Value()
		if err != nil {
			return err
		}
		values[i] = v
	}

	if s.Mode() == attrib.Array {
		if len(records) > s.Capacity() {
			return fmt.Errorf("%w: %d records, %d slots", ErrTooManyRecords, len(records), s.Capacity())
		}
		for i, r := range records {
			if err := s.ArraySet(i, r.Name, values[i]); err != nil {
				return err
			}
		}
		return nil
	}

	for i, r := range records {
		if err := s.Set(r.Name, values[i]); err != nil {
			return err
		}
	}
	return nil
}
