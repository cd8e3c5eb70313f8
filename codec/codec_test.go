package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name string    `json:"name" yaml:"name"`
	Data []float64 `json:"data" yaml:"data"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json", "yaml", "cbor"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsInterchange(t *testing.T) {
	in := []record{{Name: "Dimensions", Data: []float64{640, 480}}, {Name: "Gamma", Data: []float64{2.2}}}

	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			t.Run(enc.Name()+"->"+dec.Name(), func(t *testing.T) {
				var out []record
				require.NoError(t, dec.Unmarshal(MustMarshal(enc, in), &out))
				assert.Equal(t, in, out)
			})
		}
	}
}

func TestCodecRoundTrip(t *testing.T) {
	in := []record{{Name: "Gamma", Data: []float64{2.2, -0.5, 1e-9}}}

	for _, c := range []Codec{YAML{}, CBOR{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var out []record
			require.NoError(t, c.Unmarshal(MustMarshal(c, in), &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestCBORDeterministic(t *testing.T) {
	a := map[string]int{"b": 2, "a": 1, "c": 3}
	first := MustMarshal(CBOR{}, a)
	for range 10 {
		assert.Equal(t, first, MustMarshal(CBOR{}, a))
	}
}

func TestYAMLDocument(t *testing.T) {
	out := MustMarshal(YAML{}, record{Name: "a", Data: []float64{1, 2}})
	assert.Equal(t, "name: a\ndata:\n    - 1\n    - 2\n", string(out))
}

func TestGoJSONAppend(t *testing.T) {
	dst := []byte("prefix:")
	out, err := GoJSON{}.Append(dst, record{Name: "a", Data: []float64{1}})
	require.NoError(t, err)
	assert.Equal(t, `prefix:{"name":"a","data":[1]}`, string(out))
}

func TestMustMarshalDefault(t *testing.T) {
	assert.Equal(t, `[1,2]`, string(MustMarshal(nil, []int{1, 2})))
	assert.Panics(t, func() { MustMarshal(JSON{}, complex(1, 2)) })
}
