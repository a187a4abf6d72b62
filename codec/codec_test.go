package codec_test

import (
	"testing"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range codec.Names() {
		c, ok := codec.ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := codec.ByName("xml")
	assert.False(t, ok)
}

func TestCodecs_RoundTripBitset(t *testing.T) {
	src := bitvec.Of(1, 3, 5, 1000)

	for _, name := range codec.Names() {
		t.Run(name, func(t *testing.T) {
			c, _ := codec.ByName(name)

			data, err := c.Marshal(src)
			require.NoError(t, err)

			got := bitvec.New()
			require.NoError(t, c.Unmarshal(data, got))
			assert.True(t, got.Equal(src))
		})
	}
}

func TestBinary_IsCanonicalEncoding(t *testing.T) {
	src := bitvec.Of(0, 9, 70)
	assert.Equal(t, src.Bytes(), codec.MustMarshal(nil, src))
}

func TestJSON_Format(t *testing.T) {
	data, err := codec.JSON{}.Marshal(bitvec.Of(5, 1, 3))
	require.NoError(t, err)
	assert.Equal(t, `[1,3,5]`, string(data))

	out, err := codec.GoJSON{}.Append([]byte("x="), bitvec.Of(2))
	require.NoError(t, err)
	assert.Equal(t, `x=[2]`, string(out))
}

func TestBinary_UnsupportedType(t *testing.T) {
	_, err := codec.Binary{}.Marshal(42)
	assert.ErrorIs(t, err, codec.ErrUnsupportedType)

	err = codec.Binary{}.Unmarshal([]byte{1}, new(int))
	assert.ErrorIs(t, err, codec.ErrUnsupportedType)

	assert.Panics(t, func() { codec.MustMarshal(codec.Binary{}, "nope") })
}
