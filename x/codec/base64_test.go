package codec

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compose-network/b64encoder/x/apperr"
)

func TestBase64Codec_Encode(t *testing.T) {
	t.Parallel()

	c := NewBase64Codec()
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", "YQ=="},
		{"ab", "YWI="},
		{"abc", "YWJj"},
		{"Hello, World", "SGVsbG8sIFdvcmxk"},
	}
	for _, tt := range tests {
		out, err := c.Encode([]byte(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(out), tt.in)
	}
}

func TestBase64Codec_Roundtrip(t *testing.T) {
	t.Parallel()

	c := NewBase64Codec()

	binary := make([]byte, 256)
	for i := range binary {
		binary[i] = byte(i)
	}

	for _, in := range [][]byte{
		{},
		{0x00},
		binary,
		bytes.Repeat([]byte{0xff, 0x07, 0x0a}, 1000),
		[]byte("Привет"),
	} {
		enc, err := c.Encode(in)
		require.NoError(t, err)
		dec, err := c.Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, len(in), len(dec))
		assert.True(t, bytes.Equal(in, dec))
	}
}

func TestBase64Codec_DecodeExactLength(t *testing.T) {
	t.Parallel()

	c := NewBase64Codec()
	out, err := c.Decode([]byte("YQ=="))
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), out)
	assert.Equal(t, 1, cap(out))
}

func TestBase64Codec_DecodeRejectsLineBreaks(t *testing.T) {
	t.Parallel()

	c := NewBase64Codec()
	tests := []struct {
		in     string
		offset int
	}{
		{"YW\nJj", 2},
		{"Y\r\nW\nJ\rj", 1},
		{"YWJj\n", 4},
		{"YWJj\r\n", 4},
		{"\nYWJj", 0},
	}
	for _, tt := range tests {
		_, err := c.Decode([]byte(tt.in))
		require.Error(t, err, tt.in)
		assert.ErrorIs(t, err, apperr.ErrMalformedBase64, tt.in)

		var corrupt base64.CorruptInputError
		require.ErrorAs(t, err, &corrupt, tt.in)
		assert.Equal(t, int64(tt.offset), int64(corrupt), tt.in)
	}
}

func TestBase64Codec_DecodeMalformed(t *testing.T) {
	t.Parallel()

	c := NewBase64Codec()
	for _, in := range []string{"YWJ", "YW*j", "Y===", "YWJj$", "YQ=a"} {
		_, err := c.Decode([]byte(in))
		require.Error(t, err, in)
		assert.ErrorIs(t, err, apperr.ErrMalformedBase64, in)

		var corrupt base64.CorruptInputError
		assert.ErrorAs(t, err, &corrupt, in)
	}
}

func TestRegistry_Default(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	def := r.Default()
	require.NotNil(t, def)

	_, ok := def.(*Base64Codec)
	require.True(t, ok)
	assert.Equal(t, Base64Name, def.Name())
}

type upperCodec struct{}

func (upperCodec) Encode(data []byte) ([]byte, error) { return bytes.ToUpper(data), nil }
func (upperCodec) Decode(data []byte) ([]byte, error) { return bytes.ToLower(data), nil }
func (upperCodec) Name() string                       { return "upper" }

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(upperCodec{})

	got, ok := r.Get("upper")
	require.True(t, ok)
	out, err := got.Encode([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, []byte("ABC"), out)

	_, ok = r.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, Base64Name, r.Default().Name())
}
