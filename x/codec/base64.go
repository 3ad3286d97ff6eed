package codec

import (
	"bytes"
	"encoding/base64"

	"github.com/compose-network/b64encoder/x/apperr"
)

// Base64Name is the registry name of the standard Base64 codec
const Base64Name = "base64"

// Base64Codec implements RFC 4648 standard padded Base64 framing
type Base64Codec struct {
	enc *base64.Encoding
}

// NewBase64Codec creates a new standard Base64 codec
func NewBase64Codec() *Base64Codec {
	return &Base64Codec{enc: base64.StdEncoding}
}

// Encode returns the Base64 text of data as ASCII bytes
func (c *Base64Codec) Encode(data []byte) ([]byte, error) {
	out := make([]byte, c.enc.EncodedLen(len(data)))
	c.enc.Encode(out, data)
	return out, nil
}

// Decode returns the bytes represented by the Base64 text in data.
// Line breaks are not part of the alphabet and are rejected.
func (c *Base64Codec) Decode(data []byte) ([]byte, error) {
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return nil, apperr.MalformedBase64(base64.CorruptInputError(i))
	}

	out := make([]byte, c.enc.DecodedLen(len(data)))
	n, err := c.enc.Decode(out, data)
	if err != nil {
		return nil, apperr.MalformedBase64(err)
	}
	return out[:n:n], nil
}

// Name returns the codec name
func (c *Base64Codec) Name() string {
	return Base64Name
}
