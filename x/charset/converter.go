package charset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/compose-network/b64encoder/x/apperr"
)

// codepage is a resolved encoding together with its canonical label.
type codepage struct {
	label string
	enc   encoding.Encoding
}

func resolve(label string) (codepage, bool) {
	enc, err := htmlindex.Get(label)
	if err != nil || enc == nil {
		return codepage{}, false
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return codepage{}, false
	}
	return codepage{label: name, enc: enc}, true
}

func (c codepage) isUnicode() bool {
	return c.label == UnicodeLabel
}

// validate rejects bytes that are not legal in the codepage.
func (c codepage) validate(data []byte) error {
	if c.isUnicode() {
		for i := 0; i < len(data); {
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size <= 1 {
				return apperr.Conversion(c.label, i)
			}
			i += size
		}
		return nil
	}

	if cm, ok := c.enc.(*charmap.Charmap); ok {
		for i, b := range data {
			if cm.DecodeByte(b) == utf8.RuneError {
				return apperr.Conversion(c.label, i)
			}
		}
	}
	return nil
}

// representable rejects runes of UTF-8 text that the codepage cannot hold.
func (c codepage) representable(text []byte) error {
	cm, ok := c.enc.(*charmap.Charmap)
	if !ok {
		return nil
	}
	for i, r := range string(text) {
		if _, ok := cm.EncodeRune(r); !ok {
			return apperr.Conversion(c.label, i)
		}
	}
	return nil
}

func convert(data []byte, src, dst codepage) ([]byte, error) {
	if err := src.validate(data); err != nil {
		return nil, err
	}

	text := data
	if !src.isUnicode() {
		decoded, err := src.enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, apperr.Conversion(src.label, 0).WithCause(err)
		}
		text = decoded
	}

	if dst.isUnicode() {
		out := make([]byte, len(text))
		copy(out, text)
		return out, nil
	}

	if err := dst.representable(text); err != nil {
		return nil, err
	}
	out, err := dst.enc.NewEncoder().Bytes(text)
	if err != nil {
		return nil, apperr.Conversion(dst.label, 0).WithCause(err)
	}
	return out, nil
}

// Convert recodes data from the encoding labelled from into the one labelled to.
// Labels follow the WHATWG encoding index (windows-1251, koi8-r, ibm866, utf-8, ...).
func Convert(data []byte, from, to string) ([]byte, error) {
	src, ok := resolve(from)
	if !ok {
		return nil, apperr.UnsupportedEncodingPair(from, to)
	}
	dst, ok := resolve(to)
	if !ok {
		return nil, apperr.UnsupportedEncodingPair(from, to)
	}
	return convert(data, src, dst)
}

// Transcoder converts between one legacy encoding and UTF-8.
type Transcoder struct {
	legacy  codepage
	unicode codepage
}

// NewTranscoder resolves both sides of pair once.
func NewTranscoder(pair Pair) (*Transcoder, error) {
	legacy, ok := resolve(pair.Legacy)
	if !ok {
		return nil, apperr.UnsupportedEncodingPair(pair.Legacy, pair.Unicode)
	}
	uni, ok := resolve(pair.Unicode)
	if !ok {
		return nil, apperr.UnsupportedEncodingPair(pair.Legacy, pair.Unicode)
	}
	return &Transcoder{legacy: legacy, unicode: uni}, nil
}

// ToUnicode converts legacy-encoded data to UTF-8
func (t *Transcoder) ToUnicode(data []byte) ([]byte, error) {
	return convert(data, t.legacy, t.unicode)
}

// FromUnicode converts UTF-8 data to the legacy encoding
func (t *Transcoder) FromUnicode(data []byte) ([]byte, error) {
	return convert(data, t.unicode, t.legacy)
}

// Pair returns the canonical labels the transcoder was resolved to
func (t *Transcoder) Pair() Pair {
	return Pair{Legacy: t.legacy.label, Unicode: t.unicode.label}
}
