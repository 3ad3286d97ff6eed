package codec

// Codec defines the framing encoding/decoding interface
type Codec interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
	Name() string
}

// Registry manages multiple codec implementations
type Registry interface {
	Register(codec Codec)
	Get(name string) (Codec, bool)
	Default() Codec
}
