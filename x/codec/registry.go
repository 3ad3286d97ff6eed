package codec

// registry implements Registry interface
type registry struct {
	codecs   map[string]Codec
	default_ string
}

// NewRegistry creates a new codec registry
func NewRegistry() Registry {
	r := &registry{
		codecs: make(map[string]Codec),
	}

	// Register default base64 codec
	r.Register(NewBase64Codec())
	r.default_ = Base64Name

	return r
}

// Register registers a codec under its name
func (r *registry) Register(codec Codec) {
	r.codecs[codec.Name()] = codec
}

// Get retrieves a codec by name
func (r *registry) Get(name string) (Codec, bool) {
	codec, exists := r.codecs[name]
	return codec, exists
}

// Default returns the default codec
func (r *registry) Default() Codec {
	return r.codecs[r.default_]
}
