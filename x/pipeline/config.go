package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/compose-network/b64encoder/log"
	"github.com/compose-network/b64encoder/x/charset"
	"github.com/compose-network/b64encoder/x/codec"
	"github.com/compose-network/b64encoder/x/textnorm"
)

// Config configures a Pipeline.
type Config struct {
	// Encoding is the command-line encoding name (cp1251, koi8r, cp866).
	Encoding string
	// Policy selects which bytes the normalizer treats as line breaks.
	Policy textnorm.Policy
	// Registry resolves Encoding to a label pair.
	Registry charset.Registry
	// Codecs resolves Codec, the name of the codec framing the unicode text.
	// An empty name selects the registry default, standard Base64.
	Codecs codec.Registry
	Codec  string
	Logger zerolog.Logger
}

// DefaultConfig returns a config for encoding with the host line-ending policy.
func DefaultConfig(encoding string, logger zerolog.Logger) Config {
	return Config{
		Encoding: encoding,
		Policy:   textnorm.HostPolicy(),
		Registry: charset.NewRegistry(),
		Codecs:   codec.NewRegistry(),
		Codec:    codec.Base64Name,
		Logger:   log.WithComponent(logger, "pipeline"),
	}
}
