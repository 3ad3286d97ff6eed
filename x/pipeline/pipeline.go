package pipeline

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/compose-network/b64encoder/x/apperr"
	"github.com/compose-network/b64encoder/x/charset"
	"github.com/compose-network/b64encoder/x/codec"
	"github.com/compose-network/b64encoder/x/textnorm"
)

type stage struct {
	name string
	fn   func([]byte) ([]byte, error)
}

func infallible(fn func([]byte) []byte) func([]byte) ([]byte, error) {
	return func(data []byte) ([]byte, error) {
		return fn(data), nil
	}
}

// Pipeline chains charset conversion, Base64 framing and text normalization
// for one encoding. A pipeline runs once.
type Pipeline struct {
	encoding   string
	transcoder *charset.Transcoder
	codec      codec.Codec
	normalizer *textnorm.Normalizer
	state      State
	log        zerolog.Logger
}

// New resolves cfg.Encoding and returns a pipeline in StateReady.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Registry == nil {
		cfg.Registry = charset.NewRegistry()
	}
	if cfg.Codecs == nil {
		cfg.Codecs = codec.NewRegistry()
	}

	pair, ok := cfg.Registry.Lookup(cfg.Encoding)
	if !ok {
		return nil, apperr.InvalidArgument("unknown encoding type: %s (supported: %s)",
			cfg.Encoding, strings.Join(cfg.Registry.Names(), ", ")).
			WithContext("encoding", cfg.Encoding)
	}

	transcoder, err := charset.NewTranscoder(pair)
	if err != nil {
		return nil, err
	}

	framing := cfg.Codecs.Default()
	if cfg.Codec != "" {
		c, ok := cfg.Codecs.Get(cfg.Codec)
		if !ok {
			return nil, apperr.InvalidArgument("unknown codec: %s", cfg.Codec).
				WithContext("codec", cfg.Codec)
		}
		framing = c
	}

	p := &Pipeline{
		encoding:   cfg.Encoding,
		transcoder: transcoder,
		codec:      framing,
		normalizer: textnorm.New(cfg.Policy),
		state:      StateReady,
		log:        cfg.Logger,
	}

	resolved := transcoder.Pair()
	p.log.Debug().
		Str("encoding", p.encoding).
		Str("legacy", resolved.Legacy).
		Str("unicode", resolved.Unicode).
		Str("codec", p.codec.Name()).
		Str("line_endings", cfg.Policy.String()).
		Msg("Pipeline ready")

	return p, nil
}

// State returns the current state
func (p *Pipeline) State() State {
	return p.state
}

// Encoding returns the encoding name the pipeline was built for
func (p *Pipeline) Encoding() string {
	return p.encoding
}

// Run executes the pipeline in the given direction.
func (p *Pipeline) Run(dir Direction, data []byte) ([]byte, error) {
	switch dir {
	case Encode:
		return p.Encode(data)
	case Decode:
		return p.Decode(data)
	default:
		return nil, apperr.InvalidArgument("invalid direction: %d", int(dir))
	}
}

// Encode converts legacy text to UTF-8, frames it in Base64 and normalizes the result.
func (p *Pipeline) Encode(data []byte) ([]byte, error) {
	return p.run(Encode, data, []stage{
		{name: "to_unicode", fn: p.transcoder.ToUnicode},
		{name: "frame", fn: p.codec.Encode},
		{name: "normalize", fn: infallible(p.normalizer.Normalize)},
	})
}

// Decode unframes Base64, converts UTF-8 back to the legacy encoding and restores line breaks.
func (p *Pipeline) Decode(data []byte) ([]byte, error) {
	return p.run(Decode, data, []stage{
		{name: "unframe", fn: p.codec.Decode},
		{name: "from_unicode", fn: p.transcoder.FromUnicode},
		{name: "denormalize", fn: infallible(p.normalizer.Denormalize)},
	})
}

func (p *Pipeline) run(dir Direction, data []byte, stages []stage) ([]byte, error) {
	if p.state != StateReady {
		return nil, apperr.InvalidArgument("pipeline is %s, not ready", p.state).
			WithContext("state", p.state.String())
	}

	buf := data
	for _, st := range stages {
		out, err := st.fn(buf)
		if err != nil {
			p.state = StateFailed
			p.log.Debug().
				Err(err).
				Str("direction", dir.String()).
				Str("stage", st.name).
				Msg("Pipeline stage failed")
			return nil, err
		}

		p.log.Debug().
			Str("direction", dir.String()).
			Str("stage", st.name).
			Int("in_bytes", len(buf)).
			Int("out_bytes", len(out)).
			Msg("Pipeline stage done")
		buf = out
	}

	p.state = StateDone
	return buf, nil
}
