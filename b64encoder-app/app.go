package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/compose-network/b64encoder/b64encoder-app/config"
	"github.com/compose-network/b64encoder/log"
	"github.com/compose-network/b64encoder/x/apperr"
	"github.com/compose-network/b64encoder/x/charset"
	"github.com/compose-network/b64encoder/x/fileio"
	"github.com/compose-network/b64encoder/x/pipeline"
	"github.com/compose-network/b64encoder/x/textnorm"
)

// App runs one encoder operation against files
type App struct {
	cfg      *config.Config
	files    *fileio.Store
	registry charset.Registry
	policy   textnorm.Policy

	base zerolog.Logger
	log  zerolog.Logger
}

// EncodingInfo describes one supported encoding name
type EncodingInfo struct {
	Name string
	Pair charset.Pair
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, files *fileio.Store, logger zerolog.Logger) (*App, error) {
	policy, err := cfg.LineEndingPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	base := logger.With().Str("run_id", uuid.NewString()).Logger()

	return &App{
		cfg:      cfg,
		files:    files,
		registry: charset.NewRegistry(),
		policy:   policy,
		base:     base,
		log:      log.WithComponent(base, "app"),
	}, nil
}

// Run reads input, transforms it in the direction named by op with the named
// encoding and writes the result to output. The operation and encoding are
// resolved before any file is touched.
func (a *App) Run(op, input, output, encoding string) error {
	dir, err := pipeline.ParseDirection(op)
	if err != nil {
		return err
	}

	cfg := pipeline.DefaultConfig(encoding, a.base)
	cfg.Policy = a.policy
	cfg.Registry = a.registry

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	data, err := a.files.ReadFile(input)
	if err != nil {
		return err
	}

	result, err := p.Run(dir, data)
	if err != nil {
		a.log.Debug().
			Err(err).
			Stringer("kind", apperr.KindOf(err)).
			Str("operation", dir.String()).
			Str("input", input).
			Str("encoding", p.Encoding()).
			Msg("Operation failed")
		return err
	}

	if err := a.files.WriteFile(output, result); err != nil {
		return err
	}

	a.log.Info().
		Str("operation", dir.String()).
		Str("input", input).
		Str("output", output).
		Str("encoding", p.Encoding()).
		Int("in_bytes", len(data)).
		Int("out_bytes", len(result)).
		Msg("Operation complete")

	return nil
}

// Detect guesses which supported encoding the file at input is written in
func (a *App) Detect(input string) (charset.Detection, error) {
	data, err := a.files.ReadFile(input)
	if err != nil {
		return charset.Detection{}, err
	}

	detection, err := charset.Detect(data, a.registry)
	a.log.Debug().
		Err(err).
		Str("input", input).
		Str("charset", detection.Charset).
		Int("confidence", detection.Confidence).
		Msg("Detection finished")

	return detection, err
}

// Encodings lists the supported encodings in name order
func (a *App) Encodings() []EncodingInfo {
	names := a.registry.Names()
	infos := make([]EncodingInfo, 0, len(names))
	for _, name := range names {
		pair, _ := a.registry.Lookup(name)
		infos = append(infos, EncodingInfo{Name: name, Pair: pair})
	}
	return infos
}
