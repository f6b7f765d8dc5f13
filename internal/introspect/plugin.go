package introspect

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-viper/mapstructure/v2"
	"github.com/leapstack-labs/leapgql/pkg/host"
	"github.com/leapstack-labs/leapgql/pkg/schema"
)

// Options are the host-facing plugin options.
type Options struct {
	Path              string `mapstructure:"path"`
	Encoding          string `mapstructure:"encoding"`
	DefaultSourceName string `mapstructure:"default_source_name"`
	DirectiveNaming   string `mapstructure:"directive_naming"`
	Concurrency       int    `mapstructure:"concurrency"`
}

// DecodeOptions decodes a loosely typed option map. Unknown keys are rejected.
func DecodeOptions(raw map[string]any) (Options, error) {
	var opts Options
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Options{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Options{}, fmt.Errorf("invalid plugin options: %w", err)
	}
	return opts, nil
}

// Plugin builds a host plugin that appends the introspected models to the
// shared results container.
func Plugin(raw map[string]any, logger *slog.Logger) (host.Plugin, error) {
	opts, err := DecodeOptions(raw)
	if err != nil {
		return nil, err
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("path option is required")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	in, err := New(Config{
		Path:              opts.Path,
		Encoding:          opts.Encoding,
		DefaultSourceName: opts.DefaultSourceName,
		DirectiveNaming:   opts.DirectiveNaming,
		Concurrency:       opts.Concurrency,
		Logger:            logger,
		Observer:          schema.NewLogObserver(logger),
	})
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, results *host.Results) error {
		models, err := in.Introspect(ctx)
		if err != nil {
			return err
		}
		results.Append(models...)
		return nil
	}, nil
}
