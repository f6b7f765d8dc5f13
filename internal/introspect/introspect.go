// Package introspect turns a set of schema files into models. Files are
// expanded from a glob, read and parsed concurrently, and deserialized into
// core models. Results keep file order.
package introspect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/leapstack-labs/leapgql/internal/loader"
	"github.com/leapstack-labs/leapgql/internal/parser"
	"github.com/leapstack-labs/leapgql/internal/state"
	"github.com/leapstack-labs/leapgql/pkg/core"
	"github.com/leapstack-labs/leapgql/pkg/schema"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of files processed at once.
const DefaultConcurrency = 4

// Store is the subset of the state store used for incremental runs.
type Store interface {
	GetFileHashes(ctx context.Context, filePath string) (state.FileHashes, error)
	SaveFile(ctx context.Context, filePath string, hashes state.FileHashes, models []core.Model) error
	LoadFile(ctx context.Context, filePath string) ([]core.Model, error)
	DeleteFile(ctx context.Context, filePath string) error
	ListFiles(ctx context.Context) ([]state.FileRecord, error)
}

// Config holds configuration for creating an Introspector.
type Config struct {
	// Path is a glob pattern selecting schema files
	Path string
	// Encoding of schema files (default utf8)
	Encoding string
	// DefaultSourceName applies to models without a source directive
	DefaultSourceName string
	// DirectiveNaming selects the directive naming strategy (plain or provider, default plain)
	DirectiveNaming string
	// Observer receives per-document progress. Must be safe for concurrent use.
	Observer schema.Observer
	// Concurrency bounds parallel file processing (default DefaultConcurrency)
	Concurrency int
	// Store enables incremental runs when set
	Store Store
	// ForceRefresh ignores stored content hashes
	ForceRefresh bool
	// Logger for structured logging (optional, defaults to discard)
	Logger *slog.Logger
}

// Introspector produces models from schema files.
type Introspector struct {
	path         string
	concurrency  int
	store        Store
	forceRefresh bool
	configHash   string
	parser       *parser.Parser
	deserializer *schema.Deserializer
	logger       *slog.Logger
}

// New creates an Introspector.
func New(cfg Config) (*Introspector, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if _, err := loader.LookupEncoding(cfg.Encoding); err != nil {
		return nil, err
	}

	naming := strings.ToLower(strings.TrimSpace(cfg.DirectiveNaming))
	if naming == "" {
		naming = schema.NamingPlain
	}
	strategy, err := schema.ParseNamingStrategy(naming)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &Introspector{
		path:         cfg.Path,
		concurrency:  concurrency,
		store:        cfg.Store,
		forceRefresh: cfg.ForceRefresh,
		configHash:   configFingerprint(cfg.DefaultSourceName, naming),
		parser:       parser.NewParser(cfg.Encoding),
		deserializer: schema.New(schema.Options{
			DefaultSourceName: cfg.DefaultSourceName,
			Naming:            strategy,
			Observer:          cfg.Observer,
		}),
		logger: logger,
	}, nil
}

// configFingerprint hashes the settings that shape deserialized models.
// Stored snapshots built under a different fingerprint are reparsed.
func configFingerprint(defaultSourceName, naming string) string {
	return loader.ComputeHash([]byte("default_source_name=" + defaultSourceName + "\ndirective_naming=" + naming))
}

// Result contains the models and statistics of a run.
type Result struct {
	Models []core.Model
	Files  []string

	Changed int
	Skipped int
	Deleted int

	Duration time.Duration
}

// Summary returns a human-readable summary.
func (r *Result) Summary() string {
	return fmt.Sprintf("Models: %d | Files: %d total (%d changed, %d skipped, %d deleted) | Duration: %s",
		len(r.Models), len(r.Files), r.Changed, r.Skipped, r.Deleted,
		r.Duration.Round(time.Millisecond))
}

// fileResult is the outcome of processing one file.
type fileResult struct {
	path    string
	hash    string
	models  []core.Model
	skipped bool
}

// Introspect returns the models of every matched file, concatenated in file
// order. The first failing file aborts the run.
func (in *Introspector) Introspect(ctx context.Context) ([]core.Model, error) {
	result, err := in.Run(ctx)
	if err != nil {
		return nil, err
	}
	return result.Models, nil
}

// Run introspects all matched files. When a store is configured unchanged
// files are loaded from it, changed files are saved back and files no longer
// matched are pruned. Nothing is saved if any file fails.
func (in *Introspector) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	files, err := loader.Discover(in.path)
	if err != nil {
		return nil, err
	}

	in.logger.Info("starting introspection", "path", in.path, "files", len(files))

	results := make([]fileResult, len(files))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(in.concurrency)
	for i, file := range files {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			r, err := in.processFile(egctx, file)
			if err != nil {
				return fmt.Errorf("error parsing graphql document %s: %w", file, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Models: []core.Model{}, Files: files}
	for _, r := range results {
		result.Models = append(result.Models, r.models...)
		if r.skipped {
			result.Skipped++
		} else {
			result.Changed++
		}
	}

	if in.store != nil {
		deleted, err := in.persist(ctx, results)
		if err != nil {
			return nil, err
		}
		result.Deleted = deleted
	}

	result.Duration = time.Since(start)

	in.logger.Info("introspection completed",
		"models", len(result.Models),
		"files_changed", result.Changed,
		"files_skipped", result.Skipped,
		"files_deleted", result.Deleted,
		"duration_ms", result.Duration.Milliseconds())

	return result, nil
}

// processFile reads one file and deserializes it, or loads its models from
// the store when its content hash is unchanged.
func (in *Introspector) processFile(ctx context.Context, path string) (fileResult, error) {
	src, err := in.parser.ReadFile(path)
	if err != nil {
		return fileResult{}, err
	}

	if in.store != nil && !in.forceRefresh {
		stored, err := in.store.GetFileHashes(ctx, path)
		if err != nil {
			return fileResult{}, err
		}
		if stored.Content == src.Hash && stored.Config == in.configHash {
			models, err := in.store.LoadFile(ctx, path)
			if err != nil {
				return fileResult{}, err
			}
			in.logger.Debug("skipping unchanged file", "path", path)
			return fileResult{path: path, hash: src.Hash, models: models, skipped: true}, nil
		}
	}

	doc, err := in.parser.Parse(src)
	if err != nil {
		return fileResult{}, err
	}

	models, err := in.deserializer.DeserializeDocument(path, doc)
	if err != nil {
		return fileResult{}, err
	}

	in.logger.Debug("introspected file", "path", path, "models", len(models))
	return fileResult{path: path, hash: src.Hash, models: models}, nil
}

// persist saves changed files and prunes files that are no longer matched.
func (in *Introspector) persist(ctx context.Context, results []fileResult) (int, error) {
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		seen[r.path] = true
		if r.skipped {
			continue
		}
		hashes := state.FileHashes{Content: r.hash, Config: in.configHash}
		if err := in.store.SaveFile(ctx, r.path, hashes, r.models); err != nil {
			return 0, err
		}
	}

	stored, err := in.store.ListFiles(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, f := range stored {
		if seen[f.Path] {
			continue
		}
		if err := in.store.DeleteFile(ctx, f.Path); err != nil {
			return deleted, err
		}
		in.logger.Debug("pruned deleted file", "path", f.Path)
		deleted++
	}
	return deleted, nil
}
