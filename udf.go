// Package udf decodes the UDF binary sensor-log format: a textual schema
// header followed by a tagged binary body, into a columnar in-memory
// table. It is a thin top-level wrapper over header, body, and table,
// mirroring how this module's teacher package exposes its encoder/decoder
// pipeline as package-level convenience functions.
//
// # Basic usage
//
//	result, err := udf.Decode(fileBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	col, _ := result.Table.Column("temp.x")
//
// Scaling is a separate, explicit pass, since not every caller wants raw
// samples promoted to physical units:
//
//	scaled, err := udf.Scale(result.Table)
package udf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arloliu/udf/body"
	"github.com/arloliu/udf/compress"
	"github.com/arloliu/udf/format"
	"github.com/arloliu/udf/header"
	"github.com/arloliu/udf/internal/options"
	"github.com/arloliu/udf/table"
)

// Config controls Decode's behavior.
type Config struct {
	strict       bool
	applyScaling bool
	decompress   bool
	logger       *slog.Logger
}

func defaultConfig() *Config {
	return &Config{
		strict:       true,
		applyScaling: false,
		decompress:   true,
		logger:       slog.Default(),
	}
}

// DecodeOption configures Decode via the functional-options pattern.
type DecodeOption = options.Option[*Config]

// WithStrict selects strict mode (the default) when true: a truncated
// event aborts the decode. Lenient mode (false) returns the parsed prefix
// instead, with the truncation recorded on DecodeResult.Warnings.
func WithStrict(strict bool) DecodeOption {
	return options.NoError(func(c *Config) { c.strict = strict })
}

// WithApplyScaling runs the scaling pass automatically before Decode
// returns. The default is false: callers receive raw fixed-width samples
// and apply scaling explicitly via Scale.
func WithApplyScaling(apply bool) DecodeOption {
	return options.NoError(func(c *Config) { c.applyScaling = apply })
}

// WithLogger sets the structured logger Decode uses to report non-fatal
// warnings (duplicate sensor names, lenient-mode truncation). The default
// is slog.Default().
func WithLogger(logger *slog.Logger) DecodeOption {
	return options.NoError(func(c *Config) { c.logger = logger })
}

// WithDecompression enables or disables the input-stage auto-detection of
// a zstd/S2/LZ4-compressed blob. Enabled by default.
func WithDecompression(enabled bool) DecodeOption {
	return options.NoError(func(c *Config) { c.decompress = enabled })
}

// DecodeResult is Decode's return value: the parsed header, the
// materialized table, and any non-fatal warnings collected along the way.
type DecodeResult struct {
	Version  string
	Header   *header.Header
	Table    *table.Table
	Warnings []error
}

// Decode parses blob as a UDF file: an optional compressed wrapper, a text
// schema header, and a tagged binary body, and materializes the result
// into a dense table.
func Decode(blob []byte, opts ...DecodeOption) (*DecodeResult, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	raw := blob
	if cfg.decompress {
		decompressed, algo, err := compress.DecompressIfNeeded(blob)
		if err != nil {
			return nil, fmt.Errorf("decompressing input blob: %w", err)
		}
		if algo != format.CompressionNone {
			cfg.logger.Debug("decompressed udf input", "codec", algo.String(), "compressed_size", len(blob), "decompressed_size", len(decompressed))
		}
		raw = decompressed
	}

	h, headerWarnings, err := header.Parse(raw)
	if err != nil {
		return nil, err
	}

	res, err := body.Parse(context.Background(), raw, h.BodyStart, h, body.WithStrict(cfg.strict))
	if err != nil {
		return nil, err
	}

	warnings := make([]error, 0, len(headerWarnings)+len(res.Warnings))
	warnings = append(warnings, headerWarnings...)
	warnings = append(warnings, res.Warnings...)
	for _, w := range warnings {
		cfg.logger.Warn("udf decode warning", "error", w)
	}

	tbl, err := table.Build(h, res)
	if err != nil {
		return nil, err
	}

	if cfg.applyScaling {
		tbl, err = table.Scale(tbl)
		if err != nil {
			return nil, err
		}
	}

	return &DecodeResult{
		Version:  string(h.Version),
		Header:   h,
		Table:    tbl,
		Warnings: warnings,
	}, nil
}

// Scale is a thin wrapper over table.Scale, exposed at the package root so
// callers that only imported "udf" don't also need "udf/table" for the
// common case.
func Scale(t *table.Table) (*table.Table, error) {
	return table.Scale(t)
}
