// Package keycount reports how many top-level keys a JSON definitions file
// holds.
package keycount

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"namespacelabs.dev/keycount/pkg/config"
	"namespacelabs.dev/keycount/pkg/jsonfile"
)

type Result struct {
	Path string
	Size int
	Keys int
}

// Load reads the whole file at path. Content that is not valid UTF-8 is a load
// failure.
func Load(path string) ([]byte, error) {
	data, err := jsonfile.Read(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	return data, nil
}

// Parse decodes data as a single JSON document. path is only used for error
// reporting.
func Parse(path string, data []byte) (any, error) {
	value, err := jsonfile.Decode(data)
	if err != nil {
		return nil, &ParseError{Path: path, Offset: errorOffset(err), Err: err}
	}

	return value, nil
}

// Count returns the number of top-level keys of value, which must be a JSON
// object.
func Count(path string, value any) (int, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return 0, &TypeMismatchError{Path: path, Kind: kindOf(value)}
	}

	return len(obj), nil
}

func Report(w io.Writer, n int) error {
	_, err := fmt.Fprintf(w, "Total number of keys: %d\n", n)
	return err
}

// Run loads, parses and counts the definitions file named by cfg, and reports
// the count to out. Nothing is written to out unless every stage succeeded.
func Run(ctx context.Context, cfg config.Config, out io.Writer) (Result, error) {
	res := Result{Path: cfg.Path}

	logger := zerolog.Ctx(ctx).With().Str("path", cfg.Path).Logger()

	if err := cfg.Validate(); err != nil {
		return res, logFailure(logger, &FileAccessError{Path: cfg.Path, Err: err})
	}

	data, err := Load(cfg.Path)
	if err != nil {
		return res, logFailure(logger, err)
	}

	res.Size = len(data)
	logger.Debug().Str("size", humanize.Bytes(uint64(len(data)))).Msg("Loaded definitions")

	value, err := Parse(cfg.Path, data)
	if err != nil {
		return res, logFailure(logger, err)
	}

	keys, err := Count(cfg.Path, value)
	if err != nil {
		return res, logFailure(logger, err)
	}

	res.Keys = keys
	logger.Debug().Int("keys", keys).Msg("Counted top-level keys")

	if err := Report(out, keys); err != nil {
		return res, fmt.Errorf("failed to write report: %w", err)
	}

	return res, nil
}

func logFailure(logger zerolog.Logger, err error) error {
	var staged interface{ Stage() string }
	if errors.As(err, &staged) {
		logger.Debug().Str("stage", staged.Stage()).Err(err).Msg("Failed to count keys")
	}

	return err
}

func errorOffset(err error) int64 {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return se.Offset
	}

	var te *jsonfile.TrailingDataError
	if errors.As(err, &te) {
		return te.Offset
	}

	return -1
}

// kindOf names a value produced by jsonfile.Decode, which only yields these
// types since numbers are decoded as json.Number.
func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	}

	return "number"
}
