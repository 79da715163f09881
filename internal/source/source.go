// Package source decodes tabular documents into rows of raw cell values.
package source

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMalformedInput    = errors.New("malformed input")
)

// Format represents an input format.
type Format string

const (
	CSV   Format = "csv"
	TSV   Format = "tsv"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
)

var formats = []Format{CSV, TSV, JSON, JSONL, YAML}

var extensions = map[string]Format{
	".csv":    CSV,
	".tsv":    TSV,
	".json":   JSON,
	".jsonl":  JSONL,
	".ndjson": JSONL,
	".yaml":   YAML,
	".yml":    YAML,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Read decodes r as format f. Rows may differ in length; cells keep the
// scalar types the format carries.
func Read(r io.Reader, f Format) ([][]any, error) {
	switch f {
	case CSV:
		return readCSV(r, ',')
	case TSV:
		return readTSV(r)
	case JSON:
		return readJSON(r)
	case JSONL:
		return readJSONL(r)
	case YAML:
		return readYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
