// Package dataprovider loads test data files for data-driven scenarios.
package dataprovider

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// ErrDataParse matches every ParseError via errors.Is
var ErrDataParse = errors.New("malformed test data")

// ErrUnknownFormat is returned by Load for an extension it cannot dispatch on
var ErrUnknownFormat = errors.New("unknown test data format")

// ParseError reports a file that was read but could not be decoded
type ParseError struct {
	Path   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDataParse) match any ParseError
func (e *ParseError) Is(target error) bool { return target == ErrDataParse }

// JSON loads an entire JSON document
func JSON(path string) (any, error) {
	var doc any
	if err := JSONInto(path, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// JSONInto decodes a JSON document into target
func JSONInto(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return &ParseError{Path: path, Format: "json", Err: err}
	}
	return nil
}

// CSV parses a delimited file into rows keyed by the header row. Empty lines are skipped.
func CSV(path string) ([]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if err == io.EOF {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, &ParseError{Path: path, Format: "csv", Err: err}
	}

	rows := []map[string]string{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Format: "csv", Err: err}
		}

		row := make(map[string]string, len(header))
		for i, key := range header {
			row[key] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// YAML loads a YAML document, normalised to the shapes JSON decoding produces
func YAML(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Format: "yaml", Err: err}
	}
	doc, err := normalizeYAML(raw)
	if err != nil {
		return nil, &ParseError{Path: path, Format: "yaml", Err: err}
	}
	return doc, nil
}

// Load dispatches on the file extension
func Load(path string) (any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON(path)
	case ".csv":
		return CSV(path)
	case ".yaml", ".yml":
		return YAML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func normalizeYAML(data any) (any, error) {
	switch data := data.(type) {
	case []any:
		out := make([]any, 0, len(data))
		for _, v := range data {
			v1, err := normalizeYAML(v)
			if err != nil {
				return nil, err
			}
			out = append(out, v1)
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(data))
		for k, v := range data {
			v1, err := normalizeYAML(v)
			if err != nil {
				return nil, err
			}
			out[k] = v1
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(data))
		for k, v := range data {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string map key %v", k)
			}
			v1, err := normalizeYAML(v)
			if err != nil {
				return nil, err
			}
			out[key] = v1
		}
		return out, nil
	case int:
		return float64(data), nil
	default:
		return data, nil
	}
}
