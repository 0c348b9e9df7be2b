// Package dataset loads tables from JSON, YAML, TOML, CSV and TSV files and
// saves rendered output.
package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/latab"
)

var (
	ErrUnknownFormat = errors.New("unknown dataset format")
	ErrMalformed     = errors.New("malformed dataset")
)

// Format is a dataset file format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	CSV  Format = "csv"
	TSV  Format = "tsv"
)

var extensions = map[string]Format{
	".json": JSON,
	".yaml": YAML,
	".yml":  YAML,
	".toml": TOML,
	".csv":  CSV,
	".tsv":  TSV,
	".txt":  TSV,
}

// FormatFromPath picks the format from the file extension, ignoring case.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Document is a decoded dataset file.
//
// JSON, YAML and TOML files hold a mapping with "title", "header", "labels"
// and "rows" keys. JSON and YAML files may also hold a bare matrix. CSV and
// TSV records all become rows.
type Document struct {
	Title  string
	Header []string
	Labels []any
	Rows   [][]any
}

// Table converts the rows into a [latab.Table].
func (d *Document) Table() latab.Table {
	return latab.NewTable(d.Rows)
}

// LabelCells converts the labels into cells.
func (d *Document) LabelCells() []latab.Cell {
	if d.Labels == nil {
		return nil
	}
	return latab.Cells(d.Labels...)
}

// Load reads and decodes the dataset at path.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a dataset in format f from r.
func Decode(r io.Reader, f Format) (*Document, error) {
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return fromValue(v)
	case YAML:
		var v any
		if err := yaml.NewDecoder(r).Decode(&v); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return fromValue(v)
	case TOML:
		var v map[string]any
		if _, err := toml.NewDecoder(r).Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return fromValue(v)
	case CSV:
		return decodeDelimited(r, ',')
	case TSV:
		return decodeDelimited(r, '\t')
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func fromValue(v any) (*Document, error) {
	switch x := v.(type) {
	case nil:
		return &Document{}, nil
	case []any:
		rows, err := toRows(x)
		if err != nil {
			return nil, err
		}
		return &Document{Rows: rows}, nil
	case map[string]any:
		doc := &Document{}
		if t, ok := x["title"]; ok {
			doc.Title = fmt.Sprint(t)
		}
		if h, ok := x["header"].([]any); ok {
			doc.Header = make([]string, len(h))
			for i, s := range h {
				doc.Header[i] = fmt.Sprint(s)
			}
		}
		if l, ok := x["labels"].([]any); ok {
			doc.Labels = l
		}
		if r, ok := x["rows"]; ok {
			list, ok := r.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: rows must be a list, got %T", ErrMalformed, r)
			}
			rows, err := toRows(list)
			if err != nil {
				return nil, err
			}
			doc.Rows = rows
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("%w: unexpected top-level %T", ErrMalformed, v)
	}
}

func toRows(list []any) ([][]any, error) {
	rows := make([][]any, len(list))
	for i, r := range list {
		row, ok := r.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: row %d must be a list, got %T", ErrMalformed, i, r)
		}
		rows[i] = row
	}
	return rows, nil
}

func decodeDelimited(r io.Reader, comma rune) (*Document, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	doc := &Document{Rows: make([][]any, len(records))}
	for i, rec := range records {
		row := make([]any, len(rec))
		for j, field := range rec {
			if f, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
				row[j] = f
			} else {
				row[j] = field
			}
		}
		doc.Rows[i] = row
	}
	return doc, nil
}

// Save writes data to path atomically, creating parent directories.
func Save(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return atomic.WriteFile(path, bytes.NewReader(data))
}
