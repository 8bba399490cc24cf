// Package input decodes table documents from JSON5, CSV and TSV.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/titanous/json5"

	"github.com/dedene/termtable/internal/table"
)

// Format is an input document format.
type Format string

const (
	FormatJSON5 Format = "json5"
	FormatCSV   Format = "csv"
	FormatTSV   Format = "tsv"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown input format")

// ParseFormat maps a flag value onto a Format. "json" is accepted as json5.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json5", "json":
		return FormatJSON5, nil
	case "csv":
		return FormatCSV, nil
	case "tsv", "tab":
		return FormatTSV, nil
	default:
		return "", fmt.Errorf("%w: %q (use json5, csv or tsv)", ErrUnknownFormat, s)
	}
}

// DetectFormat guesses the format from a file extension, defaulting to CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".json5":
		return FormatJSON5
	case ".tsv", ".tab":
		return FormatTSV
	default:
		return FormatCSV
	}
}

// Document is a decoded table: its rows and the render options it carries.
type Document struct {
	Rows    [][]any
	Options table.Options
	// Border is set when the document states style.border as true or false,
	// so defaults from elsewhere do not override it.
	Border *bool
}

// Head returns the header cells, if any.
func (d *Document) Head() []string {
	return d.Options.Head
}

// Columns returns the widest row length, counting column spans.
func (d *Document) Columns() int {
	n := 0
	for _, row := range d.Rows {
		w := 0
		for _, c := range row {
			if r, ok := c.(table.Rich); ok && r.ColSpan > 1 {
				w += r.ColSpan
				continue
			}
			w++
		}
		n = max(n, w)
	}
	return max(n, len(d.Options.Head))
}

// DecodeOptions tunes decoding of delimited formats.
type DecodeOptions struct {
	// Header takes the first CSV/TSV record as the table head.
	Header bool
}

// ParseError wraps a failure to decode an input document.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s input: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Decode reads a whole document from r.
func Decode(r io.Reader, format Format, opts DecodeOptions) (*Document, error) {
	var (
		doc *Document
		err error
	)

	switch format {
	case FormatJSON5:
		doc, err = decodeJSON5(r)
	case FormatCSV:
		doc, err = decodeDelimited(r, ',', opts)
	case FormatTSV:
		doc, err = decodeDelimited(r, '\t', opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}
	return doc, nil
}

func decodeDelimited(r io.Reader, comma rune, opts DecodeOptions) (*Document, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	if comma == '\t' {
		cr.LazyQuotes = true
	}

	doc := &Document{}
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if first && opts.Header {
			doc.Options.Head = record
			first = false
			continue
		}
		first = false

		row := make([]any, len(record))
		for i, field := range record {
			row[i] = field
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

func decodeJSON5(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return &Document{}, nil
	}

	var raw any
	if err := json5.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	switch v := raw.(type) {
	case []any:
		rows, err := toRows(v)
		if err != nil {
			return nil, err
		}
		return &Document{Rows: rows}, nil
	case map[string]any:
		return toDocument(v)
	default:
		return nil, fmt.Errorf("document must be an array of rows or an object, got %s", kind(raw))
	}
}
