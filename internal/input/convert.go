package input

import (
	"fmt"

	"github.com/dedene/termtable/internal/color"
	"github.com/dedene/termtable/internal/table"
)

// Ceilings for sizes read from documents.
const (
	maxSpan  = 1000
	maxWidth = 4096
)

// clamp converts a decoded number to an int in [0, ceiling]. NaN and
// negative values become 0, which the table treats as unset.
func clamp(n float64, ceiling int) int {
	if !(n > 0) {
		return 0
	}
	if n > float64(ceiling) {
		return ceiling
	}
	return int(n)
}

// toDocument maps the object form:
//
//	{head, rows, chars, style, colWidths, colAligns, wideChars, balanceSpans}
func toDocument(m map[string]any) (*Document, error) {
	doc := &Document{}
	var err error

	if v, ok := m["rows"]; ok {
		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("rows: expected array, got %s", kind(v))
		}
		if doc.Rows, err = toRows(list); err != nil {
			return nil, err
		}
	}

	if v, ok := m["head"]; ok {
		if doc.Options.Head, err = toStrings("head", v); err != nil {
			return nil, err
		}
	}

	if v, ok := m["chars"]; ok {
		if doc.Options.Chars, err = toChars(v); err != nil {
			return nil, err
		}
	}

	if v, ok := m["style"]; ok {
		if doc.Options.Style, doc.Border, err = toTableStyle(v); err != nil {
			return nil, err
		}
	}

	if v, ok := m["colWidths"]; ok {
		if doc.Options.ColWidths, err = toInts("colWidths", v); err != nil {
			return nil, err
		}
	}

	if v, ok := m["colAligns"]; ok {
		names, err := toStrings("colAligns", v)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			doc.Options.ColAligns = append(doc.Options.ColAligns, table.ParseAlign(n))
		}
	}

	if v, ok := m["wideChars"].(bool); ok {
		doc.Options.WideChars = v
	}
	if v, ok := m["balanceSpans"].(bool); ok {
		doc.Options.BalanceSpans = v
	}

	return doc, nil
}

func toRows(list []any) ([][]any, error) {
	rows := make([][]any, len(list))
	for i, v := range list {
		cells, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("rows[%d]: expected array, got %s", i, kind(v))
		}
		row := make([]any, len(cells))
		for j, c := range cells {
			cell, err := toCell(c)
			if err != nil {
				return nil, fmt.Errorf("rows[%d][%d]: %w", i, j, err)
			}
			row[j] = cell
		}
		rows[i] = row
	}
	return rows, nil
}

// toCell keeps primitives as decoded and turns objects into rich cells.
func toCell(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		if _, isList := v.([]any); isList {
			return nil, fmt.Errorf("cell must be a value or an object, got array")
		}
		return v, nil
	}

	r := table.Rich{Content: m["content"]}
	if _, nested := r.Content.(map[string]any); nested {
		return nil, fmt.Errorf("content: expected a value, got object")
	}
	if n, ok := m["colSpan"].(float64); ok {
		r.ColSpan = clamp(n, maxSpan)
	}
	if n, ok := m["rowSpan"].(float64); ok {
		r.RowSpan = clamp(n, maxSpan)
	}
	if s, ok := m["style"]; ok {
		style, err := toColorStyle(s)
		if err != nil {
			return nil, err
		}
		r.Style = style
	}
	return r, nil
}

func toColorStyle(v any) (*color.Style, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("style: expected object, got %s", kind(v))
	}

	s := &color.Style{}
	var err error
	if c, ok := m["color"]; ok {
		if s.Color, err = toStrings("style.color", c); err != nil {
			return nil, err
		}
	}
	if b, ok := m["background"]; ok {
		if s.Background, err = toStrings("style.background", b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// toTableStyle also reports an explicit boolean border setting.
func toTableStyle(v any) (table.Style, *bool, error) {
	var s table.Style
	m, ok := v.(map[string]any)
	if !ok {
		return s, nil, fmt.Errorf("style: expected object, got %s", kind(v))
	}

	var err error
	if h, ok := m["head"]; ok {
		if s.Head, err = toStrings("style.head", h); err != nil {
			return s, nil, err
		}
	}

	var border *bool
	switch b := m["border"].(type) {
	case nil:
	case bool:
		s.NoBorder = !b
		border = &b
	default:
		if s.Border, err = toStrings("style.border", b); err != nil {
			return s, nil, err
		}
	}

	if c, ok := m["compact"].(bool); ok {
		s.Compact = c
	}
	if p, ok := m["padding"].(float64); ok {
		s.Padding = clamp(p, maxWidth)
	}
	return s, border, nil
}

func toChars(v any) (table.CharsOverride, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("chars: expected object, got %s", kind(v))
	}

	o := make(table.CharsOverride, len(m))
	for k, g := range m {
		s, ok := g.(string)
		if !ok {
			return nil, fmt.Errorf("chars.%s: expected string, got %s", k, kind(g))
		}
		o[table.Glyph(k)] = s
	}
	return o, nil
}

// toStrings accepts a single string or an array of strings.
func toStrings(field string, v any) ([]string, error) {
	switch x := v.(type) {
	case string:
		return []string{x}, nil
	case []any:
		out := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d]: expected string, got %s", field, i, kind(e))
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: expected string or array, got %s", field, kind(v))
	}
}

func toInts(field string, v any) ([]int, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected array, got %s", field, kind(v))
	}
	out := make([]int, len(list))
	for i, e := range list {
		switch n := e.(type) {
		case float64:
			out[i] = clamp(n, maxWidth)
		case nil:
			// leaves the computed width in place
		default:
			return nil, fmt.Errorf("%s[%d]: expected number, got %s", field, i, kind(e))
		}
	}
	return out, nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
