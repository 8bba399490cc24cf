package table

import (
	"fmt"
	"strconv"

	"github.com/dedene/termtable/internal/color"
)

// Rich is a cell with spans or a style. Any other value placed in a row is a
// primitive cell rendered by its string form; nil leaves the slot empty.
type Rich struct {
	Content any          `json:"content"`
	ColSpan int          `json:"colSpan,omitempty"`
	RowSpan int          `json:"rowSpan,omitempty"`
	Style   *color.Style `json:"style,omitempty"`
}

// cellSpec is the uniform shape every input cell is normalized into.
type cellSpec struct {
	content string
	colSpan int
	rowSpan int
	style   *color.Style
}

// normalize converts an input cell. skip is true for absent cells, which
// advance the column cursor without occupying a slot.
func normalize(cell any) (spec cellSpec, skip bool) {
	switch c := cell.(type) {
	case nil:
		return cellSpec{}, true
	case *Rich:
		if c == nil {
			return cellSpec{}, true
		}
		return normalizeRich(*c), false
	case Rich:
		return normalizeRich(c), false
	default:
		return cellSpec{content: stringify(c), colSpan: 1, rowSpan: 1}, false
	}
}

// Text returns the string a cell renders, before fitting and styling.
// Absent cells yield "".
func Text(cell any) string {
	spec, _ := normalize(cell)
	return spec.content
}

func normalizeRich(r Rich) cellSpec {
	return cellSpec{
		content: stringify(r.Content),
		colSpan: atLeastOne(r.ColSpan),
		rowSpan: atLeastOne(r.RowSpan),
		style:   r.Style,
	}
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(x)
	}
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
