package table

import "strings"

// renderBorder draws a horizontal line: left, then fill across every slot
// with mid between slots, then right.
func renderBorder(slots []int, left, mid, right, fill string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, w := range slots {
		if i > 0 {
			sb.WriteString(mid)
		}
		sb.WriteString(strings.Repeat(fill, w))
	}
	sb.WriteString(right)
	return sb.String()
}

func (r *renderer) slots() []int {
	out := make([]int, len(r.widths))
	for i, w := range r.widths {
		out[i] = slotWidth(w, r.pad)
	}
	return out
}

// hline renders a horizontal line and colors it. An all-empty line comes
// back as "" so the caller can drop it.
func (r *renderer) hline(left, mid, right, fill string) (string, error) {
	line := renderBorder(r.slots(), left, mid, right, fill)
	if line == "" {
		return "", nil
	}
	return r.paint(line)
}

func (r *renderer) top() (string, error) {
	c := r.chars
	return r.hline(c.TopLeft, c.TopMid, c.TopRight, c.Top)
}

func (r *renderer) separator() (string, error) {
	c := r.chars
	return r.hline(c.LeftMid, c.MidMid, c.RightMid, c.Mid)
}

func (r *renderer) bottom() (string, error) {
	c := r.chars
	return r.hline(c.BottomLeft, c.BottomMid, c.BottomRight, c.Bottom)
}
