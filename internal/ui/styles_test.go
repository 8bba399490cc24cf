package ui

import (
	"strings"
	"testing"
)

func TestSetColorEnabled(t *testing.T) {
	SetColorEnabled(false)
	if got := Title("presets"); got != "presets" {
		t.Errorf("Title() without color = %q, want plain text", got)
	}
	if got := Note("n"); got != "n" {
		t.Errorf("Note() without color = %q, want plain text", got)
	}

	SetColorEnabled(true)
	defer SetColorEnabled(false)
	if got := Title("presets"); !strings.Contains(got, "\x1b[") || !strings.Contains(got, "presets") {
		t.Errorf("Title() with color = %q, want styled text", got)
	}
}
