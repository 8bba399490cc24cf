package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dedene/termtable/internal/color"
	"github.com/dedene/termtable/internal/config"
	"github.com/dedene/termtable/internal/input"
	"github.com/dedene/termtable/internal/logging"
	"github.com/dedene/termtable/internal/table"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestRender_Stdin(t *testing.T) {
	out, _, err := run(t, "[['a', 'b'], ['c', 'd']]", "--color", "never", "render")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := strings.Join([]string{
		"┌───┬───┐",
		"│ a │ b │",
		"│ c │ d │",
		"└───┴───┘",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_CSVFile(t *testing.T) {
	path := writeFile(t, "people.csv", "Name,Age\nJohn,28\n")

	out, _, err := run(t, "", "--color", "never", "render", path, "--header", "--preset", "ascii")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := strings.Join([]string{
		"+------+-----+",
		"| Name | Age |",
		"+------+-----+",
		"| John | 28  |",
		"+------+-----+",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_FlagsOverrideDocument(t *testing.T) {
	doc := `{head: ['k', 'v'], rows: [['a', 'b']], colAligns: ['left', 'left']}`

	out, _, err := run(t, doc, "--color", "never", "render", "--head", "key,value", "--align", "left,right", "--no-border", "--compact")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := strings.Join([]string{
		"│key│value│",
		"├───┼─────┤",
		"│a  │    b│",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ColorAlways(t *testing.T) {
	out, _, err := run(t, "[['x']]", "--color", "always", "render", "--head", "h", "--head-color", "red")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "\x1b[31mh") {
		t.Errorf("header should be red, got %q", out)
	}
}

func TestRender_ColorNeverStripsStyles(t *testing.T) {
	doc := `{rows: [[{content: 'x', style: {color: 'red'}}]], style: {head: 'blue', border: ['gray']}, head: ['h']}`

	out, _, err := run(t, doc, "--color", "never", "render")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if strings.Contains(out, "\x1b") {
		t.Errorf("output should carry no escape sequences, got %q", out)
	}
}

func TestRender_InvalidColor(t *testing.T) {
	_, errOut, err := run(t, "[['x']]", "--color", "never", "render", "--border-color", "#12345")
	if got := ExitCode(err); got != exitColor {
		t.Errorf("ExitCode = %d, want %d (err %v)", got, exitColor, err)
	}
	if !strings.Contains(errOut, "Suggestion:") {
		t.Errorf("stderr should carry a suggestion, got %q", errOut)
	}
}

func TestRender_ParseError(t *testing.T) {
	_, errOut, err := run(t, "[['x'", "render")
	if got := ExitCode(err); got != exitInput {
		t.Errorf("ExitCode = %d, want %d (err %v)", got, exitInput, err)
	}
	if !strings.Contains(errOut, "json5") {
		t.Errorf("stderr should name the format, got %q", errOut)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "", "render", "--format", "xml")
	if got := ExitCode(err); got != exitInput {
		t.Errorf("ExitCode = %d, want %d (err %v)", got, exitInput, err)
	}
}

func TestRender_MissingFile(t *testing.T) {
	_, errOut, err := run(t, "", "render", filepath.Join(t.TempDir(), "missing.csv"))
	if got := ExitCode(err); got != exitGeneral {
		t.Errorf("ExitCode = %d, want %d (err %v)", got, exitGeneral, err)
	}
	if !strings.Contains(errOut, "File not found") {
		t.Errorf("stderr should suggest checking the path, got %q", errOut)
	}
}

func TestRender_JSON(t *testing.T) {
	out, _, err := run(t, "[['a', {content: 'b', colSpan: 2}]]", "--json", "render")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	var got struct {
		Rows    [][]any `json:"rows"`
		Columns int     `json:"columns"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Columns != 3 {
		t.Errorf("columns = %d, want 3", got.Columns)
	}
	want := []any{"a", map[string]any{"content": "b", "colSpan": float64(2)}}
	if diff := cmp.Diff(want, got.Rows[0]); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Plain(t *testing.T) {
	out, _, err := run(t, "[['a', null, 1], [{content: 'b', rowSpan: 2}]]", "--plain", "render", "--head", "x,y,z")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := "x\ty\tz\na\t\t1\nb\n"
	if out != want {
		t.Errorf("plain output = %q, want %q", out, want)
	}
}

func TestRender_VerboseLogs(t *testing.T) {
	_, errOut, err := run(t, "[['a']]", "-v", "--color", "never", "render")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"[DEBUG] decoded input", "format=json5", "preset=default"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("verbose log should contain %q, got:\n%s", want, errOut)
		}
	}
}

func TestRenderCmd_OptionsLayering(t *testing.T) {
	t.Setenv(config.EnvPreset, "")

	no := false
	cfg := &config.File{Preset: "ascii", Padding: 2, Border: &no, HeadColor: []string{"red"}}
	doc := &input.Document{Options: table.Options{
		Chars: table.CharsOverride{table.GlyphMiddle: ":"},
		Style: table.Style{Border: []string{"gray"}},
	}}

	c := &RenderCmd{HeadColor: []string{"cyan"}, Widths: []int{0, 5}, Wide: true}
	opts, err := c.options(doc, cfg, logging.Discard())
	if err != nil {
		t.Fatalf("options() error: %v", err)
	}

	want := table.ASCIIChars.With(table.CharsOverride{table.GlyphMiddle: ":"}).Override()
	if diff := cmp.Diff(want, opts.Chars); diff != "" {
		t.Errorf("chars mismatch (-want +got):\n%s", diff)
	}
	wantStyle := table.Style{Head: []string{"cyan"}, Border: []string{"gray"}, NoBorder: true, Padding: 2}
	if diff := cmp.Diff(wantStyle, opts.Style); diff != "" {
		t.Errorf("style mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 5}, opts.ColWidths); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	if !opts.WideChars {
		t.Error("--wide should enable WideChars")
	}

	c = &RenderCmd{Padding: -1}
	if _, err := c.options(doc, cfg, logging.Discard()); ExitCode(err) != exitUsage {
		t.Errorf("negative padding should be a usage error, got %v", err)
	}
}

func TestRenderCmd_DocumentBorderBeatsConfig(t *testing.T) {
	t.Setenv(config.EnvPreset, "")

	no := false
	cfg := &config.File{Border: &no}

	yes := true
	doc := &input.Document{Border: &yes}
	opts, err := (&RenderCmd{}).options(doc, cfg, logging.Discard())
	if err != nil {
		t.Fatalf("options() error: %v", err)
	}
	if opts.Style.NoBorder {
		t.Error("style.border: true in the document should win over config border=false")
	}

	opts, err = (&RenderCmd{}).options(&input.Document{}, cfg, logging.Discard())
	if err != nil {
		t.Fatalf("options() error: %v", err)
	}
	if !opts.Style.NoBorder {
		t.Error("config border=false should apply when the document is silent")
	}

	opts, err = (&RenderCmd{NoBorder: true}).options(doc, cfg, logging.Discard())
	if err != nil {
		t.Fatalf("options() error: %v", err)
	}
	if !opts.Style.NoBorder {
		t.Error("--no-border should win over the document")
	}
}

func TestRender_DocumentBorderBeatsConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvPreset, "")
	no := false
	if err := config.WriteConfig(&config.File{Preset: "ascii", Border: &no, Color: "never"}); err != nil {
		t.Fatalf("WriteConfig() error: %v", err)
	}

	var out strings.Builder
	oldIn, oldOut := stdin, stdout
	stdin, stdout = strings.NewReader(`{rows: [['a']], style: {border: true}}`), &out
	t.Cleanup(func() { stdin, stdout = oldIn, oldOut })

	if err := Execute([]string{"render"}); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if out.String() != "+---+\n| a |\n+---+\n" {
		t.Errorf("render = %q, want bordered table", out.String())
	}
}

func TestStripStyles(t *testing.T) {
	style := &color.Style{Color: []string{"red"}}
	rows := [][]any{{"a", table.Rich{Content: "b", ColSpan: 2, Style: style}, &table.Rich{Content: "c", Style: style}, (*table.Rich)(nil)}}
	opts := &table.Options{Style: table.Style{Head: []string{"blue"}, Border: []string{"gray"}}}

	got, err := stripStyles(rows, opts)
	if err != nil {
		t.Fatalf("stripStyles() error: %v", err)
	}

	want := [][]any{{"a", table.Rich{Content: "b", ColSpan: 2}, table.Rich{Content: "c"}, (*table.Rich)(nil)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if opts.Style.Head != nil || opts.Style.Border != nil {
		t.Errorf("table styles should be cleared, got %+v", opts.Style)
	}
	if rows[0][1].(table.Rich).Style == nil {
		t.Error("input rows should not be modified")
	}

	bad := [][]any{{table.Rich{Content: "x", Style: &color.Style{Background: []string{"nope"}}}}}
	if _, err := stripStyles(bad, &table.Options{}); err == nil {
		t.Error("invalid cell colors should still be reported")
	}
}
