package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Debug("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written without verbose:\n%s", out)
	}
	if !strings.Contains(out, "[WARNING] shown") {
		t.Errorf("expected warning line, got:\n%s", out)
	}

	buf.Reset()
	l = New(&buf, true)
	l.Debug("visible")
	if !strings.Contains(buf.String(), "[DEBUG] visible") {
		t.Errorf("expected debug line with verbose, got:\n%s", buf.String())
	}
}

func TestLineFormatter_SortedFields(t *testing.T) {
	fmtr := lineFormatter{}

	e := logrus.WithFields(logrus.Fields{
		"rows":   3,
		"format": "csv",
		"path":   "my file.csv",
	})
	e.Message = "decoded"
	e.Level = logrus.InfoLevel

	out, err := fmtr.Format(e)
	if err != nil {
		t.Fatalf("Unexpected error formatting log entry: %s", err.Error())
	}

	want := "[INFO] decoded format=csv path=\"my file.csv\" rows=3\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.IsLevelEnabled(logrus.ErrorLevel) {
		t.Error("Discard logger should not enable error level")
	}
}
