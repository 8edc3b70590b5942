package render

import (
	"strings"
	"testing"

	"github.com/dshills/opcritic/internal/report"
)

func TestHeader(t *testing.T) {
	h := Header("RX")
	if !strings.Contains(h, "Checking operation RX for consistency.") {
		t.Errorf("header missing banner: %q", h)
	}
	if !strings.Contains(h, strings.Repeat("= ", 40)) {
		t.Errorf("header missing rule: %q", h)
	}
}

func TestLineUncolored(t *testing.T) {
	got := Line(report.SevError, "broken", false)
	if got != "broken" {
		t.Errorf("Line uncolored = %q", got)
	}
}

func TestLineColored(t *testing.T) {
	got := Line(report.SevError, "broken", true)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("colored line has no escape sequence: %q", got)
	}
	if !strings.Contains(got, "broken") {
		t.Errorf("colored line lost its text: %q", got)
	}
	if Line(report.SevPass, "fine", true) == Line(report.SevError, "fine", true) {
		t.Error("pass and error should color differently")
	}
}

func TestLineUnknownSeverity(t *testing.T) {
	if got := Line(report.Severity(42), "odd", true); got != "odd" {
		t.Errorf("unknown severity should pass through, got %q", got)
	}
}

func TestSummary(t *testing.T) {
	r := report.New()
	r.Record("PauliX", report.SevPass, "")
	r.Record("Broken", report.SevError, "")
	r.Record("Odd", report.SevComment, "")

	got := Summary(r, false)
	for _, want := range []string{
		"Summary",
		"PauliX",
		"Broken",
		"3 checked: 1 error, 0 hint, 1 comment, 1 pass",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	// Names are sorted.
	if strings.Index(got, "Broken") > strings.Index(got, "PauliX") {
		t.Error("summary not sorted by name")
	}
}
