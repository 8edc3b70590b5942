// Package render produces terminal output for checker reports.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dshills/opcritic/internal/report"
)

// severityColors maps each grade to its terminal color: red, yellow,
// blue, green.
var severityColors = map[report.Severity]color.Attribute{
	report.SevError:   color.FgHiRed,
	report.SevHint:    color.FgHiYellow,
	report.SevComment: color.FgHiBlue,
	report.SevPass:    color.FgHiGreen,
}

// Line colors a diagnostic line according to its grade. With colored
// false the text is returned unchanged.
func Line(sev report.Severity, text string, colored bool) string {
	attr, ok := severityColors[sev]
	if !ok || !colored {
		return text
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(text)
}

// Header returns the banner emitted before the first diagnostic of an
// operation.
func Header(name string) string {
	return fmt.Sprintf("Checking operation %s for consistency.\n%s", name, strings.Repeat("= ", 40))
}

// Summary renders the per-operation final grades and the grade tally.
func Summary(r *report.Report, colored bool) string {
	var b strings.Builder

	b.WriteString("Summary\n")
	for _, name := range r.Names() {
		sev := r.Results[name]
		fmt.Fprintf(&b, "  %-16s %s\n", name, Line(sev, sev.String(), colored))
	}

	counts := r.Counts()
	fmt.Fprintf(&b, "%d checked: %d error, %d hint, %d comment, %d pass\n",
		len(r.Results),
		counts[report.SevError], counts[report.SevHint],
		counts[report.SevComment], counts[report.SevPass])
	return b.String()
}
