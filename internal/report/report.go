package report

import "sort"

// Report holds the outcome of one checker invocation: the final grade
// and the accumulated diagnostic text per checked operation.
type Report struct {
	Results map[string]Severity
	Output  map[string]string
}

// New allocates an empty report.
func New() *Report {
	return &Report{
		Results: make(map[string]Severity),
		Output:  make(map[string]string),
	}
}

// Record stores the result for one checked operation.
func (r *Report) Record(name string, sev Severity, text string) {
	r.Results[name] = sev
	r.Output[name] = text
}

// Names returns the checked operation names in sorted order.
func (r *Report) Names() []string {
	names := make([]string, 0, len(r.Results))
	for name := range r.Results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Counts tallies operations per final grade.
func (r *Report) Counts() map[Severity]int {
	counts := make(map[Severity]int)
	for _, sev := range r.Results {
		counts[sev]++
	}
	return counts
}

// HasSeverity reports whether any operation finished at the given grade
// or worse.
func (r *Report) HasSeverity(threshold Severity) bool {
	for _, sev := range r.Results {
		if sev <= threshold {
			return true
		}
	}
	return false
}
