package harness

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Result is the outcome of running one fixture.
type Result struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`

	// Pass is true until the first error is added.
	Pass bool `json:"pass"`

	// Errors holds the rendered diagnostics. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result.
func NewResult(name, path string) *Result {
	return &Result{
		Name:   name,
		Path:   path,
		Pass:   true,
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Report aggregates the results of a fixture run.
type Report struct {
	Results []*Result `json:"results"`
	Passed  int       `json:"passed"`
	Failed  int       `json:"failed"`
	Total   int       `json:"total"`
}

// Add appends r and updates the counters.
func (rep *Report) Add(r *Result) {
	rep.Results = append(rep.Results, r)
	rep.Total++
	if r.Pass {
		rep.Passed++
	} else {
		rep.Failed++
	}
}

// OK reports whether every fixture passed.
func (rep *Report) OK() bool {
	return rep.Failed == 0
}

// Summary is a one-line tally.
func (rep *Report) Summary() string {
	return fmt.Sprintf("%d passed, %d failed, %d total", rep.Passed, rep.Failed, rep.Total)
}

// WriteTable renders one row per fixture. Failing rows show the first line
// of their first diagnostic.
func (rep *Report) WriteTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Fixture", "Result", "Detail")
	for _, r := range rep.Results {
		status, detail := "pass", ""
		if !r.Pass {
			status = "FAIL"
			if len(r.Errors) > 0 {
				detail = firstLine(r.Errors[0])
			}
		}
		if err := table.Append([]string{r.Name, status, detail}); err != nil {
			return err
		}
	}
	return table.Render()
}

func firstLine(s string) string {
	for i, c := range s {
		if c == '\n' {
			return s[:i]
		}
	}
	return s
}
