package harness

import (
	"fmt"
	"io"
)

// Reporter outputs test results.
type Reporter struct {
	Out     io.Writer
	Verbose bool
}

// NewReporter creates a reporter that writes to the given output.
// Passing cases are only listed when verbose is set.
func NewReporter(out io.Writer, verbose bool) *Reporter {
	return &Reporter{Out: out, Verbose: verbose}
}

// ReportSuite outputs one line per case of suite, with failure details
// indented below failing cases.
func (r *Reporter) ReportSuite(suite *TestSuite, results []TestResult) {
	for _, result := range results {
		name := suite.CaseName(&result.TestCase)
		if result.Passed {
			if r.Verbose {
				fmt.Fprintf(r.Out, "PASS: %s (%q)\n", name, result.Actual.Greeting)
			}
			continue
		}
		fmt.Fprintf(r.Out, "FAIL: %s\n", name)
		for _, failure := range result.Failures {
			fmt.Fprintf(r.Out, "  %s\n", failure)
		}
	}
}

// ReportSummary outputs the final summary.
func (r *Reporter) ReportSummary(summary Summary) {
	fmt.Fprintf(r.Out, "\n%d greetings checked, %d passed, %d failed\n", summary.Total, summary.Passed, summary.Failed)
}
