package harness

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/feather-lang/greetbridge"
)

// TestResult holds the outcome of running a single test case.
type TestResult struct {
	TestCase TestCase
	Passed   bool
	Actual   ActualResult
	Failures []string
}

// ActualResult captures what actually happened when the test ran.
type ActualResult struct {
	Greeting string
	Error    error
}

// Runner executes test suites against the bridge in-process.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger}
}

// RunSuite executes all test cases in a suite and returns the results.
func (r *Runner) RunSuite(suite *TestSuite) []TestResult {
	results := make([]TestResult, 0, len(suite.Cases))
	for _, tc := range suite.Cases {
		result := r.RunTest(tc)
		r.logger.Debug("case finished",
			slog.String("suite", suite.Name),
			slog.String("case", tc.Name),
			slog.Bool("passed", result.Passed))
		results = append(results, result)
	}
	return results
}

// RunTest executes a single test case and returns the result.
func (r *Runner) RunTest(tc TestCase) TestResult {
	result := TestResult{
		TestCase: tc,
		Passed:   true,
	}
	fail := func(format string, args ...any) {
		result.Passed = false
		result.Failures = append(result.Failures, fmt.Sprintf(format, args...))
	}

	g, err := construct(tc)
	result.Actual.Error = err
	if err != nil {
		switch {
		case tc.Error == ErrorEncoding && errors.Is(err, greetbridge.ErrEncoding):
		case tc.Error == ErrorEncoding:
			fail("error mismatch:\n  expected: encoding error\n  actual:   %v", err)
		default:
			fail("unexpected error: %v", err)
		}
		return result
	}
	defer g.Close()

	if tc.Error != "" {
		fail("expected %s error, construction succeeded", tc.Error)
		return result
	}

	first, err := g.Greet()
	if err != nil {
		fail("greet failed: %v", err)
		return result
	}
	result.Actual.Greeting = first

	second, err := g.Greet()
	if err != nil || second != first {
		fail("greeting not deterministic:\n  first:  %q\n  second: %q (err %v)", first, second, err)
	}

	if !strings.Contains(first, g.Subject()) {
		fail("greeting %q does not contain subject %q", first, g.Subject())
	}

	if tc.Greeting != nil && *tc.Greeting != first {
		fail("greeting mismatch:\n  expected: %q\n  actual:   %q", *tc.Greeting, first)
	}

	for _, want := range tc.Contains {
		if !strings.Contains(first, want) {
			fail("greeting %q does not contain %q", first, want)
		}
	}

	units, err := g.GreetUTF16()
	if err != nil {
		fail("UTF-16 greet failed: %v", err)
	} else if back, err := greetbridge.DecodeUTF16(units); err != nil || back != first {
		fail("UTF-16 greeting does not round-trip: %q (err %v)", back, err)
	}

	if err := g.Close(); err != nil {
		fail("close failed: %v", err)
	}
	if _, err := g.Greet(); !errors.Is(err, greetbridge.ErrClosed) {
		fail("greet after close: expected ErrClosed, got %v", err)
	}

	return result
}

func construct(tc TestCase) (*greetbridge.Greeter, error) {
	switch {
	case tc.Subject != nil:
		return greetbridge.New(*tc.Subject)
	case tc.SubjectUTF16 != nil:
		return greetbridge.NewUTF16(tc.SubjectUTF16)
	default:
		b, err := hex.DecodeString(strings.Join(strings.Fields(tc.SubjectHex), ""))
		if err != nil {
			return nil, fmt.Errorf("subject_hex: %w", err)
		}
		return greetbridge.New(string(b))
	}
}

// Summary holds aggregate statistics about a test run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize calculates summary statistics from test results.
func Summarize(results []TestResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}
