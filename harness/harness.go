package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
)

var errNoSuites = errors.New("no YAML suites found")

// Config holds the configuration for running the harness.
type Config struct {
	TestPaths   []string
	NamePattern string // regexp matched against "suite > case"
	Output      io.Writer
	ErrOutput   io.Writer
	Verbose     bool
	Logger      *slog.Logger
}

// LoadSuites parses every suite under cfg.TestPaths and keeps only the
// cases selected by cfg.NamePattern. Suites left without cases are dropped.
func LoadSuites(cfg Config) ([]*TestSuite, error) {
	var filter *regexp.Regexp
	if cfg.NamePattern != "" {
		re, err := regexp.Compile(cfg.NamePattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		filter = re
	}

	files, err := CollectSuiteFiles(cfg.TestPaths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errNoSuites
	}

	var suites []*TestSuite
	for _, file := range files {
		suite, err := ParseFile(file)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}
		if filter != nil {
			selected := suite.Cases[:0]
			for i := range suite.Cases {
				if filter.MatchString(suite.CaseName(&suite.Cases[i])) {
					selected = append(selected, suite.Cases[i])
				}
			}
			suite.Cases = selected
		}
		if len(suite.Cases) > 0 {
			suites = append(suites, suite)
		}
	}
	return suites, nil
}

// List prints the name of every selected case, one per line.
// Returns 0 on success, 1 on error.
func List(cfg Config) int {
	suites, err := LoadSuites(cfg)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}
	for _, suite := range suites {
		for i := range suite.Cases {
			fmt.Fprintln(cfg.Output, suite.CaseName(&suite.Cases[i]))
		}
	}
	return 0
}

// Run greets every selected case through the bridge and reports the results.
// Returns 0 when every case passes, 1 otherwise.
func Run(cfg Config) int {
	suites, err := LoadSuites(cfg)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}

	runner := NewRunner(cfg.Logger)
	reporter := NewReporter(cfg.Output, cfg.Verbose)
	var all []TestResult
	for _, suite := range suites {
		results := runner.RunSuite(suite)
		reporter.ReportSuite(suite, results)
		all = append(all, results...)
	}

	summary := Summarize(all)
	reporter.ReportSummary(summary)
	if summary.Failed > 0 {
		return 1
	}
	return 0
}
