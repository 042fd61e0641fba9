package harness

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile parses a test suite from the given file path.
func ParseFile(path string) (*TestSuite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	suite, err := Parse(f)
	if err != nil {
		return nil, err
	}
	suite.Path = path
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return suite, nil
}

// Parse parses a test suite from r.
func Parse(r io.Reader) (*TestSuite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var suite TestSuite
	if err := dec.Decode(&suite); err != nil {
		if err == io.EOF {
			return &suite, nil
		}
		return nil, fmt.Errorf("decode suite: %w", err)
	}

	for i := range suite.Cases {
		if err := validateCase(&suite.Cases[i]); err != nil {
			return nil, fmt.Errorf("case %d (%q): %w", i, suite.Cases[i].Name, err)
		}
	}
	return &suite, nil
}

func validateCase(tc *TestCase) error {
	if tc.Name == "" {
		return fmt.Errorf("missing name")
	}
	inputs := 0
	if tc.Subject != nil {
		inputs++
	}
	if tc.SubjectUTF16 != nil {
		inputs++
	}
	if tc.SubjectHex != "" {
		inputs++
	}
	if inputs != 1 {
		return fmt.Errorf("exactly one of subject, subject_utf16, subject_hex is required")
	}
	switch tc.Error {
	case "", ErrorEncoding:
	default:
		return fmt.Errorf("unknown error kind %q", tc.Error)
	}
	return nil
}
