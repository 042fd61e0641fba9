package harness

// Expected error kinds a test case may name.
const (
	ErrorEncoding = "encoding"
)

// TestCase captures a single greeting scenario.
// Exactly one of Subject, SubjectUTF16 and SubjectHex is set.
type TestCase struct {
	Name         string   `yaml:"name"`
	Subject      *string  `yaml:"subject"`
	SubjectUTF16 []uint16 `yaml:"subject_utf16"`
	SubjectHex   string   `yaml:"subject_hex"` // raw bytes, possibly invalid UTF-8
	Greeting     *string  `yaml:"greeting"`    // exact expected greeting
	Contains     []string `yaml:"contains"`    // substrings the greeting must contain
	Error        string   `yaml:"error"`       // expected error kind, "" for success
}

// TestSuite represents a collection of test cases parsed from a YAML file.
type TestSuite struct {
	Name  string     `yaml:"suite"`
	Path  string     `yaml:"-"`
	Cases []TestCase `yaml:"cases"`
}

// CaseName returns the display name for tc: "suite > case".
func (s *TestSuite) CaseName(tc *TestCase) string {
	return s.Name + " > " + tc.Name
}
