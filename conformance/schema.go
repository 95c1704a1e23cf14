package conformance

// Fixture represents one end-to-end scenario from a YAML fixture file:
// source text to compile and run, and the outcome to check it against.
// This is a direct descendant of the teacher's TestSuite/TestCase shape,
// flattened to one case per file since this language's scenarios (§8)
// don't need the teacher's setup/teardown/permission machinery.
type Fixture struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Source      string      `yaml:"source"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation describes the one outcome a fixture is allowed to have:
// either successful output, a compile-time failure, or a runtime
// failure. Exactly one of the three should be set.
type Expectation struct {
	Stdout                string `yaml:"stdout,omitempty"`
	CompileErrorContains  string `yaml:"compile_error_contains,omitempty"`
	RuntimeErrorContains  string `yaml:"runtime_error_contains,omitempty"`
}
