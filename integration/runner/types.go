package runner

import (
	"time"

	"github.com/google/uuid"
)

// TestSuite defines a scripted playthrough.
// Can either be a regular test with Steps, or a suite that references other Cases
type TestSuite struct {
	Name     string     `json:"name"`
	Variant  string     `json:"variant,omitempty"`   // Room variant, defaults to "locked"
	Start    string     `json:"start,omitempty"`     // Start location, defaults to the variant's start
	Steps    []TestStep `json:"steps,omitempty"`     // Used for regular tests
	ExitCode *int       `json:"exit_code,omitempty"` // Expected exit code once the steps run out
	Cases    []string   `json:"cases,omitempty"`     // Used for suite tests (list of case files)
}

// IsSequence returns true if this is a suite that sequences other cases
func (ts *TestSuite) IsSequence() bool {
	return len(ts.Cases) > 0
}

// TestStep is one line of player input and what should be true after the turn it drives.
type TestStep struct {
	Name         string       `json:"name,omitempty"`
	Input        string       `json:"input"`
	Expectations Expectations `json:"expect"`
}

// Expectations defines what to check after a test step executes
type Expectations struct {
	// Turn record properties - aligned with pkg/state/turn.go
	Intent     *string  `json:"intent,omitempty"`     // Debug form, e.g. "Get(golden key)"
	Location   *string  `json:"location,omitempty"`   // Location after the turn
	Inventory  []string `json:"inventory,omitempty"`  // Full inventory contents (order independent)
	Flags      []string `json:"flags,omitempty"`      // Flags that must be set
	Terminated *bool    `json:"terminated,omitempty"` // Turn ended the game

	// Output Analysis
	OutputContains    []string `json:"output_contains,omitempty"`
	OutputNotContains []string `json:"output_not_contains,omitempty"`
	OutputRegex       string   `json:"output_regex,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	TestName   string
	StepName   string
	Success    bool
	Error      error
	OutputText string
}

// TestJob represents a test suite to be executed
type TestJob struct {
	Name     string
	Suite    TestSuite
	CaseFile string
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Job       TestJob
	Results   []TestResult
	ExitCode  int
	Error     error
	Duration  time.Duration
	GameState uuid.UUID // ID of the gamestate used for this test
}
