package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/jwebster45206/room-engine/internal/rooms"
	"github.com/jwebster45206/room-engine/pkg/location"
	"github.com/jwebster45206/room-engine/pkg/state"
	"github.com/jwebster45206/room-engine/pkg/storage"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner plays scripted suites against the dispatcher in-process.
type Runner struct {
	Timeout           time.Duration
	Logger            func(format string, args ...interface{})
	ErrorHandlingMode ErrorHandlingMode
	VariantOverride   string // If set, overrides the room variant for all test cases
}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{
		Timeout:           10 * time.Second,
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

// LoadTestSuite loads a test suite from a JSON file
func LoadTestSuite(filename string) (TestSuite, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := json.Unmarshal(content, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse JSON in %s: %w", filename, err)
	}

	return suite, nil
}

// LoadTestSuiteWithExpansion loads a test suite and expands it if it's a sequence
// Returns a list of actual test suites (expanded from the sequence if needed)
func LoadTestSuiteWithExpansion(filename string, casesDir string) ([]TestJob, error) {
	suite, err := LoadTestSuite(filename)
	if err != nil {
		return nil, err
	}

	if !suite.IsSequence() {
		return []TestJob{{
			Name:     suite.Name,
			Suite:    suite,
			CaseFile: filename,
		}}, nil
	}

	var jobs []TestJob
	for _, caseFile := range suite.Cases {
		casePath := filepath.Join(casesDir, caseFile)

		// Recursively load (in case a sequence references another sequence)
		subJobs, err := LoadTestSuiteWithExpansion(casePath, casesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load case '%s' referenced by sequence '%s': %w", caseFile, suite.Name, err)
		}

		jobs = append(jobs, subJobs...)
	}

	return jobs, nil
}

// RunSuite plays every step of the suite, then checks each step's expectations
// against the turn it produced.
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Job: TestJob{
			Name:  suite.Name,
			Suite: suite,
		},
		Results: make([]TestResult, 0, len(suite.Steps)),
	}

	variant := suite.Variant
	if r.VariantOverride != "" {
		variant = r.VariantOverride
	}
	if variant == "" {
		variant = rooms.VariantLocked
	}
	startID := suite.Start
	if startID == "" {
		startID = rooms.StartLocation
	}

	registry, err := rooms.NewRegistry(variant)
	if err != nil {
		return result, fmt.Errorf("failed to build rooms: %w", err)
	}

	journal := storage.NewMockJournal()
	dispatcher, err := location.NewDispatcher(registry, startID,
		location.WithJournal(journal),
		location.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		return result, fmt.Errorf("failed to create dispatcher: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	out := &bytes.Buffer{}
	script := newScriptReader(suite.Steps, out, cancel)
	gs := state.NewGameState(startID)
	result.GameState = gs.ID

	code, runErr := dispatcher.Run(ctx, location.NewSession(gs, script, out, location.WithWidth(0)))
	result.ExitCode = code
	result.Duration = time.Since(start)
	if runErr != nil && !script.exhausted() {
		result.Error = fmt.Errorf("game did not finish: %w", runErr)
		return result, result.Error
	}

	recs, err := journal.Entries(ctx, gs.ID)
	if err != nil {
		return result, fmt.Errorf("failed to read turns: %w", err)
	}

	for i, step := range suite.Steps {
		stepName := step.Name
		if stepName == "" {
			stepName = fmt.Sprintf("step %d (%q)", i+1, step.Input)
		}

		tr := TestResult{
			TestName:   suite.Name,
			StepName:   stepName,
			OutputText: script.outputFor(i),
		}
		if i >= len(recs) {
			tr.Error = fmt.Errorf("the game ended before this step was played")
		} else {
			tr.Error = r.validateExpectations(step.Expectations, recs[i], tr.OutputText)
		}
		tr.Success = tr.Error == nil
		result.Results = append(result.Results, tr)

		if r.Logger != nil {
			status := "PASS"
			if !tr.Success {
				status = "FAIL: " + tr.Error.Error()
			}
			r.Logger("  %s / %s: %s", suite.Name, stepName, status)
		}

		if !tr.Success && r.ErrorHandlingMode == ErrorHandlingExit {
			break
		}
	}

	if suite.ExitCode != nil && runErr == nil && code != *suite.ExitCode {
		result.Error = fmt.Errorf("exit code %d, expected %d", code, *suite.ExitCode)
	}
	if suite.ExitCode != nil && runErr != nil {
		result.Error = fmt.Errorf("expected exit code %d, but the game was still running when the script ended", *suite.ExitCode)
	}

	return result, nil
}

func (r *Runner) validateExpectations(expect Expectations, rec state.TurnRecord, output string) error {
	var failures []string

	if expect.Intent != nil && rec.Intent != *expect.Intent {
		failures = append(failures, fmt.Sprintf("intent %q, expected %q", rec.Intent, *expect.Intent))
	}

	if expect.Location != nil {
		where := rec.Next
		if rec.Terminated {
			where = rec.Location
		}
		if where != *expect.Location {
			failures = append(failures, fmt.Sprintf("location %q, expected %q", where, *expect.Location))
		}
	}

	if expect.Inventory != nil {
		got := slices.Clone(rec.Inventory)
		want := slices.Clone(expect.Inventory)
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			failures = append(failures, fmt.Sprintf("inventory %v, expected %v", rec.Inventory, expect.Inventory))
		}
	}

	for _, flag := range expect.Flags {
		if !slices.Contains(rec.Flags, flag) {
			failures = append(failures, fmt.Sprintf("flag %q is not set", flag))
		}
	}

	if expect.Terminated != nil && rec.Terminated != *expect.Terminated {
		failures = append(failures, fmt.Sprintf("terminated %v, expected %v", rec.Terminated, *expect.Terminated))
	}

	for _, s := range expect.OutputContains {
		if !strings.Contains(output, s) {
			failures = append(failures, fmt.Sprintf("output does not contain %q", s))
		}
	}
	for _, s := range expect.OutputNotContains {
		if strings.Contains(output, s) {
			failures = append(failures, fmt.Sprintf("output contains %q", s))
		}
	}
	if expect.OutputRegex != "" {
		re, err := regexp.Compile(expect.OutputRegex)
		if err != nil {
			failures = append(failures, fmt.Sprintf("invalid output_regex: %v", err))
		} else if !re.MatchString(output) {
			failures = append(failures, fmt.Sprintf("output does not match %q", expect.OutputRegex))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}
