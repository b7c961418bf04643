package integration

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/room-engine/integration/runner"
)

var caseFlag = flag.String("case", "", "Name of test case to run (from integration/cases/)")
var errFlag = flag.String("err", "continue", "Error handling mode: 'continue' (run all steps) or 'exit' (stop on first failure)")
var variantFlag = flag.String("variant", "", "Override room variant for all test cases ('locked' or 'auto')")

func TestPlaythroughSuites(t *testing.T) {
	files, err := discoverTestFiles("cases")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no test files found in cases directory")

	var jobs []runner.TestJob
	for _, file := range files {
		expanded, err := runner.LoadTestSuiteWithExpansion(file, "cases")
		require.NoError(t, err, "loading %s", file)
		jobs = append(jobs, expanded...)
	}

	runJobs(t, newRunner(t, runner.ErrorHandlingContinue), jobs)
}

// TestSingleSuite runs named suites for debugging:
//
//	go test ./integration -run TestSingleSuite -case locked_chest,auto_chest -v
func TestSingleSuite(t *testing.T) {
	if *caseFlag == "" {
		t.Skip("Skipping single suite test (use -case flag to run)")
	}
	if *errFlag != "exit" && *errFlag != "continue" {
		t.Fatalf("Invalid -err flag value: %s (must be 'exit' or 'continue')", *errFlag)
	}

	var jobs []runner.TestJob
	for _, name := range strings.Split(*caseFlag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		file := filepath.Join("cases", name)
		if !strings.HasSuffix(file, ".json") {
			file += ".json"
		}
		expanded, err := runner.LoadTestSuiteWithExpansion(file, "cases")
		require.NoError(t, err)
		jobs = append(jobs, expanded...)
	}
	require.NotEmpty(t, jobs, "no valid test cases found in -case flag: %s", *caseFlag)

	runJobs(t, newRunner(t, runner.ErrorHandlingMode(*errFlag)), jobs)
}

func TestLoadTestSuiteWithExpansion(t *testing.T) {
	jobs, err := runner.LoadTestSuiteWithExpansion(filepath.Join("cases", "all_variants.json"), "cases")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "locked", jobs[0].Suite.Variant)
	assert.Equal(t, "auto", jobs[1].Suite.Variant)

	_, err = runner.LoadTestSuiteWithExpansion(filepath.Join("cases", "missing.json"), "cases")
	assert.Error(t, err)
}

func TestRunSuiteReportsFailures(t *testing.T) {
	where := "room_a"
	code := 0
	suite := runner.TestSuite{
		Name:     "wrong expectations",
		ExitCode: &code,
		Steps: []runner.TestStep{
			{Input: "get key", Expectations: runner.Expectations{Location: &where, OutputContains: []string{"a dragon"}}},
		},
	}

	result, err := newRunner(t, runner.ErrorHandlingContinue).RunSuite(context.Background(), suite)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.False(t, result.Results[0].Success)
	assert.ErrorContains(t, result.Results[0].Error, `location "test_room", expected "room_a"`)
	assert.ErrorContains(t, result.Results[0].Error, `output does not contain "a dragon"`)
	assert.Contains(t, result.Results[0].OutputText, "You pick up the gold key.")
	assert.ErrorContains(t, result.Error, "still running")
}

func newRunner(t *testing.T, mode runner.ErrorHandlingMode) *runner.Runner {
	r := runner.NewRunner()
	r.Timeout = 5 * time.Second
	r.ErrorHandlingMode = mode
	r.VariantOverride = *variantFlag
	r.Logger = func(format string, args ...interface{}) {
		t.Logf(format, args...)
	}
	return r
}

func runJobs(t *testing.T, r *runner.Runner, jobs []runner.TestJob) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var failed []string
	for i, job := range jobs {
		result, err := r.RunSuite(ctx, job.Suite)
		if err != nil && result.Error == nil {
			result.Error = err
		}
		result.Job = job

		for _, step := range result.Results {
			if !step.Success {
				t.Errorf("   ✗ %s / %s: %v\n%s", job.Name, step.StepName, step.Error, step.OutputText)
				failed = append(failed, fmt.Sprintf("%s: %s", job.Name, step.StepName))
			}
		}
		if result.Error != nil {
			t.Errorf("[%d/%d] FAILED: %s: %v", i+1, len(jobs), job.Name, result.Error)
			failed = append(failed, job.Name)
			continue
		}
		t.Logf("[%d/%d] PASSED: %s (%d steps, exit %d, %v)", i+1, len(jobs), job.Name, len(result.Results), result.ExitCode, result.Duration)
	}

	if len(failed) > 0 {
		t.Fatalf("%d playthrough failure(s)", len(failed))
	}
}

func discoverTestFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && strings.HasSuffix(path, ".json") {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}
