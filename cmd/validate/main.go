package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/jwebster45206/room-engine/integration/runner"
	"github.com/jwebster45206/room-engine/internal/rooms"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <case.json> [case.json...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		validator := &CaseValidator{}
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}

	fmt.Println("Case files are valid!")
}

// CaseValidator lints playthrough case files before they are run.
type CaseValidator struct {
	errors []string
}

func (v *CaseValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("case file must have .json extension: %s", baseName)
	}
	if !isValidID(strings.TrimSuffix(baseName, ".json")) {
		return fmt.Errorf("case filename '%s' must be lowercase snake_case (e.g., my_case.json, not my-case.json or MyCase.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var suite runner.TestSuite
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&suite); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateSuite(&suite, filepath.Dir(filename))

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *CaseValidator) validateSuite(suite *runner.TestSuite, dir string) {
	if suite.Name == "" {
		v.addError("case has no name")
	}

	if suite.IsSequence() {
		if len(suite.Steps) > 0 {
			v.addError("a sequence may not also define steps")
		}
		for _, c := range suite.Cases {
			if _, err := os.Stat(filepath.Join(dir, c)); err != nil {
				v.addError(fmt.Sprintf("referenced case '%s' not found", c))
			}
		}
		return
	}

	if len(suite.Steps) == 0 {
		v.addError("case has no steps")
	}

	variant := suite.Variant
	if variant == "" {
		variant = rooms.VariantLocked
	}
	registry, err := rooms.NewRegistry(variant)
	if err != nil {
		v.addError(fmt.Sprintf("variant '%s' is not one of %v", suite.Variant, rooms.Variants()))
		return
	}
	known := registry.IDs()
	if suite.Start != "" {
		v.validateIDFormat("start", suite.Start)
		known = append(known, suite.Start)
	}

	if suite.ExitCode != nil && *suite.ExitCode != 0 && *suite.ExitCode != 1 {
		v.addError(fmt.Sprintf("exit_code %d is never produced (expected 0 or 1)", *suite.ExitCode))
	}

	for i, step := range suite.Steps {
		v.validateExpectations(&step.Expectations, fmt.Sprintf("step %d", i+1), known)
	}
}

func (v *CaseValidator) validateExpectations(expect *runner.Expectations, context string, known []string) {
	if expect.Location != nil && !slices.Contains(known, *expect.Location) {
		v.addError(fmt.Sprintf("%s expects unknown location '%s'", context, *expect.Location))
	}

	for _, flag := range expect.Flags {
		if !isValidID(flag) {
			v.addError(fmt.Sprintf("%s has invalid flag name '%s' - should be lowercase snake_case", context, flag))
		}
	}

	if expect.OutputRegex != "" {
		if _, err := regexp.Compile(expect.OutputRegex); err != nil {
			v.addError(fmt.Sprintf("%s has invalid output_regex: %v", context, err))
		}
	}
}

func (v *CaseValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *CaseValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}
