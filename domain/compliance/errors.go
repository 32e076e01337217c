package compliance

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	ErrUnknownTestType = errors.New("unknown test type")
	ErrMissingColumns  = errors.New("missing required columns")
	ErrExecution       = errors.New("test execution error")
)

// MissingColumnsError reports every required column absent from a roster,
// in catalog order.
type MissingColumnsError struct {
	TestType string
	Columns  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns for %s: %s", e.TestType, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}

// ExecutionError wraps a computation fault raised while a rule was running.
// It is contained at the rule-execution boundary and never crashes the process.
type ExecutionError struct {
	TestType string
	Cause    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("test execution error for %s: %v", e.TestType, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return ErrExecution
}

func NewUnknownTestTypeError(testType string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTestType, testType)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnknownTestType) || errors.Is(err, ErrMissingColumns)
}

func IsExecutionError(err error) bool {
	return errors.Is(err, ErrExecution)
}
