package compliance

import (
	"fmt"

	"waypoint/domain/roster"
)

// Evaluate validates the roster against the catalog entry for testType, then
// runs the matching rule. Validation failures short-circuit before any
// statistic is computed; computation faults (including panics inside a rule)
// are contained at this boundary and come back as *ExecutionError.
//
// The call is stateless and side-effect free, so concurrent evaluations need
// no coordination.
func Evaluate(testType string, table *roster.Table) (result Result, err error) {
	required, lookupErr := RequiredColumns(testType)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if missing := table.MissingColumns(required); len(missing) > 0 {
		return nil, &MissingColumnsError{TestType: testType, Columns: missing}
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ExecutionError{TestType: testType, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	res, ruleErr := rules[testType](table)
	if ruleErr != nil {
		return nil, &ExecutionError{TestType: testType, Cause: ruleErr}
	}
	return res, nil
}
