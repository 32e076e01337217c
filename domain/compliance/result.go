package compliance

// Result maps human-readable metric labels to rounded percentages, averages,
// integer counts, and the terminal verdict. It exists for a single evaluation
// and is never persisted.
type Result map[string]any

// Verdict values.
const (
	VerdictPassed = "Passed"
	VerdictFailed = "Failed"
)

func verdict(pass bool) string {
	if pass {
		return VerdictPassed
	}
	return VerdictFailed
}
