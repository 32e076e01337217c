package compliance

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"waypoint/domain/roster"
)

// Categorical discriminator values. Group membership is exact string
// equality; anything else leaves the row outside both groups.
const (
	flagYes = "Yes"
	flagNo  = "No"
)

// numericColumn extracts the numeric values of col from rows. Empty cells are
// treated as missing and skipped; a non-empty value that does not parse is a
// computation fault.
func numericColumn(rows []roster.Row, col string) ([]float64, error) {
	var values []float64
	for _, row := range rows {
		raw, ok := row[col]
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value %q in column %q", raw, col)
		}
		values = append(values, v)
	}
	return values, nil
}

// sumColumn totals the numeric values of col across rows.
func sumColumn(rows []roster.Row, col string) (float64, error) {
	values, err := numericColumn(rows, col)
	if err != nil {
		return 0, err
	}
	return floats.Sum(values), nil
}

// meanColumn averages the numeric values of col across rows. An empty group
// averages to zero rather than being undefined.
func meanColumn(rows []roster.Row, col string) (float64, error) {
	values, err := numericColumn(rows, col)
	if err != nil {
		return 0, err
	}
	mean, err := stats.Mean(values)
	if err != nil {
		// stats.Mean rejects empty input; the zero-default policy applies.
		return 0, nil
	}
	return mean, nil
}

// safeRatio divides num by den, defining the result as zero whenever the
// denominator is zero or negative. Never a division error, never NaN.
func safeRatio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// safePct expresses count as a percentage of total, zero when total is zero.
func safePct(count, total int) float64 {
	return safeRatio(float64(count), float64(total)) * 100
}

// round2 rounds to exactly two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
