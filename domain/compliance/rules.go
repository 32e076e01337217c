package compliance

import (
	"strconv"
	"strings"

	"waypoint/domain/roster"
)

// Rule evaluates one test type over a roster that already passed column
// validation. Rules are pure: no I/O, no mutation of the input table.
type Rule func(t *roster.Table) (Result, error)

// rules is the dispatch registry; one rule per catalog entry. The ratio
// directions and thresholds below are regulatory policy and deliberately
// asymmetric between tests.
var rules = map[string]Rule{
	TestADP:                  ruleADP,
	TestACP:                  ruleACP,
	TestKeyEmployee:          ruleKeyEmployee,
	TestEligibility:          ruleEligibility,
	TestClassification:       ruleClassification,
	TestBenefit:              ruleBenefit,
	TestHealthFSAEligibility: ruleHealthFSAEligibility,
	TestHealthFSABenefits:    ruleHealthFSABenefits,
	TestDCAPEligibility:      ruleDCAPEligibility,
	TestDCAPOwners:           ruleDCAPOwners,
	TestDCAP55Benefits:       ruleDCAP55Benefits,
	TestDCAPContributions:    ruleDCAPContributions,
	TestHRAEligibility:       ruleHRAEligibility,
	TestHRABenefits:          ruleHRABenefits,
}

// ruleADP compares deferral percentages: HCE ADP may not exceed 1.25x the
// NHCE ADP.
func ruleADP(t *roster.Table) (Result, error) {
	hceADP, err := groupRatePct(t.WhereEquals(colHCE, flagYes), colEmployeeDeferral, colCompensation)
	if err != nil {
		return nil, err
	}
	nhceADP, err := groupRatePct(t.WhereEquals(colHCE, flagNo), colEmployeeDeferral, colCompensation)
	if err != nil {
		return nil, err
	}
	return Result{
		"HCE ADP (%)":  round2(hceADP),
		"NHCE ADP (%)": round2(nhceADP),
		"Test Result":  verdict(hceADP <= nhceADP*1.25),
	}, nil
}

// ruleACP applies the same 1.25x bound to employer-match percentages.
func ruleACP(t *roster.Table) (Result, error) {
	hceACP, err := groupRatePct(t.WhereEquals(colHCE, flagYes), colEmployerMatch, colCompensation)
	if err != nil {
		return nil, err
	}
	nhceACP, err := groupRatePct(t.WhereEquals(colHCE, flagNo), colEmployerMatch, colCompensation)
	if err != nil {
		return nil, err
	}
	return Result{
		"HCE_Average_Contribution (%)":  round2(hceACP),
		"NHCE_Average_Contribution (%)": round2(nhceACP),
		"ACP_Test_Result":               verdict(hceACP <= nhceACP*1.25),
	}, nil
}

// ruleKeyEmployee passes when key employees make up at most 20% of the roster.
func ruleKeyEmployee(t *roster.Table) (Result, error) {
	total := t.Len()
	keyCount := len(t.WhereEquals(colKeyEmployee, flagYes))
	keyPct := safePct(keyCount, total)
	return Result{
		"Total Employees":         total,
		"Key Employees":           keyCount,
		"Key Employee Percentage": round2(keyPct),
		"Test Result":             verdict(keyPct <= 20),
	}, nil
}

// ruleEligibility passes when HCEs make up at most 40% of the roster.
func ruleEligibility(t *roster.Table) (Result, error) {
	total := t.Len()
	hceCount := len(t.WhereEquals(colHCE, flagYes))
	hcePct := safePct(hceCount, total)
	return Result{
		"Total Employees":    total,
		"HCE Count":          hceCount,
		"HCE Percentage (%)": round2(hcePct),
		"Test Result":        verdict(hcePct <= 40),
	}, nil
}

// ruleClassification passes when at least 70% of the roster is eligible for
// the cafeteria plan.
func ruleClassification(t *roster.Table) (Result, error) {
	total := t.Len()
	eligible := len(t.WhereEquals(colEligibleCafeteria, flagYes))
	eligiblePct := safePct(eligible, total)
	return Result{
		"Total Employees":             total,
		"Eligible for Cafeteria Plan": eligible,
		"Eligibility Percentage (%)":  round2(eligiblePct),
		"Test Result":                 verdict(eligiblePct >= 70),
	}, nil
}

// ruleBenefit passes when the NHCE average cafeteria benefit reaches 55% of
// the HCE average.
func ruleBenefit(t *roster.Table) (Result, error) {
	hceAvg, err := meanColumn(t.WhereEquals(colHCE, flagYes), colCafeteriaBenefits)
	if err != nil {
		return nil, err
	}
	nhceAvg, err := meanColumn(t.WhereEquals(colHCE, flagNo), colCafeteriaBenefits)
	if err != nil {
		return nil, err
	}
	ratio := safeRatio(nhceAvg, hceAvg) * 100
	return Result{
		"HCE Avg Benefits":     round2(hceAvg),
		"Non-HCE Avg Benefits": round2(nhceAvg),
		"Benefit Ratio (%)":    round2(ratio),
		"Test Result":          verdict(ratio >= 55),
	}, nil
}

// ruleHealthFSAEligibility passes when at least 70% of the roster is eligible
// for the health FSA.
func ruleHealthFSAEligibility(t *roster.Table) (Result, error) {
	total := t.Len()
	eligible := len(t.WhereEquals(colEligibleFSA, flagYes))
	eligiblePct := safePct(eligible, total)
	return Result{
		"Total Employees":                       total,
		"Eligible for FSA":                      eligible,
		"Health FSA Eligibility Percentage (%)": round2(eligiblePct),
		"Health FSA Eligibility Test Result":    verdict(eligiblePct >= 70),
	}, nil
}

// ruleHealthFSABenefits passes when the non-HCI average FSA benefit reaches
// 100% of the HCI average.
func ruleHealthFSABenefits(t *roster.Table) (Result, error) {
	hciAvg, err := meanColumn(t.WhereEquals(colHCI, flagYes), colHealthFSABenefits)
	if err != nil {
		return nil, err
	}
	nonHCIAvg, err := meanColumn(t.WhereEquals(colHCI, flagNo), colHealthFSABenefits)
	if err != nil {
		return nil, err
	}
	ratio := safeRatio(nonHCIAvg, hciAvg) * 100
	return Result{
		"HCI Average Benefits":     round2(hciAvg),
		"Non-HCI Average Benefits": round2(nonHCIAvg),
		"Benefit Ratio (%)":        round2(ratio),
		"Test Result":              verdict(ratio >= 100),
	}, nil
}

// ruleDCAPEligibility passes when at least 50% of the roster is eligible for
// the DCAP.
func ruleDCAPEligibility(t *roster.Table) (Result, error) {
	total := t.Len()
	eligible := len(t.WhereEquals(colEligibleDCAP, flagYes))
	eligiblePct := safePct(eligible, total)
	return Result{
		"Total Employees":                 total,
		"Eligible Employees":              eligible,
		"DCAP Eligibility Percentage (%)": round2(eligiblePct),
		"DCAP Eligibility Test Result":    verdict(eligiblePct >= 50),
	}, nil
}

// ruleDCAPOwners averages DCAP benefits across owners (Ownership % > 0).
// With no owners there is no verdict, only an informational message.
func ruleDCAPOwners(t *roster.Table) (Result, error) {
	var owners []roster.Row
	for _, row := range t.Rows {
		raw, ok := row[colOwnershipPct]
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		pct, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		if pct > 0 {
			owners = append(owners, row)
		}
	}
	if len(owners) == 0 {
		return Result{"message": "No owners found."}, nil
	}
	avg, err := meanColumn(owners, colDCAPBenefits)
	if err != nil {
		return nil, err
	}
	return Result{
		"Average DCAP Benefits for Owners": round2(avg),
		"Test Result":                      verdict(avg >= 100),
	}, nil
}

// ruleDCAP55Benefits passes when the NHCE average DCAP benefit reaches 55%
// of the HCE average.
func ruleDCAP55Benefits(t *roster.Table) (Result, error) {
	hceAvg, err := meanColumn(t.WhereEquals(colHCE, flagYes), colDCAPBenefits)
	if err != nil {
		return nil, err
	}
	nhceAvg, err := meanColumn(t.WhereEquals(colHCE, flagNo), colDCAPBenefits)
	if err != nil {
		return nil, err
	}
	ratio := safeRatio(nhceAvg, hceAvg) * 100
	return Result{
		"HCE Avg Benefits":     round2(hceAvg),
		"Non-HCE Avg Benefits": round2(nhceAvg),
		"Ratio (%)":            round2(ratio),
		"Test Result":          verdict(ratio >= 55),
	}, nil
}

// ruleDCAPContributions bounds the HCE average DCAP contribution at 1.25x the
// NHCE average.
func ruleDCAPContributions(t *roster.Table) (Result, error) {
	hceAvg, err := meanColumn(t.WhereEquals(colHCE, flagYes), colDCAPContributions)
	if err != nil {
		return nil, err
	}
	nhceAvg, err := meanColumn(t.WhereEquals(colHCE, flagNo), colDCAPContributions)
	if err != nil {
		return nil, err
	}
	return Result{
		"HCE Average Contributions":  round2(hceAvg),
		"NHCE Average Contributions": round2(nhceAvg),
		"Test Result":                verdict(hceAvg <= nhceAvg*1.25),
	}, nil
}

// ruleHRAEligibility compares HRA eligibility rates within each compensation
// group; the NHCE rate must reach 70% of the HCE rate. Note the ratio divides
// NHCE% by HCE%, opposite to most of the benefit ratios.
func ruleHRAEligibility(t *roster.Table) (Result, error) {
	hceGroup := t.WhereEquals(colHCE, flagYes)
	nhceGroup := t.WhereEquals(colHCE, flagNo)
	hcePct := safePct(countEquals(hceGroup, colEligibleHRA, flagYes), len(hceGroup))
	nhcePct := safePct(countEquals(nhceGroup, colEligibleHRA, flagYes), len(nhceGroup))
	ratio := safeRatio(nhcePct, hcePct) * 100
	return Result{
		"HCE Eligibility (%)":     round2(hcePct),
		"Non-HCE Eligibility (%)": round2(nhcePct),
		"Ratio (%)":               round2(ratio),
		"Test Result":             verdict(ratio >= 70),
	}, nil
}

// ruleHRABenefits passes when the HCE average HRA benefit is at least the
// NHCE average.
func ruleHRABenefits(t *roster.Table) (Result, error) {
	hceAvg, err := meanColumn(t.WhereEquals(colHCE, flagYes), colHRABenefits)
	if err != nil {
		return nil, err
	}
	nhceAvg, err := meanColumn(t.WhereEquals(colHCE, flagNo), colHRABenefits)
	if err != nil {
		return nil, err
	}
	return Result{
		"HCE Average Benefits":  round2(hceAvg),
		"NHCE Average Benefits": round2(nhceAvg),
		"Test Result":           verdict(hceAvg >= nhceAvg),
	}, nil
}

// groupRatePct returns sum(numCol)/sum(denCol)*100 for the group, zero when
// the group is empty or its denominator sums to zero.
func groupRatePct(group []roster.Row, numCol, denCol string) (float64, error) {
	num, err := sumColumn(group, numCol)
	if err != nil {
		return 0, err
	}
	den, err := sumColumn(group, denCol)
	if err != nil {
		return 0, err
	}
	return safeRatio(num, den) * 100, nil
}

// countEquals counts rows whose value in col exactly equals want.
func countEquals(rows []roster.Row, col, want string) int {
	n := 0
	for _, row := range rows {
		if v, ok := row[col]; ok && v == want {
			n++
		}
	}
	return n
}
