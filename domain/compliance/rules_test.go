package compliance

import (
	"testing"

	"waypoint/domain/roster"
)

// buildTable assembles a roster from a header slice and cell rows.
func buildTable(headers []string, cells ...[]string) *roster.Table {
	rows := make([]roster.Row, 0, len(cells))
	for _, line := range cells {
		row := make(roster.Row, len(headers))
		for i, v := range line {
			if i < len(headers) {
				row[headers[i]] = v
			}
		}
		rows = append(rows, row)
	}
	return &roster.Table{Headers: headers, Rows: rows}
}

func TestRuleADP_FailsAboveNHCEBound(t *testing.T) {
	table := buildTable(
		[]string{"Name", "Compensation", "Employee Deferral", "HCE"},
		[]string{"A", "100", "10", "Yes"},
		[]string{"B", "100", "5", "No"},
	)

	result, err := ruleADP(table)
	if err != nil {
		t.Fatalf("ruleADP failed: %v", err)
	}
	if got := result["HCE ADP (%)"]; got != 10.00 {
		t.Errorf("HCE ADP = %v, want 10.00", got)
	}
	if got := result["NHCE ADP (%)"]; got != 5.00 {
		t.Errorf("NHCE ADP = %v, want 5.00", got)
	}
	// 10 > 5*1.25 = 6.25
	if got := result["Test Result"]; got != VerdictFailed {
		t.Errorf("verdict = %v, want Failed", got)
	}
}

func TestRuleADP_ZeroCompensationDefinedAsZero(t *testing.T) {
	table := buildTable(
		[]string{"Name", "Compensation", "Employee Deferral", "HCE"},
		[]string{"A", "0", "10", "Yes"},
		[]string{"B", "0", "5", "No"},
	)

	result, err := ruleADP(table)
	if err != nil {
		t.Fatalf("ruleADP failed: %v", err)
	}
	if result["HCE ADP (%)"] != 0.00 || result["NHCE ADP (%)"] != 0.00 {
		t.Errorf("zero compensation should yield 0 percentages, got %v / %v",
			result["HCE ADP (%)"], result["NHCE ADP (%)"])
	}
	if result["Test Result"] != VerdictPassed {
		t.Errorf("0 <= 0*1.25 should pass, got %v", result["Test Result"])
	}
}

func TestRuleADP_Rounding(t *testing.T) {
	table := buildTable(
		[]string{"Name", "Compensation", "Employee Deferral", "HCE"},
		[]string{"A", "300", "10", "Yes"},
		[]string{"B", "300", "10", "No"},
	)

	result, err := ruleADP(table)
	if err != nil {
		t.Fatalf("ruleADP failed: %v", err)
	}
	// 10/300*100 = 3.333... rounds to 3.33
	if got := result["HCE ADP (%)"]; got != 3.33 {
		t.Errorf("HCE ADP = %v, want 3.33", got)
	}
}

func TestRuleKeyEmployee_TwentyPercentBound(t *testing.T) {
	headers := []string{"Name", "Compensation", "Cafeteria Plan Benefits", "Key Employee"}
	cells := [][]string{{"K", "100", "0", "Yes"}}
	for i := 0; i < 9; i++ {
		cells = append(cells, []string{"E", "100", "0", "No"})
	}

	result, err := ruleKeyEmployee(buildTable(headers, cells...))
	if err != nil {
		t.Fatalf("ruleKeyEmployee failed: %v", err)
	}
	if got := result["Key Employee Percentage"]; got != 10.00 {
		t.Errorf("key percentage = %v, want 10.00", got)
	}
	if got := result["Key Employees"]; got != 1 {
		t.Errorf("key count = %v, want 1", got)
	}
	if result["Test Result"] != VerdictPassed {
		t.Errorf("10%% <= 20%% should pass, got %v", result["Test Result"])
	}
}

func TestRuleBenefit_EmptyHCEGroupFails(t *testing.T) {
	table := buildTable(
		[]string{"Name", "Cafeteria Plan Benefits", "HCE"},
		[]string{"A", "50", "No"},
		[]string{"B", "50", "No"},
	)

	result, err := ruleBenefit(table)
	if err != nil {
		t.Fatalf("ruleBenefit failed: %v", err)
	}
	if got := result["HCE Avg Benefits"]; got != 0.00 {
		t.Errorf("HCE avg = %v, want 0", got)
	}
	if got := result["Non-HCE Avg Benefits"]; got != 50.00 {
		t.Errorf("NHCE avg = %v, want 50", got)
	}
	// Ratio guarded by HCE avg > 0, so it stays 0 and the test fails.
	if got := result["Benefit Ratio (%)"]; got != 0.00 {
		t.Errorf("ratio = %v, want 0", got)
	}
	if result["Test Result"] != VerdictFailed {
		t.Errorf("verdict = %v, want Failed", result["Test Result"])
	}
}

func TestRuleDCAPOwners_NoOwnersInformational(t *testing.T) {
	table := buildTable(
		[]string{"Name", "Ownership %", "DCAP Benefits"},
		[]string{"A", "0", "500"},
		[]string{"B", "", "300"},
	)

	result, err := ruleDCAPOwners(table)
	if err != nil {
		t.Fatalf("ruleDCAPOwners failed: %v", err)
	}
	if got := result["message"]; got != "No owners found." {
		t.Errorf("message = %v, want informational no-owners message", got)
	}
	if _, ok := result["Test Result"]; ok {
		t.Error("no-owner result must not carry a verdict")
	}
}

func TestRuleDCAPOwners_AveragesOwnersOnly(t *testing.T) {
	table := buildTable(
		[]string{"Name", "Ownership %", "DCAP Benefits"},
		[]string{"A", "10", "150"},
		[]string{"B", "5", "50"},
		[]string{"C", "0", "9999"},
	)

	result, err := ruleDCAPOwners(table)
	if err != nil {
		t.Fatalf("ruleDCAPOwners failed: %v", err)
	}
	if got := result["Average DCAP Benefits for Owners"]; got != 100.00 {
		t.Errorf("owner avg = %v, want 100.00", got)
	}
	if result["Test Result"] != VerdictPassed {
		t.Errorf("avg 100 >= 100 should pass, got %v", result["Test Result"])
	}
}

func TestRuleHRAEligibility_RatioDirection(t *testing.T) {
	// HCE group: 2 of 2 eligible (100%). NHCE group: 3 of 4 eligible (75%).
	// Ratio = 75/100*100 = 75 >= 70 passes.
	table := buildTable(
		[]string{"Name", "HCE", "Eligible for HRA"},
		[]string{"A", "Yes", "Yes"},
		[]string{"B", "Yes", "Yes"},
		[]string{"C", "No", "Yes"},
		[]string{"D", "No", "Yes"},
		[]string{"E", "No", "Yes"},
		[]string{"F", "No", "No"},
	)

	result, err := ruleHRAEligibility(table)
	if err != nil {
		t.Fatalf("ruleHRAEligibility failed: %v", err)
	}
	if got := result["HCE Eligibility (%)"]; got != 100.00 {
		t.Errorf("HCE eligibility = %v, want 100.00", got)
	}
	if got := result["Non-HCE Eligibility (%)"]; got != 75.00 {
		t.Errorf("NHCE eligibility = %v, want 75.00", got)
	}
	if got := result["Ratio (%)"]; got != 75.00 {
		t.Errorf("ratio = %v, want 75.00", got)
	}
	if result["Test Result"] != VerdictPassed {
		t.Errorf("verdict = %v, want Passed", result["Test Result"])
	}
}

func TestRuleHealthFSABenefits_ParityThreshold(t *testing.T) {
	table := buildTable(
		[]string{"Name", "HCI", "Health FSA Benefits"},
		[]string{"A", "Yes", "100"},
		[]string{"B", "No", "99"},
	)

	result, err := ruleHealthFSABenefits(table)
	if err != nil {
		t.Fatalf("ruleHealthFSABenefits failed: %v", err)
	}
	if got := result["Benefit Ratio (%)"]; got != 99.00 {
		t.Errorf("ratio = %v, want 99.00", got)
	}
	if result["Test Result"] != VerdictFailed {
		t.Errorf("99%% < 100%% should fail, got %v", result["Test Result"])
	}
}

func TestRuleHRABenefits_HCEAtLeastNHCE(t *testing.T) {
	table := buildTable(
		[]string{"Name", "HRA Benefits", "HCE"},
		[]string{"A", "100", "Yes"},
		[]string{"B", "100", "No"},
	)

	result, err := ruleHRABenefits(table)
	if err != nil {
		t.Fatalf("ruleHRABenefits failed: %v", err)
	}
	if result["Test Result"] != VerdictPassed {
		t.Errorf("equal averages should pass, got %v", result["Test Result"])
	}
}

func TestRules_EmptyTableAlwaysDefined(t *testing.T) {
	for testType, cols := range requiredColumns {
		table := buildTable(cols)
		result, err := rules[testType](table)
		if err != nil {
			t.Errorf("%s: empty table should not error, got %v", testType, err)
			continue
		}
		if testType == TestDCAPOwners {
			if result["message"] != "No owners found." {
				t.Errorf("%s: empty table should report no owners, got %v", testType, result)
			}
			continue
		}
		v, ok := result["Test Result"]
		if !ok {
			// Two tests label their verdict field more specifically.
			switch testType {
			case TestHealthFSAEligibility:
				v, ok = result["Health FSA Eligibility Test Result"]
			case TestDCAPEligibility:
				v, ok = result["DCAP Eligibility Test Result"]
			case TestACP:
				v, ok = result["ACP_Test_Result"]
			}
		}
		if !ok || (v != VerdictPassed && v != VerdictFailed) {
			t.Errorf("%s: empty table verdict missing or undefined: %v", testType, result)
		}
	}
}

func TestRules_RowMissingDiscriminatorExcludedFromBothGroups(t *testing.T) {
	// The third row has no usable HCE flag, so it is in neither group.
	table := buildTable(
		[]string{"Name", "HRA Benefits", "HCE"},
		[]string{"A", "10", "Yes"},
		[]string{"B", "20", "No"},
		[]string{"C", "9999", ""},
	)

	result, err := ruleHRABenefits(table)
	if err != nil {
		t.Fatalf("ruleHRABenefits failed: %v", err)
	}
	if got := result["HCE Average Benefits"]; got != 10.00 {
		t.Errorf("HCE avg = %v, want 10.00", got)
	}
	if got := result["NHCE Average Benefits"]; got != 20.00 {
		t.Errorf("NHCE avg = %v, want 20.00", got)
	}
}
