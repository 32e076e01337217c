package compliance

// Test type identifiers registered in the catalog.
const (
	TestADP                  = "adp"
	TestACP                  = "acp"
	TestKeyEmployee          = "key_employee"
	TestEligibility          = "eligibility"
	TestClassification       = "classification"
	TestBenefit              = "benefit"
	TestHealthFSAEligibility = "health_fsa_eligibility"
	TestHealthFSABenefits    = "health_fsa_benefits"
	TestDCAPEligibility      = "dcap_eligibility"
	TestDCAPOwners           = "dcap_owners"
	TestDCAP55Benefits       = "dcap_55_benefits"
	TestDCAPContributions    = "dcap_contributions"
	TestHRAEligibility       = "hra_eligibility"
	TestHRABenefits          = "hra_benefits"
)

// Column names shared across catalog entries and rules. Matching against
// uploaded headers is exact, so these are the single source of spelling.
const (
	colName              = "Name"
	colCompensation      = "Compensation"
	colEmployeeDeferral  = "Employee Deferral"
	colEmployerMatch     = "Employer Match"
	colHCE               = "HCE"
	colHCI               = "HCI"
	colKeyEmployee       = "Key Employee"
	colCafeteriaBenefits = "Cafeteria Plan Benefits"
	colEligibleCafeteria = "Eligible for Cafeteria Plan"
	colEligibleFSA       = "Eligible for FSA"
	colHealthFSABenefits = "Health FSA Benefits"
	colEligibleDCAP      = "Eligible for DCAP"
	colOwnershipPct      = "Ownership %"
	colDCAPBenefits      = "DCAP Benefits"
	colDCAPContributions = "DCAP Contributions"
	colEligibleHRA       = "Eligible for HRA"
	colHRABenefits       = "HRA Benefits"
)

// requiredColumns maps each test type to the exact columns a roster must
// carry before its rule may run. Fixed at startup, never mutated; each
// rule's column references match its entry here.
var requiredColumns = map[string][]string{
	TestADP:                  {colName, colCompensation, colEmployeeDeferral, colHCE},
	TestACP:                  {colName, colCompensation, colEmployerMatch, colHCE},
	TestKeyEmployee:          {colName, colCompensation, colCafeteriaBenefits, colKeyEmployee},
	TestEligibility:          {colName, colHCE},
	TestClassification:       {colName, colEligibleCafeteria},
	TestBenefit:              {colName, colCafeteriaBenefits, colHCE},
	TestHealthFSAEligibility: {colName, colEligibleFSA, colHCE},
	TestHealthFSABenefits:    {colName, colHCI, colHealthFSABenefits},
	TestDCAPEligibility:      {colName, colHCE, colEligibleDCAP},
	TestDCAPOwners:           {colName, colOwnershipPct, colDCAPBenefits},
	TestDCAP55Benefits:       {colName, colHCE, colDCAPBenefits},
	TestDCAPContributions:    {colName, colDCAPContributions, colHCE},
	TestHRAEligibility:       {colName, colHCE, colEligibleHRA},
	TestHRABenefits:          {colName, colHRABenefits, colHCE},
}

// testTypes lists the registered identifiers in a stable order.
var testTypes = []string{
	TestADP,
	TestACP,
	TestKeyEmployee,
	TestEligibility,
	TestClassification,
	TestBenefit,
	TestHealthFSAEligibility,
	TestHealthFSABenefits,
	TestDCAPEligibility,
	TestDCAPOwners,
	TestDCAP55Benefits,
	TestDCAPContributions,
	TestHRAEligibility,
	TestHRABenefits,
}

// RequiredColumns returns the ordered column list a roster must contain for
// the given test type, or ErrUnknownTestType for unregistered identifiers.
func RequiredColumns(testType string) ([]string, error) {
	cols, ok := requiredColumns[testType]
	if !ok {
		return nil, NewUnknownTestTypeError(testType)
	}
	return cols, nil
}

// TestTypes returns the registered test type identifiers in stable order.
func TestTypes() []string {
	out := make([]string, len(testTypes))
	copy(out, testTypes)
	return out
}

// IsKnownTestType reports whether the identifier is registered.
func IsKnownTestType(testType string) bool {
	_, ok := requiredColumns[testType]
	return ok
}
