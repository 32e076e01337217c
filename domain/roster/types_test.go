package roster

import (
	"reflect"
	"testing"
)

func TestMissingColumns_PreservesRequiredOrder(t *testing.T) {
	table := &Table{Headers: []string{"Name", "HCE"}}

	missing := table.MissingColumns([]string{"Name", "Compensation", "Employee Deferral", "HCE"})
	want := []string{"Compensation", "Employee Deferral"}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("MissingColumns = %v, want %v", missing, want)
	}
}

func TestHasColumn_ExactMatchOnly(t *testing.T) {
	table := &Table{Headers: []string{"HCE", "Employee Deferral"}}

	if !table.HasColumn("HCE") {
		t.Error("expected exact header to match")
	}
	for _, name := range []string{"hce", "HCE ", "Employee  Deferral"} {
		if table.HasColumn(name) {
			t.Errorf("HasColumn(%q) should not match", name)
		}
	}
}

func TestWhereEquals_ExcludesRowsWithoutColumn(t *testing.T) {
	table := &Table{
		Headers: []string{"Name", "HCE"},
		Rows: []Row{
			{"Name": "A", "HCE": "Yes"},
			{"Name": "B", "HCE": "No"},
			{"Name": "C"},
			{"Name": "D", "HCE": "yes"},
		},
	}

	yes := table.WhereEquals("HCE", "Yes")
	no := table.WhereEquals("HCE", "No")
	if len(yes) != 1 || yes[0]["Name"] != "A" {
		t.Errorf("Yes group = %v, want only row A", yes)
	}
	if len(no) != 1 || no[0]["Name"] != "B" {
		t.Errorf("No group = %v, want only row B", no)
	}
}
