package roster

// Row represents one employee record as raw column-name → cell-value pairs.
// Cell values stay strings until a rule needs a number.
type Row map[string]string

// Table represents an uploaded employee roster: ordered headers plus rows
// sharing that column set.
type Table struct {
	Headers []string
	Rows    []Row
}

// HasColumn reports whether the table declares the column. Matching is exact;
// no case folding or trimming happens here.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of required that the table does not
// declare, preserving the order of required.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// WhereEquals returns the rows whose value in col exactly equals want.
// Rows lacking the column fall out of every group.
func (t *Table) WhereEquals(col, want string) []Row {
	var out []Row
	for _, row := range t.Rows {
		if v, ok := row[col]; ok && v == want {
			out = append(out, row)
		}
	}
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
