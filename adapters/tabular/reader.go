package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"waypoint/domain/roster"
)

// DataReader handles parsing uploaded CSV and Excel rosters.
type DataReader struct{}

// NewDataReader creates a reader for uploaded roster files.
func NewDataReader() *DataReader {
	return &DataReader{}
}

// ReadRoster parses the uploaded stream into a roster table. The format is
// chosen by the filename extension: .csv is read as CSV, .xlsx/.xlsm as Excel
// (first sheet); anything else is rejected.
func (dr *DataReader) ReadRoster(filename string, r io.Reader) (*roster.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return dr.readCSV(r)
	case ".xlsx", ".xlsm":
		return dr.readExcel(r)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filename)
	}
}

func (dr *DataReader) readCSV(r io.Reader) (*roster.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	return dr.processRows(rows)
}

func (dr *DataReader) readExcel(r io.Reader) (*roster.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel data: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return dr.processRows(rows)
}

// processRows converts raw string rows into a roster table. The first row is
// the header; a roster with zero data rows is valid (every rule defines its
// statistics for an empty table).
func (dr *DataReader) processRows(rows [][]string) (*roster.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file must have a header row")
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]roster.Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(roster.Row, len(headers))
		for j, cell := range raw {
			if j < len(headers) {
				row[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, row)
	}

	return &roster.Table{Headers: headers, Rows: dataRows}, nil
}
