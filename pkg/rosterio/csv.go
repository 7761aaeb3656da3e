package rosterio

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/iwvelando/nomina/internal/roster"
	"github.com/iwvelando/nomina/pkg/payroll"
)

// ReadCSV decodes a roster whose header row names its columns in English or
// Spanish, matched the same way as XLSX headers. Unknown columns are ignored;
// missing columns and blank cells are missing values.
func ReadCSV(r io.Reader) ([]payroll.EmployeeRecord, error) {
	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode csv roster: %w", err)
	}
	if len(rows) == 0 {
		return []payroll.EmployeeRecord{}, nil
	}

	headers := make([]string, 0, len(rows[0]))
	for header := range rows[0] {
		headers = append(headers, header)
	}
	// Sorted so that a column named twice resolves the same way every run.
	sort.Strings(headers)

	columns := make(map[string]string)
	for _, header := range headers {
		if column, ok := columnFor(header); ok {
			if _, seen := columns[column]; !seen {
				columns[column] = header
			}
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRosterColumns, strings.Join(headers, ", "))
	}

	raws := make([]rawRecord, 0, len(rows))
	for _, row := range rows {
		raws = append(raws, rawFromCells(func(column string) string {
			header, ok := columns[column]
			if !ok {
				return ""
			}
			return strings.TrimSpace(row[header])
		}))
	}
	return recordsFromRaw(raws)
}

// WriteCSV writes one line per calculated employee.
func WriteCSV(w io.Writer, report roster.Report) error {
	records := exportRecords(report)
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("failed to encode csv report: %w", err)
	}
	return nil
}

// CSVString renders the report as CSV text.
func CSVString(report roster.Report) (string, error) {
	records := exportRecords(report)
	out, err := gocsv.MarshalString(&records)
	if err != nil {
		return "", fmt.Errorf("failed to encode csv report: %w", err)
	}
	return out, nil
}
