package rosterio

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/nomina/internal/roster"
	"github.com/iwvelando/nomina/pkg/payroll"
	"github.com/xuri/excelize/v2"
)

const (
	reportSheet  = "Payroll"
	summarySheet = "Summary"
)

func cellValue(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ReadXLSX decodes the first worksheet of a workbook. The first row is the
// header; unknown columns are ignored.
func ReadXLSX(r io.Reader) ([]payroll.EmployeeRecord, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx roster: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return []payroll.EmployeeRecord{}, nil
	}

	columns := make(map[string]int)
	for idx, header := range rows[0] {
		if column, ok := columnFor(header); ok {
			if _, seen := columns[column]; !seen {
				columns[column] = idx
			}
		}
	}
	if len(columns) == 0 && len(rows) > 1 {
		return nil, fmt.Errorf("%w: %s", ErrNoRosterColumns, strings.Join(rows[0], ", "))
	}

	raws := make([]rawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raws = append(raws, rawFromCells(func(column string) string {
			idx, ok := columns[column]
			if !ok {
				return ""
			}
			return cellValue(row, idx)
		}))
	}
	return recordsFromRaw(raws)
}

// WriteXLSX writes a workbook with a Payroll sheet (one row per employee)
// and a Summary sheet.
func WriteXLSX(w io.Writer, report roster.Report) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("failed to name report sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := setRow(file, reportSheet, 1, header); err != nil {
		return err
	}
	for i, row := range report.Rows {
		if err := setRow(file, reportSheet, i+2, exportValues(row)); err != nil {
			return err
		}
	}

	if _, err := file.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}
	s := report.Summary
	summary := [][]interface{}{
		{"Year", s.Year},
		{"Employees", s.Employees},
		{"Skipped Rows", s.Skipped},
		{"Net Payroll", s.TotalNetPay},
		{"Employer Burden", s.EmployerBurden},
		{"Total Employer Cost", s.TotalEmployerCost},
		{"Filtered Cost (" + s.ViewLabel + ")", s.FilteredCost},
	}
	for i, values := range summary {
		if err := setRow(file, summarySheet, i+1, values); err != nil {
			return err
		}
	}

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx report: %w", err)
	}
	return nil
}

func setRow(file *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
