// Package rosterio reads employee rosters from CSV and XLSX files and writes
// calculated payroll reports back out in the same formats.
package rosterio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iwvelando/nomina/pkg/payroll"
)

// Roster column headers.
const (
	HeaderName              = "Name"
	HeaderBaseSalary        = "Base Salary"
	HeaderDaysWorked        = "Days Worked"
	HeaderDaytimeOvertime   = "Daytime Overtime"
	HeaderNighttimeOvertime = "Nighttime Overtime"
	HeaderHolidayOvertime   = "Holiday Overtime"
	HeaderNightSurcharge    = "Night Surcharge"
	HeaderRiskClass         = "Risk Class"
)

// Supported file formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var (
	// ErrUnsupportedFormat is returned for roster files that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported roster format")
	// ErrNoRosterColumns is returned when a roster has data rows but none of
	// its headers names a roster column.
	ErrNoRosterColumns = errors.New("no recognized roster columns in header")
	// ErrNotFinite is the cell error for NaN and infinite numbers.
	ErrNotFinite = errors.New("not a finite number")
	// ErrRiskClassRange is the cell error for risk classes too large to be a class.
	ErrRiskClassRange = errors.New("risk class out of range")
)

// maxRiskClassCell bounds risk class cells before integer conversion.
const maxRiskClassCell = math.MaxInt32

// headerAliases maps normalized header text to a roster column. The Spanish
// names are the column titles of the spreadsheet the roster usually comes from.
var headerAliases = map[string]string{
	"name":               HeaderName,
	"nombre":             HeaderName,
	"base salary":        HeaderBaseSalary,
	"salario base":       HeaderBaseSalary,
	"days worked":        HeaderDaysWorked,
	"días trab.":         HeaderDaysWorked,
	"dias trab.":         HeaderDaysWorked,
	"daytime overtime":   HeaderDaytimeOvertime,
	"h.e. diurna":        HeaderDaytimeOvertime,
	"nighttime overtime": HeaderNighttimeOvertime,
	"h.e. nocturna":      HeaderNighttimeOvertime,
	"holiday overtime":   HeaderHolidayOvertime,
	"h.e. dom/fest":      HeaderHolidayOvertime,
	"night surcharge":    HeaderNightSurcharge,
	"recargo noc":        HeaderNightSurcharge,
	"risk class":         HeaderRiskClass,
	"riesgo arl (1-5)":   HeaderRiskClass,
}

// normalizeHeader lowercases a header, drops a UTF-8 byte order mark and
// collapses runs of whitespace.
func normalizeHeader(header string) string {
	header = strings.TrimPrefix(header, "\ufeff")
	return strings.ToLower(strings.Join(strings.Fields(header), " "))
}

// columnFor resolves a header in either language to its roster column.
func columnFor(header string) (string, bool) {
	column, ok := headerAliases[normalizeHeader(header)]
	return column, ok
}

// CellError reports a roster cell that could not be parsed.
type CellError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %s: invalid number %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// FormatFromPath infers the roster format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Read decodes a roster in the given format.
func Read(format string, r io.Reader) ([]payroll.EmployeeRecord, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ReadFile loads a roster file, choosing the decoder from its extension.
func ReadFile(path string) ([]payroll.EmployeeRecord, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	records, err := Read(format, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster %s: %w", path, err)
	}
	return records, nil
}

// rawRecord is one roster row before numeric parsing. Blank cells stay
// empty and become missing values.
type rawRecord struct {
	Name                   string
	BaseSalary             string
	DaysWorked             string
	DaytimeOvertimeHours   string
	NighttimeOvertimeHours string
	HolidayOvertimeHours   string
	NightSurchargeHours    string
	RiskClass              string
}

// rawFromCells builds a row from a lookup of cell text by roster column.
func rawFromCells(cell func(column string) string) rawRecord {
	return rawRecord{
		Name:                   cell(HeaderName),
		BaseSalary:             cell(HeaderBaseSalary),
		DaysWorked:             cell(HeaderDaysWorked),
		DaytimeOvertimeHours:   cell(HeaderDaytimeOvertime),
		NighttimeOvertimeHours: cell(HeaderNighttimeOvertime),
		HolidayOvertimeHours:   cell(HeaderHolidayOvertime),
		NightSurchargeHours:    cell(HeaderNightSurcharge),
		RiskClass:              cell(HeaderRiskClass),
	}
}

func (raw rawRecord) blank() bool {
	return strings.TrimSpace(raw.Name+raw.BaseSalary+raw.DaysWorked+raw.DaytimeOvertimeHours+
		raw.NighttimeOvertimeHours+raw.HolidayOvertimeHours+raw.NightSurchargeHours+raw.RiskClass) == ""
}

// record parses the numeric cells. row is the 1-based line in the source,
// counting the header.
func (raw rawRecord) record(row int) (payroll.EmployeeRecord, error) {
	rec := payroll.EmployeeRecord{Name: strings.TrimSpace(raw.Name)}

	fields := []struct {
		header string
		value  string
		dest   **float64
	}{
		{HeaderBaseSalary, raw.BaseSalary, &rec.BaseSalary},
		{HeaderDaysWorked, raw.DaysWorked, &rec.DaysWorked},
		{HeaderDaytimeOvertime, raw.DaytimeOvertimeHours, &rec.DaytimeOvertimeHours},
		{HeaderNighttimeOvertime, raw.NighttimeOvertimeHours, &rec.NighttimeOvertimeHours},
		{HeaderHolidayOvertime, raw.HolidayOvertimeHours, &rec.HolidayOvertimeHours},
		{HeaderNightSurcharge, raw.NightSurchargeHours, &rec.NightSurchargeHours},
	}
	for _, f := range fields {
		v, err := parseOptional(f.value)
		if err != nil {
			return payroll.EmployeeRecord{}, &CellError{Row: row, Column: f.header, Value: f.value, Err: err}
		}
		*f.dest = v
	}

	class, err := parseOptional(raw.RiskClass)
	if err != nil {
		return payroll.EmployeeRecord{}, &CellError{Row: row, Column: HeaderRiskClass, Value: raw.RiskClass, Err: err}
	}
	if class != nil {
		if math.Abs(*class) > maxRiskClassCell {
			return payroll.EmployeeRecord{}, &CellError{Row: row, Column: HeaderRiskClass, Value: raw.RiskClass, Err: ErrRiskClassRange}
		}
		rec.RiskClass = payroll.Int(int(*class))
	}
	return rec, nil
}

func parseOptional(value string) (*float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNotFinite
	}
	return &v, nil
}

func recordsFromRaw(raws []rawRecord) ([]payroll.EmployeeRecord, error) {
	records := make([]payroll.EmployeeRecord, 0, len(raws))
	for i, raw := range raws {
		if raw.blank() {
			continue
		}
		rec, err := raw.record(i + 2)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
