package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/nomina/internal/roster"
	"github.com/iwvelando/nomina/pkg/format"
	"github.com/iwvelando/nomina/pkg/legal"
	"github.com/iwvelando/nomina/pkg/payroll"
	"go.uber.org/zap"
)

func buildReport(t *testing.T, view roster.ViewOptions, records []payroll.EmployeeRecord) roster.Report {
	t.Helper()
	lc, err := legal.ForYear(2026)
	if err != nil {
		t.Fatalf("ForYear() error = %v", err)
	}
	return roster.Aggregate(zap.NewNop(), records, roster.Options{
		Calculation: payroll.Config{AllowanceApplies: true, ExemptionApplies: true, KitCost: 180000},
		View:        view,
		Constants:   lc,
	})
}

func sampleRecords() []payroll.EmployeeRecord {
	return []payroll.EmployeeRecord{
		{Name: "Empleado 1", BaseSalary: payroll.Float(1750905), DaysWorked: payroll.Float(30), RiskClass: payroll.Int(1)},
		{Name: "Sin salario", DaysWorked: payroll.Float(30)},
	}
}

func TestPrettyFormat(t *testing.T) {
	report := buildReport(t, roster.ViewOptions{IncludeSocialSecurity: true, IncludeBenefits: true}, sampleRecords())

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, report); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	expected := []string{
		"Payroll summary 2026",
		"Employees:            1",
		"$1,859,928",
		"$2,760,489",
		"Viewing: Salary + Overtime + Allowance + SS + Benefits",
		"SS (Employer)",
		"Benefits",
		"Who pays what",
		"Empleado 1",
		"1 row(s) without a positive base salary",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat missing %q in:\n%s", want, output)
		}
	}
}

func TestPrettyFormatColumnAlignment(t *testing.T) {
	records := []payroll.EmployeeRecord{
		{Name: "Ana", BaseSalary: payroll.Float(2000000), DaysWorked: payroll.Float(30), RiskClass: payroll.Int(1)},
		{Name: "Empleado 1", BaseSalary: payroll.Float(1750905), DaysWorked: payroll.Float(30), RiskClass: payroll.Int(1)},
	}
	report := buildReport(t, roster.ViewOptions{}, records)

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, report); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}

	var header, ana string
	for _, line := range strings.Split(buf.String(), "\n") {
		if header == "" && strings.HasPrefix(line, "Name") {
			header = line
		}
		if ana == "" && strings.HasPrefix(line, "Ana") {
			ana = line
		}
	}
	if header == "" || ana == "" {
		t.Fatalf("table lines not found in:\n%s", buf.String())
	}

	// Names are padded on the right to the longest name.
	if !strings.HasPrefix(ana, "Ana         ") {
		t.Errorf("expected a left-aligned name column, got %q", ana)
	}
	// Amounts are padded on the left, so rows end with their last amount.
	if want := format.Pesos(report.Rows[0].FilteredCost); !strings.HasSuffix(ana, want) {
		t.Errorf("expected row to end with %q, got %q", want, ana)
	}
	if !strings.HasSuffix(header, "Filtered Cost") {
		t.Errorf("expected header to end with Filtered Cost, got %q", header)
	}
	if lipgloss.Width(header) != lipgloss.Width(ana) {
		t.Errorf("expected header and row widths to match: %q vs %q", header, ana)
	}
}

func TestPrettyFormatHidesUnselectedColumns(t *testing.T) {
	report := buildReport(t, roster.ViewOptions{}, sampleRecords())

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, report); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	if strings.Contains(output, "SS (Employer)") {
		t.Error("PrettyFormat should hide the SS column when not selected")
	}
	if !strings.Contains(output, "Viewing: Salary + Overtime + Allowance\n") {
		t.Errorf("PrettyFormat missing base view label in:\n%s", output)
	}
}

func TestPrettyFormatEmptyRoster(t *testing.T) {
	report := buildReport(t, roster.ViewOptions{}, nil)

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, report); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != EmptyRosterMessage {
		t.Errorf("expected empty-roster message, got %q", buf.String())
	}
}

func TestCsvFormat(t *testing.T) {
	report := buildReport(t, roster.ViewOptions{}, sampleRecords())

	var buf bytes.Buffer
	if err := CsvFormat(&buf, report); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "Name,Base Salary,") {
		t.Errorf("unexpected header %q", lines[0])
	}
}

func TestXlsxFormat(t *testing.T) {
	report := buildReport(t, roster.ViewOptions{}, sampleRecords())

	var buf bytes.Buffer
	if err := XlsxFormat(&buf, report); err != nil {
		t.Fatalf("XlsxFormat() error = %v", err)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("XlsxFormat output is not a zip archive")
	}
}

func TestJSONFormat(t *testing.T) {
	report := buildReport(t, roster.ViewOptions{IncludeBenefits: true}, sampleRecords())

	var buf bytes.Buffer
	if err := JSONFormat(&buf, report); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded struct {
		Rows []struct {
			Name           string  `json:"name"`
			NetPay         float64 `json:"netPay"`
			FilteredCost   float64 `json:"filteredCost"`
			EmployerBurden float64 `json:"employerBurden"`
		} `json:"rows"`
		Summary struct {
			NoData    bool   `json:"noData"`
			Employees int    `json:"employees"`
			Skipped   int    `json:"skipped"`
			ViewLabel string `json:"viewLabel"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}
	if len(decoded.Rows) != 1 || decoded.Rows[0].Name != "Empleado 1" {
		t.Fatalf("unexpected rows: %+v", decoded.Rows)
	}
	if decoded.Rows[0].EmployerBurden <= 0 {
		t.Errorf("expected a positive employer burden, got %v", decoded.Rows[0].EmployerBurden)
	}
	if decoded.Summary.NoData || decoded.Summary.Employees != 1 || decoded.Summary.Skipped != 1 {
		t.Errorf("unexpected summary: %+v", decoded.Summary)
	}
	if decoded.Summary.ViewLabel != "Salary + Overtime + Allowance + Benefits" {
		t.Errorf("ViewLabel = %q", decoded.Summary.ViewLabel)
	}
}
