// Package output provides utilities for formatting and displaying payroll reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/nomina/internal/roster"
	"github.com/iwvelando/nomina/pkg/format"
	"github.com/iwvelando/nomina/pkg/rosterio"
)

// EmptyRosterMessage is printed instead of a report when no employee was calculated.
const EmptyRosterMessage = "No employees to report. Add employees with a positive base salary to see the calculation."

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1565C0"))
	totalStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B71C1C"))
)

// PrettyFormat outputs a human-readable rather than machine-readable report:
// summary metrics, the filtered cost view and the cost-versus-pay comparison.
func PrettyFormat(w io.Writer, report roster.Report) error {
	s := report.Summary
	if s.NoData {
		_, err := fmt.Fprintln(w, EmptyRosterMessage)
		return err
	}

	var b strings.Builder
	fmt.Fprintln(&b, headingStyle.Render(fmt.Sprintf("--- Payroll summary %d ---", s.Year)))
	fmt.Fprintf(&b, "Employees:            %d\n", s.Employees)
	fmt.Fprintf(&b, "Net payroll (to pay): %s\n", format.Pesos(s.TotalNetPay))
	fmt.Fprintf(&b, "Burden over net:      %s\n", format.Pesos(s.EmployerBurden))
	fmt.Fprintf(&b, "Real total cost:      %s\n", totalStyle.Render(format.Pesos(s.TotalEmployerCost)))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, headingStyle.Render("--- Custom subtotal ---"))
	fmt.Fprintf(&b, "Viewing: %s\n", s.ViewLabel)
	header := []string{"Name", "Base Salary", "Overtime", "Allowance"}
	if s.View.IncludeSocialSecurity {
		header = append(header, "SS (Employer)")
	}
	if s.View.IncludeBenefits {
		header = append(header, "Benefits")
	}
	header = append(header, "Filtered Cost")
	table := [][]string{header}
	for _, row := range report.Rows {
		cells := []string{row.Name, format.Pesos(row.BaseSalary), format.Pesos(row.OvertimePay), format.Pesos(row.Allowance)}
		if s.View.IncludeSocialSecurity {
			cells = append(cells, format.Pesos(row.TotalEmployerContributions))
		}
		if s.View.IncludeBenefits {
			cells = append(cells, format.Pesos(row.TotalBenefitProvisions))
		}
		cells = append(cells, format.Pesos(row.FilteredCost))
		table = append(table, cells)
	}
	b.WriteString(renderTable(table))
	fmt.Fprintf(&b, "Total for this view: %s\n", totalStyle.Render(format.Pesos(s.FilteredCost)))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, headingStyle.Render("--- Who pays what ---"))
	table = [][]string{{"Name", "Total Cost (Employer)", "Net Pay (Employee)", "Difference (Burden)"}}
	for _, row := range report.Rows {
		table = append(table, []string{row.Name, format.Pesos(row.TotalEmployerCost), format.Pesos(row.NetPay), format.Pesos(row.Burden)})
	}
	b.WriteString(renderTable(table))
	if s.Skipped > 0 {
		fmt.Fprintf(&b, "\n%d row(s) without a positive base salary were not calculated.\n", s.Skipped)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// renderTable lays out rows in columns two spaces apart. The first column
// (names) is left-aligned and the amount columns are right-aligned.
func renderTable(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			align := lipgloss.Right
			if i == 0 {
				align = lipgloss.Left
			}
			cells[i] = lipgloss.NewStyle().Width(widths[i]).Align(align).Render(cell)
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, report roster.Report) error {
	return rosterio.WriteCSV(w, report)
}

// XlsxFormat outputs a spreadsheet workbook.
func XlsxFormat(w io.Writer, report roster.Report) error {
	return rosterio.WriteXLSX(w, report)
}

// JSONFormat outputs the report as indented JSON.
func JSONFormat(w io.Writer, report roster.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
