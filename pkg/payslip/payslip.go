// Package payslip renders a single employee's payroll breakdown as a PDF.
package payslip

import (
	"fmt"
	"io"

	"github.com/iwvelando/nomina/pkg/format"
	"github.com/iwvelando/nomina/pkg/payroll"
	"github.com/jung-kurt/gofpdf"
)

type line struct {
	label  string
	amount float64
}

type section struct {
	title string
	lines []line
	total line
}

func sections(r payroll.Result) []section {
	return []section{
		{
			title: "Earnings",
			lines: []line{
				{"Salary for days worked", r.GrossPay - r.OvertimePay - r.Allowance},
				{"Overtime and surcharges", r.OvertimePay},
				{"Transport allowance", r.Allowance},
			},
			total: line{"Gross pay", r.GrossPay},
		},
		{
			title: "Employee deductions",
			lines: []line{
				{"Health (4%)", r.Deductions.Health},
				{"Pension (4%)", r.Deductions.Pension},
			},
			total: line{"Total deductions", r.TotalEmployeeDeductions},
		},
		{
			title: "Employer contributions",
			lines: []line{
				{"Health (8.5%)", r.Contributions.Health},
				{"Pension (12%)", r.Contributions.Pension},
				{"ARL", r.Contributions.ARL},
				{"Caja (4%)", r.Contributions.Caja},
				{"ICBF (3%)", r.Contributions.ICBF},
				{"SENA (2%)", r.Contributions.SENA},
			},
			total: line{"Total contributions", r.TotalEmployerContributions},
		},
		{
			title: "Benefit provisions",
			lines: []line{
				{"Severance (8.33%)", r.Provisions.Severance},
				{"Severance interest", r.Provisions.SeveranceInterest},
				{"Service bonus (8.33%)", r.Provisions.ServiceBonus},
				{"Vacation (4.17%)", r.Provisions.Vacation},
				{"Attire kit", r.Provisions.AttireKit},
			},
			total: line{"Total provisions", r.TotalBenefitProvisions},
		},
	}
}

// Write renders the payslip for one result into w.
func Write(w io.Writer, r payroll.Result, year int) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Payslip %s %d", r.Name, year), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Employee: %s", r.Name)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %d, risk class %d", year, r.RiskClass))
	pdf.Ln(7)
	if r.Exempt {
		pdf.Cell(0, 8, "Employer exempt from Health, ICBF and SENA contributions")
		pdf.Ln(7)
	}
	pdf.Ln(3)

	for _, s := range sections(r) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, s.title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range s.lines {
			writeLine(pdf, l)
		}
		pdf.SetFont("Helvetica", "B", 11)
		writeLine(pdf, s.total)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 14)
	writeLine(pdf, line{"Net pay", r.NetPay})
	pdf.SetFont("Helvetica", "", 11)
	writeLine(pdf, line{"Total employer cost", r.TotalEmployerCost})

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render payslip: %w", err)
	}
	return nil
}

func writeLine(pdf *gofpdf.Fpdf, l line) {
	pdf.CellFormat(110, 7, l.label, "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, format.Pesos(l.amount), "", 1, "R", false, 0, "")
}
