package rosterio

import (
	"strconv"

	"github.com/iwvelando/nomina/internal/roster"
	"github.com/iwvelando/nomina/pkg/format"
	"github.com/iwvelando/nomina/pkg/mathutil"
)

// exportRecord is one report line. Amounts are unrounded engine values with
// two decimals.
type exportRecord struct {
	Name                       string `csv:"Name"`
	BaseSalary                 string `csv:"Base Salary"`
	RiskClass                  string `csv:"Risk Class"`
	OvertimePay                string `csv:"Overtime Pay"`
	Allowance                  string `csv:"Transport Allowance"`
	GrossPay                   string `csv:"Gross Pay"`
	ContributionBase           string `csv:"Contribution Base"`
	TotalEmployerContributions string `csv:"Employer Contributions"`
	TotalBenefitProvisions     string `csv:"Benefit Provisions"`
	TotalEmployeeDeductions    string `csv:"Employee Deductions"`
	NetPay                     string `csv:"Net Pay"`
	TotalEmployerCost          string `csv:"Total Employer Cost"`
	FilteredCost               string `csv:"Filtered Cost"`
	EmployerBurden             string `csv:"Employer Burden"`
}

var exportHeader = []string{
	"Name", "Base Salary", "Risk Class", "Overtime Pay", "Transport Allowance",
	"Gross Pay", "Contribution Base", "Employer Contributions", "Benefit Provisions",
	"Employee Deductions", "Net Pay", "Total Employer Cost", "Filtered Cost", "Employer Burden",
}

func exportRecords(report roster.Report) []exportRecord {
	records := make([]exportRecord, 0, len(report.Rows))
	for _, row := range report.Rows {
		records = append(records, exportRecord{
			Name:                       row.Name,
			BaseSalary:                 format.Fixed(row.BaseSalary),
			RiskClass:                  strconv.Itoa(row.RiskClass),
			OvertimePay:                format.Fixed(row.OvertimePay),
			Allowance:                  format.Fixed(row.Allowance),
			GrossPay:                   format.Fixed(row.GrossPay),
			ContributionBase:           format.Fixed(row.ContributionBase),
			TotalEmployerContributions: format.Fixed(row.TotalEmployerContributions),
			TotalBenefitProvisions:     format.Fixed(row.TotalBenefitProvisions),
			TotalEmployeeDeductions:    format.Fixed(row.TotalEmployeeDeductions),
			NetPay:                     format.Fixed(row.NetPay),
			TotalEmployerCost:          format.Fixed(row.TotalEmployerCost),
			FilteredCost:               format.Fixed(row.FilteredCost),
			EmployerBurden:             format.Fixed(row.Burden),
		})
	}
	return records
}

// exportValues is the numeric form of a row for spreadsheets, amounts to
// two decimals like the CSV export.
func exportValues(row roster.Row) []interface{} {
	r := mathutil.Round
	return []interface{}{
		row.Name, r(row.BaseSalary), row.RiskClass, r(row.OvertimePay), r(row.Allowance),
		r(row.GrossPay), r(row.ContributionBase), r(row.TotalEmployerContributions), r(row.TotalBenefitProvisions),
		r(row.TotalEmployeeDeductions), r(row.NetPay), r(row.TotalEmployerCost), r(row.FilteredCost), r(row.Burden),
	}
}
