// Package roster evaluates a whole employee roster: it sanitizes each row,
// drops incomplete rows, calculates the rest and summarizes the roster.
package roster

import (
	"strings"

	"github.com/iwvelando/nomina/pkg/legal"
	"github.com/iwvelando/nomina/pkg/payroll"
	"go.uber.org/zap"
)

// ViewOptions select what the filtered cost subtotal includes on top of
// salary, overtime and allowance.
type ViewOptions struct {
	IncludeSocialSecurity bool `json:"includeSocialSecurity" yaml:"includeSocialSecurity" mapstructure:"includeSocialSecurity"`
	IncludeBenefits       bool `json:"includeBenefits" yaml:"includeBenefits" mapstructure:"includeBenefits"`
}

// Label describes the filtered cost composition for report captions.
func (v ViewOptions) Label() string {
	parts := []string{"Salary", "Overtime", "Allowance"}
	if v.IncludeSocialSecurity {
		parts = append(parts, "SS")
	}
	if v.IncludeBenefits {
		parts = append(parts, "Benefits")
	}
	return strings.Join(parts, " + ")
}

// Options is everything one aggregation pass applies uniformly to every row.
type Options struct {
	Calculation payroll.Config
	View        ViewOptions
	Constants   legal.Constants
}

// Row is one calculated employee with its report-level derived amounts.
type Row struct {
	payroll.Result
	FilteredCost float64 `json:"filteredCost"`
	// Burden is the employer cost above net pay.
	Burden float64 `json:"employerBurden"`
}

// Summary aggregates every calculated row. NoData is set when no row was
// calculated, so an empty roster is distinguishable from a zero-valued one.
type Summary struct {
	NoData            bool        `json:"noData"`
	Employees         int         `json:"employees"`
	Skipped           int         `json:"skipped"`
	TotalNetPay       float64     `json:"totalNetPay"`
	TotalEmployerCost float64     `json:"totalEmployerCost"`
	EmployerBurden    float64     `json:"employerBurden"`
	FilteredCost      float64     `json:"filteredCost"`
	View              ViewOptions `json:"view"`
	ViewLabel         string      `json:"viewLabel"`
	Year              int         `json:"year"`
}

// Report is the outcome of one aggregation pass.
type Report struct {
	Rows    []Row   `json:"rows"`
	Summary Summary `json:"summary"`
}

// FilteredCost is salary plus overtime plus allowance, with employer
// contributions and benefit provisions added when the view includes them.
func FilteredCost(r payroll.Result, view ViewOptions) float64 {
	cost := r.BaseSalary + r.OvertimePay + r.Allowance
	if view.IncludeSocialSecurity {
		cost += r.TotalEmployerContributions
	}
	if view.IncludeBenefits {
		cost += r.TotalBenefitProvisions
	}
	return cost
}

// Aggregate calculates every payable record and summarizes the roster.
// Records with a non-positive base salary are skipped without error.
func Aggregate(logger *zap.Logger, records []payroll.EmployeeRecord, opts Options) Report {
	if logger == nil {
		logger = zap.NewNop()
	}

	report := Report{
		Rows: make([]Row, 0, len(records)),
		Summary: Summary{
			View:      opts.View,
			ViewLabel: opts.View.Label(),
			Year:      opts.Constants.Year,
		},
	}

	for i, record := range records {
		in := record.Sanitize()
		if !in.Payable() {
			logger.Debug("skipping roster row without a positive base salary",
				zap.String("op", "roster.Aggregate"),
				zap.Int("row", i),
				zap.String("name", in.Name),
			)
			report.Summary.Skipped++
			continue
		}

		result := payroll.Calculate(in, opts.Calculation, opts.Constants)
		row := Row{
			Result:       result,
			FilteredCost: FilteredCost(result, opts.View),
			Burden:       result.EmployerBurden(),
		}
		report.Rows = append(report.Rows, row)

		report.Summary.TotalNetPay += result.NetPay
		report.Summary.TotalEmployerCost += result.TotalEmployerCost
		report.Summary.FilteredCost += row.FilteredCost
	}

	report.Summary.Employees = len(report.Rows)
	report.Summary.NoData = report.Summary.Employees == 0
	report.Summary.EmployerBurden = report.Summary.TotalEmployerCost - report.Summary.TotalNetPay

	logger.Debug("roster aggregated",
		zap.String("op", "roster.Aggregate"),
		zap.Int("employees", report.Summary.Employees),
		zap.Int("skipped", report.Summary.Skipped),
	)

	return report
}
