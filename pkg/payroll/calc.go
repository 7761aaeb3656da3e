package payroll

import (
	"github.com/iwvelando/nomina/pkg/constants"
	"github.com/iwvelando/nomina/pkg/legal"
)

// Calculate computes the payroll breakdown for one sanitized employee.
// It is pure and total: out-of-range risk classes fall back to class 1 and
// no input produces an error.
func Calculate(in EmployeeInput, cfg Config, lc legal.Constants) Result {
	riskClass := legal.NormalizeRiskClass(in.RiskClass)
	arlRate := lc.RiskRate(riskClass)

	dailyRate := in.BaseSalary / constants.DaysPerMonth
	hourlyRate := dailyRate / constants.HoursPerDay

	overtime := in.DaytimeOvertimeHours*hourlyRate*DaytimeOvertimeFactor +
		in.NighttimeOvertimeHours*hourlyRate*NighttimeOvertimeFactor +
		in.HolidayOvertimeHours*hourlyRate*HolidayOvertimeFactor +
		in.NightSurchargeHours*hourlyRate*NightSurchargeFactor

	// The allowance condition also decides attire-kit eligibility.
	var allowance float64
	kitEligible := cfg.AllowanceApplies && in.BaseSalary <= lc.AllowanceWageCap
	if kitEligible {
		allowance = lc.TransportAllowance / constants.DaysPerMonth * in.DaysWorked
	}

	gross := dailyRate*in.DaysWorked + overtime + allowance
	base := gross - allowance

	// A base exactly at the cap is not exempt.
	exempt := cfg.ExemptionApplies && base < lc.ExemptionWageCap

	contributions := EmployerContributions{
		Pension: base * EmployerPensionRate,
		ARL:     base * arlRate,
		Caja:    base * CajaRate,
	}
	if !exempt {
		contributions.Health = base * EmployerHealthRate
		contributions.ICBF = base * ICBFRate
		contributions.SENA = base * SENARate
	}

	severance := gross * SeveranceRate
	provisions := BenefitProvisions{
		Severance:         severance,
		SeveranceInterest: severance * SeveranceInterestRate,
		ServiceBonus:      gross * ServiceBonusRate,
		Vacation:          base * VacationRate,
	}
	if kitEligible {
		provisions.AttireKit = cfg.KitCost * constants.KitsPerYear / constants.MonthsPerYear
	}

	deductions := EmployeeDeductions{
		Health:  base * EmployeeHealthRate,
		Pension: base * EmployeePensionRate,
	}

	totalContributions := contributions.Total()
	totalProvisions := provisions.Total()
	totalDeductions := deductions.Total()

	return Result{
		Name:                       in.Name,
		BaseSalary:                 in.BaseSalary,
		RiskClass:                  riskClass,
		GrossPay:                   gross,
		Allowance:                  allowance,
		OvertimePay:                overtime,
		ContributionBase:           base,
		KitEligible:                kitEligible,
		Exempt:                     exempt,
		Contributions:              contributions,
		Provisions:                 provisions,
		Deductions:                 deductions,
		TotalEmployerContributions: totalContributions,
		TotalBenefitProvisions:     totalProvisions,
		TotalEmployeeDeductions:    totalDeductions,
		NetPay:                     gross - totalDeductions,
		TotalEmployerCost:          gross + totalContributions + totalProvisions,
	}
}
