// Package payroll computes the Colombian payroll breakdown for one employee:
// gross pay, employer social-security contributions, statutory benefit
// provisions, employee deductions, net pay and total employer cost.
package payroll

// EmployeeRecord is an employee row as it arrives from a roster source.
// A nil numeric field means the value is missing; Sanitize replaces every
// missing field with zero independently.
type EmployeeRecord struct {
	Name                   string   `json:"name" yaml:"name" mapstructure:"name"`
	BaseSalary             *float64 `json:"baseSalary" yaml:"baseSalary" mapstructure:"baseSalary"`
	DaysWorked             *float64 `json:"daysWorked" yaml:"daysWorked" mapstructure:"daysWorked"`
	DaytimeOvertimeHours   *float64 `json:"daytimeOvertimeHours" yaml:"daytimeOvertimeHours" mapstructure:"daytimeOvertimeHours"`
	NighttimeOvertimeHours *float64 `json:"nighttimeOvertimeHours" yaml:"nighttimeOvertimeHours" mapstructure:"nighttimeOvertimeHours"`
	HolidayOvertimeHours   *float64 `json:"holidayOvertimeHours" yaml:"holidayOvertimeHours" mapstructure:"holidayOvertimeHours"`
	NightSurchargeHours    *float64 `json:"nightSurchargeHours" yaml:"nightSurchargeHours" mapstructure:"nightSurchargeHours"`
	RiskClass              *int     `json:"riskClass" yaml:"riskClass" mapstructure:"riskClass"`
}

// EmployeeInput is a sanitized employee row ready for Calculate.
type EmployeeInput struct {
	Name                   string
	BaseSalary             float64
	DaysWorked             float64
	DaytimeOvertimeHours   float64
	NighttimeOvertimeHours float64
	HolidayOvertimeHours   float64
	NightSurchargeHours    float64
	RiskClass              int
}

// Config holds the per-roster calculation switches.
type Config struct {
	AllowanceApplies bool    `json:"allowanceApplies" yaml:"allowanceApplies" mapstructure:"allowanceApplies"`
	ExemptionApplies bool    `json:"exemptionApplies" yaml:"exemptionApplies" mapstructure:"exemptionApplies"`
	KitCost          float64 `json:"kitCost" yaml:"kitCost" mapstructure:"kitCost"`
}

// EmployerContributions are the social-security contributions paid by the employer.
type EmployerContributions struct {
	Health  float64 `json:"health"`
	Pension float64 `json:"pension"`
	ARL     float64 `json:"arl"`
	Caja    float64 `json:"caja"`
	ICBF    float64 `json:"icbf"`
	SENA    float64 `json:"sena"`
}

// Total sums every employer contribution.
func (c EmployerContributions) Total() float64 {
	return c.Health + c.Pension + c.ARL + c.Caja + c.ICBF + c.SENA
}

// BenefitProvisions are the statutory reserves accrued by the employer.
type BenefitProvisions struct {
	Severance         float64 `json:"severance"`
	SeveranceInterest float64 `json:"severanceInterest"`
	ServiceBonus      float64 `json:"serviceBonus"`
	Vacation          float64 `json:"vacation"`
	AttireKit         float64 `json:"attireKit"`
}

// Total sums every provision.
func (p BenefitProvisions) Total() float64 {
	return p.Severance + p.SeveranceInterest + p.ServiceBonus + p.Vacation + p.AttireKit
}

// EmployeeDeductions are withheld from the employee's gross pay.
type EmployeeDeductions struct {
	Health  float64 `json:"health"`
	Pension float64 `json:"pension"`
}

// Total sums both deductions.
func (d EmployeeDeductions) Total() float64 {
	return d.Health + d.Pension
}

// Result is the full breakdown for one employee. Amounts are unrounded.
type Result struct {
	Name                       string                `json:"name"`
	BaseSalary                 float64               `json:"baseSalary"`
	RiskClass                  int                   `json:"riskClass"`
	GrossPay                   float64               `json:"grossPay"`
	Allowance                  float64               `json:"allowance"`
	OvertimePay                float64               `json:"overtimePay"`
	ContributionBase           float64               `json:"contributionBase"`
	KitEligible                bool                  `json:"kitEligible"`
	Exempt                     bool                  `json:"exempt"`
	Contributions              EmployerContributions `json:"contributions"`
	Provisions                 BenefitProvisions     `json:"provisions"`
	Deductions                 EmployeeDeductions    `json:"deductions"`
	TotalEmployerContributions float64               `json:"totalEmployerContributions"`
	TotalBenefitProvisions     float64               `json:"totalBenefitProvisions"`
	TotalEmployeeDeductions    float64               `json:"totalEmployeeDeductions"`
	NetPay                     float64               `json:"netPay"`
	TotalEmployerCost          float64               `json:"totalEmployerCost"`
}

// EmployerBurden is what the employer pays beyond the employee's net pay.
func (r Result) EmployerBurden() float64 {
	return r.TotalEmployerCost - r.NetPay
}
