package payroll

// Overtime premiums applied to the hourly rate.
const (
	DaytimeOvertimeFactor   = 1.25
	NighttimeOvertimeFactor = 1.75
	HolidayOvertimeFactor   = 1.80
	NightSurchargeFactor    = 0.35
)

// Employer contribution rates over the contribution base.
const (
	EmployerHealthRate  = 0.085
	EmployerPensionRate = 0.12
	CajaRate            = 0.04
	ICBFRate            = 0.03
	SENARate            = 0.02
)

// Benefit provision rates. Severance and service bonus accrue over gross
// pay, vacation over the contribution base, and severance interest over the
// severance accrual itself.
const (
	SeveranceRate         = 0.0833
	SeveranceInterestRate = 0.12
	ServiceBonusRate      = 0.0833
	VacationRate          = 0.0417
)

// Employee deduction rates over the contribution base.
const (
	EmployeeHealthRate  = 0.04
	EmployeePensionRate = 0.04
)
